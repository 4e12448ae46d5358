package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by method, route template
	// and status code.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration observes request latency by method and route template.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// EmailSendFailures counts best-effort notification sends that failed.
	EmailSendFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_email_send_failures_total",
			Help: "Total number of failed notification email sends.",
		},
		[]string{"kind"},
	)
)
