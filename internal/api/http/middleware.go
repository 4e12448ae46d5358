package http

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/logger"
	"association-admin-backend/internal/metrics"
	"association-admin-backend/internal/security"
	"association-admin-backend/internal/service"
)

type contextKey string

const (
	contextKeyActorID   contextKey = "actor_id"
	contextKeyRequestID contextKey = "request_id"
)

func actorIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(contextKeyActorID).(int64); ok {
		return id
	}
	return 0
}

// requestMeta extracts the request origin for the audit trail.
func requestMeta(r *http.Request) service.RequestMeta {
	return service.RequestMeta{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// First hop is the client.
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestIDMiddleware tags each request with a UUID, echoed back in the
// X-Request-ID header.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware logs each request with its status and duration, and
// records the Prometheus request metrics.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		duration := time.Since(start)
		metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(duration.Seconds())
		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", duration.Milliseconds(),
			"request_id", r.Context().Value(contextKeyRequestID),
		)
	})
}

// AdminAuthMiddleware validates the Bearer token and requires the ADMIN role.
// The acting admin id is injected into the request context for handlers and
// the audit trail.
func AdminAuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondError(w, r, "auth", domain.NewUnauthorizedError("missing or malformed authorization header"))
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondError(w, r, "auth", domain.NewUnauthorizedError("invalid or expired token"))
				return
			}
			if claims.Role != string(domain.UserRoleAdmin) {
				respondError(w, r, "auth", domain.NewUnauthorizedError("admin access required"))
				return
			}
			ctx := context.WithValue(r.Context(), contextKeyActorID, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
