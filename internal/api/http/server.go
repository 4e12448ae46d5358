package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"association-admin-backend/internal/security"
	"association-admin-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth       service.AuthService
	Review     service.ReviewService
	Invitation service.InvitationService
	Dashboard  service.DashboardService
	Audit      service.AuditService
}

// NewRouter builds the full HTTP surface: the public auth endpoint, the
// admin-only workflow routes behind the JWT middleware, and the ops routes.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	// Ops surface
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Public
	authHandler := NewAuthHandler(svcs.Auth)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Admin-only
	admin := r.NewRoute().Subrouter()
	admin.Use(AdminAuthMiddleware(tokens))

	reviewHandler := NewReviewHandler(svcs.Review)
	dashboardHandler := NewDashboardHandler(svcs.Dashboard)
	auditHandler := NewAuditHandler(svcs.Audit)
	admin.HandleFunc("/admin/dashboard", dashboardHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/admin/membership-forms", reviewHandler.ListForms).Methods(http.MethodGet)
	admin.HandleFunc("/admin/membership-forms/{userId}/approve", reviewHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/admin/membership-forms/{userId}/reject", reviewHandler.Reject).Methods(http.MethodPost)
	admin.HandleFunc("/admin/audit-logs", auditHandler.List).Methods(http.MethodGet)

	invitationHandler := NewInvitationHandler(svcs.Invitation)
	admin.HandleFunc("/invitations", invitationHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/invitations", invitationHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/invitations/{id}", invitationHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/invitations/{id}/resend", invitationHandler.Resend).Methods(http.MethodPost)

	return r
}
