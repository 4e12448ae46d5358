package http

import (
	"net/http"

	"association-admin-backend/internal/service"
)

type AuditHandler struct {
	auditSvc service.AuditService
}

func NewAuditHandler(auditSvc service.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	listing, err := h.auditSvc.List(r.Context(), page, limit)
	if err != nil {
		respondError(w, r, "list audit logs", err)
		return
	}
	respondJSON(w, http.StatusOK, "audit logs retrieved", listing)
}
