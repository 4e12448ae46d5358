package http

import (
	"encoding/json"
	"net/http"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/service"
)

type InvitationHandler struct {
	invSvc service.InvitationService
}

func NewInvitationHandler(invSvc service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invSvc: invSvc}
}

type createInvitationRequest struct {
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

func (h *InvitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, "create invitation", domain.NewValidationError("invalid request body"))
		return
	}

	result, err := h.invSvc.Create(r.Context(), req.Email, req.Role, actorIDFromContext(r.Context()), requestMeta(r))
	if err != nil {
		respondError(w, r, "create invitation", err)
		return
	}
	respondJSON(w, http.StatusCreated, "invitation created", result)
}

func (h *InvitationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	status := r.URL.Query().Get("status")
	if status == "all" {
		status = ""
	}

	listing, err := h.invSvc.List(r.Context(), domain.InvitationStatus(status), page, limit)
	if err != nil {
		respondError(w, r, "list invitations", err)
		return
	}
	respondJSON(w, http.StatusOK, "invitations retrieved", listing)
}

func (h *InvitationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, "delete invitation", err)
		return
	}

	if err := h.invSvc.Delete(r.Context(), id, actorIDFromContext(r.Context()), requestMeta(r)); err != nil {
		respondError(w, r, "delete invitation", err)
		return
	}
	respondJSON(w, http.StatusOK, "invitation deleted", nil)
}

func (h *InvitationHandler) Resend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, "resend invitation", err)
		return
	}

	result, err := h.invSvc.Resend(r.Context(), id, actorIDFromContext(r.Context()), requestMeta(r))
	if err != nil {
		respondError(w, r, "resend invitation", err)
		return
	}
	respondJSON(w, http.StatusOK, "invitation resent", result)
}
