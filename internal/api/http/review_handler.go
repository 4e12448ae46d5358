package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"association-admin-backend/internal/domain"
	"association-admin-backend/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

func (h *ReviewHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	status := domain.UserStatus(r.URL.Query().Get("status"))
	search := r.URL.Query().Get("search")

	listing, err := h.reviewSvc.ListForms(r.Context(), status, search, page, limit)
	if err != nil {
		respondError(w, r, "list membership forms", err)
		return
	}
	respondJSON(w, http.StatusOK, "membership forms retrieved", listing)
}

func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, r, "approve membership form", err)
		return
	}

	result, err := h.reviewSvc.Approve(r.Context(), userID, actorIDFromContext(r.Context()), requestMeta(r))
	if err != nil {
		respondError(w, r, "approve membership form", err)
		return
	}
	respondJSON(w, http.StatusOK, "membership form approved", result)
}

type rejectRequest struct {
	Reason string `json:"rejection_reason"`
}

func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, r, "reject membership form", err)
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, "reject membership form", domain.NewValidationError("invalid request body"))
		return
	}

	result, err := h.reviewSvc.Reject(r.Context(), userID, actorIDFromContext(r.Context()), req.Reason, requestMeta(r))
	if err != nil {
		respondError(w, r, "reject membership form", err)
		return
	}
	respondJSON(w, http.StatusOK, "membership form rejected", result)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid " + name)
	}
	return id, nil
}

func parsePagination(r *http.Request) (int32, int32) {
	page := int32(1)
	limit := int32(20)
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 32); err == nil && v > 0 {
		limit = int32(v)
	}
	return page, limit
}
