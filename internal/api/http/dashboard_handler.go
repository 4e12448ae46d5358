package http

import (
	"net/http"

	"association-admin-backend/internal/service"
)

type DashboardHandler struct {
	dashSvc service.DashboardService
}

func NewDashboardHandler(dashSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashSvc: dashSvc}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	dashboard, err := h.dashSvc.GetDashboard(r.Context(), page, limit)
	if err != nil {
		respondError(w, r, "get dashboard", err)
		return
	}
	respondJSON(w, http.StatusOK, "dashboard retrieved", dashboard)
}
