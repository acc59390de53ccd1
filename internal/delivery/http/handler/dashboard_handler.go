package handler

import (
	"net/http"

	"sehat-clinic/internal/usecase"
	"sehat-clinic/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

func (h *DashboardHandler) GetRecentAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.dashboardUsecase.RecentAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get recent appointments")
		return
	}

	response.Success(w, http.StatusOK, "Recent appointments retrieved successfully", appointments)
}

func (h *DashboardHandler) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.dashboardUsecase.RecentActivity(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get recent activity")
		return
	}

	response.Success(w, http.StatusOK, "Recent activity retrieved successfully", activity)
}

func (h *DashboardHandler) GetPatientsOverview(w http.ResponseWriter, r *http.Request) {
	patients, err := h.dashboardUsecase.PatientsOverview(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients overview")
		return
	}

	response.Success(w, http.StatusOK, "Patients overview retrieved successfully", patients)
}
