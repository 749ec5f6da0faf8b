package handler

import (
	"log/slog"
	"net/http"

	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/http/v1/middleware"
	"hackathon-portal/internal/lib/logger/sl"
	"hackathon-portal/internal/service"
)

type SubmissionsResponse struct {
	Submissions []models.Submission `json:"submissions"`
}

type DashboardHandler struct {
	dashboardService *service.DashboardService
	log              *slog.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		log:              log,
	}
}

func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	const op = "handler.dashboard.Home"

	log := h.log.With(slog.String("op", op))

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, log, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	data, err := h.dashboardService.Home(r.Context(), claims.UserID)
	if err != nil {
		log.Error("failed to assemble home data", sl.Err(err))
		writeServiceError(w, log, "failed to fetch home data", err)
		return
	}

	writeJSON(w, log, http.StatusOK, data)
	log.Info("home data returned")
}

func (h *DashboardHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	const op = "handler.dashboard.ListSubmissions"

	log := h.log.With(slog.String("op", op))

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, log, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	subs, err := h.dashboardService.TeamSubmissions(r.Context(), claims.UserID)
	if err != nil {
		log.Error("failed to list submissions", sl.Err(err))
		writeServiceError(w, log, "failed to fetch submissions", err)
		return
	}

	writeJSON(w, log, http.StatusOK, SubmissionsResponse{Submissions: subs})
	log.Info("submissions returned", slog.Int("count", len(subs)))
}
