package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hackathon-portal/internal/domain/models"
	"hackathon-portal/internal/http/v1/middleware"
	"hackathon-portal/internal/lib/logger/sl"
	"hackathon-portal/internal/service"
)

type (
	ProfileResponse struct {
		User models.User `json:"user"`
	}

	TeamsResponse struct {
		Teams []models.Team `json:"teams"`
	}

	ReviewRequest struct {
		Scores   map[string]string `json:"scores"`
		Comments string            `json:"comments"`
	}

	ReviewResponse struct {
		Review models.Review `json:"review"`
	}

	TeamStatusRequest struct {
		Status string `json:"status"`
	}

	TeamStatusResponse struct {
		Team models.Team `json:"team"`
	}
)

type AdminHandler struct {
	adminService *service.AdminService
	log          *slog.Logger
}

func NewAdminHandler(adminService *service.AdminService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		log:          log,
	}
}

func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	const op = "handler.admin.Me"

	log := h.log.With(slog.String("op", op))

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, log, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	user, err := h.adminService.Profile(r.Context(), claims.UserID)
	if err != nil {
		log.Error("failed to get profile", sl.Err(err))
		writeServiceError(w, log, "failed to fetch profile", err)
		return
	}

	writeJSON(w, log, http.StatusOK, ProfileResponse{User: *user})
}

func (h *AdminHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	const op = "handler.admin.ListTeams"

	log := h.log.With(slog.String("op", op))

	teams, err := h.adminService.ListTeams(r.Context())
	if err != nil {
		log.Error("failed to list teams", sl.Err(err))
		writeServiceError(w, log, "failed to fetch teams", err)
		return
	}

	writeJSON(w, log, http.StatusOK, TeamsResponse{Teams: teams})
	log.Info("teams returned", slog.Int("count", len(teams)))
}

func (h *AdminHandler) TeamDetail(w http.ResponseWriter, r *http.Request) {
	const op = "handler.admin.TeamDetail"

	log := h.log.With(slog.String("op", op))

	teamID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, http.StatusBadRequest, "team id must be a number", err)
		return
	}

	detail, err := h.adminService.GetTeamDetail(r.Context(), teamID)
	if err != nil {
		log.Error("failed to get team detail", sl.Err(err))
		writeServiceError(w, log, "failed to fetch team details", err)
		return
	}

	writeJSON(w, log, http.StatusOK, detail)
	log.Info("team detail returned", slog.Int("team_id", teamID))
}

func (h *AdminHandler) SubmissionDetail(w http.ResponseWriter, r *http.Request) {
	const op = "handler.admin.SubmissionDetail"

	log := h.log.With(slog.String("op", op))

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, log, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	submissionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, http.StatusBadRequest, "submission id must be a number", err)
		return
	}

	detail, err := h.adminService.GetSubmissionDetail(r.Context(), submissionID, claims.UserID)
	if err != nil {
		log.Error("failed to get submission detail", sl.Err(err))
		writeServiceError(w, log, "failed to fetch submission details", err)
		return
	}

	writeJSON(w, log, http.StatusOK, detail)
	log.Info("submission detail returned", slog.Int("submission_id", submissionID))
}

func (h *AdminHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	const op = "handler.admin.SubmitReview"

	log := h.log.With(slog.String("op", op))

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, log, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	submissionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, http.StatusBadRequest, "submission id must be a number", err)
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, log, http.StatusBadRequest, "invalid request body", err)
		return
	}

	review, err := h.adminService.SubmitReview(r.Context(), claims.UserID, submissionID, req.Scores, req.Comments)
	if err != nil {
		log.Error("failed to submit review", sl.Err(err))
		writeServiceError(w, log, "failed to submit review", err)
		return
	}

	writeJSON(w, log, http.StatusCreated, ReviewResponse{Review: *review})
	log.Info("review recorded",
		slog.Int("submission_id", submissionID),
		slog.Int("total_score", review.Score))
}

func (h *AdminHandler) UpdateTeamStatus(w http.ResponseWriter, r *http.Request) {
	const op = "handler.admin.UpdateTeamStatus"

	log := h.log.With(slog.String("op", op))

	teamID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, http.StatusBadRequest, "team id must be a number", err)
		return
	}

	var req TeamStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, log, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Status == "" {
		writeError(w, log, http.StatusBadRequest, "status is required", nil)
		return
	}

	team, err := h.adminService.UpdateTeamStatus(r.Context(), teamID, req.Status)
	if err != nil {
		log.Error("failed to update team status", sl.Err(err))
		writeServiceError(w, log, "failed to update team status", err)
		return
	}

	writeJSON(w, log, http.StatusOK, TeamStatusResponse{Team: *team})
	log.Info("team status updated", slog.Int("team_id", teamID))
}
