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
	SubmissionResponse struct {
		Submission models.Submission `json:"submission"`
	}

	ProblemStatementRequest struct {
		ProblemStatement string `json:"problem_statement"`
	}
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
	log               *slog.Logger
}

func NewSubmissionHandler(submissionService *service.SubmissionService, log *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		log:               log,
	}
}

func (h *SubmissionHandler) SubmitIdea(w http.ResponseWriter, r *http.Request) {
	const op = "handler.submission.SubmitIdea"

	log := h.log.With(slog.String("op", op))

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, log, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var payload service.IdeaPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, log, http.StatusBadRequest, "invalid request body", err)
		return
	}

	created, err := h.submissionService.SubmitIdea(r.Context(), claims.UserID, payload)
	if err != nil {
		log.Error("failed to submit idea", sl.Err(err))
		writeServiceError(w, log, "failed to submit idea", err)
		return
	}

	writeJSON(w, log, http.StatusCreated, SubmissionResponse{Submission: *created})
	log.Info("idea submitted")
}

func (h *SubmissionHandler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	const op = "handler.submission.SubmitProject"

	log := h.log.With(slog.String("op", op))

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, log, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var payload service.ProjectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, log, http.StatusBadRequest, "invalid request body", err)
		return
	}

	created, err := h.submissionService.SubmitProject(r.Context(), claims.UserID, payload)
	if err != nil {
		log.Error("failed to submit project", sl.Err(err))
		writeServiceError(w, log, "failed to submit project", err)
		return
	}

	writeJSON(w, log, http.StatusCreated, SubmissionResponse{Submission: *created})
	log.Info("project submitted")
}

func (h *SubmissionHandler) Modify(w http.ResponseWriter, r *http.Request) {
	const op = "handler.submission.Modify"

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

	var payload service.ModifyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, log, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := h.submissionService.Modify(r.Context(), claims.UserID, submissionID, payload)
	if err != nil {
		log.Error("failed to modify submission", sl.Err(err))
		writeServiceError(w, log, "failed to modify submission", err)
		return
	}

	writeJSON(w, log, http.StatusOK, SubmissionResponse{Submission: *updated})
	log.Info("submission modified", slog.Int("submission_id", submissionID))
}

func (h *SubmissionHandler) UpdateProblemStatement(w http.ResponseWriter, r *http.Request) {
	const op = "handler.submission.UpdateProblemStatement"

	log := h.log.With(slog.String("op", op))

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, log, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var req ProblemStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, log, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.ProblemStatement == "" {
		writeError(w, log, http.StatusBadRequest, "problem_statement is required", nil)
		return
	}

	if err := h.submissionService.UpdateProblemStatement(r.Context(), claims.UserID, req.ProblemStatement); err != nil {
		log.Error("failed to update problem statement", sl.Err(err))
		writeServiceError(w, log, "failed to update problem statement", err)
		return
	}

	writeJSON(w, log, http.StatusOK, map[string]string{"message": "problem statement updated"})
	log.Info("problem statement updated")
}
