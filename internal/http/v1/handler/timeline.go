package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hackathon-portal/internal/lib/logger/sl"
	"hackathon-portal/internal/service"
)

type SetPhaseRequest struct {
	Phase string `json:"phase"`
}

type TimelineHandler struct {
	timelineService *service.TimelineService
	log             *slog.Logger
}

func NewTimelineHandler(timelineService *service.TimelineService, log *slog.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
		log:             log,
	}
}

func (h *TimelineHandler) GetPhase(w http.ResponseWriter, r *http.Request) {
	const op = "handler.timeline.GetPhase"

	log := h.log.With(slog.String("op", op))

	info, err := h.timelineService.Current(r.Context())
	if err != nil {
		log.Error("failed to get current phase", sl.Err(err))
		writeServiceError(w, log, "failed to fetch current phase", err)
		return
	}

	writeJSON(w, log, http.StatusOK, info)
}

func (h *TimelineHandler) SetPhase(w http.ResponseWriter, r *http.Request) {
	const op = "handler.timeline.SetPhase"

	log := h.log.With(slog.String("op", op))

	var req SetPhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		writeError(w, log, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Phase == "" {
		writeError(w, log, http.StatusBadRequest, "phase is required", nil)
		return
	}

	info, err := h.timelineService.SetPhase(r.Context(), req.Phase)
	if err != nil {
		log.Error("failed to set phase", sl.Err(err))
		writeServiceError(w, log, "failed to update timeline", err)
		return
	}

	writeJSON(w, log, http.StatusOK, info)
	log.Info("timeline phase updated", slog.String("phase", req.Phase))
}
