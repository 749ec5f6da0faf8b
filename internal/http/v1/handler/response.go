package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hackathon-portal/internal/apperrors"
	"hackathon-portal/internal/lib/logger/sl"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode JSON response", sl.Err(err))
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, status int, message string, err error) {
	errorResp := ErrorResponse{
		Error: message,
	}
	if err != nil && status != http.StatusInternalServerError {
		errorResp.Details = err.Error()
	}
	writeJSON(w, log, status, errorResp)
}

// writeServiceError maps a service error to an HTTP status using the
// apperrors sentinels; anything unrecognized is a 500 with the generic
// message and no details.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, message string, err error) {
	writeError(w, log, statusFor(err), message, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenBlacklisted):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotLeader),
		errors.Is(err, apperrors.ErrNotWhitelisted),
		errors.Is(err, apperrors.ErrNotPrivileged),
		errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrNotTeamSubmission):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrSubmissionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrEmailTaken),
		errors.Is(err, apperrors.ErrSubmissionExists),
		errors.Is(err, apperrors.ErrTeamAlreadyRejected),
		errors.Is(err, apperrors.ErrTeamNotSelectable):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrWindowClosed),
		errors.Is(err, apperrors.ErrUnknownStage),
		errors.Is(err, apperrors.ErrUnknownPhase),
		errors.Is(err, apperrors.ErrInvalidTeamStatus),
		errors.Is(err, apperrors.ErrReviewInvalidScore),
		errors.Is(err, apperrors.ErrNoTeam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
