package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-portal/internal/apperrors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatusFor(t *testing.T) {
	fieldErrs := multierror.Append(nil,
		fmt.Errorf("title must be 3 to 100 characters"),
		fmt.Errorf("description must be 10 to 1000 characters"),
	)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation multierror", fmt.Errorf("service.submission.SubmitIdea: %w: %w", apperrors.ErrValidation, fieldErrs), http.StatusBadRequest},
		{"invalid credentials", fmt.Errorf("op: %w", apperrors.ErrInvalidCredentials), http.StatusUnauthorized},
		{"not leader", fmt.Errorf("op: %w", apperrors.ErrNotLeader), http.StatusForbidden},
		{"submission exists", fmt.Errorf("op: %w", apperrors.ErrSubmissionExists), http.StatusConflict},
		{"window closed", fmt.Errorf("op: %w", apperrors.ErrWindowClosed), http.StatusBadRequest},
		{"invalid score", fmt.Errorf("op: %w: %w", apperrors.ErrReviewInvalidScore, errors.New("score out of range")), http.StatusBadRequest},
		{"team not found", fmt.Errorf("op: %w", apperrors.ErrTeamNotFound), http.StatusNotFound},
		{"unrecognized", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}

func TestWriteServiceError_ValidationDetailsReachClient(t *testing.T) {
	fieldErrs := multierror.Append(nil,
		fmt.Errorf("title must be 3 to 100 characters"),
		fmt.Errorf("description must be 10 to 1000 characters"),
	)
	err := fmt.Errorf("service.submission.SubmitIdea: %w: %w", apperrors.ErrValidation, fieldErrs)

	rec := httptest.NewRecorder()
	writeServiceError(rec, testLogger(), "failed to submit idea", err)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "failed to submit idea", resp.Error)
	assert.Contains(t, resp.Details, "title must be 3 to 100 characters")
	assert.Contains(t, resp.Details, "description must be 10 to 1000 characters")
}

func TestWriteServiceError_InternalHidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, testLogger(), "failed to submit idea", errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "failed to submit idea", resp.Error)
	assert.Empty(t, resp.Details)
}
