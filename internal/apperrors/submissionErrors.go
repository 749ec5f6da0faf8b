package apperrors

import "errors"

var (
	ErrValidation         = errors.New("invalid payload")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSubmissionExists   = errors.New("a submission for this stage already exists")
	ErrWindowClosed       = errors.New("submissions are closed for this stage")
	ErrUnknownStage       = errors.New("unknown submission stage")
	ErrNotTeamSubmission  = errors.New("submission does not belong to your team")
)
