package apperrors

import "errors"

var (
	ErrTeamNotFound        = errors.New("team not found")
	ErrTeamNotSelectable   = errors.New("team has been eliminated")
	ErrTeamAlreadyRejected = errors.New("team is already rejected")
	ErrInvalidTeamStatus   = errors.New("unsupported team status transition")
)
