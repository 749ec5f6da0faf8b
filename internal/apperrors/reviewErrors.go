package apperrors

import "errors"

var (
	ErrReviewInvalidScore = errors.New("invalid criterion score")
	ErrUnknownPhase       = errors.New("unknown phase label")
)
