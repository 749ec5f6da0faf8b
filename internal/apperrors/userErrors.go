package apperrors

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already registered")
	ErrNoTeam       = errors.New("user does not belong to a team")
)
