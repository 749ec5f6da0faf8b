package apperrors

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("invalid or expired token")
	ErrTokenBlacklisted   = errors.New("token has been revoked")
	ErrNotWhitelisted     = errors.New("email is not in the operator whitelist")
	ErrNotPrivileged      = errors.New("account has no operator role")
	ErrNotLeader          = errors.New("only the team leader can perform this action")
	ErrForbidden          = errors.New("insufficient permissions")
)
