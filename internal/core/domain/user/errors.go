package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUserDoesNotExist    = errors.New("user does not exist")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionDoesNotExist = errors.New("session does not exist")
	// ErrResetTokenInvalidOrExpired uniformly covers unknown, expired and
	// already consumed tokens so the caller cannot tell the cases apart.
	ErrResetTokenInvalidOrExpired   = errors.New("password reset token is invalid or has expired")
	ErrPasswordConfirmationMismatch = errors.New("passwords do not match")
	ErrNotificationUnavailable      = errors.New("notification channel is unavailable")
)
