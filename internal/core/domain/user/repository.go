package user

import (
	"context"
	c "storemap/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	Name         string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	// GetByValidResetToken matches on the token value and a strictly later
	// expiry. Unknown and expired tokens both yield
	// ErrResetTokenInvalidOrExpired.
	GetByValidResetToken(ctx context.Context, token PasswordResetToken, now time.Time) (User, error)
	// SetResetToken overwrites any pending token, so only the most recently
	// issued one stays valid.
	SetResetToken(ctx context.Context, id ID, token PasswordResetToken, expiresAt time.Time) (User, error)
	// ConsumeResetToken sets the new password hash and clears both reset
	// fields in a single row update guarded by the same validity predicate
	// as GetByValidResetToken. Of two racing calls with the same token at
	// most one succeeds; the other gets ErrResetTokenInvalidOrExpired.
	ConsumeResetToken(ctx context.Context, token PasswordResetToken, now time.Time, hash PasswordHash) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}
