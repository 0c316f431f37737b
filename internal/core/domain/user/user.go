package user

import (
	"fmt"
	c "storemap/internal/core/domain/common"
	e "storemap/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type PasswordResetToken string

type User struct {
	ID           ID
	Email        c.Email
	Name         string
	PasswordHash PasswordHash
	CreatedAt    time.Time
	// ResetToken and ResetTokenExpiresAt are set together while a password
	// reset is pending and cleared together when the token is consumed.
	ResetToken          c.Optional[PasswordResetToken]
	ResetTokenExpiresAt c.Optional[time.Time]
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.Name == "" {
		return e.NewInvalidStateError(fmt.Sprintf("name is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.ResetToken.IsPresent != u.ResetTokenExpiresAt.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("reset token and its expiry must be set together for user %d", u.ID),
		)
	}
	return nil
}

func (u *User) HasPendingReset() bool {
	return u.ResetToken.IsPresent
}
