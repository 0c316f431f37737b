package user

import "context"

type PasswordResetTokenGenerator interface {
	GenerateResetToken() PasswordResetToken
}

// PasswordResetTokenSender delivers the reset link to the account owner.
// Implementations report delivery failures as ErrNotificationUnavailable.
type PasswordResetTokenSender interface {
	SendResetToken(ctx context.Context, user User, token PasswordResetToken) error
}
