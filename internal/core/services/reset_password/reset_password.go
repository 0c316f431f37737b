package resetpassword

import (
	"context"
	"errors"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	"time"
)

type Input struct {
	Token                   user.PasswordResetToken
	NewPassword             user.RawPassword
	NewPasswordConfirmation user.RawPassword
}

type Result struct {
	User  user.User
	Token user.SessionToken
}

type service struct {
	log                   logging.Logger
	userRepository        user.UserRepository
	sessionRepository     user.SessionRepository
	passwordHasher        user.PasswordHasher
	sessionTokenGenerator user.SessionTokenGenerator
	now                   func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	sessionRepository user.SessionRepository,
	passwordHasher user.PasswordHasher,
	sessionTokenGenerator user.SessionTokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                   log,
		userRepository:        userRepository,
		sessionRepository:     sessionRepository,
		passwordHasher:        passwordHasher,
		sessionTokenGenerator: sessionTokenGenerator,
		now:                   now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	// Checked before any store access; a mismatch must not consume the
	// token.
	if input.NewPassword != input.NewPasswordConfirmation {
		return result, user.ErrPasswordConfirmationMismatch
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	// Single atomic update: the token may have expired between the form
	// render and this call, and a replayed token must lose the race.
	u, err := s.userRepository.ConsumeResetToken(ctx, input.Token, s.now(), newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrResetTokenInvalidOrExpired) {
		s.log.Info(ctx, "Invalid or expired password reset token presented.")
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not consume password reset token.", logging.Entry("err", err))
		return result, err
	}

	// The user just proved control of the account email, so a session is
	// established without a password check. This is the only place that
	// bypasses the gate.
	sessionToken := s.sessionTokenGenerator.GenerateSessionToken()
	err = s.sessionRepository.Create(ctx, user.CreateSessionInput{
		UserID:    u.ID,
		Token:     sessionToken,
		CreatedAt: s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Password has been reset but session could not be created.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password has been reset, session established.",
		logging.Entry("userID", u.ID),
	)
	return Result{User: u, Token: sessionToken}, nil
}
