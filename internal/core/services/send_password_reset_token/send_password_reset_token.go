package sendpasswordresettoken

import (
	"context"
	"errors"
	c "storemap/internal/core/domain/common"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-token::" + string(i.Email)
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	tokenGenerator user.PasswordResetTokenGenerator
	tokenSender    user.PasswordResetTokenSender
	tokenValidFor  time.Duration
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenGenerator user.PasswordResetTokenGenerator,
	tokenSender user.PasswordResetTokenSender,
	tokenValidFor time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if tokenSender == nil {
		panic(e.NewNilArgumentError("tokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		tokenGenerator: tokenGenerator,
		tokenSender:    tokenSender,
		tokenValidFor:  tokenValidFor,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Acknowledge without issuing or sending anything so the caller
		// cannot probe which emails are registered.
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, nil
	}
	if err != nil {
		s.log.Error(ctx, "Could not get user by email.", logging.Entry("err", err))
		return result, err
	}

	// Overwrites any pending token; earlier emailed links go stale.
	token := s.tokenGenerator.GenerateResetToken()
	u, err = s.userRepository.SetResetToken(ctx, u.ID, token, s.now().Add(s.tokenValidFor))
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not set password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = s.tokenSender.SendResetToken(ctx, u, token)
	if err != nil {
		// The token is already persisted at this point. There is no
		// transactional coupling with the notification channel, so the
		// failure is surfaced rather than rolled back or retried.
		s.log.Warning(
			ctx,
			"Password reset token issued but could not be sent.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Password reset token sent.", logging.Entry("userID", u.ID))
	return result, nil
}
