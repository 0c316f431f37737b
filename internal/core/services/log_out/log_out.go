package logout

import (
	"context"
	"errors"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
)

type Input struct {
	Token user.SessionToken
}

type Result struct{}

type service struct {
	log               logging.Logger
	sessionRepository user.SessionRepository
}

func New(
	log logging.Logger,
	sessionRepository user.SessionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{
		log:               log,
		sessionRepository: sessionRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	userID, err := s.sessionRepository.Delete(ctx, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrSessionDoesNotExist) {
		// Logout is idempotent, an unknown token means the session
		// is already gone.
		s.log.Info(ctx, "Session already deleted.")
		return result, nil
	}
	if err != nil {
		s.log.Error(ctx, "Could not delete session.", logging.Entry("err", err))
		return result, err
	}

	s.log.Info(ctx, "User session deleted.", logging.Entry("userID", userID))
	return result, nil
}
