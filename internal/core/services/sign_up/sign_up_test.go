package signup

import (
	"context"
	"errors"
	c "storemap/internal/core/domain/common"
	"storemap/internal/core/domain/logging"
	uow "storemap/internal/core/domain/unit_of_work"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	NAME          = "Test"
	PASSWORD      = "test-password"
	SESSION_TOKEN = "test-session-token"
)

var NOW time.Time = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	UnitOfWork *uow.FakeUnitOfWork
	Hasher     *user.FakePasswordHasher
	Service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.Hasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.Hasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return NOW },
	)
}

func TestSignUpService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.Service.Run(context.Background(), Input{
		Email:    c.Email(EMAIL),
		Name:     NAME,
		Password: user.RawPassword(PASSWORD),
	})
	s.Nil(err)
	s.Equal(c.Email(EMAIL), result.User.Email)
	s.Equal(NAME, result.User.Name)
	s.Equal(user.SessionToken(SESSION_TOKEN), result.Token)
	s.True(s.Hasher.ValidatePassword(user.RawPassword(PASSWORD), result.User.PasswordHash))
	s.True(s.UnitOfWork.Context.WasCommitCalled)

	sessionUser, err := s.UnitOfWork.Context.SessionRepository.GetUserByToken(
		context.Background(),
		user.SessionToken(SESSION_TOKEN),
	)
	s.Nil(err)
	s.Equal(result.User.ID, sessionUser.ID)
}

func (s *testSuite) TestDuplicateEmail() {
	_, err := s.Service.Run(context.Background(), Input{
		Email:    c.Email(EMAIL),
		Name:     NAME,
		Password: user.RawPassword(PASSWORD),
	})
	s.Nil(err)

	_, err = s.Service.Run(context.Background(), Input{
		Email:    c.Email(EMAIL),
		Name:     "Other",
		Password: user.RawPassword("other-password"),
	})
	s.True(errors.Is(err, user.ErrEmailAlreadyExists))
}
