package login

import (
	"context"
	"errors"
	c "storemap/internal/core/domain/common"
	"storemap/internal/core/domain/logging"
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
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Hasher            *user.FakePasswordHasher
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Hasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.SessionRepository,
		suite.Hasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return NOW },
	)
}

func TestLogInService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser()

	result, err := s.Service.Run(context.Background(), Input{
		Email:    c.Email(EMAIL),
		Password: user.RawPassword(PASSWORD),
	})
	s.Nil(err)
	s.Equal(u.ID, result.User.ID)
	s.Equal(user.SessionToken(SESSION_TOKEN), result.Token)

	sessionUser, err := s.SessionRepository.GetUserByToken(
		context.Background(),
		user.SessionToken(SESSION_TOKEN),
	)
	s.Nil(err)
	s.Equal(u.ID, sessionUser.ID)
}

func (s *testSuite) TestFailuresAreIndistinguishable() {
	s.createUser()

	_, errWrongPassword := s.Service.Run(context.Background(), Input{
		Email:    c.Email(EMAIL),
		Password: user.RawPassword("wrong-password"),
	})
	_, errUnknownEmail := s.Service.Run(context.Background(), Input{
		Email:    c.Email("unknown@test.test"),
		Password: user.RawPassword(PASSWORD),
	})

	s.True(errors.Is(errWrongPassword, user.ErrInvalidCredentials))
	s.True(errors.Is(errUnknownEmail, user.ErrInvalidCredentials))
	s.Equal(errWrongPassword.Error(), errUnknownEmail.Error())
}

func (s *testSuite) createUser() user.User {
	s.T().Helper()
	hash, err := s.Hasher.HashPassword(user.RawPassword(PASSWORD))
	if err != nil {
		s.FailNow(err.Error())
	}
	u, err := s.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		Name:         NAME,
		PasswordHash: hash,
		CreatedAt:    NOW,
	})
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}
