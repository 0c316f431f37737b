package uow

import (
	"context"
	"errors"
	c "storemap/internal/core/domain/common"
	"storemap/internal/core/domain/user"
	"storemap/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCommitPersistsUserAndSession() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.Email("test@test.test"),
		Name:         "Test",
		PasswordHash: user.PasswordHash("test-hash"),
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	err = uow.Sessions().Create(ctx, user.CreateSessionInput{
		UserID:    createdUser.ID,
		Token:     user.SessionToken("test-session-token"),
		CreatedAt: NOW,
	})
	s.Require().Nil(err)
	s.Require().Nil(uow.Commit(ctx))

	uow2, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow2.Rollback(ctx)
	u, err := uow2.Sessions().GetUserByToken(ctx, user.SessionToken("test-session-token"))
	s.Require().Nil(err)
	s.Require().Equal(createdUser.ID, u.ID)
}

func (s *testSuite) TestRollbackDiscardsUser() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)

	_, err = uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.Email("test@test.test"),
		Name:         "Test",
		PasswordHash: user.PasswordHash("test-hash"),
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	s.Require().Nil(uow.Rollback(ctx))

	uow2, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow2.Rollback(ctx)
	_, err = uow2.Users().GetByEmail(ctx, c.Email("test@test.test"))
	s.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}
