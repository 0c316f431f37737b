package uow

import (
	"context"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	StoreRepository   *store.FakeStoreRepository
	ReviewRepository  *store.FakeReviewRepository
	WasRollbackCalled bool
	WasCommitCalled   bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	sessionRepository *user.FakeSessionRepository,
	storeRepository *store.FakeStoreRepository,
	reviewRepository *store.FakeReviewRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
		StoreRepository:   storeRepository,
		ReviewRepository:  reviewRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) Stores() store.StoreRepository {
	return c.StoreRepository
}

func (c *FakeUnitOfWorkContext) Reviews() store.ReviewRepository {
	return c.ReviewRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	userRepository := user.NewFakeUserRepository()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			userRepository,
			user.NewFakeSessionRepository(userRepository),
			store.NewFakeStoreRepository(),
			store.NewFakeReviewRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
