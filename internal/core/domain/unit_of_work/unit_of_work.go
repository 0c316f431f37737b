package uow

import (
	"context"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	Stores() store.StoreRepository
	Reviews() store.ReviewRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
