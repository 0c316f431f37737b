package updatestore

import (
	"context"
	"errors"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	"storemap/internal/core/services/auth"
)

type Input struct {
	StoreID     store.ID
	Name        string
	Description string
	Tags        []string
	Location    store.Location
	User        user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Store store.Store
}

type service struct {
	log             logging.Logger
	storeRepository store.StoreRepository
}

func New(
	log logging.Logger,
	storeRepository store.StoreRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if storeRepository == nil {
		panic(e.NewNilArgumentError("storeRepository"))
	}
	return &service{
		log:             log,
		storeRepository: storeRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	existingStore, err := s.storeRepository.GetByID(ctx, input.StoreID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, store.ErrStoreDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get store.", logging.Entry("err", err))
		return result, err
	}
	if existingStore.AuthorID != input.User.ID {
		s.log.Info(
			ctx,
			"User tried to update a store they do not own.",
			logging.Entry("storeID", input.StoreID),
			logging.Entry("userID", input.User.ID),
		)
		return result, store.ErrNotStoreAuthor
	}

	// The slug stays stable across renames so published links keep working.
	updatedStore, err := s.storeRepository.Update(ctx, store.UpdateStoreInput{
		ID:          input.StoreID,
		Name:        input.Name,
		Description: input.Description,
		Tags:        input.Tags,
		Location:    input.Location,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not update store.", logging.Entry("err", err))
		return result, err
	}
	s.log.Info(
		ctx,
		"Store has been updated.",
		logging.Entry("storeID", updatedStore.ID),
		logging.Entry("userID", input.User.ID),
	)
	return Result{Store: updatedStore}, nil
}
