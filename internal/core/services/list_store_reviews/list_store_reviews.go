package liststorereviews

import (
	"context"
	"errors"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/services"
)

type Input struct {
	StoreID store.ID
}

type Result struct {
	Reviews []store.Review
}

type service struct {
	log              logging.Logger
	storeRepository  store.StoreRepository
	reviewRepository store.ReviewRepository
}

func New(
	log logging.Logger,
	storeRepository store.StoreRepository,
	reviewRepository store.ReviewRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if storeRepository == nil {
		panic(e.NewNilArgumentError("storeRepository"))
	}
	if reviewRepository == nil {
		panic(e.NewNilArgumentError("reviewRepository"))
	}
	return &service{
		log:              log,
		storeRepository:  storeRepository,
		reviewRepository: reviewRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.storeRepository.GetByID(ctx, input.StoreID)
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
	reviews, err := s.reviewRepository.ListByStore(ctx, input.StoreID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not list store reviews.",
			logging.Entry("storeID", input.StoreID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Reviews: reviews}, nil
}
