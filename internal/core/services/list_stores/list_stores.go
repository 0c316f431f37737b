package liststores

import (
	"context"
	"errors"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/services"
)

const DefaultPageSize = 6

type Input struct {
	Limit  uint
	Offset uint
}

type Result struct {
	Stores     []store.Store
	TotalCount uint
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
	limit := input.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	stores, totalCount, err := s.storeRepository.List(
		ctx,
		store.ListOptions{Limit: limit, Offset: input.Offset},
	)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not list stores.", logging.Entry("err", err))
		return result, err
	}
	return Result{Stores: stores, TotalCount: totalCount}, nil
}
