package gettagcounts

import (
	"context"
	"errors"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/services"
)

type Input struct{}

type Result struct {
	Tags []store.TagCount
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
	tags, err := s.storeRepository.TagCounts(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not count store tags.", logging.Entry("err", err))
		return result, err
	}
	return Result{Tags: tags}, nil
}
