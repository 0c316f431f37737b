package createstore

import (
	"context"
	"errors"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	"storemap/internal/core/services/auth"
	"time"
)

type Input struct {
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
	now             func() time.Time
}

func New(
	log logging.Logger,
	storeRepository store.StoreRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if storeRepository == nil {
		panic(e.NewNilArgumentError("storeRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		storeRepository: storeRepository,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	baseSlug := store.NewSlug(input.Name)
	for attempt := 1; attempt <= store.MaxSlugAttempts; attempt++ {
		candidate := baseSlug.WithSuffix(attempt)
		createdStore, err := s.storeRepository.Create(ctx, store.CreateStoreInput{
			Name:        input.Name,
			Slug:        candidate,
			Description: input.Description,
			Tags:        input.Tags,
			Location:    input.Location,
			AuthorID:    input.User.ID,
			CreatedAt:   s.now(),
		})
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		if errors.Is(err, store.ErrSlugAlreadyExists) {
			s.log.Info(
				ctx,
				"Store slug is already taken, retrying with a suffix.",
				logging.Entry("slug", candidate),
				logging.Entry("attempt", attempt),
			)
			continue
		}
		if err != nil {
			s.log.Error(ctx, "Could not create new store.", logging.Entry("err", err))
			return result, err
		}
		s.log.Info(
			ctx,
			"New store has been created.",
			logging.Entry("storeID", createdStore.ID),
			logging.Entry("slug", createdStore.Slug),
			logging.Entry("userID", input.User.ID),
		)
		return Result{Store: createdStore}, nil
	}
	s.log.Error(
		ctx,
		"Could not find a free slug for new store.",
		logging.Entry("slug", baseSlug),
		logging.Entry("attempts", store.MaxSlugAttempts),
	)
	return result, store.ErrSlugAttemptsExceeded
}
