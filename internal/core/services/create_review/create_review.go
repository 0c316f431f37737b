package createreview

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
	StoreID store.ID
	Rating  int
	Text    string
	User    user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Review store.Review
}

type service struct {
	log              logging.Logger
	storeRepository  store.StoreRepository
	reviewRepository store.ReviewRepository
	now              func() time.Time
}

func New(
	log logging.Logger,
	storeRepository store.StoreRepository,
	reviewRepository store.ReviewRepository,
	now func() time.Time,
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
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		storeRepository:  storeRepository,
		reviewRepository: reviewRepository,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Rating < store.MinRating || input.Rating > store.MaxRating {
		return result, store.ErrRatingOutOfRange
	}
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

	createdReview, err := s.reviewRepository.Create(ctx, store.CreateReviewInput{
		StoreID:   input.StoreID,
		AuthorID:  input.User.ID,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create review.",
			logging.Entry("storeID", input.StoreID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"New review has been created.",
		logging.Entry("reviewID", createdReview.ID),
		logging.Entry("storeID", input.StoreID),
		logging.Entry("userID", input.User.ID),
	)
	return Result{Review: createdReview}, nil
}
