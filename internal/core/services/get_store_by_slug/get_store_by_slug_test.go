package getstorebyslug

import (
	"context"
	"errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	StoreRepository  *store.FakeStoreRepository
	ReviewRepository *store.FakeReviewRepository
	Service          services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.StoreRepository = store.NewFakeStoreRepository()
	suite.ReviewRepository = store.NewFakeReviewRepository()
	suite.Service = New(
		logging.NewFakeLogger(),
		suite.StoreRepository,
		suite.ReviewRepository,
	)
}

func TestGetStoreBySlugService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	created := s.createStore()
	s.createReview(created.ID, 5)
	s.createReview(created.ID, 3)

	result, err := s.Service.Run(context.Background(), Input{Slug: created.Slug})

	s.Nil(err)
	s.Equal(created.ID, result.Store.ID)
	s.Len(result.Reviews, 2)
}

func (s *testSuite) TestErrorReturnedIfSlugUnknown() {
	_, err := s.Service.Run(context.Background(), Input{Slug: store.Slug("unknown")})
	s.True(errors.Is(err, store.ErrStoreDoesNotExist))
}

func (s *testSuite) createStore() store.Store {
	s.T().Helper()
	created, err := s.StoreRepository.Create(
		context.Background(),
		store.CreateStoreInput{
			Name:      "Coffee Corner",
			Slug:      store.Slug("coffee-corner"),
			AuthorID:  user.ID(1),
			CreatedAt: NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return created
}

func (s *testSuite) createReview(storeID store.ID, rating int) {
	s.T().Helper()
	_, err := s.ReviewRepository.Create(
		context.Background(),
		store.CreateReviewInput{
			StoreID:   storeID,
			AuthorID:  user.ID(2),
			Rating:    rating,
			Text:      "Nice place.",
			CreatedAt: NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
}
