package updatestore

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

const (
	AUTHOR_ID = user.ID(1)
	OTHER_ID  = user.ID(2)
)

var NOW time.Time = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger          *logging.FakeLogger
	StoreRepository *store.FakeStoreRepository
	Service         services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.StoreRepository = store.NewFakeStoreRepository()
	suite.Service = New(suite.Logger, suite.StoreRepository)
}

func TestUpdateStoreService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	created := s.createStore()

	result, err := s.Service.Run(
		context.Background(),
		Input{
			StoreID:     created.ID,
			Name:        "Renamed Corner",
			Description: "New description.",
			Tags:        []string{"tea"},
			Location:    created.Location,
			User:        user.User{ID: AUTHOR_ID},
		},
	)

	s.Nil(err)
	s.Equal("Renamed Corner", result.Store.Name)
	s.Equal([]string{"tea"}, result.Store.Tags)
	s.Equal(created.Slug, result.Store.Slug)
}

func (s *testSuite) TestErrorReturnedIfNotAuthor() {
	created := s.createStore()

	_, err := s.Service.Run(
		context.Background(),
		Input{
			StoreID:  created.ID,
			Name:     "Renamed Corner",
			Location: created.Location,
			User:     user.User{ID: OTHER_ID},
		},
	)

	s.True(errors.Is(err, store.ErrNotStoreAuthor))
	unchanged, getErr := s.StoreRepository.GetByID(context.Background(), created.ID)
	s.Nil(getErr)
	s.Equal(created.Name, unchanged.Name)
}

func (s *testSuite) TestErrorReturnedIfStoreDoesNotExist() {
	_, err := s.Service.Run(
		context.Background(),
		Input{StoreID: store.ID(99), User: user.User{ID: AUTHOR_ID}},
	)
	s.True(errors.Is(err, store.ErrStoreDoesNotExist))
}

func (s *testSuite) createStore() store.Store {
	s.T().Helper()
	created, err := s.StoreRepository.Create(
		context.Background(),
		store.CreateStoreInput{
			Name: "Coffee Corner",
			Slug: store.Slug("coffee-corner"),
			Location: store.Location{
				Type:        store.LocationTypePoint,
				Coordinates: []float64{-122.41, 37.77},
				Address:     "123 Market St",
			},
			AuthorID:  AUTHOR_ID,
			CreatedAt: NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return created
}
