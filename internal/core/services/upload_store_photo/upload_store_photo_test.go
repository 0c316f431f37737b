package uploadstorephoto

import (
	"bytes"
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
	PHOTO_KEY = "photos/test-key.jpeg"
)

var NOW time.Time = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

var PHOTO_DATA = []byte{0xff, 0xd8, 0xff, 0xe0}

type testSuite struct {
	suite.Suite
	StoreRepository *store.FakeStoreRepository
	PhotoStorage    *store.FakePhotoStorage
	Service         services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.StoreRepository = store.NewFakeStoreRepository()
	suite.PhotoStorage = store.NewFakePhotoStorage()
	suite.Service = New(
		logging.NewFakeLogger(),
		suite.StoreRepository,
		suite.PhotoStorage,
		store.NewFakePhotoKeyGenerator(PHOTO_KEY),
	)
}

func TestUploadStorePhotoService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	created := s.createStore()

	result, err := s.Service.Run(
		context.Background(),
		Input{
			StoreID:     created.ID,
			ContentType: "image/jpeg",
			Content:     bytes.NewReader(PHOTO_DATA),
			Size:        int64(len(PHOTO_DATA)),
			User:        user.User{ID: AUTHOR_ID},
		},
	)

	s.Nil(err)
	s.True(result.Store.Photo.IsPresent)
	s.Equal(PHOTO_KEY, result.Store.Photo.Value)
	s.Equal(PHOTO_DATA, s.PhotoStorage.Saved[PHOTO_KEY])
}

func (s *testSuite) TestErrorReturnedIfNotAuthor() {
	created := s.createStore()

	_, err := s.Service.Run(
		context.Background(),
		Input{
			StoreID:     created.ID,
			ContentType: "image/jpeg",
			Content:     bytes.NewReader(PHOTO_DATA),
			Size:        int64(len(PHOTO_DATA)),
			User:        user.User{ID: OTHER_ID},
		},
	)

	s.True(errors.Is(err, store.ErrNotStoreAuthor))
	s.Empty(s.PhotoStorage.Saved)
}

func (s *testSuite) TestStorageErrorLeavesStoreUnchanged() {
	created := s.createStore()
	s.PhotoStorage.ReturnError = true

	_, err := s.Service.Run(
		context.Background(),
		Input{
			StoreID:     created.ID,
			ContentType: "image/jpeg",
			Content:     bytes.NewReader(PHOTO_DATA),
			Size:        int64(len(PHOTO_DATA)),
			User:        user.User{ID: AUTHOR_ID},
		},
	)

	s.NotNil(err)
	unchanged, getErr := s.StoreRepository.GetByID(context.Background(), created.ID)
	s.Nil(getErr)
	s.False(unchanged.Photo.IsPresent)
}

func (s *testSuite) createStore() store.Store {
	s.T().Helper()
	created, err := s.StoreRepository.Create(
		context.Background(),
		store.CreateStoreInput{
			Name:      "Coffee Corner",
			Slug:      store.Slug("coffee-corner"),
			AuthorID:  AUTHOR_ID,
			CreatedAt: NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return created
}
