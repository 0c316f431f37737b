package store

import (
	"context"
	"errors"
	"fmt"
	c "storemap/internal/core/domain/common"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/db"
	dbuser "storemap/internal/db/user"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	STORE_NAME = "Coffee Corner"
	STORE_SLUG = "coffee-corner"
)

var NOW time.Time = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

var LOCATION = store.Location{
	Type:        store.LocationTypePoint,
	Coordinates: []float64{-122.41, 37.77},
	Address:     "123 Market St",
}

type testSuite struct {
	suite.Suite
	pool       *pgxpool.Pool
	userRepo   *dbuser.PgxUserRepository
	storeRepo  *PgxStoreRepository
	reviewRepo *PgxReviewRepository
	author     user.User
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.userRepo = dbuser.NewPgxRepository(suite.pool)
	suite.storeRepo = NewPgxRepository(suite.pool)
	suite.reviewRepo = NewPgxReviewRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) SetupTest() {
	author, err := suite.userRepo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email("author@test.test"),
		Name:         "Author",
		PasswordHash: user.PasswordHash("test-hash"),
		CreatedAt:    NOW,
	})
	if err != nil {
		suite.FailNow(err.Error())
	}
	suite.author = author
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxStoreRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateSuccess() {
	s, err := suite.storeRepo.Create(context.Background(), store.CreateStoreInput{
		Name:        STORE_NAME,
		Slug:        store.Slug(STORE_SLUG),
		Description: "Espresso and pastries.",
		Tags:        []string{"coffee", "wifi"},
		Location:    LOCATION,
		AuthorID:    suite.author.ID,
		CreatedAt:   NOW,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(STORE_NAME, s.Name)
	assert.Equal(store.Slug(STORE_SLUG), s.Slug)
	assert.Equal([]string{"coffee", "wifi"}, s.Tags)
	assert.Equal(LOCATION, s.Location)
	assert.Equal(suite.author.ID, s.AuthorID)
	assert.False(s.Photo.IsPresent)
}

func (suite *testSuite) TestCreateSlugAlreadyExists() {
	suite.createStore(STORE_SLUG)

	_, err := suite.storeRepo.Create(context.Background(), store.CreateStoreInput{
		Name:      "Another Corner",
		Slug:      store.Slug(STORE_SLUG),
		Location:  LOCATION,
		AuthorID:  suite.author.ID,
		CreatedAt: NOW,
	})

	suite.Require().True(errors.Is(err, store.ErrSlugAlreadyExists))
}

func (suite *testSuite) TestUpdateKeepsSlug() {
	created := suite.createStore(STORE_SLUG)

	updated, err := suite.storeRepo.Update(context.Background(), store.UpdateStoreInput{
		ID:          created.ID,
		Name:        "Renamed Corner",
		Description: "New description.",
		Tags:        []string{"tea"},
		Location:    LOCATION,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Renamed Corner", updated.Name)
	assert.Equal(created.Slug, updated.Slug)
}

func (suite *testSuite) TestGetBySlug() {
	created := suite.createStore(STORE_SLUG)

	s, err := suite.storeRepo.GetBySlug(context.Background(), store.Slug(STORE_SLUG))

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, s.ID)
	assert.Equal(LOCATION, s.Location)
}

func (suite *testSuite) TestGetBySlugNotFound() {
	_, err := suite.storeRepo.GetBySlug(context.Background(), store.Slug("unknown"))
	suite.Require().True(errors.Is(err, store.ErrStoreDoesNotExist))
}

func (suite *testSuite) TestList() {
	for ix := 0; ix < 5; ix++ {
		suite.createStore(fmt.Sprintf("store-%d", ix))
	}

	stores, totalCount, err := suite.storeRepo.List(
		context.Background(),
		store.ListOptions{Limit: 2, Offset: 1},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(stores, 2)
	assert.Equal(uint(5), totalCount)
}

func (suite *testSuite) TestSetPhoto() {
	created := suite.createStore(STORE_SLUG)

	s, err := suite.storeRepo.SetPhoto(context.Background(), created.ID, "photos/test.jpeg")

	assert := suite.Require()
	assert.Nil(err)
	assert.True(s.Photo.IsPresent)
	assert.Equal("photos/test.jpeg", s.Photo.Value)
}

func (suite *testSuite) TestTagCounts() {
	suite.createStoreWithTags("store-1", []string{"coffee", "wifi"})
	suite.createStoreWithTags("store-2", []string{"coffee"})
	suite.createStoreWithTags("store-3", []string{"coffee", "vegan"})

	counts, err := suite.storeRepo.TagCounts(context.Background())

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(
		[]store.TagCount{
			{Tag: "coffee", Count: 3},
			{Tag: "vegan", Count: 1},
			{Tag: "wifi", Count: 1},
		},
		counts,
	)
}

func (suite *testSuite) TestTopRated() {
	first := suite.createStore("store-1")
	second := suite.createStore("store-2")
	third := suite.createStore("store-3")
	suite.createReview(first.ID, 3)
	suite.createReview(first.ID, 5)
	suite.createReview(second.ID, 5)
	suite.createReview(second.ID, 5)
	// Only one review, must not appear.
	suite.createReview(third.ID, 5)

	top, err := suite.storeRepo.TopRated(context.Background(), store.TopStoreMinReviews, store.TopStoreLimit)

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(top, 2)
	assert.Equal(second.ID, top[0].ID)
	assert.Equal(5.0, top[0].AverageRating)
	assert.Equal(uint(2), top[0].ReviewCount)
	assert.Equal(first.ID, top[1].ID)
	assert.Equal(4.0, top[1].AverageRating)
}

func (suite *testSuite) TestReviews() {
	created := suite.createStore(STORE_SLUG)
	suite.createReview(created.ID, 4)
	suite.createReview(created.ID, 2)

	reviews, err := suite.reviewRepo.ListByStore(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(reviews, 2)
	for _, rv := range reviews {
		assert.Equal(created.ID, rv.StoreID)
		assert.Equal(suite.author.ID, rv.AuthorID)
	}
}

func (suite *testSuite) createStore(slug string) store.Store {
	return suite.createStoreWithTags(slug, []string{"coffee"})
}

func (suite *testSuite) createStoreWithTags(slug string, tags []string) store.Store {
	suite.T().Helper()
	s, err := suite.storeRepo.Create(context.Background(), store.CreateStoreInput{
		Name:      STORE_NAME,
		Slug:      store.Slug(slug),
		Tags:      tags,
		Location:  LOCATION,
		AuthorID:  suite.author.ID,
		CreatedAt: NOW,
	})
	if err != nil {
		suite.FailNow(err.Error())
	}
	return s
}

func (suite *testSuite) createReview(storeID store.ID, rating int) {
	suite.T().Helper()
	_, err := suite.reviewRepo.Create(context.Background(), store.CreateReviewInput{
		StoreID:   storeID,
		AuthorID:  suite.author.ID,
		Rating:    rating,
		Text:      "Nice place.",
		CreatedAt: NOW,
	})
	if err != nil {
		suite.FailNow(err.Error())
	}
}
