package gettopstores

import (
	"context"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/services"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetTopStores(t *testing.T) {
	repository := store.NewFakeStoreRepository()
	repository.Top = []store.TopStore{
		{ID: store.ID(1), Name: "A", Slug: "a", AverageRating: 4.8, ReviewCount: 5},
		{ID: store.ID(2), Name: "B", Slug: "b", AverageRating: 4.5, ReviewCount: 2},
		{ID: store.ID(3), Name: "C", Slug: "c", AverageRating: 5.0, ReviewCount: 1},
	}
	var service services.Service[Input, Result] = New(
		logging.NewFakeLogger(),
		repository,
	)

	result, err := service.Run(context.Background(), Input{})

	require.Nil(t, err)
	require.Len(t, result.Stores, 2)
	for _, topStore := range result.Stores {
		require.GreaterOrEqual(t, topStore.ReviewCount, uint(store.TopStoreMinReviews))
	}
}
