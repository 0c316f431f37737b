package gettagcounts

import (
	"context"
	"fmt"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var NOW time.Time = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

func TestGetTagCounts(t *testing.T) {
	repository := store.NewFakeStoreRepository()
	tagSets := [][]string{
		{"coffee", "wifi"},
		{"coffee"},
		{"coffee", "vegan"},
	}
	for ix, tags := range tagSets {
		_, err := repository.Create(
			context.Background(),
			store.CreateStoreInput{
				Name:      fmt.Sprintf("Store %d", ix),
				Slug:      store.Slug(fmt.Sprintf("store-%d", ix)),
				Tags:      tags,
				AuthorID:  user.ID(1),
				CreatedAt: NOW,
			},
		)
		require.Nil(t, err)
	}
	var service services.Service[Input, Result] = New(
		logging.NewFakeLogger(),
		repository,
	)

	result, err := service.Run(context.Background(), Input{})

	require.Nil(t, err)
	require.Equal(
		t,
		[]store.TagCount{
			{Tag: "coffee", Count: 3},
			{Tag: "vegan", Count: 1},
			{Tag: "wifi", Count: 1},
		},
		result.Tags,
	)
}
