package liststores

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

func TestListStores(t *testing.T) {
	cases := []struct {
		id            string
		storeCount    int
		input         Input
		expectedCount int
		expectedTotal uint
	}{
		{id: "empty", storeCount: 0, input: Input{}, expectedCount: 0, expectedTotal: 0},
		{id: "default-page-size", storeCount: 10, input: Input{}, expectedCount: DefaultPageSize, expectedTotal: 10},
		{id: "explicit-limit", storeCount: 10, input: Input{Limit: 3}, expectedCount: 3, expectedTotal: 10},
		{id: "offset", storeCount: 10, input: Input{Limit: 6, Offset: 8}, expectedCount: 2, expectedTotal: 10},
		{id: "offset-past-end", storeCount: 3, input: Input{Limit: 6, Offset: 5}, expectedCount: 0, expectedTotal: 3},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			repository := store.NewFakeStoreRepository()
			for ix := 0; ix < testcase.storeCount; ix++ {
				_, err := repository.Create(
					context.Background(),
					store.CreateStoreInput{
						Name:      fmt.Sprintf("Store %d", ix),
						Slug:      store.Slug(fmt.Sprintf("store-%d", ix)),
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

			result, err := service.Run(context.Background(), testcase.input)

			require.Nil(t, err)
			require.Len(t, result.Stores, testcase.expectedCount)
			require.Equal(t, testcase.expectedTotal, result.TotalCount)
		})
	}
}
