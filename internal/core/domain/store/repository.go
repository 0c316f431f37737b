package store

import (
	"context"
	"io"
	"storemap/internal/core/domain/user"
	"time"
)

type CreateStoreInput struct {
	Name        string
	Slug        Slug
	Description string
	Tags        []string
	Location    Location
	AuthorID    user.ID
	CreatedAt   time.Time
}

type UpdateStoreInput struct {
	ID          ID
	Name        string
	Description string
	Tags        []string
	Location    Location
}

type ListOptions struct {
	Limit  uint
	Offset uint
}

const (
	TopStoreMinReviews = 2
	TopStoreLimit      = 10
)

type StoreRepository interface {
	// Create fails with ErrSlugAlreadyExists when the slug is taken; the
	// caller resolves collisions by retrying with a suffixed slug.
	Create(ctx context.Context, input CreateStoreInput) (Store, error)
	Update(ctx context.Context, input UpdateStoreInput) (Store, error)
	GetByID(ctx context.Context, id ID) (Store, error)
	GetBySlug(ctx context.Context, slug Slug) (Store, error)
	List(ctx context.Context, options ListOptions) (stores []Store, totalCount uint, err error)
	SetPhoto(ctx context.Context, id ID, photo string) (Store, error)
	TagCounts(ctx context.Context) ([]TagCount, error)
	// TopRated returns up to limit stores having at least minReviews
	// reviews, ordered by average rating, best first.
	TopRated(ctx context.Context, minReviews uint, limit uint) ([]TopStore, error)
}

type CreateReviewInput struct {
	StoreID   ID
	AuthorID  user.ID
	Rating    int
	Text      string
	CreatedAt time.Time
}

type ReviewRepository interface {
	Create(ctx context.Context, input CreateReviewInput) (Review, error)
	ListByStore(ctx context.Context, storeID ID) ([]Review, error)
}

// PhotoStorage persists uploaded store photos in an object store keyed
// by a generated object name.
type PhotoStorage interface {
	Save(ctx context.Context, key string, contentType string, content io.Reader, size int64) error
}

type PhotoKeyGenerator interface {
	GeneratePhotoKey(contentType string) string
}
