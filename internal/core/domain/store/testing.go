package store

import (
	"context"
	"fmt"
	"io"
	"sort"
	c "storemap/internal/core/domain/common"
	"sync"
)

type FakeStoreRepository struct {
	Stores      []Store
	Top         []TopStore
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeStoreRepository() *FakeStoreRepository {
	return &FakeStoreRepository{Stores: make([]Store, 0, 10)}
}

func (r *FakeStoreRepository) Create(ctx context.Context, input CreateStoreInput) (s Store, err error) {
	if r.ReturnError {
		return s, fmt.Errorf("could not create store %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, s := range r.Stores {
		if s.Slug == input.Slug {
			return s, ErrSlugAlreadyExists
		}
		maxID = s.ID
	}
	s = Store{
		ID:          maxID + 1,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Tags:        input.Tags,
		Location:    input.Location,
		AuthorID:    input.AuthorID,
		CreatedAt:   input.CreatedAt,
	}
	r.Stores = append(r.Stores, s)
	return s, nil
}

func (r *FakeStoreRepository) Update(ctx context.Context, input UpdateStoreInput) (s Store, err error) {
	if r.ReturnError {
		return s, fmt.Errorf("could not update store %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, s := range r.Stores {
		if s.ID == input.ID {
			r.Stores[ix].Name = input.Name
			r.Stores[ix].Description = input.Description
			r.Stores[ix].Tags = input.Tags
			r.Stores[ix].Location = input.Location
			return r.Stores[ix], nil
		}
	}
	return s, ErrStoreDoesNotExist
}

func (r *FakeStoreRepository) GetByID(ctx context.Context, id ID) (s Store, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, s := range r.Stores {
		if s.ID == id {
			return s, nil
		}
	}
	return s, ErrStoreDoesNotExist
}

func (r *FakeStoreRepository) GetBySlug(ctx context.Context, slug Slug) (s Store, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, s := range r.Stores {
		if s.Slug == slug {
			return s, nil
		}
	}
	return s, ErrStoreDoesNotExist
}

func (r *FakeStoreRepository) List(
	ctx context.Context,
	options ListOptions,
) (stores []Store, totalCount uint, err error) {
	if r.ReturnError {
		return nil, 0, fmt.Errorf("could not list stores")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	totalCount = uint(len(r.Stores))
	from := options.Offset
	if from > totalCount {
		return []Store{}, totalCount, nil
	}
	to := totalCount
	if options.Limit > 0 && from+options.Limit < to {
		to = from + options.Limit
	}
	return append([]Store{}, r.Stores[from:to]...), totalCount, nil
}

func (r *FakeStoreRepository) SetPhoto(ctx context.Context, id ID, photo string) (s Store, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, s := range r.Stores {
		if s.ID == id {
			r.Stores[ix].Photo = c.NewOptional(photo, true)
			return r.Stores[ix], nil
		}
	}
	return s, ErrStoreDoesNotExist
}

func (r *FakeStoreRepository) TagCounts(ctx context.Context) ([]TagCount, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not count tags")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	counts := make(map[string]uint)
	for _, s := range r.Stores {
		for _, tag := range s.Tags {
			counts[tag]++
		}
	}
	result := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		result = append(result, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Tag < result[j].Tag
	})
	return result, nil
}

func (r *FakeStoreRepository) TopRated(ctx context.Context, minReviews uint, limit uint) ([]TopStore, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not aggregate store ratings")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	top := make([]TopStore, 0, len(r.Top))
	for _, t := range r.Top {
		if t.ReviewCount < minReviews {
			continue
		}
		top = append(top, t)
		if uint(len(top)) == limit {
			break
		}
	}
	return top, nil
}

type FakeReviewRepository struct {
	Reviews     []Review
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeReviewRepository() *FakeReviewRepository {
	return &FakeReviewRepository{Reviews: make([]Review, 0, 10)}
}

func (r *FakeReviewRepository) Create(ctx context.Context, input CreateReviewInput) (rv Review, err error) {
	if r.ReturnError {
		return rv, fmt.Errorf("could not create review %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rv = Review{
		ID:        ReviewID(len(r.Reviews) + 1),
		StoreID:   input.StoreID,
		AuthorID:  input.AuthorID,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: input.CreatedAt,
	}
	r.Reviews = append(r.Reviews, rv)
	return rv, nil
}

func (r *FakeReviewRepository) ListByStore(ctx context.Context, storeID ID) ([]Review, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list reviews")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	reviews := make([]Review, 0)
	for _, rv := range r.Reviews {
		if rv.StoreID == storeID {
			reviews = append(reviews, rv)
		}
	}
	return reviews, nil
}

type FakePhotoStorage struct {
	Saved       map[string][]byte
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePhotoStorage() *FakePhotoStorage {
	return &FakePhotoStorage{Saved: make(map[string][]byte)}
}

func (s *FakePhotoStorage) Save(
	ctx context.Context,
	key string,
	contentType string,
	content io.Reader,
	size int64,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not save photo %s", key)
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Saved[key] = data
	return nil
}

type FakePhotoKeyGenerator struct {
	Key string
}

func NewFakePhotoKeyGenerator(key string) *FakePhotoKeyGenerator {
	return &FakePhotoKeyGenerator{Key: key}
}

func (g *FakePhotoKeyGenerator) GeneratePhotoKey(contentType string) string {
	return g.Key
}
