package store

import (
	"fmt"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/user"
	"time"
)

type ReviewID int64

type Review struct {
	ID        ReviewID
	StoreID   ID
	AuthorID  user.ID
	Rating    int
	Text      string
	CreatedAt time.Time
}

const (
	MinRating = 1
	MaxRating = 5
)

func (r *Review) Validate() error {
	if r.StoreID == ID(0) {
		return e.NewInvalidStateError(fmt.Sprintf("store is not set for review %d", r.ID))
	}
	if r.AuthorID == user.ID(0) {
		return e.NewInvalidStateError(fmt.Sprintf("author is not set for review %d", r.ID))
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return e.NewInvalidStateError(fmt.Sprintf("rating %d is out of range for review %d", r.Rating, r.ID))
	}
	return nil
}
