package response

import (
	"storemap/internal/core/domain/store"
	"time"
)

type Review struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"store_id"`
	AuthorID  int64     `json:"author_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (rv *Review) FromDomainReview(dr store.Review) {
	rv.ID = int64(dr.ID)
	rv.StoreID = int64(dr.StoreID)
	rv.AuthorID = int64(dr.AuthorID)
	rv.Rating = dr.Rating
	rv.Text = dr.Text
	rv.CreatedAt = dr.CreatedAt
}
