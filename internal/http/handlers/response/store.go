package response

import (
	"storemap/internal/core/domain/store"
	"time"
)

type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

type Store struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Location    Location  `json:"location"`
	Photo       *string   `json:"photo,omitempty"`
	AuthorID    int64     `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Store) FromDomainStore(ds store.Store) {
	s.ID = int64(ds.ID)
	s.Name = ds.Name
	s.Slug = string(ds.Slug)
	s.Description = ds.Description
	s.Tags = ds.Tags
	if s.Tags == nil {
		s.Tags = []string{}
	}
	s.Location = Location{
		Type:        ds.Location.Type,
		Coordinates: ds.Location.Coordinates,
		Address:     ds.Location.Address,
	}
	if ds.Photo.IsPresent {
		s.Photo = &ds.Photo.Value
	}
	s.AuthorID = int64(ds.AuthorID)
	s.CreatedAt = ds.CreatedAt
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count uint   `json:"count"`
}

func (tc *TagCount) FromDomainTagCount(dtc store.TagCount) {
	tc.Tag = dtc.Tag
	tc.Count = dtc.Count
}

type TopStore struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Photo         *string `json:"photo,omitempty"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   uint    `json:"review_count"`
}

func (ts *TopStore) FromDomainTopStore(dts store.TopStore) {
	ts.ID = int64(dts.ID)
	ts.Name = dts.Name
	ts.Slug = string(dts.Slug)
	if dts.Photo.IsPresent {
		ts.Photo = &dts.Photo.Value
	}
	ts.AverageRating = dts.AverageRating
	ts.ReviewCount = dts.ReviewCount
}
