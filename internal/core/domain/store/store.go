package store

import (
	"fmt"
	c "storemap/internal/core/domain/common"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/user"
	"time"
)

type ID int64

type Slug string

// Location is a GeoJSON-style point with a human readable address.
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

const LocationTypePoint = "Point"

type Store struct {
	ID          ID
	Name        string
	Slug        Slug
	Description string
	Tags        []string
	Location    Location
	Photo       c.Optional[string]
	AuthorID    user.ID
	CreatedAt   time.Time
}

func (s *Store) Validate() error {
	if s.Name == "" {
		return e.NewInvalidStateError(fmt.Sprintf("name is not set for store %d", s.ID))
	}
	if s.Slug == "" {
		return e.NewInvalidStateError(fmt.Sprintf("slug is not set for store %d", s.ID))
	}
	if s.AuthorID == user.ID(0) {
		return e.NewInvalidStateError(fmt.Sprintf("author is not set for store %d", s.ID))
	}
	if s.Location.Type != LocationTypePoint {
		return e.NewInvalidStateError(fmt.Sprintf("location type must be %q for store %d", LocationTypePoint, s.ID))
	}
	if len(s.Location.Coordinates) != 2 {
		return e.NewInvalidStateError(fmt.Sprintf("location must have exactly two coordinates for store %d", s.ID))
	}
	if s.Location.Address == "" {
		return e.NewInvalidStateError(fmt.Sprintf("location address is not set for store %d", s.ID))
	}
	return nil
}

type TagCount struct {
	Tag   string
	Count uint
}

// TopStore is a read-only projection produced by the rating aggregation.
type TopStore struct {
	ID            ID
	Name          string
	Slug          Slug
	Photo         c.Optional[string]
	AverageRating float64
	ReviewCount   uint
}
