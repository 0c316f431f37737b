package store

import (
	"fmt"

	goslug "github.com/gosimple/slug"
)

// MaxSlugAttempts bounds the collision retry loop so pathological
// concurrent inserts of the same name cannot loop forever.
const MaxSlugAttempts = 25

func NewSlug(name string) Slug {
	return Slug(goslug.Make(name))
}

// WithSuffix returns the slug for the n-th insert attempt: the bare slug
// first, then "<slug>-2", "<slug>-3" and so on.
func (s Slug) WithSuffix(attempt int) Slug {
	if attempt <= 1 {
		return s
	}
	return Slug(fmt.Sprintf("%s-%d", s, attempt))
}
