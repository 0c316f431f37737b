package store

import "errors"

var (
	ErrStoreDoesNotExist    = errors.New("store does not exist")
	ErrSlugAlreadyExists    = errors.New("slug already exists")
	ErrSlugAttemptsExceeded = errors.New("could not pick a unique slug")
	ErrNotStoreAuthor       = errors.New("user is not the store author")
	ErrRatingOutOfRange     = errors.New("rating is out of range")
)
