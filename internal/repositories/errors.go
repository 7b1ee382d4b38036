package repositories

import "errors"

var (
	// ErrUserNotFound is returned when no user carries the requested ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrPostNotFound is returned when no blog post carries the requested ID.
	ErrPostNotFound = errors.New("blog post not found")

	// ErrDuplicateID is returned when an explicit ID is already taken.
	ErrDuplicateID = errors.New("id already exists")
)
