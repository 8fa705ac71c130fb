package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when an insert collides with an existing key
	ErrDuplicateID = errors.New("duplicate id")

	// ErrUnavailable is returned when the persistence backend cannot serve the request
	ErrUnavailable = errors.New("storage unavailable")
)
