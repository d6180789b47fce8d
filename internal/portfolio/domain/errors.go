package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup by id has no match.
	ErrNotFound = errors.New("entity not found")

	// ErrEmptyField is returned when a required field is empty after
	// trimming surrounding whitespace.
	ErrEmptyField = errors.New("required field is empty")
)
