package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrDuplicateEntry indicates a journal entry with the same ID already exists
	ErrDuplicateEntry = errors.New("duplicate journal entry")

	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")
)
