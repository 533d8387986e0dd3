package domain

import "errors"

var (
	// ErrNotFound indicates the requested key was not present in the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidItem indicates an add-to-cart call with a missing name or an
	// unparseable price.
	ErrInvalidItem = errors.New("invalid item")

	// ErrMissingSlot indicates a required page slot or container is absent.
	ErrMissingSlot = errors.New("missing ui slot")
)
