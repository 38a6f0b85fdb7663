package endpoint

import "errors"

var (
	// ErrNilRegistry indicates a handler was constructed without a
	// registry.
	ErrNilRegistry = errors.New("endpoint: registry must not be nil")

	// ErrNilGroups indicates a handler was constructed without groups.
	ErrNilGroups = errors.New("endpoint: groups must not be nil")
)
