package health

import "errors"

var (
	// ErrCheckFailed indicates a health check failed.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout indicates a health check timed out.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrIndicatorNotFound indicates an indicator was not found.
	ErrIndicatorNotFound = errors.New("health: indicator not found")

	// ErrInvalidName indicates a contributor name is empty or malformed.
	ErrInvalidName = errors.New("health: invalid contributor name")

	// ErrDuplicateName indicates a contributor name is already registered.
	ErrDuplicateName = errors.New("health: duplicate contributor name")

	// ErrNameCollision indicates a contributor name collides with a group
	// name.
	ErrNameCollision = errors.New("health: contributor name collides with group name")
)
