package group

import "errors"

var (
	// ErrNilPrimaryGroup indicates Groups was constructed without a
	// primary group.
	ErrNilPrimaryGroup = errors.New("group: primary group must not be nil")

	// ErrInvalidGroupName indicates a group name is empty or blank.
	ErrInvalidGroupName = errors.New("group: invalid group name")

	// ErrNilGroup indicates a nil group was supplied for a name.
	ErrNilGroup = errors.New("group: nil group")

	// ErrDuplicateAdditionalPath indicates two groups share the same
	// additional path.
	ErrDuplicateAdditionalPath = errors.New("group: duplicate additional path")

	// ErrInvalidShow indicates an unrecognized show-components or
	// show-details value.
	ErrInvalidShow = errors.New("group: invalid show value")

	// ErrInvalidNamespace indicates an unrecognized additional path
	// namespace.
	ErrInvalidNamespace = errors.New("group: invalid namespace")

	// ErrInvalidAdditionalPath indicates a malformed additional path
	// string.
	ErrInvalidAdditionalPath = errors.New("group: invalid additional path")
)
