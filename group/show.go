package group

import (
	"fmt"
	"strings"
)

// Show controls whether part of a health response is visible to a caller.
type Show int

const (
	// ShowNever never shows the item. This is the zero value so an
	// unconfigured group hides components and details by default.
	ShowNever Show = iota

	// ShowWhenAuthorized shows the item only to authorized callers.
	ShowWhenAuthorized

	// ShowAlways always shows the item.
	ShowAlways
)

// ParseShow parses a configured show value. Accepted values are "never",
// "always" and "when-authorized" (or "when_authorized"), case-insensitive.
func ParseShow(s string) (Show, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never":
		return ShowNever, nil
	case "always":
		return ShowAlways, nil
	case "when-authorized", "when_authorized":
		return ShowWhenAuthorized, nil
	default:
		return ShowNever, fmt.Errorf("%w: %q", ErrInvalidShow, s)
	}
}

// ShouldShow reports whether the item is visible given the caller's
// authorization.
func (s Show) ShouldShow(authorized bool) bool {
	switch s {
	case ShowAlways:
		return true
	case ShowWhenAuthorized:
		return authorized
	default:
		return false
	}
}

// String returns the configuration spelling of the value.
func (s Show) String() string {
	switch s {
	case ShowAlways:
		return "always"
	case ShowWhenAuthorized:
		return "when-authorized"
	default:
		return "never"
	}
}
