package health

import "strings"

// Status describes the health state of a component or the system as a whole.
// A Status is a value type identified by its Code; the Description carries
// optional human-readable context and does not take part in equality.
type Status struct {
	// Code identifies the state, e.g. "UP".
	Code string

	// Description provides additional context about the state.
	Description string
}

// Well-known statuses. Custom codes are allowed anywhere a Status is
// accepted; these four are the ones the default severity order and the
// default HTTP mapping know about.
var (
	// StatusUp indicates the component is functioning as expected.
	StatusUp = Status{Code: "UP"}

	// StatusDown indicates the component has suffered a malfunction.
	StatusDown = Status{Code: "DOWN"}

	// StatusOutOfService indicates the component has been taken out of
	// service and should not be used.
	StatusOutOfService = Status{Code: "OUT_OF_SERVICE"}

	// StatusUnknown indicates the component is in an unknown state.
	StatusUnknown = Status{Code: "UNKNOWN"}
)

// NewStatus creates a Status with the given code. The code is trimmed;
// an empty code yields StatusUnknown.
func NewStatus(code string) Status {
	code = strings.TrimSpace(code)
	if code == "" {
		return StatusUnknown
	}
	return Status{Code: code}
}

// WithDescription returns a copy of the status with the given description.
func (s Status) WithDescription(description string) Status {
	s.Description = description
	return s
}

// Equal reports whether two statuses have the same code. Descriptions are
// ignored.
func (s Status) Equal(other Status) bool {
	return s.Code == other.Code
}

// String returns the status code.
func (s Status) String() string {
	return s.Code
}
