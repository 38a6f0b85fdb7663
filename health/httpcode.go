package health

import (
	"net/http"
	"strings"
)

// HTTPCodeStatusMapper maps an aggregate status to an HTTP response code.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic; an unmapped status falls back
//   to a fixed default rather than an error.
type HTTPCodeStatusMapper interface {
	// StatusCode returns the HTTP status code for the given status.
	StatusCode(status Status) int
}

// SimpleHTTPCodeStatusMapper maps statuses to HTTP codes using a lookup
// table. Statuses absent from the table use the default rule: UP maps to
// 200, DOWN and OUT_OF_SERVICE map to 503, and any other code maps to 500
// so an unexpected state is surfaced rather than reported healthy.
type SimpleHTTPCodeStatusMapper struct {
	mapping map[string]int
}

// NewSimpleHTTPCodeStatusMapper creates a mapper with the given per-code
// overrides. Keys are trimmed; entries with an empty key or a non-positive
// code are dropped. A nil mapping yields the default rule only.
func NewSimpleHTTPCodeStatusMapper(mapping map[string]int) *SimpleHTTPCodeStatusMapper {
	clean := make(map[string]int, len(mapping))
	for code, httpCode := range mapping {
		code = strings.TrimSpace(code)
		if code != "" && httpCode > 0 {
			clean[code] = httpCode
		}
	}
	return &SimpleHTTPCodeStatusMapper{mapping: clean}
}

// NewDefaultHTTPCodeStatusMapper creates a mapper using only the default
// rule.
func NewDefaultHTTPCodeStatusMapper() *SimpleHTTPCodeStatusMapper {
	return NewSimpleHTTPCodeStatusMapper(nil)
}

// StatusCode returns the HTTP status code for the given status.
func (m *SimpleHTTPCodeStatusMapper) StatusCode(status Status) int {
	if code, ok := m.mapping[status.Code]; ok {
		return code
	}
	return defaultStatusCode(status)
}

// defaultStatusCode is the fallback mapping shared by all mappers.
func defaultStatusCode(status Status) int {
	switch status.Code {
	case StatusUp.Code:
		return http.StatusOK
	case StatusDown.Code, StatusOutOfService.Code:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
