package health

import (
	"context"
	"time"
)

// Result contains the outcome of a single health check.
type Result struct {
	// Status is the health status reported by the indicator.
	Status Status

	// Details contains arbitrary metadata about the check.
	Details map[string]any

	// Duration is how long the check took.
	Duration time.Duration

	// CheckedAt is when the check was performed.
	CheckedAt time.Time

	// Err is the error if the check failed.
	Err error
}

// Up creates a result with StatusUp.
func Up() Result {
	return Result{Status: StatusUp, CheckedAt: time.Now()}
}

// Down creates a result with StatusDown and the given error.
func Down(err error) Result {
	return Result{Status: StatusDown, Err: err, CheckedAt: time.Now()}
}

// OutOfService creates a result with StatusOutOfService.
func OutOfService() Result {
	return Result{Status: StatusOutOfService, CheckedAt: time.Now()}
}

// Unknown creates a result with StatusUnknown.
func Unknown() Result {
	return Result{Status: StatusUnknown, CheckedAt: time.Now()}
}

// WithStatus returns a copy of the result with the given status.
func (r Result) WithStatus(status Status) Result {
	r.Status = status
	return r
}

// WithDetails replaces the details on a result.
func (r Result) WithDetails(details map[string]any) Result {
	r.Details = details
	return r
}

// WithDetail adds a single detail to a result, copying existing details.
func (r Result) WithDetail(key string, value any) Result {
	details := make(map[string]any, len(r.Details)+1)
	for k, v := range r.Details {
		details[k] = v
	}
	details[key] = value
	r.Details = details
	return r
}

// Indicator is the interface for health checks.
type Indicator interface {
	// Check performs the health check and returns the result.
	Check(ctx context.Context) Result
}

// IndicatorFunc is an adapter to allow ordinary functions to be used as
// Indicators.
type IndicatorFunc func(ctx context.Context) Result

// Check performs the health check.
func (f IndicatorFunc) Check(ctx context.Context) Result {
	return f(ctx)
}

// StatusIndicator returns an Indicator that always reports the given
// status. Useful for tests and for wiring static states such as an
// out-of-service toggle.
func StatusIndicator(status Status) Indicator {
	return IndicatorFunc(func(context.Context) Result {
		return Result{Status: status, CheckedAt: time.Now()}
	})
}
