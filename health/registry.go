package health

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// RegistryConfig configures the indicator registry.
type RegistryConfig struct {
	// Timeout is the maximum time to wait for all checks.
	// Default: 10 seconds
	Timeout time.Duration

	// Parallel runs health checks in parallel when true.
	// Default: true
	Parallel bool

	// MaxConcurrent bounds the number of checks running at once when
	// Parallel is true. Zero means unbounded.
	MaxConcurrent int
}

// Registry holds named health indicators.
//
// Names are slash-delimited hierarchical paths such as "db/primary".
// Registration order is preserved so that fan-out results are
// deterministic for a fixed set of indicators.
type Registry struct {
	config     RegistryConfig
	mu         sync.RWMutex
	indicators map[string]Indicator
	order      []string
}

// NewRegistry creates a new indicator registry.
func NewRegistry(config ...RegistryConfig) *Registry {
	cfg := RegistryConfig{
		Timeout:  10 * time.Second,
		Parallel: true,
	}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Timeout <= 0 {
			cfg.Timeout = 10 * time.Second
		}
	}

	return &Registry{
		config:     cfg,
		indicators: make(map[string]Indicator),
		order:      make([]string, 0),
	}
}

// Register adds an indicator under the given name. The name must be a
// non-empty slash-delimited path with non-empty segments and must not be
// registered already.
func (r *Registry) Register(name string, indicator Indicator) error {
	if err := checkName(name); err != nil {
		return err
	}
	if indicator == nil {
		return fmt.Errorf("%w: nil indicator for %q", ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.indicators[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.indicators[name] = indicator
	r.order = append(r.order, name)
	return nil
}

// Unregister removes the indicator with the given name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.indicators, name)

	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Names returns the registered contributor names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Check runs a single named health check.
func (r *Registry) Check(ctx context.Context, name string) (Result, error) {
	r.mu.RLock()
	indicator, ok := r.indicators[name]
	r.mu.RUnlock()

	if !ok {
		return Result{}, ErrIndicatorNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	return r.runCheck(ctx, indicator), nil
}

// CheckAll runs every registered health check and returns the results
// keyed by contributor name.
func (r *Registry) CheckAll(ctx context.Context) map[string]Result {
	return r.CheckMatching(ctx, nil)
}

// CheckMatching runs the health checks whose names satisfy member and
// returns the results keyed by contributor name. A nil member matches
// every indicator.
func (r *Registry) CheckMatching(ctx context.Context, member func(name string) bool) map[string]Result {
	r.mu.RLock()
	names := make([]string, 0, len(r.order))
	indicators := make([]Indicator, 0, len(r.order))
	for _, name := range r.order {
		if member == nil || member(name) {
			names = append(names, name)
			indicators = append(indicators, r.indicators[name])
		}
	}
	r.mu.RUnlock()

	results := make(map[string]Result, len(names))
	if len(names) == 0 {
		return results
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	if !r.config.Parallel {
		for i, name := range names {
			results[name] = r.runCheck(ctx, indicators[i])
		}
		return results
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	if r.config.MaxConcurrent > 0 {
		g.SetLimit(r.config.MaxConcurrent)
	}

	for i, name := range names {
		indicator := indicators[i]
		g.Go(func() error {
			result := r.runCheck(ctx, indicator)
			mu.Lock()
			results[name] = result
			mu.Unlock()
			return nil
		})
	}

	// Checks never return errors through the group; Wait only joins.
	_ = g.Wait()

	return results
}

// runCheck executes one indicator, stamping duration and guarding against
// a check that outlives the context.
func (r *Registry) runCheck(ctx context.Context, indicator Indicator) Result {
	start := time.Now()

	resultCh := make(chan Result, 1)

	go func() {
		result := indicator.Check(ctx)
		result.Duration = time.Since(start)
		if result.CheckedAt.IsZero() {
			result.CheckedAt = start
		}
		resultCh <- result
	}()

	select {
	case result := <-resultCh:
		return result
	case <-ctx.Done():
		return Result{
			Status:    StatusDown,
			Err:       ErrCheckTimeout,
			Duration:  time.Since(start),
			CheckedAt: start,
		}
	}
}

// checkName validates a slash-delimited contributor name.
func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for _, segment := range strings.Split(name, "/") {
		if strings.TrimSpace(segment) == "" {
			return fmt.Errorf("%w: %q has an empty path segment", ErrInvalidName, name)
		}
	}
	return nil
}
