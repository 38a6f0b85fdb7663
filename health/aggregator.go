package health

import "strings"

// StatusAggregator reduces a collection of statuses to a single aggregate
// status.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Determinism: the same inputs in the same order yield the same result.
// - Errors: implementations must not panic; an empty input yields a fixed,
//   documented default rather than an error.
type StatusAggregator interface {
	// AggregateStatus returns the most severe of the given statuses.
	AggregateStatus(statuses ...Status) Status
}

// DefaultStatusOrder returns the severity order used when none is
// configured, most severe first.
func DefaultStatusOrder() []string {
	return []string{
		StatusDown.Code,
		StatusOutOfService.Code,
		StatusUp.Code,
		StatusUnknown.Code,
	}
}

// SimpleStatusAggregator aggregates statuses using a fixed severity order.
//
// The order lists status codes from most severe (index 0) to least severe.
// Aggregation selects the status whose code has the lowest index among the
// inputs. A code that does not appear in the order ranks ahead of every
// configured code: an unrecognized state is never masked by a recognized
// "better" one. Ties are broken by first-seen argument order.
type SimpleStatusAggregator struct {
	order []string
	index map[string]int
}

// NewSimpleStatusAggregator creates an aggregator with the given severity
// order, most severe first. Codes are trimmed and empty entries dropped.
// An empty order falls back to DefaultStatusOrder.
func NewSimpleStatusAggregator(order ...string) *SimpleStatusAggregator {
	clean := make([]string, 0, len(order))
	for _, code := range order {
		code = strings.TrimSpace(code)
		if code != "" {
			clean = append(clean, code)
		}
	}
	if len(clean) == 0 {
		clean = DefaultStatusOrder()
	}

	index := make(map[string]int, len(clean))
	for i, code := range clean {
		if _, exists := index[code]; !exists {
			index[code] = i
		}
	}

	return &SimpleStatusAggregator{order: clean, index: index}
}

// NewDefaultStatusAggregator creates an aggregator using DefaultStatusOrder.
func NewDefaultStatusAggregator() *SimpleStatusAggregator {
	return NewSimpleStatusAggregator(DefaultStatusOrder()...)
}

// Order returns a copy of the configured severity order, most severe first.
func (a *SimpleStatusAggregator) Order() []string {
	order := make([]string, len(a.order))
	copy(order, a.order)
	return order
}

// AggregateStatus returns the most severe of the given statuses per the
// configured order. An empty input returns StatusUnknown.
func (a *SimpleStatusAggregator) AggregateStatus(statuses ...Status) Status {
	if len(statuses) == 0 {
		return StatusUnknown
	}

	selected := statuses[0]
	rank := a.rank(selected)

	for _, status := range statuses[1:] {
		if r := a.rank(status); r < rank {
			selected = status
			rank = r
		}
	}

	return selected
}

// rank returns the severity index for a status. Codes absent from the
// configured order sort before index 0.
func (a *SimpleStatusAggregator) rank(status Status) int {
	if i, ok := a.index[status.Code]; ok {
		return i
	}
	return -1
}
