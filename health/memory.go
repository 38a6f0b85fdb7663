package health

import (
	"context"
	"fmt"
	"runtime"
)

// MemoryIndicatorConfig configures the memory health indicator.
type MemoryIndicatorConfig struct {
	// CriticalThreshold is the fraction of allocated memory that triggers
	// DOWN. Value should be between 0 and 1. Default: 0.95 (95%)
	CriticalThreshold float64

	// MaxAlloc is the maximum expected allocation in bytes.
	// If zero, uses the runtime's reported system memory.
	MaxAlloc uint64
}

// MemoryIndicator reports DOWN when heap allocation crosses a critical
// threshold and UP otherwise, with usage figures in the result details.
type MemoryIndicator struct {
	config MemoryIndicatorConfig
}

// NewMemoryIndicator creates a new memory health indicator.
func NewMemoryIndicator(config MemoryIndicatorConfig) *MemoryIndicator {
	if config.CriticalThreshold <= 0 || config.CriticalThreshold >= 1 {
		config.CriticalThreshold = 0.95
	}
	return &MemoryIndicator{config: config}
}

// Check performs the memory health check.
func (m *MemoryIndicator) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Down(ctx.Err())
	default:
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	maxAlloc := m.config.MaxAlloc
	if maxAlloc == 0 {
		maxAlloc = stats.Sys
	}
	if maxAlloc == 0 {
		return Up().WithDetails(map[string]any{
			"alloc":  stats.Alloc,
			"sys":    stats.Sys,
			"num_gc": stats.NumGC,
		})
	}

	usageRatio := float64(stats.Alloc) / float64(maxAlloc)

	details := map[string]any{
		"alloc_bytes":   stats.Alloc,
		"max_alloc":     maxAlloc,
		"usage_percent": usageRatio * 100,
		"heap_alloc":    stats.HeapAlloc,
		"heap_in_use":   stats.HeapInuse,
		"num_gc":        stats.NumGC,
		"goroutines":    runtime.NumGoroutine(),
	}

	if usageRatio >= m.config.CriticalThreshold {
		return Down(fmt.Errorf("%w: memory usage critical: %.1f%%", ErrCheckFailed, usageRatio*100)).
			WithDetails(details)
	}

	return Up().WithDetails(details)
}
