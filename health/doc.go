// Package health provides status primitives and contributor execution for
// grouped health checking.
//
// This package implements the value model shared by the rest of the module:
// the Status type with its severity ordering, the StatusAggregator strategy
// that reduces many statuses to one, the HTTPCodeStatusMapper that turns an
// aggregate status into an HTTP response code, and a Registry of named
// Indicators that produce per-contributor results.
//
// # Core Concepts
//
// A Status is a named health state such as UP or DOWN. Custom codes are
// allowed; two statuses are equal when their codes are equal. A
// StatusAggregator holds a severity order (most severe first) and picks the
// most severe status present. An Indicator is any component that can report
// its health as a Result.
//
// # Basic Usage
//
//	reg := health.NewRegistry()
//	reg.Register("db", health.IndicatorFunc(func(ctx context.Context) health.Result {
//	    if err := db.PingContext(ctx); err != nil {
//	        return health.Down(err)
//	    }
//	    return health.Up()
//	}))
//
//	results := reg.CheckAll(ctx)
//
// # Aggregating Statuses
//
// Use a StatusAggregator to reduce the per-contributor statuses to a single
// overall status, and an HTTPCodeStatusMapper to choose the response code:
//
//	agg := health.NewDefaultStatusAggregator()
//	mapper := health.NewDefaultHTTPCodeStatusMapper()
//
//	statuses := make([]health.Status, 0, len(results))
//	for _, r := range results {
//	    statuses = append(statuses, r.Status)
//	}
//	overall := agg.AggregateStatus(statuses...)
//	code := mapper.StatusCode(overall)
//
// # Hierarchical Names
//
// Contributor names are slash-delimited paths such as "db/primary". The
// group package resolves membership against these paths; this package only
// validates and stores them.
package health
