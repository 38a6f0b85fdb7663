package group

import (
	"github.com/jonwraymond/healthops/health"
)

// Group is a named, configured view over health contributors.
//
// Contract:
// - Concurrency: implementations must be immutable after construction and
//   safe for concurrent use.
// - Errors: accessors must not panic; StatusAggregator and
//   HTTPCodeStatusMapper never return nil.
type Group interface {
	// IsMember reports whether the named contributor belongs to this group.
	IsMember(name string) bool

	// ShowComponents reports whether per-component statuses are visible
	// given the caller's authorization.
	ShowComponents(authorized bool) bool

	// ShowDetails reports whether per-component details are visible given
	// the caller's authorization.
	ShowDetails(authorized bool) bool

	// StatusAggregator returns the aggregator used for this group.
	StatusAggregator() health.StatusAggregator

	// HTTPCodeStatusMapper returns the HTTP code mapper used for this
	// group.
	HTTPCodeStatusMapper() health.HTTPCodeStatusMapper

	// AdditionalPath returns the path this group is additionally exposed
	// on, or nil.
	AdditionalPath() *AdditionalPath
}

// GroupConfig configures a group.
type GroupConfig struct {
	// Include lists contributor names (or "*") that belong to the group.
	// Empty means include everything.
	Include []string

	// Exclude lists contributor names (or "*") removed from the group.
	// Exclusion wins over inclusion.
	Exclude []string

	// StatusAggregator overrides the shared default aggregator.
	StatusAggregator health.StatusAggregator

	// HTTPCodeStatusMapper overrides the shared default mapper.
	HTTPCodeStatusMapper health.HTTPCodeStatusMapper

	// ShowDetails controls visibility of per-component details.
	// Default: ShowNever.
	ShowDetails Show

	// ShowComponents controls visibility of the component tree. When nil
	// it follows ShowDetails.
	ShowComponents *Show

	// AdditionalPath additionally exposes the group on the given path.
	AdditionalPath *AdditionalPath
}

// group is the struct-backed Group implementation.
type group struct {
	predicate      *Predicate
	showComponents Show
	showDetails    Show
	aggregator     health.StatusAggregator
	mapper         health.HTTPCodeStatusMapper
	path           AdditionalPath
	hasPath        bool
}

// NewGroup creates a group from the given configuration, applying
// defaults for any unset strategy.
func NewGroup(config GroupConfig) Group {
	g := &group{
		predicate:   NewPredicate(config.Include, config.Exclude),
		showDetails: config.ShowDetails,
		aggregator:  config.StatusAggregator,
		mapper:      config.HTTPCodeStatusMapper,
	}

	if config.ShowComponents != nil {
		g.showComponents = *config.ShowComponents
	} else {
		g.showComponents = config.ShowDetails
	}
	if g.aggregator == nil {
		g.aggregator = health.NewDefaultStatusAggregator()
	}
	if g.mapper == nil {
		g.mapper = health.NewDefaultHTTPCodeStatusMapper()
	}
	if config.AdditionalPath != nil {
		g.path = *config.AdditionalPath
		g.hasPath = true
	}

	return g
}

func (g *group) IsMember(name string) bool {
	return g.predicate.Test(name)
}

func (g *group) ShowComponents(authorized bool) bool {
	return g.showComponents.ShouldShow(authorized)
}

func (g *group) ShowDetails(authorized bool) bool {
	return g.showDetails.ShouldShow(authorized)
}

func (g *group) StatusAggregator() health.StatusAggregator {
	return g.aggregator
}

func (g *group) HTTPCodeStatusMapper() health.HTTPCodeStatusMapper {
	return g.mapper
}

func (g *group) AdditionalPath() *AdditionalPath {
	if !g.hasPath {
		return nil
	}
	path := g.path
	return &path
}
