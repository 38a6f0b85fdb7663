package group

import (
	"fmt"
	"sort"
	"strings"
)

// Groups holds every configured health endpoint group: exactly one primary
// group plus zero or more named groups.
//
// Groups is immutable after construction and safe for concurrent reads.
// Name iteration is in sorted order so results are deterministic.
type Groups struct {
	primary Group
	names   []string
	byName  map[string]Group
}

// NewGroups creates the group registry from a primary group and a name to
// group mapping. The mapping is copied; names are trimmed and must be
// non-empty and map to non-nil groups. Two groups sharing an additional
// path is a configuration error.
func NewGroups(primary Group, named map[string]Group) (*Groups, error) {
	if primary == nil {
		return nil, ErrNilPrimaryGroup
	}

	byName := make(map[string]Group, len(named))
	names := make([]string, 0, len(named))
	for name, g := range named {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidGroupName, name)
		}
		if g == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilGroup, trimmed)
		}
		if _, exists := byName[trimmed]; exists {
			return nil, fmt.Errorf("%w: %q appears twice after trimming", ErrInvalidGroupName, trimmed)
		}
		byName[trimmed] = g
		names = append(names, trimmed)
	}
	sort.Strings(names)

	groups := &Groups{primary: primary, names: names, byName: byName}
	if err := groups.checkAdditionalPaths(); err != nil {
		return nil, err
	}
	return groups, nil
}

// checkAdditionalPaths rejects configurations where a lookup by path would
// be ambiguous.
func (g *Groups) checkAdditionalPaths() error {
	seen := make(map[AdditionalPath]string)

	record := func(name string, grp Group) error {
		path := grp.AdditionalPath()
		if path == nil {
			return nil
		}
		if other, dup := seen[*path]; dup {
			return fmt.Errorf("%w: %s used by %s and %s", ErrDuplicateAdditionalPath, path, other, name)
		}
		seen[*path] = name
		return nil
	}

	if err := record("primary", g.primary); err != nil {
		return err
	}
	for _, name := range g.names {
		if err := record(name, g.byName[name]); err != nil {
			return err
		}
	}
	return nil
}

// Primary returns the primary group. It is never nil.
func (g *Groups) Primary() Group {
	return g.primary
}

// Names returns the additional group names, sorted, excluding the primary
// group.
func (g *Groups) Names() []string {
	names := make([]string, len(g.names))
	copy(names, g.names)
	return names
}

// Get returns the group with the given name, or nil if no such group
// exists. A miss is not an error; the caller decides how to report it.
func (g *Groups) Get(name string) Group {
	return g.byName[name]
}

// GetByPath returns the group exposed on the given additional path, or nil
// if none matches. The primary group is considered first.
func (g *Groups) GetByPath(path AdditionalPath) Group {
	if p := g.primary.AdditionalPath(); p != nil && p.Equal(path) {
		return g.primary
	}
	for _, name := range g.names {
		grp := g.byName[name]
		if p := grp.AdditionalPath(); p != nil && p.Equal(path) {
			return grp
		}
	}
	return nil
}

// AllWithNamespace returns every group, the primary included, whose
// additional path lives in the given namespace.
func (g *Groups) AllWithNamespace(namespace Namespace) []Group {
	var matched []Group
	if p := g.primary.AdditionalPath(); p != nil && p.Namespace == namespace {
		matched = append(matched, g.primary)
	}
	for _, name := range g.names {
		grp := g.byName[name]
		if p := grp.AdditionalPath(); p != nil && p.Namespace == namespace {
			matched = append(matched, grp)
		}
	}
	return matched
}
