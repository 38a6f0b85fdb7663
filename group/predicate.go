package group

import "strings"

// wildcard matches every contributor name in an include or exclude set.
const wildcard = "*"

// Predicate decides group membership for slash-delimited contributor names.
//
// A name is a member when it is included and not excluded. Including a
// parent path implicitly includes its children, and the same holds for
// exclusion. An empty include set includes everything; exclusion always
// wins over inclusion.
//
// A Predicate is immutable and safe for concurrent use.
type Predicate struct {
	include    map[string]struct{}
	exclude    map[string]struct{}
	includeAll bool
	excludeAll bool
}

// NewPredicate creates a membership predicate from include and exclude
// name sets. Names are trimmed once here; empty entries are dropped.
func NewPredicate(include, exclude []string) *Predicate {
	p := &Predicate{
		include: cleanNames(include),
		exclude: cleanNames(exclude),
	}
	_, p.includeAll = p.include[wildcard]
	_, p.excludeAll = p.exclude[wildcard]
	return p
}

// Test reports whether the named contributor is a member.
func (p *Predicate) Test(name string) bool {
	return p.isIncluded(name) && !p.isExcluded(name)
}

func (p *Predicate) isIncluded(name string) bool {
	if len(p.include) == 0 || p.includeAll {
		return true
	}
	return containsName(p.include, name)
}

func (p *Predicate) isExcluded(name string) bool {
	if p.excludeAll {
		return true
	}
	return containsName(p.exclude, name)
}

// containsName checks the name and every ancestor path against the set, so
// listing "db" covers "db/primary" and deeper descendants.
func containsName(set map[string]struct{}, name string) bool {
	for {
		if _, ok := set[name]; ok {
			return true
		}
		i := strings.LastIndex(name, "/")
		if i < 0 {
			return false
		}
		name = name[:i]
	}
}

func cleanNames(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}
