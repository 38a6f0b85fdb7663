package health

import (
	"fmt"
	"sort"
	"strings"
)

// ValidateContributorNames checks that no contributor name collides with a
// configured group name. A collision makes "/health/{name}" ambiguous
// between a group view and a single contributor, so it is treated as a
// fatal misconfiguration: run this once at startup and fail to start on
// error.
func ValidateContributorNames(contributorNames, groupNames []string) error {
	groups := make(map[string]struct{}, len(groupNames))
	for _, name := range groupNames {
		name = strings.TrimSpace(name)
		if name != "" {
			groups[name] = struct{}{}
		}
	}
	if len(groups) == 0 {
		return nil
	}

	var collisions []string
	seen := make(map[string]struct{})
	for _, name := range contributorNames {
		name = strings.TrimSpace(name)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, ok := groups[name]; ok {
			collisions = append(collisions, name)
		}
	}
	if len(collisions) == 0 {
		return nil
	}

	sort.Strings(collisions)
	return fmt.Errorf("%w: %s", ErrNameCollision, strings.Join(collisions, ", "))
}

// ValidateGroupNames checks the registry's contributor names against the
// given group names.
func (r *Registry) ValidateGroupNames(groupNames []string) error {
	return ValidateContributorNames(r.Names(), groupNames)
}
