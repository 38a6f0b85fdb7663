// Package group provides named, configured views over health contributors.
//
// A Group selects a subset of contributors by name, decides how much of the
// result is visible to a caller, and carries the status aggregator and HTTP
// code mapper used for its responses. Groups holds every configured group:
// exactly one primary group plus zero or more named groups such as
// "liveness" and "readiness".
//
// # Membership
//
// Membership is decided by an include/exclude predicate over slash-delimited
// contributor names. Including a parent path includes all of its children,
// excluding a parent excludes all of its children, and exclusion always wins:
//
//	p := group.NewPredicate([]string{"db"}, nil)
//	p.Test("db/primary") // true: child of an included parent
//
// The wildcard "*" includes or excludes everything. An empty include set
// means include everything.
//
// # Construction
//
// Groups are built once at startup, either directly:
//
//	readiness := group.NewGroup(group.GroupConfig{
//	    Include:     []string{"db", "cache"},
//	    ShowDetails: group.ShowAlways,
//	})
//	groups, err := group.NewGroups(primary, map[string]group.Group{
//	    "readiness": readiness,
//	})
//
// or from YAML configuration via ParseConfig and Config.Build. Invalid
// configuration, such as an unparseable additional path or two groups
// sharing one, fails construction; the application should refuse to start
// rather than serve ambiguous groups.
//
// Groups are immutable after construction and safe for concurrent reads.
package group
