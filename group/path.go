package group

import (
	"fmt"
	"strings"
)

// Namespace identifies which web server a path belongs to.
type Namespace string

const (
	// NamespaceServer exposes a path on the main server port.
	NamespaceServer Namespace = "server"

	// NamespaceManagement exposes a path on the management port.
	NamespaceManagement Namespace = "management"
)

// ParseNamespace parses a namespace string, case-insensitive.
func ParseNamespace(s string) (Namespace, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(NamespaceServer):
		return NamespaceServer, nil
	case string(NamespaceManagement):
		return NamespaceManagement, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidNamespace, s)
	}
}

// AdditionalPath exposes a group outside the normal health endpoint prefix,
// for example a Kubernetes liveness probe at "server:/livez".
type AdditionalPath struct {
	// Namespace is the server the path is mounted on.
	Namespace Namespace

	// Value is the path, always with a leading slash.
	Value string
}

// ParseAdditionalPath parses a "namespace:path" string such as
// "server:/livez" or "management:/healthz". The path gains a leading slash
// if missing.
func ParseAdditionalPath(s string) (AdditionalPath, error) {
	trimmed := strings.TrimSpace(s)
	namespace, value, ok := strings.Cut(trimmed, ":")
	if !ok {
		return AdditionalPath{}, fmt.Errorf("%w: %q must be namespace:path", ErrInvalidAdditionalPath, s)
	}

	ns, err := ParseNamespace(namespace)
	if err != nil {
		return AdditionalPath{}, fmt.Errorf("%w: %q: %v", ErrInvalidAdditionalPath, s, err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return AdditionalPath{}, fmt.Errorf("%w: %q has an empty path", ErrInvalidAdditionalPath, s)
	}
	if !strings.HasPrefix(value, "/") {
		value = "/" + value
	}

	return AdditionalPath{Namespace: ns, Value: value}, nil
}

// Equal reports whether two paths have the same namespace and value.
func (p AdditionalPath) Equal(other AdditionalPath) bool {
	return p.Namespace == other.Namespace && p.Value == other.Value
}

// String returns the "namespace:path" form.
func (p AdditionalPath) String() string {
	return string(p.Namespace) + ":" + p.Value
}
