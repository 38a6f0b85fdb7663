package group

import (
	"errors"
	"testing"
)

func TestParseNamespace(t *testing.T) {
	tests := []struct {
		input string
		want  Namespace
	}{
		{"server", NamespaceServer},
		{"management", NamespaceManagement},
		{"SERVER", NamespaceServer},
		{" Management ", NamespaceManagement},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNamespace(tt.input)
			if err != nil {
				t.Fatalf("ParseNamespace(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseNamespace(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNamespace_Invalid(t *testing.T) {
	_, err := ParseNamespace("sidecar")
	if !errors.Is(err, ErrInvalidNamespace) {
		t.Errorf("ParseNamespace() error = %v, want ErrInvalidNamespace", err)
	}
}

func TestParseAdditionalPath(t *testing.T) {
	tests := []struct {
		input string
		want  AdditionalPath
	}{
		{"server:/livez", AdditionalPath{Namespace: NamespaceServer, Value: "/livez"}},
		{"management:/healthz", AdditionalPath{Namespace: NamespaceManagement, Value: "/healthz"}},
		{"server:livez", AdditionalPath{Namespace: NamespaceServer, Value: "/livez"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAdditionalPath(tt.input)
			if err != nil {
				t.Fatalf("ParseAdditionalPath(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseAdditionalPath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAdditionalPath_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no separator", "/livez"},
		{"bad namespace", "sidecar:/livez"},
		{"empty path", "server:"},
		{"blank path", "server:   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAdditionalPath(tt.input)
			if !errors.Is(err, ErrInvalidAdditionalPath) {
				t.Errorf("ParseAdditionalPath(%q) error = %v, want ErrInvalidAdditionalPath", tt.input, err)
			}
		})
	}
}

func TestAdditionalPath_String(t *testing.T) {
	path := AdditionalPath{Namespace: NamespaceServer, Value: "/livez"}
	if got := path.String(); got != "server:/livez" {
		t.Errorf("String() = %q, want server:/livez", got)
	}
}
