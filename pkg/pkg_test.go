package pkg

import (
	"strings"
	"testing"
)

func TestVersionEmbedded(t *testing.T) {
	v := strings.TrimSpace(Version)
	if v == "" {
		t.Fatal("embedded version must not be empty")
	}

	// Expect a dotted semantic version without prefix.
	if strings.HasPrefix(v, "v") {
		t.Errorf("version must not carry a v prefix: %q", v)
	}

	if strings.Count(v, ".") != 2 {
		t.Errorf("expected MAJOR.MINOR.PATCH, got %q", v)
	}
}

func TestName(t *testing.T) {
	if Name != "calc" {
		t.Errorf("unexpected package name: %q", Name)
	}
}
