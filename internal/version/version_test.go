package version

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	// Default value should be "unknown" until set by build
	if Version != "unknown" {
		t.Logf("Version is: %s (expected 'unknown' or version set via ldflags)", Version)
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "manualgen ") {
		t.Errorf("unexpected version string %q", s)
	}
	if !strings.Contains(s, GitCommit) || !strings.Contains(s, BuildTime) {
		t.Errorf("version string should carry build metadata, got %q", s)
	}
}
