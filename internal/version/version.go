package version

import "fmt"

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/manualgen/internal/version.Version=v1.2.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the build metadata on one line for --build-version.
func String() string {
	return fmt.Sprintf("manualgen %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
