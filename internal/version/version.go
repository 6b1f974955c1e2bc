// Package version carries build metadata set through -ldflags.
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String describes the build, e.g. "v1.2.0 (commit: abc123, built: 2026-10-19)"
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
