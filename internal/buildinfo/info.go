package buildinfo

import "fmt"

var (
	// Version will be set via ldflags during build
	Version = "dev"
	// Commit will be set via ldflags during build
	Commit = "none"
	// Date will be set via ldflags during build
	Date = "unknown"
)

// String returns the version line shown by --version
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
