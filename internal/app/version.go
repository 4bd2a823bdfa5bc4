package app

import "fmt"

// Build metadata, injected through ldflags:
//
//	-X github.com/morningfm/front/internal/app.Version=1.0.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata for startup logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
