package version

import "fmt"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/alexiusacademia/goshaft/internal/version.Version=0.3.1 \
//	  -X github.com/alexiusacademia/goshaft/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Copyright holder shown in the banner
const (
	Owner = "The goshaft Authors"
	Year  = "2026"
)

// String formats the version line printed by 'goshaft version'
func String() string {
	return fmt.Sprintf("goshaft v%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
