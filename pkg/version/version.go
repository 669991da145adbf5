// Package version provides build information for the text tools.
package version

import (
	"fmt"
	"runtime"
)

// Every tool binary shares these values; release builds set them with
//
//	-ldflags "-X textutils/pkg/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is the build of the running binary.
type Info struct {
	Version   string // Semantic version
	GitCommit string // Git commit hash
	BuildTime string // Build timestamp
	GoVersion string // Go runtime version
	Platform  string // OS and architecture
}

// Get collects Info from the link-time variables and the runtime.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders i as the banner of tool, e.g.
// "wcr 1.2.3 (abcdefg, 2024-04-27T15:04:05Z, go1.23.1 linux/amd64)".
func (i Info) String(tool string) string {
	return fmt.Sprintf("%s %s (%s, %s, %s %s)",
		tool, i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
