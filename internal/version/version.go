// Package version reports the bookshelf build version.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version and Commit can be set at build time:
//
//	go build -ldflags="-X github.com/muurk/bookshelf/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/bookshelf/internal/version.Commit=abc1234"
//
// Unset values are filled from the module build info, then default to
// "dev" and "unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fill(info)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fill copies the main module version and VCS revision into unset variables.
func fill(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	if Commit != "" {
		return
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	Commit = revision
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// IsRelease reports whether this is a tagged build.
func IsRelease() bool {
	return strings.HasPrefix(Version, "v")
}
