// Package version provides build version information embedding.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/crochee/ope/version.Version=1.2.0"
package version

import "runtime/debug"

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
)

// Short returns the version string, falling back to module build info
// when no version was embedded.
func Short() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// Full returns the version string with the commit suffix when known.
func Full() string {
	v := Short()
	if GitCommit != "" {
		return v + "+" + GitCommit
	}
	return v
}
