// Package version holds the build version of the server.
package version

// Version is the semver of the current build. Overridden at release time with
// -ldflags "-X github.com/burnout-fit/burnout/internal/version.Version=...".
var Version = "0.3.0"

func GetCurrentVersion(mode string) string {
	if mode == "dev" {
		return Version + "-dev"
	}
	return Version
}
