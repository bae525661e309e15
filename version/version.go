// Package version holds build metadata injected at link time via
// -ldflags "-X github.com/commercekit/storefront/version.Version=...".
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"
)
