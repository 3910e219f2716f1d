// Package version exposes build metadata injected with -ldflags.
package version

//nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// GetCommit returns the source commit the binary was built from.
func GetCommit() string {
	return commit
}

// GetDate returns the build date.
func GetDate() string {
	return date
}
