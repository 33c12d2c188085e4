package gndwc

var (
	// Version is the version of the gndwc code base.
	Version = "v0.1.0"

	// Build is the timestamp of the build.
	Build = "n/a"
)
