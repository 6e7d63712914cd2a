package version

import "runtime"

// Populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	OS      = runtime.GOOS
	Arch    = runtime.GOARCH
)
