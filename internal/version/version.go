// Package version holds build-time version metadata.
package version

// Set at build time via -ldflags:
//
//	go build -ldflags "-X github.com/pinwin/pinwin/internal/version.Version=v1.2.3 ..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
