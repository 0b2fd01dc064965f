//go:build !windows

package tray

import "github.com/pinwin/pinwin/internal/platform"

// Run is a stub; the tray needs the Windows shell.
func Run(opts Options) error {
	return platform.ErrUnsupported
}
