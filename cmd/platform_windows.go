//go:build windows

package cmd

// Side-effect import registers the Windows platform provider.
import _ "github.com/pinwin/pinwin/internal/platform/win32"
