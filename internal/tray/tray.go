// Package tray runs the notification-area collaborator: a hidden
// window whose message loop drives the tray icon, the popup menu of
// pinnable windows, toggle balloons, and the global hotkey. The core
// in internal/pin stays presentation-free; everything here only calls
// into it and renders its results.
package tray

import (
	"log/slog"

	"github.com/pinwin/pinwin/internal/config"
	"github.com/pinwin/pinwin/internal/pin"
	"github.com/pinwin/pinwin/internal/platform"
)

// Options wires the tray to the core and its configuration.
type Options struct {
	Config     *config.Config
	ConfigPath string // watched for hot-reload; "" disables the watcher
	Controller *pin.Controller
	Reader     platform.Reader
	Logger     *slog.Logger
}
