// Package platform abstracts the native window-management surface so
// the core in internal/pin can run against a fake in tests instead of
// live OS windows.
package platform

import "github.com/pinwin/pinwin/internal/model"

// Reader performs read-only queries against OS window state.
type Reader interface {
	// Enumerate returns the handles of all top-level windows in OS
	// enumeration order. It walks the OS window list once per call and
	// caches nothing between calls.
	Enumerate() ([]model.Handle, error)

	// IsVisible reports whether the window is currently visible.
	IsVisible(h model.Handle) bool

	// Title returns the window title text, or "" when the window has
	// no title or the handle went stale.
	Title(h model.Handle) string

	// IsToolWindow reports whether the window carries the tool-window
	// extended style (floating toolbars and similar auxiliary UI).
	IsToolWindow(h model.Handle) bool

	// IsTopmost reports whether the window currently carries the
	// topmost extended style. This is the authoritative pinned state,
	// regardless of who set it.
	IsTopmost(h model.Handle) bool

	// Foreground returns the handle of the currently focused window,
	// or 0 when no window has focus.
	Foreground() model.Handle
}

// ZOrderer mutates window z-order.
type ZOrderer interface {
	// SetTopmost moves the window into (or out of) the topmost band of
	// the z-order without moving or resizing it. The request fails when
	// the handle went stale; callers decide whether to care.
	SetTopmost(h model.Handle, topmost bool) error
}
