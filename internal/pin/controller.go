// Package pin implements the window-state toggler: enumeration of
// pinnable top-level windows, and the controller that flips a window's
// always-on-top attribute while tracking what this process pinned.
package pin

import (
	"github.com/pinwin/pinwin/internal/model"
	"github.com/pinwin/pinwin/internal/platform"
)

// ToggleResult describes the state a toggle requested.
type ToggleResult struct {
	Handle model.Handle `yaml:"hwnd"            json:"hwnd"`
	Title  string       `yaml:"title,omitempty" json:"title,omitempty"`
	Pinned bool         `yaml:"pinned"          json:"pinned"`
}

// Controller owns the set of windows this process has pinned and flips
// the topmost attribute through the platform backend.
//
// The tracking set is a hint, not authority: the OS topmost attribute
// is the truth, and every toggle re-derives it from the Reader before
// mutating anything. The set only remembers which windows this process
// pinned, so they can be unpinned in bulk at shutdown.
//
// Controller is not safe for concurrent use. All callers run on a
// single event loop: the tray message loop, or the MCP server behind
// its provider mutex.
type Controller struct {
	reader  platform.Reader
	orderer platform.ZOrderer
	tracked map[model.Handle]struct{}
}

// NewController returns a Controller with an empty tracking set.
func NewController(reader platform.Reader, orderer platform.ZOrderer) *Controller {
	return &Controller{
		reader:  reader,
		orderer: orderer,
		tracked: make(map[model.Handle]struct{}),
	}
}

// Toggle flips the topmost attribute of h and returns the state that
// was requested.
//
// The z-order change is not re-verified: when h went stale between
// enumeration and this call, SetTopmost fails harmlessly and the
// result still reports the intended state, not a confirmed
// post-condition.
func (c *Controller) Toggle(h model.Handle) ToggleResult {
	res := ToggleResult{Handle: h, Title: c.reader.Title(h)}

	if c.reader.IsTopmost(h) {
		_ = c.orderer.SetTopmost(h, false)
		delete(c.tracked, h)
		return res
	}

	_ = c.orderer.SetTopmost(h, true)
	c.tracked[h] = struct{}{}
	res.Pinned = true
	return res
}

// ToggleForeground toggles the currently focused window. ok is false
// when no window has focus, in which case nothing was toggled.
func (c *Controller) ToggleForeground() (res ToggleResult, ok bool) {
	h := c.reader.Foreground()
	if h == 0 {
		return ToggleResult{}, false
	}
	return c.Toggle(h), true
}

// IsPinned reports whether h is currently pinned: either this process
// pinned it, or the OS attribute says something else did.
func (c *Controller) IsPinned(h model.Handle) bool {
	if _, ok := c.tracked[h]; ok {
		return true
	}
	return c.reader.IsTopmost(h)
}

// Tracked returns a snapshot of the handles this process pinned.
func (c *Controller) Tracked() []model.Handle {
	handles := make([]model.Handle, 0, len(c.tracked))
	for h := range c.tracked {
		handles = append(handles, h)
	}
	return handles
}

// UnpinAll clears the topmost attribute on every tracked window and
// empties the set. Windows pinned by other processes are not touched.
// It returns the number of windows unpinning was requested for.
func (c *Controller) UnpinAll() int {
	n := len(c.tracked)
	for h := range c.tracked {
		_ = c.orderer.SetTopmost(h, false)
	}
	c.tracked = make(map[model.Handle]struct{})
	return n
}
