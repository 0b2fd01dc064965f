//go:build windows

package win32

import (
	"fmt"

	"github.com/pinwin/pinwin/internal/model"
)

// ZOrderer implements platform.ZOrderer via SetWindowPos.
type ZOrderer struct{}

// NewZOrderer creates the Windows z-order mutator.
func NewZOrderer() *ZOrderer {
	return &ZOrderer{}
}

// SetTopmost moves h into or out of the topmost band. SWP_NOMOVE and
// SWP_NOSIZE keep position and size untouched, so only z-order changes.
func (z *ZOrderer) SetTopmost(h model.Handle, topmost bool) error {
	insertAfter := hwndNotopmost
	if topmost {
		insertAfter = hwndTopmost
	}
	ret, _, errno := procSetWindowPos.Call(
		uintptr(h),
		insertAfter,
		0, 0, 0, 0,
		swpNoSize|swpNoMove,
	)
	if ret == 0 {
		return fmt.Errorf("user32.SetWindowPos(%#x): %w", uintptr(h), errno)
	}
	return nil
}
