//go:build windows

package win32

import (
	"fmt"

	"github.com/pinwin/pinwin/internal/config"
)

// RegisterHotKey claims combo as a system-wide shortcut. WM_HOTKEY
// messages carrying id are posted to hwnd. Registration fails when
// another process already owns the combination; call it from the
// thread that runs the message loop.
func RegisterHotKey(hwnd uintptr, id int, combo config.Combo) error {
	ret, _, errno := procRegisterHotKey.Call(
		hwnd,
		uintptr(id),
		uintptr(combo.Modifiers),
		uintptr(combo.Key),
	)
	if ret == 0 {
		return fmt.Errorf("user32.RegisterHotKey(%s): %w", combo, errno)
	}
	return nil
}

// UnregisterHotKey releases the shortcut so other applications can
// claim it again.
func UnregisterHotKey(hwnd uintptr, id int) {
	procUnregisterHotKey.Call(hwnd, uintptr(id))
}
