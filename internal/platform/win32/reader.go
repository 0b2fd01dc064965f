//go:build windows

package win32

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/pinwin/pinwin/internal/model"
)

// Reader implements platform.Reader over user32.
type Reader struct{}

// NewReader creates the Windows window-state reader.
func NewReader() *Reader {
	return &Reader{}
}

// enumCallback is created once: NewCallback allocations are permanent
// and the process has a hard cap on them.
var enumCallback = syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
	handles := (*[]model.Handle)(unsafe.Pointer(lparam))
	*handles = append(*handles, model.Handle(hwnd))
	return 1
})

// Enumerate walks all top-level windows once, in OS z-order.
func (r *Reader) Enumerate() ([]model.Handle, error) {
	var handles []model.Handle
	ret, _, _ := procEnumWindows.Call(enumCallback, uintptr(unsafe.Pointer(&handles)))
	if ret == 0 {
		return nil, fmt.Errorf("user32.EnumWindows returned FALSE")
	}
	return handles, nil
}

func (r *Reader) IsVisible(h model.Handle) bool {
	v, _, _ := procIsWindowVisible.Call(uintptr(h))
	return v != 0
}

// Title reads the window title. The buffer is sized to the reported
// length plus one for the terminator. Stale handles report length 0
// and come back as "".
func (r *Reader) Title(h model.Handle) string {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])),
		n+1,
	)
	return windows.UTF16ToString(buf)
}

func (r *Reader) IsToolWindow(h model.Handle) bool {
	return exStyle(h)&wsExToolWindow != 0
}

func (r *Reader) IsTopmost(h model.Handle) bool {
	return exStyle(h)&wsExTopmost != 0
}

// Foreground returns the focused window, or 0 when nothing has focus
// (screen locked, desktop activating).
func (r *Reader) Foreground() model.Handle {
	h, _, _ := procGetForegroundWindow.Call()
	return model.Handle(h)
}

func exStyle(h model.Handle) uintptr {
	s, _, _ := procGetWindowLongW.Call(uintptr(h), uintptr(gwlExstyle))
	return s
}
