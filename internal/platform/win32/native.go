//go:build windows

package win32

import "golang.org/x/sys/windows"

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows          = user32.NewProc("EnumWindows")
	procIsWindowVisible      = user32.NewProc("IsWindowVisible")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowLongW       = user32.NewProc("GetWindowLongW")
	procSetWindowPos         = user32.NewProc("SetWindowPos")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procRegisterHotKey       = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey     = user32.NewProc("UnregisterHotKey")
)

const (
	// GWL_EXSTYLE (-20) as the DWORD GetWindowLongW sees it.
	gwlExstyle = 0xFFFFFFEC

	wsExTopmost    = 0x00000008
	wsExToolWindow = 0x00000080

	swpNoSize = 0x0001
	swpNoMove = 0x0002
)

var (
	hwndTopmost   = ^uintptr(0) // HWND_TOPMOST (-1)
	hwndNotopmost = ^uintptr(1) // HWND_NOTOPMOST (-2)
)
