//go:build windows

package tray

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sys/windows"

	"github.com/pinwin/pinwin/internal/config"
	"github.com/pinwin/pinwin/internal/icon"
	"github.com/pinwin/pinwin/internal/model"
	"github.com/pinwin/pinwin/internal/pin"
	"github.com/pinwin/pinwin/internal/platform"
	"github.com/pinwin/pinwin/internal/platform/win32"
)

var (
	user32  = windows.NewLazySystemDLL("user32.dll")
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")

	procRegisterClassExW    = user32.NewProc("RegisterClassExW")
	procCreateWindowExW     = user32.NewProc("CreateWindowExW")
	procDefWindowProcW      = user32.NewProc("DefWindowProcW")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessageW    = user32.NewProc("DispatchMessageW")
	procPostQuitMessage     = user32.NewProc("PostQuitMessage")
	procPostMessageW        = user32.NewProc("PostMessageW")
	procDestroyWindow       = user32.NewProc("DestroyWindow")
	procCreatePopupMenu     = user32.NewProc("CreatePopupMenu")
	procDestroyMenu         = user32.NewProc("DestroyMenu")
	procAppendMenuW         = user32.NewProc("AppendMenuW")
	procTrackPopupMenu      = user32.NewProc("TrackPopupMenu")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procCreateIconIndirect  = user32.NewProc("CreateIconIndirect")
	procDestroyIcon         = user32.NewProc("DestroyIcon")
	procGetSystemMetrics    = user32.NewProc("GetSystemMetrics")

	procShellNotifyIconW = shell32.NewProc("Shell_NotifyIconW")

	procCreateBitmap = gdi32.NewProc("CreateBitmap")
	procDeleteObject = gdi32.NewProc("DeleteObject")
)

const (
	wmDestroy = 0x0002
	wmCommand = 0x0111
	wmHotkey  = 0x0312
	wmUser    = 0x0400
	wmApp     = 0x8000

	wmTrayIcon     = wmUser + 1
	wmReloadConfig = wmApp + 1

	wmLButtonUp = 0x0202
	wmRButtonUp = 0x0205

	nimAdd    = 0x00000000
	nimModify = 0x00000001
	nimDelete = 0x00000002

	nifMessage = 0x00000001
	nifIcon    = 0x00000002
	nifTip     = 0x00000004
	nifInfo    = 0x00000010

	niifInfo = 0x00000001

	tpmBottomAlign = 0x0020
	tpmLeftAlign   = 0x0000

	mfString    = 0x00000000
	mfChecked   = 0x00000008
	mfGrayed    = 0x00000001
	mfDisabled  = 0x00000002
	mfSeparator = 0x00000800

	smCxSmIcon = 49

	hotkeyID = 1

	idStatus   = 1001
	idUnpinAll = 1002
	idExit     = 1003

	// Menu IDs at and above this are window entries.
	idWindowBase = 2000
)

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   syscall.Handle
	Icon       syscall.Handle
	Cursor     syscall.Handle
	Background syscall.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     syscall.Handle
}

type notifyIconData struct {
	Size            uint32
	Wnd             uintptr
	ID              uint32
	Flags           uint32
	CallbackMessage uint32
	Icon            uintptr
	Tip             [128]uint16
	State           uint32
	StateMask       uint32
	Info            [256]uint16
	TimeoutVersion  uint32
	InfoTitle       [64]uint16
	InfoFlags       uint32
	GuidItem        windows.GUID
	BalloonIcon     uintptr
}

type point struct {
	X int32
	Y int32
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type iconInfo struct {
	FIcon    int32
	XHotspot uint32
	YHotspot uint32
	MaskBmp  uintptr
	ColorBmp uintptr
}

// trayState is the message-loop-owned state. The loop thread is the
// only writer once Run is past setup; the config watcher goroutine
// never touches it and only posts messages.
type trayState struct {
	opts  Options
	cfg   *config.Config
	combo config.Combo

	hwnd      uintptr
	iconIdle  uintptr
	iconPin   uintptr
	nid       notifyIconData
	hotkeyOK  bool
	menuItems map[uintptr]model.Handle
}

var st *trayState

// Run sets up the tray icon and blocks in the message loop until the
// user exits. Everything dispatched from the loop (menu clicks, the
// hotkey, config reloads) runs on this one OS thread, so the
// Controller needs no locking.
func Run(opts Options) error {
	runtime.LockOSThread()

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	combo, err := config.ParseCombo(opts.Config.Hotkey.Combo)
	if err != nil {
		return err
	}

	st = &trayState{opts: opts, cfg: opts.Config, combo: combo}

	className, _ := windows.UTF16PtrFromString("PinwinTrayClass")
	wcx := wndClassEx{
		Size:      uint32(unsafe.Sizeof(wndClassEx{})),
		WndProc:   syscall.NewCallback(wndProc),
		ClassName: className,
	}
	if ret, _, errno := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wcx))); ret == 0 {
		return fmt.Errorf("RegisterClassEx: %w", errno)
	}

	windowName, _ := windows.UTF16PtrFromString("pinwin")
	hwnd, _, errno := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowName)),
		0, 0, 0, 0, 0,
		0, 0, 0, 0,
	)
	if hwnd == 0 {
		return fmt.Errorf("CreateWindowEx: %w", errno)
	}
	st.hwnd = hwnd

	st.iconIdle = makeIcon(false)
	st.iconPin = makeIcon(true)
	addNotifyIcon()

	if err := win32.RegisterHotKey(hwnd, hotkeyID, combo); err != nil {
		// Another process owns the combo. The tray stays useful without
		// the shortcut, so report once and keep going.
		opts.Logger.Warn("hotkey registration failed, continuing without shortcut",
			"combo", combo.String(), "error", err)
		balloon("Hotkey unavailable", combo.String()+" is in use by another application")
	} else {
		st.hotkeyOK = true
		defer win32.UnregisterHotKey(hwnd, hotkeyID)
	}

	if opts.ConfigPath != "" {
		stop, err := watchConfig(opts.ConfigPath, hwnd, opts.Logger)
		if err != nil {
			opts.Logger.Warn("config watch disabled", "error", err)
		} else {
			defer stop()
		}
	}

	opts.Logger.Info("tray running", "hotkey", combo.String())

	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if ret == 0 || ret == ^uintptr(0) {
			break
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}

	// Windows pinned from this process get released before exit.
	if n := opts.Controller.UnpinAll(); n > 0 {
		opts.Logger.Info("released pinned windows", "count", n)
	}

	procShellNotifyIconW.Call(nimDelete, uintptr(unsafe.Pointer(&st.nid)))
	if st.iconIdle != 0 {
		procDestroyIcon.Call(st.iconIdle)
	}
	if st.iconPin != 0 {
		procDestroyIcon.Call(st.iconPin)
	}
	procDestroyWindow.Call(st.hwnd)
	return nil
}

func wndProc(hwnd, message, wparam, lparam uintptr) uintptr {
	switch message {
	case wmTrayIcon:
		if lparam == wmRButtonUp || lparam == wmLButtonUp {
			showMenu()
		}
	case wmCommand:
		onCommand(wparam & 0xFFFF)
	case wmHotkey:
		if wparam == hotkeyID {
			onHotkey()
		}
	case wmReloadConfig:
		reloadConfig()
	case wmDestroy:
		procPostQuitMessage.Call(0)
	default:
		ret, _, _ := procDefWindowProcW.Call(hwnd, message, wparam, lparam)
		return ret
	}
	return 0
}

func onCommand(id uintptr) {
	switch id {
	case idExit:
		procPostQuitMessage.Call(0)
	case idUnpinAll:
		n := st.opts.Controller.UnpinAll()
		updateIcon()
		if st.cfg.Notify.Balloon {
			balloon("Unpinned all", fmt.Sprintf("%d window(s) released", n))
		}
	default:
		if h, ok := st.menuItems[id]; ok {
			res := st.opts.Controller.Toggle(h)
			updateIcon()
			notifyToggle(res)
		}
	}
}

func onHotkey() {
	res, ok := st.opts.Controller.ToggleForeground()
	if !ok {
		// No focused window right now; nothing to toggle.
		return
	}
	updateIcon()
	notifyToggle(res)
}

// showMenu enumerates fresh and renders one checkable entry per
// window. Menu item IDs are rebuilt on every open, so handles are
// never reused across a window closing.
func showMenu() {
	menu, _, _ := procCreatePopupMenu.Call()
	if menu == 0 {
		return
	}
	defer procDestroyMenu.Call(menu)

	wins := pin.ListWindows(st.opts.Reader)
	sortMode, _ := platform.ParseSortMode(st.cfg.List.Sort)
	pin.SortWindows(wins, sortMode)

	tracked := len(st.opts.Controller.Tracked())
	appendMenu(menu, mfString|mfGrayed|mfDisabled, idStatus,
		fmt.Sprintf("pinwin — %d pinned", tracked))
	appendMenu(menu, mfSeparator, 0, "")

	st.menuItems = make(map[uintptr]model.Handle, len(wins))
	if len(wins) == 0 {
		appendMenu(menu, mfString|mfGrayed|mfDisabled, 0, "No windows found")
	}
	for i, w := range wins {
		id := uintptr(idWindowBase + i)
		st.menuItems[id] = w.Handle

		flags := uintptr(mfString)
		if st.opts.Controller.IsPinned(w.Handle) {
			flags |= mfChecked
		}
		appendMenu(menu, flags, id, truncateTitle(w.Title))
	}

	appendMenu(menu, mfSeparator, 0, "")
	unpinFlags := uintptr(mfString)
	if tracked == 0 {
		unpinFlags |= mfGrayed | mfDisabled
	}
	appendMenu(menu, unpinFlags, idUnpinAll, "Unpin all")
	appendMenu(menu, mfSeparator, 0, "")
	appendMenu(menu, mfString, idExit, "Exit")

	var pt point
	procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	// Without this the menu stays open after clicking elsewhere.
	procSetForegroundWindow.Call(st.hwnd)

	procTrackPopupMenu.Call(
		menu,
		tpmBottomAlign|tpmLeftAlign,
		uintptr(pt.X), uintptr(pt.Y),
		0,
		st.hwnd,
		0,
	)
}

func appendMenu(menu, flags, id uintptr, text string) {
	if flags&mfSeparator != 0 {
		procAppendMenuW.Call(menu, mfSeparator, 0, 0)
		return
	}
	p, _ := windows.UTF16PtrFromString(text)
	procAppendMenuW.Call(menu, flags, id, uintptr(unsafe.Pointer(p)))
}

// truncateTitle keeps menu entries readable; full titles stay available
// in `pinwin list`.
func truncateTitle(s string) string {
	const max = 64
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func reloadConfig() {
	cfg, err := config.Load(st.opts.ConfigPath)
	if err != nil {
		st.opts.Logger.Warn("config reload failed, keeping previous settings", "error", err)
		return
	}

	combo, err := config.ParseCombo(cfg.Hotkey.Combo)
	if err != nil {
		st.opts.Logger.Warn("config reload failed, keeping previous settings", "error", err)
		return
	}

	if combo != st.combo {
		if st.hotkeyOK {
			win32.UnregisterHotKey(st.hwnd, hotkeyID)
			st.hotkeyOK = false
		}
		if err := win32.RegisterHotKey(st.hwnd, hotkeyID, combo); err != nil {
			st.opts.Logger.Warn("hotkey registration failed, continuing without shortcut",
				"combo", combo.String(), "error", err)
			balloon("Hotkey unavailable", combo.String()+" is in use by another application")
		} else {
			st.hotkeyOK = true
		}
		st.combo = combo
	}

	st.cfg = cfg
	st.opts.Logger.Info("config reloaded", "hotkey", combo.String())
}

// watchConfig posts wmReloadConfig to the tray window whenever the
// config file changes. The watcher goroutine never touches tray state;
// the reload itself runs on the message-loop thread.
func watchConfig(path string, hwnd uintptr, logger *slog.Logger) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	base := filepath.Base(path)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					procPostMessageW.Call(hwnd, wmReloadConfig, 0, 0)
				}
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", werr)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}

// makeIcon builds an HICON from the programmatic glyph at the small
// icon size the shell reports.
func makeIcon(active bool) uintptr {
	size, _, _ := procGetSystemMetrics.Call(smCxSmIcon)
	if size == 0 {
		size = 16
	}

	img := icon.Render(int(size), active)
	bits := icon.BGRA(img)

	color, _, _ := procCreateBitmap.Call(size, size, 1, 32, uintptr(unsafe.Pointer(&bits[0])))
	if color == 0 {
		return 0
	}
	defer procDeleteObject.Call(color)

	// All-zero AND mask: opacity comes from the alpha channel.
	rowBytes := ((size + 15) / 16) * 2
	maskBits := make([]byte, rowBytes*size)
	mask, _, _ := procCreateBitmap.Call(size, size, 1, 1, uintptr(unsafe.Pointer(&maskBits[0])))
	if mask == 0 {
		return 0
	}
	defer procDeleteObject.Call(mask)

	ii := iconInfo{FIcon: 1, MaskBmp: mask, ColorBmp: color}
	h, _, _ := procCreateIconIndirect.Call(uintptr(unsafe.Pointer(&ii)))
	return h
}

func addNotifyIcon() {
	st.nid = notifyIconData{
		Size:            uint32(unsafe.Sizeof(notifyIconData{})),
		Wnd:             st.hwnd,
		ID:              1,
		Flags:           nifIcon | nifMessage | nifTip,
		CallbackMessage: wmTrayIcon,
		Icon:            st.iconIdle,
	}
	setTip("pinwin")
	procShellNotifyIconW.Call(nimAdd, uintptr(unsafe.Pointer(&st.nid)))
}

func updateIcon() {
	n := len(st.opts.Controller.Tracked())
	if n > 0 {
		st.nid.Icon = st.iconPin
		setTip(fmt.Sprintf("pinwin — %d pinned", n))
	} else {
		st.nid.Icon = st.iconIdle
		setTip("pinwin")
	}
	st.nid.Flags = nifIcon | nifMessage | nifTip
	procShellNotifyIconW.Call(nimModify, uintptr(unsafe.Pointer(&st.nid)))
}

func notifyToggle(res pin.ToggleResult) {
	if !st.cfg.Notify.Balloon {
		return
	}
	title := "Unpinned"
	if res.Pinned {
		title = "Pinned on top"
	}
	text := res.Title
	if text == "" {
		text = fmt.Sprintf("window %#x", uintptr(res.Handle))
	}
	balloon(title, text)
}

func balloon(title, text string) {
	copyUTF16(st.nid.InfoTitle[:], title)
	copyUTF16(st.nid.Info[:], text)
	st.nid.Flags = nifIcon | nifMessage | nifTip | nifInfo
	st.nid.InfoFlags = niifInfo
	procShellNotifyIconW.Call(nimModify, uintptr(unsafe.Pointer(&st.nid)))
}

func setTip(s string) {
	copyUTF16(st.nid.Tip[:], s)
}

func copyUTF16(dst []uint16, s string) {
	u, err := windows.UTF16FromString(s)
	if err != nil {
		return
	}
	n := copy(dst, u)
	// Keep the terminator when the string got truncated.
	if n == len(dst) {
		dst[len(dst)-1] = 0
	}
}
