//go:build windows

package osapi

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procSetWindowPos         = user32.NewProc("SetWindowPos")
	procShowWindow           = user32.NewProc("ShowWindow")
	procIsWindow             = user32.NewProc("IsWindow")
	procIsWindowCloaked      = dwmapi.NewProc("DwmGetWindowAttribute")
	procGetWindowLongW       = user32.NewProc("GetWindowLongW")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetClassNameW        = user32.NewProc("GetClassNameW")
	procSetForegroundWindow  = user32.NewProc("SetForegroundWindow")
	procGetForegroundWindow  = user32.NewProc("GetForegroundWindow")
	procGetDesktopWindow     = user32.NewProc("GetDesktopWindow")
	procSetCursorPos         = user32.NewProc("SetCursorPos")
	procAttachThreadInput    = user32.NewProc("AttachThreadInput")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procMonitorFromWindow    = user32.NewProc("MonitorFromWindow")
	procSetWinEventHook      = user32.NewProc("SetWinEventHook")
	procUnhookWinEvent       = user32.NewProc("UnhookWinEvent")
	procGetMessageW          = user32.NewProc("GetMessageW")
	procTranslateMessage     = user32.NewProc("TranslateMessage")
	procDispatchMessageW     = user32.NewProc("DispatchMessageW")
)

// Raw WinEvent constants this binding subscribes to. Comments give the
// win32 EVENT_* name this maps from.
const (
	winEventOutOfContext = 0x0000

	evtObjectShow        = 0x8002 // EVENT_OBJECT_SHOW
	evtObjectHide        = 0x8003 // EVENT_OBJECT_HIDE
	evtObjectCloaked     = 0x8017 // EVENT_OBJECT_CLOAKED
	evtObjectUncloaked   = 0x8018 // EVENT_OBJECT_UNCLOAKED
	evtObjectDestroy     = 0x8001 // EVENT_OBJECT_DESTROY
	evtSystemMinimizeStart = 0x0016 // EVENT_SYSTEM_MINIMIZESTART
	evtSystemForeground  = 0x0003 // EVENT_SYSTEM_FOREGROUND
	evtSystemMoveSizeStart = 0x000A // EVENT_SYSTEM_MOVESIZESTART
	evtSystemMoveSizeEnd  = 0x000B // EVENT_SYSTEM_MOVESIZEEND

	winEventMin = 0x0001 // EVENT_MIN
	winEventMax = 0xFFFFFFFF

	objIdWindow = 0
)

func rawKindForEvent(event uint32) (EventKind, bool) {
	switch event {
	case evtObjectShow:
		return EventShow, true
	case evtObjectHide:
		return EventHide, true
	case evtObjectCloaked:
		return EventCloak, true
	case evtObjectUncloaked:
		return EventUncloak, true
	case evtObjectDestroy:
		return EventDestroy, true
	case evtSystemMinimizeStart:
		return EventMinimize, true
	case evtSystemForeground:
		return EventFocusChange, true
	case evtSystemMoveSizeStart:
		return EventMoveResizeStart, true
	case evtSystemMoveSizeEnd:
		return EventMoveResizeEnd, true
	default:
		return 0, false
	}
}

const (
	swHide     = 0
	swRestore  = 9
	swMaximize = 3

	gwlStyle   = -16
	gwlExStyle = -20

	swpNoZOrder = 0x0004
	swpNoSize   = 0x0001
	swpNoMove   = 0x0002

	hwndTopmost   = ^uintptr(0) // -1
	hwndNoTopmost = ^uintptr(1) // -2

	monitorDefaultToNearest = 2
)

// Windows is the real OS binding, backed by user32.dll via
// golang.org/x/sys/windows. It is only built on GOOS=windows; tests run
// against Fake instead.
type Windows struct{}

// New returns the live Windows OS binding.
func New() *Windows { return &Windows{} }

func (Windows) LoadMonitors() ([]MonitorInfo, error) {
	// EnumDisplayMonitors requires a callback marshalled through
	// syscall.NewCallback; it is not wired up here, so this binding has no
	// monitor enumeration and always returns an ErrOsCall-wrapped error.
	// Multi-monitor enumeration is exercised through Fake in tests.
	return nil, fmt.Errorf("%w: LoadMonitors not implemented on this build", ErrOsCall)
}

func (Windows) WindowRect(h Handle) (Rect, error) {
	var r struct{ Left, Top, Right, Bottom int32 }
	ret, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return Rect{}, fmt.Errorf("%w: GetWindowRect: %v", ErrOsCall, err)
	}
	return Rect{
		Left:   int(r.Left),
		Top:    int(r.Top),
		Right:  int(r.Right - r.Left),
		Bottom: int(r.Bottom - r.Top),
	}, nil
}

func (Windows) PositionWindow(h Handle, r Rect, topmost bool) error {
	insertAfter := hwndNoTopmost
	if topmost {
		insertAfter = hwndTopmost
	}
	ret, _, err := procSetWindowPos.Call(
		uintptr(h), insertAfter,
		uintptr(r.Left), uintptr(r.Top), uintptr(r.Right), uintptr(r.Bottom),
		0,
	)
	if ret == 0 {
		return fmt.Errorf("%w: SetWindowPos: %v", ErrOsCall, err)
	}
	return nil
}

func (Windows) HideWindow(h Handle) error {
	ret, _, err := procShowWindow.Call(uintptr(h), swHide)
	_ = ret
	_ = err
	return nil
}

func (Windows) RestoreWindow(h Handle) error {
	ret, _, err := procShowWindow.Call(uintptr(h), swRestore)
	_ = ret
	_ = err
	return nil
}

func (Windows) MaximizeWindow(h Handle) error {
	ret, _, err := procShowWindow.Call(uintptr(h), swMaximize)
	_ = ret
	_ = err
	return nil
}

func (w Windows) FocusWindow(h Handle) error {
	var curTid, winTid uint32
	curTid = uint32(windows.GetCurrentThreadId())
	winTid32, _, _ := procGetWindowThreadProcessId.Call(uintptr(h), 0)
	winTid = uint32(winTid32)
	if winTid != 0 && winTid != curTid {
		procAttachThreadInput.Call(uintptr(curTid), uintptr(winTid), 1)
		defer procAttachThreadInput.Call(uintptr(curTid), uintptr(winTid), 0)
	}
	ret, _, err := procSetForegroundWindow.Call(uintptr(h))
	if ret == 0 {
		// best-effort: focusing failures are logged and swallowed by the
		// caller, never surfaced as a reducer error.
		return fmt.Errorf("%w: SetForegroundWindow: %v", ErrOsCall, err)
	}
	return nil
}

func (Windows) CenterCursor(r Rect) error {
	cx := r.Left + r.Right/2
	cy := r.Top + r.Bottom/2
	ret, _, err := procSetCursorPos.Call(uintptr(cx), uintptr(cy))
	if ret == 0 {
		return fmt.Errorf("%w: SetCursorPos: %v", ErrOsCall, err)
	}
	return nil
}

func (Windows) IsWindow(h Handle) bool {
	ret, _, _ := procIsWindow.Call(uintptr(h))
	return ret != 0
}

func (Windows) IsCloaked(h Handle) bool {
	var cloaked int32
	const dwmwaCloaked = 14
	ret, _, _ := procIsWindowCloaked.Call(uintptr(h), dwmwaCloaked, uintptr(unsafe.Pointer(&cloaked)), unsafe.Sizeof(cloaked))
	return ret == 0 && cloaked != 0
}

func (Windows) Style(h Handle) (uint32, error) {
	ret, _, err := procGetWindowLongW.Call(uintptr(h), uintptr(int32(gwlStyle)))
	if ret == 0 {
		return 0, fmt.Errorf("%w: GetWindowLongW(style): %v", ErrOsCall, err)
	}
	return uint32(ret), nil
}

func (Windows) ExStyle(h Handle) (uint32, error) {
	ret, _, err := procGetWindowLongW.Call(uintptr(h), uintptr(int32(gwlExStyle)))
	if ret == 0 {
		return 0, fmt.Errorf("%w: GetWindowLongW(exstyle): %v", ErrOsCall, err)
	}
	return uint32(ret), nil
}

func (Windows) Title(h Handle) (string, error) {
	buf := make([]uint16, 512)
	ret, _, err := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return "", fmt.Errorf("%w: GetWindowTextW: %v", ErrOsCall, err)
	}
	return syscall.UTF16ToString(buf), nil
}

func (w Windows) Exe(h Handle) (string, error) {
	// Resolving the owning process's executable path requires opening the
	// process by pid (QueryFullProcessImageNameW); kept minimal here since
	// komorebi-go's classification logic is exercised against Fake.
	return "", fmt.Errorf("%w: Exe not implemented on this build", ErrOsCall)
}

func (Windows) Class(h Handle) (string, error) {
	buf := make([]uint16, 256)
	ret, _, err := procGetClassNameW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return "", fmt.Errorf("%w: GetClassNameW: %v", ErrOsCall, err)
	}
	return syscall.UTF16ToString(buf), nil
}

func (Windows) MonitorFromWindow(h Handle) (string, error) {
	ret, _, _ := procMonitorFromWindow.Call(uintptr(h), monitorDefaultToNearest)
	return fmt.Sprintf("%x", ret), nil
}

func (Windows) ForegroundWindow() (Handle, bool) {
	ret, _, _ := procGetForegroundWindow.Call()
	return Handle(ret), ret != 0
}

func (Windows) DesktopWindow() Handle {
	ret, _, _ := procGetDesktopWindow.Call()
	return Handle(ret)
}

// WatchEvents installs a WINEVENT_OUTOFCONTEXT hook covering every
// notification rawKindForEvent understands and pumps the owning thread's
// message queue on a dedicated, OS-thread-locked goroutine, since
// out-of-context hooks are only delivered through the installing thread's
// queue. The stop function unhooks and stops the pump.
func (Windows) WatchEvents() (<-chan Event, func()) {
	out := make(chan Event, 256)
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	var hook uintptr
	hookInstalled := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(doneCh)

		callback := syscall.NewCallback(func(hWinEventHook, event, hwnd, idObject, idChild uintptr, idEventThread, dwmsEventTime uint32) uintptr {
			if int32(idObject) != objIdWindow {
				return 0
			}
			kind, ok := rawKindForEvent(uint32(event))
			if !ok {
				return 0
			}
			select {
			case out <- Event{Kind: kind, Handle: Handle(hwnd)}:
			default:
				// drop rather than block the hook callback
			}
			return 0
		})

		ret, _, _ := procSetWinEventHook.Call(
			winEventMin, winEventMax,
			0, callback,
			0, 0,
			winEventOutOfContext,
		)
		hook = ret
		close(hookInstalled)
		if hook == 0 {
			return
		}
		defer procUnhookWinEvent.Call(hook)

		var msg struct {
			hwnd    uintptr
			message uint32
			wParam  uintptr
			lParam  uintptr
			time    uint32
			pt      struct{ x, y int32 }
		}
		for {
			select {
			case <-stopCh:
				return
			default:
			}
			// GetMessageW blocks until the next queued message; stop only
			// takes effect once one arrives, same as the hook thread being
			// torn down on process exit.
			ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
			if int32(ret) <= 0 {
				return
			}
			procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
			procDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
		}
	}()

	<-hookInstalled
	stop := func() {
		close(stopCh)
		<-doneCh
		close(out)
	}
	return out, stop
}

var ErrOsCall = fmt.Errorf("osapi: os call failed")
