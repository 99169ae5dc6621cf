// Package osapi is the boundary between the window-manager core and the
// desktop OS. Everything the core needs from the operating system is
// expressed here as an interface so the reducers never import a
// platform-specific package directly.
package osapi

// Handle identifies one OS window. It is opaque to the core; only the
// osapi implementation knows what it encodes.
type Handle uintptr

// Rect mirrors wm.Rect's shape (left, top, width, height) rather than the
// OS's native edge-pair RECT; the Windows implementation converts at the
// boundary so the core never has to.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// MonitorInfo describes one physical display as reported by the OS.
type MonitorInfo struct {
	ID       string
	WorkArea Rect
}

// EventKind tags the category of a raw window notification delivered on
// the channel returned by OS.WatchEvents. It deliberately mirrors the
// OS-level notification taxonomy rather than the reducer's own
// classification (package wm translates one into the other) so this
// package never has to import wm.
type EventKind int

const (
	EventShow EventKind = iota
	EventHide
	EventCloak
	EventUncloak
	EventDestroy
	EventMinimize
	EventFocusChange
	EventMoveResizeStart
	EventMoveResizeEnd
)

func (k EventKind) String() string {
	switch k {
	case EventShow:
		return "Show"
	case EventHide:
		return "Hide"
	case EventCloak:
		return "Cloak"
	case EventUncloak:
		return "Uncloak"
	case EventDestroy:
		return "Destroy"
	case EventMinimize:
		return "Minimize"
	case EventFocusChange:
		return "FocusChange"
	case EventMoveResizeStart:
		return "MoveResizeStart"
	case EventMoveResizeEnd:
		return "MoveResizeEnd"
	default:
		return "Unknown"
	}
}

// Event is one raw window notification pulled off the OS event hook.
type Event struct {
	Kind   EventKind
	Handle Handle
}

// OS is everything the core needs from the desktop window-management APIs.
// A real implementation lives behind a build tag per target platform; tests
// use Fake.
type OS interface {
	// LoadMonitors enumerates the currently attached physical displays.
	LoadMonitors() ([]MonitorInfo, error)

	// WindowRect reads a window's current position and size.
	WindowRect(h Handle) (Rect, error)
	// PositionWindow moves/resizes a window, optionally forcing it above
	// all other windows in z-order.
	PositionWindow(h Handle, r Rect, topmost bool) error
	// HideWindow removes a window from the visible desktop without
	// destroying it.
	HideWindow(h Handle) error
	// RestoreWindow makes a previously hidden window visible again at its
	// last known position.
	RestoreWindow(h Handle) error
	// MaximizeWindow asks the OS to maximize a window natively.
	MaximizeWindow(h Handle) error
	// FocusWindow raises and focuses a window, attaching thread input
	// across processes if required by the platform.
	FocusWindow(h Handle) error
	// CenterCursor moves the mouse cursor to the center of r.
	CenterCursor(r Rect) error

	// IsWindow reports whether h still refers to a live window.
	IsWindow(h Handle) bool
	// IsCloaked reports whether the OS considers the window cloaked
	// (hidden by virtual-desktop switching, DWM, etc).
	IsCloaked(h Handle) bool
	// Style and ExStyle read the raw window-style bitmasks.
	Style(h Handle) (uint32, error)
	ExStyle(h Handle) (uint32, error)

	// Title, Exe and Class read descriptive attributes of a window.
	Title(h Handle) (string, error)
	Exe(h Handle) (string, error)
	Class(h Handle) (string, error)

	// MonitorFromWindow returns the id of the monitor a window currently
	// occupies most of.
	MonitorFromWindow(h Handle) (string, error)
	// ForegroundWindow returns the handle currently in the foreground, if
	// any.
	ForegroundWindow() (Handle, bool)
	// DesktopWindow returns the handle of the OS desktop background
	// window, used as a focus fallback.
	DesktopWindow() Handle

	// WatchEvents installs the OS-level window notification hook and
	// returns a channel of raw events together with a stop function that
	// uninstalls the hook and closes the channel. Callers must invoke the
	// stop function exactly once when done; it must be safe to call
	// WatchEvents at most once per OS value.
	WatchEvents() (<-chan Event, func())
}
