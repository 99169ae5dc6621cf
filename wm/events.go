package wm

import "github.com/komorebi-go/komorebi/osapi"

// EventKind tags the origin of a WindowManagerEvent so the reducer thread
// can branch on it without type-switching on the OS binding's own event
// type.
type EventKind int

const (
	EventShow EventKind = iota
	EventHide
	EventCloak
	EventUncloak
	EventDestroy
	EventMinimize
	EventManage
	EventUnmanage
	EventFocusChange
	EventMoveResizeStart
	EventMoveResizeEnd
	EventMouseCapture
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
	case EventManage:
		return "Manage"
	case EventUnmanage:
		return "Unmanage"
	case EventFocusChange:
		return "FocusChange"
	case EventMoveResizeStart:
		return "MoveResizeStart"
	case EventMoveResizeEnd:
		return "MoveResizeEnd"
	case EventMouseCapture:
		return "MouseCapture"
	default:
		return "Unknown"
	}
}

// Event is a single notification pulled off the OS event thread's channel
// and pushed through the reducer. Window carries only the handle;
// ShouldManage queries the OS binding for title, exe, class and styles.
type Event struct {
	Kind   EventKind
	Window Window
}

// EventFromRaw translates one raw osapi.Event into the reducer's Event
// type. osapi cannot import wm (wm already imports osapi), so this
// translation lives on this side of the boundary; it is the one place the
// OS event thread's notification taxonomy is mapped onto the reducer's.
func EventFromRaw(raw osapi.Event) Event {
	w := Window{Handle: raw.Handle}
	switch raw.Kind {
	case osapi.EventHide:
		return Event{Kind: EventHide, Window: w}
	case osapi.EventCloak:
		return Event{Kind: EventCloak, Window: w}
	case osapi.EventUncloak:
		return Event{Kind: EventUncloak, Window: w}
	case osapi.EventDestroy:
		return Event{Kind: EventDestroy, Window: w}
	case osapi.EventMinimize:
		return Event{Kind: EventMinimize, Window: w}
	case osapi.EventFocusChange:
		return Event{Kind: EventFocusChange, Window: w}
	case osapi.EventMoveResizeStart:
		return Event{Kind: EventMoveResizeStart, Window: w}
	case osapi.EventMoveResizeEnd:
		return Event{Kind: EventMoveResizeEnd, Window: w}
	default:
		return Event{Kind: EventShow, Window: w}
	}
}
