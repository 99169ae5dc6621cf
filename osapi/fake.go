package osapi

import "fmt"

// FakeWindow is one simulated window tracked by Fake.
type FakeWindow struct {
	Rect    Rect
	Hidden  bool
	Maxed   bool
	Topmost bool

	Title   string
	Exe     string
	Class   string
	Style   uint32
	ExStyle uint32
	Cloaked bool
	Monitor string
}

// Fake is an in-memory OS implementation for unit tests. It records every
// call it receives so tests can assert on the sequence of OS interactions a
// reducer produced.
type Fake struct {
	Monitors []MonitorInfo
	Windows  map[Handle]*FakeWindow
	Fg       Handle
	HasFg    bool
	Desktop  Handle

	Calls []string

	events chan Event
}

// NewFake returns an empty Fake ready for use.
func NewFake() *Fake {
	return &Fake{Windows: make(map[Handle]*FakeWindow)}
}

// AddWindow registers a simulated window under handle h.
func (f *Fake) AddWindow(h Handle, w *FakeWindow) {
	f.Windows[h] = w
}

func (f *Fake) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *Fake) LoadMonitors() ([]MonitorInfo, error) {
	f.record("LoadMonitors")
	return f.Monitors, nil
}

func (f *Fake) window(h Handle) (*FakeWindow, error) {
	w, ok := f.Windows[h]
	if !ok {
		return nil, fmt.Errorf("fake: unknown window %d", h)
	}
	return w, nil
}

func (f *Fake) WindowRect(h Handle) (Rect, error) {
	w, err := f.window(h)
	if err != nil {
		return Rect{}, err
	}
	return w.Rect, nil
}

func (f *Fake) PositionWindow(h Handle, r Rect, topmost bool) error {
	f.record("PositionWindow(%d,%+v,%v)", h, r, topmost)
	w, err := f.window(h)
	if err != nil {
		return err
	}
	w.Rect = r
	w.Topmost = topmost
	w.Hidden = false
	return nil
}

func (f *Fake) HideWindow(h Handle) error {
	f.record("HideWindow(%d)", h)
	w, err := f.window(h)
	if err != nil {
		return err
	}
	w.Hidden = true
	return nil
}

func (f *Fake) RestoreWindow(h Handle) error {
	f.record("RestoreWindow(%d)", h)
	w, err := f.window(h)
	if err != nil {
		return err
	}
	w.Hidden = false
	w.Maxed = false
	return nil
}

func (f *Fake) MaximizeWindow(h Handle) error {
	f.record("MaximizeWindow(%d)", h)
	w, err := f.window(h)
	if err != nil {
		return err
	}
	w.Hidden = false
	w.Maxed = true
	return nil
}

func (f *Fake) FocusWindow(h Handle) error {
	f.record("FocusWindow(%d)", h)
	if _, err := f.window(h); err != nil {
		return err
	}
	f.Fg = h
	f.HasFg = true
	return nil
}

func (f *Fake) CenterCursor(r Rect) error {
	f.record("CenterCursor(%+v)", r)
	return nil
}

func (f *Fake) IsWindow(h Handle) bool {
	_, ok := f.Windows[h]
	return ok
}

func (f *Fake) IsCloaked(h Handle) bool {
	w, err := f.window(h)
	if err != nil {
		return false
	}
	return w.Cloaked
}

func (f *Fake) Style(h Handle) (uint32, error) {
	w, err := f.window(h)
	if err != nil {
		return 0, err
	}
	return w.Style, nil
}

func (f *Fake) ExStyle(h Handle) (uint32, error) {
	w, err := f.window(h)
	if err != nil {
		return 0, err
	}
	return w.ExStyle, nil
}

func (f *Fake) Title(h Handle) (string, error) {
	w, err := f.window(h)
	if err != nil {
		return "", err
	}
	return w.Title, nil
}

func (f *Fake) Exe(h Handle) (string, error) {
	w, err := f.window(h)
	if err != nil {
		return "", err
	}
	return w.Exe, nil
}

func (f *Fake) Class(h Handle) (string, error) {
	w, err := f.window(h)
	if err != nil {
		return "", err
	}
	return w.Class, nil
}

func (f *Fake) MonitorFromWindow(h Handle) (string, error) {
	w, err := f.window(h)
	if err != nil {
		return "", err
	}
	return w.Monitor, nil
}

func (f *Fake) ForegroundWindow() (Handle, bool) {
	return f.Fg, f.HasFg
}

func (f *Fake) DesktopWindow() Handle {
	return f.Desktop
}

// WatchEvents returns a channel tests can feed with Emit and a stop
// function that closes it. Calling WatchEvents more than once on the same
// Fake reuses the same channel.
func (f *Fake) WatchEvents() (<-chan Event, func()) {
	if f.events == nil {
		f.events = make(chan Event, 64)
	}
	stopped := false
	return f.events, func() {
		if stopped {
			return
		}
		stopped = true
		close(f.events)
	}
}

// Emit pushes a synthetic raw event onto the channel returned by
// WatchEvents, as a real OS event hook would. WatchEvents must have been
// called first.
func (f *Fake) Emit(ev Event) {
	f.events <- ev
}
