package wm

import "github.com/komorebi-go/komorebi/osapi"

// State is the JSON document written to the state socket on request: a
// snapshot of every monitor (with nested workspaces, containers, windows
// including derived title/exe/class/rect), the paused flag, and the five
// identifier lists.
type State struct {
	Monitors       []MonitorState   `json:"monitors"`
	FocusedMonitor int              `json:"focused_monitor"`
	IsPaused       bool             `json:"is_paused"`
	Identifiers    IdentifiersState `json:"identifiers"`
}

// RingState mirrors a ring.Ring[T]'s externally observable shape:
// {elements, focused}.
type RingState[T any] struct {
	Elements []T `json:"elements"`
	Focused  int `json:"focused"`
}

// MonitorState serializes a Monitor.
type MonitorState struct {
	ID         string          `json:"id"`
	WorkArea   Rect            `json:"work_area"`
	Workspaces RingState[WorkspaceState] `json:"workspaces"`
}

// WorkspaceState serializes a Workspace. Containers serialize without
// their id, per the wire contract.
type WorkspaceState struct {
	Name             *string                  `json:"name,omitempty"`
	Containers       RingState[ContainerState] `json:"containers"`
	MonocleContainer *ContainerState          `json:"monocle_container,omitempty"`
	MaximizedWindow  *WindowState             `json:"maximized_window,omitempty"`
	FloatingWindows  []WindowState            `json:"floating_windows"`
	Layout           Layout                   `json:"layout"`
	LayoutFlip       Flip                     `json:"layout_flip"`
	Tile             bool                     `json:"tile"`
}

// ContainerState serializes a Container, intentionally omitting ID.
type ContainerState struct {
	Windows RingState[WindowState] `json:"windows"`
}

// WindowState is the wire shape {hwnd, title, exe, class, rect}.
type WindowState struct {
	Hwnd  uint64 `json:"hwnd"`
	Title string `json:"title"`
	Exe   string `json:"exe"`
	Class string `json:"class"`
	Rect  Rect   `json:"rect"`
}

// IdentifiersState mirrors the five identifier lists for the state
// document.
type IdentifiersState struct {
	FloatIdentifiers  []string `json:"float_identifiers"`
	ManageIdentifiers []string `json:"manage_identifiers"`
	LayeredWhitelist  []string `json:"layered_whitelist"`
	TrayExes          []string `json:"tray_exes"`
	TrayClasses       []string `json:"tray_classes"`
}

func describeWindow(os osapi.OS, w Window) WindowState {
	title, _ := os.Title(w.Handle)
	exe, _ := os.Exe(w.Handle)
	class, _ := os.Class(w.Handle)
	r, _ := os.WindowRect(w.Handle)
	return WindowState{
		Hwnd:  uint64(w.Handle),
		Title: title,
		Exe:   exe,
		Class: class,
		Rect:  Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom},
	}
}

func describeContainer(os osapi.OS, c *Container) ContainerState {
	focusedIdx, _ := c.Windows.FocusedIdx()
	elems := make([]WindowState, 0, c.Windows.Len())
	for _, w := range c.Windows.Elements() {
		elems = append(elems, describeWindow(os, w))
	}
	return ContainerState{Windows: RingState[WindowState]{Elements: elems, Focused: focusedIdx}}
}

func describeWorkspace(os osapi.OS, ws *Workspace) WorkspaceState {
	focusedIdx, _ := ws.Containers.FocusedIdx()
	containers := make([]ContainerState, 0, ws.Containers.Len())
	for _, c := range ws.Containers.Elements() {
		containers = append(containers, describeContainer(os, c))
	}

	floating := make([]WindowState, 0, len(ws.FloatingWindows))
	for _, w := range ws.FloatingWindows {
		floating = append(floating, describeWindow(os, w))
	}

	state := WorkspaceState{
		Name:            ws.Name,
		Containers:      RingState[ContainerState]{Elements: containers, Focused: focusedIdx},
		FloatingWindows: floating,
		Layout:          ws.Layout,
		LayoutFlip:      ws.LayoutFlip,
		Tile:            ws.Tile,
	}
	if ws.MonocleContainer != nil {
		cs := describeContainer(os, ws.MonocleContainer)
		state.MonocleContainer = &cs
	}
	if ws.MaximizedWindow != nil {
		wsState := describeWindow(os, *ws.MaximizedWindow)
		state.MaximizedWindow = &wsState
	}
	return state
}

// Snapshot builds the state document served over the state socket.
func (wm *WindowManager) Snapshot() State {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	focusedMonitorIdx, _ := wm.Monitors.FocusedIdx()
	monitors := make([]MonitorState, 0, wm.Monitors.Len())
	for _, mon := range wm.Monitors.Elements() {
		wsFocusedIdx, _ := mon.Workspaces.FocusedIdx()
		workspaces := make([]WorkspaceState, 0, mon.Workspaces.Len())
		for _, ws := range mon.Workspaces.Elements() {
			workspaces = append(workspaces, describeWorkspace(wm.OS, ws))
		}
		monitors = append(monitors, MonitorState{
			ID:         mon.ID,
			WorkArea:   mon.WorkArea,
			Workspaces: RingState[WorkspaceState]{Elements: workspaces, Focused: wsFocusedIdx},
		})
	}

	float, manage, layered, trayExes, trayClasses := wm.Identifiers.Snapshot()

	return State{
		Monitors:       monitors,
		FocusedMonitor: focusedMonitorIdx,
		IsPaused:       wm.IsPaused,
		Identifiers: IdentifiersState{
			FloatIdentifiers:  float,
			ManageIdentifiers: manage,
			LayeredWhitelist:  layered,
			TrayExes:          trayExes,
			TrayClasses:       trayClasses,
		},
	}
}
