package wm

import (
	"fmt"
	"sync"

	"github.com/komorebi-go/komorebi/osapi"
	"github.com/komorebi-go/komorebi/ring"
)

// WindowManager is the top-level reducer: it owns the ring of monitors,
// routes external events into state mutations, projects state onto the
// OS, and implements workspace-rule enforcement, maximize/monocle/float
// toggles, directional move/focus/resize, and cross-monitor container
// movement.
//
// A single coarse mutex protects everything reachable from Monitors; the
// identifier lists and the hidden-handle registry carry their own locks so
// event classification never needs to wait on a reducer in progress.
type WindowManager struct {
	mu sync.Mutex

	Monitors         *ring.Ring[*Monitor]
	IsPaused         bool
	VirtualDesktopID *int

	Hidden *HiddenHandles

	Identifiers    *Identifiers
	WorkspaceRules *WorkspaceRules

	// MouseFollowsFocus mirrors the focus-follows-mouse toggle; it only
	// gates whether directional focus changes also move the cursor.
	MouseFollowsFocus bool

	OS osapi.OS
}

// NewWindowManager returns an empty manager bound to an OS binding.
func NewWindowManager(os osapi.OS) *WindowManager {
	return &WindowManager{
		Monitors:         ring.New[*Monitor](),
		Hidden:           NewHiddenHandles(),
		Identifiers:      NewIdentifiers(),
		WorkspaceRules:   NewWorkspaceRules(),
		OS:               os,
	}
}

// Init populates Monitors from the OS binding. It must hold ≥ 1 monitor
// with ≥ 1 workspace afterward.
func (wm *WindowManager) Init() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	infos, err := wm.OS.LoadMonitors()
	if err != nil {
		return fmt.Errorf("%w: load monitors: %v", ErrOsCallFailed, err)
	}
	for _, info := range infos {
		wm.Monitors.PushBack(NewMonitor(info.ID, Rect{
			Left: info.WorkArea.Left, Top: info.WorkArea.Top,
			Right: info.WorkArea.Right, Bottom: info.WorkArea.Bottom,
		}))
	}
	if wm.Monitors.Len() > 0 {
		wm.Monitors.Focus(0)
	}
	return nil
}

func (wm *WindowManager) focusedMonitor() (*Monitor, error) {
	m := wm.Monitors.Focused()
	if m == nil {
		return nil, ErrNoSuchMonitor
	}
	return *m, nil
}

// HandleEvent is the sole entry point for the event reducer thread. It
// classifies the window via ShouldManage and dispatches into the
// hierarchy mutation. Errors are the caller's responsibility to log and
// swallow: an event must never poison the loop.
func (wm *WindowManager) HandleEvent(ev Event) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	if wm.IsPaused {
		return nil
	}

	switch ev.Kind {
	case EventManage:
		return wm.manageLocked(ev.Window)
	case EventUnmanage, EventDestroy:
		return wm.unmanageLocked(ev.Window.Handle)
	case EventHide:
		if !ShouldManage(wm.OS, wm.Identifiers, ev.Window.Handle, true) {
			return nil
		}
		return nil
	case EventFocusChange:
		return nil
	default:
		if !ShouldManage(wm.OS, wm.Identifiers, ev.Window.Handle, false) {
			return nil
		}
		return wm.manageLocked(ev.Window)
	}
}

func (wm *WindowManager) manageLocked(w Window) error {
	mon, err := wm.focusedMonitor()
	if err != nil {
		return err
	}
	ws := mon.Workspaces.Focused()
	if ws == nil {
		return ErrNoSuchWorkspace
	}
	(*ws).NewContainerForWindow(w)
	return wm.updateFocusedWorkspaceLocked(false)
}

func (wm *WindowManager) unmanageLocked(hwnd osapi.Handle) error {
	mon, err := wm.focusedMonitor()
	if err != nil {
		return err
	}
	ws := mon.Workspaces.Focused()
	if ws == nil {
		return ErrNoSuchWorkspace
	}
	if err := (*ws).RemoveWindow(hwnd); err != nil {
		return err
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// ManageFocusedWindow and UnmanageFocusedWindow emit a synthetic event
// through HandleEvent, the same entry point the OS event thread uses, so
// all managed-window transitions go through one place. EventManage and
// EventUnmanage skip the ShouldManage classification.
func (wm *WindowManager) ManageFocusedWindow(hwnd osapi.Handle) error {
	return wm.HandleEvent(Event{Kind: EventManage, Window: Window{Handle: hwnd}})
}

func (wm *WindowManager) UnmanageFocusedWindow(hwnd osapi.Handle) error {
	return wm.HandleEvent(Event{Kind: EventUnmanage, Window: Window{Handle: hwnd}})
}

// UpdateFocusedWorkspace loads the focused workspace's windows then
// reprojects the layout, optionally moving the cursor to the logically
// focused window.
func (wm *WindowManager) UpdateFocusedWorkspace(mouseFollowsFocus bool) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	return wm.updateFocusedWorkspaceLocked(mouseFollowsFocus)
}

func (wm *WindowManager) updateFocusedWorkspaceLocked(mouseFollowsFocus bool) error {
	mon, err := wm.focusedMonitor()
	if err != nil {
		return err
	}
	if err := mon.LoadFocusedWorkspace(wm.OS, wm.Hidden); err != nil {
		return err
	}
	ws := mon.Workspaces.Focused()
	if ws == nil {
		return ErrNoSuchWorkspace
	}
	if err := (*ws).Update(wm.OS, wm.Hidden, mon.WorkArea); err != nil {
		return err
	}

	if mouseFollowsFocus {
		wm.focusLogicalWindowLocked(*ws, mon.WorkArea)
	}
	return nil
}

// focusLogicalWindowLocked centers the cursor on: the maximized window, or
// the monocle container's focused window, or the workspace-focused
// window, falling back to the OS desktop window without a thread attach.
func (wm *WindowManager) focusLogicalWindowLocked(ws *Workspace, workArea Rect) {
	if ws.MaximizedWindow != nil {
		_ = ws.MaximizedWindow.Center(wm.OS, workArea)
		return
	}
	if ws.MonocleContainer != nil {
		if f := ws.MonocleContainer.Windows.Focused(); f != nil {
			_ = f.Center(wm.OS, workArea)
			return
		}
	}
	if c := ws.Containers.Focused(); c != nil {
		if f := (*c).Windows.Focused(); f != nil {
			_ = f.Center(wm.OS, workArea)
			return
		}
	}
	_ = wm.OS.CenterCursor(osapi.Rect{Left: workArea.Left, Top: workArea.Top, Right: workArea.Right, Bottom: workArea.Bottom})
}

// MoveContainerToMonitor moves the focused container of the focused
// monitor's focused workspace to the focused workspace of the target
// monitor.
func (wm *WindowManager) MoveContainerToMonitor(idx int, follow bool) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	src, err := wm.focusedMonitor()
	if err != nil {
		return err
	}
	targetPtr := wm.Monitors.Get(idx)
	if targetPtr == nil {
		return fmt.Errorf("%w: no monitor at %d", ErrNoSuchMonitor, idx)
	}
	target := *targetPtr

	ws := src.Workspaces.Focused()
	if ws == nil {
		return ErrNoSuchWorkspace
	}
	cIdx, ok := (*ws).Containers.FocusedIdx()
	if !ok {
		return ErrNoSuchContainer
	}
	c, _ := (*ws).Containers.Remove(cIdx)
	(*ws).syncResizeDimensionsRemove(cIdx)

	targetWsIdx, _ := target.Workspaces.FocusedIdx()
	target.EnsureWorkspaceCount(targetWsIdx + 1)
	targetWs := target.Workspaces.Get(targetWsIdx)
	(*targetWs).Containers.PushBack(c)
	(*targetWs).ResizeDimensions = append((*targetWs).ResizeDimensions, nil)

	if follow {
		wm.Monitors.Focus(idx)
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// MoveContainerToWorkspace delegates to the focused monitor.
func (wm *WindowManager) MoveContainerToWorkspace(idx int, follow bool) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	mon, err := wm.focusedMonitor()
	if err != nil {
		return err
	}
	if err := mon.MoveContainerToWorkspace(idx, follow); err != nil {
		return err
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// FocusMonitor focuses the monitor at idx and loads its focused workspace.
func (wm *WindowManager) FocusMonitor(idx int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	if !wm.Monitors.Focus(idx) {
		return fmt.Errorf("%w: no monitor at %d", ErrNoSuchMonitor, idx)
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// FocusWorkspace focuses workspace idx on the focused monitor.
func (wm *WindowManager) FocusWorkspace(idx int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	mon, err := wm.focusedMonitor()
	if err != nil {
		return err
	}
	if err := mon.FocusWorkspace(wm.OS, wm.Hidden, idx); err != nil {
		return err
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// SetWorkspaceLayout changes the focused workspace's layout algorithm.
func (wm *WindowManager) SetWorkspaceLayout(layout Layout) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	ws.Layout = layout
	return wm.updateFocusedWorkspaceLocked(false)
}

// NewWorkspace appends a default workspace to the focused monitor.
func (wm *WindowManager) NewWorkspace() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	mon, err := wm.focusedMonitor()
	if err != nil {
		return err
	}
	mon.Workspaces.PushBack(NewWorkspace())
	return nil
}

// EnsureWorkspaceCountFor grows the workspace ring of the monitor at
// monitorIdx until it holds at least count workspaces, by monitor index
// rather than the currently focused one.
func (wm *WindowManager) EnsureWorkspaceCountFor(monitorIdx, count int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	monPtr := wm.Monitors.Get(monitorIdx)
	if monPtr == nil {
		return fmt.Errorf("%w: no monitor at %d", ErrNoSuchMonitor, monitorIdx)
	}
	(*monPtr).EnsureWorkspaceCount(count)
	return nil
}

func (wm *WindowManager) focusedWorkspace() (*Monitor, *Workspace, error) {
	mon, err := wm.focusedMonitor()
	if err != nil {
		return nil, nil, err
	}
	ws := mon.Workspaces.Focused()
	if ws == nil {
		return nil, nil, ErrNoSuchWorkspace
	}
	return mon, *ws, nil
}

// FocusContainerInDirection moves container focus geometrically.
func (wm *WindowManager) FocusContainerInDirection(d Direction) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	idx, ok := ws.NewIdxForDirection(d)
	if !ok {
		return ErrInvalidDirection
	}
	ws.FocusContainer(idx)
	return wm.updateFocusedWorkspaceLocked(wm.MouseFollowsFocus)
}

// MoveContainerInDirection swaps the focused container with its
// geometric neighbor.
func (wm *WindowManager) MoveContainerInDirection(d Direction) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	fromIdx, ok := ws.Containers.FocusedIdx()
	if !ok {
		return ErrNoSuchContainer
	}
	toIdx, ok := ws.NewIdxForDirection(d)
	if !ok {
		return ErrInvalidDirection
	}
	ws.SwapContainers(fromIdx, toIdx)
	return wm.updateFocusedWorkspaceLocked(false)
}

// AddWindowToContainer moves the focused window of the neighboring
// container (in direction d) into the focused container, i.e. stacks it.
func (wm *WindowManager) AddWindowToContainer(d Direction) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	focusedIdx, ok := ws.Containers.FocusedIdx()
	if !ok {
		return ErrNoSuchContainer
	}
	neighborIdx, ok := ws.NewIdxForDirection(d)
	if !ok {
		return ErrInvalidDirection
	}
	neighbor := *ws.Containers.Get(neighborIdx)
	win, ok := neighbor.RemoveFocusedWindow()
	if !ok {
		return ErrNoSuchWindow
	}
	focused := *ws.Containers.Get(focusedIdx)
	focused.AddWindow(win)
	if neighbor.IsEmpty() {
		ws.Containers.Remove(neighborIdx)
		ws.syncResizeDimensionsRemove(neighborIdx)
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// CycleContainerWindowInDirection focuses the next/previous window within
// the focused container (Left/Up = previous, Right/Down = next).
func (wm *WindowManager) CycleContainerWindowInDirection(d Direction) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	c := ws.Containers.Focused()
	if c == nil {
		return ErrNoSuchContainer
	}
	idx, ok := (*c).Windows.FocusedIdx()
	if !ok {
		return ErrNoSuchWindow
	}
	n := (*c).Windows.Len()
	if n <= 1 {
		return fmt.Errorf("%w: single-window container", ErrInvalidOverlayTransition)
	}
	switch d {
	case DirLeft, DirUp:
		idx = (idx - 1 + n) % n
	default:
		idx = (idx + 1) % n
	}
	(*c).Windows.Focus(idx)
	return wm.updateFocusedWorkspaceLocked(false)
}

// PromoteContainerToFront promotes the focused container to index 0.
func (wm *WindowManager) PromoteContainerToFront() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	if err := ws.PromoteContainer(); err != nil {
		return err
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// RemoveWindowFromContainer unstacks the focused window: it moves out of
// its container into a new container inserted right after it.
func (wm *WindowManager) RemoveWindowFromContainer() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	if err := ws.NewContainerForFocusedWindow(); err != nil {
		return err
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// ToggleTiling flips the workspace's Tile switch.
func (wm *WindowManager) ToggleTiling() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	ws.Tile = !ws.Tile
	return wm.updateFocusedWorkspaceLocked(false)
}

// ToggleFloat floats the focused window out if tiled, or reintegrates the
// foreground floating window if not.
func (wm *WindowManager) ToggleFloat() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	fg, hasFg := wm.OS.ForegroundWindow()
	fgFloating := false
	for _, fw := range ws.FloatingWindows {
		if hasFg && fw.Handle == fg {
			fgFloating = true
			break
		}
	}
	if !fgFloating {
		if _, err := ws.NewFloatingWindow(); err != nil {
			return err
		}
		return wm.updateFocusedWorkspaceLocked(false)
	}
	if err := ws.NewContainerForFloatingWindow(wm.OS); err != nil {
		return err
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// ToggleMonocle enters monocle if not already in it, else reintegrates.
func (wm *WindowManager) ToggleMonocle() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	if ws.MonocleContainer != nil {
		if err := ws.ReintegrateMonocleContainer(); err != nil {
			return err
		}
	} else {
		if err := ws.NewMonocleContainer(); err != nil {
			return err
		}
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// ToggleMaximize enters native maximize if not already maximized, else
// reintegrates.
func (wm *WindowManager) ToggleMaximize() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	if ws.MaximizedWindow != nil {
		if err := ws.ReintegrateMaximizedWindow(wm.OS, wm.Hidden); err != nil {
			return err
		}
	} else {
		if err := ws.NewMaximizedWindow(); err != nil {
			return err
		}
	}
	return wm.updateFocusedWorkspaceLocked(false)
}

// FlipLayout XORs the workspace's flip state with f.
func (wm *WindowManager) FlipLayout(f Flip) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	ws.LayoutFlip ^= f
	return wm.updateFocusedWorkspaceLocked(false)
}

// ResizeWindow adjusts the focused container's resize delta one step
// along direction's axis, inverting the axis first if the workspace is
// flipped.
func (wm *WindowManager) ResizeWindow(direction Direction, sizing Sizing, step int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	mon, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	n := ws.Containers.Len()
	focusedIdx, ok := ws.Containers.FocusedIdx()
	if !ok {
		return ErrNoSuchContainer
	}
	if _, ok := DirectionCandidate(ws.Layout, FlipNone, focusedIdx, n, direction); !ok {
		return ErrInvalidDirection
	}

	area := mon.WorkArea.Shrink(ws.workspacePadding())
	unflipped := Calculate(ws.Layout, area, n, ws.containerPadding(), FlipNone, nil)
	reference := unflipped[focusedIdx]

	effectiveDirection := direction
	if ws.LayoutFlip != FlipNone {
		effectiveDirection = InvertDirectionForFlip(direction, ws.LayoutFlip)
	}

	var current ResizeDelta
	if focusedIdx < len(ws.ResizeDimensions) && ws.ResizeDimensions[focusedIdx] != nil {
		current = *ws.ResizeDimensions[focusedIdx]
	}
	newDelta := Resize(reference, current, effectiveDirection, sizing, step)
	for len(ws.ResizeDimensions) <= focusedIdx {
		ws.ResizeDimensions = append(ws.ResizeDimensions, nil)
	}
	ws.ResizeDimensions[focusedIdx] = &newDelta
	return wm.updateFocusedWorkspaceLocked(false)
}

// PaddingAdjustment names the padding target and arithmetic direction for
// adjust_workspace_padding / adjust_container_padding.
type PaddingAdjustment int

const (
	PaddingIncrease PaddingAdjustment = iota
	PaddingDecrease
)

// AdjustWorkspacePadding fails with NoPadding if unset, else applies
// Increase/Decrease arithmetic by step n.
func (wm *WindowManager) AdjustWorkspacePadding(s PaddingAdjustment, n int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	if ws.WorkspacePadding == nil {
		return ErrNoPadding
	}
	v := *ws.WorkspacePadding
	if s == PaddingIncrease {
		v += n
	} else {
		v -= n
	}
	ws.WorkspacePadding = &v
	return wm.updateFocusedWorkspaceLocked(false)
}

// AdjustContainerPadding fails with NoPadding if unset, else applies
// Increase/Decrease arithmetic by step n.
func (wm *WindowManager) AdjustContainerPadding(s PaddingAdjustment, n int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	if ws.ContainerPadding == nil {
		return ErrNoPadding
	}
	v := *ws.ContainerPadding
	if s == PaddingIncrease {
		v += n
	} else {
		v -= n
	}
	ws.ContainerPadding = &v
	return wm.updateFocusedWorkspaceLocked(false)
}

// TogglePause flips IsPaused. While paused the event reducer drains the
// channel but treats every event as a no-op.
func (wm *WindowManager) TogglePause() {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.IsPaused = !wm.IsPaused
}

// ruleOp is one pending relocation produced by scanning workspace rules.
type ruleOp struct {
	hwnd             osapi.Handle
	originMonitor    int
	originWorkspace  int
	targetMonitor    int
	targetWorkspace  int
}

// EnforceWorkspaceRules relocates windows that violate workspace_rules.
// The two-pass remove-then-insert ordering is load-bearing: enforcing a
// rule that targets the current workspace must not race with removal of
// another window from that same workspace.
func (wm *WindowManager) EnforceWorkspaceRules() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	focusedMonitorIdx, ok := wm.Monitors.FocusedIdx()
	if !ok {
		return ErrNoSuchMonitor
	}
	focusedMon := *wm.Monitors.Get(focusedMonitorIdx)
	focusedWsIdx, ok := focusedMon.Workspaces.FocusedIdx()
	if !ok {
		return ErrNoSuchWorkspace
	}

	var ops []ruleOp
	for mIdx, mon := range wm.Monitors.Elements() {
		for wIdx, ws := range mon.Workspaces.Elements() {
			for _, win := range ws.VisibleWindows() {
				if win == nil {
					continue
				}
				exe, _ := wm.OS.Exe(win.Handle)
				title, _ := wm.OS.Title(win.Handle)
				loc, matched := wm.WorkspaceRules.Lookup(exe, title)
				if !matched {
					continue
				}
				if loc.MonitorIdx == focusedMonitorIdx && loc.WorkspaceIdx == focusedWsIdx {
					continue
				}
				if loc.MonitorIdx == mIdx && loc.WorkspaceIdx == wIdx {
					continue
				}
				ops = append(ops, ruleOp{
					hwnd: win.Handle, originMonitor: mIdx, originWorkspace: wIdx,
					targetMonitor: loc.MonitorIdx, targetWorkspace: loc.WorkspaceIdx,
				})
			}
		}
	}

	if len(ops) == 0 {
		return nil
	}

	dirty := false
	for _, op := range ops {
		mon := *wm.Monitors.Get(op.originMonitor)
		ws := *mon.Workspaces.Get(op.originWorkspace)
		if err := ws.RemoveWindow(op.hwnd); err != nil {
			continue
		}
		if op.originMonitor == focusedMonitorIdx && op.originWorkspace == focusedWsIdx {
			_ = (Window{Handle: op.hwnd}).Hide(wm.OS, wm.Hidden)
			dirty = true
		}
	}

	for _, op := range ops {
		targetMon := *wm.Monitors.Get(op.targetMonitor)
		targetMon.EnsureWorkspaceCount(op.targetWorkspace + 1)
		targetWs := *targetMon.Workspaces.Get(op.targetWorkspace)
		targetWs.NewContainerForWindow(Window{Handle: op.hwnd})
	}

	if dirty {
		return wm.updateFocusedWorkspaceLocked(false)
	}
	return nil
}

// SetWorkspaceName renames the focused workspace.
func (wm *WindowManager) SetWorkspaceName(name string) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	ws.Name = &name
	return nil
}

// SetWorkspaceTiling sets the focused workspace's Tile switch directly,
// as opposed to ToggleTiling's flip.
func (wm *WindowManager) SetWorkspaceTiling(tile bool) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	ws.Tile = tile
	return wm.updateFocusedWorkspaceLocked(false)
}

// SetContainerPadding sets the focused workspace's container padding to
// an absolute value, initializing it if previously unset.
func (wm *WindowManager) SetContainerPadding(n int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	ws.ContainerPadding = &n
	return wm.updateFocusedWorkspaceLocked(false)
}

// SetWorkspacePadding sets the focused workspace's outer padding to an
// absolute value, initializing it if previously unset.
func (wm *WindowManager) SetWorkspacePadding(n int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	_, ws, err := wm.focusedWorkspace()
	if err != nil {
		return err
	}
	ws.WorkspacePadding = &n
	return wm.updateFocusedWorkspaceLocked(false)
}

// SetMouseFollowsFocus sets the focus-follows-mouse toggle outright.
func (wm *WindowManager) SetMouseFollowsFocus(v bool) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.MouseFollowsFocus = v
}

// ToggleMouseFollowsFocus flips the focus-follows-mouse toggle.
func (wm *WindowManager) ToggleMouseFollowsFocus() {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.MouseFollowsFocus = !wm.MouseFollowsFocus
}
