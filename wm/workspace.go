package wm

import (
	"fmt"

	"github.com/komorebi-go/komorebi/osapi"
	"github.com/komorebi-go/komorebi/ring"
)

// maximizedRestore remembers where a maximized window came from so it can
// be reinserted in roughly the same place.
type maximizedRestore struct {
	ContainerIdx    int
	WindowIdxInside int
	ContainerID     string
}

// Workspace is the main state machine: an ordered list of containers plus
// the floating/monocle/maximize overlay states, paddings, layout choice,
// flip, and the tile on/off switch.
type Workspace struct {
	Name *string

	Containers *ring.Ring[*Container]

	MonocleContainer  *Container
	MonocleRestoreIdx *int

	MaximizedWindow  *Window
	maximizedRestore *maximizedRestore

	FloatingWindows []Window

	Layout           Layout
	LayoutFlip       Flip
	WorkspacePadding *int
	ContainerPadding *int
	ResizeDimensions []*ResizeDelta

	Tile bool
}

// NewWorkspace returns a workspace with tiling enabled and the BSP layout.
func NewWorkspace() *Workspace {
	return &Workspace{
		Containers: ring.New[*Container](),
		Layout:     LayoutBSP,
		Tile:       true,
	}
}

func (w *Workspace) containerPadding() int {
	if w.ContainerPadding == nil {
		return 0
	}
	return *w.ContainerPadding
}

func (w *Workspace) workspacePadding() int {
	if w.WorkspacePadding == nil {
		return 0
	}
	return *w.WorkspacePadding
}

// Update repositions every managed window per the current overlay state.
func (w *Workspace) Update(os osapi.OS, hidden *HiddenHandles, workArea Rect) error {
	if !w.Tile {
		return nil
	}

	if w.MaximizedWindow != nil {
		return w.MaximizedWindow.Maximize(os, hidden)
	}

	if w.MonocleContainer != nil {
		focused := w.MonocleContainer.Windows.Focused()
		if focused == nil {
			return nil
		}
		area := workArea.Shrink(w.workspacePadding())
		if err := focused.SetPosition(os, area, false); err != nil {
			return err
		}
		return w.restoreFloating(os, hidden)
	}

	area := workArea.Shrink(w.workspacePadding())
	n := w.Containers.Len()
	if n > 0 {
		rects := Calculate(w.Layout, area, n, w.containerPadding(), w.LayoutFlip, w.ResizeDimensions)
		for i, c := range w.Containers.Elements() {
			if err := c.LoadFocusedWindow(os, hidden); err != nil {
				return err
			}
			focused := c.Windows.Focused()
			if focused == nil {
				continue
			}
			if err := focused.SetPosition(os, rects[i], false); err != nil {
				return err
			}
		}
	}

	return w.restoreFloating(os, hidden)
}

func (w *Workspace) restoreFloating(os osapi.OS, hidden *HiddenHandles) error {
	for _, fw := range w.FloatingWindows {
		if err := fw.Restore(os, hidden); err != nil {
			return err
		}
	}
	return nil
}

// syncResizeDimensions keeps ResizeDimensions the same length as Containers
// after any structural change, per the invariant that the two always match.
func (w *Workspace) syncResizeDimensionsInsert(idx int) {
	w.ResizeDimensions = append(w.ResizeDimensions, nil)
	copy(w.ResizeDimensions[idx+1:], w.ResizeDimensions[idx:])
	w.ResizeDimensions[idx] = nil
}

func (w *Workspace) syncResizeDimensionsRemove(idx int) {
	if idx < 0 || idx >= len(w.ResizeDimensions) {
		return
	}
	w.ResizeDimensions = append(w.ResizeDimensions[:idx], w.ResizeDimensions[idx+1:]...)
}

// NewContainerForWindow creates a fresh container holding only w, appends
// it, keeps ResizeDimensions in sync, and focuses it.
func (w *Workspace) NewContainerForWindow(win Window) {
	c := NewContainerWithWindow(win)
	w.Containers.PushBack(c)
	w.ResizeDimensions = append(w.ResizeDimensions, nil)
	w.Containers.Focus(w.Containers.Len() - 1)
}

// NewContainerForFocusedWindow removes the focused window from the focused
// container and promotes it into a new container inserted immediately
// after. If the source container becomes empty, it is removed.
func (w *Workspace) NewContainerForFocusedWindow() error {
	idx, ok := w.Containers.FocusedIdx()
	if !ok {
		return fmt.Errorf("%w: no focused container", ErrNoSuchContainer)
	}
	src := *w.Containers.Get(idx)
	win, ok := src.RemoveFocusedWindow()
	if !ok {
		return fmt.Errorf("%w: focused container has no window", ErrNoSuchWindow)
	}

	next := NewContainerWithWindow(win)
	insertAt := idx + 1
	w.Containers.Insert(insertAt, next)
	w.syncResizeDimensionsInsert(insertAt)
	w.Containers.Focus(insertAt)

	if src.IsEmpty() {
		removedIdx := idx
		w.Containers.Remove(removedIdx)
		w.syncResizeDimensionsRemove(removedIdx)
	}
	return nil
}

// MoveWindowToContainer moves the focused window of the focused container
// into the container at targetIdx.
func (w *Workspace) MoveWindowToContainer(targetIdx int) error {
	srcIdx, ok := w.Containers.FocusedIdx()
	if !ok {
		return fmt.Errorf("%w: no focused container", ErrNoSuchContainer)
	}
	target := w.Containers.Get(targetIdx)
	if target == nil {
		return fmt.Errorf("%w: no container at %d", ErrNoSuchContainer, targetIdx)
	}

	src := *w.Containers.Get(srcIdx)
	win, ok := src.RemoveFocusedWindow()
	if !ok {
		return fmt.Errorf("%w: focused container has no window", ErrNoSuchWindow)
	}
	(*target).AddWindow(win)

	if src.IsEmpty() {
		w.Containers.Remove(srcIdx)
		w.syncResizeDimensionsRemove(srcIdx)
	}
	return nil
}

// RemoveWindow finds and removes hwnd from whichever container holds it,
// cleaning up any container left empty.
func (w *Workspace) RemoveWindow(hwnd osapi.Handle) error {
	for i, c := range w.Containers.Elements() {
		if idx, ok := c.IdxForWindow(hwnd); ok {
			c.RemoveWindowByIdx(idx)
			if c.IsEmpty() {
				w.Containers.Remove(i)
				w.syncResizeDimensionsRemove(i)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: handle %d not managed", ErrNoSuchWindow, hwnd)
}

// SwapContainers exchanges the containers at i and j.
func (w *Workspace) SwapContainers(i, j int) {
	w.Containers.Swap(i, j)
}

// FocusContainer focuses the container at i.
func (w *Workspace) FocusContainer(i int) bool {
	return w.Containers.Focus(i)
}

// PromoteContainer moves the focused container to index 0 and focuses it.
func (w *Workspace) PromoteContainer() error {
	idx, ok := w.Containers.FocusedIdx()
	if !ok {
		return fmt.Errorf("%w: no focused container", ErrNoSuchContainer)
	}
	if idx == 0 {
		return nil
	}
	c, _ := w.Containers.Remove(idx)
	w.syncResizeDimensionsRemove(idx)
	w.Containers.Insert(0, c)
	w.syncResizeDimensionsInsert(0)
	w.Containers.Focus(0)
	return nil
}

// NewFloatingWindow pops the focused window from the focused container
// (via RemoveWindow semantics) and pushes it onto FloatingWindows.
func (w *Workspace) NewFloatingWindow() (Window, error) {
	idx, ok := w.Containers.FocusedIdx()
	if !ok {
		return Window{}, fmt.Errorf("%w: no focused container", ErrNoSuchContainer)
	}
	c := *w.Containers.Get(idx)
	win, ok := c.RemoveFocusedWindow()
	if !ok {
		return Window{}, fmt.Errorf("%w: focused container has no window", ErrNoSuchWindow)
	}
	if c.IsEmpty() {
		w.Containers.Remove(idx)
		w.syncResizeDimensionsRemove(idx)
	}
	w.FloatingWindows = append(w.FloatingWindows, win)
	return win, nil
}

// NewContainerForFloatingWindow pops the foreground window from
// FloatingWindows (identified via the OS foreground-window query) and
// inserts it as a new container at focused_idx+1.
func (w *Workspace) NewContainerForFloatingWindow(os osapi.OS) error {
	fg, ok := os.ForegroundWindow()
	if !ok {
		return fmt.Errorf("%w: no foreground window", ErrNoSuchWindow)
	}

	floatIdx := -1
	for i, fw := range w.FloatingWindows {
		if fw.Handle == fg {
			floatIdx = i
			break
		}
	}
	if floatIdx == -1 {
		return fmt.Errorf("%w: foreground window is not floating", ErrNoSuchWindow)
	}

	win := w.FloatingWindows[floatIdx]
	w.FloatingWindows = append(w.FloatingWindows[:floatIdx], w.FloatingWindows[floatIdx+1:]...)

	idx, ok := w.Containers.FocusedIdx()
	insertAt := 0
	if ok {
		insertAt = idx + 1
	}
	c := NewContainerWithWindow(win)
	w.Containers.Insert(insertAt, c)
	w.syncResizeDimensionsInsert(insertAt)
	w.Containers.Focus(insertAt)
	return nil
}

// NewMonocleContainer takes ownership of the focused container, stashing
// it for later reintegration. Mutually exclusive with maximize.
func (w *Workspace) NewMonocleContainer() error {
	if w.MaximizedWindow != nil {
		return fmt.Errorf("%w: a window is maximized", ErrInvalidOverlayTransition)
	}
	if w.MonocleContainer != nil {
		return fmt.Errorf("%w: already in monocle", ErrInvalidOverlayTransition)
	}
	idx, ok := w.Containers.FocusedIdx()
	if !ok {
		return fmt.Errorf("%w: no focused container", ErrNoSuchContainer)
	}
	c, _ := w.Containers.Remove(idx)
	w.syncResizeDimensionsRemove(idx)
	w.MonocleContainer = c
	w.MonocleRestoreIdx = &idx
	return nil
}

// ReintegrateMonocleContainer puts the stashed container back at its
// remembered index and re-focuses it.
func (w *Workspace) ReintegrateMonocleContainer() error {
	if w.MonocleContainer == nil {
		return fmt.Errorf("%w: not in monocle", ErrInvalidOverlayTransition)
	}
	c := w.MonocleContainer
	idx := 0
	if w.MonocleRestoreIdx != nil {
		idx = *w.MonocleRestoreIdx
	}
	if idx > w.Containers.Len() {
		idx = w.Containers.Len()
	}
	w.Containers.Insert(idx, c)
	w.syncResizeDimensionsInsert(idx)
	w.Containers.Focus(idx)
	w.MonocleContainer = nil
	w.MonocleRestoreIdx = nil
	return nil
}

// NewMaximizedWindow removes the focused window from the focused
// container, remembering enough to reintegrate it later. Mutually
// exclusive with monocle.
func (w *Workspace) NewMaximizedWindow() error {
	if w.MonocleContainer != nil {
		return fmt.Errorf("%w: workspace is in monocle", ErrInvalidOverlayTransition)
	}
	if w.MaximizedWindow != nil {
		return fmt.Errorf("%w: already maximized", ErrInvalidOverlayTransition)
	}
	cIdx, ok := w.Containers.FocusedIdx()
	if !ok {
		return fmt.Errorf("%w: no focused container", ErrNoSuchContainer)
	}
	c := *w.Containers.Get(cIdx)
	winIdx, hasFocus := c.Windows.FocusedIdx()
	if !hasFocus {
		return fmt.Errorf("%w: focused container has no window", ErrNoSuchWindow)
	}
	win, _ := c.RemoveWindowByIdx(winIdx)

	w.maximizedRestore = &maximizedRestore{ContainerIdx: cIdx, WindowIdxInside: winIdx, ContainerID: c.ID}
	w.MaximizedWindow = &win

	if c.IsEmpty() {
		w.Containers.Remove(cIdx)
		w.syncResizeDimensionsRemove(cIdx)
	}
	return nil
}

// ReintegrateMaximizedWindow looks up the original container by id; if
// still present, reinserts the window at the remembered sub-index, else
// creates a new container for it at the end.
func (w *Workspace) ReintegrateMaximizedWindow(os osapi.OS, hidden *HiddenHandles) error {
	if w.MaximizedWindow == nil {
		return fmt.Errorf("%w: no maximized window", ErrInvalidOverlayTransition)
	}
	win := *w.MaximizedWindow
	restore := w.maximizedRestore

	if err := win.Restore(os, hidden); err != nil {
		return err
	}

	found := false
	if restore != nil {
		for i, c := range w.Containers.Elements() {
			if c.ID == restore.ContainerID {
				idx := restore.WindowIdxInside
				if idx > c.Windows.Len() {
					idx = c.Windows.Len()
				}
				c.Windows.Insert(idx, win)
				c.Windows.Focus(idx)
				w.Containers.Focus(i)
				found = true
				break
			}
		}
	}
	if !found {
		w.NewContainerForWindow(win)
	}

	w.MaximizedWindow = nil
	w.maximizedRestore = nil
	return nil
}

// NewIdxForDirection returns the container index geometrically in
// direction relative to the focused container under the current layout
// and flip state.
func (w *Workspace) NewIdxForDirection(direction Direction) (int, bool) {
	idx, ok := w.Containers.FocusedIdx()
	if !ok {
		return 0, false
	}
	return DirectionCandidate(w.Layout, w.LayoutFlip, idx, w.Containers.Len(), direction)
}

// VisibleWindows returns, for each container, its focused window if any.
func (w *Workspace) VisibleWindows() []*Window {
	out := make([]*Window, 0, w.Containers.Len())
	for _, c := range w.Containers.Elements() {
		out = append(out, c.Windows.Focused())
	}
	return out
}
