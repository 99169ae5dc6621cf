package wm

import (
	"fmt"

	"github.com/komorebi-go/komorebi/osapi"
	"github.com/komorebi-go/komorebi/ring"
)

// Monitor holds a ring of workspaces pinned to one physical display
// rectangle, plus a persistent workspace-name map.
type Monitor struct {
	ID             string
	WorkArea       Rect
	Workspaces     *ring.Ring[*Workspace]
	WorkspaceNames map[int]string
}

// NewMonitor returns a monitor with a single default workspace, as required
// after init.
func NewMonitor(id string, workArea Rect) *Monitor {
	m := &Monitor{
		ID:             id,
		WorkArea:       workArea,
		Workspaces:     ring.New(NewWorkspace()),
		WorkspaceNames: make(map[int]string),
	}
	return m
}

// EnsureWorkspaceCount appends default workspaces until len(workspaces) >=
// n. It never shrinks.
func (m *Monitor) EnsureWorkspaceCount(n int) {
	for m.Workspaces.Len() < n {
		m.Workspaces.PushBack(NewWorkspace())
	}
}

// AddContainer adds c to the focused workspace's containers.
func (m *Monitor) AddContainer(c *Container) error {
	ws := m.Workspaces.Focused()
	if ws == nil {
		return fmt.Errorf("%w: monitor has no focused workspace", ErrNoSuchWorkspace)
	}
	(*ws).Containers.PushBack(c)
	(*ws).ResizeDimensions = append((*ws).ResizeDimensions, nil)
	return nil
}

// MoveContainerToWorkspace removes the focused container from the focused
// workspace and appends it to the target workspace, growing the workspace
// ring if necessary. If follow is set, the target workspace is focused.
func (m *Monitor) MoveContainerToWorkspace(targetIdx int, follow bool) error {
	ws := m.Workspaces.Focused()
	if ws == nil {
		return fmt.Errorf("%w: monitor has no focused workspace", ErrNoSuchWorkspace)
	}
	srcIdx, ok := (*ws).Containers.FocusedIdx()
	if !ok {
		return fmt.Errorf("%w: no focused container", ErrNoSuchContainer)
	}
	c, _ := (*ws).Containers.Remove(srcIdx)
	(*ws).syncResizeDimensionsRemove(srcIdx)

	m.EnsureWorkspaceCount(targetIdx + 1)
	target := m.Workspaces.Get(targetIdx)
	if target == nil {
		return fmt.Errorf("%w: no workspace at %d", ErrNoSuchWorkspace, targetIdx)
	}
	(*target).Containers.PushBack(c)
	(*target).ResizeDimensions = append((*target).ResizeDimensions, nil)

	if follow {
		m.Workspaces.Focus(targetIdx)
	}
	return nil
}

// LoadFocusedWorkspace restores only the focused window of every container
// on the focused workspace and hides every window of every non-focused
// workspace on this monitor.
func (m *Monitor) LoadFocusedWorkspace(os osapi.OS, hidden *HiddenHandles) error {
	focusedIdx, ok := m.Workspaces.FocusedIdx()
	if !ok {
		return nil
	}
	for i, ws := range m.Workspaces.Elements() {
		if i == focusedIdx {
			for _, c := range ws.Containers.Elements() {
				if err := c.LoadFocusedWindow(os, hidden); err != nil {
					return err
				}
			}
			continue
		}
		for _, c := range ws.Containers.Elements() {
			for _, win := range c.Windows.Elements() {
				if err := win.Hide(os, hidden); err != nil {
					return err
				}
			}
		}
		for _, fw := range ws.FloatingWindows {
			if err := fw.Hide(os, hidden); err != nil {
				return err
			}
		}
	}
	return nil
}

// FocusWorkspace validates i, re-focuses, and loads the newly focused
// workspace.
func (m *Monitor) FocusWorkspace(os osapi.OS, hidden *HiddenHandles, i int) error {
	if !m.Workspaces.Focus(i) {
		return fmt.Errorf("%w: no workspace at %d", ErrNoSuchWorkspace, i)
	}
	return m.LoadFocusedWorkspace(os, hidden)
}
