package wm

import (
	"github.com/google/uuid"
	"github.com/komorebi-go/komorebi/osapi"
	"github.com/komorebi-go/komorebi/ring"
)

// Container is an ordered, focus-tracked stack of windows sharing one
// rectangle: only the focused window is visible, the rest are hidden.
// Identity equality is by ID.
type Container struct {
	ID      string
	Windows *ring.Ring[Window]
}

// NewContainer returns a fresh, empty container with a freshly generated id.
func NewContainer() *Container {
	return &Container{ID: uuid.NewString(), Windows: ring.New[Window]()}
}

// NewContainerWithWindow returns a container holding exactly w, focused.
func NewContainerWithWindow(w Window) *Container {
	return &Container{ID: uuid.NewString(), Windows: ring.New(w)}
}

// AddWindow pushes w and focuses it.
func (c *Container) AddWindow(w Window) {
	c.Windows.PushBack(w)
	c.Windows.Focus(c.Windows.Len() - 1)
}

// RemoveFocusedWindow removes the focused window. The new focus becomes
// index-1 of the removed index if the removed index was >= 1, else index 0.
func (c *Container) RemoveFocusedWindow() (Window, bool) {
	idx, ok := c.Windows.FocusedIdx()
	if !ok {
		var zero Window
		return zero, false
	}
	removed, _ := c.Windows.Remove(idx)
	if c.Windows.Len() > 0 {
		if idx >= 1 {
			c.Windows.Focus(idx - 1)
		} else {
			c.Windows.Focus(0)
		}
	}
	return removed, true
}

// RemoveWindowByIdx removes the window at i.
func (c *Container) RemoveWindowByIdx(i int) (Window, bool) {
	return c.Windows.Remove(i)
}

// ContainsWindow reports whether hwnd is in this container.
func (c *Container) ContainsWindow(hwnd osapi.Handle) bool {
	_, ok := c.IdxForWindow(hwnd)
	return ok
}

// IdxForWindow returns the index of hwnd within the container, if present.
func (c *Container) IdxForWindow(hwnd osapi.Handle) (int, bool) {
	for i, w := range c.Windows.Elements() {
		if w.Handle == hwnd {
			return i, true
		}
	}
	return 0, false
}

// IsEmpty reports whether the container holds no windows.
func (c *Container) IsEmpty() bool {
	return c.Windows.Len() == 0
}

// LoadFocusedWindow restores the focused window and hides every other
// window in the container.
func (c *Container) LoadFocusedWindow(os osapi.OS, hidden *HiddenHandles) error {
	focusedIdx, hasFocus := c.Windows.FocusedIdx()
	for i, w := range c.Windows.Elements() {
		if hasFocus && i == focusedIdx {
			if err := w.Restore(os, hidden); err != nil {
				return err
			}
			continue
		}
		if err := w.Hide(os, hidden); err != nil {
			return err
		}
	}
	return nil
}
