package wm

import (
	"errors"
	"testing"

	"github.com/komorebi-go/komorebi/osapi"
)

func TestWorkspaceNewMonocleContainerRejectsWhenMaximized(t *testing.T) {
	w := NewWorkspace()
	w.NewContainerForWindow(Window{Handle: 1})
	if err := w.NewMaximizedWindow(); err != nil {
		t.Fatalf("unexpected error entering maximize: %v", err)
	}
	w.NewContainerForWindow(Window{Handle: 2})

	err := w.NewMonocleContainer()
	if !errors.Is(err, ErrInvalidOverlayTransition) {
		t.Fatalf("expected ErrInvalidOverlayTransition, got %v", err)
	}
}

func TestWorkspaceNewMaximizedWindowRejectsWhenInMonocle(t *testing.T) {
	w := NewWorkspace()
	w.NewContainerForWindow(Window{Handle: 1})
	if err := w.NewMonocleContainer(); err != nil {
		t.Fatalf("unexpected error entering monocle: %v", err)
	}
	w.NewContainerForWindow(Window{Handle: 2})

	err := w.NewMaximizedWindow()
	if !errors.Is(err, ErrInvalidOverlayTransition) {
		t.Fatalf("expected ErrInvalidOverlayTransition, got %v", err)
	}
}

func TestWorkspaceMonocleRoundTripRestoresIndex(t *testing.T) {
	w := NewWorkspace()
	w.NewContainerForWindow(Window{Handle: 1})
	w.NewContainerForWindow(Window{Handle: 2})
	w.NewContainerForWindow(Window{Handle: 3})
	w.Containers.Focus(1)

	if err := w.NewMonocleContainer(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Containers.Len() != 2 {
		t.Fatalf("expected monocle to remove the container from the ring, got len %d", w.Containers.Len())
	}
	if len(w.ResizeDimensions) != 2 {
		t.Fatalf("expected resize dimensions to track container count, got %d", len(w.ResizeDimensions))
	}

	if err := w.ReintegrateMonocleContainer(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Containers.Len() != 3 {
		t.Fatalf("expected reintegration to restore container count, got %d", w.Containers.Len())
	}
	if len(w.ResizeDimensions) != 3 {
		t.Fatalf("expected resize dimensions to track container count, got %d", len(w.ResizeDimensions))
	}
	idx, ok := w.Containers.FocusedIdx()
	if !ok || idx != 1 {
		t.Fatalf("expected focus restored to index 1, got %d (ok=%v)", idx, ok)
	}
	c := *w.Containers.Get(1)
	if !c.ContainsWindow(2) {
		t.Fatalf("expected reintegrated container to still hold handle 2")
	}
}

func TestWorkspaceMaximizeRoundTripReinsertsAtOriginalContainer(t *testing.T) {
	w := NewWorkspace()
	w.NewContainerForWindow(Window{Handle: 1})
	c2 := NewContainerWithWindow(Window{Handle: 2})
	c2.AddWindow(Window{Handle: 3})
	w.Containers.PushBack(c2)
	w.ResizeDimensions = append(w.ResizeDimensions, nil)
	w.Containers.Focus(1)
	c2.Windows.Focus(1)

	if err := w.NewMaximizedWindow(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.MaximizedWindow == nil || w.MaximizedWindow.Handle != 3 {
		t.Fatalf("expected handle 3 to be the maximized window, got %+v", w.MaximizedWindow)
	}
	if !c2.ContainsWindow(2) || c2.Windows.Len() != 1 {
		t.Fatalf("expected source container to retain its other window")
	}

	os := newFakeWithWindow(3, &osapi.FakeWindow{})
	hidden := NewHiddenHandles()
	if err := w.ReintegrateMaximizedWindow(os, hidden); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.MaximizedWindow != nil {
		t.Fatalf("expected maximized window to be cleared after reintegration")
	}
	if !c2.ContainsWindow(3) {
		t.Fatalf("expected handle 3 to be reinserted into its original container")
	}
}

func TestWorkspaceMaximizeReintegrationFallsBackWhenOriginalContainerGone(t *testing.T) {
	w := NewWorkspace()
	w.NewContainerForWindow(Window{Handle: 1})

	if err := w.NewMaximizedWindow(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Containers.Len() != 0 {
		t.Fatalf("expected the now-empty source container to be removed")
	}

	os := newFakeWithWindow(1, &osapi.FakeWindow{})
	hidden := NewHiddenHandles()
	if err := w.ReintegrateMaximizedWindow(os, hidden); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Containers.Len() != 1 {
		t.Fatalf("expected a fresh container to be created, got len %d", w.Containers.Len())
	}
}

func TestWorkspaceRemoveWindowCleansUpEmptyContainer(t *testing.T) {
	w := NewWorkspace()
	w.NewContainerForWindow(Window{Handle: 1})
	w.NewContainerForWindow(Window{Handle: 2})

	if err := w.RemoveWindow(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Containers.Len() != 1 {
		t.Fatalf("expected the emptied container to be removed, got len %d", w.Containers.Len())
	}
	if len(w.ResizeDimensions) != 1 {
		t.Fatalf("expected resize dimensions to shrink in step, got %d", len(w.ResizeDimensions))
	}
}

func TestWorkspacePromoteContainerMovesFocusedToFront(t *testing.T) {
	w := NewWorkspace()
	w.NewContainerForWindow(Window{Handle: 1})
	w.NewContainerForWindow(Window{Handle: 2})
	w.NewContainerForWindow(Window{Handle: 3})
	w.Containers.Focus(2)

	if err := w.PromoteContainer(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx, ok := w.Containers.FocusedIdx()
	if !ok || idx != 0 {
		t.Fatalf("expected focus at index 0, got %d (ok=%v)", idx, ok)
	}
	c := *w.Containers.Get(0)
	if !c.ContainsWindow(3) {
		t.Fatalf("expected handle 3's container to be at the front")
	}
}
