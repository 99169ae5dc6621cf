package wm

import (
	"testing"

	"github.com/komorebi-go/komorebi/osapi"
)

func newFakeWithWindow(h osapi.Handle, w *osapi.FakeWindow) *osapi.Fake {
	f := osapi.NewFake()
	f.AddWindow(h, w)
	return f
}

func TestShouldManageOrdinaryWindow(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{
		Title: "Notepad", Exe: "notepad.exe",
		Style:   osapi.WSCaption,
		ExStyle: osapi.WSExWindowEdge,
	})
	ids := NewIdentifiers()
	if !ShouldManage(os, ids, 1, false) {
		t.Fatalf("expected ordinary captioned/window-edge window to be managed")
	}
}

func TestShouldManageRejectsEmptyTitle(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{Title: ""})
	ids := NewIdentifiers()
	if ShouldManage(os, ids, 1, false) {
		t.Fatalf("expected window with empty title to be rejected")
	}
}

func TestShouldManageRejectsUnknownWindow(t *testing.T) {
	os := osapi.NewFake()
	ids := NewIdentifiers()
	if ShouldManage(os, ids, 99, false) {
		t.Fatalf("expected a window whose title/exe/class all fail to read to be rejected")
	}
}

func TestShouldManageRejectsCloakedOnShowEvent(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{Title: "x", Cloaked: true})
	ids := NewIdentifiers()
	if ShouldManage(os, ids, 1, false) {
		t.Fatalf("expected cloaked window to be rejected on a non-hide event")
	}
}

func TestShouldManageIgnoresCloakOnHideEvent(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{
		Title: "x", Cloaked: true,
		Style: osapi.WSCaption, ExStyle: osapi.WSExWindowEdge,
	})
	ids := NewIdentifiers()
	if !ShouldManage(os, ids, 1, true) {
		t.Fatalf("expected cloak check to be skipped on a hide event")
	}
}

func TestShouldManageRejectsFloatIdentifier(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{
		Title: "Settings", Exe: "settings.exe",
		Style: osapi.WSCaption, ExStyle: osapi.WSExWindowEdge,
	})
	ids := NewIdentifiers()
	ids.AddFloatIdentifier("settings.exe")
	if ShouldManage(os, ids, 1, false) {
		t.Fatalf("expected float-identified window to be rejected")
	}
}

func TestShouldManageRejectsDlgModalFrame(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{
		Title: "Dialog",
		Style: osapi.WSCaption, ExStyle: osapi.WSExWindowEdge | osapi.WSExDlgModalFrame,
	})
	ids := NewIdentifiers()
	if ShouldManage(os, ids, 1, false) {
		t.Fatalf("expected dialog-frame window to be rejected without a manage override")
	}
}

func TestShouldManageLayeredWindowNeedsWhitelist(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{
		Title: "Overlay", Exe: "overlay.exe",
		Style: osapi.WSCaption, ExStyle: osapi.WSExWindowEdge | osapi.WSExLayered,
	})
	ids := NewIdentifiers()
	if ShouldManage(os, ids, 1, false) {
		t.Fatalf("expected layered window to be rejected without a whitelist entry")
	}
	ids.AddLayeredWhitelist("overlay.exe")
	if !ShouldManage(os, ids, 1, false) {
		t.Fatalf("expected whitelisted layered window to be managed")
	}
}

func TestShouldManageFallsBackToManageIdentifier(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{
		Title: "Tool", Exe: "tool.exe",
		Style: 0, ExStyle: 0,
	})
	ids := NewIdentifiers()
	if ShouldManage(os, ids, 1, false) {
		t.Fatalf("expected non-ordinary window without a manage override to be rejected")
	}
	ids.AddManageIdentifier("tool.exe")
	if !ShouldManage(os, ids, 1, false) {
		t.Fatalf("expected manage-identified window to be managed")
	}
}

func TestWindowHideRecordsInHiddenRegistry(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{})
	hidden := NewHiddenHandles()
	w := Window{Handle: 1}
	if err := w.Hide(os, hidden); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hidden.Contains(1) {
		t.Fatalf("expected handle to be recorded as hidden")
	}
}

func TestWindowRestoreClearsHiddenRegistry(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{})
	hidden := NewHiddenHandles()
	w := Window{Handle: 1}
	w.Hide(os, hidden)
	if err := w.Restore(os, hidden); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hidden.Contains(1) {
		t.Fatalf("expected handle to be cleared from hidden registry")
	}
}

func TestWindowSetPositionExpandsByInvisibleBorder(t *testing.T) {
	os := newFakeWithWindow(1, &osapi.FakeWindow{})
	w := Window{Handle: 1}
	r := Rect{Left: 100, Top: 100, Right: 800, Bottom: 600}
	if err := w.SetPosition(os, r, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := os.Windows[1].Rect
	want := r.Expand(InvisibleBorder)
	if got.Left != want.Left || got.Top != want.Top || got.Right != want.Right || got.Bottom != want.Bottom {
		t.Fatalf("expected expanded rect %+v, got %+v", want, got)
	}
}
