package wm

import (
	"testing"

	"github.com/komorebi-go/komorebi/osapi"
)

func newTestManager(monitorCount int) (*WindowManager, *osapi.Fake) {
	os := osapi.NewFake()
	for i := 0; i < monitorCount; i++ {
		os.Monitors = append(os.Monitors, osapi.MonitorInfo{
			ID:       monitorID(i),
			WorkArea: osapi.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
		})
	}
	m := NewWindowManager(os)
	if err := m.Init(); err != nil {
		panic(err)
	}
	return m, os
}

func monitorID(i int) string {
	return []string{"MON0", "MON1", "MON2"}[i]
}

func TestInitPopulatesMonitorsFromOS(t *testing.T) {
	m, _ := newTestManager(2)
	if m.Monitors.Len() != 2 {
		t.Fatalf("expected 2 monitors, got %d", m.Monitors.Len())
	}
	idx, ok := m.Monitors.FocusedIdx()
	if !ok || idx != 0 {
		t.Fatalf("expected monitor 0 focused after init, got %d (ok=%v)", idx, ok)
	}
}

func TestManageFocusedWindowAddsNewContainer(t *testing.T) {
	m, os := newTestManager(1)
	os.AddWindow(1, &osapi.FakeWindow{Title: "a", Exe: "a.exe"})

	if err := m.ManageFocusedWindow(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mon, _ := m.focusedMonitor()
	ws := *mon.Workspaces.Focused()
	if ws.Containers.Len() != 1 {
		t.Fatalf("expected 1 container after managing a window, got %d", ws.Containers.Len())
	}
}

func TestUnmanageFocusedWindowRemovesContainer(t *testing.T) {
	m, os := newTestManager(1)
	os.AddWindow(1, &osapi.FakeWindow{Title: "a"})
	m.ManageFocusedWindow(1)

	if err := m.UnmanageFocusedWindow(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mon, _ := m.focusedMonitor()
	ws := *mon.Workspaces.Focused()
	if ws.Containers.Len() != 0 {
		t.Fatalf("expected 0 containers after unmanaging the only window, got %d", ws.Containers.Len())
	}
}

func TestSetWorkspaceLayoutChangesFocusedWorkspace(t *testing.T) {
	m, _ := newTestManager(1)
	if err := m.SetWorkspaceLayout(LayoutColumns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mon, _ := m.focusedMonitor()
	ws := *mon.Workspaces.Focused()
	if ws.Layout != LayoutColumns {
		t.Fatalf("expected layout Columns, got %v", ws.Layout)
	}
}

func TestAdjustContainerPaddingRequiresPaddingSet(t *testing.T) {
	m, _ := newTestManager(1)
	if err := m.AdjustContainerPadding(PaddingIncrease, 5); err == nil {
		t.Fatalf("expected ErrNoPadding when container padding is unset")
	}
}

func TestTogglePauseSuppressesEvents(t *testing.T) {
	m, os := newTestManager(1)
	m.TogglePause()
	if !m.IsPaused {
		t.Fatalf("expected IsPaused to flip to true")
	}
	os.AddWindow(1, &osapi.FakeWindow{Title: "a"})
	if err := m.HandleEvent(Event{Kind: EventManage, Window: Window{Handle: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mon, _ := m.focusedMonitor()
	ws := *mon.Workspaces.Focused()
	if ws.Containers.Len() != 0 {
		t.Fatalf("expected paused manager to ignore events, got %d containers", ws.Containers.Len())
	}
}

func TestEnforceWorkspaceRulesRelocatesAcrossMonitors(t *testing.T) {
	m, os := newTestManager(2)
	os.AddWindow(1, &osapi.FakeWindow{Title: "slack", Exe: "slack.exe"})
	if err := m.ManageFocusedWindow(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.WorkspaceRules.Set("slack.exe", WorkspaceLocation{MonitorIdx: 1, WorkspaceIdx: 0})

	if err := m.EnforceWorkspaceRules(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srcMon := *m.Monitors.Get(0)
	srcWs := *srcMon.Workspaces.Focused()
	if srcWs.Containers.Len() != 0 {
		t.Fatalf("expected the rule-violating window to leave its origin workspace")
	}

	dstMon := *m.Monitors.Get(1)
	dstWs := *dstMon.Workspaces.Focused()
	if dstWs.Containers.Len() != 1 {
		t.Fatalf("expected the window to land on the rule's target workspace, got %d containers", dstWs.Containers.Len())
	}
}

func TestEnforceWorkspaceRulesIsIdempotent(t *testing.T) {
	m, os := newTestManager(2)
	os.AddWindow(1, &osapi.FakeWindow{Title: "slack", Exe: "slack.exe"})
	if err := m.ManageFocusedWindow(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.WorkspaceRules.Set("slack.exe", WorkspaceLocation{MonitorIdx: 1, WorkspaceIdx: 0})

	if err := m.EnforceWorkspaceRules(); err != nil {
		t.Fatalf("unexpected error on first pass: %v", err)
	}
	if err := m.EnforceWorkspaceRules(); err != nil {
		t.Fatalf("unexpected error on second pass: %v", err)
	}

	dstMon := *m.Monitors.Get(1)
	dstWs := *dstMon.Workspaces.Focused()
	if dstWs.Containers.Len() != 1 {
		t.Fatalf("expected exactly 1 container after a repeated enforcement pass, got %d", dstWs.Containers.Len())
	}
}
