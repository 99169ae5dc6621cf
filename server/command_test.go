package server

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/komorebi-go/komorebi/ipc"
	"github.com/komorebi-go/komorebi/osapi"
	"github.com/komorebi-go/komorebi/wm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newManagerWithOneMonitor(t *testing.T) *wm.WindowManager {
	t.Helper()
	os := osapi.NewFake()
	os.Monitors = []osapi.MonitorInfo{
		{ID: "MON0", WorkArea: osapi.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}},
	}
	m := wm.NewWindowManager(os)
	if err := m.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	return m
}

func TestCommandServerDispatchesAMessage(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "komorebi.sock")
	m := newManagerWithOneMonitor(t)
	srv := NewCommandServer(sockPath, m, testLogger(), nil)
	if err := srv.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer srv.Stop()

	conn, err := net.Dial("unix", sockPath)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	data, err := ipc.Encode(ipc.Message{Op: ipc.OpChangeLayout, Args: []string{"rows"}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := conn.Write(append(data, '\n')); err != nil {
		t.Fatalf("write: %v", err)
	}
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if layoutIsRows(m) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected workspace layout to become rows")
}

func layoutIsRows(m *wm.WindowManager) bool {
	snap := m.Snapshot()
	if len(snap.Monitors) == 0 {
		return false
	}
	ws := snap.Monitors[0].Workspaces
	if len(ws.Elements) == 0 {
		return false
	}
	return ws.Elements[ws.Focused].Layout == wm.LayoutRows
}

func TestCommandServerOpStopInvokesCallback(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "komorebi.sock")
	m := newManagerWithOneMonitor(t)
	stopped := make(chan struct{})
	srv := NewCommandServer(sockPath, m, testLogger(), func() { close(stopped) })
	if err := srv.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer srv.Stop()

	conn, err := net.Dial("unix", sockPath)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	data, _ := ipc.Encode(ipc.Message{Op: ipc.OpStop})
	conn.Write(append(data, '\n'))
	conn.Close()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected onStop to be invoked for OpStop")
	}
}

func TestCommandServerRemovesStaleSocket(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "komorebi.sock")
	if err := os.WriteFile(sockPath, []byte("stale"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	m := newManagerWithOneMonitor(t)
	srv := NewCommandServer(sockPath, m, testLogger(), nil)
	if err := srv.Start(); err != nil {
		t.Fatalf("expected Start to clear a stale socket file, got: %v", err)
	}
	srv.Stop()
}
