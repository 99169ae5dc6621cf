package server

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/komorebi-go/komorebi/osapi"
)

func TestAcquireSingleInstanceSucceedsWhenLockAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "komorebi.pid")
	if err := AcquireSingleInstance(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected a pid file to be written: %v", err)
	}
	if string(data) != strconv.Itoa(os.Getpid()) {
		t.Fatalf("expected lock file to hold this process's pid, got %q", data)
	}
}

func TestAcquireSingleInstanceRejectsWhenHolderAlive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "komorebi.pid")
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := AcquireSingleInstance(path); err == nil {
		t.Fatalf("expected an error since the recorded pid (this process) is alive")
	}
}

func TestAcquireSingleInstanceSucceedsWhenLockStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "komorebi.pid")
	// pid 0 is never a real process id handed to AcquireSingleInstance callers
	// and reliably fails the liveness probe.
	if err := os.WriteFile(path, []byte("0"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := AcquireSingleInstance(path); err != nil {
		t.Fatalf("expected a stale lock to be reclaimed, got: %v", err)
	}
}

func TestReleaseSingleInstanceRemovesLockFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "komorebi.pid")
	os.WriteFile(path, []byte("123"), 0644)
	ReleaseSingleInstance(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected lock file to be removed")
	}
}

type fakeHiddenSnapshotter struct {
	handles []osapi.Handle
}

func (f fakeHiddenSnapshotter) Snapshot() []osapi.Handle {
	return f.handles
}

func TestPersistAndLoadHiddenWindowsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "komorebi.hwnd.json")
	snap := fakeHiddenSnapshotter{handles: []osapi.Handle{1, 2, 3}}

	if err := PersistHiddenWindows(path, snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := LoadPersistedHiddenWindows(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 3 || loaded[0] != 1 || loaded[2] != 3 {
		t.Fatalf("expected handles to round-trip, got %v", loaded)
	}
}

func TestLoadPersistedHiddenWindowsReturnsEmptyWhenAbsent(t *testing.T) {
	loaded, err := LoadPersistedHiddenWindows(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected no handles when the persistence file is missing, got %v", loaded)
	}
}
