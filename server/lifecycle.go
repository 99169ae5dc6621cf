package server

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"syscall"

	"github.com/komorebi-go/komorebi/osapi"
)

// AcquireSingleInstance writes the current pid to path, failing if another
// live process already holds it. Exit code 1 is the documented behavior
// for a second instance.
func AcquireSingleInstance(path string) error {
	if data, err := os.ReadFile(path); err == nil {
		if pid, convErr := strconv.Atoi(string(data)); convErr == nil && processAlive(pid) {
			return fmt.Errorf("komorebi is already running (pid %d)", pid)
		}
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644)
}

// ReleaseSingleInstance removes the lock file on clean shutdown.
func ReleaseSingleInstance(path string) {
	_ = os.Remove(path)
}

func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// os.FindProcess always succeeds on POSIX; signal 0 probes liveness
	// without actually sending a signal.
	return proc.Signal(syscall.Signal(0)) == nil
}

// PersistHiddenWindows writes the hidden-handle registry to
// $HOME/komorebi.hwnd.json so a later restore-windows command can rescue
// them after a restart.
func PersistHiddenWindows(path string, hidden HiddenHandlesSnapshotter) error {
	handles := hidden.Snapshot()
	raw := make([]uint64, len(handles))
	for i, h := range handles {
		raw[i] = uint64(h)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPersistedHiddenWindows reads back a previous PersistHiddenWindows
// dump, returning an empty slice if the file does not exist.
func LoadPersistedHiddenWindows(path string) ([]osapi.Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var raw []uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]osapi.Handle, len(raw))
	for i, v := range raw {
		out[i] = osapi.Handle(v)
	}
	return out, nil
}

// HiddenHandlesSnapshotter is the subset of wm.HiddenHandles that
// lifecycle persistence needs, kept narrow to avoid an import cycle
// between server and wm in either direction.
type HiddenHandlesSnapshotter interface {
	Snapshot() []osapi.Handle
}
