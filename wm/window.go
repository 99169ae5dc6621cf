package wm

import (
	"fmt"

	"github.com/komorebi-go/komorebi/osapi"
)

// Window is a flyweight identifying one OS window by its opaque handle. It
// owns nothing; all state lives in the OS or in the hidden-handle registry
// it is passed.
type Window struct {
	Handle osapi.Handle
}

// Title, Exe and Class proxy attribute reads to the OS binding.
func (w Window) Title(os osapi.OS) (string, error) { return os.Title(w.Handle) }
func (w Window) Exe(os osapi.OS) (string, error)   { return os.Exe(w.Handle) }
func (w Window) Class(os osapi.OS) (string, error) { return os.Class(w.Handle) }

// Hide hides the window and records it in the hidden registry so a later
// restore/maximize knows to clear it.
func (w Window) Hide(os osapi.OS, hidden *HiddenHandles) error {
	if err := os.HideWindow(w.Handle); err != nil {
		return fmt.Errorf("hide window %d: %w", w.Handle, err)
	}
	hidden.Add(w.Handle)
	return nil
}

// Restore shows the window again and clears it from the hidden registry.
func (w Window) Restore(os osapi.OS, hidden *HiddenHandles) error {
	if err := os.RestoreWindow(w.Handle); err != nil {
		return fmt.Errorf("restore window %d: %w", w.Handle, err)
	}
	hidden.Remove(w.Handle)
	return nil
}

// Maximize asks the OS to natively maximize the window and clears it from
// the hidden registry.
func (w Window) Maximize(os osapi.OS, hidden *HiddenHandles) error {
	if err := os.MaximizeWindow(w.Handle); err != nil {
		return fmt.Errorf("maximize window %d: %w", w.Handle, err)
	}
	hidden.Remove(w.Handle)
	return nil
}

// Focus raises and focuses the window. Failures are best-effort: the
// caller logs and continues rather than surfacing them as a reducer error.
func (w Window) Focus(os osapi.OS) error {
	return os.FocusWindow(w.Handle)
}

// Center moves the cursor to the middle of workArea.
func (w Window) Center(os osapi.OS, workArea Rect) error {
	return os.CenterCursor(toOsRect(workArea))
}

// SetPosition expands r by InvisibleBorder and issues the positioning call.
func (w Window) SetPosition(os osapi.OS, r Rect, topmost bool) error {
	expanded := r.Expand(InvisibleBorder)
	if err := os.PositionWindow(w.Handle, toOsRect(expanded), topmost); err != nil {
		return fmt.Errorf("%w: set position of window %d: %v", ErrOsCallFailed, w.Handle, err)
	}
	return nil
}

func toOsRect(r Rect) osapi.Rect {
	return osapi.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

// ShouldManage classifies a raw event per the manager's identifier lists.
// It returns true iff the window must be brought under tiling management.
func ShouldManage(os osapi.OS, ids *Identifiers, hwnd osapi.Handle, isHideEvent bool) bool {
	title, titleErr := os.Title(hwnd)
	exe, exeErr := os.Exe(hwnd)
	class, classErr := os.Class(hwnd)
	if titleErr != nil || exeErr != nil || classErr != nil || title == "" {
		return false
	}

	if !isHideEvent && os.IsCloaked(hwnd) {
		return false
	}

	if ids.FloatMatches(title, exe, class) {
		return false
	}

	style, errS := os.Style(hwnd)
	exStyle, errE := os.ExStyle(hwnd)
	if errS == nil && errE == nil {
		hasCaption := style&osapi.WSCaption != 0
		hasWindowEdge := exStyle&osapi.WSExWindowEdge != 0
		hasDlgModalFrame := exStyle&osapi.WSExDlgModalFrame != 0
		hasLayered := exStyle&osapi.WSExLayered != 0
		ordinary := hasCaption && hasWindowEdge && !hasDlgModalFrame &&
			(!hasLayered || ids.LayeredWhitelisted(exe))
		if ordinary {
			return true
		}
	}

	return ids.ManageMatches(exe, class)
}
