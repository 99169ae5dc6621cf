package wm

import "errors"

// Sentinel error kinds shared across the reducer. Reducers wrap these
// with fmt.Errorf("...: %w", ErrX) to attach context; callers use
// errors.Is to classify a failure.
var (
	ErrNoSuchMonitor         = errors.New("no such monitor")
	ErrNoSuchWorkspace       = errors.New("no such workspace")
	ErrNoSuchContainer       = errors.New("no such container")
	ErrNoSuchWindow          = errors.New("no such window")
	ErrInvalidDirection      = errors.New("invalid direction")
	ErrInvalidOverlayTransition = errors.New("invalid overlay transition")
	ErrNoPadding             = errors.New("no padding set")
	ErrOsCallFailed          = errors.New("os call failed")
	ErrBadConfig             = errors.New("bad configuration")
	ErrSocketIo              = errors.New("socket io error")
)
