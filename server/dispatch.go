package server

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/komorebi-go/komorebi/config"
	"github.com/komorebi-go/komorebi/ipc"
	"github.com/komorebi-go/komorebi/wm"
)

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "on", "1":
		return true, nil
	case "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("unknown boolean %q", s)
}

func parseDirection(s string) (wm.Direction, error) {
	switch s {
	case "left":
		return wm.DirLeft, nil
	case "right":
		return wm.DirRight, nil
	case "up":
		return wm.DirUp, nil
	case "down":
		return wm.DirDown, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func parseSizing(s string) (wm.Sizing, error) {
	switch s {
	case "increase":
		return wm.SizingIncrease, nil
	case "decrease":
		return wm.SizingDecrease, nil
	}
	return 0, fmt.Errorf("unknown sizing %q", s)
}

func parseLayout(s string) (wm.Layout, error) {
	switch s {
	case "bsp":
		return wm.LayoutBSP, nil
	case "columns":
		return wm.LayoutColumns, nil
	case "rows":
		return wm.LayoutRows, nil
	case "vertical_stack":
		return wm.LayoutVerticalStack, nil
	case "horizontal_stack":
		return wm.LayoutHorizontalStack, nil
	case "ultrawide_vertical_stack":
		return wm.LayoutUltrawideVerticalStack, nil
	}
	return 0, fmt.Errorf("unknown layout %q", s)
}

func parseFlip(s string) (wm.Flip, error) {
	switch s {
	case "none":
		return wm.FlipNone, nil
	case "horizontal":
		return wm.FlipHorizontal, nil
	case "vertical":
		return wm.FlipVertical, nil
	case "both":
		return wm.FlipHorizontal | wm.FlipVertical, nil
	}
	return 0, fmt.Errorf("unknown flip %q", s)
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func argInt(args []string, i int) (int, error) {
	return strconv.Atoi(arg(args, i))
}

// Dispatch translates one decoded ipc.Message into the corresponding
// wm.WindowManager call.
func Dispatch(m *wm.WindowManager, msg ipc.Message) error {
	switch msg.Op {
	case ipc.OpFocusWindow, ipc.OpStackWindow:
		d, err := parseDirection(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		if msg.Op == ipc.OpFocusWindow {
			return m.FocusContainerInDirection(d)
		}
		return m.AddWindowToContainer(d)

	case ipc.OpMoveWindow:
		d, err := parseDirection(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		return m.MoveContainerInDirection(d)

	case ipc.OpUnstackWindow:
		return m.RemoveWindowFromContainer()

	case ipc.OpCycleStack:
		d, err := parseDirection(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		return m.CycleContainerWindowInDirection(d)

	case ipc.OpResizeWindow:
		d, err := parseDirection(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		sizing, err := parseSizing(arg(msg.Args, 1))
		if err != nil {
			return err
		}
		step := 0
		if len(msg.Args) > 2 {
			step, _ = argInt(msg.Args, 2)
		}
		return m.ResizeWindow(d, sizing, step)

	case ipc.OpPromoteContainer:
		return m.PromoteContainerToFront()

	case ipc.OpFocusMonitor:
		idx, err := argInt(msg.Args, 0)
		if err != nil {
			return err
		}
		return m.FocusMonitor(idx)

	case ipc.OpFocusWorkspace:
		idx, err := argInt(msg.Args, 0)
		if err != nil {
			return err
		}
		return m.FocusWorkspace(idx)

	case ipc.OpMoveToMonitor:
		idx, err := argInt(msg.Args, 0)
		if err != nil {
			return err
		}
		return m.MoveContainerToMonitor(idx, true)

	case ipc.OpMoveToWorkspace:
		idx, err := argInt(msg.Args, 0)
		if err != nil {
			return err
		}
		return m.MoveContainerToWorkspace(idx, true)

	case ipc.OpNewWorkspace:
		return m.NewWorkspace()

	case ipc.OpFlipLayout:
		f, err := parseFlip(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		return m.FlipLayout(f)

	case ipc.OpAdjustContainerPad:
		sizing, err := parseSizing(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		n, _ := argInt(msg.Args, 1)
		adj := wm.PaddingIncrease
		if sizing == wm.SizingDecrease {
			adj = wm.PaddingDecrease
		}
		return m.AdjustContainerPadding(adj, n)

	case ipc.OpAdjustWorkspacePad:
		sizing, err := parseSizing(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		n, _ := argInt(msg.Args, 1)
		adj := wm.PaddingIncrease
		if sizing == wm.SizingDecrease {
			adj = wm.PaddingDecrease
		}
		return m.AdjustWorkspacePadding(adj, n)

	case ipc.OpTogglePause:
		m.TogglePause()
		return nil

	case ipc.OpToggleTiling:
		return m.ToggleTiling()

	case ipc.OpToggleFloat:
		return m.ToggleFloat()

	case ipc.OpToggleMonocle:
		return m.ToggleMonocle()

	case ipc.OpToggleMaximize:
		return m.ToggleMaximize()

	case ipc.OpManageFocused:
		hwnd, ok := m.OS.ForegroundWindow()
		if !ok {
			return fmt.Errorf("manage_focused: no foreground window")
		}
		return m.ManageFocusedWindow(hwnd)

	case ipc.OpUnmanageFocused:
		hwnd, ok := m.OS.ForegroundWindow()
		if !ok {
			return fmt.Errorf("unmanage_focused: no foreground window")
		}
		return m.UnmanageFocusedWindow(hwnd)

	case ipc.OpEnsureWorkspaces:
		monitorIdx, err := argInt(msg.Args, 0)
		if err != nil {
			return err
		}
		count, err := argInt(msg.Args, 1)
		if err != nil {
			return err
		}
		return m.EnsureWorkspaceCountFor(monitorIdx, count)

	case ipc.OpChangeLayout, ipc.OpWorkspaceLayout:
		layout, err := parseLayout(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		return m.SetWorkspaceLayout(layout)

	case ipc.OpRestoreWindows:
		m.Hidden.Restore(m.OS)
		path, err := config.HwndPersistPath()
		if err != nil {
			return err
		}
		persisted, err := LoadPersistedHiddenWindows(path)
		if err != nil {
			return err
		}
		for _, h := range persisted {
			_ = m.OS.RestoreWindow(h)
		}
		return nil

	case ipc.OpState:
		// The state document itself is served by StateServer on its own
		// socket; this op exists only so the wire taxonomy matches the
		// documented one-message-per-connection contract.
		return nil

	case ipc.OpFloatRule:
		m.Identifiers.AddFloatIdentifier(arg(msg.Args, 0))
		return nil

	case ipc.OpManageRule:
		m.Identifiers.AddManageIdentifier(arg(msg.Args, 0))
		return nil

	case ipc.OpIdentifyTray:
		m.Identifiers.AddTrayIdentifier(arg(msg.Args, 0), arg(msg.Args, 1))
		return nil

	case ipc.OpWorkspaceRule:
		monitorIdx, err := argInt(msg.Args, 1)
		if err != nil {
			return err
		}
		workspaceIdx, err := argInt(msg.Args, 2)
		if err != nil {
			return err
		}
		m.WorkspaceRules.Set(arg(msg.Args, 0), wm.WorkspaceLocation{MonitorIdx: monitorIdx, WorkspaceIdx: workspaceIdx})
		return nil

	case ipc.OpFocusFollowsMouse:
		if len(msg.Args) == 0 {
			m.ToggleMouseFollowsFocus()
			return nil
		}
		v, err := parseBool(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		m.SetMouseFollowsFocus(v)
		return nil

	case ipc.OpWorkspaceName:
		return m.SetWorkspaceName(arg(msg.Args, 0))

	case ipc.OpWorkspaceTiling:
		v, err := parseBool(arg(msg.Args, 0))
		if err != nil {
			return err
		}
		return m.SetWorkspaceTiling(v)

	case ipc.OpContainerPadding:
		n, err := argInt(msg.Args, 0)
		if err != nil {
			return err
		}
		return m.SetContainerPadding(n)

	case ipc.OpWorkspacePadding:
		n, err := argInt(msg.Args, 0)
		if err != nil {
			return err
		}
		return m.SetWorkspacePadding(n)

	case ipc.OpReloadConfiguration:
		cfg, err := config.Load(logrus.New())
		if err != nil {
			return err
		}
		cfg.ApplyTo(m.Identifiers, m.WorkspaceRules)
		return nil

	case ipc.OpWatchConfiguration:
		// The config watcher is started once at daemon startup and runs
		// for the process lifetime; this op is a documented no-op that
		// exists for wire-taxonomy parity with reload-configuration.
		return nil

	default:
		return fmt.Errorf("unhandled op %q", msg.Op)
	}
}
