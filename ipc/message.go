// Package ipc defines the wire message taxonomy carried over the command
// socket: each client connection sends exactly one JSON-encoded Message
// and then closes its side, matching the one-shot socket model komorebic
// drives from the command line.
package ipc

import (
	"encoding/json"
	"fmt"
)

// Op names one command-socket operation. The full taxonomy mirrors the
// message enum komorebic's CLI subcommands serialize into.
type Op string

const (
	OpFocusWindow       Op = "focus_window"
	OpMoveWindow        Op = "move_window"
	OpStackWindow        Op = "stack_window"
	OpUnstackWindow      Op = "unstack_window"
	OpCycleStack         Op = "cycle_stack"
	OpResizeWindow       Op = "resize_window"
	OpPromoteContainer   Op = "promote_container"

	OpFocusMonitor       Op = "focus_monitor"
	OpFocusWorkspace     Op = "focus_workspace"
	OpMoveToMonitor      Op = "move_to_monitor"
	OpMoveToWorkspace    Op = "move_to_workspace"
	OpNewWorkspace       Op = "new_workspace"
	OpEnsureWorkspaces   Op = "ensure_workspaces"
	OpWorkspaceName      Op = "workspace_name"
	OpWorkspaceTiling    Op = "workspace_tiling"
	OpWorkspaceLayout    Op = "workspace_layout"

	OpChangeLayout       Op = "change_layout"
	OpFlipLayout         Op = "flip_layout"
	OpContainerPadding   Op = "container_padding"
	OpWorkspacePadding   Op = "workspace_padding"
	OpAdjustContainerPad Op = "adjust_container_padding"
	OpAdjustWorkspacePad Op = "adjust_workspace_padding"

	OpTogglePause        Op = "toggle_pause"
	OpToggleTiling        Op = "toggle_tiling"
	OpToggleFloat         Op = "toggle_float"
	OpToggleMonocle       Op = "toggle_monocle"
	OpToggleMaximize      Op = "toggle_maximize"

	OpFloatRule          Op = "float_rule"
	OpManageRule         Op = "manage_rule"
	OpWorkspaceRule      Op = "workspace_rule"
	OpIdentifyTray       Op = "identify_tray_application"

	OpFocusFollowsMouse  Op = "focus_follows_mouse"
	OpReloadConfiguration Op = "reload_configuration"
	OpWatchConfiguration  Op = "watch_configuration"

	OpManageFocused      Op = "manage_focused"
	OpUnmanageFocused    Op = "unmanage_focused"
	OpRestoreWindows     Op = "restore_windows"

	OpState              Op = "state"
	OpStop               Op = "stop"
)

// Message is the single JSON value a client sends before closing its
// connection. Args carries the op's positional arguments (direction
// names, indices, identifiers) as strings; the daemon parses each
// argument according to its op.
type Message struct {
	Op   Op       `json:"op"`
	Args []string `json:"args,omitempty"`
}

// Encode serializes m for writing to the socket.
func Encode(m Message) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("ipc: encode message: %w", err)
	}
	return data, nil
}

// Decode parses one Message from data.
func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("ipc: decode message: %w", err)
	}
	return m, nil
}
