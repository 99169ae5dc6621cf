// Command komorebic is the CLI client: each invocation opens the command
// socket, sends one message, and exits.
package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/komorebi-go/komorebi/config"
	"github.com/komorebi-go/komorebi/ipc"
)

func send(op ipc.Op, args []string) error {
	path, err := config.CommandSocketPath()
	if err != nil {
		return err
	}
	conn, err := net.Dial("unix", path)
	if err != nil {
		return fmt.Errorf("connect to komorebi: %w", err)
	}
	defer conn.Close()

	data, err := ipc.Encode(ipc.Message{Op: op, Args: args})
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = conn.Write(data)
	return err
}

func fetchState() (string, error) {
	path, err := config.StateSocketPath()
	if err != nil {
		return "", err
	}
	conn, err := net.Dial("unix", path)
	if err != nil {
		return "", fmt.Errorf("connect to komorebic state socket: %w", err)
	}
	defer conn.Close()

	data, err := io.ReadAll(bufio.NewReader(conn))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func directionCommand(use string, op ipc.Op) *cobra.Command {
	return &cobra.Command{
		Use:  use + " <left|right|up|down>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(op, args)
		},
	}
}

func indexCommand(use string, op ipc.Op) *cobra.Command {
	return &cobra.Command{
		Use:  use + " <index>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(op, args)
		},
	}
}

func noArgCommand(use string, op ipc.Op) *cobra.Command {
	return &cobra.Command{
		Use: use,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(op, nil)
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:   "komorebic",
		Short: "command-line client for the komorebi window manager",
	}

	root.AddCommand(
		directionCommand("focus", ipc.OpFocusWindow),
		directionCommand("move", ipc.OpMoveWindow),
		directionCommand("stack", ipc.OpStackWindow),
		directionCommand("cycle-stack", ipc.OpCycleStack),

		noArgCommand("unstack", ipc.OpUnstackWindow),
		noArgCommand("promote", ipc.OpPromoteContainer),

		indexCommand("focus-monitor", ipc.OpFocusMonitor),
		indexCommand("focus-workspace", ipc.OpFocusWorkspace),
		indexCommand("move-to-monitor", ipc.OpMoveToMonitor),
		indexCommand("move-to-workspace", ipc.OpMoveToWorkspace),

		noArgCommand("new-workspace", ipc.OpNewWorkspace),

		noArgCommand("toggle-pause", ipc.OpTogglePause),
		noArgCommand("toggle-tiling", ipc.OpToggleTiling),
		noArgCommand("toggle-float", ipc.OpToggleFloat),
		noArgCommand("toggle-monocle", ipc.OpToggleMonocle),
		noArgCommand("toggle-maximize", ipc.OpToggleMaximize),

		noArgCommand("manage", ipc.OpManageFocused),
		noArgCommand("unmanage", ipc.OpUnmanageFocused),
		noArgCommand("restore-windows", ipc.OpRestoreWindows),

		&cobra.Command{
			Use:  "resize <left|right|up|down> <increase|decrease> [step]",
			Args: cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpResizeWindow, args)
			},
		},
		&cobra.Command{
			Use:  "change-layout <bsp|columns|rows|vertical_stack|horizontal_stack|ultrawide_vertical_stack>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpChangeLayout, args)
			},
		},
		&cobra.Command{
			Use:  "workspace-layout <bsp|columns|rows|vertical_stack|horizontal_stack|ultrawide_vertical_stack>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpWorkspaceLayout, args)
			},
		},
		&cobra.Command{
			Use:  "ensure-workspaces <monitor-index> <count>",
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpEnsureWorkspaces, args)
			},
		},
		&cobra.Command{
			Use:  "flip-layout <none|horizontal|vertical|both>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpFlipLayout, args)
			},
		},
		&cobra.Command{
			Use:  "adjust-container-padding <increase|decrease> <n>",
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpAdjustContainerPad, args)
			},
		},
		&cobra.Command{
			Use:  "adjust-workspace-padding <increase|decrease> <n>",
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpAdjustWorkspacePad, args)
			},
		},
		&cobra.Command{
			Use:  "float-rule <identifier>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpFloatRule, args)
			},
		},
		&cobra.Command{
			Use:  "manage-rule <identifier>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpManageRule, args)
			},
		},
		&cobra.Command{
			Use:  "workspace-rule <identifier> <monitor-index> <workspace-index>",
			Args: cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpWorkspaceRule, args)
			},
		},
		&cobra.Command{
			Use:  "identify-tray-application <exe> <class>",
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpIdentifyTray, args)
			},
		},
		&cobra.Command{
			Use:  "focus-follows-mouse [true|false]",
			Args: cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpFocusFollowsMouse, args)
			},
		},
		&cobra.Command{
			Use:  "workspace-name <name>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpWorkspaceName, args)
			},
		},
		&cobra.Command{
			Use:  "workspace-tiling <true|false>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpWorkspaceTiling, args)
			},
		},
		&cobra.Command{
			Use:  "container-padding <n>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpContainerPadding, args)
			},
		},
		&cobra.Command{
			Use:  "workspace-padding <n>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpWorkspacePadding, args)
			},
		},
		noArgCommand("reload-configuration", ipc.OpReloadConfiguration),
		noArgCommand("watch-configuration", ipc.OpWatchConfiguration),
		&cobra.Command{
			Use: "stop",
			RunE: func(cmd *cobra.Command, args []string) error {
				return send(ipc.OpStop, nil)
			},
		},
		&cobra.Command{
			Use: "state",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := send(ipc.OpState, nil); err != nil {
					return err
				}
				out, err := fetchState()
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
