// Command komorebi is the window-manager daemon: it wires together the
// event thread, the command and state sockets, the config watcher, and
// the interrupt-signal thread described by the core reducer in package
// wm.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/komorebi-go/komorebi/config"
	"github.com/komorebi-go/komorebi/osapi"
	"github.com/komorebi-go/komorebi/server"
	"github.com/komorebi-go/komorebi/wm"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	pidPath, err := config.PidFilePath()
	if err != nil {
		log.WithError(err).Fatal("resolve pid file path")
	}
	if err := server.AcquireSingleInstance(pidPath); err != nil {
		log.WithError(err).Error("another instance is already running")
		os.Exit(1)
	}
	defer server.ReleaseSingleInstance(pidPath)

	cfg, err := config.Load(log)
	if err != nil {
		log.WithError(err).Fatal("load configuration")
	}

	os_ := osapi.New()
	manager := wm.NewWindowManager(os_)
	cfg.ApplyTo(manager.Identifiers, manager.WorkspaceRules)
	if cfg.InvisibleBorder != nil {
		wm.InvisibleBorder = *cfg.InvisibleBorder
	}

	if err := manager.Init(); err != nil {
		log.WithError(err).Fatal("initialize monitors")
	}

	commandSockPath, err := config.CommandSocketPath()
	if err != nil {
		log.WithError(err).Fatal("resolve command socket path")
	}
	stateSockPath, err := config.StateSocketPath()
	if err != nil {
		log.WithError(err).Fatal("resolve state socket path")
	}
	hwndPath, err := config.HwndPersistPath()
	if err != nil {
		log.WithError(err).Fatal("resolve hwnd persist path")
	}

	stopCh := make(chan struct{})
	cmdServer := server.NewCommandServer(commandSockPath, manager, log, func() { close(stopCh) })
	if err := cmdServer.Start(); err != nil {
		log.WithError(err).Fatal("start command server")
	}
	defer cmdServer.Stop()

	stateServer := server.NewStateServer(stateSockPath, manager, log)
	if err := stateServer.Start(); err != nil {
		log.WithError(err).Fatal("start state server")
	}
	defer stateServer.Stop()

	scriptPaths, err := config.ScriptPaths()
	if err != nil {
		log.WithError(err).Fatal("resolve script paths")
	}
	watcher, err := config.NewWatcher(log, noopScriptRunner{}, scriptPaths)
	if err != nil {
		log.WithError(err).Fatal("start config watcher")
	}
	watcher.Start()
	defer watcher.Stop()

	go server.RunSignalThread(manager, log, hwndPath, pidPath)

	rawEvents, stopEvents := os_.WatchEvents()
	go runEventReducer(manager, log, rawEvents)
	defer stopEvents()

	log.Info("komorebi started")
	<-stopCh
	log.Info("komorebi stopping")
}

// noopScriptRunner is the default script runner until a real interpreter
// is wired in; running the user's configuration script is an external
// collaborator's job.
type noopScriptRunner struct{}

func (noopScriptRunner) Run(path string) error { return nil }

// runEventReducer is the event reducer thread: it drains raw OS
// notifications, translates each into the core's own event shape, and
// feeds it through the classify-and-mutate entrypoint. A single event
// failing to apply must never stop the loop.
func runEventReducer(manager *wm.WindowManager, log *logrus.Logger, raw <-chan osapi.Event) {
	for ev := range raw {
		translated := wm.EventFromRaw(ev)
		if err := manager.HandleEvent(translated); err != nil {
			log.WithError(err).WithField("event", translated.Kind).Warn("event reducer: handle event")
		}
	}
}
