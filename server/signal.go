package server

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/komorebi-go/komorebi/wm"
)

// RunSignalThread blocks until an interrupt is received, then persists the
// hidden-handle registry to hwndPersistPath, restores every window in it,
// releases the single-instance lock, and exits the process with status 130.
func RunSignalThread(m *wm.WindowManager, log *logrus.Logger, hwndPersistPath, pidFilePath string) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	log.Info("signal: interrupt received, restoring windows")
	if err := PersistHiddenWindows(hwndPersistPath, m.Hidden); err != nil {
		log.WithError(err).Error("signal: failed to persist hidden window list")
	}
	m.Hidden.Restore(m.OS)

	ReleaseSingleInstance(pidFilePath)

	os.Exit(130)
}
