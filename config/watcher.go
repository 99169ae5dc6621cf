package config

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// ScriptRunner executes the user's startup script. The interpreter itself
// is an external collaborator; komorebi-go only knows how to invoke it.
type ScriptRunner interface {
	Run(path string) error
}

// Watcher watches the startup-script paths and re-runs them on debounced
// change notifications. Each run starts on its own goroutine; runs are not
// serialized against each other.
type Watcher struct {
	fsw    *fsnotify.Watcher
	log    *logrus.Logger
	runner ScriptRunner
	debounce time.Duration

	stop chan struct{}
}

// NewWatcher creates a Watcher over paths (typically komorebi.ahk and
// komorebi.ahk2; only paths that exist are added).
func NewWatcher(log *logrus.Logger, runner ScriptRunner, paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	added := 0
	for _, p := range paths {
		if err := fsw.Add(p); err == nil {
			added++
		}
	}
	if added == 0 {
		log.Debug("config watcher: no script files present, watching none")
	}

	return &Watcher{
		fsw:      fsw,
		log:      log,
		runner:   runner,
		debounce: 200 * time.Millisecond,
		stop:     make(chan struct{}),
	}, nil
}

// Start runs the watch loop in its own goroutine. Call Stop to end it.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop ends the watch loop and releases the underlying fsnotify watcher.
func (w *Watcher) Stop() error {
	close(w.stop)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var pending string

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = ev.Name
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				w.runOnce(pending)
			})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Error("config watcher: fsnotify error")

		case <-w.stop:
			return
		}
	}
}

// runOnce spawns a one-shot goroutine to re-run the script, matching the
// reducer thread's rule that OS/script calls never block the watch loop.
func (w *Watcher) runOnce(path string) {
	go func() {
		w.log.WithField("path", path).Info("config watcher: reloading script")
		if err := w.runner.Run(path); err != nil {
			w.log.WithError(err).WithField("path", path).Error("config watcher: script run failed")
		}
	}()
}
