package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/corey/lexis/internal/adapters/fsnotify"
	"github.com/corey/lexis/internal/log"
)

// watchLoop re-runs the extraction after each change to the source file,
// printing one envelope per run. It blocks until interrupted.
func watchLoop(sourceFile string, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return coded(CodeExecutionError, "%s", err.Error())
	}
	defer func() { _ = watcher.Stop() }()

	logger := log.NewLogger("watch")
	if err := watcher.Watch(sourceFile, func() {
		if runErr := run(); runErr != nil {
			if ce, ok := runErr.(*CodedError); ok {
				writeError(os.Stderr, ce)
			}
		}
	}); err != nil {
		return coded(CodeExecutionError, "%s", err.Error())
	}
	logger.WithField("file", sourceFile).Debug("watching")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}
