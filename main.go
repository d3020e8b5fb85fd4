package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/chronometer/cmd"
	errUtils "github.com/cloudposse/chronometer/errors"
	log "github.com/cloudposse/chronometer/pkg/logger"
)

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		cmd.Cleanup()
		// Exit with the POSIX code for the signal (128 + signal number).
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.Exit(128 + int(s))
		}
		errUtils.Exit(errUtils.ExitCodeInterrupted)
	}()

	if err := run(); err != nil {
		log.Debug("Exiting with exit code", "code", errUtils.GetExitCode(err))
		errUtils.PrintAndExit(err)
	}
	errUtils.Exit(errUtils.ExitCodeSuccess)
}

// run executes the application, so deferred cleanup runs before the process exits.
func run() error {
	defer cmd.Cleanup()
	return cmd.Execute()
}
