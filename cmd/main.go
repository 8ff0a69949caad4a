// Package main provides the CLI entry point for browsermgr.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/flock"

	"browsermgr/internal/cli"
	"browsermgr/internal/config"
	"browsermgr/internal/ui"
)

// Exit codes.
const (
	ExitSuccess = 0 // Normal exit, including failed operations and interrupts
	ExitFailure = 1 // Startup could not complete
)

func main() {
	os.Exit(run())
}

func run() int {
	// Only one instance may drive the package managers at a time.
	lock := flock.New(config.LockPath())

	locked, err := lock.TryLock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to acquire process lock: %v\n", err)
		return ExitFailure
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another browsermgr instance is already running\n")
		return ExitFailure
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to release process lock: %v\n", unlockErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = cli.Execute(ctx)

	switch {
	case ctx.Err() != nil:
		fmt.Println()
		ui.InfoMsg("Interrupted. Goodbye!")
		return ExitSuccess
	case errors.Is(err, cli.ErrAborted):
		ui.MutedMsg("Aborted")
		return ExitSuccess
	case errors.Is(err, cli.ErrBootstrap):
		ui.ErrorMsg("%v", err)
		return ExitFailure
	case err != nil:
		ui.ErrorMsg("%v", err)
	}

	return ExitSuccess
}
