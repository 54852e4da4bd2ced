package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkgci/pkgci/cmd"
	errUtils "github.com/pkgci/pkgci/errors"
	log "github.com/pkgci/pkgci/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		cancel()
		cmd.Cleanup()
		// Exit with the POSIX exit code (128 + signal number).
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	code := run(ctx)
	cancel()
	errUtils.OsExit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context) int {
	defer cmd.Cleanup()

	if err := cmd.Execute(ctx); err != nil {
		// Safe to call when crash reporting is not configured.
		errUtils.CaptureError(err)

		config := errUtils.DefaultFormatterConfig()
		// Debug and Trace also print the error context and stack.
		config.Verbose = log.Default().IsVerbose()
		formatted := errUtils.Format(err, config)
		os.Stderr.WriteString(formatted + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return 0
}
