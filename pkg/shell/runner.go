package shell

import (
	"context"
	"io"
	"os"

	errUtils "github.com/pkgci/pkgci/errors"
	"github.com/pkgci/pkgci/pkg/ci"
	log "github.com/pkgci/pkgci/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// Runner executes a command and blocks until it exits.
type Runner interface {
	// Run returns the normalized exit code. The error is only set when the
	// command could not be started at all.
	Run(ctx context.Context, cmd Command) (int, error)
}

// ProcessRunner runs commands through the host shell: cmd /C on Windows, sh -c elsewhere.
type ProcessRunner struct {
	// OS selects how the raw process status is decoded.
	OS     ci.OS
	Stdout io.Writer
	Stderr io.Writer
}

// NewProcessRunner creates a ProcessRunner attached to the process stdio.
func NewProcessRunner(family ci.OS) *ProcessRunner {
	return &ProcessRunner{OS: family}
}

// Run implements Runner.
func (r *ProcessRunner) Run(ctx context.Context, c Command) (int, error) {
	line := c.Line()
	log.Info("Running system command", "command", line, "dir", c.Dir)

	cmd := newShellCmd(ctx, line)
	cmd.Dir = c.Dir
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = writerOr(r.Stdout, os.Stdout)
	cmd.Stderr = writerOr(r.Stderr, os.Stderr)

	err := cmd.Run()
	if cmd.ProcessState == nil {
		return -1, errUtils.Build(errUtils.ErrCommandStart).
			WithCause(err).
			WithContext("command", line).
			Err()
	}

	code := NormalizeExitCode(r.OS, rawStatus(cmd.ProcessState))
	log.Debug("Command finished", "command", line, "exit_code", code)
	return code, nil
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}

// NormalizeExitCode turns a raw process status into an exit code.
// Windows reports the exit code as is. Other families report a packed wait
// status: the exit code sits in bits 8-15 when the low 7 bits are zero
// (WIFEXITED/WEXITSTATUS). A process killed by a signal reports 128+signal.
func NormalizeExitCode(family ci.OS, raw int) int {
	if family == ci.Windows {
		return raw
	}
	sig := raw & 0x7f
	switch sig {
	case 0:
		return (raw >> 8) & 0xff
	case 0x7f:
		// Stopped: the stop signal is in the high byte.
		return 128 + ((raw >> 8) & 0xff)
	default:
		return 128 + sig
	}
}

// EncodeExitStatus packs an exit code the way waitpid reports a normal exit.
func EncodeExitStatus(code int) int {
	return (code & 0xff) << 8
}
