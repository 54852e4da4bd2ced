//go:build windows

package shell

import (
	"context"
	"os"
	"os/exec"
	"syscall"
)

func newShellCmd(ctx context.Context, line string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "cmd")
	// CmdLine replaces the whole command line, program name included.
	// cmd.exe parses the rest itself, so the line goes through untouched.
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: `cmd /S /C "` + line + `"`}
	return cmd
}

// rawStatus returns the process exit code.
func rawStatus(state *os.ProcessState) int {
	return state.ExitCode()
}
