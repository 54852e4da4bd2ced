//go:build !windows

package shell

import (
	"context"
	"os"
	"os/exec"
	"syscall"
)

func newShellCmd(ctx context.Context, line string) *exec.Cmd {
	return exec.CommandContext(ctx, "sh", "-c", line)
}

// rawStatus returns the packed wait status.
func rawStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok {
		return int(ws)
	}
	return EncodeExitStatus(state.ExitCode())
}
