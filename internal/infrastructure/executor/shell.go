package executor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/vibeos/vibesh/internal/domain"
)

// RunShell executes a compound command line through the system shell,
// streaming output to the terminal. The caller bounds ctx; no extra timeout
// is layered on top. Used for assistant-translated commands, which chain
// several tools with &&.
func (e *Executor) RunShell(ctx context.Context, command string) domain.ExecutionResult {
	command = strings.TrimSpace(command)
	if command == "" {
		return domain.Fail("Nothing to execute")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	err := cmd.Run()
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return domain.Fail("Command timed out")
	case err == nil:
		return domain.OK("")
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.Fail("Command failed")
		}
		return domain.Fail(err.Error())
	}
}
