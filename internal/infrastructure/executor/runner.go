package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/vibeos/vibesh/internal/domain"
)

// runner spawns external OS tools with a bounded timeout and converts every
// failure mode (non-zero exit, timeout, OS error) into a failed
// ExecutionResult. No retries.
type runner struct {
	timeout time.Duration
}

func newRunner(timeout time.Duration) *runner {
	if timeout <= 0 {
		timeout = domain.DefaultExecTimeout
	}
	return &runner{timeout: timeout}
}

// run executes name with args, capturing stdout/stderr.
func (r *runner) run(ctx context.Context, name string, args ...string) domain.ExecutionResult {
	return r.exec(ctx, true, name, args...)
}

// runStreaming executes name with args, inheriting the terminal so long
// operations (installs, test runs, dev servers) show live output.
func (r *runner) runStreaming(ctx context.Context, name string, args ...string) domain.ExecutionResult {
	return r.exec(ctx, false, name, args...)
}

func (r *runner) exec(ctx context.Context, capture bool, name string, args ...string) domain.ExecutionResult {
	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, name, args...)
	var stdout, stderr bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
	}

	err := cmd.Run()
	switch {
	case errors.Is(cctx.Err(), context.DeadlineExceeded):
		return domain.Fail("Command timed out")
	case err == nil:
		if capture {
			return domain.OK(stdout.String())
		}
		return domain.OK("")
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if capture && stderr.Len() > 0 {
				return domain.Fail(stderr.String())
			}
			return domain.Fail("Command failed")
		}
		return domain.Fail(err.Error())
	}
}
