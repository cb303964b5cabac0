package executor

import (
	"context"
	"strings"

	"github.com/vibeos/vibesh/internal/domain"
)

func (e *Executor) systemInfo(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	result := e.runner.run(ctx, "uname", "-a")
	if !result.Success {
		return result
	}

	var b strings.Builder
	b.WriteString("System Information:\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	b.WriteString(result.Output + "\n")

	if cpu := e.runner.run(ctx, "lscpu"); cpu.Success {
		lines := strings.Split(cpu.Output, "\n")
		if len(lines) > 5 {
			lines = lines[:5]
		}
		b.WriteString("\nCPU:\n" + strings.Join(lines, "\n") + "\n")
	}
	if mem := e.runner.run(ctx, "free", "-h"); mem.Success {
		b.WriteString("\nMemory:\n" + mem.Output)
	}
	return domain.OK(b.String())
}

func (e *Executor) diskUsage(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	return e.runner.run(ctx, "df", "-h")
}

func (e *Executor) listProcesses(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	result := e.runner.run(ctx, "ps", "aux", "--sort=-pcpu")
	if result.Success {
		lines := strings.Split(result.Output, "\n")
		if len(lines) > 20 {
			lines = lines[:20]
		}
		result.Output = strings.Join(lines, "\n")
	}
	return result
}
