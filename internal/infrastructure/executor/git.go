package executor

import (
	"context"

	"github.com/vibeos/vibesh/internal/domain"
)

func (e *Executor) gitStatus(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	return e.runner.run(ctx, "git", "status")
}

// gitCommit stages everything first, matching the "save my changes" mental
// model of the natural-language surface.
func (e *Executor) gitCommit(ctx context.Context, params domain.Params) domain.ExecutionResult {
	message := "Update"
	if p, ok := params.(domain.GitCommitParams); ok && p.Message != "" {
		message = p.Message
	}
	if add := e.runner.run(ctx, "git", "add", "."); !add.Success {
		return add
	}
	return e.runner.run(ctx, "git", "commit", "-m", message)
}

func (e *Executor) gitPush(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	return e.runner.run(ctx, "git", "push")
}

func (e *Executor) gitPull(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	return e.runner.run(ctx, "git", "pull")
}

func (e *Executor) gitInit(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	result := e.runner.run(ctx, "git", "init")
	if result.Success {
		result.Output = "Initialized git repository\n" + result.Output
	}
	return result
}
