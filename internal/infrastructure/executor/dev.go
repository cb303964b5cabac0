package executor

import (
	"context"

	"github.com/vibeos/vibesh/internal/domain"
)

func (e *Executor) runTests(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	switch {
	case isNodeProject():
		return e.runner.runStreaming(ctx, "npm", "test")
	case hasFile("pytest.ini") || hasPath("tests"):
		return e.runner.runStreaming(ctx, "pytest")
	default:
		return domain.Fail("No test configuration found")
	}
}

func (e *Executor) buildProject(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	switch {
	case isNodeProject():
		return e.runner.runStreaming(ctx, "npm", "run", "build")
	case hasFile("Makefile"):
		return e.runner.runStreaming(ctx, "make")
	default:
		return domain.Fail("No build configuration found")
	}
}

func (e *Executor) startDevServer(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	switch {
	case isNodeProject():
		return e.runner.runStreaming(ctx, "npm", "start")
	case hasFile("manage.py"):
		return e.runner.runStreaming(ctx, "python", "manage.py", "runserver")
	default:
		return domain.Fail("No development server configuration found")
	}
}

func (e *Executor) createVenv(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	result := e.runner.run(ctx, "python", "-m", "venv", "venv")
	if result.Success {
		result.Output = "Created virtual environment in ./venv\n  Activate with: 'activate virtual environment'"
	}
	return result
}

// activateVenv cannot mutate the parent shell environment from a child
// process, so it prints instructions instead.
func (e *Executor) activateVenv(_ context.Context, _ domain.Params) domain.ExecutionResult {
	return domain.OK("To activate the virtual environment, run:\n  source venv/bin/activate")
}
