// Package executor maps parsed intents to handlers that shell out to OS
// tools or perform direct filesystem operations.
package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/ports"
)

type handler func(ctx context.Context, params domain.Params) domain.ExecutionResult

// Executor dispatches intents through a static handler table. Side effects
// are real and irreversible (file writes, git commits, package installs); the
// caller presents errors, the executor never retries.
type Executor struct {
	runner   *runner
	log      ports.Logger
	handlers map[domain.Intent]handler
}

// New builds the executor. A non-positive timeout falls back to the 30s
// default.
func New(timeout time.Duration, log ports.Logger) *Executor {
	e := &Executor{
		runner: newRunner(timeout),
		log:    log,
	}
	e.handlers = map[domain.Intent]handler{
		domain.IntentCreateProject:   e.createProject,
		domain.IntentInstallPackage:  e.installPackage,
		domain.IntentSearchPackage:   e.searchPackage,
		domain.IntentGitStatus:       e.gitStatus,
		domain.IntentGitCommit:       e.gitCommit,
		domain.IntentGitPush:         e.gitPush,
		domain.IntentGitPull:         e.gitPull,
		domain.IntentGitInit:         e.gitInit,
		domain.IntentRunTests:        e.runTests,
		domain.IntentBuildProject:    e.buildProject,
		domain.IntentStartDevServer:  e.startDevServer,
		domain.IntentSystemInfo:      e.systemInfo,
		domain.IntentDiskUsage:       e.diskUsage,
		domain.IntentListProcesses:   e.listProcesses,
		domain.IntentChangeDirectory: e.changeDirectory,
		domain.IntentListFiles:       e.listFiles,
		domain.IntentShowPwd:         e.showPwd,
		domain.IntentCreateVenv:      e.createVenv,
		domain.IntentActivateVenv:    e.activateVenv,
		domain.IntentUpdateSystem:    e.updateSystem,
	}
	return e
}

// Execute implements ports.CommandExecutor.
func (e *Executor) Execute(ctx context.Context, intent domain.Intent, params domain.Params) domain.ExecutionResult {
	h, ok := e.handlers[intent]
	if !ok {
		return domain.Fail(fmt.Sprintf("Unknown intent: %s", intent))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	result := h(ctx, params)
	if !result.Success && e.log != nil {
		err := &domain.ExecutionError{Intent: intent, Err: errors.New(result.Error)}
		e.log.Debug("handler failed", map[string]interface{}{"error": err.Error()})
	}
	return result
}

var _ ports.CommandExecutor = (*Executor)(nil)
