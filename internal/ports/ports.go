// Package ports defines the interfaces between the application core and the
// infrastructure adapters.
//
// Following the Ports and Adapters pattern, the shell service depends only on
// these contracts; concrete implementations (regex parser, process executor,
// JSON context store, external assistant CLI) live in the infrastructure layer.
package ports

import (
	"context"

	"github.com/vibeos/vibesh/internal/domain"
)

// IntentParser classifies one line of free text into an intent and its
// parameters. Implementations must be pure functions of the input text.
type IntentParser interface {
	Parse(text string) (domain.Intent, domain.Params)
	Suggestions(partial string) []string
}

// CommandExecutor dispatches a parsed intent to its handler. Handler failures
// are reported inside the ExecutionResult, never as a panic; the returned
// error is reserved for dispatch-level problems.
type CommandExecutor interface {
	Execute(ctx context.Context, intent domain.Intent, params domain.Params) domain.ExecutionResult
}

// ProjectDetector probes a directory for toolchain markers. Read-only.
type ProjectDetector interface {
	Detect(dir string) domain.ProjectContext
}

// ContextStore owns the persisted shell state and bounded command history.
type ContextStore interface {
	State() domain.PersistedState
	RecordCommand(text string, intent domain.Intent, success bool) error
	RefreshProject() domain.ProjectContext
	Save() error
}

// HistoryArchive mirrors recorded commands into a searchable store backing
// the history subcommand.
type HistoryArchive interface {
	Save(record domain.CommandRecord) error
	Records(limit int, search string) ([]domain.CommandRecord, error)
	Clear() error
}

// Assistant is the external AI CLI collaborator that translates free text
// into a compound shell command. Available reports whether the binary was
// found; Translate returns domain.ErrAssistantUnavailable when it is not.
type Assistant interface {
	Available() bool
	Translate(ctx context.Context, input string, workdir string) (string, error)
}

// ConfigProvider loads the tool configuration from persistent storage.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Logger is the structured logging abstraction used across layers.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
