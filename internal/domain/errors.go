package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. A parse miss is not an error (it yields the unknown intent),
// so only execution, persistence and collaborator failures carry error kinds.

// ErrAssistantUnavailable marks the external AI CLI as missing or broken. The
// shell keeps running in degraded mode when it sees this.
var ErrAssistantUnavailable = errors.New("assistant unavailable")

// ExecutionError wraps a failed external command or handler operation. It is
// reported per call and never fatal to the REPL.
type ExecutionError struct {
	Intent Intent
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execute %s: %v", e.Intent, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// PersistenceError wraps a context/history read or write failure. Callers log
// it and fall back to defaults; it is never surfaced as a blocking error.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
