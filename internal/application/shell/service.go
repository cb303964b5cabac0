// Package shell orchestrates one REPL line end-to-end: parse, dispatch,
// optionally delegate to the assistant, record and refresh project context.
package shell

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/ports"
)

// assistantExecTimeout bounds the compound command the assistant produced.
// It is longer than the per-handler timeout because delegated requests tend
// to chain several tools.
const assistantExecTimeout = 60 * time.Second

// Service orchestrates the line lifecycle end-to-end.
type Service struct {
	Parser    ports.IntentParser
	Executor  ports.CommandExecutor
	Store     ports.ContextStore
	Assistant ports.Assistant
	Runner    ShellRunner
	Logger    ports.Logger

	AssistantEnabled bool
}

// ShellRunner executes a raw compound command through the system shell.
// It exists as a seam so tests can intercept assistant-produced commands.
type ShellRunner interface {
	RunShell(ctx context.Context, command string) domain.ExecutionResult
}

// LineResult reports how one input line was handled.
type LineResult struct {
	Intent           domain.Intent
	Result           domain.ExecutionResult
	ViaAssistant     bool
	AssistantCommand string
}

// HandleLine processes a single line of user input.
func (s *Service) HandleLine(ctx context.Context, line string) (LineResult, error) {
	if s.Parser == nil || s.Executor == nil || s.Store == nil {
		return LineResult{}, errors.New("shell.Service dependencies not satisfied")
	}

	intent, params := s.Parser.Parse(line)

	if intent.IsSuggestion() && s.shouldDelegate() {
		if res, ok := s.delegate(ctx, line, intent); ok {
			return res, nil
		}
	}

	result := s.Executor.Execute(ctx, intent, params)
	s.record(line, intent, result.Success)

	if result.Success && changesProject(intent) {
		s.Store.RefreshProject()
	}

	return LineResult{Intent: intent, Result: result}, nil
}

// delegate forwards unclassified input to the assistant and runs whatever it
// translates. A translation failure falls back to the normal handler path so
// the user still sees the suggestion output.
func (s *Service) delegate(ctx context.Context, line string, intent domain.Intent) (LineResult, bool) {
	wd := currentDir()
	command, err := s.Assistant.Translate(ctx, line, wd)
	if err != nil {
		if !errors.Is(err, domain.ErrAssistantUnavailable) {
			s.warn("assistant translation failed", err)
		}
		return LineResult{}, false
	}

	runCtx, cancel := context.WithTimeout(ctx, assistantExecTimeout)
	defer cancel()
	result := s.Runner.RunShell(runCtx, command)
	s.record(line, intent, result.Success)
	if result.Success {
		s.Store.RefreshProject()
	}

	return LineResult{
		Intent:           intent,
		Result:           result,
		ViaAssistant:     true,
		AssistantCommand: command,
	}, true
}

// Suggestions proposes completions for a partial line.
func (s *Service) Suggestions(partial string) []string {
	if s.Parser == nil {
		return nil
	}
	return s.Parser.Suggestions(partial)
}

func (s *Service) shouldDelegate() bool {
	return s.AssistantEnabled && s.Assistant != nil && s.Runner != nil && s.Assistant.Available()
}

func (s *Service) record(line string, intent domain.Intent, success bool) {
	if err := s.Store.RecordCommand(line, intent, success); err != nil {
		s.warn("could not record command", err)
	}
}

func (s *Service) warn(msg string, err error) {
	if s.Logger != nil {
		s.Logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}

func currentDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// changesProject lists intents whose success can alter the detected project.
func changesProject(intent domain.Intent) bool {
	switch intent {
	case domain.IntentCreateProject, domain.IntentChangeDirectory, domain.IntentGitInit, domain.IntentCreateVenv:
		return true
	}
	return false
}
