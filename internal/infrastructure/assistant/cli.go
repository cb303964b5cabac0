// Package assistant shells out to an external AI CLI to translate free text
// the pattern table could not classify into an executable command line.
package assistant

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/ports"
)

// CLIAssistant wraps one assistant binary (claude, claude-code, ...) found on
// disk. Detection runs once at construction; a missing binary degrades every
// Translate call to domain.ErrAssistantUnavailable instead of failing startup.
type CLIAssistant struct {
	binary  string
	timeout time.Duration
	retries int
	cache   *ResponseCache
	log     ports.Logger
}

// New resolves the assistant binary from the configured fixed paths, then
// PATH. cache may be nil to disable response caching.
func New(cfg domain.AssistantSettings, cache *ResponseCache, log ports.Logger) *CLIAssistant {
	return &CLIAssistant{
		binary:  resolveBinary(cfg),
		timeout: clampTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
		retries: clampRetries(cfg.MaxRetries),
		cache:   cache,
		log:     log,
	}
}

// Available implements ports.Assistant.
func (a *CLIAssistant) Available() bool {
	return a.binary != ""
}

// Binary returns the resolved assistant path, empty when none was found.
func (a *CLIAssistant) Binary() string {
	return a.binary
}

// Translate asks the assistant to turn input into a single compound shell
// command. The prompt embeds workdir so relative paths resolve correctly.
func (a *CLIAssistant) Translate(ctx context.Context, input string, workdir string) (string, error) {
	if a.binary == "" {
		return "", fmt.Errorf("%w: no assistant CLI found on this system, install one or disable the assistant in config", domain.ErrAssistantUnavailable)
	}

	input = SanitizeInput(input)
	if input == "" {
		return "", fmt.Errorf("%w: empty request after sanitization", domain.ErrAssistantUnavailable)
	}

	key := CacheKey(input, workdir)
	if a.cache != nil {
		if cmd, ok := a.cache.Get(key); ok {
			a.debug("assistant cache hit", map[string]interface{}{"key": key})
			return cmd, nil
		}
	}

	prompt := buildPrompt(input, workdir)

	var lastErr error
	for attempt := 0; attempt <= a.retries; attempt++ {
		raw, err := a.invoke(ctx, prompt)
		if err != nil {
			lastErr = err
			a.debug("assistant attempt failed", map[string]interface{}{
				"attempt": attempt + 1,
				"error":   err.Error(),
			})
			if ctx.Err() != nil {
				break
			}
			continue
		}
		command := ScrapeCommand(raw)
		if command == "" {
			lastErr = fmt.Errorf("assistant returned no executable command")
			continue
		}
		if a.cache != nil {
			if err := a.cache.Set(key, command); err != nil {
				a.debug("assistant cache write failed", map[string]interface{}{"error": err.Error()})
			}
		}
		return command, nil
	}
	return "", fmt.Errorf("%w: %v", domain.ErrAssistantUnavailable, lastErr)
}

func (a *CLIAssistant) invoke(ctx context.Context, prompt string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, a.binary, "--print", prompt)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("assistant timed out after %s", a.timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("assistant failed: %s", msg)
	}
	return stdout.String(), nil
}

// buildPrompt frames the request so the assistant emits commands only. The
// working directory is part of the prompt; the assistant process itself runs
// wherever the shell happens to be.
func buildPrompt(input string, workdir string) string {
	var b strings.Builder
	b.WriteString("You are a command translator for a Linux shell.\n")
	b.WriteString("Current working directory: ")
	b.WriteString(workdir)
	b.WriteString("\n")
	b.WriteString("Translate the following request into shell commands.\n")
	b.WriteString("Rules: output only the commands, one per line, no explanations, no markdown.\n")
	b.WriteString("Request: ")
	b.WriteString(input)
	return b.String()
}

// ScrapeCommand extracts executable lines from assistant stdout and joins
// them into one compound command. Blank lines, comments and lines that read
// like prose are dropped; an empty result means the reply was unusable.
func ScrapeCommand(raw string) string {
	var commands []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "```") {
			continue
		}
		if looksLikeProse(line) {
			continue
		}
		commands = append(commands, line)
	}
	return strings.Join(commands, " && ")
}

// looksLikeProse flags explanatory sentences the assistant sometimes mixes
// into its output despite the prompt rules.
func looksLikeProse(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range []string{"here", "this", "will", "should", "would"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// resolveBinary checks the configured fixed paths first so containerized
// installs win over whatever PATH resolves to, then falls back to LookPath.
func resolveBinary(cfg domain.AssistantSettings) string {
	for _, candidate := range cfg.ExtraPaths {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0o111 != 0 {
			return candidate
		}
	}
	if cfg.Command == "" {
		return ""
	}
	if path, err := exec.LookPath(cfg.Command); err == nil {
		return path
	}
	return ""
}

func clampTimeout(d time.Duration) time.Duration {
	switch {
	case d <= 0:
		return domain.DefaultAssistantTimeout
	case d < domain.MinAssistantTimeout:
		return domain.MinAssistantTimeout
	case d > domain.MaxAssistantTimeout:
		return domain.MaxAssistantTimeout
	default:
		return d
	}
}

func clampRetries(n int) int {
	switch {
	case n < 0:
		return 0
	case n > domain.MaxAssistantRetries:
		return domain.MaxAssistantRetries
	default:
		return n
	}
}

func (a *CLIAssistant) debug(msg string, fields map[string]interface{}) {
	if a.log != nil {
		a.log.Debug(msg, fields)
	}
}

var _ ports.Assistant = (*CLIAssistant)(nil)
