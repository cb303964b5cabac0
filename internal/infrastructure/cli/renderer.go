package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	shellapp "github.com/vibeos/vibesh/internal/application/shell"
)

// Renderer prints shell output with color when the terminal supports it.
type Renderer struct {
	success *color.Color
	failure *color.Color
	accent  *color.Color
	muted   *color.Color
}

// NewRenderer builds a renderer. Color is disabled when the config says so
// or stdout is not a terminal.
func NewRenderer(enabled bool) *Renderer {
	if !enabled || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return &Renderer{
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		accent:  color.New(color.FgCyan).Add(color.Bold),
		muted:   color.New(color.FgHiBlack),
	}
}

// Banner prints the welcome header, with a degraded-mode notice when the
// assistant binary is missing.
func (r *Renderer) Banner(version string, assistantAvailable bool) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	r.accent.Printf("    VibeOS Natural Language Shell v%s\n", version)
	fmt.Println(strings.Repeat("=", 60))

	if assistantAvailable {
		fmt.Println("\nAI assistant active. Speak naturally:")
		fmt.Println("  'set up a React project with authentication'")
		fmt.Println("  'install everything I need for machine learning'")
		fmt.Println("  'fix the Python errors in my project'")
	} else {
		r.failure.Println("\nAI assistant not found. Built-in commands only.")
		fmt.Println("Install an assistant CLI and restart to unlock free-form requests.")
	}

	fmt.Println("\nType 'help' for examples or 'exit' to quit.")
}

// Result prints the outcome of one handled line.
func (r *Renderer) Result(res shellapp.LineResult) {
	if res.ViaAssistant {
		r.muted.Printf("[assistant] %s\n", res.AssistantCommand)
	}
	if res.Result.Success {
		if out := strings.TrimRight(res.Result.Output, "\n"); out != "" {
			fmt.Println(out)
		}
		return
	}
	r.failure.Printf("✗ %s\n", res.Result.Error)
	if res.Intent.IsSuggestion() {
		fmt.Println("  Try 'help' to see what I understand.")
	}
}

// Suggestions prints project-aware next steps, if any.
func (r *Renderer) Suggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Println("\nSuggestions for this directory:")
	for _, s := range suggestions {
		r.muted.Printf("  - %s\n", s)
	}
}

// Warn prints a non-fatal notice.
func (r *Renderer) Warn(msg string) {
	r.failure.Println(msg)
}

// Goodbye prints the exit message.
func (r *Renderer) Goodbye() {
	r.success.Println("Goodbye! Stay in the flow.")
}

// Help prints the command reference grouped by area.
func (r *Renderer) Help() {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	r.accent.Println("VibeOS Natural Language Commands")
	fmt.Println(strings.Repeat("=", 60))

	sections := []struct {
		title    string
		examples []string
	}{
		{"Project Management", []string{
			"create a new [python/node/react/rust] project called [name]",
			"initialize git repository",
			"create virtual environment",
		}},
		{"Package Management", []string{
			"install [package name]",
			"update system packages",
			"search for [package]",
		}},
		{"Development", []string{
			"run tests",
			"build the project",
			"start development server",
		}},
		{"System", []string{
			"show system information",
			"check disk usage",
			"list running processes",
		}},
		{"Git", []string{
			"git status",
			"commit changes with message [message]",
			"push to remote",
		}},
		{"Navigation", []string{
			"go to [directory]",
			"show current directory",
			"list files",
		}},
	}
	for _, s := range sections {
		fmt.Printf("\n%s:\n", s.title)
		for _, ex := range s.examples {
			fmt.Printf("  - %s\n", ex)
		}
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
}
