package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/vibeos/vibesh/internal/app"
)

// runREPL is the interactive loop: read a line, hand it to the shell service,
// render the outcome. Ctrl-C cancels the line; EOF or an exit word quits.
func runREPL(ctx context.Context, container *app.Container, version string) error {
	render := NewRenderer(container.Config.Shell.Color)
	render.Banner(version, container.Assistant.Available())

	container.Store.ProbeEnvironment()
	container.Store.RefreshProject()
	render.Suggestions(container.Store.Suggestions())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(),
		HistoryFile:     container.Config.Shell.HistoryFile,
		AutoComplete:    &replCompleter{service: container.ShellService},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("initialize readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			render.Warn("\nUse 'exit' to quit.")
			continue
		}
		if err == io.EOF {
			render.Goodbye()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit", "quit", "bye":
			render.Goodbye()
			return nil
		case "help", "?":
			render.Help()
			rl.SetPrompt(prompt())
			continue
		}

		result, err := container.ShellService.HandleLine(ctx, line)
		if err != nil {
			render.Warn(err.Error())
			continue
		}
		render.Result(result)
		rl.SaveHistory(line)

		// The line may have chdir'd or created a git branch.
		rl.SetPrompt(prompt())
	}
}

// prompt renders "[~/path (branch)]\n→ " reflecting the live working
// directory and git branch.
func prompt() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "?"
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(wd, home) {
		wd = "~" + wd[len(home):]
	}

	git := ""
	if branch := quickBranch(); branch != "" {
		git = fmt.Sprintf(" (%s)", branch)
	}
	return fmt.Sprintf("\n[%s%s]\n→ ", wd, git)
}

func quickBranch() string {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
