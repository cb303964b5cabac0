package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vibeos/vibesh/internal/app"
	"github.com/vibeos/vibesh/internal/domain"
)

// assistantOption is one entry in the selection menu.
type assistantOption struct {
	key         string
	name        string
	command     string
	description string
	available   bool
}

func menuOptions() []assistantOption {
	return []assistantOption{
		{
			key:         "1",
			name:        "Claude Code",
			command:     "claude-code",
			description: "Anthropic's official CLI for Claude",
			available:   true,
		},
		{
			key:         "2",
			name:        "Gemini CLI",
			description: "Google's Gemini AI assistant - Coming Soon",
		},
		{
			key:         "3",
			name:        "Codex",
			description: "OpenAI Codex powered assistant - Coming Soon",
		},
	}
}

func newSelectCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "Choose which AI assistant backs the shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelector(container)
		},
	}
}

// runSelector shows the menu, honoring a saved auto-launch preference with a
// short interrupt window first.
func runSelector(container *app.Container) error {
	choice := container.Choices.Load()
	if choice.AutoLaunch && choice.SelectedAssistant != "" && container.Assistant.Available() {
		fmt.Printf("\nAuto-launching %s...\n", choice.SelectedAssistant)
		fmt.Println("(Press Ctrl+C within 3 seconds to show the menu instead)")
		if waitOrInterrupt(3 * time.Second) {
			return launchAssistant(container)
		}
		fmt.Println("\nShowing selection menu...")
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		printMenu(container)
		fmt.Print("\nSelect an option (1-4, 0 to exit): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nExiting...")
			return nil
		}

		switch strings.TrimSpace(input) {
		case "0":
			fmt.Println("\nExiting...")
			return nil
		case "1":
			if !container.Assistant.Available() {
				fmt.Println("\nNo assistant CLI found on this system.")
				fmt.Println("Install it first, e.g.: npm install -g @anthropic-ai/claude-code")
				continue
			}
			if err := container.Choices.Save(domain.AssistantChoice{
				SelectedAssistant: "claude-code",
				AutoLaunch:        true,
				UseAssistant:      true,
			}); err != nil {
				return err
			}
			return launchAssistant(container)
		case "2", "3":
			fmt.Println("\nComing soon! Please select another option for now.")
		case "4":
			fmt.Println("\nContinuing with the natural language shell...")
			return container.Choices.Save(domain.AssistantChoice{
				SelectedAssistant: "vibesh",
				AutoLaunch:        false,
				UseAssistant:      false,
			})
		default:
			fmt.Println("\nInvalid option. Please try again.")
		}
	}
}

func printMenu(container *app.Container) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("    VibeOS AI Assistant Selection")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nChoose your AI assistant:")
	fmt.Println()

	for _, opt := range menuOptions() {
		installed := ""
		if opt.available && container.Assistant.Available() {
			installed = " [Installed]"
		}
		fmt.Printf("  %s. %s%s\n", opt.key, opt.name, installed)
		fmt.Printf("     %s\n\n", opt.description)
	}
	fmt.Println("  4. Continue without AI assistant (use vibesh only)")
	fmt.Println()
	fmt.Println("  0. Exit")
	fmt.Println("\n" + strings.Repeat("=", 60))
}

// waitOrInterrupt sleeps for d, returning false if Ctrl+C arrived first.
func waitOrInterrupt(d time.Duration) bool {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	select {
	case <-time.After(d):
		return true
	case <-sig:
		return false
	}
}

func launchAssistant(container *app.Container) error {
	fmt.Println("\nLaunching assistant...")
	fmt.Println("Type 'exit' to return to the VibeOS shell.")
	fmt.Println()

	cmd := exec.Command(container.Assistant.Binary())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("Assistant exited with error: %v\n", err)
	}
	fmt.Println("\nReturning to VibeOS...")
	return nil
}
