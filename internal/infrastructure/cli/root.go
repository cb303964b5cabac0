// Package cli exposes the vibesh command tree: the interactive shell plus
// history, config and assistant-selection subcommands.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vibeos/vibesh/internal/app"
)

// Version is stamped at build time.
var Version = "0.2.0"

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Running with no arguments starts
// the interactive shell.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "vibesh",
		Short: "VibeOS natural language shell",
		Long:  "vibesh turns plain-English requests into development and system commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context(), container, Version)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newSelectCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
