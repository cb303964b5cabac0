package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vibeos/vibesh/internal/app"
)

const defaultHistoryLimit = 20

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(cmd.OutOrStdout(), container, limit, search)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "Max entries to show")
	cmd.Flags().StringVar(&search, "search", "", "Filter by keyword")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Archive.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})
	return cmd
}

func listHistory(w io.Writer, container *app.Container, limit int, search string) error {
	records, err := container.Archive.Records(limit, search)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "No history recorded yet.")
		return nil
	}
	for _, rec := range records {
		status := "ok"
		if !rec.Success {
			status = "failed"
		}
		fmt.Fprintf(w, "%-14s %-8s %-20s %s\n",
			humanize.Time(rec.Timestamp), status, rec.Intent, rec.Command)
	}
	return nil
}
