package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/placement-prep/internal/cli"
	"github.com/Veraticus/placement-prep/internal/history"
	"github.com/Veraticus/placement-prep/internal/tui"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <id>",
		Short: "Review skill confidence interactively",
		Long: `Open an interactive screen listing every extracted skill of a saved
analysis. Move with j/k, toggle know/practice with space, save with s.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withHistory(ctx, func(store *history.Store) error {
				rec, err := getRecord(ctx, store, args[0])
				if err != nil {
					return err
				}

				final, err := tui.Run(ctx, rec, store)
				if err != nil {
					return err
				}

				if final.Dirty() {
					errln(cmd, cli.FormatWarning("Quit with unsaved changes."))
				}
				outln(cmd, cli.RenderSummary(final.Record()))
				return nil
			})
		},
	}
}
