package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/placement-prep/internal/cli"
	"github.com/Veraticus/placement-prep/internal/common"
	"github.com/Veraticus/placement-prep/internal/history"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a saved analysis",
		Long: `Export a saved analysis, or one section of it, as plain text, JSON or YAML.

Sections: all, plan, checklist, questions.`,
		Example: `  prep export 1718000000000-a1b2c3d --section plan
  prep export 1718000000000-a1b2c3d --format yaml -o prep.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().String("format", cli.FormatText, "output format (text, json, yaml)")
	cmd.Flags().String("section", cli.SectionAll, "section to export (all, plan, checklist, questions)")
	cmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	section, _ := cmd.Flags().GetString("section")
	output, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateExport(format, section); err != nil {
		return common.NewUserError(err.Error(), err)
	}

	ctx := cmd.Context()
	return withHistory(ctx, func(store *history.Store) error {
		rec, err := getRecord(ctx, store, args[0])
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer func() {
				if closeErr := f.Close(); closeErr != nil {
					slog.Error("failed to close export file", "error", closeErr)
				}
			}()
			w = f
		}

		if err := cli.Export(w, rec, format, section); err != nil {
			if errors.Is(err, cli.ErrUnsupportedExport) {
				return common.NewUserError(err.Error(), err)
			}
			return err
		}

		if output != "" {
			outln(cmd, cli.FormatSuccess("Exported to "+output))
		}
		return nil
	})
}
