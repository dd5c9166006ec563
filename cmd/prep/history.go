package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/placement-prep/internal/cli"
	"github.com/Veraticus/placement-prep/internal/common"
	"github.com/Veraticus/placement-prep/internal/config"
	"github.com/Veraticus/placement-prep/internal/history"
	"github.com/Veraticus/placement-prep/internal/model"
	"github.com/Veraticus/placement-prep/internal/service"
)

// backupper is implemented by stores that can snapshot themselves.
type backupper interface {
	Backup(ctx context.Context, destPath string) error
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved analyses",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyClearCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved analyses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withHistory(ctx, func(store *history.Store) error {
				result, err := store.LoadSafe(ctx)
				if err != nil {
					return fmt.Errorf("failed to load history: %w", err)
				}

				outln(cmd, cli.RenderHistoryTable(result.Records))
				if result.Skipped > 0 {
					errln(cmd, cli.FormatWarning(fmt.Sprintf("One or more saved entries couldn't be loaded. Create a new analysis. (%d skipped)", result.Skipped)))
				}
				return nil
			})
		},
	}
}

func historyShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summaryOnly, _ := cmd.Flags().GetBool("summary")
			ctx := cmd.Context()
			return withHistory(ctx, func(store *history.Store) error {
				rec, err := getRecord(ctx, store, args[0])
				if err != nil {
					return err
				}
				if summaryOnly {
					outln(cmd, cli.RenderSummary(rec))
					return nil
				}
				outln(cmd, cli.RenderRecord(rec))
				return nil
			})
		},
	}
	cmd.Flags().Bool("summary", false, "print only the summary")
	return cmd
}

func historyClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved analysis",
		Long: `Delete every saved analysis.

Unless --no-backup is given (or history.backup_on_clear is false), a copy of
the database is written to a backups/ directory next to it first.`,
		Args: cobra.NoArgs,
		RunE: runHistoryClear,
	}
	cmd.Flags().BoolP("force", "f", false, "skip confirmation prompt")
	cmd.Flags().Bool("no-backup", false, "do not back up the database first")
	return cmd
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	noBackup, _ := cmd.Flags().GetBool("no-backup")
	ctx := cmd.Context()

	if !force && !confirm(cmd, "This will delete all saved analyses. Continue? [y/N]: ") {
		outln(cmd, cli.FormatInfo("Nothing deleted."))
		return nil
	}

	return withStorage(ctx, func(kv service.KeyValueStore) error {
		if !noBackup && viper.GetBool(config.KeyHistoryBackup) {
			if b, ok := kv.(backupper); ok {
				dest := backupPath(config.DatabasePath(viper.GetViper()), time.Now())
				if err := b.Backup(ctx, dest); err != nil {
					return fmt.Errorf("failed to back up before clearing: %w", err)
				}
				outln(cmd, cli.FormatInfo("Backup written to "+dest))
			}
		}

		if err := history.NewStore(kv).Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		outln(cmd, cli.FormatSuccess("History cleared."))
		return nil
	})
}

func confirm(cmd *cobra.Command, prompt string) bool {
	outf(cmd, "%s", prompt)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// getRecord loads one record and turns a missing id into a user error.
func getRecord(ctx context.Context, store *history.Store, id string) (*model.AnalysisRecord, error) {
	rec, err := store.Get(ctx, id)
	if errors.Is(err, history.ErrRecordNotFound) {
		return nil, common.NewUserError(fmt.Sprintf("No saved analysis with id %s. Run `prep history list` to see ids.", id), err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis %s: %w", id, err)
	}
	return rec, nil
}
