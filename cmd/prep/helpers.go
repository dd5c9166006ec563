package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/placement-prep/internal/config"
	"github.com/Veraticus/placement-prep/internal/history"
	"github.com/Veraticus/placement-prep/internal/progress"
	"github.com/Veraticus/placement-prep/internal/service"
	"github.com/Veraticus/placement-prep/internal/storage"
)

const keyEphemeral = "ephemeral"

// initStorage opens the configured key-value store and brings its schema up
// to date.
func initStorage(ctx context.Context) (service.KeyValueStore, error) {
	if viper.GetBool(keyEphemeral) {
		slog.Debug("Using in-memory storage")
		return storage.NewMemoryStorage(), nil
	}

	dbPath := config.DatabasePath(viper.GetViper())

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// withStorage runs fn against an open store and closes it afterwards.
func withStorage(ctx context.Context, fn func(kv service.KeyValueStore) error) error {
	kv, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := kv.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()
	return fn(kv)
}

func withHistory(ctx context.Context, fn func(store *history.Store) error) error {
	return withStorage(ctx, func(kv service.KeyValueStore) error {
		return fn(history.NewStore(kv))
	})
}

func withTracker(ctx context.Context, fn func(tracker *progress.Tracker) error) error {
	return withStorage(ctx, func(kv service.KeyValueStore) error {
		return fn(progress.NewTracker(kv))
	})
}

// backupPath names a timestamped backup next to the database.
func backupPath(dbPath string, now time.Time) string {
	return filepath.Join(filepath.Dir(dbPath), "backups", fmt.Sprintf("prep-%s.db", now.UTC().Format("20060102-150405")))
}

func outf(cmd *cobra.Command, format string, args ...any) {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), format, args...); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}

func outln(cmd *cobra.Command, args ...any) {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), args...); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}

func errln(cmd *cobra.Command, args ...any) {
	if _, err := fmt.Fprintln(cmd.ErrOrStderr(), args...); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}
