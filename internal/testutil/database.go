// Package testutil provides shared helpers for tests: a migrated in-memory
// database and job description fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/placement-prep/internal/storage"
)

// SetupTestDB creates a new in-memory SQLite database with migrations applied.
// It is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return store
}
