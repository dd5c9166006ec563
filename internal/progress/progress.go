// Package progress tracks the project's delivery checklists: the manual test
// checklist, the build steps and the final proof-of-work links. Each lives
// under its own key of the key-value store.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/placement-prep/internal/service"
)

// Storage keys.
const (
	TestChecklistKey = "prp_test_checklist_v1"
	ProofKey         = "prp_final_submission"
	StepsKey         = "prp_steps_completed"
)

// Errors.
var (
	ErrUnknownItem = errors.New("unknown checklist item")
	ErrInvalidLink = errors.New("invalid link")
)

// Item is one fixed entry of a checklist.
type Item struct {
	ID    string
	Label string
	Hint  string
}

// Tracker reads and writes progress state.
type Tracker struct {
	kv service.KeyValueStore
}

// NewTracker creates a Tracker on top of kv.
func NewTracker(kv service.KeyValueStore) *Tracker {
	return &Tracker{kv: kv}
}

// readJSON decodes the value under key. Missing or unreadable values read as
// the zero value; a value that only partly decodes is discarded whole.
func readJSON[T any](ctx context.Context, kv service.KeyValueStore, key string) (T, error) {
	var zero T
	value, ok, err := kv.Get(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal([]byte(value), &v); err != nil {
		slog.Warn("Ignoring unreadable progress value", "key", key, "error", err)
		return zero, nil
	}
	return v, nil
}

func (t *Tracker) writeJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := t.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (t *Tracker) readFlags(ctx context.Context, key string, items []Item) (map[string]bool, error) {
	stored, err := readJSON[map[string]bool](ctx, t.kv, key)
	if err != nil {
		return nil, err
	}
	flags := make(map[string]bool, len(items))
	for _, item := range items {
		flags[item.ID] = stored[item.ID]
	}
	return flags, nil
}

func (t *Tracker) setFlag(ctx context.Context, key string, items []Item, id string, done bool) error {
	if !hasItem(items, id) {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	flags, err := t.readFlags(ctx, key, items)
	if err != nil {
		return err
	}
	flags[id] = done
	return t.writeJSON(ctx, key, flags)
}

func hasItem(items []Item, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func countTrue(flags map[string]bool) int {
	n := 0
	for _, v := range flags {
		if v {
			n++
		}
	}
	return n
}
