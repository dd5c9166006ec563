// Package history persists analysis records as one JSON array under a single
// key of a key-value store. Stored data may be partial, legacy-shaped or
// corrupt; loading degrades to fewer records instead of failing.
package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/placement-prep/internal/common"
	"github.com/Veraticus/placement-prep/internal/model"
	"github.com/Veraticus/placement-prep/internal/service"
)

// HistoryKey is the storage key holding the record list.
const HistoryKey = "placement_history_v1"

// History errors.
var (
	ErrRecordNotFound = fmt.Errorf("analysis record %w", common.ErrNotFound)
	ErrUnknownSkill   = errors.New("skill is not part of this analysis")
	ErrMissingID      = errors.New("record id is required")
)

// LoadResult is the outcome of a tolerant load.
type LoadResult struct {
	Records []*model.AnalysisRecord
	// Skipped counts stored entries that were not objects or had no id.
	Skipped int
}

// Store reads and writes analysis records.
type Store struct {
	kv    service.KeyValueStore
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how new record ids are made.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore creates a Store on top of kv.
func NewStore(kv service.KeyValueStore, opts ...Option) *Store {
	s := &Store{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.newID == nil {
		s.newID = func() string { return makeID(s.now()) }
	}
	return s
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// readRaw returns the stored array elements untouched. A missing key is an
// empty list. A value that is not a JSON array is deleted and reported as
// corrupt.
func (s *Store) readRaw(ctx context.Context) (elems []json.RawMessage, corrupt bool, err error) {
	value, ok, err := s.kv.Get(ctx, HistoryKey)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read history: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	trimmed := bytes.TrimSpace([]byte(value))
	if len(trimmed) == 0 || trimmed[0] != '[' || json.Unmarshal(trimmed, &elems) != nil {
		slog.Warn("History storage is corrupted, clearing it",
			"key", HistoryKey,
			"bytes", len(value))
		if delErr := s.kv.Delete(ctx, HistoryKey); delErr != nil {
			return nil, true, fmt.Errorf("failed to clear corrupted history: %w", delErr)
		}
		return nil, true, nil
	}
	return elems, false, nil
}

func (s *Store) writeRaw(ctx context.Context, elems []json.RawMessage) error {
	if elems == nil {
		elems = []json.RawMessage{}
	}
	data, err := json.Marshal(elems)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := s.kv.Set(ctx, HistoryKey, string(data)); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// decodeElement parses one stored entry. ok is false for entries that must
// be skipped.
func (s *Store) decodeElement(raw json.RawMessage) (*model.AnalysisRecord, bool) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, false
	}
	if _, ok := documentID(doc); !ok {
		return nil, false
	}
	if err := upgrade(doc); err != nil {
		slog.Warn("Failed to upgrade history record", "error", err)
	}
	return normalize(doc, s.timestamp()), true
}

// LoadSafe returns every readable record, most recent first, and how many
// stored entries were skipped. Only storage failures are returned as errors.
func (s *Store) LoadSafe(ctx context.Context) (LoadResult, error) {
	elems, _, err := s.readRaw(ctx)
	if err != nil {
		return LoadResult{}, err
	}

	result := LoadResult{Records: make([]*model.AnalysisRecord, 0, len(elems))}
	for _, raw := range elems {
		rec, ok := s.decodeElement(raw)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if result.Skipped > 0 {
		common.LogInfo("Skipped malformed history entries", common.Fields{
			"skipped": result.Skipped,
			"loaded":  len(result.Records),
		})
	}
	return result, nil
}

// LoadAll returns every readable record, most recent first.
func (s *Store) LoadAll(ctx context.Context) ([]*model.AnalysisRecord, error) {
	result, err := s.LoadSafe(ctx)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// Get returns the record with the given id.
func (s *Store) Get(ctx context.Context, id string) (*model.AnalysisRecord, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

// Create stores rec as the newest record. An id and timestamps are assigned
// when missing. The normalized record that was written is returned.
func (s *Store) Create(ctx context.Context, rec *model.AnalysisRecord) (*model.AnalysisRecord, error) {
	if rec == nil {
		return nil, fmt.Errorf("record cannot be nil")
	}

	draft := rec.Clone()
	if draft.ID == "" {
		draft.ID = s.newID()
	}
	now := s.timestamp()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now
	draft.SchemaVersion = model.CurrentSchemaVersion

	stored, raw, err := s.prepare(draft)
	if err != nil {
		return nil, err
	}

	elems, _, err := s.readRaw(ctx)
	if err != nil {
		return nil, err
	}
	elems = append([]json.RawMessage{raw}, elems...)
	if err := s.writeRaw(ctx, elems); err != nil {
		return nil, err
	}

	common.LogDebug("Saved analysis", common.Fields{
		"id":         stored.ID,
		"baseScore":  stored.BaseScore,
		"finalScore": stored.FinalScore,
	})
	return stored, nil
}

// Update replaces the stored record with the same id. createdAt and
// baseScore are kept from the stored copy; finalScore is recomputed and
// updatedAt refreshed.
func (s *Store) Update(ctx context.Context, rec *model.AnalysisRecord) (*model.AnalysisRecord, error) {
	if rec == nil {
		return nil, fmt.Errorf("record cannot be nil")
	}
	if rec.ID == "" {
		return nil, ErrMissingID
	}

	elems, _, err := s.readRaw(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	var existing *model.AnalysisRecord
	for i, raw := range elems {
		if cur, ok := s.decodeElement(raw); ok && cur.ID == rec.ID {
			idx, existing = i, cur
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, rec.ID)
	}

	draft := rec.Clone()
	draft.CreatedAt = existing.CreatedAt
	draft.BaseScore = existing.BaseScore
	draft.UpdatedAt = s.timestamp()
	draft.SchemaVersion = model.CurrentSchemaVersion

	stored, raw, err := s.prepare(draft)
	if err != nil {
		return nil, err
	}
	elems[idx] = raw
	if err := s.writeRaw(ctx, elems); err != nil {
		return nil, err
	}
	return stored, nil
}

// SetConfidence records how confident the user is in one skill of a record
// and persists the recomputed score.
func (s *Store) SetConfidence(ctx context.Context, id, skill string, c model.Confidence) (*model.AnalysisRecord, error) {
	if _, err := model.ParseConfidence(string(c)); err != nil {
		return nil, err
	}
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := rec.SkillConfidenceMap[skill]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, skill)
	}
	rec.SkillConfidenceMap[skill] = c
	return s.Update(ctx, rec)
}

// Clear removes every stored record.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, HistoryKey); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// prepare normalizes a record and encodes it for storage.
func (s *Store) prepare(rec *model.AnalysisRecord) (*model.AnalysisRecord, json.RawMessage, error) {
	doc, err := toDocument(rec)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode record: %w", err)
	}
	stored := normalize(doc, s.timestamp())
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return stored, raw, nil
}
