package progress_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/placement-prep/internal/progress"
	"github.com/Veraticus/placement-prep/internal/storage"
)

func newTracker(t *testing.T) (*progress.Tracker, *storage.MemoryStorage) {
	t.Helper()
	kv := storage.NewMemoryStorage()
	t.Cleanup(func() { _ = kv.Close() })
	return progress.NewTracker(kv), kv
}

func TestTests(t *testing.T) {
	ctx := context.Background()
	tracker, _ := newTracker(t)

	status, err := tracker.TestStatus(ctx)
	require.NoError(t, err)
	assert.Len(t, status, 10)
	for _, passed := range status {
		assert.False(t, passed)
	}

	require.NoError(t, tracker.SetTest(ctx, "jd-validation", true))
	status, err = tracker.TestStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status["jd-validation"])

	err = tracker.SetTest(ctx, "bogus", true)
	require.ErrorIs(t, err, progress.ErrUnknownItem)

	require.NoError(t, tracker.ResetTests(ctx))
	status, err = tracker.TestStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status["jd-validation"])
}

func TestCorruptValueReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	tracker, kv := newTracker(t)
	require.NoError(t, kv.Set(ctx, progress.TestChecklistKey, "{nope"))
	require.NoError(t, kv.Set(ctx, progress.ProofKey, "[1,2]"))

	status, err := tracker.TestStatus(ctx)
	require.NoError(t, err)
	assert.Len(t, status, 10)

	links, err := tracker.Links(ctx)
	require.NoError(t, err)
	assert.Equal(t, progress.Links{}, links)

	require.NoError(t, tracker.SetTest(ctx, "persistence", true))
	status, err = tracker.TestStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status["persistence"])
}

func TestPartlyValidValueReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	tracker, kv := newTracker(t)
	require.NoError(t, kv.Set(ctx, progress.ProofKey, `{"lovable":"https://x.dev","github":5}`))
	require.NoError(t, kv.Set(ctx, progress.TestChecklistKey, `{"jd-validation":true,"persistence":"yes"}`))

	links, err := tracker.Links(ctx)
	require.NoError(t, err)
	assert.Equal(t, progress.Links{}, links)

	status, err := tracker.TestStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status["jd-validation"])
}

func TestSetLink(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		field   string
		value   string
		wantErr error
	}{
		{name: "https", field: "github", value: "https://github.com/me/prep"},
		{name: "http", field: "lovable", value: "http://lovable.dev/projects/x"},
		{name: "trimmed", field: "deployment", value: "  https://prep.example.com  "},
		{name: "no scheme", field: "github", value: "github.com/me/prep", wantErr: progress.ErrInvalidLink},
		{name: "ftp", field: "github", value: "ftp://example.com", wantErr: progress.ErrInvalidLink},
		{name: "unknown field", field: "gitlab", value: "https://gitlab.com", wantErr: progress.ErrUnknownItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, _ := newTracker(t)
			_, err := tracker.SetLink(ctx, tt.field, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				links, getErr := tracker.Links(ctx)
				require.NoError(t, getErr)
				assert.Equal(t, progress.Links{}, links)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatusAndSubmission(t *testing.T) {
	ctx := context.Background()
	tracker, _ := newTracker(t)

	status, err := tracker.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Shipped())
	assert.Equal(t, 10, status.TestsTotal)
	assert.Equal(t, 8, status.StepsTotal)

	_, err = progress.SubmissionText(status.Links)
	require.ErrorIs(t, err, progress.ErrInvalidLink)

	for _, item := range progress.Tests {
		require.NoError(t, tracker.SetTest(ctx, item.ID, true))
	}
	for _, item := range progress.Steps {
		require.NoError(t, tracker.SetStep(ctx, item.ID, true))
	}
	_, err = tracker.SetLink(ctx, "lovable", "https://lovable.dev/p/1")
	require.NoError(t, err)
	_, err = tracker.SetLink(ctx, "github", "https://github.com/me/prep")
	require.NoError(t, err)

	status, err = tracker.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Shipped(), "deployment link still missing")

	_, err = tracker.SetLink(ctx, "deployment", "https://prep.example.com")
	require.NoError(t, err)

	status, err = tracker.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Shipped())
	assert.Equal(t, 10, status.TestsPassed)
	assert.Equal(t, 8, status.StepsDone)

	text, err := progress.SubmissionText(status.Links)
	require.NoError(t, err)
	assert.Contains(t, text, "GitHub Repository: https://github.com/me/prep")
	assert.Contains(t, text, "Live Deployment: https://prep.example.com")

	require.NoError(t, tracker.SetStep(ctx, "design", false))
	status, err = tracker.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Shipped())
}
