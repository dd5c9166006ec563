package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/placement-prep/internal/common"
	"github.com/Veraticus/placement-prep/internal/config"
	"github.com/Veraticus/placement-prep/internal/history"
	"github.com/Veraticus/placement-prep/internal/model"
	"github.com/Veraticus/placement-prep/internal/storage"
)

const acmeJD = "We are hiring a frontend engineer with React, Node.js, TypeScript, SQL and AWS experience."

func setupTestDB(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults(viper.GetViper())

	path := filepath.Join(t.TempDir(), "prep.db")
	viper.Set(config.KeyDatabasePath, path)
	return path
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func loadRecords(t *testing.T, dbPath string) []*model.AnalysisRecord {
	t.Helper()
	ctx := context.Background()
	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Logf("Failed to close store: %v", closeErr)
		}
	}()
	require.NoError(t, store.Migrate(ctx))

	records, err := history.NewStore(store).LoadAll(ctx)
	require.NoError(t, err)
	return records
}

func analyzeOne(t *testing.T, dbPath string) *model.AnalysisRecord {
	t.Helper()
	_, err := execute(t, analyzeCmd(), "", "--company", "Acme Corp", "--role", "Frontend Engineer", "--jd", acmeJD)
	require.NoError(t, err)
	records := loadRecords(t, dbPath)
	require.NotEmpty(t, records)
	return records[0]
}

func TestAnalyzeCommand(t *testing.T) {
	dbPath := setupTestDB(t)

	out, err := execute(t, analyzeCmd(), "", "--company", "Acme Corp", "--role", "Frontend Engineer", "--jd", acmeJD)
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "too short")

	records := loadRecords(t, dbPath)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme Corp", records[0].Company)
	assert.Contains(t, records[0].ExtractedSkills.Web, "React")
}

func TestAnalyzeFromStdin(t *testing.T) {
	dbPath := setupTestDB(t)

	_, err := execute(t, analyzeCmd(), "Python developer with Docker", "--jd-file", "-")
	require.NoError(t, err)

	records := loadRecords(t, dbPath)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].ExtractedSkills.Languages, "Python")
}

func TestAnalyzeEmptyJD(t *testing.T) {
	dbPath := setupTestDB(t)

	_, err := execute(t, analyzeCmd(), "", "--company", "Acme Corp", "--jd", "   ")
	require.Error(t, err)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.UserMessage, "job description")
	assert.Empty(t, loadRecords(t, dbPath))
}

func TestAnalyzeBatch(t *testing.T) {
	dbPath := setupTestDB(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("React and Redis"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("Java with Kubernetes"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("  \n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.pdf"), []byte("Go"), 0o600))

	out, err := execute(t, analyzeCmd(), "", "--batch", dir, "--company", "Initech")
	require.NoError(t, err)
	assert.Contains(t, out, "Skipped empty.txt")

	records := loadRecords(t, dbPath)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "Initech", rec.Company)
	}
}

func TestConfidenceCommand(t *testing.T) {
	dbPath := setupTestDB(t)
	rec := analyzeOne(t, dbPath)

	_, err := execute(t, confidenceCmd(), "", rec.ID, "React", "know")
	require.NoError(t, err)

	updated := loadRecords(t, dbPath)[0]
	assert.Equal(t, model.ConfidenceKnow, updated.SkillConfidenceMap["React"])
	assert.Equal(t, rec.FinalScore+2*model.ConfidenceStep, updated.FinalScore)

	_, err = execute(t, confidenceCmd(), "", rec.ID, "React", "maybe")
	require.Error(t, err)

	_, err = execute(t, confidenceCmd(), "", rec.ID, "Fortran", "know")
	require.ErrorIs(t, err, history.ErrUnknownSkill)

	_, err = execute(t, confidenceCmd(), "", "missing", "React", "know")
	require.ErrorIs(t, err, history.ErrRecordNotFound)
}

func TestHistoryCommands(t *testing.T) {
	dbPath := setupTestDB(t)
	rec := analyzeOne(t, dbPath)

	out, err := execute(t, historyCmd(), "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, rec.ID)

	out, err = execute(t, historyCmd(), "", "show", rec.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Day 7:")

	_, err = execute(t, historyCmd(), "", "show", "nope")
	require.ErrorIs(t, err, history.ErrRecordNotFound)

	out, err = execute(t, historyCmd(), "n\n", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing deleted.")
	assert.Len(t, loadRecords(t, dbPath), 1)

	out, err = execute(t, historyCmd(), "", "clear", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Backup written to")
	assert.Empty(t, loadRecords(t, dbPath))

	backups, err := filepath.Glob(filepath.Join(filepath.Dir(dbPath), "backups", "prep-*.db"))
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Len(t, loadRecords(t, backups[0]), 1)
}

func TestExportCommand(t *testing.T) {
	dbPath := setupTestDB(t)
	rec := analyzeOne(t, dbPath)

	out, err := execute(t, exportCmd(), "", rec.ID, "--section", "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 1:")

	outFile := filepath.Join(t.TempDir(), "plan.json")
	_, err = execute(t, exportCmd(), "", rec.ID, "--format", "json", "--section", "plan", "-o", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var plan []model.PlanDay
	require.NoError(t, json.Unmarshal(data, &plan))
	assert.Len(t, plan, 7)

	_, err = execute(t, exportCmd(), "", rec.ID, "--format", "docx")
	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)

	badFile := filepath.Join(t.TempDir(), "plan.docx")
	_, err = execute(t, exportCmd(), "", rec.ID, "--format", "docx", "-o", badFile)
	require.ErrorAs(t, err, &userErr)
	_, statErr := os.Stat(badFile)
	assert.True(t, os.IsNotExist(statErr), "no file is created for a rejected export")
}

func TestChecklistAndProofCommands(t *testing.T) {
	setupTestDB(t)

	_, err := execute(t, checklistCmd(), "", "set", "jd-validation")
	require.NoError(t, err)

	out, err := execute(t, checklistCmd(), "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Tests passed: 1 / 10")

	_, err = execute(t, checklistCmd(), "", "set", "not-a-test")
	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)

	_, err = execute(t, proofCmd(), "", "set", "github", "github.com/no-scheme")
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "Invalid URL. Must start with http:// or https://", userErr.UserMessage)

	_, err = execute(t, proofCmd(), "", "set", "github", "https://github.com/me/prep")
	require.NoError(t, err)
	_, err = execute(t, proofCmd(), "", "step", "design")
	require.NoError(t, err)

	out, err = execute(t, proofCmd(), "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "https://github.com/me/prep")
	assert.Contains(t, out, "Steps done: 1 / 8")
	assert.Contains(t, out, "In Progress")
}

func TestErrorMessage(t *testing.T) {
	userErr := common.NewUserError("JD text is required.", errors.New("empty input"))
	msg := errorMessage(fmt.Errorf("analyze: %w", userErr))
	assert.Contains(t, msg, "JD text is required.")
	assert.NotContains(t, msg, "empty input")

	assert.Contains(t, errorMessage(errors.New("disk full")), "disk full")
}

func TestBackupPath(t *testing.T) {
	got := backupPath("/data/prep/prep.db", mustTime(t, "2026-03-01T10:20:30Z"))
	assert.Equal(t, "/data/prep/backups/prep-20260301-102030.db", got)
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}
