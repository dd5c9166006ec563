package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/placement-prep/internal/analyzer"
	"github.com/Veraticus/placement-prep/internal/model"
)

// Job description fixtures.
const (
	// AcmeJD mentions React, Node.js, TypeScript, SQL and AWS.
	AcmeJD = "We are hiring a frontend engineer with React, Node.js, TypeScript, SQL and AWS experience."
	// BackendJD mentions exactly Python, SQL and AWS.
	BackendJD = "Python and SQL with AWS."
	// VagueJD matches no keyword.
	VagueJD = "Need a friendly helper"
)

// LongJD returns a description well past the long-JD bonus threshold.
func LongJD() string {
	return strings.Repeat("Strong DSA, OOP and Java fundamentals with Docker. ", 20)
}

// AnalyzedRecord runs the analyzer over jd and stamps a fixed id and
// timestamps so the result can be compared across runs.
func AnalyzedRecord(t *testing.T, company, role, jd string) *model.AnalysisRecord {
	t.Helper()

	rec := analyzer.Analyze(analyzer.Input{Company: company, Role: role, JDText: jd})
	rec.ID = "1700000000000-abc1234"
	rec.CreatedAt = time.UnixMilli(1700000000000).UTC()
	rec.UpdatedAt = rec.CreatedAt
	return &rec
}
