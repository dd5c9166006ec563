package progress

import "context"

// Tests is the fixed manual test checklist.
var Tests = []Item{
	{ID: "jd-validation", Label: "JD required validation works", Hint: "Run analyze with an empty JD. It should fail with a clear error."},
	{ID: "short-jd-warning", Label: "Short JD warning shows for <200 chars", Hint: "Analyze a JD under 200 characters. A warning should be printed."},
	{ID: "skills-extraction", Label: "Skills extraction groups correctly", Hint: "Analyze a JD with React, Python, AWS and Docker and check the categories."},
	{ID: "round-mapping", Label: "Round mapping changes based on company + skills", Hint: "Compare company Google (Enterprise) with no company (Startup)."},
	{ID: "score-deterministic", Label: "Score calculation is deterministic", Hint: "Analyze the same JD twice. baseScore must match."},
	{ID: "skill-toggle-score", Label: "Skill toggles update score live", Hint: "Mark one skill as known. The score should rise."},
	{ID: "persistence", Label: "Changes persist after restart", Hint: "Toggle a skill, then show the record again."},
	{ID: "history-load", Label: "History saves and loads correctly", Hint: "Analyze several JDs. history list should show all of them."},
	{ID: "export-content", Label: "Export produces the correct content", Hint: "Export the 7-day plan and compare it with show."},
	{ID: "no-console-errors", Label: "No errors on core commands", Hint: "Run analyze, history, show and export. No errors should be logged."},
}

// TestStatus returns the pass flag of every checklist test.
func (t *Tracker) TestStatus(ctx context.Context) (map[string]bool, error) {
	return t.readFlags(ctx, TestChecklistKey, Tests)
}

// SetTest marks a checklist test as passing or not.
func (t *Tracker) SetTest(ctx context.Context, id string, passed bool) error {
	return t.setFlag(ctx, TestChecklistKey, Tests, id, passed)
}

// ResetTests clears every checklist test.
func (t *Tracker) ResetTests(ctx context.Context) error {
	return t.kv.Delete(ctx, TestChecklistKey)
}
