package tui

import "github.com/Veraticus/placement-prep/internal/model"

// savedMsg reports the result of persisting the record as it stood at
// revision.
type savedMsg struct {
	err      error
	record   *model.AnalysisRecord
	revision int
}
