package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/placement-prep/internal/model"
)

// Run opens the review screen for rec and blocks until the user quits. It
// returns the final model so callers can report unsaved changes.
func Run(ctx context.Context, rec *model.AnalysisRecord, saver Saver, opts ...Option) (Model, error) {
	if rec == nil {
		return Model{}, fmt.Errorf("record is required")
	}
	if saver == nil {
		return Model{}, fmt.Errorf("storage is required")
	}

	p := tea.NewProgram(NewModel(rec, saver, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("review screen failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m, nil
}
