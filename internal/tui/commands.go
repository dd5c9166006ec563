package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const saveTimeout = 10 * time.Second

var errNoSaver = errors.New("no storage configured")

// save persists a snapshot of the edited record.
func (m Model) save() tea.Cmd {
	snapshot := m.record.Clone()
	saver := m.saver
	rev := m.revision

	return func() tea.Msg {
		if saver == nil {
			return savedMsg{err: errNoSaver, revision: rev}
		}

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		saved, err := saver.Update(ctx, snapshot)
		if err != nil {
			return savedMsg{err: err, revision: rev}
		}
		return savedMsg{record: saved, revision: rev}
	}
}
