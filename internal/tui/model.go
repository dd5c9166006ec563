// Package tui implements the interactive confidence review screen.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/placement-prep/internal/model"
)

// Saver persists an edited record.
type Saver interface {
	Update(ctx context.Context, rec *model.AnalysisRecord) (*model.AnalysisRecord, error)
}

// skillRow is one selectable line of the review list.
type skillRow struct {
	skill    string
	category model.Category
}

// Model holds the review screen state.
type Model struct {
	saver    Saver
	lastErr  error
	record   *model.AnalysisRecord
	help     help.Model
	status   string
	rows     []skillRow
	theme    Theme
	keymap   KeyMap
	width    int
	height   int
	cursor   int
	revision int
	dirty    bool
	saving   bool
	quitting bool
}

// NewModel creates a review model for a copy of rec.
func NewModel(rec *model.AnalysisRecord, saver Saver, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	working := rec.Clone()
	if working.SkillConfidenceMap == nil {
		working.SkillConfidenceMap = make(map[string]model.Confidence)
	}

	h := help.New()
	h.Width = cfg.Width

	return Model{
		saver:  saver,
		record: working,
		rows:   buildRows(working.ExtractedSkills),
		theme:  cfg.Theme,
		keymap: cfg.Keymap,
		help:   h,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

func buildRows(skills model.ExtractedSkills) []skillRow {
	var rows []skillRow
	seen := make(map[string]bool)
	for _, cat := range model.Categories {
		for _, skill := range skills.Get(cat) {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			rows = append(rows, skillRow{skill: skill, category: cat})
		}
	}
	return rows
}

// Record returns the record as currently edited.
func (m Model) Record() *model.AnalysisRecord {
	return m.record
}

// Dirty reports whether there are unsaved changes.
func (m Model) Dirty() bool {
	return m.dirty
}

// Err returns the last save error, if any.
func (m Model) Err() error {
	return m.lastErr
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.lastErr = msg.err
			m.status = ""
			return m, nil
		}
		m.lastErr = nil
		if msg.revision != m.revision {
			// Edits made while the save was in flight stay pending.
			m.record.CreatedAt = msg.record.CreatedAt
			m.record.UpdatedAt = msg.record.UpdatedAt
			m.record.BaseScore = msg.record.BaseScore
			m.record.RecomputeFinalScore()
			m.status = "Saved earlier changes. Press s to save the rest."
			return m, nil
		}
		m.record = msg.record.Clone()
		m.dirty = false
		m.status = "Saved."
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0

	case key.Matches(msg, m.keymap.End):
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}

	case key.Matches(msg, m.keymap.Toggle):
		m.toggleCurrent()

	case key.Matches(msg, m.keymap.Save):
		if m.saving || !m.dirty {
			return m, nil
		}
		m.saving = true
		m.status = "Saving..."
		return m, m.save()

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) toggleCurrent() {
	if len(m.rows) == 0 {
		return
	}
	skill := m.rows[m.cursor].skill
	m.record.SkillConfidenceMap[skill] = m.record.SkillConfidenceMap[skill].Toggle()
	m.record.RecomputeFinalScore()
	m.revision++
	m.dirty = true
	m.status = ""
}
