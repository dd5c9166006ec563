package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/placement-prep/internal/model"
)

// View renders the review screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderSkills(),
		m.renderStatus(),
		m.help.View(m.keymap),
	}
	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	rec := m.record
	know, practice := rec.ConfidenceCounts()

	title := m.theme.Title.Render(fmt.Sprintf("Skill confidence: %s", headerName(rec)))
	score := fmt.Sprintf("Readiness %d/100  (base %d, %d known, %d to practice)",
		rec.FinalScore, rec.BaseScore, know, practice)

	return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.Subtitle.Render(score), "")
}

func headerName(rec *model.AnalysisRecord) string {
	parts := make([]string, 0, 2)
	if rec.Company != "" {
		parts = append(parts, rec.Company)
	}
	if rec.Role != "" {
		parts = append(parts, rec.Role)
	}
	if len(parts) == 0 {
		return rec.ID
	}
	return strings.Join(parts, " / ")
}

func (m Model) renderSkills() string {
	if len(m.rows) == 0 {
		return m.theme.Subtitle.Render("No skills extracted.")
	}

	var b strings.Builder
	var current model.Category
	for i, row := range m.rows {
		if row.category != current {
			current = row.category
			b.WriteString(m.theme.Category.Render(current.DisplayName()))
			b.WriteString("\n")
		}

		mark := m.theme.Practice.Render("[ ] practice")
		if m.record.SkillConfidenceMap[row.skill] == model.ConfidenceKnow {
			mark = m.theme.Know.Render("[x] know    ")
		}

		line := fmt.Sprintf("  %s  %s", mark, row.skill)
		if i == m.cursor {
			line = m.theme.Selected.Render(fmt.Sprintf("> %s  %s", mark, row.skill))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	switch {
	case m.lastErr != nil:
		return m.theme.Error.Render("Save failed: " + m.lastErr.Error())
	case m.status != "":
		return m.theme.Status.Render(m.status)
	case m.dirty:
		return m.theme.Status.Render("Unsaved changes. Press s to save.")
	default:
		return ""
	}
}
