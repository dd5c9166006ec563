package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/placement-prep/internal/model"
)

const timeLayout = "2006-01-02 15:04"

// RenderSummary renders the header box of a record.
func RenderSummary(rec *model.AnalysisRecord) string {
	know, practice := rec.ConfidenceCounts()

	lines := []string{
		fmt.Sprintf("%s %s", BoldStyle.Render("Company:"), orDash(rec.Company)),
		fmt.Sprintf("%s %s", BoldStyle.Render("Role:"), orDash(rec.Role)),
		fmt.Sprintf("%s %s", BoldStyle.Render("Created:"), rec.CreatedAt.Local().Format(timeLayout)),
		"",
		fmt.Sprintf("%s %s %s", BoldStyle.Render("Readiness:"), FormatScore(rec.FinalScore),
			SubtleStyle.Render(fmt.Sprintf("(base %d, %d known, %d to practice)", rec.BaseScore, know, practice))),
	}

	return RenderBox(fmt.Sprintf("%s Analysis %s", ChartIcon, rec.ID), strings.Join(lines, "\n"))
}

// RenderSkills renders extracted skills grouped by category with their
// confidence marks.
func RenderSkills(rec *model.AnalysisRecord) string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render("Key skills extracted"))
	b.WriteString("\n")

	for _, cat := range model.Categories {
		skills := rec.ExtractedSkills.Get(cat)
		if len(skills) == 0 {
			continue
		}
		tags := make([]string, 0, len(skills))
		for _, skill := range skills {
			tags = append(tags, renderSkillTag(skill, rec.SkillConfidenceMap[skill]))
		}
		fmt.Fprintf(&b, "%s %s\n",
			TableCellStyle.Width(22).Render(cat.DisplayName()),
			strings.Join(tags, " "))
	}
	return b.String()
}

func renderSkillTag(skill string, c model.Confidence) string {
	if c == model.ConfidenceKnow {
		return SuccessStyle.Render(SuccessIcon + " " + skill)
	}
	return TagStyle.Render(skill)
}

// RenderChecklist renders the round-wise preparation checklist.
func RenderChecklist(rounds []model.ChecklistRound) string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render("Round-wise preparation checklist"))
	b.WriteString("\n")
	for _, round := range rounds {
		b.WriteString(BoldStyle.Render(round.RoundTitle))
		b.WriteString("\n")
		for _, item := range round.Items {
			fmt.Fprintf(&b, "  [ ] %s\n", item)
		}
	}
	return b.String()
}

// RenderPlan renders the 7-day plan.
func RenderPlan(days []model.PlanDay) string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render("7-day preparation plan"))
	b.WriteString("\n")
	for _, day := range days {
		fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render(fmt.Sprintf("Day %d:", day.Day)), day.Focus)
		for _, task := range day.Tasks {
			fmt.Fprintf(&b, "  - %s\n", task)
		}
	}
	return b.String()
}

// RenderQuestions renders the numbered interview questions.
func RenderQuestions(questions []string) string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render("Likely interview questions"))
	b.WriteString("\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, q)
	}
	return b.String()
}

// RenderIntel renders the company profile and the expected rounds.
func RenderIntel(intel model.CompanyIntel, rounds []model.RoundMapping) string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render("Company intel"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Name:"), orDash(intel.Name))
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Industry:"), intel.Industry)
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Size:"), intel.Size)
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Hiring focus:"), intel.HiringFocus)
	b.WriteString(SubtleStyle.Render(intel.Note))
	b.WriteString("\n\n")

	b.WriteString(HeadingStyle.Render("Expected interview rounds"))
	b.WriteString("\n")
	for _, round := range rounds {
		b.WriteString(BoldStyle.Render(round.RoundTitle))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Focus: %s\n", strings.Join(round.FocusAreas, ", "))
		fmt.Fprintf(&b, "  %s\n", SubtleStyle.Render(round.Rationale))
	}
	return b.String()
}

// RenderNextAction renders the suggested next step from the weakest skills.
func RenderNextAction(rec *model.AnalysisRecord) string {
	weak := rec.WeakSkills()
	if len(weak) == 0 {
		return FormatSuccess("All skills marked as known. Run a mock interview next.")
	}
	if len(weak) > 3 {
		weak = weak[:3]
	}
	return FormatInfo("Next action: start Day 1 of the plan. Focus on " + strings.Join(weak, ", ") + ".")
}

// RenderRecord renders every section of a record.
func RenderRecord(rec *model.AnalysisRecord) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderSummary(rec),
		"",
		RenderSkills(rec),
		RenderIntel(rec.CompanyIntel, rec.RoundMapping),
		RenderChecklist(rec.Checklist),
		RenderPlan(rec.Plan7Days),
		RenderQuestions(rec.Questions),
		RenderNextAction(rec),
	)
}

// RenderHistoryTable renders one line per record.
func RenderHistoryTable(records []*model.AnalysisRecord) string {
	if len(records) == 0 {
		return SubtleStyle.Render("No analyses yet. Run `prep analyze` to create one.")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		TableCellStyle.Width(22).Render("ID"),
		TableCellStyle.Width(18).Render("Created"),
		TableCellStyle.Width(20).Render("Company"),
		TableCellStyle.Width(24).Render("Role"),
		TableCellStyle.Render("Score"),
	)

	rows := []string{
		FormatTitle(fmt.Sprintf("History (%d)", len(records))),
		TableHeaderStyle.Render(header),
	}
	for _, rec := range records {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			TableCellStyle.Width(22).Render(rec.ID),
			TableCellStyle.Width(18).Render(rec.CreatedAt.Local().Format(timeLayout)),
			TableCellStyle.Width(20).Render(truncate(orDash(rec.Company), 18)),
			TableCellStyle.Width(24).Render(truncate(orDash(rec.Role), 22)),
			TableCellStyle.Render(fmt.Sprintf("%d", rec.FinalScore)),
		))
	}
	return strings.Join(rows, "\n")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
