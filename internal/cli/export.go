package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/placement-prep/internal/model"
)

// Export formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Export sections.
const (
	SectionAll       = "all"
	SectionPlan      = "plan"
	SectionChecklist = "checklist"
	SectionQuestions = "questions"
)

// ErrUnsupportedExport is returned for an unknown format or section.
var ErrUnsupportedExport = errors.New("unsupported export")

// ValidateExport reports whether format and section name a supported export.
func ValidateExport(format, section string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q", ErrUnsupportedExport, format)
	}
	switch section {
	case SectionAll, SectionPlan, SectionChecklist, SectionQuestions:
	default:
		return fmt.Errorf("%w: section %q", ErrUnsupportedExport, section)
	}
	return nil
}

// Export writes one section of a record in the requested format.
func Export(w io.Writer, rec *model.AnalysisRecord, format, section string) error {
	if err := ValidateExport(format, section); err != nil {
		return err
	}
	payload, err := exportPayload(rec, section)
	if err != nil {
		return err
	}

	switch format {
	case FormatText:
		_, err = io.WriteString(w, exportText(rec, section))
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(payload)
	case FormatYAML:
		err = writeYAML(w, payload)
	default:
		return fmt.Errorf("%w: format %q", ErrUnsupportedExport, format)
	}
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", section, err)
	}
	return nil
}

func exportPayload(rec *model.AnalysisRecord, section string) (any, error) {
	switch section {
	case SectionAll:
		return rec, nil
	case SectionPlan:
		return rec.Plan7Days, nil
	case SectionChecklist:
		return rec.Checklist, nil
	case SectionQuestions:
		return rec.Questions, nil
	default:
		return nil, fmt.Errorf("%w: section %q", ErrUnsupportedExport, section)
	}
}

// writeYAML goes through JSON first so the record's extra fields and json
// names are kept.
func writeYAML(w io.Writer, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func exportText(rec *model.AnalysisRecord, section string) string {
	switch section {
	case SectionPlan:
		return PlanText(rec.Plan7Days)
	case SectionChecklist:
		return ChecklistText(rec.Checklist)
	case SectionQuestions:
		return QuestionsText(rec.Questions)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Placement readiness: %s / %s\n", orDash(rec.Company), orDash(rec.Role))
	fmt.Fprintf(&b, "Score: %d (base %d)\n\n", rec.FinalScore, rec.BaseScore)
	b.WriteString("Key skills\n")
	for _, cat := range model.Categories {
		if skills := rec.ExtractedSkills.Get(cat); len(skills) > 0 {
			fmt.Fprintf(&b, "%s: %s\n", cat.DisplayName(), strings.Join(skills, ", "))
		}
	}
	b.WriteString("\n")
	b.WriteString(ChecklistText(rec.Checklist))
	b.WriteString("\n")
	b.WriteString(PlanText(rec.Plan7Days))
	b.WriteString("\n")
	b.WriteString(QuestionsText(rec.Questions))
	return b.String()
}

// PlanText renders the 7-day plan as plain text.
func PlanText(days []model.PlanDay) string {
	var b strings.Builder
	b.WriteString("7-Day Plan\n")
	for _, day := range days {
		fmt.Fprintf(&b, "Day %d: %s\n", day.Day, day.Focus)
		for _, task := range day.Tasks {
			fmt.Fprintf(&b, "- %s\n", task)
		}
	}
	return b.String()
}

// ChecklistText renders the checklist as plain text.
func ChecklistText(rounds []model.ChecklistRound) string {
	var b strings.Builder
	b.WriteString("Round Checklist\n")
	for _, round := range rounds {
		b.WriteString(round.RoundTitle + "\n")
		for _, item := range round.Items {
			fmt.Fprintf(&b, "[ ] %s\n", item)
		}
	}
	return b.String()
}

// QuestionsText renders the questions as a numbered plain-text list.
func QuestionsText(questions []string) string {
	var b strings.Builder
	b.WriteString("Interview Questions\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return b.String()
}
