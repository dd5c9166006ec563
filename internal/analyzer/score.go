package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/placement-prep/internal/model"
)

// Readiness score weights.
const (
	BaseReadiness    = 35
	PerCategoryBonus = 5
	MaxCategoryBonus = 30
	CompanyBonus     = 10
	RoleBonus        = 10
	LongJDBonus      = 10
	LongJDThreshold  = 800
)

// ComputeReadiness scores how much signal the analysis has, from 0 to 100.
// Only keyword categories count; the fallback bucket never does.
func ComputeReadiness(skills model.ExtractedSkills, company, role, jdText string) int {
	score := BaseReadiness

	present := 0
	for _, cat := range model.Categories {
		if len(Keywords[cat]) == 0 {
			continue
		}
		if len(skills.Get(cat)) > 0 {
			present++
		}
	}
	score += min(present*PerCategoryBonus, MaxCategoryBonus)

	if strings.TrimSpace(company) != "" {
		score += CompanyBonus
	}
	if strings.TrimSpace(role) != "" {
		score += RoleBonus
	}
	if utf8.RuneCountInString(jdText) > LongJDThreshold {
		score += LongJDBonus
	}

	return model.ClampScore(score)
}
