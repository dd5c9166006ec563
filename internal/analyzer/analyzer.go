package analyzer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/Veraticus/placement-prep/internal/model"
)

// ShortJDThreshold is the length under which a JD gets a warning.
const ShortJDThreshold = 200

// ShortJDWarning is returned by ValidateInput for short descriptions.
const ShortJDWarning = "This JD is too short to analyze deeply. Paste the full JD for better output."

// Input errors.
var (
	ErrEmptyJobDescription = errors.New("job description is required")
	ErrInvalidInput        = errors.New("invalid analysis input")
)

// Input is what the user provides for one analysis.
type Input struct {
	Company string `validate:"max=200"`
	Role    string `validate:"max=200"`
	JDText  string `validate:"required"`
}

var validate = validator.New()

// ValidateInput checks an Input before analysis. Blocking problems are
// returned as an error; soft problems come back as warnings.
func ValidateInput(in Input) ([]string, error) {
	trimmed := Input{
		Company: strings.TrimSpace(in.Company),
		Role:    strings.TrimSpace(in.Role),
		JDText:  strings.TrimSpace(in.JDText),
	}

	if err := validate.Struct(trimmed); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Field() == "JDText" && fe.Tag() == "required" {
					return nil, ErrEmptyJobDescription
				}
			}
			fe := fieldErrs[0]
			return nil, fmt.Errorf("%w: %s must be at most %s characters", ErrInvalidInput, strings.ToLower(fe.Field()), fe.Param())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var warnings []string
	if utf8.RuneCountInString(trimmed.JDText) < ShortJDThreshold {
		warnings = append(warnings, ShortJDWarning)
	}
	return warnings, nil
}

// Analyze runs the full pipeline over one input. The result has no id or
// timestamps; those are assigned when it is stored.
func Analyze(in Input) model.AnalysisRecord {
	skills := ExtractSkills(in.JDText)
	intel := GenerateCompanyIntel(in.Company)

	rec := model.AnalysisRecord{
		Company:            in.Company,
		Role:               in.Role,
		JDText:             in.JDText,
		ExtractedSkills:    skills,
		Checklist:          GenerateChecklist(skills),
		Plan7Days:          GeneratePlan(skills),
		Questions:          GenerateQuestions(skills),
		CompanyIntel:       intel,
		RoundMapping:       GenerateRoundMapping(skills, intel),
		BaseScore:          ComputeReadiness(skills, in.Company, in.Role, in.JDText),
		SkillConfidenceMap: DefaultConfidence(skills),
		SchemaVersion:      model.CurrentSchemaVersion,
	}
	rec.RecomputeFinalScore()
	return rec
}

// DefaultConfidence marks every extracted skill as needing practice.
func DefaultConfidence(skills model.ExtractedSkills) map[string]model.Confidence {
	confidence := make(map[string]model.Confidence)
	for _, skill := range skills.All() {
		confidence[skill] = model.ConfidencePractice
	}
	return confidence
}
