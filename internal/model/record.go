package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// CurrentSchemaVersion is the record shape written by this version.
const CurrentSchemaVersion = 2

// ChecklistRound is one interview round and what to prepare for it.
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle" yaml:"roundTitle"`
	Items      []string `json:"items" yaml:"items"`
}

// PlanDay is one day of the 7-day study plan.
type PlanDay struct {
	Focus string   `json:"focus" yaml:"focus"`
	Tasks []string `json:"tasks" yaml:"tasks"`
	Day   int      `json:"day" yaml:"day"`
}

// CompanySize is a rough headcount bucket guessed from the company name.
type CompanySize string

// Company sizes.
const (
	SizeEnterprise CompanySize = "Enterprise"
	SizeMidSize    CompanySize = "Mid-size"
	SizeStartup    CompanySize = "Startup"
)

// CompanyIntel is a heuristic profile of the hiring company.
type CompanyIntel struct {
	Name        string      `json:"name" yaml:"name"`
	Industry    string      `json:"industry" yaml:"industry"`
	Size        CompanySize `json:"size" yaml:"size"`
	HiringFocus string      `json:"hiringFocus" yaml:"hiringFocus"`
	Note        string      `json:"note" yaml:"note"`
}

// RoundMapping describes one expected interview round.
type RoundMapping struct {
	RoundTitle string   `json:"roundTitle" yaml:"roundTitle"`
	Rationale  string   `json:"rationale" yaml:"rationale"`
	FocusAreas []string `json:"focusAreas" yaml:"focusAreas"`
}

// AnalysisRecord is one persisted analysis of a job description.
type AnalysisRecord struct {
	CreatedAt          time.Time             `json:"createdAt" yaml:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt" yaml:"updatedAt"`
	SkillConfidenceMap map[string]Confidence `json:"skillConfidenceMap" yaml:"skillConfidenceMap"`
	// Extra carries top-level fields this version does not know about so
	// they survive a load/save cycle.
	Extra           map[string]json.RawMessage `json:"-" yaml:"-"`
	CompanyIntel    CompanyIntel               `json:"companyIntel" yaml:"companyIntel"`
	ID              string                     `json:"id" yaml:"id"`
	Company         string                     `json:"company" yaml:"company"`
	Role            string                     `json:"role" yaml:"role"`
	JDText          string                     `json:"jdText" yaml:"jdText"`
	ExtractedSkills ExtractedSkills            `json:"extractedSkills" yaml:"extractedSkills"`
	Checklist       []ChecklistRound           `json:"checklist" yaml:"checklist"`
	Plan7Days       []PlanDay                  `json:"plan7Days" yaml:"plan7Days"`
	Questions       []string                   `json:"questions" yaml:"questions"`
	RoundMapping    []RoundMapping             `json:"roundMapping" yaml:"roundMapping"`
	BaseScore       int                        `json:"baseScore" yaml:"baseScore"`
	FinalScore      int                        `json:"finalScore" yaml:"finalScore"`
	SchemaVersion   int                        `json:"schemaVersion" yaml:"schemaVersion"`
}

// RecomputeFinalScore derives FinalScore from BaseScore and the confidence map.
func (r *AnalysisRecord) RecomputeFinalScore() {
	r.FinalScore = FinalScore(r.BaseScore, r.SkillConfidenceMap)
}

// ConfidenceCounts returns how many skills are known and how many need practice.
func (r *AnalysisRecord) ConfidenceCounts() (know, practice int) {
	for _, c := range r.SkillConfidenceMap {
		if c == ConfidenceKnow {
			know++
		} else {
			practice++
		}
	}
	return know, practice
}

// WeakSkills lists skills still marked practice, in extraction order.
func (r *AnalysisRecord) WeakSkills() []string {
	var weak []string
	for _, skill := range r.ExtractedSkills.All() {
		if r.SkillConfidenceMap[skill] != ConfidenceKnow {
			weak = append(weak, skill)
		}
	}
	return weak
}

// Clone returns a deep copy.
func (r *AnalysisRecord) Clone() *AnalysisRecord {
	data, err := json.Marshal(r)
	if err != nil {
		panic(fmt.Sprintf("model: clone analysis record: %v", err))
	}
	var out AnalysisRecord
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("model: clone analysis record: %v", err))
	}
	if len(r.Extra) > 0 {
		out.Extra = make(map[string]json.RawMessage, len(r.Extra))
		for k, v := range r.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return &out
}

type recordAlias AnalysisRecord

// MarshalJSON writes the record followed by any preserved unknown fields.
func (r AnalysisRecord) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(recordAlias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return data, nil
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, known := merged[k]; !known {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
