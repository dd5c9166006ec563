package history

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/Veraticus/placement-prep/internal/analyzer"
	"github.com/Veraticus/placement-prep/internal/model"
)

var knownFields = map[string]bool{
	"id": true, "createdAt": true, "updatedAt": true,
	"company": true, "role": true, "jdText": true,
	"extractedSkills": true, "checklist": true, "plan7Days": true,
	"questions": true, "companyIntel": true, "roundMapping": true,
	"baseScore": true, "skillConfidenceMap": true, "finalScore": true,
	"schemaVersion": true,
}

// decodeField unmarshals doc[key] into dst. dst is left untouched when the
// key is missing or holds the wrong type.
func decodeField[T any](doc document, key string, dst *T) bool {
	raw, ok := doc[key]
	if !ok {
		return false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	*dst = v
	return true
}

// documentID returns the record id, accepting numbers written by old clients.
func documentID(doc document) (string, bool) {
	var id string
	if decodeField(doc, "id", &id) {
		id = strings.TrimSpace(id)
		return id, id != ""
	}
	var num json.Number
	if decodeField(doc, "id", &num) {
		return num.String(), true
	}
	return "", false
}

// normalize turns an upgraded document into a complete record. Every field
// is decoded on its own; a bad field is replaced by its default instead of
// rejecting the record. normalize(marshal(normalize(d))) == normalize(d).
func normalize(doc document, now time.Time) *model.AnalysisRecord {
	rec := &model.AnalysisRecord{SchemaVersion: model.CurrentSchemaVersion}
	rec.ID, _ = documentID(doc)

	decodeField(doc, "company", &rec.Company)
	decodeField(doc, "role", &rec.Role)
	decodeField(doc, "jdText", &rec.JDText)

	if !decodeField(doc, "createdAt", &rec.CreatedAt) || rec.CreatedAt.IsZero() {
		if t, ok := idTime(rec.ID); ok {
			rec.CreatedAt = t
		} else {
			rec.CreatedAt = now
		}
	}
	if !decodeField(doc, "updatedAt", &rec.UpdatedAt) || rec.UpdatedAt.Before(rec.CreatedAt) {
		rec.UpdatedAt = rec.CreatedAt
	}

	rec.ExtractedSkills = normalizeSkills(doc, rec.JDText)

	if !decodeField(doc, "checklist", &rec.Checklist) || len(rec.Checklist) == 0 {
		rec.Checklist = analyzer.GenerateChecklist(rec.ExtractedSkills)
	}
	for i := range rec.Checklist {
		if rec.Checklist[i].Items == nil {
			rec.Checklist[i].Items = []string{}
		}
	}

	if !decodeField(doc, "plan7Days", &rec.Plan7Days) || len(rec.Plan7Days) != analyzer.PlanLength {
		rec.Plan7Days = analyzer.GeneratePlan(rec.ExtractedSkills)
	}
	for i := range rec.Plan7Days {
		rec.Plan7Days[i].Day = i + 1
		if rec.Plan7Days[i].Tasks == nil {
			rec.Plan7Days[i].Tasks = []string{}
		}
	}

	if !decodeField(doc, "questions", &rec.Questions) || len(rec.Questions) == 0 {
		rec.Questions = analyzer.GenerateQuestions(rec.ExtractedSkills)
	}
	rec.Questions = analyzer.PadQuestions(rec.Questions)

	if !decodeField(doc, "companyIntel", &rec.CompanyIntel) || rec.CompanyIntel.Industry == "" || rec.CompanyIntel.Size == "" {
		rec.CompanyIntel = analyzer.GenerateCompanyIntel(rec.Company)
	}
	if rec.CompanyIntel.Note == "" {
		rec.CompanyIntel.Note = analyzer.IntelNote
	}

	if !decodeField(doc, "roundMapping", &rec.RoundMapping) || len(rec.RoundMapping) == 0 {
		rec.RoundMapping = analyzer.GenerateRoundMapping(rec.ExtractedSkills, rec.CompanyIntel)
	}
	for i := range rec.RoundMapping {
		if rec.RoundMapping[i].FocusAreas == nil {
			rec.RoundMapping[i].FocusAreas = []string{}
		}
	}

	var base float64
	if decodeField(doc, "baseScore", &base) && !math.IsNaN(base) {
		rec.BaseScore = int(math.Round(math.Max(0, math.Min(100, base))))
	} else {
		rec.BaseScore = analyzer.ComputeReadiness(rec.ExtractedSkills, rec.Company, rec.Role, rec.JDText)
	}

	rec.SkillConfidenceMap = normalizeConfidence(doc, rec.ExtractedSkills)
	rec.RecomputeFinalScore()

	for key, raw := range doc {
		if knownFields[key] {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]json.RawMessage)
		}
		rec.Extra[key] = raw
	}

	return rec
}

// normalizeSkills decodes each category separately. When the record has no
// skills at all they are extracted again from the stored JD text.
func normalizeSkills(doc document, jdText string) model.ExtractedSkills {
	var raw document
	if !decodeField(doc, "extractedSkills", &raw) || raw == nil {
		return analyzer.ExtractSkills(jdText)
	}

	skills := model.NewExtractedSkills()
	for _, cat := range model.Categories {
		var list []string
		if decodeField(raw, string(cat), &list) {
			skills.Set(cat, list)
		}
	}
	return skills.Normalized()
}

// normalizeConfidence keeps a valid flag for every extracted skill and
// defaults the rest to practice. Flags for skills no longer extracted are
// dropped so they cannot move the score.
func normalizeConfidence(doc document, skills model.ExtractedSkills) map[string]model.Confidence {
	var stored map[string]string
	decodeField(doc, "skillConfidenceMap", &stored)

	out := make(map[string]model.Confidence)
	for _, skill := range skills.All() {
		c, err := model.ParseConfidence(stored[skill])
		if err != nil {
			c = model.ConfidencePractice
		}
		out[skill] = c
	}
	return out
}

// toDocument converts a typed record into the stored document form.
func toDocument(rec *model.AnalysisRecord) (document, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
