package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		in      string
		want    Confidence
		wantErr bool
	}{
		{in: "know", want: ConfidenceKnow},
		{in: " Practice ", want: ConfidencePractice},
		{in: "KNOW", want: ConfidenceKnow},
		{in: "maybe", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseConfidence(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		confidence map[string]Confidence
		name       string
		base       int
		want       int
	}{
		{name: "no skills", base: 60, want: 60},
		{name: "all practice", base: 60, confidence: map[string]Confidence{"A": ConfidencePractice, "B": ConfidencePractice}, want: 56},
		{name: "mixed", base: 60, confidence: map[string]Confidence{"A": ConfidenceKnow, "B": ConfidencePractice}, want: 60},
		{name: "clamped high", base: 99, confidence: map[string]Confidence{"A": ConfidenceKnow, "B": ConfidenceKnow}, want: 100},
		{name: "clamped low", base: 1, confidence: map[string]Confidence{"A": ConfidencePractice}, want: 0},
		{name: "unknown values ignored", base: 50, confidence: map[string]Confidence{"A": "meh"}, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinalScore(tt.base, tt.confidence))
		})
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, ConfidencePractice, ConfidenceKnow.Toggle())
	assert.Equal(t, ConfidenceKnow, ConfidencePractice.Toggle())
	assert.Equal(t, ConfidenceKnow, Confidence("").Toggle())
}

func TestExtractedSkills(t *testing.T) {
	var s ExtractedSkills
	s.Set(CategoryWeb, []string{"React", "", "React", "Node.js"})
	s.Set(CategoryLanguages, []string{"TypeScript"})
	s.Set(CategoryOther, []string{"React"})

	n := s.Normalized()
	assert.Equal(t, []string{"React", "Node.js"}, n.Web)
	assert.NotNil(t, n.CoreCS)
	assert.Equal(t, []string{"TypeScript", "React", "Node.js"}, n.All())
	assert.True(t, n.Contains(CategoryWeb, "Node.js"))
	assert.False(t, n.Contains(CategoryData, "Node.js"))
	assert.True(t, n.HasConcreteSkills())

	fallback := NewExtractedSkills()
	fallback.Set(CategoryOther, []string{"Communication"})
	assert.False(t, fallback.HasConcreteSkills())

	data, err := json.Marshal(NewExtractedSkills())
	require.NoError(t, err)
	assert.JSONEq(t, `{"coreCS":[],"languages":[],"web":[],"data":[],"cloud":[],"testing":[],"other":[]}`, string(data))
}

func TestRecordHelpers(t *testing.T) {
	rec := &AnalysisRecord{
		ID:        "1",
		BaseScore: 70,
		SkillConfidenceMap: map[string]Confidence{
			"Java":   ConfidenceKnow,
			"SQL":    ConfidencePractice,
			"Docker": ConfidencePractice,
		},
	}
	rec.ExtractedSkills.Set(CategoryLanguages, []string{"Java"})
	rec.ExtractedSkills.Set(CategoryData, []string{"SQL"})
	rec.ExtractedSkills.Set(CategoryCloud, []string{"Docker"})

	rec.RecomputeFinalScore()
	assert.Equal(t, 68, rec.FinalScore)

	know, practice := rec.ConfidenceCounts()
	assert.Equal(t, 1, know)
	assert.Equal(t, 2, practice)
	assert.Equal(t, []string{"SQL", "Docker"}, rec.WeakSkills())
}

func TestRecordExtraFields(t *testing.T) {
	rec := AnalysisRecord{
		ID:      "1",
		Company: "Acme",
		Extra: map[string]json.RawMessage{
			"notes":   json.RawMessage(`"bring resume"`),
			"company": json.RawMessage(`"ignored"`),
		},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "bring resume", decoded["notes"])
	assert.Equal(t, "Acme", decoded["company"], "known fields win over extras")

	clone := rec.Clone()
	assert.Equal(t, rec.Extra["notes"], clone.Extra["notes"])
	clone.Extra["notes"][1] = 'X'
	assert.Equal(t, json.RawMessage(`"bring resume"`), rec.Extra["notes"], "clone does not share extra bytes")
}
