package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/placement-prep/internal/model"
)

const frontendJD = "Frontend Engineer experienced with React, TypeScript, Node.js. Strong SQL skills and familiarity with AWS."

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		want     map[model.Category][]string
		name     string
		text     string
		contains map[model.Category][]string
	}{
		{
			name: "frontend JD",
			text: frontendJD,
			contains: map[model.Category][]string{
				model.CategoryWeb:       {"React", "Node.js"},
				model.CategoryLanguages: {"TypeScript"},
				model.CategoryData:      {"SQL"},
				model.CategoryCloud:     {"AWS"},
			},
		},
		{
			name: "empty text falls back",
			text: "",
			want: map[model.Category][]string{
				model.CategoryOther: FallbackSkills,
			},
		},
		{
			name: "no keyword falls back",
			text: "Need a friendly helper",
			want: map[model.Category][]string{
				model.CategoryOther: FallbackSkills,
			},
		},
		{
			name: "punctuation is ignored",
			text: "Kubernetes/Docker; CI-CD pipelines",
			contains: map[model.Category][]string{
				model.CategoryCloud: {"Docker", "Kubernetes", "CI/CD"},
			},
		},
		{
			name: "case insensitive",
			text: "PYTHON and pytest",
			contains: map[model.Category][]string{
				model.CategoryLanguages: {"Python"},
				model.CategoryTesting:   {"PyTest"},
			},
		},
		{
			name: "short keywords match inside words",
			text: "react",
			contains: map[model.Category][]string{
				model.CategoryLanguages: {"C", "C++", "C#"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSkills(tt.text)

			for _, cat := range model.Categories {
				assert.NotNil(t, got.Get(cat), "category %s must be present", cat)
			}
			for cat, skills := range tt.contains {
				for _, skill := range skills {
					assert.Contains(t, got.Get(cat), skill, "category %s", cat)
				}
			}
			if tt.want != nil {
				for _, cat := range model.Categories {
					want := tt.want[cat]
					if want == nil {
						assert.Empty(t, got.Get(cat), "category %s", cat)
						continue
					}
					assert.Equal(t, want, got.Get(cat))
				}
			}
		})
	}
}

func TestExtractSkills_PreservesKeywordOrder(t *testing.T) {
	got := ExtractSkills("redis, mongodb and sql")
	assert.Equal(t, []string{"SQL", "MongoDB", "Redis"}, got.Data)
	assert.Empty(t, got.Other)
}

func TestExtractSkills_Deterministic(t *testing.T) {
	texts := []string{"", frontendJD, strings.Repeat("Java Docker ", 200)}
	for _, text := range texts {
		assert.Equal(t, ExtractSkills(text), ExtractSkills(text))
	}
}

func TestComputeReadiness(t *testing.T) {
	long := strings.Repeat("a", LongJDThreshold+1)

	tests := []struct {
		name    string
		skills  model.ExtractedSkills
		company string
		role    string
		jd      string
		want    int
	}{
		{name: "nothing", skills: ExtractSkills(""), want: 35},
		{name: "company and role", skills: ExtractSkills(""), company: "Acme", role: "SDE", want: 55},
		{name: "whitespace company ignored", skills: ExtractSkills(""), company: "   ", want: 35},
		{name: "long text bonus", skills: ExtractSkills(""), jd: long, want: 45},
		{name: "exactly threshold gets no bonus", skills: ExtractSkills(""), jd: strings.Repeat("a", LongJDThreshold), want: 35},
		{
			name:    "frontend scenario",
			skills:  ExtractSkills(frontendJD),
			company: "Acme Corp",
			role:    "Frontend Engineer",
			jd:      frontendJD,
			want:    75,
		},
		{
			name: "category bonus capped",
			skills: model.ExtractedSkills{
				CoreCS: []string{"DSA"}, Languages: []string{"Go"}, Web: []string{"React"},
				Data: []string{"SQL"}, Cloud: []string{"AWS"}, Testing: []string{"JUnit"},
				Other: []string{"Communication"},
			},
			company: "Google",
			role:    "SDE",
			jd:      long,
			want:    95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeReadiness(tt.skills, tt.company, tt.role, tt.jd)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, ComputeReadiness(tt.skills, tt.company, tt.role, tt.jd))
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestGenerateQuestions_AlwaysTen(t *testing.T) {
	all := model.NewExtractedSkills()
	for cat, kws := range Keywords {
		all.Set(cat, kws)
	}

	inputs := map[string]model.ExtractedSkills{
		"none":     ExtractSkills(""),
		"frontend": ExtractSkills(frontendJD),
		"all":      all,
	}
	for name, skills := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.Len(t, GenerateQuestions(skills), QuestionCount)
		})
	}
}

func TestGenerateQuestions_Order(t *testing.T) {
	qs := GenerateQuestions(ExtractSkills(frontendJD))

	assert.Equal(t, "Explain state management options in React and trade-offs.", qs[0])
	assert.Equal(t, "How do you handle concurrency in Node.js?", qs[1])
	assert.Equal(t, "Explain indexing and when it helps.", qs[2])
	assert.Equal(t, "Which AWS services would you use for a scalable web application?", qs[3])
	assert.Equal(t, genericQuestions, qs[4:7])
	for _, q := range qs[7:] {
		assert.Equal(t, fillerQuestion, q)
	}
}

func TestGenerateQuestions_TruncatesSkillQuestions(t *testing.T) {
	all := model.NewExtractedSkills()
	for cat, kws := range Keywords {
		all.Set(cat, kws)
	}
	qs := GenerateQuestions(all)
	require.Len(t, qs, QuestionCount)
	assert.Equal(t, skillQuestions[0].question, qs[0])
	assert.Equal(t, skillQuestions[9].question, qs[9])
}

func TestGeneratePlan(t *testing.T) {
	tests := []struct {
		check  func(*testing.T, []model.PlanDay)
		name   string
		skills model.ExtractedSkills
	}{
		{
			name:   "web and data adapt days 5 and 4",
			skills: ExtractSkills(frontendJD),
			check: func(t *testing.T, plan []model.PlanDay) {
				t.Helper()
				assert.Equal(t, "Frontend concepts: React lifecycle & hooks", plan[4].Tasks[0])
				assert.Equal(t, "Practice SQL queries and joins", plan[3].Tasks[len(plan[3].Tasks)-1])
			},
		},
		{
			name:   "core only leaves defaults",
			skills: ExtractSkills("DSA and OOP"),
			check: func(t *testing.T, plan []model.PlanDay) {
				t.Helper()
				assert.Equal(t, []string{"Align resume with JD", "Prepare project talking points"}, plan[4].Tasks)
				assert.Equal(t, []string{"Trees & Graphs practice", "Greedy & DP"}, plan[3].Tasks)
			},
		},
		{
			name:   "fallback overwrites days 1, 2, 3 and 5",
			skills: ExtractSkills(""),
			check: func(t *testing.T, plan []model.PlanDay) {
				t.Helper()
				assert.Contains(t, plan[0].Tasks, "Communication practice")
				assert.Contains(t, plan[4].Tasks, "Prepare your self-introduction")
				assert.Equal(t, []string{"Trees & Graphs practice", "Greedy & DP"}, plan[3].Tasks)
				assert.Equal(t, []string{"Simulate interview", "Review feedback"}, plan[5].Tasks)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := GeneratePlan(tt.skills)
			require.Len(t, plan, PlanLength)
			for i, day := range plan {
				assert.Equal(t, i+1, day.Day)
				assert.NotEmpty(t, day.Focus)
			}
			tt.check(t, plan)
		})
	}
}

func TestGenerateChecklist(t *testing.T) {
	t.Run("titles are fixed", func(t *testing.T) {
		rounds := GenerateChecklist(ExtractSkills(frontendJD))
		require.Len(t, rounds, 4)
		assert.Equal(t, RoundAptitude, rounds[0].RoundTitle)
		assert.Equal(t, RoundDSACore, rounds[1].RoundTitle)
		assert.Equal(t, RoundTechnical, rounds[2].RoundTitle)
		assert.Equal(t, RoundHR, rounds[3].RoundTitle)
	})

	t.Run("technical round is capped at six", func(t *testing.T) {
		rounds := GenerateChecklist(ExtractSkills(frontendJD))
		tech := rounds[2].Items
		require.Len(t, tech, maxTechnicalItems)
		assert.Equal(t, projectItems, tech[:4])
		assert.Equal(t, []string{"Revise React", "Revise Next.js"}, tech[4:])
	})

	t.Run("os and networks extend round two", func(t *testing.T) {
		rounds := GenerateChecklist(ExtractSkills("Knowledge of OS and Networks"))
		assert.Contains(t, rounds[1].Items, "Review process scheduling and memory management")
		assert.Contains(t, rounds[1].Items, "Review TCP/IP basics and HTTP")
	})

	t.Run("fallback replaces every round", func(t *testing.T) {
		rounds := GenerateChecklist(ExtractSkills(""))
		require.Len(t, rounds, 4)
		assert.Equal(t, fallbackChecklist(), rounds)
	})
}

func TestGenerateCompanyIntel(t *testing.T) {
	tests := []struct {
		name     string
		company  string
		industry string
		size     model.CompanySize
	}{
		{name: "known enterprise", company: "Google", industry: DefaultIndustry, size: model.SizeEnterprise},
		{name: "finance startup", company: "Lumen Capital", industry: "Financial Services", size: model.SizeStartup},
		{name: "mid-size systems", company: "MedCare Systems", industry: "Healthcare", size: model.SizeMidSize},
		{name: "education solutions", company: "BrightEdu Solutions", industry: "Education", size: model.SizeMidSize},
		{name: "unknown", company: "Acme Corp", industry: DefaultIndustry, size: model.SizeStartup},
		{name: "empty", company: "", industry: DefaultIndustry, size: model.SizeStartup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intel := GenerateCompanyIntel(tt.company)
			assert.Equal(t, tt.company, intel.Name)
			assert.Equal(t, tt.industry, intel.Industry)
			assert.Equal(t, tt.size, intel.Size)
			assert.NotEmpty(t, intel.HiringFocus)
			assert.Equal(t, IntelNote, intel.Note)
		})
	}
}

func TestGenerateRoundMapping(t *testing.T) {
	enterprise := GenerateCompanyIntel("Microsoft")
	startup := GenerateCompanyIntel("")

	tests := []struct {
		name       string
		jd         string
		intel      model.CompanyIntel
		firstTitle string
		count      int
	}{
		{name: "enterprise dsa", jd: "Strong DSA and React", intel: enterprise, count: 4, firstTitle: "Round 1: Online Assessment"},
		{name: "enterprise web", jd: "GraphQL services", intel: enterprise, count: 4, firstTitle: "Round 1: Online Assessment"},
		{name: "enterprise general", jd: "", intel: enterprise, count: 3, firstTitle: "Round 1: Aptitude Test"},
		{name: "startup dsa", jd: "DSA", intel: startup, count: 3, firstTitle: "Round 1: Coding Challenge"},
		{name: "startup web", jd: "GraphQL services", intel: startup, count: 4, firstTitle: "Round 1: Screening Call"},
		{name: "startup general", jd: "", intel: startup, count: 3, firstTitle: "Round 1: Screening Call"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounds := GenerateRoundMapping(ExtractSkills(tt.jd), tt.intel)
			require.Len(t, rounds, tt.count)
			assert.Equal(t, tt.firstTitle, rounds[0].RoundTitle)
			for _, r := range rounds {
				assert.NotEmpty(t, r.FocusAreas)
				assert.NotEmpty(t, r.Rationale)
			}
		})
	}

	t.Run("enterprise web goes through system design", func(t *testing.T) {
		rounds := GenerateRoundMapping(ExtractSkills("GraphQL services"), enterprise)
		assert.Equal(t, "Round 3: System Design Basics", rounds[2].RoundTitle)
	})

	t.Run("result does not alias the table", func(t *testing.T) {
		rounds := GenerateRoundMapping(ExtractSkills(""), startup)
		rounds[0].FocusAreas[0] = "changed"
		again := GenerateRoundMapping(ExtractSkills(""), startup)
		assert.Equal(t, "Background", again[0].FocusAreas[0])
	})
}

func TestAnalyze(t *testing.T) {
	rec := Analyze(Input{Company: "Acme Corp", Role: "Frontend Engineer", JDText: frontendJD})

	assert.Equal(t, 75, rec.BaseScore)
	assert.Len(t, rec.Questions, QuestionCount)
	assert.Len(t, rec.Plan7Days, PlanLength)
	assert.Len(t, rec.Checklist, 4)
	assert.Equal(t, model.CurrentSchemaVersion, rec.SchemaVersion)

	skills := rec.ExtractedSkills.All()
	require.Len(t, rec.SkillConfidenceMap, len(skills))
	for _, skill := range skills {
		assert.Equal(t, model.ConfidencePractice, rec.SkillConfidenceMap[skill])
	}
	assert.Equal(t, model.ClampScore(75-2*len(skills)), rec.FinalScore)
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		wantErr      error
		name         string
		in           Input
		wantWarnings int
	}{
		{name: "empty JD", in: Input{}, wantErr: ErrEmptyJobDescription},
		{name: "blank JD", in: Input{JDText: " \n\t "}, wantErr: ErrEmptyJobDescription},
		{name: "short JD warns", in: Input{JDText: frontendJD}, wantWarnings: 1},
		{name: "long JD", in: Input{JDText: strings.Repeat("React developer. ", 20)}},
		{name: "company too long", in: Input{Company: strings.Repeat("x", 201), JDText: "React"}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings, err := ValidateInput(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}
