package analyzer

import "github.com/Veraticus/placement-prep/internal/model"

// SkillMix is the part of the skill set that drives the round mapping.
type SkillMix string

// Skill mixes, checked in this order.
const (
	MixDSA     SkillMix = "dsa"
	MixWeb     SkillMix = "web"
	MixGeneral SkillMix = "general"
)

type roundKey struct {
	enterprise bool
	mix        SkillMix
}

// roundTable is the full decision table for GenerateRoundMapping.
var roundTable = map[roundKey][]model.RoundMapping{
	{enterprise: true, mix: MixDSA}: {
		{RoundTitle: "Round 1: Online Assessment", FocusAreas: []string{"DSA", "Aptitude"}, Rationale: "Large companies filter at scale with timed coding and aptitude tests."},
		{RoundTitle: "Round 2: Technical - DSA", FocusAreas: []string{"Data structures", "Algorithms", "Complexity"}, Rationale: "The JD calls out DSA, so expect whiteboard-style problem solving."},
		{RoundTitle: "Round 3: Technical - Core CS + Projects", FocusAreas: []string{"OS", "DBMS", "Networks", "Projects"}, Rationale: "Enterprise panels verify fundamentals and how you applied them."},
		{RoundTitle: "Round 4: HR / Managerial", FocusAreas: []string{"Behavioral", "Culture fit", "Expectations"}, Rationale: "Final check on communication, motivation and role fit."},
	},
	{enterprise: true, mix: MixWeb}: {
		{RoundTitle: "Round 1: Online Assessment", FocusAreas: []string{"Aptitude", "Coding basics"}, Rationale: "Standard first filter for high-volume hiring."},
		{RoundTitle: "Round 2: Technical - Stack", FocusAreas: []string{"Web fundamentals", "Frameworks in the JD", "APIs"}, Rationale: "The JD is stack-heavy, so expect depth on the named technologies."},
		{RoundTitle: "Round 3: System Design Basics", FocusAreas: []string{"Architecture", "Scalability", "Trade-offs"}, Rationale: "Enterprise teams check you can reason about larger systems."},
		{RoundTitle: "Round 4: HR / Managerial", FocusAreas: []string{"Behavioral", "Culture fit"}, Rationale: "Final check on communication and role fit."},
	},
	{enterprise: true, mix: MixGeneral}: {
		{RoundTitle: "Round 1: Aptitude Test", FocusAreas: []string{"Quantitative", "Logical", "Verbal"}, Rationale: "Generic JDs at large companies usually start with aptitude screening."},
		{RoundTitle: "Round 2: Technical Interview", FocusAreas: []string{"Programming basics", "Projects"}, Rationale: "Checks baseline coding ability and what you have built."},
		{RoundTitle: "Round 3: HR Interview", FocusAreas: []string{"Behavioral", "Communication"}, Rationale: "Assesses attitude, communication and long-term fit."},
	},
	{enterprise: false, mix: MixDSA}: {
		{RoundTitle: "Round 1: Coding Challenge", FocusAreas: []string{"DSA", "Problem solving"}, Rationale: "Smaller teams still screen problem solving when the JD asks for DSA."},
		{RoundTitle: "Round 2: Technical Discussion", FocusAreas: []string{"Approach", "Code quality", "Projects"}, Rationale: "Engineers dig into how you think and write code."},
		{RoundTitle: "Round 3: Culture Fit", FocusAreas: []string{"Ownership", "Team fit"}, Rationale: "Small teams hire for ownership and collaboration."},
	},
	{enterprise: false, mix: MixWeb}: {
		{RoundTitle: "Round 1: Screening Call", FocusAreas: []string{"Background", "Stack experience"}, Rationale: "A quick check that your experience matches the stack."},
		{RoundTitle: "Round 2: Take-home Assignment", FocusAreas: []string{"Building features", "Code structure"}, Rationale: "Startups want proof you can ship with their tools."},
		{RoundTitle: "Round 3: Technical Deep Dive", FocusAreas: []string{"Assignment review", "Frameworks", "APIs"}, Rationale: "Walk through your decisions and the trade-offs you made."},
		{RoundTitle: "Round 4: Founder / Culture Fit", FocusAreas: []string{"Ownership", "Pace", "Motivation"}, Rationale: "Early teams check you can work with ambiguity."},
	},
	{enterprise: false, mix: MixGeneral}: {
		{RoundTitle: "Round 1: Screening Call", FocusAreas: []string{"Background", "Motivation"}, Rationale: "Establishes interest and basic fit."},
		{RoundTitle: "Round 2: Technical Conversation", FocusAreas: []string{"Fundamentals", "Projects"}, Rationale: "Gauges your baseline and ability to learn."},
		{RoundTitle: "Round 3: Culture Fit", FocusAreas: []string{"Communication", "Team fit"}, Rationale: "Small teams weigh attitude as much as skill."},
	},
}

// DetectSkillMix reports which part of the skill set dominates round planning.
// DSA wins over web skills.
func DetectSkillMix(skills model.ExtractedSkills) SkillMix {
	switch {
	case skills.Contains(model.CategoryCoreCS, "DSA"):
		return MixDSA
	case len(skills.Web) > 0:
		return MixWeb
	default:
		return MixGeneral
	}
}

// GenerateRoundMapping picks the expected interview rounds from the company
// size and the skill mix.
func GenerateRoundMapping(skills model.ExtractedSkills, intel model.CompanyIntel) []model.RoundMapping {
	key := roundKey{
		enterprise: intel.Size == model.SizeEnterprise,
		mix:        DetectSkillMix(skills),
	}
	template := roundTable[key]

	rounds := make([]model.RoundMapping, len(template))
	for i, r := range template {
		rounds[i] = model.RoundMapping{
			RoundTitle: r.RoundTitle,
			FocusAreas: append([]string(nil), r.FocusAreas...),
			Rationale:  r.Rationale,
		}
	}
	return rounds
}
