package analyzer

import (
	"fmt"

	"github.com/Veraticus/placement-prep/internal/model"
)

// Round titles used by the preparation checklist.
const (
	RoundAptitude  = "Round 1: Aptitude / Basics"
	RoundDSACore   = "Round 2: DSA + Core CS"
	RoundTechnical = "Round 3: Tech interview (projects + stack)"
	RoundHR        = "Round 4: Managerial / HR"
)

const maxTechnicalItems = 6

var projectItems = []string{
	"Prepare 2-3 project talking points (architecture, challenges)",
	"Align resume bullets with the stack mentioned in JD",
	"Be ready to explain system trade-offs and design decisions",
	"Review framework-specific concepts for your stack",
}

// GenerateChecklist builds the four-round preparation checklist.
func GenerateChecklist(skills model.ExtractedSkills) []model.ChecklistRound {
	if !skills.HasConcreteSkills() {
		return fallbackChecklist()
	}

	dsaCore := []string{
		"Revise arrays, strings, and linked lists",
		"Practice sorting and searching algorithms",
		"Work on 10 medium DSA problems (recursion, DP)",
		"Review OOP design and common patterns",
		"Study DBMS fundamentals (normalization, joins)",
	}
	if skills.Contains(model.CategoryCoreCS, "OS") {
		dsaCore = append(dsaCore, "Review process scheduling and memory management")
	}
	if skills.Contains(model.CategoryCoreCS, "Networks") {
		dsaCore = append(dsaCore, "Review TCP/IP basics and HTTP")
	}

	technical := append([]string(nil), projectItems...)
	for _, skill := range stackSkills(skills) {
		technical = append(technical, fmt.Sprintf("Revise %s", skill))
	}
	if len(technical) > maxTechnicalItems {
		technical = technical[:maxTechnicalItems]
	}

	return []model.ChecklistRound{
		{
			RoundTitle: RoundAptitude,
			Items: []string{
				"Practice numerical and logical reasoning problems",
				"Brush up on basic math and time management",
				"Review core programming constructs (loops, arrays, strings)",
				"Solve 5 short coding puzzles under time limit",
				"Read common aptitude question patterns",
			},
		},
		{RoundTitle: RoundDSACore, Items: dsaCore},
		{RoundTitle: RoundTechnical, Items: technical},
		{
			RoundTitle: RoundHR,
			Items: []string{
				"Prepare STAR stories for behavioral questions",
				"Have clear motivations and role expectations",
				"Discuss strengths, weaknesses, and learnings",
				"Prepare questions to ask the interviewer",
				"Align career goals with company mission",
			},
		},
	}
}

// stackSkills is web, languages, data and cloud skills in that order.
func stackSkills(skills model.ExtractedSkills) []string {
	var stack []string
	for _, cat := range []model.Category{model.CategoryWeb, model.CategoryLanguages, model.CategoryData, model.CategoryCloud} {
		stack = append(stack, skills.Get(cat)...)
	}
	return stack
}

func fallbackChecklist() []model.ChecklistRound {
	return []model.ChecklistRound{
		{
			RoundTitle: RoundAptitude,
			Items: []string{
				"Practice quantitative aptitude and logical reasoning",
				"Work through verbal ability and reading comprehension sets",
				"Take one timed aptitude mock test",
			},
		},
		{
			RoundTitle: RoundDSACore,
			Items: []string{
				"Learn the basics of one programming language well",
				"Solve easy problems on arrays and strings",
				"Understand time and space complexity",
			},
		},
		{
			RoundTitle: RoundTechnical,
			Items: []string{
				"Prepare to walk through one project end to end",
				"Explain what you learned from coursework and internships",
				"Practice explaining a technical idea in simple words",
			},
		},
		{
			RoundTitle: RoundHR,
			Items: []string{
				"Prepare a clear self-introduction",
				"Practice answering with the STAR method",
				"Show willingness to learn and communicate clearly",
			},
		},
	}
}
