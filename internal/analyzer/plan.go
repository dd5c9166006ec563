package analyzer

import "github.com/Veraticus/placement-prep/internal/model"

// PlanLength is the number of days in the study plan.
const PlanLength = 7

// GeneratePlan builds the 7-day study plan.
func GeneratePlan(skills model.ExtractedSkills) []model.PlanDay {
	plan := []model.PlanDay{
		{Day: 1, Focus: "Basics & Foundation", Tasks: []string{"Math fundamentals", "Syntax review", "Simple problems"}},
		{Day: 2, Focus: "Core CS", Tasks: []string{"Data structures review", "Complexity analysis"}},
		{Day: 3, Focus: "DSA Intensive", Tasks: []string{"Array/Strings problems", "Binary search, two pointers"}},
		{Day: 4, Focus: "DSA Intensive", Tasks: []string{"Trees & Graphs practice", "Greedy & DP"}},
		{Day: 5, Focus: "Project & Resume", Tasks: []string{"Align resume with JD", "Prepare project talking points"}},
		{Day: 6, Focus: "Mock Interviews", Tasks: []string{"Simulate interview", "Review feedback"}},
		{Day: 7, Focus: "Revision", Tasks: []string{"Revise weak areas", "Plan next steps"}},
	}

	if len(skills.Web) > 0 {
		plan[4].Tasks = append([]string{"Frontend concepts: React lifecycle & hooks"}, plan[4].Tasks...)
	}
	if len(skills.Data) > 0 {
		plan[3].Tasks = append(plan[3].Tasks, "Practice SQL queries and joins")
	}

	if !skills.HasConcreteSkills() {
		plan[0].Tasks = []string{"Aptitude warm-up", "Basic programming syntax", "Communication practice"}
		plan[1].Tasks = []string{"Fundamentals of one language", "Simple logic problems"}
		plan[2].Tasks = []string{"Easy array and string problems", "Explain your solutions out loud"}
		plan[4].Tasks = []string{"Write a one-page resume", "Prepare your self-introduction"}
	}

	return plan
}
