package analyzer

import "github.com/Veraticus/placement-prep/internal/model"

// QuestionCount is the exact number of questions produced.
const QuestionCount = 10

const fillerQuestion = "Prepare to discuss your projects and technical decisions."

type skillQuestion struct {
	category model.Category
	skill    string
	question string
}

// skillQuestions is evaluated in order; the order is the priority.
var skillQuestions = []skillQuestion{
	{model.CategoryCoreCS, "DSA", "How would you optimize search in sorted data?"},
	{model.CategoryCoreCS, "OOP", "Explain SOLID principles and give examples."},
	{model.CategoryLanguages, "Java", "Explain the Java memory model and garbage collection basics."},
	{model.CategoryLanguages, "Python", "What are Python list comprehensions and when to use them?"},
	{model.CategoryWeb, "React", "Explain state management options in React and trade-offs."},
	{model.CategoryWeb, "Node.js", "How do you handle concurrency in Node.js?"},
	{model.CategoryData, "SQL", "Explain indexing and when it helps."},
	{model.CategoryData, "MongoDB", "Describe differences between SQL and NoSQL databases."},
	{model.CategoryCloud, "Docker", "How would you containerize an application and manage configuration?"},
	{model.CategoryCloud, "AWS", "Which AWS services would you use for a scalable web application?"},
	{model.CategoryTesting, "Selenium", "How do you design end-to-end tests for a web application?"},
}

var genericQuestions = []string{
	"Describe a challenging bug you fixed and how you approached it.",
	"How do you prioritize tasks under tight deadlines?",
	"Explain a system you designed and the trade-offs you made.",
}

// GenerateQuestions returns exactly QuestionCount interview questions.
func GenerateQuestions(skills model.ExtractedSkills) []string {
	questions := make([]string, 0, QuestionCount+len(genericQuestions))
	for _, sq := range skillQuestions {
		if skills.Contains(sq.category, sq.skill) {
			questions = append(questions, sq.question)
		}
	}
	questions = append(questions, genericQuestions...)
	return PadQuestions(questions)
}

// PadQuestions fills with a generic question and truncates so the result has
// exactly QuestionCount entries.
func PadQuestions(questions []string) []string {
	out := append([]string(nil), questions...)
	for len(out) < QuestionCount {
		out = append(out, fillerQuestion)
	}
	return out[:QuestionCount]
}
