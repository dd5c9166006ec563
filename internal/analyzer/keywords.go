// Package analyzer turns a pasted job description into skills, preparation
// material and a readiness score. Every function here is pure.
package analyzer

import (
	"regexp"
	"strings"

	"github.com/Veraticus/placement-prep/internal/model"
)

// Keywords maps each category to the keywords recognized for it, in match
// order. The fallback category has no keywords.
var Keywords = map[model.Category][]string{
	model.CategoryCoreCS:    {"DSA", "OOP", "DBMS", "OS", "Networks"},
	model.CategoryLanguages: {"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go"},
	model.CategoryWeb:       {"React", "Next.js", "Node.js", "Express", "REST", "GraphQL"},
	model.CategoryData:      {"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis"},
	model.CategoryCloud:     {"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux"},
	model.CategoryTesting:   {"Selenium", "Cypress", "Playwright", "JUnit", "PyTest"},
}

// FallbackSkills fills the other bucket when nothing else matched.
var FallbackSkills = []string{"Communication", "Problem solving", "Basic coding", "Projects"}

var (
	nonWordRun    = regexp.MustCompile(`[\W_]+`)
	nonAlnumRun   = regexp.MustCompile(`[^a-z0-9]+`)
	keywordTokens = buildKeywordTokens()
)

func buildKeywordTokens() map[string][]string {
	tokens := make(map[string][]string)
	for _, list := range Keywords {
		for _, kw := range list {
			tokens[kw] = tokenize(kw)
		}
	}
	return tokens
}

// normalize collapses every non-alphanumeric run into one space and lower-cases.
func normalize(text string) string {
	return strings.ToLower(nonWordRun.ReplaceAllString(text, " "))
}

func tokenize(keyword string) []string {
	token := strings.TrimSpace(nonAlnumRun.ReplaceAllString(strings.ToLower(keyword), " "))
	if token == "" {
		return nil
	}
	return strings.Fields(token)
}

// ExtractSkills finds the known keywords in text.
//
// A keyword matches when any one of its tokens occurs anywhere in the
// normalized text. There is no word-boundary check, so short keywords such as
// "C" or "Go" match inside unrelated words.
func ExtractSkills(text string) model.ExtractedSkills {
	skills := model.NewExtractedSkills()
	normalized := normalize(text)

	for _, cat := range model.Categories {
		matched := []string{}
		for _, kw := range Keywords[cat] {
			if containsAnyToken(normalized, keywordTokens[kw]) {
				matched = append(matched, kw)
			}
		}
		skills.Set(cat, matched)
	}

	if !skills.HasConcreteSkills() {
		skills.Set(model.CategoryOther, append([]string(nil), FallbackSkills...))
	}

	return skills
}

func containsAnyToken(text string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
