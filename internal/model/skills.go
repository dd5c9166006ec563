// Package model defines the core domain models used throughout the application.
package model

// Category names a bucket of recognized skills.
type Category string

// Skill categories, in display order.
const (
	CategoryCoreCS    Category = "coreCS"
	CategoryLanguages Category = "languages"
	CategoryWeb       Category = "web"
	CategoryData      Category = "data"
	CategoryCloud     Category = "cloud"
	CategoryTesting   Category = "testing"
	CategoryOther     Category = "other"
)

// Categories lists every category in its fixed order.
var Categories = []Category{
	CategoryCoreCS,
	CategoryLanguages,
	CategoryWeb,
	CategoryData,
	CategoryCloud,
	CategoryTesting,
	CategoryOther,
}

// DisplayName returns a human readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryCoreCS:
		return "Core CS"
	case CategoryLanguages:
		return "Languages"
	case CategoryWeb:
		return "Web"
	case CategoryData:
		return "Data"
	case CategoryCloud:
		return "Cloud/DevOps"
	case CategoryTesting:
		return "Testing"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// ExtractedSkills holds the matched keywords per category.
type ExtractedSkills struct {
	CoreCS    []string `json:"coreCS" yaml:"coreCS"`
	Languages []string `json:"languages" yaml:"languages"`
	Web       []string `json:"web" yaml:"web"`
	Data      []string `json:"data" yaml:"data"`
	Cloud     []string `json:"cloud" yaml:"cloud"`
	Testing   []string `json:"testing" yaml:"testing"`
	Other     []string `json:"other" yaml:"other"`
}

// NewExtractedSkills returns a value with every category present and empty.
func NewExtractedSkills() ExtractedSkills {
	var s ExtractedSkills
	s.fill()
	return s
}

func (s *ExtractedSkills) fill() {
	for _, cat := range Categories {
		if p := s.slot(cat); *p == nil {
			*p = []string{}
		}
	}
}

// Normalized returns a copy with every category non-nil and without blank or
// repeated entries.
func (s ExtractedSkills) Normalized() ExtractedSkills {
	out := NewExtractedSkills()
	for _, cat := range Categories {
		seen := make(map[string]bool)
		for _, skill := range s.Get(cat) {
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true
			out.Set(cat, append(out.Get(cat), skill))
		}
	}
	return out
}

func (s *ExtractedSkills) slot(cat Category) *[]string {
	switch cat {
	case CategoryCoreCS:
		return &s.CoreCS
	case CategoryLanguages:
		return &s.Languages
	case CategoryWeb:
		return &s.Web
	case CategoryData:
		return &s.Data
	case CategoryCloud:
		return &s.Cloud
	case CategoryTesting:
		return &s.Testing
	default:
		return &s.Other
	}
}

// Get returns the skills matched for a category.
func (s ExtractedSkills) Get(cat Category) []string {
	return *s.slot(cat)
}

// Set replaces the skills of a category.
func (s *ExtractedSkills) Set(cat Category, skills []string) {
	*s.slot(cat) = skills
}

// Contains reports whether skill was matched in cat.
func (s ExtractedSkills) Contains(cat Category, skill string) bool {
	for _, have := range s.Get(cat) {
		if have == skill {
			return true
		}
	}
	return false
}

// All flattens every category in order. A skill listed in two categories
// appears once.
func (s ExtractedSkills) All() []string {
	var all []string
	seen := make(map[string]bool)
	for _, cat := range Categories {
		for _, skill := range s.Get(cat) {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			all = append(all, skill)
		}
	}
	return all
}

// HasConcreteSkills reports whether any category other than the fallback
// bucket matched.
func (s ExtractedSkills) HasConcreteSkills() bool {
	for _, cat := range Categories {
		if cat == CategoryOther {
			continue
		}
		if len(s.Get(cat)) > 0 {
			return true
		}
	}
	return false
}
