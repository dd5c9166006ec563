package analyzer

import (
	"strings"

	"github.com/Veraticus/placement-prep/internal/model"
)

// IntelNote labels company intel as a guess.
const IntelNote = "Demo heuristic based on the company name; not verified company data."

// DefaultIndustry is used when no industry keyword matches.
const DefaultIndustry = "Technology Services"

var industryKeywords = []struct {
	industry string
	keywords []string
}{
	{"Financial Services", []string{"bank", "finance", "financial", "capital", "invest", "insurance", "fintech", "payments"}},
	{"Healthcare", []string{"health", "medical", "pharma", "hospital", "clinic", "biotech", "care"}},
	{"Education", []string{"edu", "learning", "school", "academy", "university", "tutor", "kodnest"}},
}

var enterpriseNames = []string{
	"google", "microsoft", "amazon", "meta", "apple", "netflix", "adobe", "oracle",
	"ibm", "intel", "cisco", "salesforce", "infosys", "tcs", "wipro", "accenture",
	"cognizant", "capgemini", "deloitte", "hcl", "tech mahindra", "jpmorgan", "goldman sachs",
}

var hiringFocus = map[model.CompanySize]string{
	model.SizeEnterprise: "Structured hiring with online assessments and strong emphasis on DSA and core CS fundamentals. Expect standardized rounds and consistent evaluation across candidates.",
	model.SizeMidSize:    "Balanced hiring that mixes problem solving with practical stack knowledge. Expect questions on the projects and tools named in the JD.",
	model.SizeStartup:    "Practical hiring focused on what you can build. Expect take-home tasks or live coding on the actual stack, plus ownership and culture fit.",
}

// GenerateCompanyIntel guesses industry and size from the company name.
func GenerateCompanyIntel(name string) model.CompanyIntel {
	name = strings.TrimSpace(name)
	lower := strings.ToLower(name)

	industry := DefaultIndustry
	if lower != "" {
		for _, entry := range industryKeywords {
			if containsAny(lower, entry.keywords) {
				industry = entry.industry
				break
			}
		}
	}

	size := model.SizeStartup
	switch {
	case lower != "" && containsAny(lower, enterpriseNames):
		size = model.SizeEnterprise
	case strings.Contains(lower, "solutions") || strings.Contains(lower, "systems"):
		size = model.SizeMidSize
	}

	return model.CompanyIntel{
		Name:        name,
		Industry:    industry,
		Size:        size,
		HiringFocus: hiringFocus[size],
		Note:        IntelNote,
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
