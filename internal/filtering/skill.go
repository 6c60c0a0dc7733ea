package filtering

import (
	"slices"

	"github.com/spigell/talent-alchemy/internal/talent"
)

type skillFilter struct {
	skill string
}

// NewSkill creates a filter that keeps candidates listing the exact skill.
// Matching is case-sensitive.
func NewSkill(skill string) Filter {
	return &skillFilter{skill: skill}
}

func (f *skillFilter) Label() string { return f.skill }

func (f *skillFilter) Match(c *talent.CandidateSummary) bool {
	return slices.Contains(c.Skills, f.skill)
}
