package filtering

import (
	"slices"
	"unicode"

	"github.com/spigell/talent-alchemy/internal/talent"
)

type experienceFilter struct {
	label string
	years int
}

// NewExperience creates a filter that keeps candidates whose experience label
// starts with a number of years greater than or equal to years.
func NewExperience(label string, years int) Filter {
	return &experienceFilter{label: label, years: years}
}

func (f *experienceFilter) Label() string { return f.label }

func (f *experienceFilter) Match(c *talent.CandidateSummary) bool {
	// A skill literally named like the label counts too.
	if slices.Contains(c.Skills, f.label) {
		return true
	}

	years, ok := LeadingInt(c.Experience)
	return ok && years >= f.years
}

// LeadingInt parses the integer at the start of s: optional leading
// whitespace, an optional sign, then digits. Anything after the digits is
// ignored. ok is false when no digits are found.
func LeadingInt(s string) (n int, ok bool) {
	runes := []rune(s)
	i := 0
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}

	negative := false
	if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
		negative = runes[i] == '-'
		i++
	}

	start := i
	const limit = int(^uint(0)>>1) / 10
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		if n < limit {
			n = n*10 + int(runes[i]-'0')
		}
		i++
	}

	if i == start {
		return 0, false
	}

	if negative {
		n = -n
	}

	return n, true
}
