package filtering

import (
	"github.com/spigell/talent-alchemy/internal/talent"
)

const (
	LabelReact           = "React"
	LabelNodeJS          = "Node.js"
	LabelTypeScript      = "TypeScript"
	LabelPython          = "Python"
	LabelMachineLearning = "Machine Learning"
	LabelSeniority       = "5+ years"

	seniorityYears = 5
)

// Filter decides whether a single search result should stay visible.
type Filter interface {
	Label() string
	Match(c *talent.CandidateSummary) bool
}

// Defaults returns the filters offered on the search screen, in display order.
func Defaults() []Filter {
	return []Filter{
		NewSkill(LabelReact),
		NewSkill(LabelNodeJS),
		NewSkill(LabelTypeScript),
		NewSkill(LabelPython),
		NewSkill(LabelMachineLearning),
		NewExperience(LabelSeniority, seniorityYears),
	}
}

// Labels returns the labels of the default filters.
func Labels() []string {
	defaults := Defaults()
	labels := make([]string, 0, len(defaults))
	for _, f := range defaults {
		labels = append(labels, f.Label())
	}
	return labels
}

// ForLabel returns the filter behind a label. Labels without a dedicated
// filter are treated as skill names.
func ForLabel(label string) Filter {
	for _, f := range Defaults() {
		if f.Label() == label {
			return f
		}
	}
	return NewSkill(label)
}

// Apply returns the results that match at least one active filter, or all
// results when nothing is active. It never mutates its inputs.
func Apply(results []*talent.CandidateSummary, active Active) []*talent.CandidateSummary {
	if active.Len() == 0 {
		return results
	}

	filters := make([]Filter, 0, active.Len())
	for _, label := range active.Labels() {
		filters = append(filters, ForLabel(label))
	}

	filtered := make([]*talent.CandidateSummary, 0, len(results))
	for _, candidate := range results {
		if candidate == nil {
			continue
		}
		for _, f := range filters {
			if f.Match(candidate) {
				filtered = append(filtered, candidate)
				break
			}
		}
	}

	return filtered
}
