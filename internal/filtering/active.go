package filtering

import "sort"

// Active is the set of toggled filter labels. The zero value is an empty set.
type Active map[string]struct{}

func NewActive(labels ...string) Active {
	a := make(Active, len(labels))
	for _, label := range labels {
		a[label] = struct{}{}
	}
	return a
}

// Toggle adds the label when absent and removes it otherwise. It returns
// whether the label is active afterwards.
func (a Active) Toggle(label string) bool {
	if _, ok := a[label]; ok {
		delete(a, label)
		return false
	}
	a[label] = struct{}{}
	return true
}

func (a Active) Has(label string) bool {
	_, ok := a[label]
	return ok
}

func (a Active) Len() int { return len(a) }

// Labels returns active labels with default filters first, in display order,
// followed by any other labels sorted alphabetically.
func (a Active) Labels() []string {
	labels := make([]string, 0, len(a))
	seen := make(map[string]struct{}, len(a))
	for _, label := range Labels() {
		if a.Has(label) {
			labels = append(labels, label)
			seen[label] = struct{}{}
		}
	}

	extra := make([]string, 0)
	for label := range a {
		if _, ok := seen[label]; !ok {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)

	return append(labels, extra...)
}

// Clone returns an independent copy of the set.
func (a Active) Clone() Active {
	c := make(Active, len(a))
	for label := range a {
		c[label] = struct{}{}
	}
	return c
}
