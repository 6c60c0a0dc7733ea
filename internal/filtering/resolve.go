package filtering

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxResolveDistance is the largest edit distance accepted by Resolve.
const maxResolveDistance = 2

// Resolve maps user input such as "react" or "node js" onto one of the
// default labels. Exact matches win, then case-insensitive matches, then the
// closest label within maxResolveDistance edits.
func Resolve(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty filter label")
	}

	labels := Labels()
	for _, label := range labels {
		if label == input {
			return label, nil
		}
	}

	lowered := strings.ToLower(input)
	for _, label := range labels {
		if strings.ToLower(label) == lowered {
			return label, nil
		}
	}

	best, bestDistance := "", maxResolveDistance+1
	for _, label := range labels {
		d := levenshtein.ComputeDistance(lowered, strings.ToLower(label))
		if d < bestDistance {
			best, bestDistance = label, d
		}
	}

	if best == "" {
		return "", fmt.Errorf("unknown filter %q (available: %s)", input, strings.Join(labels, ", "))
	}

	return best, nil
}
