package screen

import (
	"fmt"
	"net/url"
	"strings"
)

const profileRoute = "/candidates/%s/profile"

// ProfilePath is the link a search result points to.
func ProfilePath(id string) string {
	return fmt.Sprintf(profileRoute, url.PathEscape(id))
}

// ParseProfilePath extracts the candidate id from a profile link. A bare id
// is accepted as well.
func ParseProfilePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty candidate reference")
	}

	if !strings.Contains(path, "/") {
		return path, nil
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "candidates" || parts[2] != "profile" || parts[1] == "" {
		return "", fmt.Errorf("not a candidate profile path: %q", path)
	}

	id, err := url.PathUnescape(parts[1])
	if err != nil {
		return "", fmt.Errorf("candidate id in %q: %w", path, err)
	}

	return id, nil
}
