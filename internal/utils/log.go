package utils

import "strings"

// MaxLogLength bounds free text such as response bodies and queries in
// debug logs.
const MaxLogLength = 200

// TruncateForLog trims s and cuts it to limit runes, marking the cut with an
// ellipsis.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
