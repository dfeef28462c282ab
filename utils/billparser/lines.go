package billparser

import "strings"

// SplitLines breaks text on any line terminator, trims each line and drops
// the empty ones. Document order is preserved.
func SplitLines(text string) []string {
	var lines []string
	for _, raw := range strings.FieldsFunc(text, isLineBreak) {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// containsAny reports whether s contains at least one of the keywords.
// Callers lower-case s first when the match should ignore case.
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
