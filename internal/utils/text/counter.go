// Package text provides small helpers for logging document and fragment text.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters such as accented letters, CJK and emoji count once.
func CountRunes(text string) int {
	return len([]rune(text))
}

// Preview returns text collapsed to single spaces and cut to at most
// maxRunes runes, with "..." appended when it was cut. A maxRunes of zero or
// less returns an empty string.
func Preview(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	collapsed := strings.Join(strings.Fields(text), " ")
	if CountRunes(collapsed) <= maxRunes {
		return collapsed
	}
	return string([]rune(collapsed)[:maxRunes]) + "..."
}
