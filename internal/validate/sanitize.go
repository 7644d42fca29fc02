package validate

import (
	"strings"
	"unicode"
)

// Trim removes surrounding whitespace and any control characters, so a
// pasted name cannot break a CSV row or a terminal table.
func Trim(s string) string {
	return strings.TrimSpace(StripControlChars(s))
}

// StripControlChars removes all control characters from a string.
func StripControlChars(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SafeFilename converts a string to a safe filename.
func SafeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		"\x00", "",
	)
	s = replacer.Replace(s)

	// Trim whitespace and dots from ends
	s = strings.Trim(s, " .")

	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
