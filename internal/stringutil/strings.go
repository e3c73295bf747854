// Package stringutil provides common string manipulation utilities.
package stringutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FirstWord returns the first whitespace-separated word of s, or "" if none.
func FirstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// LastWord returns the last whitespace-separated word of s, or "" if none.
func LastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Title upper-cases the first letter of each word ("monday" -> "Monday").
// A Caser is stateful, so each call builds its own.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// TruncateRunes shortens s to at most maxRunes runes, appending suffix when
// truncation happens. The suffix counts against maxRunes.
//
// Example:
//
//	TruncateRunes("Introduction to Programming", 10, "...") returns "Introdu..."
func TruncateRunes(s string, maxRunes int, suffix string) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	suffixRunes := []rune(suffix)
	if len(suffixRunes) >= maxRunes {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-len(suffixRunes)]) + suffix
}
