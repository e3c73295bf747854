package stringutil

import "strings"

// DefaultFuzzyThreshold is the minimum similarity FuzzyMatch accepts.
const DefaultFuzzyThreshold = 0.6

// FuzzyMatch reports whether a and b refer to the same thing using
// DefaultFuzzyThreshold. See FuzzyMatchThreshold.
func FuzzyMatch(a, b string) bool {
	return FuzzyMatchThreshold(a, b, DefaultFuzzyThreshold)
}

// FuzzyMatchThreshold compares a and b case-insensitively.
// Either string empty never matches. Containment in either direction always
// matches; otherwise the normalized Levenshtein similarity must reach threshold.
//
// Example:
//
//	FuzzyMatchThreshold("Dr. Smith", "smith", 0.6) returns true  (containment)
//	FuzzyMatchThreshold("Jonson", "Johnson", 0.6) returns true   (similarity 0.857)
//	FuzzyMatchThreshold("abc", "xyz", 0.6) returns false
func FuzzyMatchThreshold(a, b string, threshold float64) bool {
	if a == "" || b == "" {
		return false
	}

	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return true
	}

	return similarity(la, lb) >= threshold
}

// Similarity returns 1 - distance/maxLen for the lower-cased inputs,
// where lengths are counted in runes. Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	return similarity(strings.ToLower(a), strings.ToLower(b))
}

func similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-levenshtein([]rune(a), []rune(b))) / float64(maxLen)
}

// Levenshtein returns the minimum number of single-rune insertions, deletions
// and substitutions needed to turn a into b, ignoring case.
func Levenshtein(a, b string) int {
	return levenshtein([]rune(strings.ToLower(a)), []rune(strings.ToLower(b)))
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
