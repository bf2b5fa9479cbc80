package match

import (
	"github.com/agext/levenshtein"
)

// MaxDistance is the largest edit distance, after normalization, at which a
// candidate is still suggested.
const MaxDistance = 2

// Closest returns the candidate nearest to word, or false when none is
// within MaxDistance. Ties go to the earlier candidate. An exact match is not
// a suggestion.
func Closest(word string, candidates ...string) (string, bool) {
	norm := Normalize(word)
	if norm == "" {
		return "", false
	}

	best, bestDist := "", MaxDistance+1

	for _, c := range candidates {
		if c == word {
			return "", false
		}

		d := levenshtein.Distance(norm, Normalize(c), nil)
		if d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}

// Hint renders the suggestion for word as a message suffix, or "" when there
// is none.
func Hint(word string, candidates ...string) string {
	if c, ok := Closest(word, candidates...); ok {
		return `, did you mean "` + c + `"?`
	}

	return ""
}
