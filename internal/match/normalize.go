package match

import (
	"strings"
	"unicode"
)

// Normalize folds case and drops separators, so "Default", "de_fault" and
// "DE-FAULT" all compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
