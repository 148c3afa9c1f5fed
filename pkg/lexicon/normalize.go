package lexicon

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeUnicode applies NFKC normalization so that stylized Unicode
// variants (mathematical bold, fullwidth, circled letters) collapse to their
// plain equivalents before pattern matching.
func NormalizeUnicode(text string) (normalized string, wasNormalized bool) {
	normalized = norm.NFKC.String(text)
	wasNormalized = normalized != text
	return
}

// FoldForMatching normalizes and lowercases text, the single preparation
// step every dimension scan runs against.
func FoldForMatching(text string) string {
	normalized, _ := NormalizeUnicode(text)
	return strings.ToLower(normalized)
}

// ContainsAny reports whether lower (already-folded text) contains any of
// the given substrings.
func ContainsAny(lower string, substrs []string) bool {
	for _, s := range substrs {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
