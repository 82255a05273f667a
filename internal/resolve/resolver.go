// Package resolve maps free-text queries to canonical team abbreviations.
// Matching is case-insensitive and diacritic-insensitive, so "Jokić" and
// "jokic" compare equal.
package resolve

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases a query and strips diacritic marks so comparisons
// work across the spellings human input actually arrives in.
func Normalize(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// ContainsFold reports whether needle is a normalized substring of haystack.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// EqualFold reports whether two strings are equal after normalization.
func EqualFold(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
