// Package names canonicalizes player names so that the same player can be
// matched across datasets and search queries regardless of accents, case, or
// punctuation. Index build and query MUST use the same normalization.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD and removes combining marks, turning
// "Martínez" into "Martinez" and "Çalhanoğlu" into "Calhanoglu".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases a name, strips diacritics, drops every rune that is
// not an ASCII letter or a space, and trims the result. Empty input yields
// the empty string. The function is pure and idempotent.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return s
	}

	// ß has no NFD decomposition; the datasets spell it out as "ss".
	s = strings.ReplaceAll(s, "ß", "ss")

	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokens splits a normalized name into its whitespace-delimited words.
// Input is expected to already be normalized.
func Tokens(normalized string) []string {
	return strings.Fields(normalized)
}
