// Package text provides the whitespace normaliser and tokeniser shared
// by chunking, ranking and fact mining.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	nonTokenRe = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)
)

// NormalizeSpace collapses runs of whitespace into single spaces and
// trims the result.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// Tokenize lowercases s, replaces everything outside letters, digits,
// underscores and hyphens with spaces, and returns the tokens longer
// than one rune. Accented Latin letters survive; hyphens stay
// token-internal.
func Tokenize(s string) []string {
	s = nonTokenRe.ReplaceAllString(strings.ToLower(s), " ")

	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, t := range fields {
		if utf8.RuneCountInString(t) > 1 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
