// Package textmatch provides case and accent insensitive keyword matching for pt-BR text.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minTokenLength drops short connectives such as "de" and "o".
const minTokenLength = 3

// Fold lowercases s and strips diacritics, so "Variável" becomes "variavel".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// ContainsAny reports whether text contains any of the keywords after folding both.
func ContainsAny(text string, keywords ...string) bool {
	folded := Fold(text)
	for _, k := range keywords {
		if strings.Contains(folded, Fold(k)) {
			return true
		}
	}
	return false
}

// Tokens splits s into folded words of at least three letters or digits.
func Tokens(s string) []string {
	fields := strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Score counts how many tokens of query appear in any of the given fields.
func Score(query string, fields ...string) int {
	haystack := Fold(strings.Join(fields, " "))

	score := 0
	for _, token := range Tokens(query) {
		if strings.Contains(haystack, token) {
			score++
		}
	}
	return score
}
