package segmenter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// wordRegex matches runs of letters, combining marks and digits.
var wordRegex = regexp.MustCompile(`[\p{L}\p{M}\p{N}]+`)

// Normalize converts text to Unicode NFC so that composed and decomposed
// spellings of the same word produce the same token.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Tokenize splits a sentence into word tokens, dropping punctuation and
// whitespace. When lower is set, tokens are lower-cased.
func Tokenize(sentence string, lower bool) []string {
	matches := wordRegex.FindAllString(sentence, -1)

	tokens := make([]string, 0, len(matches)) // Initialize as empty slice, not nil
	var caser cases.Caser
	if lower {
		caser = cases.Lower(language.Und)
	}
	for _, m := range matches {
		if lower {
			m = caser.String(m)
		}
		tokens = append(tokens, m)
	}
	return tokens
}

// isNumeric reports whether the token consists only of digits.
func isNumeric(token string) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return token != ""
}

// isContentWord stands in for a part-of-speech allow-list: it rejects
// numbers and single-rune tokens.
func isContentWord(token string) bool {
	return utf8.RuneCountInString(token) > 1 && !isNumeric(token)
}

// splitClauses breaks a sentence on the secondary delimiters and trims the
// pieces. Empty pieces are dropped.
func splitClauses(sentence string) []string {
	parts := strings.FieldsFunc(sentence, func(r rune) bool {
		return strings.ContainsRune(clauseDelimiters, r)
	})

	clauses := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			clauses = append(clauses, p)
		}
	}
	return clauses
}
