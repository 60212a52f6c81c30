package fuzzy

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, replaces every rune that is not a word
// character, whitespace, '+', '#', '.' or '-' with a space and collapses
// whitespace runs. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case isWord(r), r == '+', r == '#', r == '.', r == '-':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
