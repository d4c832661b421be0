// Package casing converts WIT identifiers between naming conventions.
//
// WIT names are kebab-case ("get-user-by-id"); targets want lowerCamel,
// UpperCamel, snake_case or kebab-case. Word splitting also understands
// existing camel humps and acronyms, so conversions compose.
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits an identifier into lowercase words.
func Words(s string) []string {
	var words []string
	var cur []rune
	runes := []rune(s)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, cases.Lower(language.Und).String(string(cur)))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return words
}

// LowerCamel converts to lowerCamelCase.
func LowerCamel(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	title := cases.Title(language.Und)
	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// UpperCamel converts to UpperCamelCase.
func UpperCamel(s string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Snake converts to snake_case.
func Snake(s string) string {
	return strings.Join(Words(s), "_")
}

// Kebab converts to kebab-case.
func Kebab(s string) string {
	return strings.Join(Words(s), "-")
}
