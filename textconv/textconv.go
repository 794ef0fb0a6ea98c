// Package textconv provides pure transforms over a string: case changes,
// reversal, Base64 and URL component encoding, and counts.
package textconv

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper converts text to upper case.
func Upper(text string) string {
	return cases.Upper(language.Und).String(text)
}

// Lower converts text to lower case.
func Lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// Title capitalizes the first letter of every word and lowers the rest.
func Title(text string) string {
	return cases.Title(language.Und).String(text)
}

// Camel joins the words of text as camelCase.
func Camel(text string) string {
	words := Words(text)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(Lower(w))
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// Snake joins the lowercased words of text with underscores.
func Snake(text string) string {
	return joinLower(Words(text), "_")
}

// Kebab joins the lowercased words of text with hyphens.
func Kebab(text string) string {
	return joinLower(Words(text), "-")
}

// Reverse reverses text rune by rune.
func Reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Words splits text into words. Any run of characters that are neither
// letters nor digits separates words, and so does a change of case:
// "userID" splits into "user" and "ID", "HTTPServer" into "HTTP" and "Server".
func Words(text string) []string {
	runes := []rune(text)
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := cur[len(cur)-1]
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

func joinLower(words []string, sep string) string {
	for i, w := range words {
		words[i] = Lower(w)
	}
	return strings.Join(words, sep)
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + Lower(w[size:])
}
