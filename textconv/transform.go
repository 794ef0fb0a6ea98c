package textconv

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/convkit/converrors"
)

// Counts summarizes the size of a text.
type Counts struct {
	// Words is the number of whitespace-delimited non-empty tokens.
	Words int `json:"words" yaml:"words"`
	// Characters is the number of runes.
	Characters int `json:"characters" yaml:"characters"`
	// CharactersNoSpaces is the number of non-whitespace runes.
	CharactersNoSpaces int `json:"charactersNoSpaces" yaml:"charactersNoSpaces"`
	// Lines is the number of lines; empty text has none.
	Lines int `json:"lines" yaml:"lines"`
}

// Count computes word, character and line counts for text.
func Count(text string) Counts {
	c := Counts{
		Words:      len(strings.Fields(text)),
		Characters: utf8.RuneCountInString(text),
	}
	for _, r := range text {
		if !unicode.IsSpace(r) {
			c.CharactersNoSpaces++
		}
	}
	if text != "" {
		c.Lines = strings.Count(text, "\n") + 1
	}
	return c
}

// Result is one named transform output.
type Result struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type transform struct {
	id      string
	display string
	fn      func(string) (string, error)
}

func infallible(fn func(string) string) func(string) (string, error) {
	return func(s string) (string, error) { return fn(s), nil }
}

var transforms = []transform{
	{"upper", "UPPERCASE", infallible(Upper)},
	{"lower", "lowercase", infallible(Lower)},
	{"title", "Title Case", infallible(Title)},
	{"camel", "camelCase", infallible(Camel)},
	{"snake", "snake_case", infallible(Snake)},
	{"kebab", "kebab-case", infallible(Kebab)},
	{"reverse", "Reversed", infallible(Reverse)},
	{"base64-encode", "Base64 Encode", infallible(Base64Encode)},
	{"base64-decode", "Base64 Decode", Base64Decode},
	{"url-encode", "URL Encode", infallible(URLEncode)},
	{"url-decode", "URL Decode", URLDecode},
}

// Names returns the transform identifiers accepted by Apply, in display order.
func Names() []string {
	names := make([]string, len(transforms))
	for i, t := range transforms {
		names[i] = t.id
	}
	return names
}

// Apply runs the named transform. An unknown name returns a
// *converrors.ValidationError; a decode failure returns the
// *converrors.EncodingError from the decoder.
func Apply(name, text string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(name))
	for _, t := range transforms {
		if t.id == id {
			return t.fn(text)
		}
	}
	return "", &converrors.ValidationError{Field: "transform", Value: name, Message: "expected one of " + strings.Join(Names(), ", ")}
}

// All runs every transform over text. Decode failures are reported inline
// with the failure message as the value.
func All(text string) []Result {
	out := make([]Result, 0, len(transforms))
	for _, t := range transforms {
		v, err := t.fn(text)
		if err != nil {
			v = inlineMessage(err)
		}
		out = append(out, Result{Name: t.display, Value: v})
	}
	return out
}

func inlineMessage(err error) string {
	var encErr *converrors.EncodingError
	if errors.As(err, &encErr) && encErr.Message != "" {
		return encErr.Message
	}
	return err.Error()
}
