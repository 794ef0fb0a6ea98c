package main

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"dta", "data"},
		{"markdwn", "markdown"},
		{"markdon", "markdown"},
		{"unit", "units"},
		{"curency", "currency"},
		{"colr", "color"},
		{"numbse", "numbase"},
		{"txt", "text"},
		{"datetim", "datetime"},
		{"hsah", "hash"},
		{"pasword", "password"},
		{"qrcod", "qrcode"},
		{"documnt", "document"},
		{"prnt", "print"},
		{"catalgo", "catalog"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyzzy", ""},
		{"foobar", ""},
		{"conversion", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("data", "data"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 4, levenshtein("", "data"))
	assert.Equal(t, 1, levenshtein("café", "cafe"))
}

func TestCommandNames_MatchHandlers(t *testing.T) {
	var names []string
	for _, n := range commandNames {
		if n != "version" && n != "help" {
			names = append(names, n)
		}
	}
	var registered []string
	for n := range handlers {
		registered = append(registered, n)
	}
	sort.Strings(names)
	sort.Strings(registered)
	assert.Equal(t, names, registered)
}
