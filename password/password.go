// Package password generates random passwords and passphrases and scores
// password strength.
//
// Randomness comes from crypto/rand unless a reader is supplied.
package password

import (
	"crypto/rand"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/internal/options"
)

// Character classes.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Similar characters are easily confused with each other in print.
	Similar = "il1Lo0O"
	// Ambiguous characters are often mangled by shells and forms.
	Ambiguous = "{}[]()/\\'\"~,;<>."
)

// Length bounds.
const (
	DefaultLength = 16
	MinLength     = 4
	MaxLength     = 128
)

// Options configures Generate.
type Options struct {
	// Length is the number of characters; zero means DefaultLength.
	Length           int
	Uppercase        bool
	Lowercase        bool
	Digits           bool
	Symbols          bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
	// Rand overrides the randomness source (crypto/rand.Reader when nil).
	Rand io.Reader
}

// DefaultOptions enables every character class at DefaultLength.
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
}

// Charset returns the characters Generate draws from for o.
func (o Options) Charset() string {
	var b strings.Builder
	if o.Uppercase {
		b.WriteString(Uppercase)
	}
	if o.Lowercase {
		b.WriteString(Lowercase)
	}
	if o.Digits {
		b.WriteString(Digits)
	}
	if o.Symbols {
		b.WriteString(Symbols)
	}
	set := b.String()
	if o.ExcludeSimilar {
		set = strings.Map(dropIn(Similar), set)
	}
	if o.ExcludeAmbiguous {
		set = strings.Map(dropIn(Ambiguous), set)
	}
	return set
}

func dropIn(chars string) func(rune) rune {
	return func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}
}

// Generate returns a random password drawn uniformly from o's charset.
func Generate(o Options) (string, error) {
	length, err := options.IntInRange("length", o.Length, DefaultLength, MinLength, MaxLength)
	if err != nil {
		return "", err
	}
	set := o.Charset()
	if set == "" {
		return "", &converrors.ValidationError{Field: "charset", Message: "select at least one character type"}
	}
	out := make([]byte, length)
	for i := range out {
		n, err := randIndex(o.Rand, len(set))
		if err != nil {
			return "", err
		}
		out[i] = set[n]
	}
	return string(out), nil
}

// passphraseWords is the word list for Passphrase.
var passphraseWords = []string{
	"apple", "banana", "cherry", "dragon", "elephant", "forest", "guitar", "harmony",
	"island", "jungle", "kitten", "lemon", "mountain", "ocean", "piano", "rainbow",
	"sunset", "thunder", "umbrella", "violet", "whisper", "yellow", "zebra", "crystal",
	"meadow", "river", "castle", "bridge", "garden", "flower", "butterfly", "starlight",
}

// PassphraseWords is the number of words in a passphrase.
const PassphraseWords = 4

// Passphrase returns four random words joined by hyphens followed by a
// number below 100, e.g. "ocean-river-piano-zebra42". A nil r uses crypto/rand.
func Passphrase(r io.Reader) (string, error) {
	words := make([]string, PassphraseWords)
	for i := range words {
		n, err := randIndex(r, len(passphraseWords))
		if err != nil {
			return "", err
		}
		words[i] = passphraseWords[n]
	}
	n, err := randIndex(r, 100)
	if err != nil {
		return "", err
	}
	return strings.Join(words, "-") + strconv.Itoa(n), nil
}

func randIndex(r io.Reader, n int) (int, error) {
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, &converrors.ConfigError{Option: "rand", Message: "reading randomness", Cause: err}
	}
	return int(v.Int64()), nil
}
