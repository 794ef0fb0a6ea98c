package password

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/convkit/converrors"
)

func TestGenerate(t *testing.T) {
	pw, err := Generate(DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, pw, DefaultLength)

	pw, err = Generate(Options{Length: 64, Digits: true})
	require.NoError(t, err)
	assert.Len(t, pw, 64)
	for _, r := range pw {
		assert.True(t, isDigit(r), "unexpected %q", r)
	}

	pw, err = Generate(Options{Lowercase: true})
	require.NoError(t, err)
	assert.Len(t, pw, DefaultLength, "zero length means the default")
}

func TestGenerate_Deterministic(t *testing.T) {
	zeros := bytes.NewReader(make([]byte, 256))
	pw, err := Generate(Options{Length: 5, Uppercase: true, Lowercase: true, Rand: zeros})
	require.NoError(t, err)
	assert.Equal(t, "AAAAA", pw)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(Options{Length: 16})
	require.Error(t, err)
	assert.ErrorIs(t, err, converrors.ErrValidation)

	for _, n := range []int{3, 129, -1} {
		_, err := Generate(Options{Length: n, Lowercase: true})
		assert.ErrorIs(t, err, converrors.ErrConfig, "length %d", n)
	}

	_, err = Generate(Options{Length: 8, Lowercase: true, Rand: bytes.NewReader(nil)})
	assert.ErrorIs(t, err, converrors.ErrConfig)
}

func TestCharset(t *testing.T) {
	all := DefaultOptions().Charset()
	assert.Len(t, all, 26+26+10+len(Symbols))

	noSimilar := Options{Uppercase: true, Lowercase: true, Digits: true, ExcludeSimilar: true}.Charset()
	for _, r := range Similar {
		assert.NotContains(t, noSimilar, string(r))
	}
	assert.Contains(t, noSimilar, "a")

	noAmbiguous := Options{Symbols: true, ExcludeAmbiguous: true}.Charset()
	assert.Equal(t, "!@#$%^&*_+-=|:?", noAmbiguous)

	assert.Equal(t, Digits, Options{Digits: true}.Charset())
}

func TestPassphrase(t *testing.T) {
	p, err := Passphrase(bytes.NewReader(make([]byte, 64)))
	require.NoError(t, err)
	assert.Equal(t, "apple-apple-apple-apple0", p)

	p, err = Passphrase(nil)
	require.NoError(t, err)
	parts := strings.Split(p, "-")
	require.Len(t, parts, PassphraseWords)
	assert.Contains(t, passphraseWords, parts[0])
	last := strings.TrimRight(parts[3], "0123456789")
	assert.Contains(t, passphraseWords, last)
	assert.LessOrEqual(t, len(parts[3])-len(last), 2)
}

func TestScore(t *testing.T) {
	tests := []struct {
		pw    string
		score int
		label string
	}{
		{"", 0, LabelNone},
		{"abc", 1, LabelWeak},
		{"abcdefgh", 2, LabelWeak},
		{"abcdefgH", 3, LabelMedium},
		{"abcdefgH1", 4, LabelMedium},
		{"abcdefgH1!", 5, LabelStrong},
		{"abcdefgH1!xy", 6, LabelStrong},
	}
	for _, tt := range tests {
		got := Score(tt.pw)
		assert.Equal(t, tt.score, got.Score, tt.pw)
		assert.Equal(t, tt.label, got.Label, tt.pw)
	}
}
