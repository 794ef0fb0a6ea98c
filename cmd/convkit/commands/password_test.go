package commands

import (
	"strings"
	"testing"

	"github.com/erraggy/convkit/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupPasswordFlags(t *testing.T) {
	_, flags := SetupPasswordFlags()
	assert.Equal(t, password.DefaultLength, flags.Length)
	assert.False(t, flags.NoSymbols)
}

func TestHandlePassword_DigitsOnly(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandlePassword([]string{"-q", "-l", "20", "--no-upper", "--no-lower", "--no-symbols"}))
	})
	pw := strings.TrimSuffix(out, "\n")
	require.Len(t, pw, 20)
	assert.Equal(t, -1, strings.IndexFunc(pw, func(r rune) bool { return r < '0' || r > '9' }))
}

func TestHandlePassword_Default(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandlePassword([]string{}))
	})
	assert.True(t, strings.HasPrefix(out, "Password: "))
	assert.Contains(t, out, "Strength: ")
}

func TestHandlePassword_Passphrase(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandlePassword([]string{"--passphrase", "-q"}))
	})
	assert.Len(t, strings.Split(strings.TrimSpace(out), "-"), password.PassphraseWords)
}

func TestHandlePassword_Check(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandlePassword([]string{"--check", "abc"}))
	})
	assert.Equal(t, "Strength: Weak\n", out)
}

func TestHandlePassword_Errors(t *testing.T) {
	assert.Error(t, HandlePassword([]string{"-l", "2"}))
	assert.Error(t, HandlePassword([]string{"--no-upper", "--no-lower", "--no-digits", "--no-symbols"}))
}
