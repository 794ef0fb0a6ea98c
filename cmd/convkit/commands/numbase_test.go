package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleNumbase(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleNumbase([]string{"-b", "hex", "ff"}))
	})
	assert.Equal(t, "decimal: 255\nbinary:  11111111\nhex:     FF\noctal:   377\n", out)

	out = captureStdout(t, func() {
		require.NoError(t, HandleNumbase([]string{"--format", "json", "10"}))
	})
	assert.Equal(t, "{\n  \"decimal\": \"10\",\n  \"binary\": \"1010\",\n  \"hex\": \"A\",\n  \"octal\": \"12\"\n}\n", out)
}

func TestHandleNumbase_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"no value":   {},
		"bad digit":  {"-b", "binary", "102"},
		"bad base":   {"-b", "base3", "1"},
		"two values": {"1", "2"},
		"negative":   {"--", "-1"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, HandleNumbase(args))
		})
	}
}
