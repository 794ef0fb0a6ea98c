package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleColor(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hex", []string{"#3B82F6"}, "HEX: #3b82f6\nRGB: rgb(59, 130, 246)\nHSL: hsl(217, 91%, 60%)\n"},
		{"rgb", []string{"--rgb", "255, 0, 0"}, "HEX: #ff0000\nRGB: rgb(255, 0, 0)\nHSL: hsl(0, 100%, 50%)\n"},
		{"hsl", []string{"--hsl", "120,100,50"}, "HEX: #00ff00\nRGB: rgb(0, 255, 0)\nHSL: hsl(120, 100%, 50%)\n"},
		{"clamped", []string{"--rgb", "300,-5,10"}, "HEX: #ff000a\nRGB: rgb(255, 0, 10)\nHSL: hsl(358, 100%, 50%)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, func() {
				require.NoError(t, HandleColor(tt.args))
			})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestHandleColor_JSON(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleColor([]string{"--format", "json", "--rgb", "0,0,0"}))
	})
	assert.Contains(t, out, `"source": "rgb"`)
	assert.Contains(t, out, `"hex": "#000000"`)
}

func TestHandleColor_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"none":       {},
		"several":    {"--rgb", "1,2,3", "#ffffff"},
		"bad hex":    {"#fff"},
		"short rgb":  {"--rgb", "1,2"},
		"letter hsl": {"--hsl", "a,b,c"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, HandleColor(args))
		})
	}
}

func TestParseTriplet(t *testing.T) {
	got, err := parseTriplet("rgb", " 1, 2 ,3")
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 2, 3}, got)
}
