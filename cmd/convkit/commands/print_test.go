package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePrint_Text(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandlePrint([]string{"--page", "legal", "--font-size", "14", "--text", "# Title\n- item"}))
	})
	assert.Contains(t, out, "@page { size: Legal; }")
	assert.Contains(t, out, "font-size: 14px;")
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<li>item</li>")
}

func TestHandlePrint_Images(t *testing.T) {
	png := writeTestFile(t, "a.png", "\x89PNG\r\n\x1a\n")
	dest := filepath.Join(t.TempDir(), "album.html")

	require.NoError(t, HandlePrint([]string{"--images", "--orientation", "landscape", "--fit", "-o", dest, png, png}))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "@page { size: A4 landscape; margin: 20px; }")
	assert.Equal(t, 2, strings.Count(string(data), "data:image/png;base64,"))
}

func TestHandlePrint_Errors(t *testing.T) {
	txt := writeTestFile(t, "a.txt", "plain")

	for name, args := range map[string][]string{
		"no input":        {},
		"no images":       {"--images"},
		"text and images": {"--images", "--text", "x", txt},
		"not an image":    {"--images", txt},
		"bad font":        {"--font", "Comic Sans", "--text", "x"},
		"bad orientation": {"--images", "--orientation", "sideways", writeTestFile(t, "b.png", "\x89PNG\r\n\x1a\n")},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, HandlePrint(args))
		})
	}
}
