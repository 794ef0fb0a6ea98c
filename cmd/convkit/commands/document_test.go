package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDocument(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleDocument([]string{"-t", "csv", "--text", "line one\n\nline \"two\""}))
	})
	assert.Equal(t, "Content\n\"line one\"\n\"line \"\"two\"\"\"\n", out)
}

func TestHandleDocument_HTMLFileToJSON(t *testing.T) {
	in := writeTestFile(t, "notes.html", "<p>Fish &amp; chips</p>")
	dest := filepath.Join(t.TempDir(), "notes.json")

	require.NoError(t, HandleDocument([]string{"-q", "-t", "json", "-o", dest, in}))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "notes.html"`)
	assert.Contains(t, string(data), `"content": "Fish & chips"`)
}

func TestHandleDocument_Markdown(t *testing.T) {
	long := strings.Repeat("word ", 11)
	out := captureStdout(t, func() {
		require.NoError(t, HandleDocument([]string{"--to", "md", "--text", long}))
	})
	assert.Equal(t, "# "+long+"\n", out)
}

func TestHandleDocument_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"no format":    {"--text", "x"},
		"bad format":   {"-t", "docx", "--text", "x"},
		"blank":        {"-t", "txt", "--text", "  "},
		"no input":     {"-t", "txt"},
		"missing file": {"-t", "txt", "/nonexistent/notes.txt"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, HandleDocument(args))
		})
	}
}
