package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDataFlags(t *testing.T) {
	fs, flags := SetupDataFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.From)
		assert.Empty(t, flags.To)
		assert.Equal(t, "root", flags.RootName)
		assert.False(t, flags.Strict)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-f", "csv", "-t", "xml", "--root", "people", "-o", "out.xml", "--strict", "-q", "in.csv"}
		require.NoError(t, fs.Parse(args))
		assert.Equal(t, "csv", flags.From)
		assert.Equal(t, "xml", flags.To)
		assert.Equal(t, "people", flags.RootName)
		assert.Equal(t, "out.xml", flags.Output)
		assert.True(t, flags.Strict)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "in.csv", fs.Arg(0))
	})
}

func TestHandleData(t *testing.T) {
	path := writeTestFile(t, "people.json", `[{"name":"John","age":30}]`)

	out := captureStdout(t, func() {
		require.NoError(t, HandleData([]string{"-q", "-t", "csv", path}))
	})
	assert.Equal(t, "name,age\nJohn,30\n", out)
}

func TestHandleData_StdinToFile(t *testing.T) {
	withStdin(t, "name: John\nage: 30")
	dest := filepath.Join(t.TempDir(), "out.xml")

	require.NoError(t, HandleData([]string{"-q", "-f", "yaml", "-t", "xml", "--root", "person", "-o", dest, "-"}))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "<person><name>John</name><age>30</age></person>", string(data))
}

func TestHandleData_Errors(t *testing.T) {
	path := writeTestFile(t, "bad.json", `{"unclosed": `)
	list := writeTestFile(t, "list.json", `{"hobbies":["a","b"]}`)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"no target", []string{path}},
		{"bad target", []string{"-t", "toml", path}},
		{"bad source", []string{"-f", "ini", "-t", "json", path}},
		{"malformed input", []string{"-q", "-t", "yaml", path}},
		{"missing file", []string{"-q", "-t", "yaml", "/nonexistent/in.json"}},
		{"strict warnings", []string{"-q", "--strict", "-t", "xml", list}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, HandleData(tt.args))
		})
	}
}

func TestHandleData_Help(t *testing.T) {
	assert.NoError(t, HandleData([]string{"--help"}))
}
