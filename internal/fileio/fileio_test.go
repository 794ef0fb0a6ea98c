package fileio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,age\nJohn,30"), 0o600))

	got, err := ReadText(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "name,age\nJohn,30", got)

	_, err = ReadText(path, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeding the 4 byte limit")

	_, err = ReadText(filepath.Join(dir, "missing.txt"), 0)
	require.Error(t, err)

	_, err = ReadText(dir, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestReadAll(t *testing.T) {
	got, err := ReadAll(strings.NewReader("hello"), 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = ReadAll(strings.NewReader("hello!"), 5)
	require.Error(t, err)
}

func TestReadDataURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o600))

	got, err := ReadDataURL(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "data:text/plain;base64,aGk=", got)
}

func TestMIMEType(t *testing.T) {
	assert.Equal(t, "image/png", MIMEType("photo.PNG", nil))
	assert.Equal(t, "text/plain", MIMEType("noext", []byte("plain words")))
	assert.Equal(t, "image/png", MIMEType("noext", []byte("\x89PNG\r\n\x1a\n0000")))
}

func TestWriteOutput(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOutput("-", []byte("out"), &buf))
		require.NoError(t, WriteOutput("", []byte("put"), &buf))
		assert.Equal(t, "output", buf.String())
	})

	t.Run("file with owner-only permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, WriteOutput(path, []byte("{}"), nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, OwnerReadWrite, info.Mode().Perm())
	})

	t.Run("refuses symlink", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target.txt")
		link := filepath.Join(dir, "link.txt")
		require.NoError(t, os.WriteFile(target, []byte("keep"), 0o600))
		require.NoError(t, os.Symlink(target, link))

		err := WriteOutput(link, []byte("overwrite"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refusing to write to symlink")

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "keep", string(data))
	})
}
