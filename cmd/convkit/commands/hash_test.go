package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHash(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleHash([]string{"--text", "abc"}))
	})
	assert.Contains(t, out, "900150983cd24fb0d6963f7d28e17f72")
	assert.Contains(t, out, "a9993e364706816aba3e25717850c26c9cd0d89d")
	assert.Contains(t, out, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	assert.Contains(t, out, "3 bytes, 3 characters\n")
}

func TestHandleHash_Single(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleHash([]string{"-a", "sha1", "--text", "abc"}))
	})
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d\n", out)

	out = captureStdout(t, func() {
		require.NoError(t, HandleHash([]string{"-a", "SHA-256", "--format", "json", "--text", "abc"}))
	})
	assert.Contains(t, out, `"algorithm": "SHA-256"`)
}

func TestHandleHash_FileKeepsNewline(t *testing.T) {
	path := writeTestFile(t, "abc.txt", "abc\n")
	out := captureStdout(t, func() {
		require.NoError(t, HandleHash([]string{"-a", "md5", path}))
	})
	assert.NotEqual(t, "900150983cd24fb0d6963f7d28e17f72\n", out)
}

func TestHandleHash_Errors(t *testing.T) {
	assert.Error(t, HandleHash([]string{}))
	assert.Error(t, HandleHash([]string{"-a", "crc32", "--text", "abc"}))
}
