package commands

import (
	"encoding/json"
	"testing"

	"github.com/erraggy/convkit/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCatalog(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleCatalog([]string{}))
	})
	assert.Contains(t, out, "Data Converter")
	assert.Contains(t, out, "convkit numbase")
}

func TestHandleCatalog_QueryJSON(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleCatalog([]string{"--format", "json", "hex"}))
	})

	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "color", entries[0].ID)
	assert.Equal(t, "number", entries[1].ID)
}

func TestHandleCatalog_NoMatch(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleCatalog([]string{"zzz"}))
	})
	assert.Equal(t, "No converters match \"zzz\"\n", out)
}

func TestHandleCatalog_BadFormat(t *testing.T) {
	assert.Error(t, HandleCatalog([]string{"--format", "xml"}))
}
