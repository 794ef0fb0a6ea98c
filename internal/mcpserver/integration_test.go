package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "convkit-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Tools, 15, "expected 15 registered tools")

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}

	expectedTools := []string{
		"catalog_search",
		"data_convert",
		"markdown_convert",
		"markdown_template",
		"units_convert",
		"currency_convert",
		"color_convert",
		"number_convert",
		"text_transform",
		"datetime_convert",
		"hash_generate",
		"password_generate",
		"qrcode_url",
		"document_export",
		"print_html",
	}

	for _, name := range expectedTools {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}

	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
}

func TestIntegration_CallTool_DataConvert(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "data_convert",
		Arguments: map[string]any{
			"input": map[string]any{
				"text": `[{"name":"John","age":30},{"name":"Jane","age":25}]`,
			},
			"to": "csv",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "data_convert should succeed on valid JSON")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "json", structured["source_format"])
	assert.Equal(t, "csv", structured["target_format"])
	assert.Equal(t, true, structured["success"])
	assert.Equal(t, "name,age\nJohn,30\nJane,25", structured["document"])
}

func TestIntegration_CallTool_CatalogSearch(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "catalog_search",
		Arguments: map[string]any{"query": "security"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(2), structured["count"])
	entries, ok := structured["entries"].([]any)
	require.True(t, ok, "expected entries array, got %T", structured["entries"])
	require.Len(t, entries, 2)
	first, ok := entries[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hash", first["id"])
	assert.Equal(t, "hash_generate", first["tool"])
}

func TestIntegration_CallTool_UnitsConvert(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "units_convert",
		Arguments: map[string]any{
			"category": "weight",
			"value":    "1",
			"from":     "kilogram",
			"to":       "gram",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "1000", structured["result"])
}

func TestIntegration_CallTool_Error(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "hash_generate",
		Arguments: map[string]any{
			"input":     map[string]any{"text": "abc"},
			"algorithm": "crc32",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError, "unknown algorithm should be reported as a tool error")

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	assert.Contains(t, text.Text, "crc32")
}

// unmarshalStructured extracts the structured content from a CallToolResult
// as a generic map.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m))
	return m
}
