package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataConvertTool_JSONToCSV(t *testing.T) {
	input := dataConvertInput{
		Input: textInput{Text: `[{"name":"John","age":30}]`},
		To:    "csv",
	}
	result, output, err := handleDataConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.True(t, output.Success)
	assert.Equal(t, "json", output.SourceFormat)
	assert.Equal(t, "csv", output.TargetFormat)
	assert.Equal(t, "name,age\nJohn,30", output.Document)
	assert.Empty(t, output.WrittenTo)
}

func TestDataConvertTool_IssuesReported(t *testing.T) {
	input := dataConvertInput{
		Input: textInput{Text: `{"hobbies":["a","b"]}`},
		From:  "json",
		To:    "xml",
	}
	_, output, err := handleDataConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.True(t, output.Success)
	require.NotEmpty(t, output.Issues)
	assert.Equal(t, len(output.Issues), output.IssueCount)
	assert.Contains(t, output.Document, "<hobbies_0>a</hobbies_0>")

	var paths []string
	for _, issue := range output.Issues {
		paths = append(paths, issue.Path)
	}
	assert.Contains(t, paths, "root.hobbies")
}

func TestDataConvertTool_RootNameFromConfig(t *testing.T) {
	withConfig(t, &serverConfig{MaxInputSize: 1024, RootName: "person"})

	input := dataConvertInput{
		Input: textInput{Text: "name: John\nage: 30"},
		From:  "yaml",
		To:    "xml",
	}
	_, output, err := handleDataConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Contains(t, output.Document, "<person><name>John</name><age>30</age></person>")
}

func TestDataConvertTool_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.yaml")

	input := dataConvertInput{
		Input:  textInput{Text: `{"name":"John","age":30}`},
		To:     "yaml",
		Output: outPath,
	}
	_, output, err := handleDataConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document, "document should not be inline when written to file")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "name: John\nage: 30", string(data))
}

func TestDataConvertTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input dataConvertInput
	}{
		{"malformed json", dataConvertInput{Input: textInput{Text: "{invalid"}, From: "json", To: "yaml"}},
		{"unknown target", dataConvertInput{Input: textInput{Text: "{}"}, To: "toml"}},
		{"missing target", dataConvertInput{Input: textInput{Text: "{}"}}},
		{"unknown source", dataConvertInput{Input: textInput{Text: "{}"}, From: "ini", To: "json"}},
		{"strict mode warning", dataConvertInput{Input: textInput{Text: `{"a":[1]}`}, To: "xml", Strict: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleDataConvert(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Empty(t, output.Document)
		})
	}
}

func TestDataConvertTool_ExcludeInfo(t *testing.T) {
	off := false
	input := dataConvertInput{
		Input:       textInput{Text: "name,age\nJohn,30"},
		From:        "csv",
		To:          "json",
		IncludeInfo: &off,
	}
	_, output, err := handleDataConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Empty(t, output.Issues)
	assert.Contains(t, output.Document, `"name": "John"`)
}
