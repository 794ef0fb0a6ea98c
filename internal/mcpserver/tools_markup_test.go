package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownConvertTool(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		text      string
		want      string
	}{
		{"to html", "to_html", "# Title", "<h1>Title</h1>"},
		{"to html case-insensitive", "TO_HTML", "**bold**", "<strong>bold</strong>"},
		{"to markdown", "to_markdown", "<h2>Sub</h2>", "## Sub"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := markdownConvertInput{Input: textInput{Text: tt.text}, Direction: tt.direction}
			result, output, err := handleMarkdownConvert(context.Background(), &mcp.CallToolRequest{}, input)
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output.Document)
		})
	}
}

func TestMarkdownConvertTool_InvalidDirection(t *testing.T) {
	input := markdownConvertInput{Input: textInput{Text: "# x"}, Direction: "sideways"}
	result, _, err := handleMarkdownConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestMarkdownTemplateTool(t *testing.T) {
	result, output, err := handleMarkdownTemplate(context.Background(), &mcp.CallToolRequest{}, markdownTemplateInput{Name: "Readme"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "readme", output.Name)
	assert.Contains(t, output.Markdown, "# Project Name")
	assert.Contains(t, output.HTML, "<h1>Project Name</h1>")

	result, _, err = handleMarkdownTemplate(context.Background(), &mcp.CallToolRequest{}, markdownTemplateInput{Name: "resume"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
