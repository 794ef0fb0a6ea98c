package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/convkit/markup"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Conversion directions for markdown_convert.
const (
	directionToHTML     = "to_html"
	directionToMarkdown = "to_markdown"
)

type markdownConvertInput struct {
	Input     textInput `json:"input"            jsonschema:"The Markdown or HTML text to convert"`
	Direction string    `json:"direction"        jsonschema:"to_html converts Markdown to HTML; to_markdown converts HTML to Markdown"`
	Output    string    `json:"output,omitempty" jsonschema:"File path to write the result. If omitted the result is returned inline."`
}

type markdownConvertOutput struct {
	Direction string `json:"direction"`
	WrittenTo string `json:"written_to,omitempty"`
	Document  string `json:"document,omitempty"`
}

func handleMarkdownConvert(_ context.Context, _ *mcp.CallToolRequest, input markdownConvertInput) (*mcp.CallToolResult, markdownConvertOutput, error) {
	text, err := input.Input.resolve()
	if err != nil {
		return errResult(err), markdownConvertOutput{}, nil
	}

	var doc string
	switch strings.ToLower(input.Direction) {
	case directionToHTML:
		doc = markup.MarkdownToHTML(text)
	case directionToMarkdown:
		doc = markup.HTMLToMarkdown(text)
	default:
		return errResult(fmt.Errorf("invalid direction %q; valid values: %s, %s", input.Direction, directionToHTML, directionToMarkdown)), markdownConvertOutput{}, nil
	}

	output := markdownConvertOutput{Direction: strings.ToLower(input.Direction)}
	written, err := writeOrInline(input.Output, []byte(doc))
	if err != nil {
		return errResult(err), markdownConvertOutput{}, nil
	}
	if written != "" {
		output.WrittenTo = written
	} else {
		output.Document = doc
	}
	return nil, output, nil
}

type markdownTemplateInput struct {
	Name string `json:"name" jsonschema:"Template name: readme\\, documentation or blog"`
}

type markdownTemplateOutput struct {
	Name     string `json:"name"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

func handleMarkdownTemplate(_ context.Context, _ *mcp.CallToolRequest, input markdownTemplateInput) (*mcp.CallToolResult, markdownTemplateOutput, error) {
	md, ok := markup.Template(input.Name)
	if !ok {
		return errResult(fmt.Errorf("unknown template %q; valid values: %s", input.Name, strings.Join(markup.Templates(), ", "))), markdownTemplateOutput{}, nil
	}
	return nil, markdownTemplateOutput{
		Name:     strings.ToLower(input.Name),
		Markdown: md,
		HTML:     markup.MarkdownToHTML(md),
	}, nil
}
