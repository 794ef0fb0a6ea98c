package mcpserver

import (
	"context"

	"github.com/erraggy/convkit/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type catalogInput struct {
	Query string `json:"query,omitempty" jsonschema:"Text to look for in converter titles and descriptions and tags. Empty lists everything."`
}

type catalogEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Tool        string   `json:"tool"`
	Command     string   `json:"command"`
}

type catalogOutput struct {
	Query   string         `json:"query,omitempty"`
	Count   int            `json:"count"`
	Entries []catalogEntry `json:"entries,omitempty"`
}

// catalogTools maps catalog IDs to the MCP tool that runs the converter.
var catalogTools = map[string]string{
	"units":    "units_convert",
	"currency": "currency_convert",
	"pdf":      "print_html",
	"document": "document_export",
	"qrcode":   "qrcode_url",
	"hash":     "hash_generate",
	"password": "password_generate",
	"data":     "data_convert",
	"markdown": "markdown_convert",
	"color":    "color_convert",
	"number":   "number_convert",
	"datetime": "datetime_convert",
	"text":     "text_transform",
}

func handleCatalogSearch(_ context.Context, _ *mcp.CallToolRequest, input catalogInput) (*mcp.CallToolResult, catalogOutput, error) {
	found := catalog.Search(input.Query)
	output := catalogOutput{
		Query:   input.Query,
		Count:   len(found),
		Entries: makeSlice[catalogEntry](len(found)),
	}
	for _, e := range found {
		output.Entries = append(output.Entries, catalogEntry{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Tags:        e.Tags,
			Tool:        catalogTools[e.ID],
			Command:     "convkit " + e.Command,
		})
	}
	return nil, output, nil
}
