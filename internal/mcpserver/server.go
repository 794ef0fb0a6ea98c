// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the convkit converters as MCP tools over stdio.
package mcpserver

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"github.com/erraggy/convkit"
	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/internal/fileio"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `convkit MCP server: converts structured data (JSON, CSV, XML, YAML), Markdown and HTML, units, currencies, colors, number bases, dates, text encodings, and builds hashes, passwords, QR code URLs and printable documents.

Configuration: All defaults are configurable via CONVKIT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CONVKIT_MAX_INPUT_SIZE (default: 10485760) - byte limit for inline text and files
- CONVKIT_ROOT_NAME (default: root) - XML root element for data_convert
- CONVKIT_FULL_YAML (default: false) - parse YAML input with the full YAML parser instead of the one-level subset
- CONVKIT_QR_ENDPOINT (default: https://api.qrserver.com/v1/create-qr-code/) - QR image service
- CONVKIT_PASSWORD_LENGTH (default: 16) - default password length (4-128)
- CONVKIT_TIMEZONE (default: UTC) - default zone for datetime_convert

Use catalog_search to discover which tool handles a conversion.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "convkit", Version: convkit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog_search",
		Description: "Search the converter catalog by title, description or tag (case-insensitive substring). An empty query lists every converter with the tool and CLI command that runs it.",
	}, handleCatalogSearch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "data_convert",
		Description: "Convert structured data between JSON, CSV, XML and YAML. The source format is detected when omitted. Returns the converted document plus conversion issues (info, warning, critical) describing anything the target format cannot carry. Malformed input returns an error and no document. Use output to write to a file instead of returning inline.",
	}, handleDataConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "markdown_convert",
		Description: "Convert Markdown to HTML (direction to_html) or HTML to Markdown (direction to_markdown) using a fixed set of pattern rules: headings, bold, italic, code, links, images, lists, tables, blockquotes and rules.",
	}, handleMarkdownConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "markdown_template",
		Description: "Return a starter Markdown document: readme, documentation or blog. The blog template is stamped with today's date.",
	}, handleMarkdownTemplate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "units_convert",
		Description: "Convert a value between units of length, weight, temperature, area or volume. Omit from and to to list the units of a category.",
	}, handleUnitsConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "currency_convert",
		Description: "Convert an amount between currencies using a fixed table of sample rates (not live market data). Omit the amount to list supported currencies.",
	}, handleCurrencyConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "color_convert",
		Description: "Convert a color between HEX, RGB and HSL. Set exactly one of hex, rgb or hsl; the other representations are derived from it.",
	}, handleColorConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "number_convert",
		Description: "Convert an unsigned integer between decimal, binary, hexadecimal and octal. Digits invalid for the input base are rejected.",
	}, handleNumberConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "text_transform",
		Description: "Apply a text transform (upper, lower, title, camel, snake, kebab, reverse, base64-encode, base64-decode, url-encode, url-decode) or every transform when transform is omitted. Also returns word, character and line counts.",
	}, handleTextTransform)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "datetime_convert",
		Description: "Convert between Unix timestamps (seconds) and dates. Set timestamp or date; with neither the current time is used. Returns the instant in ISO 8601, UTC, local date and time, Unix seconds and milliseconds, and rendered in the requested IANA timezone.",
	}, handleDatetimeConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "hash_generate",
		Description: "Compute MD5, SHA-1, SHA-256 and SHA-512 digests of text as lowercase hex. Set algorithm to return a single digest.",
	}, handleHashGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "password_generate",
		Description: "Generate a random password from the selected character classes, or a four-word passphrase. Set check to score an existing password instead. Default length is configurable via CONVKIT_PASSWORD_LENGTH.",
	}, handlePasswordGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "qrcode_url",
		Description: "Build the image URL for a QR code encoding text or a URL. Size is 100-1000 pixels (default 200); error correction is L, M, Q or H (default M). Set wifi_ssid to encode a WiFi network instead of text.",
	}, handleQRCodeURL)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "document_export",
		Description: "Export plain text as a txt, html, csv, json or md document. Returns the document content, MIME type and a suggested file name. Use output to write to a file instead of returning inline.",
	}, handleDocumentExport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "print_html",
		Description: "Lay out text, or a list of image files, as a print-ready HTML page that a browser can print to PDF. Page size, font and margins are configurable.",
	}, handlePrintHTML)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	msg := sanitizeError(err)
	slog.Debug("tool call failed", "error", msg, "kind", errorKind(err))
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

// errorKind names the converrors category of err for logging.
func errorKind(err error) string {
	switch {
	case errors.Is(err, converrors.ErrParse):
		return "parse"
	case errors.Is(err, converrors.ErrValidation):
		return "validation"
	case errors.Is(err, converrors.ErrEncoding):
		return "encoding"
	case errors.Is(err, converrors.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, converrors.ErrConfig):
		return "config"
	}
	return "other"
}

// textInput represents the two ways a tool's text can be provided.
// At most one of Text or File may be set.
type textInput struct {
	Text string `json:"text,omitempty" jsonschema:"Inline text"`
	File string `json:"file,omitempty" jsonschema:"Path to a text file on disk"`
}

// resolve returns the input text. An empty input is returned as "" so tools
// can apply their own emptiness rules.
func (in textInput) resolve() (string, error) {
	if in.File == "" {
		if int64(len(in.Text)) > cfg.MaxInputSize {
			return "", &converrors.ValidationError{Field: "text", Value: len(in.Text), Message: "inline text exceeds CONVKIT_MAX_INPUT_SIZE"}
		}
		return in.Text, nil
	}
	if in.Text != "" {
		return "", &converrors.ConfigError{Option: "input", Message: "set only one of text or file"}
	}
	if in.File == fileio.StdPath {
		// stdin carries the MCP transport.
		return "", &converrors.ConfigError{Option: "file", Value: in.File, Message: "stdin is not available to tools"}
	}
	return fileio.ReadText(in.File, cfg.MaxInputSize)
}

// writeOrInline writes data to output when set and reports the written path;
// otherwise the caller returns the data inline.
func writeOrInline(output string, data []byte) (string, error) {
	if output == "" {
		return "", nil
	}
	if output == fileio.StdPath {
		return "", &converrors.ConfigError{Option: "output", Value: output, Message: "stdout carries the MCP transport"}
	}
	if err := fileio.WriteOutput(output, data, nil); err != nil {
		return "", err
	}
	return output, nil
}
