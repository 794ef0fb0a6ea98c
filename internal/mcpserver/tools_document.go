package mcpserver

import (
	"context"
	"path/filepath"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/document"
	"github.com/erraggy/convkit/internal/fileio"
	"github.com/erraggy/convkit/qrcode"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type documentExportInput struct {
	Input  textInput `json:"input"            jsonschema:"The text to export"`
	Format string    `json:"format"           jsonschema:"Export format: txt\\, html\\, csv\\, json or md"`
	Title  string    `json:"title,omitempty"  jsonschema:"Document title used by the json format"`
	Output string    `json:"output,omitempty" jsonschema:"File path to write the document. If omitted the document is returned inline."`
}

type documentExportOutput struct {
	Format    string `json:"format"`
	MIMEType  string `json:"mime_type"`
	FileName  string `json:"file_name"`
	WrittenTo string `json:"written_to,omitempty"`
	Document  string `json:"document,omitempty"`
}

func handleDocumentExport(_ context.Context, _ *mcp.CallToolRequest, input documentExportInput) (*mcp.CallToolResult, documentExportOutput, error) {
	f, err := document.ParseFormat(input.Format)
	if err != nil {
		return errResult(err), documentExportOutput{}, nil
	}
	text, err := input.Input.resolve()
	if err != nil {
		return errResult(err), documentExportOutput{}, nil
	}
	if input.Input.File != "" {
		text = document.ImportText(input.Input.File, text)
	}

	title := input.Title
	if title == "" && input.Input.File != "" {
		title = filepath.Base(input.Input.File)
	}
	doc, err := document.Export(text, f, title)
	if err != nil {
		return errResult(err), documentExportOutput{}, nil
	}

	output := documentExportOutput{
		Format:   doc.Extension,
		MIMEType: doc.MIMEType,
		FileName: document.OutputName(input.Input.File, doc.Extension),
	}
	written, err := writeOrInline(input.Output, []byte(doc.Content))
	if err != nil {
		return errResult(err), documentExportOutput{}, nil
	}
	if written != "" {
		output.WrittenTo = written
	} else {
		output.Document = doc.Content
	}
	return nil, output, nil
}

type printHTMLInput struct {
	Input       textInput `json:"input,omitempty"       jsonschema:"Text to lay out. Lines starting with # become headings and lines starting with - become list items."`
	Images      []string  `json:"images,omitempty"      jsonschema:"Image file paths to lay out one per page instead of text"`
	PageSize    string    `json:"page_size,omitempty"   jsonschema:"A4 (default)\\, A3\\, Letter or Legal"`
	Orientation string    `json:"orientation,omitempty" jsonschema:"portrait (default) or landscape. Images only."`
	FontFamily  string    `json:"font_family,omitempty" jsonschema:"Arial (default)\\, Times New Roman\\, Helvetica\\, Georgia or Courier New. Text only."`
	FontSize    int       `json:"font_size,omitempty"   jsonschema:"Font size in pixels 6-72 (default 12). Text only."`
	LineHeight  string    `json:"line_height,omitempty" jsonschema:"Line height multiplier such as 1.5. Text only."`
	Margin      int       `json:"margin,omitempty"      jsonschema:"Page margin in pixels 1-200"`
	Fit         bool      `json:"fit,omitempty"         jsonschema:"Scale images to fit the page. Images only."`
	Output      string    `json:"output,omitempty"      jsonschema:"File path to write the HTML. If omitted the HTML is returned inline."`
}

type printHTMLOutput struct {
	Pages     int    `json:"pages,omitempty"`
	WrittenTo string `json:"written_to,omitempty"`
	HTML      string `json:"html,omitempty"`
}

func handlePrintHTML(_ context.Context, _ *mcp.CallToolRequest, input printHTMLInput) (*mcp.CallToolResult, printHTMLOutput, error) {
	hasText := input.Input.Text != "" || input.Input.File != ""
	if hasText && len(input.Images) > 0 {
		return errResult(&converrors.ConfigError{Option: "input", Message: "set text or images, not both"}), printHTMLOutput{}, nil
	}

	var page string
	var pages int
	if len(input.Images) > 0 {
		urls := make([]string, 0, len(input.Images))
		for _, path := range input.Images {
			if path == fileio.StdPath {
				return errResult(&converrors.ConfigError{Option: "images", Message: "stdin is reserved for the MCP transport"}), printHTMLOutput{}, nil
			}
			u, err := fileio.ReadDataURL(path, cfg.MaxInputSize)
			if err != nil {
				return errResult(err), printHTMLOutput{}, nil
			}
			urls = append(urls, u)
		}
		var err error
		page, err = document.ImagesHTML(urls, document.ImageSettings{
			PageSize:    input.PageSize,
			Orientation: input.Orientation,
			Margin:      input.Margin,
			Fit:         input.Fit,
		})
		if err != nil {
			return errResult(err), printHTMLOutput{}, nil
		}
		pages = len(urls)
	} else {
		text, err := input.Input.resolve()
		if err != nil {
			return errResult(err), printHTMLOutput{}, nil
		}
		page, err = document.PrintHTML(text, document.Settings{
			FontFamily: input.FontFamily,
			FontSize:   input.FontSize,
			LineHeight: input.LineHeight,
			Margin:     input.Margin,
			PageSize:   input.PageSize,
		})
		if err != nil {
			return errResult(err), printHTMLOutput{}, nil
		}
	}

	output := printHTMLOutput{Pages: pages}
	written, err := writeOrInline(input.Output, []byte(page))
	if err != nil {
		return errResult(err), printHTMLOutput{}, nil
	}
	if written != "" {
		output.WrittenTo = written
	} else {
		output.HTML = page
	}
	return nil, output, nil
}

type qrcodeInput struct {
	Text         string `json:"text,omitempty"          jsonschema:"Text or URL to encode"`
	Size         int    `json:"size,omitempty"          jsonschema:"Image edge in pixels 100-1000 (default 200)"`
	ECC          string `json:"ecc,omitempty"           jsonschema:"Error correction level L\\, M\\, Q or H (default M)"`
	WiFiSSID     string `json:"wifi_ssid,omitempty"     jsonschema:"Encode a WiFi network with this SSID instead of text"`
	WiFiPassword string `json:"wifi_password,omitempty" jsonschema:"WiFi password"`
	WiFiSecurity string `json:"wifi_security,omitempty" jsonschema:"WPA (default)\\, WEP or nopass"`
}

type qrcodeOutput struct {
	URL     string `json:"url"`
	Payload string `json:"payload"`
}

func handleQRCodeURL(_ context.Context, _ *mcp.CallToolRequest, input qrcodeInput) (*mcp.CallToolResult, qrcodeOutput, error) {
	payload := input.Text
	if input.WiFiSSID != "" {
		if input.Text != "" {
			return errResult(&converrors.ConfigError{Option: "input", Message: "set text or wifi_ssid, not both"}), qrcodeOutput{}, nil
		}
		security := input.WiFiSecurity
		if security == "" {
			security = "WPA"
		}
		payload = qrcode.WiFi(security, input.WiFiSSID, input.WiFiPassword)
	}

	u, err := qrcode.BuildURL(qrcode.Request{
		Text:     payload,
		Size:     input.Size,
		ECC:      qrcode.ECC(input.ECC),
		Endpoint: cfg.QREndpoint,
	})
	if err != nil {
		return errResult(err), qrcodeOutput{}, nil
	}
	return nil, qrcodeOutput{URL: u, Payload: payload}, nil
}
