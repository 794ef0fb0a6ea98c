// Package document exports plain text as downloadable documents and builds
// print-ready HTML pages from text or images.
package document

import (
	"bytes"
	"encoding/json"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/erraggy/convkit/converrors"
)

// Format is an export format.
type Format string

// Supported export formats.
const (
	FormatText     Format = "txt"
	FormatHTML     Format = "html"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
)

// Formats returns the export formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatHTML, FormatCSV, FormatJSON, FormatMarkdown}
}

// ParseFormat resolves a format name; a leading dot and case are ignored.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "."))
	switch f {
	case "text":
		return FormatText, nil
	case "markdown":
		return FormatMarkdown, nil
	case FormatText, FormatHTML, FormatCSV, FormatJSON, FormatMarkdown:
		return f, nil
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", &converrors.UnsupportedFormatError{Format: name, Direction: "output", Supported: names}
}

// MIMEType returns the media type of documents in format f.
func (f Format) MIMEType() string {
	switch f {
	case FormatHTML:
		return "text/html"
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatMarkdown:
		return "text/markdown"
	}
	return "text/plain"
}

// Document is an exported payload ready to be saved.
type Document struct {
	Content   string
	MIMEType  string
	Extension string
}

// Exporter converts text into the export formats.
type Exporter struct {
	// Title names the document; it defaults to "Document".
	Title string
	// Now stamps JSON exports; it defaults to time.Now.
	Now func() time.Time
}

// Export converts text with a default Exporter titled title.
func Export(text string, f Format, title string) (Document, error) {
	return Exporter{Title: title}.Export(text, f)
}

// Export converts text into format f. Blank text is rejected.
func (e Exporter) Export(text string, f Format) (Document, error) {
	if strings.TrimSpace(text) == "" {
		return Document{}, &converrors.ValidationError{Field: "text", Message: "enter text or upload a file"}
	}

	var content string
	switch f {
	case FormatText:
		content = text
	case FormatHTML:
		content = exportHTML(text)
	case FormatCSV:
		content = exportCSV(text)
	case FormatJSON:
		var err error
		if content, err = e.exportJSON(text); err != nil {
			return Document{}, err
		}
	case FormatMarkdown:
		content = exportMarkdown(text)
	default:
		_, err := ParseFormat(string(f))
		return Document{}, err
	}
	return Document{Content: content, MIMEType: f.MIMEType(), Extension: string(f)}, nil
}

func (e Exporter) title() string {
	if e.Title == "" {
		return "Document"
	}
	return e.Title
}

func exportHTML(text string) string {
	lines := strings.Split(text, "\n")
	blocks := make([]string, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, lineBlock(line, false))
	}
	return page("Document", exportStyle, blocks)
}

// lineBlock renders one text line as an HTML block. Headings are recognised
// by a "# ", "## " or "### " prefix; when bullets is set "- " and "• "
// lines become list items.
func lineBlock(line string, bullets bool) string {
	switch {
	case strings.TrimSpace(line) == "":
		return "<br>"
	case strings.HasPrefix(line, "### "):
		return "<h3>" + html.EscapeString(line[4:]) + "</h3>"
	case strings.HasPrefix(line, "## "):
		return "<h2>" + html.EscapeString(line[3:]) + "</h2>"
	case strings.HasPrefix(line, "# "):
		return "<h1>" + html.EscapeString(line[2:]) + "</h1>"
	case bullets && (strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "• ")):
		_, size := utf8.DecodeRuneInString(line)
		return "<li>" + html.EscapeString(line[size+1:]) + "</li>"
	}
	return "<p>" + html.EscapeString(line) + "</p>"
}

// exportCSV writes one quoted row per non-blank line under a "Content" header.
func exportCSV(text string) string {
	var b strings.Builder
	b.WriteString("Content")
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString("\n\"")
		b.WriteString(strings.ReplaceAll(line, `"`, `""`))
		b.WriteString("\"")
	}
	return b.String()
}

type jsonDocument struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Lines          []string `json:"lines"`
	WordCount      int      `json:"wordCount"`
	CharacterCount int      `json:"characterCount"`
	CreatedAt      string   `json:"createdAt"`
}

func (e Exporter) exportJSON(text string) (string, error) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	doc := jsonDocument{
		Title:          e.title(),
		Content:        text,
		Lines:          strings.Split(text, "\n"),
		WordCount:      len(strings.Fields(text)),
		CharacterCount: utf8.RuneCountInString(text),
		CreatedAt:      now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", &converrors.EncodingError{Encoding: "json", Message: "encoding document", Cause: err}
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// exportMarkdown promotes long lines without sentence punctuation to
// headings and blanks out whitespace-only lines.
func exportMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			lines[i] = ""
		case utf8.RuneCountInString(line) > 50 && !strings.ContainsAny(line, ".,"):
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}

// OutputName derives a download name from an uploaded file name by swapping
// its extension for ext. An empty input name yields "document.<ext>".
func OutputName(inputName, ext string) string {
	base := filepath.Base(inputName)
	if inputName == "" || base == "." || base == string(filepath.Separator) {
		base = "document"
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "document"
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}

var (
	invisibleElements = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)>`)
	anyTag            = regexp.MustCompile(`<[^>]+>`)
)

// ImportText returns the text content of an uploaded file. HTML files
// (by extension) are reduced to their text; anything else is returned as is.
func ImportText(name, data string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		s := invisibleElements.ReplaceAllString(data, "")
		s = anyTag.ReplaceAllString(s, "")
		return html.UnescapeString(s)
	}
	return data
}
