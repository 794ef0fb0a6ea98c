package document

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/convkit/converrors"
)

func TestExport(t *testing.T) {
	const text = "# Notes\nSay \"hi\" & <wave>\n\nlast line"

	t.Run("txt", func(t *testing.T) {
		doc, err := Export(text, FormatText, "")
		require.NoError(t, err)
		assert.Equal(t, text, doc.Content)
		assert.Equal(t, "text/plain", doc.MIMEType)
		assert.Equal(t, "txt", doc.Extension)
	})

	t.Run("html", func(t *testing.T) {
		doc, err := Export(text, FormatHTML, "")
		require.NoError(t, err)
		assert.Equal(t, "text/html", doc.MIMEType)
		assert.True(t, strings.HasPrefix(doc.Content, "<!DOCTYPE html>"))
		assert.Contains(t, doc.Content, "    <h1>Notes</h1>\n")
		assert.Contains(t, doc.Content, "<p>Say &#34;hi&#34; &amp; &lt;wave&gt;</p>")
		assert.Contains(t, doc.Content, "    <br>\n")
		assert.Contains(t, doc.Content, "<p>last line</p>")
	})

	t.Run("csv", func(t *testing.T) {
		doc, err := Export(text, FormatCSV, "")
		require.NoError(t, err)
		assert.Equal(t, "Content\n\"# Notes\"\n\"Say \"\"hi\"\" & <wave>\"\n\"last line\"", doc.Content)
		assert.Equal(t, "text/csv", doc.MIMEType)
	})

	t.Run("json", func(t *testing.T) {
		e := Exporter{Title: "notes.txt", Now: func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }}
		doc, err := e.Export(text, FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "application/json", doc.MIMEType)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(doc.Content), &got))
		assert.Equal(t, "notes.txt", got["title"])
		assert.Equal(t, text, got["content"])
		assert.Len(t, got["lines"], 4)
		assert.EqualValues(t, 8, got["wordCount"])
		assert.EqualValues(t, len(text), got["characterCount"])
		assert.Equal(t, "2024-01-02T03:04:05.000Z", got["createdAt"])
		assert.Contains(t, doc.Content, "\n  \"title\": \"notes.txt\"")
		assert.Contains(t, doc.Content, "<wave>")
	})

	t.Run("md", func(t *testing.T) {
		long := strings.Repeat("word ", 11)
		doc, err := Export(long+"\n  \nShort, with comma.\n"+long+".", FormatMarkdown, "")
		require.NoError(t, err)
		assert.Equal(t, "# "+long+"\n\nShort, with comma.\n"+long+".", doc.Content)
		assert.Equal(t, "text/markdown", doc.MIMEType)
	})
}

func TestExport_Errors(t *testing.T) {
	_, err := Export("  \n ", FormatText, "")
	assert.ErrorIs(t, err, converrors.ErrValidation)

	_, err = Export("x", Format("pdf"), "")
	assert.ErrorIs(t, err, converrors.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{".MD": FormatMarkdown, "markdown": FormatMarkdown, "text": FormatText, "html": FormatHTML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, converrors.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "txt, html, csv, json, md")
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in, ext, want string
	}{
		{"report.txt", "html", "report.html"},
		{"dir/archive.tar.gz", ".md", "archive.tar.md"},
		{"README", "txt", "README.txt"},
		{"", "csv", "document.csv"},
		{".bashrc", "txt", "document.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputName(tt.in, tt.ext), tt.in)
	}
}

func TestImportText(t *testing.T) {
	page := "<html><head><style>p{}</style><script>alert(1)</script></head><body><p>Fish &amp; chips</p></body></html>"
	assert.Equal(t, "Fish & chips", ImportText("menu.HTML", page))
	assert.Equal(t, page, ImportText("menu.txt", page))
}

func TestPrintHTML(t *testing.T) {
	text := "# Title\n  intro text  \n- one\n• two\nafter\n\n## Part"
	out, err := PrintHTML(text, Settings{FontFamily: "georgia", FontSize: 14, PageSize: "letter"})
	require.NoError(t, err)

	assert.Contains(t, out, `font-family: "Georgia", sans-serif;`)
	assert.Contains(t, out, "font-size: 14px;")
	assert.Contains(t, out, "line-height: 1.5;")
	assert.Contains(t, out, "margin: 40px;")
	assert.Contains(t, out, "@page { size: Letter; }")
	assert.Contains(t, out, "<h1>Title</h1>\n    <p>intro text</p>\n    <ul>\n    <li>one</li>\n    <li>two</li>\n    </ul>\n    <p>after</p>\n    <br>\n    <h2>Part</h2>")
}

func TestPrintHTML_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		s    Settings
		err  error
	}{
		{"blank", " ", Settings{}, converrors.ErrValidation},
		{"font", "x", Settings{FontFamily: "Comic Sans"}, converrors.ErrConfig},
		{"font size", "x", Settings{FontSize: 100}, converrors.ErrConfig},
		{"page", "x", Settings{PageSize: "B5"}, converrors.ErrConfig},
		{"line height", "x", Settings{LineHeight: "1.5; color: red"}, converrors.ErrConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PrintHTML(tt.text, tt.s)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestImagesHTML(t *testing.T) {
	images := []string{"data:image/png;base64,iVBORw0KGgo=", "data:image/jpeg;base64,/9j/4AAQ"}
	out, err := ImagesHTML(images, ImageSettings{Orientation: "Landscape", Fit: true})
	require.NoError(t, err)
	assert.Contains(t, out, "@page { size: A4 landscape; margin: 20px; }")
	assert.Contains(t, out, `<img src="data:image/png;base64,iVBORw0KGgo=" alt="Image 1">`)
	assert.Contains(t, out, `alt="Image 2"`)
	assert.Contains(t, out, "object-fit: contain;")
	assert.Equal(t, 2, strings.Count(out, `<div class="page">`))

	_, err = ImagesHTML(nil, ImageSettings{})
	assert.ErrorIs(t, err, converrors.ErrValidation)

	_, err = ImagesHTML([]string{"data:text/plain;base64,aGk="}, ImageSettings{})
	assert.ErrorIs(t, err, converrors.ErrValidation)

	_, err = ImagesHTML(images, ImageSettings{Orientation: "sideways"})
	assert.ErrorIs(t, err, converrors.ErrConfig)
}
