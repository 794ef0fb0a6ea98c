package document

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/internal/options"
)

const exportStyle = `        body { font-family: Arial, sans-serif; line-height: 1.6; margin: 40px; }
        h1, h2, h3 { color: #333; }
        p { margin-bottom: 16px; }`

func page(title, style string, blocks []string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("    <title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("    <style>\n" + style + "\n    </style>\n")
	b.WriteString("</head>\n<body>\n")
	for _, block := range blocks {
		b.WriteString("    " + block + "\n")
	}
	b.WriteString("</body>\n</html>")
	return b.String()
}

// Page sizes accepted by Settings and ImageSettings.
var pageSizes = []string{"A4", "A3", "Letter", "Legal"}

// Fonts accepted by Settings.
var fonts = []string{"Arial", "Times New Roman", "Helvetica", "Georgia", "Courier New"}

var lineHeightPattern = regexp.MustCompile(`^[0-9](\.[0-9]{1,2})?$`)

// Settings controls the layout of a printable text page.
type Settings struct {
	// FontFamily is one of Arial, Times New Roman, Helvetica, Georgia or
	// Courier New; empty means Arial.
	FontFamily string
	// FontSize is in pixels, 6..72; zero means 12.
	FontSize int
	// LineHeight is a unitless multiplier such as "1.5"; empty means 1.5.
	LineHeight string
	// Margin is in pixels, 1..200; zero means 40.
	Margin int
	// PageSize is A4, A3, Letter or Legal; empty means A4.
	PageSize string
}

func (s Settings) normalize() (Settings, error) {
	var err error
	if s.FontFamily, err = oneOf("fontFamily", s.FontFamily, "Arial", fonts); err != nil {
		return s, err
	}
	if s.PageSize, err = oneOf("pageSize", s.PageSize, "A4", pageSizes); err != nil {
		return s, err
	}
	if s.FontSize, err = options.IntInRange("fontSize", s.FontSize, 12, 6, 72); err != nil {
		return s, err
	}
	if s.Margin, err = options.IntInRange("margin", s.Margin, 40, 1, 200); err != nil {
		return s, err
	}
	if s.LineHeight == "" {
		s.LineHeight = "1.5"
	}
	if !lineHeightPattern.MatchString(s.LineHeight) {
		return s, &converrors.ConfigError{Option: "lineHeight", Value: s.LineHeight, Message: "expected a number such as 1.5"}
	}
	return s, nil
}

func oneOf(option, v, fallback string, allowed []string) (string, error) {
	if v == "" {
		return fallback, nil
	}
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return a, nil
		}
	}
	return "", &converrors.ConfigError{Option: option, Value: v, Message: "expected one of " + strings.Join(allowed, ", ")}
}

// PrintHTML lays text out as a print-ready HTML page; printing it to PDF is
// left to the browser. Lines are trimmed, "# " prefixes become headings and
// "- " or "• " lines become list items.
func PrintHTML(text string, s Settings) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &converrors.ValidationError{Field: "text", Message: "enter text content"}
	}
	s, err := s.normalize()
	if err != nil {
		return "", err
	}

	style := `        @page { size: ` + s.PageSize + `; }
        body {
            font-family: "` + s.FontFamily + `", sans-serif;
            font-size: ` + strconv.Itoa(s.FontSize) + `px;
            line-height: ` + s.LineHeight + `;
            margin: ` + strconv.Itoa(s.Margin) + `px;
            color: #333;
        }
        h1, h2, h3 { color: #2c3e50; margin-top: 24px; margin-bottom: 12px; }
        h1 { font-size: 24px; border-bottom: 2px solid #3498db; padding-bottom: 8px; }
        h2 { font-size: 20px; }
        h3 { font-size: 16px; }
        p { margin-bottom: 12px; }
        ul, ol { margin-bottom: 12px; padding-left: 24px; }
        li { margin-bottom: 4px; }`

	lines := strings.Split(text, "\n")
	blocks := make([]string, 0, len(lines))
	inList := false
	for _, line := range lines {
		block := lineBlock(strings.TrimSpace(line), true)
		isItem := strings.HasPrefix(block, "<li>")
		switch {
		case isItem && !inList:
			blocks = append(blocks, "<ul>")
		case !isItem && inList:
			blocks = append(blocks, "</ul>")
		}
		inList = isItem
		blocks = append(blocks, block)
	}
	if inList {
		blocks = append(blocks, "</ul>")
	}
	return page("Document", style, blocks), nil
}

// ImageSettings controls the layout of a printable image document.
type ImageSettings struct {
	// PageSize is A4, A3, Letter or Legal; empty means A4.
	PageSize string
	// Orientation is portrait or landscape; empty means portrait.
	Orientation string
	// Margin is in pixels, 1..200; zero means 20.
	Margin int
	// Fit scales each image to the page when true, otherwise images keep
	// their natural size.
	Fit bool
}

// ImagesHTML lays out one image per page. Every entry must be an image
// data URL such as those produced by fileio.ReadDataURL.
func ImagesHTML(dataURLs []string, s ImageSettings) (string, error) {
	if len(dataURLs) == 0 {
		return "", &converrors.ValidationError{Field: "images", Message: "add at least one image"}
	}
	var err error
	if s.PageSize, err = oneOf("pageSize", s.PageSize, "A4", pageSizes); err != nil {
		return "", err
	}
	if s.Orientation, err = oneOf("orientation", s.Orientation, "portrait", []string{"portrait", "landscape"}); err != nil {
		return "", err
	}
	if s.Margin, err = options.IntInRange("margin", s.Margin, 20, 1, 200); err != nil {
		return "", err
	}

	imgStyle := "display: block; margin: 0 auto;"
	if s.Fit {
		imgStyle = "display: block; margin: 0 auto; max-width: 100%; max-height: 100vh; object-fit: contain;"
	}
	style := `        @page { size: ` + s.PageSize + ` ` + s.Orientation + `; margin: ` + strconv.Itoa(s.Margin) + `px; }
        body { margin: 0; }
        .page { page-break-after: always; }
        .page:last-child { page-break-after: auto; }
        img { ` + imgStyle + ` }`

	blocks := make([]string, 0, len(dataURLs))
	for i, u := range dataURLs {
		if !strings.HasPrefix(u, "data:image/") {
			return "", &converrors.ValidationError{Field: "images", Value: i, Message: "not an image data URL"}
		}
		blocks = append(blocks, `<div class="page"><img src="`+html.EscapeString(u)+`" alt="Image `+strconv.Itoa(i+1)+`"></div>`)
	}
	return page("Images", style, blocks), nil
}
