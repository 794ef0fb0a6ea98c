package dataformat

import (
	"strings"

	"github.com/erraggy/convkit/converrors"
)

// Format identifies a structured-data serialization format.
type Format string

const (
	// FormatJSON is JSON (RFC 8259).
	FormatJSON Format = "json"
	// FormatCSV is comma-separated values with a header row.
	FormatCSV Format = "csv"
	// FormatXML is XML; the root element wraps the data.
	FormatXML Format = "xml"
	// FormatYAML is YAML; parsing is restricted unless full YAML is enabled.
	FormatYAML Format = "yaml"
)

// Formats returns every supported format in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatXML, FormatYAML}
}

// FormatNames returns the names of every supported format.
func FormatNames() []string {
	names := make([]string, 0, 4)
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return names
}

// String returns the lowercase format name.
func (f Format) String() string { return string(f) }

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatXML, FormatYAML:
		return true
	default:
		return false
	}
}

// Extension returns the conventional file extension including the dot.
func (f Format) Extension() string {
	if !f.IsValid() {
		return ""
	}
	return "." + string(f)
}

// MIMEType returns the media type used when downloading output of this format.
func (f Format) MIMEType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	case FormatXML:
		return "application/xml"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain"
	}
}

// ParseFormat resolves a case-insensitive format name ("yml" is accepted for YAML).
// direction ("input" or "output") only shapes the error message.
func ParseFormat(name, direction string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, ".")
	if n == "yml" {
		n = string(FormatYAML)
	}
	f := Format(n)
	if !f.IsValid() {
		return "", &converrors.UnsupportedFormatError{
			Format:    name,
			Direction: direction,
			Supported: FormatNames(),
		}
	}
	return f, nil
}

// DetectFormat guesses the format of text from its first significant characters.
// It reports false when nothing matches.
func DetectFormat(text string) (Format, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	switch trimmed[0] {
	case '{', '[':
		return FormatJSON, true
	case '<':
		return FormatXML, true
	}

	first, _, _ := strings.Cut(trimmed, "\n")
	first = strings.TrimSpace(first)
	switch {
	case strings.HasPrefix(first, "---"), strings.HasPrefix(first, "#"), strings.HasPrefix(first, "- "):
		return FormatYAML, true
	case strings.Contains(first, ":"):
		return FormatYAML, true
	case strings.Contains(first, ","):
		return FormatCSV, true
	default:
		return "", false
	}
}
