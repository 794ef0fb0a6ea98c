// Package catalog lists the available converters and filters them by a
// free-text query.
package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Entry describes one converter.
type Entry struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	// Command is the CLI subcommand that runs the converter.
	Command string `json:"command" yaml:"command"`
}

var entries = []Entry{
	{"units", "Unit Converter", "Convert between different units of measurement", []string{"length", "weight", "temperature", "area", "volume"}, "units"},
	{"currency", "Currency Converter", "Convert between different currencies with fixed sample rates", []string{"money", "exchange", "forex"}, "currency"},
	{"pdf", "PDF Converter", "Lay out text or images as print-ready pages", []string{"pdf", "text", "document", "image", "create", "print"}, "print"},
	{"document", "Document Converter", "Convert text between document formats", []string{"txt", "html", "csv", "json", "md"}, "document"},
	{"qrcode", "QR Code Generator", "Build QR code image requests", []string{"qr", "barcode", "generate"}, "qrcode"},
	{"hash", "Hash Generator", "Generate MD5, SHA1, SHA256 and SHA512 hashes", []string{"hash", "md5", "sha1", "sha256", "sha512", "security"}, "hash"},
	{"password", "Password Generator", "Generate secure passwords and passphrases", []string{"password", "security", "generate", "random"}, "password"},
	{"data", "Data Converter", "Convert between JSON, XML, CSV, YAML", []string{"json", "xml", "csv", "yaml", "data"}, "data"},
	{"markdown", "Markdown Converter", "Convert Markdown to HTML and vice versa", []string{"markdown", "html", "text", "format"}, "markdown"},
	{"color", "Color Converter", "Convert between color formats (HEX, RGB, HSL)", []string{"hex", "rgb", "hsl", "design"}, "color"},
	{"number", "Number Base Converter", "Convert between binary, decimal, hexadecimal", []string{"binary", "decimal", "hex", "octal", "programming"}, "numbase"},
	{"datetime", "Date & Time Converter", "Convert timestamps, timezones, and date formats", []string{"timestamp", "timezone", "unix"}, "datetime"},
	{"text", "Text Converter", "Convert text encoding, case, and formats", []string{"encoding", "case", "base64", "url"}, "text"},
}

// All returns every entry in display order.
func All() []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Tags = slices.Clone(e.Tags)
		out[i] = e
	}
	return out
}

// Find returns the entry with the given ID.
func Find(id string) (Entry, bool) {
	for _, e := range All() {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Search returns the entries whose title, description or any tag contains
// query, ignoring case. A blank query matches every entry.
func Search(query string) []Entry {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return All()
	}
	var out []Entry
	for _, e := range All() {
		if matches(fold, e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(fold cases.Caser, e Entry, q string) bool {
	if strings.Contains(fold.String(e.Title), q) || strings.Contains(fold.String(e.Description), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(fold.String(tag), q) {
			return true
		}
	}
	return false
}
