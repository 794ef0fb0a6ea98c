package dataformat

import (
	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/internal/issues"
	"github.com/erraggy/convkit/value"
)

// DefaultRootName is the XML root element name used when none is given.
const DefaultRootName = "root"

// Parse reads text in the given format into a Value. YAML input uses the
// restricted line-oriented subset; use ParseFullYAML for arbitrary YAML.
//
// Malformed input returns a *converrors.ParseError naming the format.
// An unknown format returns a *converrors.UnsupportedFormatError.
func Parse(text string, format Format) (value.Value, error) {
	v, _, err := parse(text, format, false)
	return v, err
}

// ParseFullYAML reads any YAML document, preserving mapping key order.
func ParseFullYAML(text string) (value.Value, error) {
	return parseYAMLFull(text)
}

func parse(text string, format Format, fullYAML bool) (value.Value, []issues.Issue, error) {
	switch format {
	case FormatJSON:
		v, err := parseJSON(text)
		return v, nil, err
	case FormatCSV:
		v, notes := parseCSV(text)
		return v, notes, nil
	case FormatXML:
		v, err := parseXML(text)
		return v, nil, err
	case FormatYAML:
		if fullYAML {
			v, err := parseYAMLFull(text)
			return v, nil, err
		}
		return parseYAMLRestricted(text)
	default:
		return value.Null(), nil, unsupported(format, "input")
	}
}

// Serialize renders v in the given format. rootName names the XML root
// element and defaults to "root". Serialization does not fail for any
// well-formed Value; the error only reports an unknown format.
func Serialize(v value.Value, format Format, rootName string) (string, error) {
	if rootName == "" {
		rootName = DefaultRootName
	}
	switch format {
	case FormatJSON:
		return serializeJSON(v, "  "), nil
	case FormatCSV:
		return serializeCSV(v), nil
	case FormatXML:
		return serializeXML(v, rootName), nil
	case FormatYAML:
		return serializeYAML(v)
	default:
		return "", unsupported(format, "output")
	}
}

// CompactJSON renders v as single-line JSON.
func CompactJSON(v value.Value) string {
	return serializeJSON(v, "")
}

func unsupported(format Format, direction string) error {
	return &converrors.UnsupportedFormatError{
		Format:    string(format),
		Direction: direction,
		Supported: FormatNames(),
	}
}
