package dataformat

import (
	"fmt"
	"path/filepath"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/internal/fileio"
	"github.com/erraggy/convkit/internal/issues"
	"github.com/erraggy/convkit/internal/severity"
	"github.com/erraggy/convkit/value"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or documented format limitations
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates data that could not be carried at all
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// ConversionResult contains the results of a structured-data conversion
type ConversionResult struct {
	// Output is the serialized text in the target format
	Output string
	// Value is the parsed tree the output was rendered from
	Value value.Value
	// SourceFormat is the input format (given or detected)
	SourceFormat Format
	// TargetFormat is the output format
	TargetFormat Format
	// Issues contains all conversion issues
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter handles conversion between structured-data formats
type Converter struct {
	// StrictMode causes conversion to fail on any warnings
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// RootName is the XML root element name (defaults to "root")
	RootName string
	// FullYAML selects the full YAML parser for YAML input
	FullYAML bool
	// Logger receives diagnostics (defaults to NopLogger)
	Logger Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		IncludeInfo: true,
		RootName:    DefaultRootName,
	}
}

// Convert is a convenience function that converts text from one format to
// another with default settings. It's equivalent to creating a Converter with
// New() and calling Convert().
//
// Example:
//
//	result, err := dataformat.Convert(`{"name":"John"}`, dataformat.FormatJSON, dataformat.FormatYAML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output)
func Convert(text string, from, to Format) (*ConversionResult, error) {
	return New().Convert(text, from, to)
}

// Convert parses text as from and serializes it as to. An empty from is
// detected from the text. Unknown formats are rejected before parsing.
func (c *Converter) Convert(text string, from, to Format) (*ConversionResult, error) {
	logger := c.logger()

	if from == "" {
		detected, ok := DetectFormat(text)
		if !ok {
			return nil, &converrors.ConfigError{Option: "source format", Message: "could not detect the input format"}
		}
		logger.Debug("detected input format", "format", detected)
		from = detected
	}
	if !from.IsValid() {
		return nil, unsupported(from, "input")
	}
	if !to.IsValid() {
		return nil, unsupported(to, "output")
	}

	v, parseNotes, err := parse(text, from, c.FullYAML)
	if err != nil {
		logger.Warn("input rejected", "format", from, "error", err)
		return nil, err
	}
	logger.Debug("parsed input", "format", from, "kind", v.Kind(), "size", v.Len())

	rootName := c.RootName
	if rootName == "" {
		rootName = DefaultRootName
	}
	out, err := Serialize(v, to, rootName)
	if err != nil {
		return nil, err
	}

	result := &ConversionResult{
		Output:       out,
		Value:        v,
		SourceFormat: from,
		TargetFormat: to,
		Issues:       make([]ConversionIssue, 0, len(parseNotes)),
	}
	result.Issues = append(result.Issues, parseNotes...)
	result.Issues = append(result.Issues, sourceIssues(from, c.FullYAML)...)
	result.Issues = append(result.Issues, targetIssues(v, to, rootName)...)
	if from == to {
		result.Issues = append(result.Issues, ConversionIssue{
			Path:     "document",
			Message:  fmt.Sprintf("Source and target formats are the same (%s), output is re-serialized", to),
			Severity: SeverityInfo,
		})
	}

	c.updateCounts(result)
	result.Success = result.CriticalCount == 0
	logger.Debug("converted", "from", from, "to", to, "warnings", result.WarningCount)

	// In strict mode, fail on any warnings
	if c.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("conversion failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !c.IncludeInfo {
		result.Issues = issues.Without(result.Issues, SeverityInfo)
		result.InfoCount = 0
	}

	return result, nil
}

func (c *Converter) logger() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	result.InfoCount, result.WarningCount, result.CriticalCount = issues.Count(result.Issues)
}

func sourceIssues(from Format, fullYAML bool) []ConversionIssue {
	switch from {
	case FormatCSV:
		return []ConversionIssue{{
			Path:     "document",
			Message:  "CSV cells are read as strings",
			Severity: SeverityInfo,
			Context:  "numbers and booleans from CSV input keep their text form",
		}}
	case FormatXML:
		return []ConversionIssue{{
			Path:     "document",
			Message:  "XML element text and attributes are read as strings; the root tag is discarded",
			Severity: SeverityInfo,
		}}
	case FormatYAML:
		if fullYAML {
			return nil
		}
		return []ConversionIssue{{
			Path:     "document",
			Message:  "YAML read with the restricted parser (key: value pairs, one nesting level)",
			Severity: SeverityInfo,
		}}
	default:
		return nil
	}
}

func targetIssues(v value.Value, to Format, rootName string) []ConversionIssue {
	switch to {
	case FormatCSV:
		return csvIssues(v)
	case FormatXML:
		return xmlIssues(v, rootName)
	default:
		return nil
	}
}

func (cfg *convertConfig) readInput() (string, error) {
	switch {
	case cfg.input != nil:
		return *cfg.input, nil
	case cfg.reader != nil:
		return fileio.ReadAll(cfg.reader, cfg.maxInputSize)
	default:
		text, err := fileio.ReadText(*cfg.filePath, cfg.maxInputSize)
		if err != nil {
			return "", err
		}
		if cfg.sourceFormat == "" {
			if f, err := ParseFormat(filepath.Ext(*cfg.filePath), "input"); err == nil {
				cfg.sourceFormat = f
			}
		}
		return text, nil
	}
}
