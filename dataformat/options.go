package dataformat

import (
	"io"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/internal/options"
)

// Option is a function that configures a conversion
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion
type convertConfig struct {
	// Input source (exactly one must be set)
	input    *string
	reader   io.Reader
	filePath *string

	sourceFormat Format
	targetFormat Format
	rootName     string
	fullYAML     bool
	strictMode   bool
	includeInfo  bool
	maxInputSize int64
	logger       Logger
}

// ConvertWithOptions converts structured data using functional options.
//
// Example:
//
//	result, err := dataformat.ConvertWithOptions(
//	    dataformat.WithInput(`[{"name":"John","age":30}]`),
//	    dataformat.WithSourceFormat(dataformat.FormatJSON),
//	    dataformat.WithTargetFormat(dataformat.FormatCSV),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	text, err := cfg.readInput()
	if err != nil {
		return nil, err
	}

	c := &Converter{
		StrictMode:  cfg.strictMode,
		IncludeInfo: cfg.includeInfo,
		RootName:    cfg.rootName,
		FullYAML:    cfg.fullYAML,
		Logger:      cfg.logger,
	}
	return c.Convert(text, cfg.sourceFormat, cfg.targetFormat)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		targetFormat: FormatJSON,
		rootName:     DefaultRootName,
		includeInfo:  true,
		logger:       NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"input (use WithInput, WithReader, or WithFilePath)",
		cfg.input != nil, cfg.reader != nil, cfg.filePath != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithInput specifies the input text directly
func WithInput(text string) Option {
	return func(cfg *convertConfig) error {
		cfg.input = &text
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &converrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithFilePath specifies a file to read as input ("-" reads stdin)
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return &converrors.ConfigError{Option: "file path", Message: "path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithSourceFormat sets the input format.
// Default: detected from the input text.
func WithSourceFormat(f Format) Option {
	return func(cfg *convertConfig) error {
		if f != "" && !f.IsValid() {
			return unsupported(f, "input")
		}
		cfg.sourceFormat = f
		return nil
	}
}

// WithTargetFormat sets the output format.
// Default: FormatJSON
func WithTargetFormat(f Format) Option {
	return func(cfg *convertConfig) error {
		if !f.IsValid() {
			return unsupported(f, "output")
		}
		cfg.targetFormat = f
		return nil
	}
}

// WithRootName sets the XML root element name.
// Default: "root"
func WithRootName(name string) Option {
	return func(cfg *convertConfig) error {
		if name != "" {
			cfg.rootName = name
		}
		return nil
	}
}

// WithFullYAML enables the full YAML parser for YAML input instead of the
// restricted line-oriented subset.
// Default: false
func WithFullYAML(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.fullYAML = enabled
		return nil
	}
}

// WithStrictMode causes conversion to fail when any warning is raised.
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo controls whether informational issues are reported.
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithMaxInputSize bounds reader and file input in bytes.
// Default: 10 MiB
func WithMaxInputSize(n int64) Option {
	return func(cfg *convertConfig) error {
		if n < 0 {
			return &converrors.ConfigError{Option: "max input size", Value: n, Message: "must not be negative"}
		}
		cfg.maxInputSize = n
		return nil
	}
}

// WithLogger sets the logger for conversion diagnostics.
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *convertConfig) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}
