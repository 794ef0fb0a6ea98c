package converrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates malformed structured-data input.
	ErrParse = errors.New("parse error")

	// ErrValidation indicates a field value that failed its input pattern.
	ErrValidation = errors.New("validation error")

	// ErrEncoding indicates a malformed encoded string (Base64, URL).
	ErrEncoding = errors.New("encoding error")

	// ErrUnsupportedFormat indicates a format with no implemented conversion path.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse structured-data input.
type ParseError struct {
	// Format is the source format being parsed (e.g., "json", "xml")
	Format string
	// Line is the 1-based line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg = "invalid " + strings.ToUpper(e.Format)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ValidationError represents a field value rejected by its input pattern.
// Callers keep their previous state when they receive one.
type ValidationError struct {
	// Field is the name of the rejected field (e.g., "binary", "hex", "unit")
	Field string
	// Value is the rejected value (may be nil)
	Value any
	// Message describes why the value was rejected
	Message string
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Field != "" {
		msg += " for " + e.Field
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// EncodingError represents a malformed encoded input that could not be decoded.
type EncodingError struct {
	// Encoding names the scheme, e.g. "base64" or "url"
	Encoding string
	// Message is the inline text shown in place of the decoded value
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *EncodingError) Error() string {
	msg := "encoding error"
	if e.Encoding != "" {
		msg += " (" + e.Encoding + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// UnsupportedFormatError reports a format selection that has no conversion path.
// It is returned before any conversion work is attempted.
type UnsupportedFormatError struct {
	// Format is the requested format name
	Format string
	// Direction is "input" or "output" (empty if not applicable)
	Direction string
	// Supported lists the accepted format names
	Supported []string
}

// Error returns a human-readable error message.
func (e *UnsupportedFormatError) Error() string {
	msg := "unsupported"
	if e.Direction != "" {
		msg += " " + e.Direction
	}
	msg += " format"
	if e.Format != "" {
		msg += fmt.Sprintf(" %q", e.Format)
	}
	if len(e.Supported) > 0 {
		msg += " (supported: " + strings.Join(e.Supported, ", ") + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
