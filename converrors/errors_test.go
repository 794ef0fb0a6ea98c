package converrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := &ParseError{
			Format:  "json",
			Line:    3,
			Message: "syntax error",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "invalid JSON at line 3: syntax error: unexpected end of JSON input" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{Format: "xml"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrValidation) {
			t.Error("ParseError should not match ErrValidation")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		err := fmt.Errorf("converting: %w", &ParseError{Format: "csv", Line: 2})
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatal("errors.As should succeed")
		}
		if parseErr.Format != "csv" {
			t.Errorf("unexpected format: %s", parseErr.Format)
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ValidationError{Field: "binary", Value: "1021", Message: "only 0 and 1 are allowed"}
		expected := "validation error for binary (value: 1021): only 0 and 1 are allowed"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrValidation", func(t *testing.T) {
		if !errors.Is(&ValidationError{}, ErrValidation) {
			t.Error("ValidationError should match ErrValidation")
		}
		if errors.Is(&ValidationError{}, ErrParse) {
			t.Error("ValidationError should not match ErrParse")
		}
	})
}

func TestEncodingError(t *testing.T) {
	cause := errors.New("illegal base64 data at input byte 4")
	err := &EncodingError{Encoding: "base64", Message: "Invalid Base64 string", Cause: cause}

	if err.Error() != "encoding error (base64): Invalid Base64 string: illegal base64 data at input byte 4" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrEncoding) {
		t.Error("EncodingError should match ErrEncoding")
	}
	if !errors.Is(err, cause) {
		t.Error("EncodingError should unwrap to its cause")
	}
}

func TestUnsupportedFormatError(t *testing.T) {
	t.Run("Error message with supported list", func(t *testing.T) {
		err := &UnsupportedFormatError{Format: "toml", Direction: "input", Supported: []string{"json", "csv"}}
		expected := `unsupported input format "toml" (supported: json, csv)`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &UnsupportedFormatError{}
		if err.Error() != "unsupported format" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnsupportedFormat", func(t *testing.T) {
		if !errors.Is(&UnsupportedFormatError{}, ErrUnsupportedFormat) {
			t.Error("UnsupportedFormatError should match ErrUnsupportedFormat")
		}
	})
}

func TestConfigError(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := &ConfigError{Option: "size", Value: "abc", Message: "must be a number", Cause: cause}

	expected := "configuration error for size (value: abc): must be a number: invalid syntax"
	if err.Error() != expected {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
	//nolint:errorlint // testing pointer identity
	if err.Unwrap() != cause {
		t.Error("Unwrap should return cause")
	}
}
