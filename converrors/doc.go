// Package converrors provides structured error types for convkit.
//
// Import path: github.com/erraggy/convkit/converrors
//
// These types let callers tell failure categories apart with [errors.Is]
// and [errors.As]. Every error is scoped to the single conversion call that
// produced it; none of them is fatal to the process.
//
// # Error Types
//
//   - [ParseError]: malformed JSON, CSV, XML or YAML input
//   - [ValidationError]: a numeric, color, base or option value that failed its pattern
//   - [EncodingError]: malformed Base64 or URL-encoded input
//   - [UnsupportedFormatError]: a format with no conversion path, reported before conversion
//   - [ConfigError]: invalid options or missing inputs
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrEncoding]: Matches any [EncodingError]
//   - [ErrUnsupportedFormat]: Matches any [UnsupportedFormatError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	_, err := dataformat.Parse("{invalid", dataformat.FormatJSON)
//	if errors.Is(err, converrors.ErrParse) {
//	    // leave the previous output untouched and show err.Error()
//	}
//
//	var parseErr *converrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("%s input rejected: %s\n", parseErr.Format, parseErr.Message)
//	}
package converrors
