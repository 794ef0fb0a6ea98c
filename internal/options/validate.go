// Package options provides shared checks for functional-option configs.
package options

import (
	"github.com/erraggy/convkit/converrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// The returned error is a *converrors.ConfigError naming option.
func ValidateSingleInputSource(option string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &converrors.ConfigError{Option: option, Message: "no input source specified"}
	case sourceCount > 1:
		return &converrors.ConfigError{Option: option, Message: "only one input source may be specified"}
	}
	return nil
}

// IntInRange returns fallback when v is zero and rejects values outside [lo, hi].
func IntInRange(option string, v, fallback, lo, hi int) (int, error) {
	if v == 0 {
		return fallback, nil
	}
	if v < lo || v > hi {
		return 0, &converrors.ConfigError{Option: option, Value: v, Message: "out of range"}
	}
	return v, nil
}
