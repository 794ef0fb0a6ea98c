// Package numbase converts unsigned integers between decimal, binary,
// hexadecimal and octal notation.
//
// Each notation validates its own character set before a value is accepted.
// Values are unsigned 64-bit; input that overflows is rejected.
package numbase

import (
	"errors"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/converrors"
)

// Base is a supported number base.
type Base int

// Supported bases.
const (
	Binary  Base = 2
	Octal   Base = 8
	Decimal Base = 10
	Hex     Base = 16
)

// Bases returns the supported bases in display order.
func Bases() []Base {
	return []Base{Decimal, Binary, Hex, Octal}
}

// String returns the field name of the base.
func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	}
	return "base " + strconv.Itoa(int(b))
}

// ParseBase resolves a base from its name or its radix ("hex", "16").
func ParseBase(name string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "binary", "bin", "2":
		return Binary, nil
	case "octal", "oct", "8":
		return Octal, nil
	case "decimal", "dec", "10":
		return Decimal, nil
	case "hex", "hexadecimal", "16":
		return Hex, nil
	}
	return 0, &converrors.ValidationError{Field: "base", Value: name, Message: "expected decimal, binary, hex or octal"}
}

func (b Base) valid(r rune) bool {
	switch b {
	case Binary:
		return r == '0' || r == '1'
	case Octal:
		return r >= '0' && r <= '7'
	case Decimal:
		return r >= '0' && r <= '9'
	case Hex:
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	}
	return false
}

// Representations holds one value in every supported notation.
type Representations struct {
	Decimal string `json:"decimal" yaml:"decimal"`
	Binary  string `json:"binary" yaml:"binary"`
	Hex     string `json:"hex" yaml:"hex"`
	Octal   string `json:"octal" yaml:"octal"`
}

// Of renders n in every notation. Hex digits are uppercase.
func Of(n uint64) Representations {
	return Representations{
		Decimal: strconv.FormatUint(n, 10),
		Binary:  strconv.FormatUint(n, 2),
		Hex:     strings.ToUpper(strconv.FormatUint(n, 16)),
		Octal:   strconv.FormatUint(n, 8),
	}
}

// Get returns the notation for base b.
func (r Representations) Get(b Base) string {
	switch b {
	case Binary:
		return r.Binary
	case Octal:
		return r.Octal
	case Hex:
		return r.Hex
	}
	return r.Decimal
}

// Parse reads text in base b. Surrounding whitespace is ignored and empty
// input is zero. Characters outside the base's set and values that do not
// fit in 64 bits return a *converrors.ValidationError.
func Parse(text string, b Base) (uint64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, nil
	}
	for _, r := range s {
		if !b.valid(r) {
			return 0, &converrors.ValidationError{Field: b.String(), Value: text, Message: "invalid character " + strconv.QuoteRune(r)}
		}
	}
	n, err := strconv.ParseUint(s, int(b), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &converrors.ValidationError{Field: b.String(), Value: text, Message: "value exceeds 64 bits"}
		}
		return 0, &converrors.ValidationError{Field: b.String(), Value: text, Message: err.Error()}
	}
	return n, nil
}

// Convert parses text in base b and renders it in every notation.
func Convert(text string, b Base) (Representations, error) {
	n, err := Parse(text, b)
	if err != nil {
		return Representations{}, err
	}
	return Of(n), nil
}

// FromDecimal converts a decimal string.
func FromDecimal(text string) (Representations, error) { return Convert(text, Decimal) }

// FromBinary converts a binary string.
func FromBinary(text string) (Representations, error) { return Convert(text, Binary) }

// FromHex converts a hexadecimal string.
func FromHex(text string) (Representations, error) { return Convert(text, Hex) }

// FromOctal converts an octal string.
func FromOctal(text string) (Representations, error) { return Convert(text, Octal) }
