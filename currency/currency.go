// Package currency converts amounts between currencies using a fixed table
// of mock exchange rates quoted against the US dollar.
//
// The rates are illustrative and never refreshed; no network access is made.
package currency

import (
	"math"
	"strconv"
	"strings"

	xcurrency "golang.org/x/text/currency"

	"github.com/erraggy/convkit/converrors"
)

// Currency describes a supported currency.
type Currency struct {
	// Code is the ISO 4217 code, e.g. "EUR"
	Code string
	// Name is the display name, e.g. "Euro"
	Name string
	// Symbol is the customary symbol, e.g. "€"
	Symbol string
	// PerUSD is the mock number of units per US dollar.
	PerUSD float64
}

var currencies = []Currency{
	{"USD", "US Dollar", "$", 1},
	{"EUR", "Euro", "€", 0.85},
	{"GBP", "British Pound", "£", 0.73},
	{"JPY", "Japanese Yen", "¥", 110},
	{"AUD", "Australian Dollar", "A$", 1.35},
	{"CAD", "Canadian Dollar", "C$", 1.25},
	{"CHF", "Swiss Franc", "CHF", 0.92},
	{"CNY", "Chinese Yuan", "¥", 6.45},
	{"INR", "Indian Rupee", "₹", 74.5},
	{"KRW", "South Korean Won", "₩", 1180},
	{"BRL", "Brazilian Real", "R$", 5.2},
	{"RUB", "Russian Ruble", "₽", 75},
}

// Currencies returns the supported currencies in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// Lookup resolves a currency code case-insensitively. The code must be a
// valid ISO 4217 code and must have a rate in the table.
func Lookup(code string) (Currency, error) {
	unit, err := xcurrency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Currency{}, &converrors.ValidationError{Field: "currency", Value: code, Message: "not an ISO 4217 currency code"}
	}
	for _, c := range currencies {
		if c.Code == unit.String() {
			return c, nil
		}
	}
	return Currency{}, &converrors.ValidationError{Field: "currency", Value: code, Message: "no exchange rate available"}
}

// Rate returns how many units of to one unit of from buys.
func Rate(from, to string) (float64, error) {
	f, err := Lookup(from)
	if err != nil {
		return 0, err
	}
	t, err := Lookup(to)
	if err != nil {
		return 0, err
	}
	return t.PerUSD / f.PerUSD, nil
}

// Convert converts amount from one currency to another through US dollars.
func Convert(amount float64, from, to string) (float64, error) {
	f, err := Lookup(from)
	if err != nil {
		return 0, err
	}
	t, err := Lookup(to)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, &converrors.ValidationError{Field: "amount", Value: amount, Message: "not a finite number"}
	}
	return amount / f.PerUSD * t.PerUSD, nil
}

// ConvertText parses a typed amount and returns the converted amount with
// two decimals.
func ConvertText(text, from, to string) (string, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", &converrors.ValidationError{Field: "amount", Message: "an amount is required"}
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", &converrors.ValidationError{Field: "amount", Value: text, Message: "not a number"}
	}
	out, err := Convert(amount, from, to)
	if err != nil {
		return "", err
	}
	return Format(out), nil
}

// Format renders an amount with exactly two decimals.
func Format(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatRate renders an exchange rate as "1 FROM = r TO" with four decimals.
func FormatRate(from, to string, rate float64) string {
	return "1 " + strings.ToUpper(from) + " = " + strconv.FormatFloat(rate, 'f', 4, 64) + " " + strings.ToUpper(to)
}
