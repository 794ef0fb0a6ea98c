// Package qrcode builds request URLs for an external QR code image service.
//
// Rendering the image is the service's job; this package only guarantees
// that the request URL carries the right text, size and error correction
// level.
package qrcode

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/converrors"
	"github.com/erraggy/convkit/internal/options"
	"github.com/erraggy/convkit/textconv"
)

// DefaultEndpoint is the image service queried when a Request names none.
const DefaultEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// Size bounds in pixels.
const (
	DefaultSize = 200
	MinSize     = 100
	MaxSize     = 1000
)

// ECC is an error correction level.
type ECC string

// Error correction levels, from least to most redundant.
const (
	ECCLow      ECC = "L"
	ECCMedium   ECC = "M"
	ECCQuartile ECC = "Q"
	ECCHigh     ECC = "H"
)

// Level describes an error correction level.
type Level struct {
	ECC  ECC    `json:"ecc" yaml:"ecc"`
	Name string `json:"name" yaml:"name"`
	// Recovery is the share of damaged codewords the level can restore.
	Recovery string `json:"recovery" yaml:"recovery"`
}

// Levels returns the error correction levels.
func Levels() []Level {
	return []Level{
		{ECCLow, "Low", "7%"},
		{ECCMedium, "Medium", "15%"},
		{ECCQuartile, "Quartile", "25%"},
		{ECCHigh, "High", "30%"},
	}
}

// ParseECC resolves a level letter case-insensitively; empty means medium.
func ParseECC(s string) (ECC, error) {
	e := ECC(strings.ToUpper(strings.TrimSpace(s)))
	switch e {
	case "":
		return ECCMedium, nil
	case ECCLow, ECCMedium, ECCQuartile, ECCHigh:
		return e, nil
	}
	return "", &converrors.ValidationError{Field: "ecc", Value: s, Message: "expected L, M, Q or H"}
}

// Sizes returns the preset image sizes in pixels.
func Sizes() []int {
	return []int{150, 200, 300, 400, 500}
}

// Request describes one QR image.
type Request struct {
	// Text is the encoded payload; it must not be blank.
	Text string
	// Size is the edge length in pixels; zero means DefaultSize.
	Size int
	// ECC is the error correction level; empty means medium.
	ECC ECC
	// Endpoint overrides DefaultEndpoint.
	Endpoint string
}

// BuildURL returns the image request URL for r.
func BuildURL(r Request) (string, error) {
	if strings.TrimSpace(r.Text) == "" {
		return "", &converrors.ValidationError{Field: "text", Message: "enter text or a URL to encode"}
	}
	size, err := options.IntInRange("size", r.Size, DefaultSize, MinSize, MaxSize)
	if err != nil {
		return "", err
	}
	ecc, err := ParseECC(string(r.ECC))
	if err != nil {
		return "", err
	}
	endpoint, err := validateEndpoint(r.Endpoint)
	if err != nil {
		return "", err
	}

	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	dim := strconv.Itoa(size)
	return endpoint + sep + "size=" + dim + "x" + dim + "&data=" + textconv.URLEncode(r.Text) + "&ecc=" + string(ecc), nil
}

func validateEndpoint(endpoint string) (string, error) {
	if endpoint == "" {
		return DefaultEndpoint, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", &converrors.ConfigError{Option: "endpoint", Value: endpoint, Message: "invalid URL", Cause: err}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", &converrors.ConfigError{Option: "endpoint", Value: endpoint, Message: "must be an absolute http or https URL"}
	}
	return endpoint, nil
}
