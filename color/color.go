// Package color converts colors between HEX, RGB and HSL notation.
//
// [Color] keeps only the representation that was edited last and derives
// the other two on demand, so the three views can never disagree.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/erraggy/convkit/converrors"
)

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RGB is a color in 8-bit red, green and blue channels.
type RGB struct {
	R, G, B int
}

// HSL is a color as hue in degrees [0,360) and saturation and lightness in
// percent [0,100].
type HSL struct {
	H, S, L int
}

// ParseHex parses "#rrggbb" or "rrggbb", case-insensitively.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return RGB{}, &converrors.ValidationError{Field: "hex", Value: s, Message: "expected #rrggbb"}
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return RGB{}, &converrors.ValidationError{Field: "hex", Value: s, Message: err.Error()}
	}
	return RGB{R: int(n >> 16 & 0xff), G: int(n >> 8 & 0xff), B: int(n & 0xff)}, nil
}

// Clamp limits every channel to [0,255].
func (c RGB) Clamp() RGB {
	return RGB{R: clamp(c.R, 0, 255), G: clamp(c.G, 0, 255), B: clamp(c.B, 0, 255)}
}

// Hex renders the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	c = c.Clamp()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String renders the color in CSS notation, e.g. "rgb(59, 130, 246)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL converts the color to rounded HSL.
func (c RGB) HSL() HSL {
	c = c.Clamp()
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: int(math.Round(h*360)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// Clamp wraps the hue into [0,360) and limits saturation and lightness to [0,100].
func (c HSL) Clamp() HSL {
	h := c.H % 360
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: clamp(c.S, 0, 100), L: clamp(c.L, 0, 100)}
}

// String renders the color in CSS notation, e.g. "hsl(217, 91%, 60%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// RGB converts the color to RGB, rounding each channel.
func (c HSL) RGB() RGB {
	c = c.Clamp()
	h := float64(c.H) / 360
	s := float64(c.S) / 100
	l := float64(c.L) / 100

	if s == 0 {
		v := int(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: int(math.Round(hueToChannel(p, q, h+1.0/3) * 255)),
		G: int(math.Round(hueToChannel(p, q, h) * 255)),
		B: int(math.Round(hueToChannel(p, q, h-1.0/3) * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
