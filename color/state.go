package color

// Source names the representation a [Color] was last set through.
type Source int

// Representations a Color can be edited through.
const (
	SourceHex Source = iota
	SourceRGB
	SourceHSL
)

// String returns the representation name.
func (s Source) String() string {
	switch s {
	case SourceHex:
		return "hex"
	case SourceRGB:
		return "rgb"
	case SourceHSL:
		return "hsl"
	}
	return "unknown"
}

// DefaultHex is the color a zero-configured converter starts from.
const DefaultHex = "#3b82f6"

// Color is the state of a three-way color editor. It stores the last edited
// representation only; Hex, RGB and HSL derive from it on every read.
type Color struct {
	source Source
	rgb    RGB
	hsl    HSL
}

// New returns a Color set to DefaultHex.
func New() *Color {
	c := &Color{}
	c.SetHex(DefaultHex)
	return c
}

// SetHex applies a HEX edit. Invalid input is ignored and reported by
// returning false; the previous state is kept.
func (c *Color) SetHex(s string) bool {
	rgb, err := ParseHex(s)
	if err != nil {
		return false
	}
	c.source, c.rgb = SourceHex, rgb
	return true
}

// SetRGB applies an RGB edit. Channels are clamped to [0,255].
func (c *Color) SetRGB(rgb RGB) {
	c.source, c.rgb = SourceRGB, rgb.Clamp()
}

// SetHSL applies an HSL edit. The hue wraps and the percentages are clamped.
func (c *Color) SetHSL(hsl HSL) {
	c.source, c.hsl = SourceHSL, hsl.Clamp()
}

// Source reports which representation was edited last.
func (c *Color) Source() Source {
	return c.source
}

// RGB returns the color as RGB.
func (c *Color) RGB() RGB {
	if c.source == SourceHSL {
		return c.hsl.RGB()
	}
	return c.rgb
}

// Hex returns the color as lowercase "#rrggbb".
func (c *Color) Hex() string {
	return c.RGB().Hex()
}

// HSL returns the color as HSL. An HSL edit is returned unchanged.
func (c *Color) HSL() HSL {
	if c.source == SourceHSL {
		return c.hsl
	}
	return c.rgb.HSL()
}
