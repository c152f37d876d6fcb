package cobra

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/chewxy/math32"
)

// Color is a linear RGBA color with float32 components.
//
// Components are straight (not premultiplied) and are not clamped by
// construction: intermediate results may leave the [0, 1] range.
// The zero value is the canonical transparent color.
type Color struct {
	R, G, B, A float32
}

// ColorAccumulator is the accumulation type used while blending and
// filtering. Color already carries full float32 precision, so the
// accumulator is the same type.
type ColorAccumulator = Color

// colorEpsilon is the alpha magnitude below which a color is treated as
// fully transparent during compositing.
const colorEpsilon = 0.000001

// ErrInvalidHex is returned by ParseHex for malformed input.
var ErrInvalidHex = errors.New("cobra: invalid hex color")

// Common colors
var (
	Transparent = RGBA(0, 0, 0, 0)
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Gray        = RGB(0.5, 0.5, 0.5)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Yellow      = RGB(1, 1, 0)
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Alpha returns the canonical fully transparent color.
func Alpha() Color { return Color{} }

// FromStdColor converts a standard library color to Color.
// The result is straight (demultiplied) alpha.
func FromStdColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	fa := float32(a)
	return Color{
		R: float32(r) / fa,
		G: float32(g) / fa,
		B: float32(b) / fa,
		A: fa / 0xffff,
	}
}

// RGBA implements color.Color. The color is clamped to [0, 1] and
// premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	c = c.Clamped()
	a = uint32(c.A*0xffff + 0.5)
	r = uint32(c.R*c.A*0xffff + 0.5)
	g = uint32(c.G*c.A*0xffff + 0.5)
	b = uint32(c.B*c.A*0xffff + 0.5)
	return r, g, b, a
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromStdColor(c)
})

// IsValid reports whether no component is NaN.
func (c Color) IsValid() bool {
	return !math32.IsNaN(c.R) && !math32.IsNaN(c.G) && !math32.IsNaN(c.B) && !math32.IsNaN(c.A)
}

// Add returns the componentwise sum c+o.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Sub returns the componentwise difference c-o.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B, A: c.A - o.A}
}

// Mul scales all four components by k.
func (c Color) Mul(k float32) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A * k}
}

// MulColor returns the componentwise product.
func (c Color) MulColor(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Div divides all four components by k.
func (c Color) Div(k float32) Color {
	return Color{R: c.R / k, G: c.G / k, B: c.B / k, A: c.A / k}
}

// Neg negates all four components.
func (c Color) Neg() Color {
	return Color{R: -c.R, G: -c.G, B: -c.B, A: -c.A}
}

// Invert returns the color with inverted RGB and the same alpha.
func (c Color) Invert() Color {
	return Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B, A: c.A}
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// PremultAlpha scales RGB by alpha.
func (c Color) PremultAlpha() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// DemultAlpha divides RGB by alpha. A color with zero alpha
// demultiplies to the transparent color.
func (c Color) DemultAlpha() Color {
	if c.A == 0 {
		return Color{}
	}
	inv := 1 / c.A
	return Color{R: c.R * inv, G: c.G * inv, B: c.B * inv, A: c.A}
}

// Clamped restricts every component to [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: clamp(c.R, 0, 1),
		G: clamp(c.G, 0, 1),
		B: clamp(c.B, 0, 1),
		A: clamp(c.A, 0, 1),
	}
}

// ClampedNegative clamps a color whose channels went negative by moving
// the deficit into the other channels instead of mirroring it.
// Negative alpha flips the whole color; NaN channels become zero.
func (c Color) ClampedNegative() Color {
	if c.A == 0 {
		return Color{}
	}
	if c.A < 0 {
		c = c.Neg()
	}
	if c.R < 0 {
		c.G -= c.R
		c.B -= c.R
		c.R = 0
	}
	if c.G < 0 {
		c.R -= c.G
		c.B -= c.G
		c.G = 0
	}
	if c.B < 0 {
		c.R -= c.B
		c.G -= c.B
		c.B = 0
	}
	c.R = clampNaN(c.R)
	c.G = clampNaN(c.G)
	c.B = clampNaN(c.B)
	c.A = clampNaN(c.A)
	return c
}

func clampNaN(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return min(v, 1)
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" (the leading
// '#' is optional). Missing alpha is opaque.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var v [4]uint32
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			n, ok := parseHexDigits(hex[i : i+1])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			n, ok := parseHexDigits(hex[i : i+2])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			v[i/2] = n
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return Color{
		R: float32(v[0]) / 255,
		G: float32(v[1]) / 255,
		B: float32(v[2]) / 255,
		A: float32(v[3]) / 255,
	}, nil
}

func parseHexDigits(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// Hex formats the clamped color as "rrggbb", appending "aa" when the
// color is not opaque.
func (c Color) Hex() string {
	c = c.Clamped()
	r, g, b, a := unitToByte(c.R), unitToByte(c.G), unitToByte(c.B), unitToByte(c.A)
	if a == 255 {
		return fmt.Sprintf("%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", r, g, b, a)
}

// String returns a debug representation.
func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}
