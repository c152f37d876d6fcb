package cobra

import "fmt"

// CairoColor is a straight-alpha color with one byte per channel, laid
// out for ARGB32 surfaces. Arithmetic saturates at 0 and 255.
type CairoColor struct {
	A, R, G, B uint8
}

// CairoRGBA creates a CairoColor from byte components.
func CairoRGBA(r, g, b, a uint8) CairoColor {
	return CairoColor{A: a, R: r, G: g, B: b}
}

// ToCairo quantizes c to bytes, rounding to nearest and saturating.
func (c Color) ToCairo() CairoColor {
	return CairoColor{
		A: unitToByte(c.A),
		R: unitToByte(c.R),
		G: unitToByte(c.G),
		B: unitToByte(c.B),
	}
}

// Color expands c to a float Color in [0, 1].
func (c CairoColor) Color() Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func saturate(v int) uint8 {
	return uint8(clamp(v, 0, 255))
}

func saturateF(v float32) uint8 {
	return uint8(clamp(v+0.5, 0, 255))
}

// Add returns the saturating componentwise sum.
func (c CairoColor) Add(o CairoColor) CairoColor {
	return CairoColor{
		A: saturate(int(c.A) + int(o.A)),
		R: saturate(int(c.R) + int(o.R)),
		G: saturate(int(c.G) + int(o.G)),
		B: saturate(int(c.B) + int(o.B)),
	}
}

// Sub returns the saturating componentwise difference.
func (c CairoColor) Sub(o CairoColor) CairoColor {
	return CairoColor{
		A: saturate(int(c.A) - int(o.A)),
		R: saturate(int(c.R) - int(o.R)),
		G: saturate(int(c.G) - int(o.G)),
		B: saturate(int(c.B) - int(o.B)),
	}
}

// Mul scales all channels by k, rounding and saturating.
func (c CairoColor) Mul(k float32) CairoColor {
	return CairoColor{
		A: saturateF(float32(c.A) * k),
		R: saturateF(float32(c.R) * k),
		G: saturateF(float32(c.G) * k),
		B: saturateF(float32(c.B) * k),
	}
}

// Div divides all channels by k, rounding and saturating.
func (c CairoColor) Div(k float32) CairoColor {
	return c.Mul(1 / k)
}

// Invert returns the color with inverted RGB and the same alpha.
func (c CairoColor) Invert() CairoColor {
	return CairoColor{A: c.A, R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// PremultAlpha scales RGB by alpha in byte space.
func (c CairoColor) PremultAlpha() CairoColor {
	a := int(c.A)
	return CairoColor{
		A: c.A,
		R: uint8((int(c.R)*a + 127) / 255),
		G: uint8((int(c.G)*a + 127) / 255),
		B: uint8((int(c.B)*a + 127) / 255),
	}
}

// DemultAlpha divides RGB by alpha in byte space. Zero alpha yields the
// transparent color.
func (c CairoColor) DemultAlpha() CairoColor {
	if c.A == 0 {
		return CairoColor{}
	}
	a := int(c.A)
	return CairoColor{
		A: c.A,
		R: saturate((int(c.R)*255 + a/2) / a),
		G: saturate((int(c.G)*255 + a/2) / a),
		B: saturate((int(c.B)*255 + a/2) / a),
	}
}

// Y returns the luma in [0, 1].
func (c CairoColor) Y() float32 { return c.Color().Y() }

// U returns the blue-difference chroma.
func (c CairoColor) U() float32 { return c.Color().U() }

// V returns the red-difference chroma.
func (c CairoColor) V() float32 { return c.Color().V() }

// S returns the saturation.
func (c CairoColor) S() float32 { return c.Color().S() }

// Hue returns the chroma angle in radians.
func (c CairoColor) Hue() float32 { return c.Color().Hue() }

// String returns a debug representation.
func (c CairoColor) String() string {
	return fmt.Sprintf("CairoColor(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// BlendCairo composites packed colors by expanding them to Color,
// blending and quantizing the result.
func BlendCairo(src, dst CairoColor, amount float32, method BlendMethod) CairoColor {
	return Blend(src.Color(), dst.Color(), amount, method).ToCairo()
}
