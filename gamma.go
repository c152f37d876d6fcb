package cobra

import (
	"sync"

	icolor "github.com/gogpu/cobra/internal/color"
)

// DefaultColorspaceGamma is the display gamma assumed when colorspace
// gamma is enabled without an explicit value.
const DefaultColorspaceGamma = 2.2

// Gamma quantizes float components to gamma encoded bytes and back, with
// an independent exponent per RGB channel. Alpha is never gamma encoded.
// A Gamma is immutable and safe for concurrent use.
type Gamma struct {
	r, g, b *icolor.Table
}

// NewGamma returns a Gamma using the same exponent for every channel.
func NewGamma(gamma float32) *Gamma {
	if gamma == 1 {
		return IdentityGamma()
	}
	t := icolor.NewTable(gamma)
	return &Gamma{r: t, g: t, b: t}
}

// NewGammaRGB returns a Gamma with per-channel exponents.
func NewGammaRGB(r, g, b float32) *Gamma {
	return &Gamma{r: icolor.NewTable(r), g: icolor.NewTable(g), b: icolor.NewTable(b)}
}

var identityGamma = sync.OnceValue(func() *Gamma {
	t := icolor.NewTable(1)
	return &Gamma{r: t, g: t, b: t}
})

// IdentityGamma returns the shared linear (gamma 1) quantizer.
func IdentityGamma() *Gamma { return identityGamma() }

// Exponents returns the per-channel exponents.
func (g *Gamma) Exponents() (r, gr, b float32) {
	return g.r.Gamma(), g.g.Gamma(), g.b.Gamma()
}

// EncodeR quantizes a red component.
func (g *Gamma) EncodeR(v float32) uint8 { return g.r.Encode(v) }

// EncodeG quantizes a green component.
func (g *Gamma) EncodeG(v float32) uint8 { return g.g.Encode(v) }

// EncodeB quantizes a blue component.
func (g *Gamma) EncodeB(v float32) uint8 { return g.b.Encode(v) }

// DecodeR expands a red byte.
func (g *Gamma) DecodeR(v uint8) float32 { return g.r.Decode(v) }

// DecodeG expands a green byte.
func (g *Gamma) DecodeG(v uint8) float32 { return g.g.Decode(v) }

// DecodeB expands a blue byte.
func (g *Gamma) DecodeB(v uint8) float32 { return g.b.Decode(v) }

// GammaIn applies sign(x) * |x|^gamma. It reads "into linear light":
// a component encoded with exponent gamma is decoded by GammaIn, and
// GammaOut is its inverse. The PixelGamma task applies GammaIn with the
// task exponents.
func GammaIn(x, gamma float32) float32 { return icolor.In(x, gamma) }

// GammaOut applies sign(x) * |x|^(1/gamma).
func GammaOut(x, gamma float32) float32 { return icolor.Out(x, gamma) }

// GammaInColor applies GammaIn to RGB with per-channel exponents.
func GammaInColor(c Color, r, g, b float32) Color {
	return Color{R: GammaIn(c.R, r), G: GammaIn(c.G, g), B: GammaIn(c.B, b), A: c.A}
}
