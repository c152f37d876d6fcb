// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/cobra"
)

// Prep converts stored pixels to a premultiplied working form before
// filtering and back afterwards.
type Prep[C Pixel] interface {
	Cook(C) cobra.Color
	Uncook(cobra.Color) C
}

// ColorPrep cooks straight float colors by premultiplying.
type ColorPrep struct{}

// Cook premultiplies c.
func (ColorPrep) Cook(c cobra.Color) cobra.Color { return c.PremultAlpha() }

// Uncook demultiplies c.
func (ColorPrep) Uncook(c cobra.Color) cobra.Color { return c.DemultAlpha() }

// PackedPrep cooks byte colors through the float form.
type PackedPrep struct{}

// Cook expands and premultiplies c.
func (PackedPrep) Cook(c cobra.CairoColor) cobra.Color { return c.Color().PremultAlpha() }

// Uncook demultiplies and quantizes c.
func (PackedPrep) Uncook(c cobra.Color) cobra.CairoColor { return c.DemultAlpha().ToCairo() }

// Sample returns the bilinear interpolation of b at (x, y), where pixel
// centers sit at half-integer coordinates. Samples outside b read as
// transparent.
func Sample[C Pixel, P Prep[C]](b *Buffer[C], prep P, x, y float32) C {
	x -= 0.5
	y -= 0.5
	fx, fy := math32.Floor(x), math32.Floor(y)
	x0, y0 := int(fx), int(fy)
	tx, ty := x-fx, y-fy

	c00 := prep.Cook(b.Get(x0, y0))
	c10 := prep.Cook(b.Get(x0+1, y0))
	c01 := prep.Cook(b.Get(x0, y0+1))
	c11 := prep.Cook(b.Get(x0+1, y0+1))

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return prep.Uncook(top.Lerp(bottom, ty))
}

// catmullRom returns the four Catmull-Rom weights for taps at offsets
// -1, 0, 1 and 2 from the sample floor, t being the fractional part.
func catmullRom(t float32) [4]float32 {
	t2, t3 := t*t, t*t*t
	return [4]float32{
		(-t3 + 2*t2 - t) / 2,
		(3*t3 - 5*t2 + 2) / 2,
		(-3*t3 + 4*t2 + t) / 2,
		(t3 - t2) / 2,
	}
}

// SampleCubic returns the Catmull-Rom interpolation of b at (x, y) in
// float, so out of range components survive. Taps outside b are skipped
// and the remaining weights renormalized; points outside b read as
// transparent.
func SampleCubic[C Pixel, P Prep[C]](b *Buffer[C], prep P, x, y float32) C {
	if !b.Rect.Empty() && (x < float32(b.Rect.Min.X) || y < float32(b.Rect.Min.Y) ||
		x >= float32(b.Rect.Max.X) || y >= float32(b.Rect.Max.Y)) {
		return prep.Uncook(cobra.Color{})
	}
	x -= 0.5
	y -= 0.5
	fx, fy := math32.Floor(x), math32.Floor(y)
	x0, y0 := int(fx)-1, int(fy)-1
	wx, wy := catmullRom(x-fx), catmullRom(y-fy)

	var acc cobra.Color
	var total float32
	for j, ww := range wy {
		sy := y0 + j
		if sy < b.Rect.Min.Y || sy >= b.Rect.Max.Y {
			continue
		}
		for i, w := range wx {
			sx := x0 + i
			if sx < b.Rect.Min.X || sx >= b.Rect.Max.X {
				continue
			}
			acc = acc.Add(prep.Cook(b.Get(sx, sy)).Mul(w * ww))
			total += w * ww
		}
	}
	if total == 0 {
		return prep.Uncook(cobra.Color{})
	}
	return prep.Uncook(acc.Div(total))
}
