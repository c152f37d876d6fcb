// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/cobra"
)

// Image adapts a linear buffer to draw.Image so standard image code can
// read and write it.
type Image struct {
	*Linear
}

var _ draw.Image = Image{}

// ColorModel returns cobra.ColorModel.
func (m Image) ColorModel() color.Model { return cobra.ColorModel }

// At returns the pixel at (x, y).
func (m Image) At(x, y int) color.Color { return m.Get(x, y) }

// Set stores c at (x, y).
func (m Image) Set(x, y int, c color.Color) { m.Linear.Set(x, y, cobra.FromStdColor(c)) }

// FromImage copies img into a new linear buffer with the same bounds.
func FromImage(img image.Image) *Linear {
	b := New[cobra.Color](img.Bounds())
	draw.Draw(Image{b}, b.Rect, img, b.Rect.Min, draw.Src)
	return b
}

// ToNRGBA quantizes b into a straight-alpha image, encoding through
// gamma (nil for none).
func ToNRGBA(b *Linear, gamma *cobra.Gamma) *image.NRGBA {
	img := image.NewNRGBA(b.Rect)
	row := make([]byte, 4*b.Width())
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		cobra.PFRGBA.EncodeRow(row, b.Row(y, b.Rect.Min.X, b.Rect.Max.X), gamma)
		copy(img.Pix[img.PixOffset(b.Rect.Min.X, y):], row)
	}
	return img
}
