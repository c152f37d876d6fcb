// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/cobra"
)

// RenderMethod tags a buffer with the backend allowed to touch it.
type RenderMethod uint8

// Render methods.
const (
	RenderSoftware RenderMethod = iota
)

// String returns the render method name.
func (m RenderMethod) String() string {
	if m == RenderSoftware {
		return "software"
	}
	return "unknown"
}

// Kind identifies the pixel representation of a buffer.
type Kind uint8

// Surface kinds.
const (
	KindLinear Kind = iota
	KindPacked
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindPacked:
		return "packed"
	default:
		return "unknown"
	}
}

// Pixel is the set of color types a buffer can hold.
type Pixel interface {
	cobra.Color | cobra.CairoColor
}

// Buffer is a dense pixel buffer over Rect. Pixel (x, y) lives at
// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
type Buffer[C Pixel] struct {
	Pix    []C
	Stride int
	Rect   image.Rectangle
	Method RenderMethod
}

// Linear is a buffer of float colors.
type Linear = Buffer[cobra.Color]

// Packed is a buffer of byte colors.
type Packed = Buffer[cobra.CairoColor]

// New allocates a transparent buffer covering r.
func New[C Pixel](r image.Rectangle) *Buffer[C] {
	r = r.Canon()
	return &Buffer[C]{
		Pix:    make([]C, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// NewLinear allocates a w×h linear buffer with origin (0, 0).
func NewLinear(w, h int) *Linear {
	return New[cobra.Color](image.Rect(0, 0, w, h))
}

// NewPacked allocates a w×h packed buffer with origin (0, 0).
func NewPacked(w, h int) *Packed {
	return New[cobra.CairoColor](image.Rect(0, 0, w, h))
}

// Kind returns the pixel representation.
func (b *Buffer[C]) Kind() Kind {
	var zero C
	if _, ok := any(zero).(cobra.CairoColor); ok {
		return KindPacked
	}
	return KindLinear
}

// Bounds returns the covered rectangle.
func (b *Buffer[C]) Bounds() image.Rectangle { return b.Rect }

// Width returns the buffer width in pixels.
func (b *Buffer[C]) Width() int { return b.Rect.Dx() }

// Height returns the buffer height in pixels.
func (b *Buffer[C]) Height() int { return b.Rect.Dy() }

// PixOffset returns the index of pixel (x, y) in Pix.
func (b *Buffer[C]) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x - b.Rect.Min.X)
}

// Get returns pixel (x, y), or the zero color outside Rect.
func (b *Buffer[C]) Get(x, y int) C {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		var zero C
		return zero
	}
	return b.Pix[b.PixOffset(x, y)]
}

// Set stores pixel (x, y). Points outside Rect are ignored.
func (b *Buffer[C]) Set(x, y int, c C) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	b.Pix[b.PixOffset(x, y)] = c
}

// Row returns the pixels of row y from x0 to x1 (exclusive) as a
// sub-slice of Pix. The span must lie inside Rect.
func (b *Buffer[C]) Row(y, x0, x1 int) []C {
	i := b.PixOffset(x0, y)
	return b.Pix[i : i+(x1-x0)]
}

// Fill sets every pixel of r ∩ Rect to c.
func (b *Buffer[C]) Fill(r image.Rectangle, c C) {
	r = r.Intersect(b.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.Row(y, r.Min.X, r.Max.X)
		for i := range row {
			row[i] = c
		}
	}
}

// Clear sets every pixel of r ∩ Rect to transparent.
func (b *Buffer[C]) Clear(r image.Rectangle) {
	r = r.Intersect(b.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		clear(b.Row(y, r.Min.X, r.Max.X))
	}
}

// CopyFrom copies the pixels of r from src. Pixels of r not covered by
// src become transparent.
func (b *Buffer[C]) CopyFrom(src *Buffer[C], r image.Rectangle) {
	r = r.Intersect(b.Rect)
	b.Clear(r)
	r = r.Intersect(src.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(b.Row(y, r.Min.X, r.Max.X), src.Row(y, r.Min.X, r.Max.X))
	}
}

// SubBuffer returns a buffer sharing pixels with b over r ∩ Rect.
func (b *Buffer[C]) SubBuffer(r image.Rectangle) *Buffer[C] {
	r = r.Intersect(b.Rect)
	if r.Empty() {
		return &Buffer[C]{Method: b.Method}
	}
	i := b.PixOffset(r.Min.X, r.Min.Y)
	return &Buffer[C]{
		Pix:    b.Pix[i:],
		Stride: b.Stride,
		Rect:   r,
		Method: b.Method,
	}
}

// Clone returns a deep copy.
func (b *Buffer[C]) Clone() *Buffer[C] {
	c := New[C](b.Rect)
	c.Method = b.Method
	c.CopyFrom(b, b.Rect)
	return c
}

// ToPacked converts a linear buffer to bytes, rounding each channel.
func ToPacked(src *Linear) *Packed {
	dst := New[cobra.CairoColor](src.Rect)
	dst.Method = src.Method
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		in := src.Row(y, src.Rect.Min.X, src.Rect.Max.X)
		out := dst.Row(y, src.Rect.Min.X, src.Rect.Max.X)
		for i, c := range in {
			out[i] = c.ToCairo()
		}
	}
	return dst
}

// ToLinear expands a packed buffer to float colors.
func ToLinear(src *Packed) *Linear {
	dst := New[cobra.Color](src.Rect)
	dst.Method = src.Method
	ConvertInto(dst, src, src.Rect)
	return dst
}

// ConvertInto writes the float expansion of src over r into dst.
// Pixels of r not covered by src become transparent.
func ConvertInto(dst *Linear, src *Packed, r image.Rectangle) {
	r = r.Intersect(dst.Rect)
	dst.Clear(r)
	r = r.Intersect(src.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		in := src.Row(y, r.Min.X, r.Max.X)
		out := dst.Row(y, r.Min.X, r.Max.X)
		for i, c := range in {
			out[i] = c.Color()
		}
	}
}

// Encode packs the linear buffer row by row in format pf.
func Encode(src *Linear, pf cobra.PixelFormat, gamma *cobra.Gamma) []byte {
	stride := src.Width() * pf.Channels()
	out := make([]byte, stride*src.Height())
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		off := (y - src.Rect.Min.Y) * stride
		pf.EncodeRow(out[off:off+stride], src.Row(y, src.Rect.Min.X, src.Rect.Max.X), gamma)
	}
	return out
}

// Decode unpacks w×h pixels in format pf into a new linear buffer.
func Decode(data []byte, w, h int, pf cobra.PixelFormat, gamma *cobra.Gamma) *Linear {
	dst := NewLinear(w, h)
	stride := w * pf.Channels()
	for y := range h {
		pf.DecodeRow(dst.Row(y, 0, w), data[y*stride:(y+1)*stride], gamma)
	}
	return dst
}

// CountInvalid returns the number of pixels with a NaN channel.
func CountInvalid(b *Linear) int {
	n := 0
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		for _, c := range b.Row(y, b.Rect.Min.X, b.Rect.Max.X) {
			if !c.IsValid() {
				n++
			}
		}
	}
	return n
}
