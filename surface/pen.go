// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/cobra"

// PenKind selects how a pen writes values.
type PenKind uint8

// Pen kinds.
const (
	// PenDirect stores values verbatim.
	PenDirect PenKind = iota
	// PenAlphaBlend composites values with the pen's method and alpha.
	PenAlphaBlend
)

// BlendFunc combines src over dst with the given amount and method.
type BlendFunc[C Pixel] func(src, dst C, amount float32, method cobra.BlendMethod) C

// BlendColor is the blend strategy for linear buffers.
func BlendColor(src, dst cobra.Color, amount float32, method cobra.BlendMethod) cobra.Color {
	return cobra.Blend(src, dst, amount, method)
}

// BlendPacked is the blend strategy for packed buffers.
func BlendPacked(src, dst cobra.CairoColor, amount float32, method cobra.BlendMethod) cobra.CairoColor {
	return cobra.BlendCairo(src, dst, amount, method)
}

// Pen is a write cursor over a buffer.
type Pen[C Pixel] struct {
	buf    *Buffer[C]
	kind   PenKind
	x, y   int
	alpha  float32
	method cobra.BlendMethod
	blend  BlendFunc[C]
}

// NewDirectPen returns a pen that stores values verbatim.
func NewDirectPen[C Pixel](b *Buffer[C]) *Pen[C] {
	return &Pen[C]{buf: b, kind: PenDirect, alpha: 1, x: b.Rect.Min.X, y: b.Rect.Min.Y}
}

// NewAlphaPen returns a compositing pen with the given alpha. The blend
// method starts as composite.
func NewAlphaPen[C Pixel](b *Buffer[C], alpha float32, blend BlendFunc[C]) *Pen[C] {
	return &Pen[C]{
		buf:    b,
		kind:   PenAlphaBlend,
		alpha:  alpha,
		method: cobra.BlendComposite,
		blend:  blend,
		x:      b.Rect.Min.X,
		y:      b.Rect.Min.Y,
	}
}

// Kind returns the pen kind.
func (p *Pen[C]) Kind() PenKind { return p.kind }

// Buffer returns the target buffer.
func (p *Pen[C]) Buffer() *Buffer[C] { return p.buf }

// MoveTo places the cursor at (x, y).
func (p *Pen[C]) MoveTo(x, y int) { p.x, p.y = x, y }

// Move shifts the cursor by (dx, dy).
func (p *Pen[C]) Move(dx, dy int) { p.x += dx; p.y += dy }

// Inc advances the cursor one pixel right.
func (p *Pen[C]) Inc() { p.x++ }

// Pos returns the cursor position.
func (p *Pen[C]) Pos() (x, y int) { return p.x, p.y }

// SetBlendMethod sets the compositing method.
func (p *Pen[C]) SetBlendMethod(m cobra.BlendMethod) { p.method = m }

// BlendMethod returns the compositing method.
func (p *Pen[C]) BlendMethod() cobra.BlendMethod { return p.method }

// SetAlpha sets the pen opacity.
func (p *Pen[C]) SetAlpha(a float32) { p.alpha = a }

// Alpha returns the pen opacity.
func (p *Pen[C]) Alpha() float32 { return p.alpha }

// Get returns the pixel under the cursor.
func (p *Pen[C]) Get() C { return p.buf.Get(p.x, p.y) }

// Put writes c at the cursor with full coverage.
func (p *Pen[C]) Put(c C) { p.PutCoverage(c, 1) }

// PutCoverage writes c at the cursor. An alpha-blend pen composites with
// amount alpha*coverage; a direct pen ignores coverage.
func (p *Pen[C]) PutCoverage(c C, coverage float32) {
	if !(p.x >= p.buf.Rect.Min.X && p.x < p.buf.Rect.Max.X && p.y >= p.buf.Rect.Min.Y && p.y < p.buf.Rect.Max.Y) {
		return
	}
	i := p.buf.PixOffset(p.x, p.y)
	if p.kind == PenDirect {
		p.buf.Pix[i] = c
		return
	}
	p.buf.Pix[i] = p.blend(c, p.buf.Pix[i], p.alpha*coverage, p.method)
}

// PutRow writes the span row starting at the cursor and advances past it.
func (p *Pen[C]) PutRow(row []C) {
	for _, c := range row {
		p.Put(c)
		p.x++
	}
}
