// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/tdewolff/test"

	"github.com/gogpu/cobra"
)

func TestNewLinear(t *testing.T) {
	b := NewLinear(4, 3)
	test.T(t, b.Width(), 4)
	test.T(t, b.Height(), 3)
	test.T(t, len(b.Pix), 12)
	test.T(t, b.Kind(), KindLinear)
	test.T(t, NewPacked(1, 1).Kind(), KindPacked)
	for _, c := range b.Pix {
		test.T(t, c, cobra.Transparent)
	}
}

func TestBufferGetSet(t *testing.T) {
	b := New[cobra.Color](image.Rect(10, 20, 14, 24))
	b.Set(11, 22, cobra.Red)
	test.T(t, b.Get(11, 22), cobra.Red)
	test.T(t, b.Pix[2*4+1], cobra.Red)

	// Out of range reads are transparent and writes are dropped.
	b.Set(0, 0, cobra.Blue)
	test.T(t, b.Get(0, 0), cobra.Transparent)
	test.T(t, b.Get(14, 22), cobra.Transparent)
}

func TestBufferFillClear(t *testing.T) {
	b := NewLinear(4, 4)
	b.Fill(image.Rect(-2, -2, 2, 2), cobra.Green)
	for y := range 4 {
		for x := range 4 {
			want := cobra.Transparent
			if x < 2 && y < 2 {
				want = cobra.Green
			}
			test.T(t, b.Get(x, y), want, x, y)
		}
	}
	b.Clear(image.Rect(1, 1, 8, 8))
	test.T(t, b.Get(0, 0), cobra.Green)
	test.T(t, b.Get(1, 1), cobra.Transparent)
}

func TestSubBufferSharesPixels(t *testing.T) {
	b := NewLinear(8, 8)
	sub := b.SubBuffer(image.Rect(2, 2, 6, 6))
	test.T(t, sub.Rect, image.Rect(2, 2, 6, 6))
	sub.Set(3, 4, cobra.Red)
	test.T(t, b.Get(3, 4), cobra.Red)

	sub.Fill(sub.Rect, cobra.Blue)
	test.T(t, b.Get(1, 1), cobra.Transparent)
	test.T(t, b.Get(5, 5), cobra.Blue)
	test.T(t, b.Get(6, 6), cobra.Transparent)

	empty := b.SubBuffer(image.Rect(20, 20, 30, 30))
	test.That(t, empty.Rect.Empty())
}

func TestCloneIsDeep(t *testing.T) {
	b := NewLinear(2, 2)
	b.Set(1, 1, cobra.Red)
	c := b.Clone()
	c.Set(1, 1, cobra.Blue)
	test.T(t, b.Get(1, 1), cobra.Red)
	test.T(t, c.Get(1, 1), cobra.Blue)
}

func TestCopyFrom(t *testing.T) {
	src := New[cobra.Color](image.Rect(0, 0, 2, 2))
	src.Fill(src.Rect, cobra.Red)
	dst := NewLinear(4, 4)
	dst.Fill(dst.Rect, cobra.Blue)
	dst.CopyFrom(src, image.Rect(1, 1, 3, 3))
	test.T(t, dst.Get(1, 1), cobra.Red)
	test.T(t, dst.Get(2, 2), cobra.Transparent)
	test.T(t, dst.Get(0, 0), cobra.Blue)
}

func TestPackedRoundTrip(t *testing.T) {
	b := NewLinear(3, 1)
	b.Set(0, 0, cobra.Red)
	b.Set(1, 0, cobra.RGBA(0.2, 0.4, 0.6, 0.8))
	p := ToPacked(b)
	test.T(t, p.Get(0, 0), cobra.CairoRGBA(255, 0, 0, 255))
	test.T(t, p.Get(2, 0), cobra.CairoColor{})

	back := ToLinear(p)
	test.T(t, back.Get(0, 0), cobra.Red)
	got := back.Get(1, 0)
	test.FloatDiff(t, float64(got.B), 0.6, 1.0/255)
}

func TestEncodeDecode(t *testing.T) {
	b := NewLinear(2, 2)
	b.Fill(b.Rect, cobra.Cyan)
	b.Set(1, 1, cobra.Transparent)
	data := Encode(b, cobra.PFBGRA, nil)
	test.Bytes(t, data[:4], []byte{255, 255, 0, 255})
	test.Bytes(t, data[12:], []byte{0, 0, 0, 0})

	back := Decode(data, 2, 2, cobra.PFBGRA, nil)
	test.T(t, back.Get(0, 1), cobra.Cyan)
	test.T(t, back.Get(1, 1), cobra.Transparent)
}

func TestCountInvalid(t *testing.T) {
	b := NewLinear(2, 2)
	test.T(t, CountInvalid(b), 0)
	nan := cobra.Color{}.Div(0)
	b.Set(0, 1, nan)
	test.T(t, CountInvalid(b), 1)
}

func TestImageAdapter(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	b := FromImage(src)
	test.T(t, b.Get(0, 0), cobra.Red)
	test.T(t, b.Get(1, 0), cobra.Blue)

	out := ToNRGBA(b, nil)
	test.T(t, out.NRGBAAt(1, 0), color.NRGBA{B: 255, A: 255})
}

func TestKindStrings(t *testing.T) {
	test.String(t, KindLinear.String(), "linear")
	test.String(t, KindPacked.String(), "packed")
	test.String(t, RenderSoftware.String(), "software")
}
