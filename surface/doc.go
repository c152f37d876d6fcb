// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the pixel buffers and pens that rendering
// tasks draw into.
//
// A [Buffer] is a dense 2-D array of one color type addressed in absolute
// pixel coordinates, like [image.RGBA]. Two kinds exist:
//
//   - [Linear]: float [cobra.Color] pixels, used for all intermediate work
//   - [Packed]: byte [cobra.CairoColor] pixels, used for ARGB32 exchange
//
// A [Pen] is a cursor bound to one buffer. A direct pen stores values
// verbatim; an alpha-blend pen composites each value through a
// [BlendFunc] strategy with the pen's method and alpha:
//
//	dst := surface.NewLinear(64, 64)
//	pen := surface.NewAlphaPen(dst, 1, surface.BlendColor)
//	pen.SetBlendMethod(cobra.BlendScreen)
//	pen.MoveTo(10, 10)
//	pen.PutCoverage(cobra.Red, 0.5)
//
// Buffers are not safe for concurrent mutation. Concurrent writers must
// work on disjoint rectangles.
package surface
