// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image"

// BlitTo writes the w×h block of b starting at (x, y) through p, with the
// pen's cursor as the destination origin. The pen is left at its
// starting position. Pixels outside either buffer are skipped.
func (b *Buffer[C]) BlitTo(p *Pen[C], x, y, w, h int) {
	assertBlit(b, x, y, w, h)
	src := image.Rect(x, y, x+w, y+h).Intersect(b.Rect)
	if src.Empty() {
		return
	}
	ox, oy := p.Pos()
	defer p.MoveTo(ox, oy)

	for sy := src.Min.Y; sy < src.Max.Y; sy++ {
		p.MoveTo(ox+src.Min.X-x, oy+sy-y)
		p.PutRow(b.Row(sy, src.Min.X, src.Max.X))
	}
}
