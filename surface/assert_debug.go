// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cobradebug

package surface

import (
	"fmt"
	"image"
)

func assertBlit[C Pixel](b *Buffer[C], x, y, w, h int) {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("surface: negative blit size %dx%d", w, h))
	}
	if !image.Rect(x, y, x+w, y+h).In(b.Rect) {
		panic(fmt.Sprintf("surface: blit (%d,%d %dx%d) outside %v", x, y, w, h, b.Rect))
	}
}
