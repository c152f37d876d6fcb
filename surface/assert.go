// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !cobradebug

package surface

func assertBlit[C Pixel](*Buffer[C], int, int, int, int) {}
