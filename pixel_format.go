package cobra

import (
	"fmt"
	"strings"
	"unsafe"

	"honnef.co/go/safeish"
)

// PixelFormat describes a packed pixel layout as independent flag bits.
//
// The color part is three bytes (RGB or BGR) or one gray byte. Alpha and
// depth bytes sit before the color part when their START flag is set and
// after it otherwise; within either group depth precedes alpha when
// PFZA is set. PFRawColor stores the Color structure verbatim.
type PixelFormat uint16

// Pixel format flags.
const (
	PFRGB      PixelFormat = 0
	PFGray     PixelFormat = 1 << 0 // single luma channel
	PFA        PixelFormat = 1 << 1 // alpha channel present
	PFZ        PixelFormat = 1 << 2 // depth channel present
	PFBGR      PixelFormat = 1 << 3 // color channels stored blue first
	PFAStart   PixelFormat = 1 << 4 // alpha before color
	PFZStart   PixelFormat = 1 << 5 // depth before color
	PFZA       PixelFormat = 1 << 6 // depth before alpha
	PFAInv     PixelFormat = 1 << 7 // alpha stored as 1-a
	PFZInv     PixelFormat = 1 << 8 // depth stored inverted
	PFRawColor PixelFormat = 1<<9 | PFA

	pfFlagBits = 10
)

// Common layouts.
const (
	PFRGBA = PFRGB | PFA
	PFBGRA = PFBGR | PFA
	PFARGB = PFA | PFAStart
	PFABGR = PFA | PFAStart | PFBGR
)

const rawColorSize = int(unsafe.Sizeof(Color{}))

// Has reports whether every bit of flag is set.
func (pf PixelFormat) Has(flag PixelFormat) bool {
	return pf&flag == flag
}

// IsRaw reports whether pf stores Color values verbatim.
func (pf PixelFormat) IsRaw() bool {
	return pf.Has(PFRawColor)
}

// Channels returns the number of bytes per pixel.
func (pf PixelFormat) Channels() int {
	if pf.IsRaw() {
		return rawColorSize
	}
	n := 3
	if pf.Has(PFGray) {
		n = 1
	}
	if pf.Has(PFA) {
		n++
	}
	if pf.Has(PFZ) {
		n++
	}
	return n
}

type pfSlot uint8

const (
	slotR pfSlot = iota
	slotG
	slotB
	slotY
	slotA
	slotZ
)

// layout returns the byte order of pf's channels.
func (pf PixelFormat) layout(buf *[5]pfSlot) []pfSlot {
	out := buf[:0]
	group := func(start bool) {
		a := pf.Has(PFA) && pf.Has(PFAStart) == start
		z := pf.Has(PFZ) && pf.Has(PFZStart) == start
		if pf.Has(PFZA) {
			if z {
				out = append(out, slotZ)
			}
			if a {
				out = append(out, slotA)
			}
			return
		}
		if a {
			out = append(out, slotA)
		}
		if z {
			out = append(out, slotZ)
		}
	}

	group(true)
	switch {
	case pf.Has(PFGray):
		out = append(out, slotY)
	case pf.Has(PFBGR):
		out = append(out, slotB, slotG, slotR)
	default:
		out = append(out, slotR, slotG, slotB)
	}
	group(false)
	return out
}

// Encode writes c into dst and returns the number of bytes written.
// A nil gamma quantizes linearly. dst shorter than Channels() is a
// caller error and panics.
func (pf PixelFormat) Encode(dst []byte, c Color, gamma *Gamma) int {
	n := pf.Channels()
	if len(dst) < n {
		panic(fmt.Sprintf("cobra: %d byte buffer too short for %v (%d bytes)", len(dst), pf, n))
	}
	if pf.IsRaw() {
		buf := [1]Color{c}
		return copy(dst, safeish.SliceCast[[]byte](buf[:]))
	}
	if gamma == nil {
		gamma = IdentityGamma()
	}

	var slots [5]pfSlot
	for i, s := range pf.layout(&slots) {
		switch s {
		case slotR:
			dst[i] = gamma.EncodeR(c.R)
		case slotG:
			dst[i] = gamma.EncodeG(c.G)
		case slotB:
			dst[i] = gamma.EncodeB(c.B)
		case slotY:
			dst[i] = gamma.EncodeG(c.Y())
		case slotA:
			a := c.A
			if pf.Has(PFAInv) {
				a = 1 - a
			}
			dst[i] = unitToByte(a)
		case slotZ:
			dst[i] = 0
			if pf.Has(PFZInv) {
				dst[i] = 255
			}
		}
	}
	return n
}

// Decode reads one pixel from src. Formats without alpha decode as
// opaque; the depth byte is skipped. A nil gamma expands linearly.
func (pf PixelFormat) Decode(src []byte, gamma *Gamma) Color {
	n := pf.Channels()
	if len(src) < n {
		panic(fmt.Sprintf("cobra: %d byte buffer too short for %v (%d bytes)", len(src), pf, n))
	}
	if pf.IsRaw() {
		var buf [1]Color
		copy(safeish.SliceCast[[]byte](buf[:]), src[:n])
		return buf[0]
	}
	if gamma == nil {
		gamma = IdentityGamma()
	}

	c := Color{A: 1}
	var slots [5]pfSlot
	for i, s := range pf.layout(&slots) {
		v := src[i]
		switch s {
		case slotR:
			c.R = gamma.DecodeR(v)
		case slotG:
			c.G = gamma.DecodeG(v)
		case slotB:
			c.B = gamma.DecodeB(v)
		case slotY:
			c.SetYUV(gamma.DecodeG(v), 0, 0)
		case slotA:
			c.A = float32(v) / 255
			if pf.Has(PFAInv) {
				c.A = 1 - c.A
			}
		}
	}
	return c
}

// EncodeRow packs src into dst, clamping each color first, and returns
// the number of bytes written. RAW rows are copied unclamped.
func (pf PixelFormat) EncodeRow(dst []byte, src []Color, gamma *Gamma) int {
	n := pf.Channels()
	if len(dst) < n*len(src) {
		panic(fmt.Sprintf("cobra: %d byte buffer too short for %d %v pixels", len(dst), len(src), pf))
	}
	if pf.IsRaw() {
		return copy(dst, safeish.SliceCast[[]byte](src))
	}
	off := 0
	for _, c := range src {
		off += pf.Encode(dst[off:], c.Clamped(), gamma)
	}
	return off
}

// DecodeRow unpacks len(dst) pixels from src.
func (pf PixelFormat) DecodeRow(dst []Color, src []byte, gamma *Gamma) {
	n := pf.Channels()
	if len(src) < n*len(dst) {
		panic(fmt.Sprintf("cobra: %d byte buffer too short for %d %v pixels", len(src), len(dst), pf))
	}
	if pf.IsRaw() {
		copy(safeish.SliceCast[[]byte](dst), src)
		return
	}
	for i := range dst {
		dst[i] = pf.Decode(src[i*n:], gamma)
	}
}

var pixelFormatNames = [pfFlagBits]string{
	"GRAY", "A", "Z", "BGR", "A_START", "Z_START", "ZA", "A_INV", "Z_INV", "RAW",
}

// String lists the set flags, for example "A|BGR".
func (pf PixelFormat) String() string {
	if pf == PFRGB {
		return "RGB"
	}
	var parts []string
	for i, name := range pixelFormatNames {
		if pf&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
