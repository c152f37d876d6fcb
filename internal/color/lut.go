// Package color provides gamma curves and the lookup tables used to
// quantize float components to bytes and back.
//
// A Table replaces a math32.Pow call per channel with an array lookup.
// Encoding uses 4096 entries (12-bit precision), which keeps the
// quantization error below one 8-bit step.
package color

// encodeSize is the number of entries in the float → byte table.
const encodeSize = 4096

// Table converts between linear float components and gamma encoded
// bytes for one gamma exponent.
type Table struct {
	gamma  float32
	encode [encodeSize]uint8
	decode [256]float32
}

// NewTable builds the lookup tables for gamma. Gamma 1 is the identity
// curve.
func NewTable(gamma float32) *Table {
	t := &Table{gamma: gamma}
	for i := range encodeSize {
		t.encode[i] = clampAndRound(Out(float32(i)/(encodeSize-1), gamma))
	}
	for i := range 256 {
		t.decode[i] = In(float32(i)/255, gamma)
	}
	return t
}

// Gamma returns the exponent the table was built for.
func (t *Table) Gamma() float32 { return t.gamma }

// Encode converts a linear component to a gamma encoded byte.
// Input is clamped to [0.0, 1.0].
func (t *Table) Encode(l float32) uint8 {
	if l <= 0 {
		return t.encode[0]
	}
	if l >= 1 {
		return t.encode[encodeSize-1]
	}
	return t.encode[int(l*(encodeSize-1)+0.5)]
}

// Decode converts a gamma encoded byte to a linear component.
func (t *Table) Decode(s uint8) float32 {
	return t.decode[s]
}

// EncodeSlow converts a linear component with math32.Pow.
// Used for verification of the table.
func EncodeSlow(l, gamma float32) uint8 {
	return clampAndRound(Out(l, gamma))
}
