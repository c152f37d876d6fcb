package cobra

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

// clamp restricts v to [lo, hi].
func clamp[T number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// unitToByte maps [0, 1] to [0, 255] with rounding. Out of range input
// saturates.
func unitToByte(v float32) uint8 {
	return uint8(clamp(v*255+0.5, 0, 255))
}
