package color

import "github.com/chewxy/math32"

// In decodes an encoded component to linear light: sign(x) * |x|^gamma.
// The sign is preserved so out-of-range intermediates stay monotonic.
func In(x, gamma float32) float32 {
	if gamma == 1 {
		return x
	}
	if x < 0 {
		return -math32.Pow(-x, gamma)
	}
	return math32.Pow(x, gamma)
}

// Out encodes a linear component: sign(x) * |x|^(1/gamma).
func Out(x, gamma float32) float32 {
	if gamma == 1 {
		return x
	}
	if x < 0 {
		return -math32.Pow(-x, 1/gamma)
	}
	return math32.Pow(x, 1/gamma)
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
