package cobra

import "fmt"

// BlendMethod selects the compositing operator used by Blend.
// The numeric values are stable and may be persisted.
type BlendMethod int

// Blend methods.
const (
	BlendComposite     BlendMethod = 0
	BlendStraight      BlendMethod = 1
	BlendBrighten      BlendMethod = 2
	BlendDarken        BlendMethod = 3
	BlendAdd           BlendMethod = 4
	BlendSubtract      BlendMethod = 5
	BlendMultiply      BlendMethod = 6
	BlendDivide        BlendMethod = 7
	BlendColor         BlendMethod = 8
	BlendHue           BlendMethod = 9
	BlendSaturation    BlendMethod = 10
	BlendLuminance     BlendMethod = 11
	BlendBehind        BlendMethod = 12
	BlendOnto          BlendMethod = 13
	BlendAlphaBrighten BlendMethod = 14
	BlendAlphaDarken   BlendMethod = 15
	BlendScreen        BlendMethod = 16
	BlendHardLight     BlendMethod = 17
	BlendDifference    BlendMethod = 18
	BlendAlphaOver     BlendMethod = 19
	BlendOverlay       BlendMethod = 20
	BlendStraightOnto  BlendMethod = 21
	BlendZero          BlendMethod = 22

	blendMethodCount = 23
)

var blendMethodNames = [blendMethodCount]string{
	BlendComposite:     "composite",
	BlendStraight:      "straight",
	BlendBrighten:      "brighten",
	BlendDarken:        "darken",
	BlendAdd:           "add",
	BlendSubtract:      "subtract",
	BlendMultiply:      "multiply",
	BlendDivide:        "divide",
	BlendColor:         "color",
	BlendHue:           "hue",
	BlendSaturation:    "saturation",
	BlendLuminance:     "luminance",
	BlendBehind:        "behind",
	BlendOnto:          "onto",
	BlendAlphaBrighten: "alpha_brighten",
	BlendAlphaDarken:   "alpha_darken",
	BlendScreen:        "screen",
	BlendHardLight:     "hard_light",
	BlendDifference:    "difference",
	BlendAlphaOver:     "alpha_over",
	BlendOverlay:       "overlay",
	BlendStraightOnto:  "straight_onto",
	BlendZero:          "zero",
}

// BlendMethods returns every valid blend method in numeric order.
func BlendMethods() []BlendMethod {
	m := make([]BlendMethod, blendMethodCount)
	for i := range m {
		m[i] = BlendMethod(i)
	}
	return m
}

// Valid reports whether m is a known method.
func (m BlendMethod) Valid() bool {
	return m >= 0 && m < blendMethodCount
}

// String returns the lower-case method name.
func (m BlendMethod) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMethod(%d)", int(m))
	}
	return blendMethodNames[m]
}

// ParseBlendMethod looks a method up by its String name.
func ParseBlendMethod(name string) (BlendMethod, error) {
	for i, n := range blendMethodNames {
		if n == name {
			return BlendMethod(i), nil
		}
	}
	return 0, fmt.Errorf("cobra: unknown blend method %q", name)
}

// IsOnto reports whether transparent source pixels leave the destination
// unchanged, so the result never gains coverage outside the destination.
func (m BlendMethod) IsOnto() bool {
	switch m {
	case BlendBrighten, BlendDarken, BlendAdd, BlendSubtract, BlendMultiply,
		BlendDivide, BlendColor, BlendHue, BlendSaturation, BlendLuminance,
		BlendOnto, BlendStraightOnto, BlendScreen, BlendOverlay,
		BlendDifference, BlendHardLight:
		return true
	}
	return false
}

// IsStraight reports whether transparent source pixels still influence
// the result.
func (m BlendMethod) IsStraight() bool {
	switch m {
	case BlendStraight, BlendStraightOnto, BlendAlphaBrighten:
		return true
	}
	return false
}

// KeepsTransparentSource reports whether blending a fully transparent
// source returns the destination unchanged for every destination.
// Passes use it to cull blend work outside the source bounds.
func (m BlendMethod) KeepsTransparentSource() bool {
	return m == BlendComposite || (m.IsOnto() && !m.IsStraight())
}
