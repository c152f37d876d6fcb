package cobra

import (
	"fmt"
	"strings"

	"honnef.co/go/color"
)

// FromColorspace converts a color specified in any colorspace to a
// linear-light Color. Components outside the sRGB gamut are kept, so the
// result may leave [0, 1].
func FromColorspace(c color.Color) Color {
	cc := c.Convert(color.LinearSRGB)
	return Color{
		R: float32(cc.Values[0]),
		G: float32(cc.Values[1]),
		B: float32(cc.Values[2]),
		A: float32(cc.Values[3]),
	}
}

// ParseColor parses a CSS color() expression such as
// "color(display-p3 1 0 0 / 0.5)" or a hex string such as "#ff8000".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "color(") {
		return ParseHex(s)
	}
	cc, ok := color.Parse(s)
	if !ok {
		return Color{}, fmt.Errorf("cobra: invalid color %q", s)
	}
	return FromColorspace(cc), nil
}
