package cobra

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestCairoColorSaturates(t *testing.T) {
	a := CairoRGBA(200, 100, 10, 255)
	b := CairoRGBA(100, 100, 20, 10)
	test.T(t, a.Add(b), CairoRGBA(255, 200, 30, 255))
	test.T(t, b.Sub(a), CairoRGBA(0, 0, 10, 0))
	test.T(t, a.Mul(2), CairoRGBA(255, 200, 20, 255))
	test.T(t, a.Div(2), CairoRGBA(100, 50, 5, 128))
	test.T(t, a.Invert(), CairoRGBA(55, 155, 245, 255))
}

func TestCairoColorConversion(t *testing.T) {
	for i := range 256 {
		v := uint8(i)
		c := CairoRGBA(v, 255-v, v/2, v)
		if got := c.Color().ToCairo(); got != c {
			t.Fatalf("ToCairo(Color(%v)) = %v", c, got)
		}
	}
	test.T(t, RGBA(2, -1, 0.5, 1).ToCairo(), CairoRGBA(255, 0, 128, 255))
}

func TestCairoPremultDemult(t *testing.T) {
	c := CairoRGBA(255, 128, 0, 128)
	p := c.PremultAlpha()
	test.T(t, p, CairoRGBA(128, 64, 0, 128))
	back := p.DemultAlpha()
	if d := int(back.G) - int(c.G); d > 1 || d < -1 {
		t.Errorf("DemultAlpha(PremultAlpha(%v)) = %v", c, back)
	}
	test.T(t, CairoRGBA(10, 20, 30, 0).DemultAlpha(), CairoColor{})
}

func TestBlendCairo(t *testing.T) {
	red := Red.ToCairo()
	blue := Blue.ToCairo()
	test.T(t, BlendCairo(red, blue, 1, BlendComposite), red)
	test.T(t, BlendCairo(red, blue, 0, BlendComposite), blue)
	test.T(t, BlendCairo(CairoColor{}, blue, 1, BlendComposite), blue)
	test.T(t, BlendCairo(red, blue, 1, BlendZero), CairoColor{})
}
