package cobra

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestColorMatrixIdentity(t *testing.T) {
	m := IdentityColorMatrix()
	test.That(t, m.IsIdentity())
	for _, c := range sampleColors {
		test.T(t, m.Apply(c), c)
	}
	test.That(t, m.KeepsTransparent())
	test.That(t, !m.IsConstant())
}

func TestColorMatrixConstant(t *testing.T) {
	m := ConstantColorMatrix(Red)
	test.That(t, m.IsConstant())
	test.T(t, m.Constant(), Red)
	test.T(t, m.Apply(Blue), Red)
	test.That(t, !m.KeepsTransparent())

	empty := ConstantColorMatrix(Transparent)
	test.That(t, empty.KeepsTransparent())
}

func TestColorMatrixScaleAndMul(t *testing.T) {
	a := ScaleColorMatrix(0.5, 1, 2, 1)
	b := ScaleColorMatrix(2, 0.5, 0.5, 0.5)
	c := RGBA(0.5, 0.5, 0.5, 1)
	want := b.Apply(a.Apply(c))
	m := a.Mul(b)
	test.T(t, m.Apply(c), want)
	test.T(t, want, RGBA(0.5, 0.25, 0.5, 0.5))
}
