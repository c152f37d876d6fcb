package cobra

import "github.com/chewxy/math32"

// BlendFunc composites src onto dst with weight amount.
type BlendFunc func(src, dst Color, amount float32) Color

var blendFuncs = [blendMethodCount]BlendFunc{
	BlendComposite:     blendComposite,
	BlendStraight:      blendStraight,
	BlendBrighten:      blendBrighten,
	BlendDarken:        blendDarken,
	BlendAdd:           blendAdd,
	BlendSubtract:      blendSubtract,
	BlendMultiply:      blendMultiply,
	BlendDivide:        blendDivide,
	BlendColor:         blendColor,
	BlendHue:           blendHue,
	BlendSaturation:    blendSaturation,
	BlendLuminance:     blendLuminance,
	BlendBehind:        blendBehind,
	BlendOnto:          blendOnto,
	BlendAlphaBrighten: blendAlphaBrighten,
	BlendAlphaDarken:   blendAlphaDarken,
	BlendScreen:        blendScreen,
	BlendHardLight:     blendHardLight,
	BlendDifference:    blendDifference,
	BlendAlphaOver:     blendAlphaOver,
	BlendOverlay:       blendOverlay,
	BlendStraightOnto:  blendStraightOnto,
	BlendZero:          blendZero,
}

// Blend composites src onto dst using method, weighted by amount.
//
// A zero amount returns dst for every method except BlendZero, which
// always yields the transparent color. Unknown methods return dst.
func Blend(src, dst Color, amount float32, method BlendMethod) Color {
	if method == BlendZero {
		return Color{}
	}
	if math32.Abs(amount) <= colorEpsilon || !method.Valid() {
		return dst
	}
	return blendFuncs[method](src, dst, amount)
}

// GetBlendFunc returns the blend function for method, or nil if the
// method is unknown. The returned function skips the zero-amount check
// performed by Blend.
func GetBlendFunc(method BlendMethod) BlendFunc {
	if !method.Valid() {
		return nil
	}
	return blendFuncs[method]
}

func blendZero(Color, Color, float32) Color { return Color{} }

func blendComposite(src, dst Color, amount float32) Color {
	aSrc := src.A * amount
	if math32.Abs(aSrc) < colorEpsilon {
		return dst
	}
	aDst := dst.A
	if aDst == 0 {
		return src.WithAlpha(aSrc)
	}

	out := src.Mul(aSrc).Add(dst.Mul(aDst * (1 - aSrc)))
	aOut := aSrc + aDst*(1-aSrc)
	if math32.Abs(aOut) <= colorEpsilon {
		return Color{}
	}
	out = out.Div(aOut)
	out.A = aOut
	return out
}

func blendStraight(src, dst Color, amount float32) Color {
	aOut := (src.A-dst.A)*amount + dst.A
	if math32.Abs(aOut) <= colorEpsilon {
		return Color{}
	}
	out := src.Mul(src.A).Sub(dst.Mul(dst.A)).Mul(amount).Add(dst.Mul(dst.A)).Div(aOut)
	out.A = aOut
	return out
}

func blendOnto(src, dst Color, amount float32) Color {
	a := dst.A
	return blendComposite(src, dst.WithAlpha(1), amount).WithAlpha(a)
}

func blendStraightOnto(src, dst Color, amount float32) Color {
	src.A *= dst.A
	return blendStraight(src, dst, amount)
}

// blendBrighten, blendDarken and blendDifference leave an out of range
// destination untouched under a transparent source.
func blendBrighten(src, dst Color, amount float32) Color {
	alpha := src.A * amount
	if alpha == 0 {
		return dst
	}
	if v := src.R * alpha; dst.R < v {
		dst.R = v
	}
	if v := src.G * alpha; dst.G < v {
		dst.G = v
	}
	if v := src.B * alpha; dst.B < v {
		dst.B = v
	}
	return dst
}

func blendDarken(src, dst Color, amount float32) Color {
	alpha := src.A * amount
	if alpha == 0 {
		return dst
	}
	if v := (src.R-1)*alpha + 1; dst.R > v {
		dst.R = v
	}
	if v := (src.G-1)*alpha + 1; dst.G > v {
		dst.G = v
	}
	if v := (src.B-1)*alpha + 1; dst.B > v {
		dst.B = v
	}
	return dst
}

func blendAdd(src, dst Color, amount float32) Color {
	alpha := src.A * amount
	dst.R += src.R * alpha
	dst.G += src.G * alpha
	dst.B += src.B * alpha
	return dst
}

func blendSubtract(src, dst Color, amount float32) Color {
	alpha := src.A * amount
	dst.R -= src.R * alpha
	dst.G -= src.G * alpha
	dst.B -= src.B * alpha
	return dst
}

func blendDifference(src, dst Color, amount float32) Color {
	alpha := src.A * amount
	if alpha == 0 {
		return dst
	}
	dst.R = math32.Abs(dst.R - src.R*alpha)
	dst.G = math32.Abs(dst.G - src.G*alpha)
	dst.B = math32.Abs(dst.B - src.B*alpha)
	return dst
}

func blendMultiply(src, dst Color, amount float32) Color {
	if amount < 0 {
		src, amount = src.Invert(), -amount
	}
	amount *= src.A
	dst.R = (dst.R*src.R-dst.R)*amount + dst.R
	dst.G = (dst.G*src.G-dst.G)*amount + dst.G
	dst.B = (dst.B*src.B-dst.B)*amount + dst.B
	return dst
}

func blendDivide(src, dst Color, amount float32) Color {
	amount *= src.A
	dst.R = (dst.R/(src.R+colorEpsilon)-dst.R)*amount + dst.R
	dst.G = (dst.G/(src.G+colorEpsilon)-dst.G)*amount + dst.G
	dst.B = (dst.B/(src.B+colorEpsilon)-dst.B)*amount + dst.B
	return dst
}

// mixChannel blends the adjusted destination tmp back over dst.
func mixChannel(tmp, src, dst Color, amount float32) Color {
	return tmp.Sub(dst).Mul(amount * src.A).Add(dst)
}

func blendColor(src, dst Color, amount float32) Color {
	tmp := dst
	tmp.SetUV(src.U(), src.V())
	return mixChannel(tmp, src, dst, amount)
}

func blendHue(src, dst Color, amount float32) Color {
	tmp := dst
	tmp.SetHue(src.Hue())
	return mixChannel(tmp, src, dst, amount)
}

func blendSaturation(src, dst Color, amount float32) Color {
	tmp := dst
	tmp.SetS(src.S())
	return mixChannel(tmp, src, dst, amount)
}

func blendLuminance(src, dst Color, amount float32) Color {
	tmp := dst
	tmp.SetY(src.Y())
	return mixChannel(tmp, src, dst, amount)
}

func blendBehind(src, dst Color, amount float32) Color {
	if src.A == 0 {
		src.A = colorEpsilon * amount
	} else {
		src.A *= amount
	}
	return blendComposite(dst, src, 1)
}

func blendAlphaBrighten(src, dst Color, amount float32) Color {
	if src.A < dst.A*amount {
		return src.WithAlpha(src.A * amount)
	}
	return dst
}

func blendAlphaDarken(src, dst Color, amount float32) Color {
	if src.A*amount > dst.A {
		return src.WithAlpha(src.A * amount)
	}
	return dst
}

func blendScreen(src, dst Color, amount float32) Color {
	if amount < 0 {
		src, amount = src.Invert(), -amount
	}
	src.R = 1 - (1-src.R)*(1-dst.R)
	src.G = 1 - (1-src.G)*(1-dst.G)
	src.B = 1 - (1-src.B)*(1-dst.B)
	return blendOnto(src, dst, amount)
}

func blendOverlay(src, dst Color, amount float32) Color {
	if amount < 0 {
		src, amount = src.Invert(), -amount
	}
	overlay := func(a, b float32) float32 {
		multiplied := a * b
		screened := 1 - (1-a)*(1-b)
		return a*screened + (1-a)*multiplied
	}
	src.R = overlay(src.R, dst.R)
	src.G = overlay(src.G, dst.G)
	src.B = overlay(src.B, dst.B)
	return blendOnto(src, dst, amount)
}

func blendHardLight(src, dst Color, amount float32) Color {
	if amount < 0 {
		src, amount = src.Invert(), -amount
	}
	hard := func(a, b float32) float32 {
		if a > 0.5 {
			return 1 - (1-(2*a-1))*(1-b)
		}
		return b * (2 * a)
	}
	src.R = hard(src.R, dst.R)
	src.G = hard(src.G, dst.G)
	src.B = hard(src.B, dst.B)
	return blendOnto(src, dst, amount)
}

func blendAlphaOver(src, dst Color, amount float32) Color {
	rm := dst
	rm.A = (1 - src.A) * dst.A
	return blendStraight(rm, dst, amount)
}
