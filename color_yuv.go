package cobra

import "github.com/chewxy/math32"

// YUV encode matrix (ITU-R BT.601, full range).
const (
	encodeYR = 0.299
	encodeYG = 0.587
	encodeYB = 0.114

	encodeUR = -0.168736
	encodeUG = -0.331264
	encodeUB = 0.5

	encodeVR = 0.5
	encodeVG = -0.418688
	encodeVB = -0.081312
)

// YUV decode matrix, the inverse of the encode matrix.
const (
	decodeRY = 1.0
	decodeRU = 0.0
	decodeRV = 1.402

	decodeGY = 1.0
	decodeGU = -0.344136
	decodeGV = -0.714136

	decodeBY = 1.0
	decodeBU = 1.772
	decodeBV = 0.0
)

// YUV creates a color from luma, chroma and alpha.
func YUV(y, u, v, a float32) Color {
	c := Color{A: a}
	c.SetYUV(y, u, v)
	return c
}

// YUVPolar creates a color from luma, saturation, hue angle (radians)
// and alpha.
func YUVPolar(y, s, theta, a float32) Color {
	c := Color{A: a}
	c.SetYUV(y, s*math32.Sin(theta), s*math32.Cos(theta))
	return c
}

// Y returns the luma.
func (c Color) Y() float32 {
	return c.R*encodeYR + c.G*encodeYG + c.B*encodeYB
}

// U returns the blue-difference chroma.
func (c Color) U() float32 {
	return c.R*encodeUR + c.G*encodeUG + c.B*encodeUB
}

// V returns the red-difference chroma.
func (c Color) V() float32 {
	return c.R*encodeVR + c.G*encodeVG + c.B*encodeVB
}

// S returns the saturation, the magnitude of the (u, v) vector.
func (c Color) S() float32 {
	u, v := c.U(), c.V()
	return math32.Sqrt(u*u + v*v)
}

// Hue returns the angle of the (u, v) vector in radians.
func (c Color) Hue() float32 {
	return math32.Atan2(c.U(), c.V())
}

// SetYUV replaces RGB with the decoded luma and chroma. Alpha is kept.
func (c *Color) SetYUV(y, u, v float32) {
	c.R = y*decodeRY + u*decodeRU + v*decodeRV
	c.G = y*decodeGY + u*decodeGU + v*decodeGV
	c.B = y*decodeBY + u*decodeBU + v*decodeBV
}

// SetY replaces the luma.
func (c *Color) SetY(y float32) { c.SetYUV(y, c.U(), c.V()) }

// SetU replaces the blue-difference chroma.
func (c *Color) SetU(u float32) { c.SetYUV(c.Y(), u, c.V()) }

// SetV replaces the red-difference chroma.
func (c *Color) SetV(v float32) { c.SetYUV(c.Y(), c.U(), v) }

// SetUV replaces both chroma components.
func (c *Color) SetUV(u, v float32) { c.SetYUV(c.Y(), u, v) }

// SetS rescales the chroma vector to saturation s. Gray colors have no
// direction to scale and are left unchanged.
func (c *Color) SetS(s float32) {
	u, v := c.U(), c.V()
	cur := math32.Sqrt(u*u + v*v)
	if cur <= colorEpsilon {
		return
	}
	k := s / cur
	c.SetUV(u*k, v*k)
}

// SetHue points the chroma vector at angle theta, keeping saturation.
func (c *Color) SetHue(theta float32) {
	s := c.S()
	c.SetUV(s*math32.Sin(theta), s*math32.Cos(theta))
}

// RotateUV rotates the chroma vector by theta radians.
func (c *Color) RotateUV(theta float32) {
	a, b := math32.Sin(theta), math32.Cos(theta)
	u, v := c.U(), c.V()
	c.SetUV(b*u-a*v, a*u+b*v)
}
