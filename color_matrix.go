package cobra

// ColorMatrix is a 5x5 affine color transform using the row-vector
// convention: out[j] = r*M[0][j] + g*M[1][j] + b*M[2][j] + a*M[3][j] + M[4][j].
// Row 4 holds the constant term.
type ColorMatrix [5][5]float32

// IdentityColorMatrix returns the matrix that leaves colors unchanged.
func IdentityColorMatrix() ColorMatrix {
	var m ColorMatrix
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// ConstantColorMatrix returns a matrix that maps every color to c.
func ConstantColorMatrix(c Color) ColorMatrix {
	var m ColorMatrix
	m[4] = [5]float32{c.R, c.G, c.B, c.A, 1}
	return m
}

// ScaleColorMatrix returns a matrix multiplying each channel.
func ScaleColorMatrix(r, g, b, a float32) ColorMatrix {
	m := IdentityColorMatrix()
	m[0][0], m[1][1], m[2][2], m[3][3] = r, g, b, a
	return m
}

// Mul returns the transform applying m first and then o.
func (m ColorMatrix) Mul(o ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for i := range 5 {
		for j := range 5 {
			var s float32
			for k := range 5 {
				s += m[i][k] * o[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// Apply transforms c.
func (m *ColorMatrix) Apply(c Color) Color {
	in := [4]float32{c.R, c.G, c.B, c.A}
	var out [4]float32
	for j := range 4 {
		s := m[4][j]
		for i, v := range in {
			s += v * m[i][j]
		}
		out[j] = s
	}
	return Color{R: out[0], G: out[1], B: out[2], A: out[3]}
}

// IsConstant reports whether the output ignores the input color.
func (m *ColorMatrix) IsConstant() bool {
	for i := range 4 {
		for j := range 4 {
			if m[i][j] != 0 {
				return false
			}
		}
	}
	return true
}

// Constant returns the color produced for every input when IsConstant
// holds.
func (m *ColorMatrix) Constant() Color {
	return Color{R: m[4][0], G: m[4][1], B: m[4][2], A: m[4][3]}
}

// KeepsTransparent reports whether a transparent input always maps to a
// transparent output, that is, output alpha depends only on input alpha
// and has no constant term.
func (m *ColorMatrix) KeepsTransparent() bool {
	return m[0][3] == 0 && m[1][3] == 0 && m[2][3] == 0 && m[4][3] == 0
}

// IsIdentity reports whether m is the identity.
func (m *ColorMatrix) IsIdentity() bool {
	return *m == IdentityColorMatrix()
}
