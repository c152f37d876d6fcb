package task

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"

	"github.com/gogpu/cobra"
)

// snap absorbs rounding noise before rectangles are rounded out.
const snap = 1e-9

func floor(v float64) float64 { return math.Floor(v + snap) }
func ceil(v float64) float64  { return math.Ceil(v - snap) }

// Identity returns the identity matrix.
func Identity() f64.Aff3 { return f64.Aff3{1, 0, 0, 0, 1, 0} }

// Translate returns a translation by (x, y).
func Translate(x, y float64) f64.Aff3 { return f64.Aff3{1, 0, x, 0, 1, y} }

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) f64.Aff3 { return f64.Aff3{sx, 0, 0, 0, sy, 0} }

// Mul returns the matrix applying b first and then a.
func Mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Invert returns the inverse of m. ok is false when m is singular.
func Invert(m f64.Aff3) (inv f64.Aff3, ok bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-12 {
		return f64.Aff3{}, false
	}
	d := 1 / det
	inv[0] = m[4] * d
	inv[1] = -m[1] * d
	inv[3] = -m[3] * d
	inv[4] = m[0] * d
	inv[2] = -(inv[0]*m[2] + inv[1]*m[5])
	inv[5] = -(inv[3]*m[2] + inv[4]*m[5])
	return inv, true
}

// IsIdentity reports whether m is exactly the identity.
func IsIdentity(m f64.Aff3) bool { return m == Identity() }

// Apply maps (x, y) through m.
func Apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

func applyPoint(m f64.Aff3, p curve.Point) curve.Point {
	x, y := Apply(m, p.X, p.Y)
	return curve.Point{X: x, Y: y}
}

type bbox struct {
	x0, y0, x1, y1 float64
	ok             bool
}

func (b *bbox) add(x, y float64) {
	if !b.ok {
		*b = bbox{x, y, x, y, true}
		return
	}
	b.x0, b.y0 = min(b.x0, x), min(b.y0, y)
	b.x1, b.y1 = max(b.x1, x), max(b.y1, y)
}

// rect rounds the box out to whole pixels.
func (b *bbox) rect() image.Rectangle {
	if !b.ok {
		return image.Rectangle{}
	}
	return image.Rect(int(floor(b.x0)), int(floor(b.y0)), int(ceil(b.x1)), int(ceil(b.y1)))
}

// TransformRect returns the pixel rectangle covering r mapped through m.
func TransformRect(m f64.Aff3, r image.Rectangle) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	var b bbox
	for _, p := range [4]image.Point{r.Min, {r.Max.X, r.Min.Y}, r.Max, {r.Min.X, r.Max.Y}} {
		b.add(Apply(m, float64(p.X), float64(p.Y)))
	}
	return b.rect()
}

// PathBounds returns the pixel rectangle covering every point of path,
// control points included.
func PathBounds(path []curve.PathElement) image.Rectangle {
	var b bbox
	for _, e := range path {
		for _, p := range points(e) {
			b.add(p.X, p.Y)
		}
	}
	r := b.rect()
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

func points(e curve.PathElement) []curve.Point {
	switch e.Kind {
	case curve.MoveToKind, curve.LineToKind:
		return []curve.Point{e.P0}
	case curve.QuadToKind:
		return []curve.Point{e.P0, e.P1}
	case curve.CubicToKind:
		return []curve.Point{e.P0, e.P1, e.P2}
	}
	return nil
}

// TransformPath returns path mapped through m.
func TransformPath(m f64.Aff3, path []curve.PathElement) []curve.PathElement {
	out := make([]curve.PathElement, len(path))
	for i, e := range path {
		e.P0 = applyPoint(m, e.P0)
		e.P1 = applyPoint(m, e.P1)
		e.P2 = applyPoint(m, e.P2)
		out[i] = e
	}
	return out
}

// RectPath returns a closed rectangular path.
func RectPath(x0, y0, x1, y1 float64) []curve.PathElement {
	return []curve.PathElement{
		{Kind: curve.MoveToKind, P0: curve.Point{X: x0, Y: y0}},
		{Kind: curve.LineToKind, P0: curve.Point{X: x1, Y: y0}},
		{Kind: curve.LineToKind, P0: curve.Point{X: x1, Y: y1}},
		{Kind: curve.LineToKind, P0: curve.Point{X: x0, Y: y1}},
		{Kind: curve.ClosePathKind},
	}
}

// CirclePath returns a closed circle approximated by four cubic arcs.
func CirclePath(cx, cy, r float64) []curve.PathElement {
	const k = 0.5522847498307936
	c := r * k
	pt := func(x, y float64) curve.Point { return curve.Point{X: cx + x, Y: cy + y} }
	return []curve.PathElement{
		{Kind: curve.MoveToKind, P0: pt(r, 0)},
		{Kind: curve.CubicToKind, P0: pt(r, c), P1: pt(c, r), P2: pt(0, r)},
		{Kind: curve.CubicToKind, P0: pt(-c, r), P1: pt(-r, c), P2: pt(-r, 0)},
		{Kind: curve.CubicToKind, P0: pt(-r, -c), P1: pt(-c, -r), P2: pt(0, -r)},
		{Kind: curve.CubicToKind, P0: pt(c, -r), P1: pt(r, -c), P2: pt(r, 0)},
		{Kind: curve.ClosePathKind},
	}
}

// ShapePath flattens any curve shape into path elements.
func ShapePath(s curve.Shape, tolerance float64) []curve.PathElement {
	var out []curve.PathElement
	for e := range s.PathElements(tolerance) {
		out = append(out, e)
	}
	return out
}

// Bounds returns the pixel rectangle covering every triangle. Triangles
// with out-of-range indices are ignored.
func (m Mesh) Bounds() image.Rectangle {
	var b bbox
	for _, tri := range m.Triangles {
		if !m.validTriangle(tri) {
			continue
		}
		for _, i := range tri {
			b.add(m.Vertices[i].Pos[0], m.Vertices[i].Pos[1])
		}
	}
	r := b.rect()
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// Triangle returns the vertices of triangle i, or false when one of its
// indices is out of range.
func (m Mesh) Triangle(i int) ([3]Vertex, bool) {
	var v [3]Vertex
	tri := m.Triangles[i]
	if !m.validTriangle(tri) {
		return v, false
	}
	for j, k := range tri {
		v[j] = m.Vertices[k]
	}
	return v, true
}

func (m Mesh) validTriangle(tri [3]int) bool {
	for _, i := range tri {
		if i < 0 || i >= len(m.Vertices) {
			return false
		}
	}
	return true
}

// BlendBounds returns the rectangle where Blend(dst, src) can be
// non-transparent given the bounds of its inputs.
func BlendBounds(p BlendParams, dst, src image.Rectangle) image.Rectangle {
	switch {
	case p.Method == cobra.BlendZero:
		return image.Rectangle{}
	case math.Abs(float64(p.Amount)) <= 1e-6:
		return dst
	case p.Method.IsOnto() && !p.Method.IsStraight():
		return dst
	}
	return dst.Union(src)
}
