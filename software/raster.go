package software

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/surface"
	"github.com/gogpu/cobra/task"
)

// rasterize returns the nonzero coverage of path over r.
func rasterize(path []curve.PathElement, r image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(r)
	if r.Empty() || len(path) == 0 {
		return mask
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = xdraw.Src

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	pt := func(p curve.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}
	open := false
	for _, el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(el.P0))
			open = false
		case curve.LineToKind:
			z.LineTo(pt(el.P0))
			open = true
		case curve.QuadToKind:
			bx, by := pt(el.P0)
			cx, cy := pt(el.P1)
			z.QuadTo(bx, by, cx, cy)
			open = true
		case curve.CubicToKind:
			bx, by := pt(el.P0)
			cx, cy := pt(el.P1)
			dx, dy := pt(el.P2)
			z.CubeTo(bx, by, cx, cy, dx, dy)
			open = true
		case curve.ClosePathKind:
			if open {
				z.ClosePath()
			}
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(mask, r, image.Opaque, image.Point{})
	return mask
}

func coverage(mask *image.Alpha, x, y int) float32 {
	return float32(mask.AlphaAt(x, y).A) / 255
}

func (e *executor) contour(dst *surface.Linear, n *task.Node) {
	p := n.Params.(task.Contour)
	r := paintRect(dst, n)
	mask := rasterize(p.Path, r)
	e.shade(dst, n, func(x, y int) (cobra.Color, float32) {
		a := coverage(mask, x, y)
		if !p.Antialias {
			a = hard(a)
		}
		if p.Invert {
			a = 1 - a
		}
		return p.Color, a
	})
}

func hard(a float32) float32 {
	if a >= 0.5 {
		return 1
	}
	return 0
}

// mesh composites the triangles in order into a layer covering the
// step's paint rectangle, then emits the layer.
func (e *executor) mesh(dst *surface.Linear, n *task.Node) {
	p := n.Params.(task.Mesh)
	r := paintRect(dst, n)
	layer := surface.New[cobra.Color](r)

	for i := range p.Triangles {
		v, ok := p.Triangle(i)
		if !ok {
			continue
		}
		bary, ok := newBarycentric(v)
		if !ok {
			continue
		}
		path := []curve.PathElement{
			{Kind: curve.MoveToKind, P0: curve.Point{X: v[0].Pos[0], Y: v[0].Pos[1]}},
			{Kind: curve.LineToKind, P0: curve.Point{X: v[1].Pos[0], Y: v[1].Pos[1]}},
			{Kind: curve.LineToKind, P0: curve.Point{X: v[2].Pos[0], Y: v[2].Pos[1]}},
			{Kind: curve.ClosePathKind},
		}
		tr := task.PathBounds(path).Intersect(r)
		if tr.Empty() {
			continue
		}
		mask := rasterize(path, tr)
		for y := tr.Min.Y; y < tr.Max.Y; y++ {
			for x := tr.Min.X; x < tr.Max.X; x++ {
				cov := coverage(mask, x, y)
				if cov == 0 {
					continue
				}
				c := bary.color(float64(x)+0.5, float64(y)+0.5)
				layer.Set(x, y, cobra.Blend(c, layer.Get(x, y), cov, cobra.BlendComposite))
			}
		}
	}
	e.shade(dst, n, func(x, y int) (cobra.Color, float32) { return layer.Get(x, y), 1 })
}

// barycentric interpolates vertex colors across a triangle. Colors mix
// premultiplied, with weights clamped to the triangle.
type barycentric struct {
	v   [3]task.Vertex
	det float64
}

func newBarycentric(v [3]task.Vertex) (barycentric, bool) {
	det := (v[1].Pos[1]-v[2].Pos[1])*(v[0].Pos[0]-v[2].Pos[0]) +
		(v[2].Pos[0]-v[1].Pos[0])*(v[0].Pos[1]-v[2].Pos[1])
	if det == 0 {
		return barycentric{}, false
	}
	return barycentric{v: v, det: det}, true
}

func (b barycentric) color(x, y float64) cobra.Color {
	v := b.v
	w0 := ((v[1].Pos[1]-v[2].Pos[1])*(x-v[2].Pos[0]) + (v[2].Pos[0]-v[1].Pos[0])*(y-v[2].Pos[1])) / b.det
	w1 := ((v[2].Pos[1]-v[0].Pos[1])*(x-v[2].Pos[0]) + (v[0].Pos[0]-v[2].Pos[0])*(y-v[2].Pos[1])) / b.det
	w := [3]float64{max(w0, 0), max(w1, 0), max(1-w0-w1, 0)}
	sum := w[0] + w[1] + w[2]

	var acc cobra.Color
	for i := range v {
		acc = acc.Add(v[i].Color.PremultAlpha().Mul(float32(w[i] / sum)))
	}
	return acc.DemultAlpha()
}
