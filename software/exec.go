package software

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/internal/parallel"
	"github.com/gogpu/cobra/surface"
	"github.com/gogpu/cobra/task"
)

// Errors returned by the software renderer.
var (
	ErrNotLowered   = errors.New("software: graph is not a lowered software sequence")
	ErrNoSurface    = errors.New("software: step addresses a surface that does not exist")
	ErrInvalidLevel = errors.New("software: draft level must be at least 1")
)

// executor runs the steps of a linearized graph.
type executor struct {
	g        *task.Graph
	pool     *parallel.WorkerPool
	surfaces map[task.SurfaceID]*surface.Linear
}

// execute runs the Sequence root of g into target. The context is
// checked between steps.
func execute(ctx context.Context, g *task.Graph, target *surface.Linear, pool *parallel.WorkerPool) error {
	root := g.Root()
	if root == task.NoID {
		target.Clear(target.Rect)
		return nil
	}
	seq := g.Node(root)
	if seq.Kind != task.KindSequence {
		return fmt.Errorf("%w: root is a %s node", ErrNotLowered, seq.Kind)
	}

	e := &executor{
		g:        g,
		pool:     pool,
		surfaces: map[task.SurfaceID]*surface.Linear{task.RootSurface: target},
	}
	for i, id := range seq.Inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := g.Node(id)
		if err := e.step(n); err != nil {
			return fmt.Errorf("software: step %d (%s): %w", i, n.Kind, err)
		}
	}
	return nil
}

func (e *executor) surface(id task.SurfaceID) (*surface.Linear, error) {
	s, ok := e.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoSurface, id)
	}
	return s, nil
}

// read returns the i-th scratch surface n reads.
func (e *executor) read(n *task.Node, i int) (*surface.Linear, error) {
	if i >= len(n.Reads) {
		return nil, fmt.Errorf("%w: %s node reads %d surfaces, want %d", ErrNoSurface, n.Kind, len(n.Reads), i+1)
	}
	return e.surface(n.Reads[i])
}

func (e *executor) step(n *task.Node) error {
	switch n.Kind {
	case task.KindSurfaceCreate:
		e.surfaces[n.Surface] = surface.New[cobra.Color](n.Target)
		return nil
	case task.KindSurfaceDestroy:
		delete(e.surfaces, n.Surface)
		return nil
	case task.KindList, task.KindSequence, task.KindTransformation:
		return ErrNotLowered
	}
	if n.Backend != task.BackendSoftware {
		return fmt.Errorf("%w: %s backend", ErrNotLowered, n.Backend)
	}
	dst, err := e.surface(n.Surface)
	if err != nil {
		return err
	}

	switch n.Kind {
	case task.KindSurface:
		src := e.g.Linear(n.Params.(task.SurfaceRef).Ref)
		if src == nil {
			return fmt.Errorf("%w: external surface %d", ErrNoSurface, n.Params.(task.SurfaceRef).Ref)
		}
		e.shade(dst, n, func(x, y int) (cobra.Color, float32) { return src.Get(x, y), 1 })
	case task.KindSurfaceConvert:
		src := e.g.Packed(n.Params.(task.SurfaceRef).Ref)
		if src == nil {
			return fmt.Errorf("%w: external surface %d", ErrNoSurface, n.Params.(task.SurfaceRef).Ref)
		}
		e.shade(dst, n, func(x, y int) (cobra.Color, float32) { return src.Get(x, y).Color(), 1 })
	case task.KindContour:
		e.contour(dst, n)
	case task.KindMesh:
		e.mesh(dst, n)
	case task.KindPixelColorMatrix:
		e.colorMatrix(dst, n)
	case task.KindPixelGamma:
		e.gamma(dst, n)
	case task.KindBlend:
		return e.blend(dst, n)
	case task.KindBlur:
		return e.blur(dst, n)
	case task.KindSurfaceResample:
		return e.resample(dst, n)
	default:
		return ErrNotLowered
	}
	return nil
}

// paintRect returns the pixels a leaf step writes: its whole target, or
// only its bounds when it composites with a method that leaves the
// destination alone under transparent pixels.
func paintRect(dst *surface.Linear, n *task.Node) image.Rectangle {
	r := n.Target.Intersect(dst.Rect)
	if n.Flags.Has(task.FlagOnto) && n.Blend.Method.KeepsTransparentSource() {
		r = r.Intersect(n.Bounds)
	}
	return r
}

// shade produces a leaf's pixels from fn, which returns a color and its
// coverage in [0, 1]. Steps flagged onto composite with their blend
// parameters; the others replace their target.
func (e *executor) shade(dst *surface.Linear, n *task.Node, fn func(x, y int) (cobra.Color, float32)) {
	r := paintRect(dst, n)
	if !n.Flags.Has(task.FlagOnto) {
		e.pool.ForEachBand(r, func(band image.Rectangle) {
			for y := band.Min.Y; y < band.Max.Y; y++ {
				row := dst.Row(y, band.Min.X, band.Max.X)
				for i := range row {
					c, cov := fn(band.Min.X+i, y)
					switch {
					case cov <= 0:
						c = cobra.Transparent
					case cov < 1:
						c.A *= cov
					}
					row[i] = c
				}
			}
		})
		return
	}

	e.pool.ForEachBand(r, func(band image.Rectangle) {
		pen := surface.NewAlphaPen(dst, n.Blend.Amount, surface.BlendColor)
		pen.SetBlendMethod(n.Blend.Method)
		for y := band.Min.Y; y < band.Max.Y; y++ {
			for x := band.Min.X; x < band.Max.X; x++ {
				c, cov := fn(x, y)
				if cov <= 0 {
					continue
				}
				pen.MoveTo(x, y)
				pen.PutCoverage(c, cov)
			}
		}
	})
}

// inPlace applies fn to every pixel of the step's work rectangle.
func (e *executor) inPlace(dst *surface.Linear, n *task.Node, fn func(c cobra.Color) cobra.Color) {
	r := n.WorkRect().Intersect(dst.Rect)
	e.pool.ForEachBand(r, func(band image.Rectangle) {
		for y := band.Min.Y; y < band.Max.Y; y++ {
			row := dst.Row(y, band.Min.X, band.Max.X)
			for i, c := range row {
				row[i] = fn(c)
			}
		}
	})
}

func (e *executor) colorMatrix(dst *surface.Linear, n *task.Node) {
	m := n.Params.(task.ColorMatrix).Matrix
	if !m.IsConstant() {
		e.inPlace(dst, n, m.Apply)
		return
	}
	c := m.Constant()
	if !n.Flags.Has(task.FlagOnto) {
		dst.Fill(n.Target.Intersect(dst.Rect), c)
		return
	}
	e.shade(dst, n, func(int, int) (cobra.Color, float32) { return c, 1 })
}

func (e *executor) gamma(dst *surface.Linear, n *task.Node) {
	g := n.Params.(task.Gamma).Gamma
	e.inPlace(dst, n, func(c cobra.Color) cobra.Color {
		return cobra.GammaInColor(c, g[0], g[1], g[2])
	})
}

// blend composites the scratch source onto the destination over the
// blend's work rectangle.
func (e *executor) blend(dst *surface.Linear, n *task.Node) error {
	src, err := e.read(n, 0)
	if err != nil {
		return err
	}
	r := n.WorkRect().Intersect(dst.Rect).Intersect(src.Rect)
	e.pool.ForEachBand(r, func(band image.Rectangle) {
		pen := surface.NewAlphaPen(dst, n.Blend.Amount, surface.BlendColor)
		pen.SetBlendMethod(n.Blend.Method)
		pen.MoveTo(band.Min.X, band.Min.Y)
		src.BlitTo(pen, band.Min.X, band.Min.Y, band.Dx(), band.Dy())
	})
	return nil
}
