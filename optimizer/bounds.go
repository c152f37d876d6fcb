package optimizer

import (
	"image"
	"reflect"

	"github.com/gogpu/cobra/task"
)

type calcBounds struct{}

// CalcBounds propagates target rectangles from the root down and
// non-transparent bounds from the leaves up. It recomputes the whole
// tree on every run and only reports a change when some node differs.
func CalcBounds() RootOptimizer { return calcBounds{} }

func (calcBounds) Name() string       { return "CalcBounds" }
func (calcBounds) Category() Category { return CategoryBounds }

func (calcBounds) RunRoot(c *Context) (bool, error) {
	g := c.Graph()
	root := g.Root()
	if root == task.NoID || c.Linearized() {
		return false, nil
	}
	b := boundsWalker{g: g}
	nroot := b.visit(root, c.Target())
	if nroot == root {
		return false, nil
	}
	g.SetRoot(nroot)
	return true, nil
}

type boundsWalker struct {
	g *task.Graph
}

func grow(r image.Rectangle, p image.Point) image.Rectangle {
	if r.Empty() {
		return r
	}
	return image.Rect(r.Min.X-p.X, r.Min.Y-p.Y, r.Max.X+p.X, r.Max.Y+p.Y)
}

func (b *boundsWalker) bounds(id task.ID) image.Rectangle {
	if id == task.NoID {
		return image.Rectangle{}
	}
	return b.g.Node(id).Bounds
}

func (b *boundsWalker) visit(id task.ID, target image.Rectangle) task.ID {
	if id == task.NoID {
		return id
	}
	old := b.g.Node(id)
	switch old.Kind {
	case task.KindSurfaceCreate, task.KindSurfaceDestroy, task.KindSequence:
		return id
	}

	n := old.Clone()
	n.Target = target
	if !n.Region.Empty() {
		n.Region = n.Region.Intersect(target)
	}

	switch n.Kind {
	case task.KindList:
		var acc image.Rectangle
		for i, in := range n.Inputs {
			in = b.visit(in, target)
			n.Inputs[i] = in
			if in == task.NoID {
				continue
			}
			child := b.g.Node(in)
			switch {
			case child.Kind.Structural() && child.Kind != task.KindList:
			case child.Flags.Has(task.FlagOnto):
				acc = acc.Union(child.Bounds)
			default:
				acc = child.Bounds
			}
		}
		n.Bounds = acc

	case task.KindBlend:
		dst := b.visit(n.Input(0), target)
		src := b.visit(n.Input(1), n.WorkRect())
		setInput(&n, 0, dst)
		setInput(&n, 1, src)
		n.Bounds = task.BlendBounds(n.Blend, b.bounds(dst), b.bounds(src))

	case task.KindTransformation:
		m := n.Params.(task.Transformation).Matrix
		inv, ok := task.Invert(m)
		var inT image.Rectangle
		if ok {
			inT = grow(task.TransformRect(inv, target), image.Pt(1, 1))
		}
		in := b.visit(n.Input(0), inT)
		setInput(&n, 0, in)
		n.Bounds = task.TransformRect(m, b.bounds(in))

	case task.KindSurfaceResample:
		p := n.Params.(task.Resample)
		pad := image.Pt(p.Interpolation.Pad(), p.Interpolation.Pad())
		inv, ok := task.Invert(p.Matrix)
		p.SourceRect = image.Rectangle{}
		if ok {
			p.SourceRect = grow(task.TransformRect(inv, target), pad)
		}
		n.Params = p
		in := b.visit(n.Input(0), p.SourceRect)
		setInput(&n, 0, in)
		n.Bounds = grow(task.TransformRect(p.Matrix, b.bounds(in)), pad)

	case task.KindContour:
		p := n.Params.(task.Contour)
		switch {
		case p.Color.A == 0:
		case p.Invert:
			n.Bounds = target
		default:
			n.Bounds = task.PathBounds(p.Path)
		}

	case task.KindMesh:
		p := n.Params.(task.Mesh)
		n.Bounds = p.Bounds()

	case task.KindPixelColorMatrix:
		if n.IsFill() {
			if n.FillColor().A != 0 {
				n.Bounds = target
			}
			break
		}
		in := b.visit(n.Input(0), target)
		setInput(&n, 0, in)
		p := n.Params.(task.ColorMatrix)
		n.Bounds = target
		if p.Matrix.KeepsTransparent() {
			n.Bounds = b.bounds(in)
		}

	case task.KindPixelGamma:
		in := b.visit(n.Input(0), target)
		setInput(&n, 0, in)
		n.Bounds = b.bounds(in)

	case task.KindBlur:
		ext := n.Params.(task.Blur).Extent()
		in := b.visit(n.Input(0), grow(target, ext))
		setInput(&n, 0, in)
		n.Bounds = grow(b.bounds(in), ext)

	case task.KindSurface, task.KindSurfaceConvert:
		n.Bounds = b.g.ExternalBounds(n.Params.(task.SurfaceRef).Ref)
	}

	n.Bounds = n.Bounds.Intersect(target)
	if n.Bounds.Empty() {
		n.Bounds = image.Rectangle{}
	}
	n.Flags |= task.FlagBounds

	if reflect.DeepEqual(n, b.g.Node(id).Clone()) {
		return id
	}
	return b.g.Add(n)
}

func setInput(n *task.Node, i int, id task.ID) {
	if i < len(n.Inputs) {
		n.Inputs[i] = id
	}
}
