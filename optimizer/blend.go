package optimizer

import (
	"image"
	"math"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/task"
)

const amountEpsilon = 1e-6

func isBlend(n *task.Node) bool { return n.Kind == task.KindBlend }

func zeroAmount(p task.BlendParams) bool {
	return math.Abs(float64(p.Amount)) <= amountEpsilon
}

func isDefaultComposite(p task.BlendParams) bool {
	return p.Method == cobra.BlendComposite && p.Amount == 1
}

// emptySource reports whether the blend source is known to be
// transparent over the blend's work rectangle.
func emptySource(c *Context, n *task.Node) bool {
	src := n.Input(1)
	if src == task.NoID {
		return true
	}
	s := c.Graph().Node(src)
	if s.IsClear() {
		return true
	}
	return s.Flags.Has(task.FlagBounds) && s.Bounds.Intersect(n.WorkRect()).Empty()
}

// transparentDest reports whether the blend destination is known to be
// transparent everywhere.
func transparentDest(c *Context, n *task.Node) bool {
	dst := n.Input(0)
	if dst == task.NoID {
		return true
	}
	d := c.Graph().Node(dst)
	return d.IsClear() || (d.Flags.Has(task.FlagBounds) && d.Bounds.Empty() && !d.Flags.Has(task.FlagOnto))
}

// BlendZero removes blends without effect: the ZERO method becomes a
// clear, a zero amount or a transparent source under a method that
// ignores transparent sources leaves the destination.
func BlendZero() NodeOptimizer {
	return NewNodePass("BlendZero", CategoryBlend, func(c *Context, id task.ID, n *task.Node) (task.ID, error) {
		if !isBlend(n) {
			return id, nil
		}
		switch {
		case n.Blend.Method == cobra.BlendZero:
			return c.Clear(n.Backend), nil
		case zeroAmount(n.Blend):
			return c.OrClear(n.Input(0), n.Backend), nil
		case n.Blend.Method.KeepsTransparentSource() && emptySource(c, n):
			return c.OrClear(n.Input(0), n.Backend), nil
		}
		return id, nil
	})
}

// BlendBlend fuses a full composite onto a transparent destination into
// its source, which then renders in place.
func BlendBlend() NodeOptimizer {
	return NewNodePass("BlendBlend", CategoryBlend, func(c *Context, id task.ID, n *task.Node) (task.ID, error) {
		if !isBlend(n) || !isDefaultComposite(n.Blend) || n.Input(1) == task.NoID {
			return id, nil
		}
		if !transparentDest(c, n) {
			return id, nil
		}
		return n.Input(1), nil
	})
}

// BlendComposite draws a drawable source leaf straight onto the
// destination surface instead of compositing a scratch copy. The blend
// becomes a list of the destination and the leaf flagged onto.
func BlendComposite() NodeOptimizer {
	return NewNodePass("BlendComposite", CategoryBlend, func(c *Context, id task.ID, n *task.Node) (task.ID, error) {
		if !isBlend(n) || !n.Blend.Method.KeepsTransparentSource() || n.Input(1) == task.NoID {
			return id, nil
		}
		src := c.Graph().Node(n.Input(1)).Clone()
		if !src.Drawable() || src.Flags.Has(task.FlagOnto) || src.Blend != task.DefaultBlend {
			return id, nil
		}

		leaf := Fresh(src)
		leaf.Flags |= task.FlagOnto
		leaf.Blend = n.Blend
		leafID := c.Add(leaf)
		dst := c.OrClear(n.Input(0), n.Backend)

		list := task.New(task.KindList, nil, dst, leafID)
		list.Flags = n.Flags &^ task.FlagBounds
		return c.Add(list), nil
	})
}

// BlendAssociative rewrites composite chains to lean left, so that
// Blend(a, Blend(b, c)) becomes Blend(Blend(a, b), c) and every
// destination renders in place.
func BlendAssociative() NodeOptimizer {
	return NewNodePass("BlendAssociative", CategoryBlend, func(c *Context, id task.ID, n *task.Node) (task.ID, error) {
		if !isBlend(n) || !isDefaultComposite(n.Blend) || n.Input(1) == task.NoID {
			return id, nil
		}
		inner := c.Graph().Node(n.Input(1)).Clone()
		if !isBlend(&inner) || !isDefaultComposite(inner.Blend) || inner.Input(0) == task.NoID || inner.Input(1) == task.NoID {
			return id, nil
		}

		left := task.New(task.KindBlend, nil, n.Input(0), inner.Input(0))
		left.Backend = n.Backend
		leftID := c.Add(left)

		out := Fresh(*n)
		out.Region = image.Rectangle{}
		out.Inputs = []task.ID{leftID, inner.Input(1)}
		return c.Add(out), nil
	})
}

// BlendSplit restricts a blend whose method ignores transparent sources
// to the part of the target the source covers.
func BlendSplit() NodeOptimizer {
	return NewNodePass("BlendSplit", CategoryBlend, func(c *Context, id task.ID, n *task.Node) (task.ID, error) {
		if !isBlend(n) || n.Backend == task.BackendAbstract || !n.Flags.Has(task.FlagBounds) {
			return id, nil
		}
		if !n.Blend.Method.KeepsTransparentSource() || n.Input(1) == task.NoID {
			return id, nil
		}
		src := c.Graph().Node(n.Input(1))
		if !src.Flags.Has(task.FlagBounds) {
			return id, nil
		}
		r := src.Bounds.Intersect(n.Target)
		if r.Empty() || r == n.Region {
			return id, nil
		}
		out := n.Clone()
		out.Region = r
		return c.Add(out), nil
	})
}
