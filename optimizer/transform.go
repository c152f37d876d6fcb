package optimizer

import (
	"image"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/cobra/task"
)

// TransformationAffine pushes affine transformations down the tree. It
// drops identities, merges nested transformations, maps contour and mesh
// geometry, composes with resamples and distributes over lists, blends
// and pixel processors. Transformations of surfaces and blurs are left
// for SurfaceResample.
func TransformationAffine() NodeOptimizer {
	return NewNodePass("TransformationAffine", CategoryTransform, transformationAffine)
}

func transformationAffine(c *Context, id task.ID, n *task.Node) (task.ID, error) {
	if n.Kind != task.KindTransformation {
		return id, nil
	}
	m := n.Params.(task.Transformation).Matrix
	in := n.Input(0)
	if in == task.NoID {
		return c.Clear(task.BackendAbstract), nil
	}
	if task.IsIdentity(m) {
		return in, nil
	}

	child := c.Graph().Node(in).Clone()
	switch child.Kind {
	case task.KindTransformation:
		inner := child.Params.(task.Transformation).Matrix
		return c.Graph().Transform(task.Mul(m, inner), child.Input(0)), nil

	case task.KindContour:
		p := child.Params.(task.Contour)
		p.Path = task.TransformPath(m, p.Path)
		out := Fresh(child)
		out.Params = p
		return c.Add(out), nil

	case task.KindMesh:
		p := child.Params.(task.Mesh)
		verts := make([]task.Vertex, len(p.Vertices))
		for i, v := range p.Vertices {
			x, y := task.Apply(m, v.Pos[0], v.Pos[1])
			verts[i] = task.Vertex{Pos: f64.Vec2{x, y}, Color: v.Color}
		}
		p.Vertices = verts
		out := Fresh(child)
		out.Params = p
		return c.Add(out), nil

	case task.KindSurfaceResample:
		p := child.Params.(task.Resample)
		p.Matrix = task.Mul(m, p.Matrix)
		out := Fresh(child)
		out.Params = p
		return c.Add(out), nil

	case task.KindPixelColorMatrix:
		if child.IsFill() {
			return in, nil
		}
		return distribute(c, child, m), nil

	case task.KindList, task.KindBlend, task.KindPixelGamma:
		return distribute(c, child, m), nil
	}
	return id, nil
}

// distribute rebuilds n with every input wrapped in a transformation.
func distribute(c *Context, n task.Node, m f64.Aff3) task.ID {
	out := Fresh(n)
	out.Region = image.Rectangle{}
	for i, in := range out.Inputs {
		if in != task.NoID {
			out.Inputs[i] = c.Graph().Transform(m, in)
		}
	}
	return c.Add(out)
}

// SurfaceResample turns transformations that cannot be pushed further
// into resample tasks with bilinear filtering.
func SurfaceResample() NodeOptimizer {
	return NewNodePass("SurfaceResample", CategoryTransform, surfaceResample)
}

func surfaceResample(c *Context, id task.ID, n *task.Node) (task.ID, error) {
	if n.Kind != task.KindTransformation || n.Input(0) == task.NoID {
		return id, nil
	}
	m := n.Params.(task.Transformation).Matrix
	switch c.Graph().Node(n.Input(0)).Kind {
	case task.KindSurface, task.KindSurfaceConvert, task.KindBlur:
		return c.Graph().Resample(m, task.InterpolationLinear, n.Input(0)), nil
	}
	return id, nil
}
