package software

import (
	"image"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/optimizer"
	"github.com/gogpu/cobra/task"
)

// lowering returns a pass that hands abstract nodes of kind k to the
// software backend through fn.
func lowering(name string, k task.Kind, fn func(c *optimizer.Context, n *task.Node) task.ID) optimizer.NodeOptimizer {
	return optimizer.NewNodePass(name, optimizer.CategoryLowering, func(c *optimizer.Context, id task.ID, n *task.Node) (task.ID, error) {
		if n.Kind != k || n.Backend != task.BackendAbstract {
			return id, nil
		}
		return fn(c, n), nil
	})
}

// soft stores n on the software backend.
func soft(c *optimizer.Context, n *task.Node) task.ID {
	n.Backend = task.BackendSoftware
	return c.Add(*n)
}

// BlendSW lowers blends. A missing destination or source becomes a
// transparent clear so that every blend input renders something.
func BlendSW() optimizer.NodeOptimizer {
	return lowering("BlendSW", task.KindBlend, func(c *optimizer.Context, n *task.Node) task.ID {
		n.Inputs = []task.ID{
			c.OrClear(n.Input(0), task.BackendSoftware),
			c.OrClear(n.Input(1), task.BackendSoftware),
		}
		return soft(c, n)
	})
}

// BlurSW lowers blurs. A blur reaching no neighbour is its input.
func BlurSW() optimizer.NodeOptimizer {
	return lowering("BlurSW", task.KindBlur, func(c *optimizer.Context, n *task.Node) task.ID {
		if n.Params.(task.Blur).Extent() == (image.Point{}) {
			return c.OrClear(n.Input(0), task.BackendSoftware)
		}
		n.Inputs = []task.ID{c.OrClear(n.Input(0), task.BackendSoftware)}
		return soft(c, n)
	})
}

// ContourSW lowers contours.
func ContourSW() optimizer.NodeOptimizer {
	return lowering("ContourSW", task.KindContour, soft)
}

// MeshSW lowers meshes.
func MeshSW() optimizer.NodeOptimizer {
	return lowering("MeshSW", task.KindMesh, soft)
}

// PixelColorMatrixSW lowers color matrices. Fills become constant
// matrices without inputs and identities disappear.
func PixelColorMatrixSW() optimizer.NodeOptimizer {
	return lowering("PixelColorMatrixSW", task.KindPixelColorMatrix, func(c *optimizer.Context, n *task.Node) task.ID {
		m := n.Params.(task.ColorMatrix).Matrix
		switch {
		case n.IsFill():
			n.Params = task.ColorMatrix{Matrix: cobra.ConstantColorMatrix(n.FillColor())}
			n.Inputs = nil
		case m.IsIdentity():
			return c.OrClear(n.Input(0), task.BackendSoftware)
		}
		return soft(c, n)
	})
}

// PixelGammaSW lowers gamma curves. Identity curves disappear.
func PixelGammaSW() optimizer.NodeOptimizer {
	return lowering("PixelGammaSW", task.KindPixelGamma, func(c *optimizer.Context, n *task.Node) task.ID {
		if n.Input(0) == task.NoID {
			return c.Clear(task.BackendSoftware)
		}
		if n.Params.(task.Gamma).IsIdentity() {
			return n.Input(0)
		}
		return soft(c, n)
	})
}

// SurfaceResampleSW lowers resamples. An identity resample samples
// pixel centers exactly and is replaced by its input.
func SurfaceResampleSW() optimizer.NodeOptimizer {
	return lowering("SurfaceResampleSW", task.KindSurfaceResample, func(c *optimizer.Context, n *task.Node) task.ID {
		if n.Input(0) == task.NoID {
			return c.Clear(task.BackendSoftware)
		}
		if task.IsIdentity(n.Params.(task.Resample).Matrix) {
			return n.Input(0)
		}
		return soft(c, n)
	})
}

// Lowerings returns the software lowering passes in registration order.
func Lowerings() []optimizer.Optimizer {
	return []optimizer.Optimizer{
		BlendSW(),
		BlurSW(),
		ContourSW(),
		MeshSW(),
		PixelColorMatrixSW(),
		PixelGammaSW(),
		SurfaceResampleSW(),
	}
}
