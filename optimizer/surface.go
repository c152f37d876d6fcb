package optimizer

import (
	"image"
	"slices"

	"github.com/gogpu/cobra/surface"
	"github.com/gogpu/cobra/task"
)

// SurfaceConvert hands external surface leaves to backend b. Packed
// surfaces become conversion tasks; linear ones are copied as is.
func SurfaceConvert(b task.Backend) NodeOptimizer {
	return NewNodePass("SurfaceConvert", CategoryBlend, func(c *Context, id task.ID, n *task.Node) (task.ID, error) {
		if n.Kind != task.KindSurface || n.Backend != task.BackendAbstract {
			return id, nil
		}
		out := n.Clone()
		out.Backend = b
		if c.Graph().ExternalKind(n.Params.(task.SurfaceRef).Ref) == surface.KindPacked {
			out.Kind = task.KindSurfaceConvert
		}
		return c.Add(out), nil
	})
}

type surfaceCreate struct{}

// SurfaceCreate assigns an execution surface to every node once the tree
// is lowered, its bounds are known and an entire sweep has passed
// without other rewrites. Inputs rendered in place share their parent's
// surface; scratch inputs get a new surface, and the parent is bracketed
// by a list that creates the surface before and destroys it after.
func SurfaceCreate() RootOptimizer { return surfaceCreate{} }

func (surfaceCreate) Name() string       { return "SurfaceCreate" }
func (surfaceCreate) Category() Category { return CategorySurface }

func (surfaceCreate) RunRoot(c *Context) (bool, error) {
	g := c.Graph()
	root := g.Root()
	if root == task.NoID || c.Dirty() || c.Linearized() || g.Node(root).Surface != task.NoSurface {
		return false, nil
	}
	if !g.All(func(n *task.Node) bool { return n.Executable() && n.Flags.Has(task.FlagBounds) }) {
		return false, nil
	}
	a := assigner{g: g, next: task.RootSurface + 1}
	g.SetRoot(a.assign(root, task.RootSurface))
	return true, nil
}

type assigner struct {
	g    *task.Graph
	next task.SurfaceID
}

// scratchInputs returns the input positions that render into their own
// surface.
func scratchInputs(n *task.Node) []int {
	switch n.Kind {
	case task.KindBlend:
		return []int{1}
	case task.KindBlur, task.KindSurfaceResample:
		return []int{0}
	}
	return nil
}

func (a *assigner) assign(id task.ID, s task.SurfaceID) task.ID {
	if id == task.NoID {
		return id
	}
	n := a.g.Node(id).Clone()
	if n.Kind == task.KindSurfaceCreate || n.Kind == task.KindSurfaceDestroy {
		return id
	}
	n.Surface = s
	n.Reads = nil

	scratch := scratchInputs(&n)
	var creates, destroys []task.ID
	for i, in := range n.Inputs {
		if in == task.NoID {
			continue
		}
		if !slices.Contains(scratch, i) {
			n.Inputs[i] = a.assign(in, s)
			continue
		}
		k := a.next
		a.next++
		rect := a.g.Node(in).Target
		n.Inputs[i] = a.assign(in, k)
		n.Reads = append(n.Reads, k)
		creates = append(creates, a.bracket(task.KindSurfaceCreate, k, rect, n.Backend))
		destroys = append(destroys, a.bracket(task.KindSurfaceDestroy, k, rect, n.Backend))
	}
	nid := a.g.Add(n)
	if len(creates) == 0 {
		return nid
	}

	list := task.New(task.KindList, nil, append(append(creates, nid), destroys...)...)
	list.Backend = n.Backend
	list.Flags = n.Flags
	list.Target = n.Target
	list.Bounds = n.Bounds
	list.Surface = s
	return a.g.Add(list)
}

func (a *assigner) bracket(k task.Kind, s task.SurfaceID, rect image.Rectangle, b task.Backend) task.ID {
	n := task.New(k, nil)
	n.Backend = b
	n.Flags = task.FlagBounds
	n.Target = rect
	n.Surface = s
	return a.g.Add(n)
}
