package optimizer

import "github.com/gogpu/cobra/task"

// PixelProcessorSplit restricts color matrices that keep transparent
// pixels transparent, and gamma curves, to the bounds of their input.
// A processor whose input is empty is replaced by the input.
func PixelProcessorSplit() NodeOptimizer {
	return NewNodePass("PixelProcessorSplit", CategoryBlend, func(c *Context, id task.ID, n *task.Node) (task.ID, error) {
		if n.Backend == task.BackendAbstract || !n.Flags.Has(task.FlagBounds) || n.Input(0) == task.NoID {
			return id, nil
		}
		switch n.Kind {
		case task.KindPixelGamma:
		case task.KindPixelColorMatrix:
			m := n.Params.(task.ColorMatrix).Matrix
			if n.IsFill() || !m.KeepsTransparent() {
				return id, nil
			}
		default:
			return id, nil
		}

		in := c.Graph().Node(n.Input(0))
		if !in.Flags.Has(task.FlagBounds) {
			return id, nil
		}
		r := in.Bounds.Intersect(n.Target)
		if r.Empty() {
			return n.Input(0), nil
		}
		if r == n.Region {
			return id, nil
		}
		out := n.Clone()
		out.Region = r
		return c.Add(out), nil
	})
}
