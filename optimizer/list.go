package optimizer

import (
	"slices"

	"github.com/gogpu/cobra/task"
)

// List flattens nested lists, drops children that a later child
// overwrites entirely and unwraps lists with a single child.
func List() NodeOptimizer {
	return NewNodePass("List", CategoryBlend, list)
}

func list(c *Context, id task.ID, n *task.Node) (task.ID, error) {
	if n.Kind != task.KindList {
		return id, nil
	}
	g := c.Graph()

	children := make([]task.ID, 0, len(n.Inputs))
	for _, in := range n.Inputs {
		if in == task.NoID {
			continue
		}
		if child := g.Node(in); child.Kind == task.KindList {
			children = append(children, child.Inputs...)
			continue
		}
		children = append(children, in)
	}

	// Everything drawn before the last child that replaces its target
	// is invisible.
	last := -1
	for i, in := range children {
		child := g.Node(in)
		if !child.Kind.Structural() && !child.Flags.Has(task.FlagOnto) {
			last = i
		}
	}
	if last > 0 {
		kept := children[:0:0]
		for i, in := range children {
			if i >= last || g.Node(in).Kind.Structural() {
				kept = append(kept, in)
			}
		}
		children = kept
	}

	switch {
	case len(children) == 0:
		return c.Clear(n.Backend), nil
	case len(children) == 1 && !g.Node(children[0]).Flags.Has(task.FlagOnto) && !g.Node(children[0]).Kind.Structural():
		return children[0], nil
	case slices.Equal(children, n.Inputs):
		return id, nil
	}
	out := n.Clone()
	out.Inputs = children
	return c.Add(out), nil
}
