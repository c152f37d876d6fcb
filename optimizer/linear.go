package optimizer

import "github.com/gogpu/cobra/task"

type linear struct{}

// Linear flattens a tree with assigned surfaces into a Sequence root
// whose children are input-free steps in execution order. Lists
// disappear; every other node is emitted after the inputs it reads.
func Linear() RootOptimizer { return linear{} }

func (linear) Name() string       { return "Linear" }
func (linear) Category() Category { return CategoryLinear }

func (linear) RunRoot(c *Context) (bool, error) {
	g := c.Graph()
	root := g.Root()
	if root == task.NoID || c.Dirty() || c.Linearized() || g.Node(root).Surface == task.NoSurface {
		return false, nil
	}

	var steps []task.ID
	var emit func(id task.ID)
	emit = func(id task.ID) {
		if id == task.NoID {
			return
		}
		n := g.Node(id).Clone()
		for _, in := range n.Inputs {
			emit(in)
		}
		if n.Kind == task.KindList {
			return
		}
		n.Inputs = nil
		steps = append(steps, g.Add(n))
	}
	emit(root)

	r := g.Node(root)
	seq := task.New(task.KindSequence, nil, steps...)
	seq.Backend = r.Backend
	seq.Flags = r.Flags | task.FlagBounds
	seq.Target = c.Target()
	seq.Bounds = r.Bounds
	seq.Surface = task.RootSurface
	g.SetRoot(g.Add(seq))
	return true, nil
}
