package optimizer

import (
	"image"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/task"
)

// maxRevisits bounds how often one node optimizer may replace the result
// of its own previous replacement.
const maxRevisits = 64

// Context is the state shared by the passes of one pipeline run.
type Context struct {
	graph  *task.Graph
	target image.Rectangle

	sweep         int
	sweepRewrites int
	passRewrites  int
}

// NewContext returns a context rendering g into target.
func NewContext(g *task.Graph, target image.Rectangle) *Context {
	return &Context{graph: g, target: target}
}

// Graph returns the graph being optimized.
func (c *Context) Graph() *task.Graph { return c.graph }

// Target returns the rectangle the root renders into.
func (c *Context) Target() image.Rectangle { return c.target }

// Sweep returns the 1-based number of the running sweep.
func (c *Context) Sweep() int { return c.sweep }

// Dirty reports whether an earlier pass of the running sweep rewrote the
// tree. Passes that need a settled tree wait for a clean sweep.
func (c *Context) Dirty() bool { return c.sweepRewrites > 0 }

// Add stores n and returns its ID.
func (c *Context) Add(n task.Node) task.ID { return c.graph.Add(n) }

// Clear adds a node filling its target with the transparent color.
func (c *Context) Clear(b task.Backend) task.ID {
	n := task.New(task.KindPixelColorMatrix, task.ColorMatrix{Matrix: cobra.ConstantColorMatrix(cobra.Transparent)})
	n.Backend = b
	return c.graph.Add(n)
}

// OrClear returns id, or a new clear node when id is NoID.
func (c *Context) OrClear(id task.ID, b task.Backend) task.ID {
	if id == task.NoID {
		return c.Clear(b)
	}
	return id
}

// SetRoot swaps the root, keeping the draft flag of the old root.
func (c *Context) SetRoot(id task.ID) {
	g := c.graph
	old := g.Root()
	if old != task.NoID && id != task.NoID && g.Node(old).Flags.Has(task.FlagDraft) && !g.Node(id).Flags.Has(task.FlagDraft) {
		n := g.Node(id).Clone()
		n.Flags |= task.FlagDraft
		id = g.Add(n)
	}
	g.SetRoot(id)
}

// Linearized reports whether the root is already a sequence.
func (c *Context) Linearized() bool {
	root := c.graph.Root()
	return root != task.NoID && c.graph.Node(root).Kind == task.KindSequence
}

// Fresh returns a copy of n with computed geometry dropped, for use as a
// replacement whose bounds must be recomputed.
func Fresh(n task.Node) task.Node {
	n = n.Clone()
	n.Flags &^= task.FlagBounds
	n.Bounds = image.Rectangle{}
	n.Surface = task.NoSurface
	n.Reads = nil
	return n
}

func (c *Context) runNode(p NodeOptimizer) error {
	root := c.graph.Root()
	if root == task.NoID || c.Linearized() {
		return nil
	}
	nroot, err := c.rewrite(p, root, 0)
	if err != nil {
		return err
	}
	if nroot != root {
		c.SetRoot(nroot)
	}
	return nil
}

func (c *Context) rewrite(p NodeOptimizer, id task.ID, revisits int) (task.ID, error) {
	if id == task.NoID {
		return id, nil
	}
	g := c.graph
	if g.Node(id).Kind == task.KindSequence {
		return id, nil
	}

	var inputs []task.ID
	for i, in := range g.Node(id).Inputs {
		nin, err := c.rewrite(p, in, 0)
		if err != nil {
			return id, err
		}
		if nin != in {
			if inputs == nil {
				inputs = append([]task.ID(nil), g.Node(id).Inputs...)
			}
			inputs[i] = nin
		}
	}
	if inputs != nil {
		n := g.Node(id).Clone()
		n.Inputs = inputs
		id = g.Add(n)
	}

	nid, err := p.RunNode(c, id)
	if err != nil {
		return id, &PassError{Pass: p.Name(), Kind: g.Node(id).Kind, Node: id, Err: err}
	}
	if nid == id {
		return id, nil
	}

	c.passRewrites++
	cobra.Logger().Debug("optimizer: rewrite",
		"pass", p.Name(), "kind", g.Node(id).Kind, "node", id, "new", nid)
	if revisits >= maxRevisits {
		return id, &PassError{Pass: p.Name(), Kind: g.Node(id).Kind, Node: id, Err: ErrRevisitLimit}
	}
	return c.rewrite(p, nid, revisits+1)
}
