package optimizer

import (
	"fmt"

	"github.com/gogpu/cobra/task"
)

type draftLowRes struct {
	level int
}

// DraftLowRes renders the tree at 1/level resolution and scales the
// result back up with nearest-neighbour sampling, so one level always
// yields the same preview. Levels below 2 disable the pass.
func DraftLowRes(level int) RootOptimizer {
	return &draftLowRes{level: level}
}

func (p *draftLowRes) Name() string       { return fmt.Sprintf("DraftLowRes(x%d)", p.level) }
func (p *draftLowRes) Category() Category { return CategoryDraft }

func (p *draftLowRes) RunRoot(c *Context) (bool, error) {
	g := c.Graph()
	root := g.Root()
	if p.level < 2 || root == task.NoID || c.Linearized() || g.Node(root).Flags.Has(task.FlagDraft) {
		return false, nil
	}
	l := float64(p.level)
	inner := g.Transform(task.Scale(1/l, 1/l), root)
	n := task.New(task.KindSurfaceResample, task.Resample{
		Matrix:        task.Scale(l, l),
		Interpolation: task.InterpolationNearest,
	}, inner)
	n.Flags |= task.FlagDraft
	g.SetRoot(g.Add(n))
	return true, nil
}
