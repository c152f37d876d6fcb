package optimizer

import (
	"fmt"
	"image"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/task"
)

// DefaultMaxSweeps bounds the number of sweeps of a pipeline run.
const DefaultMaxSweeps = 16

// Pipeline is an ordered, fixed list of optimizers.
type Pipeline struct {
	passes    []Optimizer
	maxSweeps int
}

// NewPipeline checks that every pass is runnable and that categories
// never decrease in registration order.
func NewPipeline(passes ...Optimizer) (*Pipeline, error) {
	for i, p := range passes {
		switch p.(type) {
		case NodeOptimizer, RootOptimizer:
		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalidPass, p.Name())
		}
		if i > 0 && p.Category() < passes[i-1].Category() {
			return nil, fmt.Errorf("%w: %s (%s) after %s (%s)", ErrCategoryOrder,
				p.Name(), p.Category(), passes[i-1].Name(), passes[i-1].Category())
		}
	}
	return &Pipeline{
		passes:    append([]Optimizer(nil), passes...),
		maxSweeps: DefaultMaxSweeps,
	}, nil
}

// MustPipeline is like NewPipeline but panics on error.
func MustPipeline(passes ...Optimizer) *Pipeline {
	p, err := NewPipeline(passes...)
	if err != nil {
		panic(err)
	}
	return p
}

// SetMaxSweeps changes the sweep limit. Values below 1 restore the
// default.
func (p *Pipeline) SetMaxSweeps(n int) {
	if n < 1 {
		n = DefaultMaxSweeps
	}
	p.maxSweeps = n
}

// MaxSweeps returns the sweep limit.
func (p *Pipeline) MaxSweeps() int { return p.maxSweeps }

// Names returns the pass names in registration order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.passes))
	for i, o := range p.passes {
		names[i] = o.Name()
	}
	return names
}

// Stats summarizes a pipeline run.
type Stats struct {
	Sweeps   int
	Rewrites int
	PerPass  map[string]int
	Removed  int // nodes dropped by the final compaction
}

// Run optimizes g for rendering into target until a sweep rewrites
// nothing.
func (p *Pipeline) Run(g *task.Graph, target image.Rectangle) (Stats, error) {
	c := NewContext(g, target)
	stats := Stats{PerPass: make(map[string]int, len(p.passes))}
	log := cobra.Logger()

	for sweep := 1; sweep <= p.maxSweeps; sweep++ {
		c.sweep = sweep
		c.sweepRewrites = 0
		for _, o := range p.passes {
			c.passRewrites = 0
			if err := c.runPass(o); err != nil {
				return stats, err
			}
			c.sweepRewrites += c.passRewrites
			stats.PerPass[o.Name()] += c.passRewrites
		}
		stats.Sweeps = sweep
		stats.Rewrites += c.sweepRewrites
		log.Debug("optimizer: sweep", "sweep", sweep, "rewrites", c.sweepRewrites, "nodes", g.Len())
		if c.sweepRewrites == 0 {
			stats.Removed = g.Compact()
			return stats, nil
		}
	}
	return stats, fmt.Errorf("%w (%d sweeps)", ErrNoConvergence, p.maxSweeps)
}

func (c *Context) runPass(o Optimizer) error {
	switch o := o.(type) {
	case NodeOptimizer:
		return c.runNode(o)
	case RootOptimizer:
		changed, err := o.RunRoot(c)
		if err != nil {
			root := c.graph.Root()
			kind := task.KindSequence
			if root != task.NoID {
				kind = c.graph.Node(root).Kind
			}
			return &PassError{Pass: o.Name(), Kind: kind, Node: root, Err: err}
		}
		if changed {
			c.passRewrites++
		}
	}
	return nil
}
