package optimizer

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/task"
)

var rect8 = image.Rect(0, 0, 8, 8)

// pingPong reports a change on every run, so a pipeline holding it
// never converges.
type pingPong struct{}

func (pingPong) Name() string                   { return "PingPong" }
func (pingPong) Category() Category             { return CategoryBlend }
func (pingPong) RunRoot(*Context) (bool, error) { return true, nil }

type nameOnly struct{}

func (nameOnly) Name() string       { return "NameOnly" }
func (nameOnly) Category() Category { return CategoryBlend }

func TestNewPipelineCategoryOrder(t *testing.T) {
	if _, err := NewPipeline(CalcBounds(), TransformationAffine()); !errors.Is(err, ErrCategoryOrder) {
		t.Errorf("NewPipeline(bounds, transform) error = %v, want ErrCategoryOrder", err)
	}
	if _, err := NewPipeline(TransformationAffine(), SurfaceResample(), CalcBounds(), BlendZero(), Linear()); err != nil {
		t.Errorf("NewPipeline(ordered) error = %v", err)
	}
}

func TestNewPipelineInvalidPass(t *testing.T) {
	if _, err := NewPipeline(nameOnly{}); !errors.Is(err, ErrInvalidPass) {
		t.Errorf("NewPipeline(nameOnly) error = %v, want ErrInvalidPass", err)
	}
}

func TestMustPipelinePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPipeline() with out-of-order passes did not panic")
		}
	}()
	MustPipeline(Linear(), CalcBounds())
}

func TestPipelineNoConvergence(t *testing.T) {
	p := MustPipeline(pingPong{})
	p.SetMaxSweeps(3)
	g := task.NewGraph()
	g.SetRoot(g.Fill(cobra.Red))

	stats, err := p.Run(g, rect8)
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("Run() error = %v, want ErrNoConvergence", err)
	}
	if stats.Sweeps != 3 || stats.PerPass["PingPong"] != 3 {
		t.Errorf("Run() stats = %+v, want 3 sweeps", stats)
	}
}

func TestPipelineSetMaxSweeps(t *testing.T) {
	p := MustPipeline()
	if p.MaxSweeps() != DefaultMaxSweeps {
		t.Errorf("MaxSweeps() = %d, want %d", p.MaxSweeps(), DefaultMaxSweeps)
	}
	p.SetMaxSweeps(2)
	if p.MaxSweeps() != 2 {
		t.Errorf("MaxSweeps() = %d, want 2", p.MaxSweeps())
	}
	p.SetMaxSweeps(0)
	if p.MaxSweeps() != DefaultMaxSweeps {
		t.Errorf("SetMaxSweeps(0) left %d, want the default", p.MaxSweeps())
	}
}

func TestPassError(t *testing.T) {
	boom := errors.New("boom")
	fail := NewNodePass("Fail", CategoryBlend, func(c *Context, id task.ID, n *task.Node) (task.ID, error) {
		if n.Kind == task.KindBlend {
			return id, boom
		}
		return id, nil
	})
	g := task.NewGraph()
	g.SetRoot(g.Blend(g.Fill(cobra.Blue), g.Fill(cobra.Red), cobra.BlendComposite, 1))

	_, err := MustPipeline(fail).Run(g, rect8)
	var pe *PassError
	if !errors.As(err, &pe) {
		t.Fatalf("Run() error = %v, want a PassError", err)
	}
	if pe.Pass != "Fail" || pe.Kind != task.KindBlend || !errors.Is(err, boom) {
		t.Errorf("PassError = %+v", pe)
	}
}

func TestPipelineRevisitLimit(t *testing.T) {
	grow := NewNodePass("Grow", CategoryBlend, func(c *Context, id task.ID, n *task.Node) (task.ID, error) {
		if n.Kind != task.KindList {
			return id, nil
		}
		return c.Add(task.New(task.KindList, nil, append(n.Inputs, n.Inputs[0])...)), nil
	})
	g := task.NewGraph()
	g.SetRoot(g.List(g.Fill(cobra.Red)))

	if _, err := MustPipeline(grow).Run(g, rect8); !errors.Is(err, ErrRevisitLimit) {
		t.Errorf("Run() error = %v, want ErrRevisitLimit", err)
	}
}

func TestPipelineCompactsOnConvergence(t *testing.T) {
	g := task.NewGraph()
	g.SetRoot(g.Blend(g.Fill(cobra.Blue), g.Fill(cobra.Red), cobra.BlendZero, 1))

	stats, err := MustPipeline(BlendZero()).Run(g, rect8)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Sweeps != 2 || stats.Rewrites != 1 || stats.PerPass["BlendZero"] != 1 {
		t.Errorf("Run() stats = %+v", stats)
	}
	if g.Len() != 1 || stats.Removed != 3 {
		t.Errorf("Len() = %d, Removed = %d, want 1 and 3", g.Len(), stats.Removed)
	}
	if !g.Node(g.Root()).IsClear() {
		t.Errorf("root = %s, want a clear", g.DumpString())
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryLowering.String() != "lowering" || Category(42).String() != "Category(42)" {
		t.Errorf("Category strings = %q, %q", CategoryLowering, Category(42))
	}
}
