package software

import (
	"context"
	"errors"
	"image"
	"math"
	"testing"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/optimizer"
	"github.com/gogpu/cobra/renderer"
	"github.com/gogpu/cobra/surface"
	"github.com/gogpu/cobra/task"
)

func colorNear(a, b cobra.Color, eps float64) bool {
	d := func(x, y float32) bool { return math.Abs(float64(x-y)) <= eps }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func newRenderer(t *testing.T, level int, opts ...Option) *LowRes {
	t.Helper()
	cfg := cobra.DefaultRenderConfig()
	cfg.Level = level
	r, err := NewLowRes(cfg, opts...)
	if err != nil {
		t.Fatalf("NewLowRes() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func render(t *testing.T, r *LowRes, g *task.Graph, w, h int) *surface.Linear {
	t.Helper()
	dst := surface.NewLinear(w, h)
	if err := r.Run(context.Background(), g, dst); err != nil {
		t.Fatalf("Run() error = %v\n%s", err, g.DumpString())
	}
	return dst
}

func checkPixel(t *testing.T, s *surface.Linear, x, y int, want cobra.Color) {
	t.Helper()
	if got := s.Get(x, y); !colorNear(got, want, 1e-5) {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

func checkAll(t *testing.T, s *surface.Linear, want func(x, y int) cobra.Color) {
	t.Helper()
	for y := s.Rect.Min.Y; y < s.Rect.Max.Y; y++ {
		for x := s.Rect.Min.X; x < s.Rect.Max.X; x++ {
			checkPixel(t, s, x, y, want(x, y))
		}
	}
}

func uniform(c cobra.Color) func(int, int) cobra.Color {
	return func(int, int) cobra.Color { return c }
}

func inRect(r image.Rectangle, in, out cobra.Color) func(int, int) cobra.Color {
	return func(x, y int) cobra.Color {
		if image.Pt(x, y).In(r) {
			return in
		}
		return out
	}
}

func TestNewLowRes(t *testing.T) {
	r := newRenderer(t, 4)
	if got, want := r.Name(), "Cobra LowRes (software) x4"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	names := r.Optimizers()
	want := []string{
		"TransformationAffine", "SurfaceResample", "DraftLowRes(x4)", "CalcBounds",
		"BlendSW", "BlurSW", "ContourSW", "MeshSW", "PixelColorMatrixSW", "PixelGammaSW", "SurfaceResampleSW",
		"BlendZero", "BlendBlend", "BlendComposite", "List", "BlendAssociative", "BlendSplit",
		"PixelProcessorSplit", "SurfaceConvert", "SurfaceCreate", "Linear",
	}
	if len(names) != len(want) {
		t.Fatalf("Optimizers() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Optimizers()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNewLowResInvalid(t *testing.T) {
	cfg := cobra.DefaultRenderConfig()
	cfg.Level = 0
	if _, err := NewLowRes(cfg); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("NewLowRes(level 0) error = %v, want ErrInvalidLevel", err)
	}
	cfg = cobra.DefaultRenderConfig()
	cfg.Workers = -1
	if _, err := NewLowRes(cfg); !errors.Is(err, cobra.ErrInvalidConfig) {
		t.Errorf("NewLowRes(workers -1) error = %v, want ErrInvalidConfig", err)
	}
}

func TestRegistered(t *testing.T) {
	if !renderer.IsRegistered(Name) {
		t.Fatalf("%q is not registered", Name)
	}
	r, err := renderer.New(Name, cobra.DefaultRenderConfig())
	if err != nil {
		t.Fatalf("renderer.New() error = %v", err)
	}
	defer r.Close()
	if r.Name() != "Cobra LowRes (software) x1" {
		t.Errorf("Name() = %q", r.Name())
	}
}

func TestRenderFill(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Blend(task.NoID, g.Fill(cobra.Red), cobra.BlendComposite, 1))

	dst := render(t, r, g, 4, 4)
	checkAll(t, dst, uniform(cobra.Red))

	seq := g.Node(g.Root())
	if seq.Kind != task.KindSequence || len(seq.Inputs) != 1 {
		t.Fatalf("optimized root = %s", g.DumpString())
	}
	if step := g.Node(seq.Inputs[0]); !step.IsFill() || step.Surface != task.RootSurface {
		t.Errorf("step = %+v, want a fill on the root surface", step)
	}
}

func TestRenderTransparentOntoBlue(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Blend(g.Fill(cobra.Blue), g.Fill(cobra.Transparent), cobra.BlendComposite, 1))

	checkAll(t, render(t, r, g, 4, 4), uniform(cobra.Blue))
}

func TestRenderZeroMethod(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Blend(g.Fill(cobra.Blue), g.Fill(cobra.Red), cobra.BlendZero, 1))

	checkAll(t, render(t, r, g, 3, 3), uniform(cobra.Transparent))
}

func TestRenderEmptyGraph(t *testing.T) {
	r := newRenderer(t, 1)
	dst := surface.NewLinear(2, 2)
	dst.Fill(dst.Rect, cobra.Red)
	if err := r.Run(context.Background(), task.NewGraph(), dst); err != nil {
		t.Fatal(err)
	}
	checkAll(t, dst, uniform(cobra.Transparent))
}

func TestRenderContour(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Blend(task.NoID, g.Contour(task.RectPath(1, 1, 3, 3), cobra.Red), cobra.BlendComposite, 1))

	checkAll(t, render(t, r, g, 4, 4), inRect(image.Rect(1, 1, 3, 3), cobra.Red, cobra.Transparent))
}

func TestRenderContourOnto(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Blend(g.Fill(cobra.Blue), g.Contour(task.RectPath(1, 1, 3, 3), cobra.Red), cobra.BlendComposite, 1))

	checkAll(t, render(t, r, g, 4, 4), inRect(image.Rect(1, 1, 3, 3), cobra.Red, cobra.Blue))
}

func TestRenderContourInvert(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.ContourParams(task.Contour{
		Path:      task.RectPath(1, 1, 3, 3),
		Color:     cobra.Green,
		Antialias: true,
		Invert:    true,
	}))

	checkAll(t, render(t, r, g, 4, 4), inRect(image.Rect(1, 1, 3, 3), cobra.Transparent, cobra.Green))
}

func TestRenderContourAntialias(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Contour(task.RectPath(0, 0, 1.5, 1), cobra.Red))

	dst := render(t, r, g, 2, 1)
	checkPixel(t, dst, 0, 0, cobra.Red)
	if a := dst.Get(1, 0).A; math.Abs(float64(a)-0.5) > 1.0/255 {
		t.Errorf("half covered pixel alpha = %v, want 0.5", a)
	}

	g = task.NewGraph()
	g.SetRoot(g.ContourParams(task.Contour{Path: task.RectPath(0, 0, 1.4, 1), Color: cobra.Red}))
	dst = render(t, r, g, 2, 1)
	checkPixel(t, dst, 1, 0, cobra.Transparent)
}

func TestRenderBlendMethodOnto(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Blend(g.Fill(cobra.Blue), g.Fill(cobra.RGB(0.5, 0.5, 0.5)), cobra.BlendMultiply, 1))

	want := cobra.Blend(cobra.RGB(0.5, 0.5, 0.5), cobra.Blue, 1, cobra.BlendMultiply)
	checkAll(t, render(t, r, g, 3, 2), uniform(want))
}

func TestRenderHDRDestinationOutsideSource(t *testing.T) {
	hdr := cobra.RGBA(1.5, -0.25, 0.5, 1)
	for _, m := range []cobra.BlendMethod{cobra.BlendBrighten, cobra.BlendDarken, cobra.BlendDifference} {
		t.Run(m.String(), func(t *testing.T) {
			r := newRenderer(t, 1)
			g := task.NewGraph()
			g.SetRoot(g.Blend(g.Fill(hdr), g.Contour(task.RectPath(1, 1, 3, 3), cobra.Red), m, 1))

			dst := render(t, r, g, 4, 4)
			in := cobra.Blend(cobra.Red, hdr, 1, m)
			out := cobra.Blend(cobra.Transparent, hdr, 1, m)
			checkAll(t, dst, inRect(image.Rect(1, 1, 3, 3), in, out))
		})
	}
}

func TestRenderScratchBlend(t *testing.T) {
	r := newRenderer(t, 1, WithWorkers(3))
	g := task.NewGraph()
	half := g.ColorMatrix(cobra.ScaleColorMatrix(1, 1, 1, 0.5), g.Contour(task.RectPath(0, 0, 2, 2), cobra.Red))
	g.SetRoot(g.Blend(g.Fill(cobra.Blue), half, cobra.BlendComposite, 1))

	dst := render(t, r, g, 4, 4)
	over := cobra.Blend(cobra.RGBA(1, 0, 0, 0.5), cobra.Blue, 1, cobra.BlendComposite)
	checkAll(t, dst, inRect(image.Rect(0, 0, 2, 2), over, cobra.Blue))

	var reads int
	for _, id := range g.Node(g.Root()).Inputs {
		if n := g.Node(id); n.Kind == task.KindBlend {
			reads = len(n.Reads)
			if n.Region != image.Rect(0, 0, 2, 2) {
				t.Errorf("blend region = %v, want the source bounds", n.Region)
			}
		}
	}
	if reads != 1 {
		t.Errorf("blend step reads %d surfaces, want 1", reads)
	}
}

func TestRenderAmount(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Blend(g.Fill(cobra.Blue), g.Fill(cobra.Red), cobra.BlendComposite, 0.25))

	want := cobra.Blend(cobra.Red, cobra.Blue, 0.25, cobra.BlendComposite)
	checkAll(t, render(t, r, g, 2, 2), uniform(want))
}

func TestRenderColorMatrixAndGamma(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	scaled := g.ColorMatrix(cobra.ScaleColorMatrix(0.5, 1, 1, 1), g.Fill(cobra.White))
	g.SetRoot(g.Gamma(2, 1, 1, scaled))

	checkAll(t, render(t, r, g, 2, 2), uniform(cobra.RGBA(0.25, 1, 1, 1)))
}

func TestRenderBlurBox(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	dot := g.Contour(task.RectPath(1, 1, 2, 2), cobra.Red)
	g.SetRoot(g.Blur(f64.Vec2{1, 1}, task.BlurBox, dot))

	dst := render(t, r, g, 4, 4)
	ninth := cobra.RGBA(1, 0, 0, 1.0/9)
	checkAll(t, dst, inRect(image.Rect(0, 0, 3, 3), ninth, cobra.Transparent))
}

func TestRenderBlurGaussianKeepsUniform(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Blur(f64.Vec2{2, 2}, task.BlurGaussian, g.Fill(cobra.Green)))

	checkAll(t, render(t, r, g, 5, 5), uniform(cobra.Green))
}

func TestKernel(t *testing.T) {
	for _, typ := range []task.BlurType{task.BlurBox, task.BlurGaussian} {
		k := kernel(2, typ, 3)
		var sum float32
		for _, w := range k {
			sum += w
		}
		if len(k) != 7 || math.Abs(float64(sum)-1) > 1e-6 {
			t.Errorf("kernel(%v) = %v, want 7 weights summing to 1", typ, k)
		}
	}
	if k := kernel(0, task.BlurGaussian, 0); len(k) != 1 || k[0] != 1 {
		t.Errorf("kernel(radius 0) = %v, want [1]", k)
	}
}

func checker() *surface.Linear {
	s := surface.NewLinear(2, 2)
	s.Set(0, 0, cobra.Red)
	s.Set(1, 0, cobra.Green)
	s.Set(0, 1, cobra.Blue)
	s.Set(1, 1, cobra.White)
	return s
}

func TestRenderResampleNearest(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	src := checker()
	g.SetRoot(g.Resample(task.Scale(2, 2), task.InterpolationNearest, g.Surface(g.AddLinear(src))))

	checkAll(t, render(t, r, g, 4, 4), func(x, y int) cobra.Color { return src.Get(x/2, y/2) })
}

func TestRenderResampleLinear(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	src := surface.NewLinear(2, 2)
	src.Fill(src.Rect, cobra.Red)
	g.SetRoot(g.Resample(task.Scale(2, 2), task.InterpolationLinear, g.Surface(g.AddLinear(src))))

	dst := render(t, r, g, 4, 4)
	checkPixel(t, dst, 1, 1, cobra.Red)
	checkPixel(t, dst, 2, 2, cobra.Red)
	checkPixel(t, dst, 0, 0, cobra.RGBA(1, 0, 0, 0.5625))
}

func TestRenderResampleCubic(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	src := surface.NewLinear(2, 2)
	src.Fill(src.Rect, cobra.Red)
	g.SetRoot(g.Resample(task.Scale(2, 2), task.InterpolationCubic, g.Surface(g.AddLinear(src))))

	dst := render(t, r, g, 4, 4)
	c := dst.Get(1, 1)
	if !colorNear(c.WithAlpha(1), cobra.Red, 1e-3) || c.A < 0.5 {
		t.Errorf("pixel (1, 1) = %v, want opaque red", c)
	}
}

func TestRenderResampleCubicKeepsHDR(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	hdr := cobra.RGBA(2, -0.5, 1.25, 1)
	src := surface.NewLinear(2, 2)
	src.Fill(src.Rect, hdr)
	g.SetRoot(g.Resample(task.Scale(2, 2), task.InterpolationCubic, g.Surface(g.AddLinear(src))))

	checkAll(t, render(t, r, g, 4, 4), uniform(hdr))
}

func TestRenderTransformedSurface(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	src := checker()
	g.SetRoot(g.Transform(task.Translate(1, 1), g.Surface(g.AddLinear(src))))

	dst := render(t, r, g, 3, 3)
	checkAll(t, dst, func(x, y int) cobra.Color { return src.Get(x-1, y-1) })
}

func TestRenderTransformedContour(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	c := g.Contour(task.RectPath(0, 0, 1, 1), cobra.Red)
	g.SetRoot(g.Transform(task.Mul(task.Translate(1, 0), task.Scale(2, 2)), c))

	checkAll(t, render(t, r, g, 4, 3), inRect(image.Rect(1, 0, 3, 2), cobra.Red, cobra.Transparent))
}

func TestRenderPackedSurface(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	src := surface.NewPacked(2, 2)
	src.Fill(src.Rect, cobra.CairoRGBA(255, 0, 0, 255))
	g.SetRoot(g.Surface(g.AddPacked(src)))

	dst := render(t, r, g, 2, 2)
	checkAll(t, dst, uniform(cobra.Red))

	step := g.Node(g.Node(g.Root()).Inputs[0])
	if step.Kind != task.KindSurfaceConvert {
		t.Errorf("step kind = %s, want SurfaceConvert", step.Kind)
	}
}

func TestRenderMesh(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Mesh(task.Mesh{
		Vertices: []task.Vertex{
			{Pos: f64.Vec2{0, 0}, Color: cobra.Red},
			{Pos: f64.Vec2{4, 0}, Color: cobra.Red},
			{Pos: f64.Vec2{0, 4}, Color: cobra.Red},
			{Pos: f64.Vec2{4, 4}, Color: cobra.Blue},
		},
		Triangles: [][3]int{{0, 1, 2}, {1, 3, 2}, {0, 1, 7}},
	}))

	dst := render(t, r, g, 4, 4)
	checkPixel(t, dst, 0, 0, cobra.Red)
	if c := dst.Get(3, 3); math.Abs(float64(c.A)-1) > 1e-5 || c.B <= c.R {
		t.Errorf("pixel (3, 3) = %v, want opaque and mostly blue", c)
	}
}

func TestRenderDraft(t *testing.T) {
	r := newRenderer(t, 2)
	g := task.NewGraph()
	g.SetRoot(g.Blend(task.NoID, g.Contour(task.RectPath(0, 0, 2, 2), cobra.Red), cobra.BlendComposite, 1))

	dst := render(t, r, g, 4, 4)
	checkAll(t, dst, inRect(image.Rect(0, 0, 2, 2), cobra.Red, cobra.Transparent))
	if !g.Node(g.Root()).Flags.Has(task.FlagDraft) {
		t.Error("draft render lost the draft flag")
	}
}

func TestRenderDraftDeterministic(t *testing.T) {
	r := newRenderer(t, 2)
	build := func() *task.Graph {
		g := task.NewGraph()
		g.SetRoot(g.Blend(g.Fill(cobra.Blue), g.Contour(task.CirclePath(3, 3, 2.5), cobra.Yellow), cobra.BlendComposite, 1))
		return g
	}
	a := render(t, r, build(), 8, 8)
	b := render(t, r, build(), 8, 8)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel %d differs between runs: %v != %v", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestRenderParallelMatchesSerial(t *testing.T) {
	build := func() *task.Graph {
		g := task.NewGraph()
		disc := g.Contour(task.CirclePath(8, 8, 6), cobra.Red)
		blurred := g.Blur(f64.Vec2{2, 2}, task.BlurGaussian, disc)
		g.SetRoot(g.Blend(g.Fill(cobra.White), blurred, cobra.BlendComposite, 0.75))
		return g
	}
	a := render(t, newRenderer(t, 1), build(), 16, 16)
	b := render(t, newRenderer(t, 1, WithWorkers(4)), build(), 16, 16)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel %d: serial %v, parallel %v", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestOptimizeFixpoint(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Blend(g.Fill(cobra.Blue), g.Blur(f64.Vec2{1, 1}, task.BlurBox, g.Fill(cobra.Red)), cobra.BlendScreen, 1))

	rect := image.Rect(0, 0, 8, 8)
	if _, err := r.Optimize(g, rect); err != nil {
		t.Fatal(err)
	}
	before := g.Clone()
	stats, err := r.Optimize(g, rect)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Rewrites != 0 || stats.Sweeps != 1 {
		t.Errorf("second Optimize() = %+v, want one sweep without rewrites", stats)
	}
	if !g.Equal(before) {
		t.Error("second Optimize() changed the graph")
	}
}

func TestOptimizeDeterministic(t *testing.T) {
	r := newRenderer(t, 2)
	g := task.NewGraph()
	a := g.Contour(task.CirclePath(4, 4, 3), cobra.Red)
	b := g.Blend(g.Fill(cobra.Blue), a, cobra.BlendComposite, 1)
	g.SetRoot(g.Blend(b, g.Gamma(2, 2, 2, a), cobra.BlendAdd, 0.5))
	h := g.Clone()

	rect := image.Rect(0, 0, 16, 16)
	if _, err := r.Optimize(g, rect); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Optimize(h, rect); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(h) || g.Len() != h.Len() {
		t.Errorf("optimizing equal graphs gave different results:\n%s\n%s", g.DumpString(), h.DumpString())
	}
}

func TestRunCancelled(t *testing.T) {
	r := newRenderer(t, 1)
	g := task.NewGraph()
	g.SetRoot(g.Fill(cobra.Red))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx, g, surface.NewLinear(2, 2)); !errors.Is(err, context.Canceled) {
		t.Errorf("Run(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestExecuteNotLowered(t *testing.T) {
	g := task.NewGraph()
	g.SetRoot(g.Fill(cobra.Red))
	dst := surface.NewLinear(2, 2)
	if err := execute(context.Background(), g, dst, nil); !errors.Is(err, ErrNotLowered) {
		t.Errorf("execute(abstract root) error = %v, want ErrNotLowered", err)
	}

	fill := g.Fill(cobra.Red)
	g.SetRoot(g.Add(task.New(task.KindSequence, nil, fill)))
	if err := execute(context.Background(), g, dst, nil); !errors.Is(err, ErrNotLowered) {
		t.Errorf("execute(abstract step) error = %v, want ErrNotLowered", err)
	}
}

func TestExecuteNoSurface(t *testing.T) {
	g := task.NewGraph()
	n := task.New(task.KindPixelColorMatrix, task.ColorMatrix{Matrix: cobra.ConstantColorMatrix(cobra.Red)})
	n.Backend = task.BackendSoftware
	n.Surface = 5
	g.SetRoot(g.Add(task.New(task.KindSequence, nil, g.Add(n))))

	if err := execute(context.Background(), g, surface.NewLinear(2, 2), nil); !errors.Is(err, ErrNoSurface) {
		t.Errorf("execute() error = %v, want ErrNoSurface", err)
	}
}

func TestWithPipeline(t *testing.T) {
	p := optimizer.MustPipeline(optimizer.CalcBounds())
	r := newRenderer(t, 1, WithPipeline(p), WithMaxSweeps(4))
	if got := r.Optimizers(); len(got) != 1 || got[0] != "CalcBounds" {
		t.Errorf("Optimizers() = %v", got)
	}
	if p.MaxSweeps() != 4 {
		t.Errorf("MaxSweeps() = %d, want 4", p.MaxSweeps())
	}

	g := task.NewGraph()
	g.SetRoot(g.Fill(cobra.Red))
	if err := r.Run(context.Background(), g, surface.NewLinear(2, 2)); !errors.Is(err, ErrNotLowered) {
		t.Errorf("Run() with an incomplete pipeline error = %v, want ErrNotLowered", err)
	}
}

func BenchmarkRenderScene(b *testing.B) {
	cfg := cobra.DefaultRenderConfig()
	r, err := NewLowRes(cfg)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()
	dst := surface.NewLinear(128, 128)
	for b.Loop() {
		g := task.NewGraph()
		disc := g.Contour(task.CirclePath(64, 64, 40), cobra.Red)
		g.SetRoot(g.Blend(g.Fill(cobra.White), g.Blur(f64.Vec2{3, 3}, task.BlurGaussian, disc), cobra.BlendComposite, 1))
		if err := r.Run(context.Background(), g, dst); err != nil {
			b.Fatal(err)
		}
	}
}

func TestEncodeAppliesColorspaceGamma(t *testing.T) {
	target := surface.NewLinear(1, 1)
	target.Set(0, 0, cobra.RGBA(0.5, 0.5, 0.5, 1))

	linear := newRenderer(t, 1)
	if got := linear.Encode(target, cobra.PFRGBA); got[0] != 128 || got[3] != 255 {
		t.Errorf("linear Encode() = %v, want [128 128 128 255]", got)
	}

	cfg := cobra.DefaultRenderConfig()
	cfg.UseColorspaceGamma = true
	r, err := NewLowRes(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = r.Close() })

	want := cfg.Gamma().EncodeR(0.5)
	got := r.Encode(target, cobra.PFRGBA)
	if got[0] != want || got[0] <= 128 {
		t.Errorf("gamma Encode() red = %d, want %d", got[0], want)
	}
	if img := r.Image(target); img.Pix[0] != want || img.Pix[3] != 255 {
		t.Errorf("Image() pixel = %v, want red %d", img.Pix[:4], want)
	}
}
