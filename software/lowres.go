package software

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/internal/parallel"
	"github.com/gogpu/cobra/optimizer"
	"github.com/gogpu/cobra/renderer"
	"github.com/gogpu/cobra/surface"
	"github.com/gogpu/cobra/task"
)

// Name is the registry name of the LowRes renderer.
const Name = "lowres"

// Verify at compile time that LowRes implements renderer.Renderer and
// renderer.Encoder.
var (
	_ renderer.Renderer = (*LowRes)(nil)
	_ renderer.Encoder  = (*LowRes)(nil)
)

// LowRes is the software renderer. It renders at 1/Level resolution
// when Level is above 1 and scales the result up with nearest-neighbour
// sampling.
//
// A LowRes may render several graphs concurrently; graphs themselves
// are not safe for concurrent use.
type LowRes struct {
	cfg      cobra.RenderConfig
	pipeline *optimizer.Pipeline
	pool     *parallel.WorkerPool
}

// NewLowRes creates a renderer for cfg.
func NewLowRes(cfg cobra.RenderConfig, opts ...Option) (*LowRes, error) {
	if cfg.Level < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, cfg.Level)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{workers: cfg.Workers}
	for _, opt := range opts {
		opt(&o)
	}
	p := o.pipeline
	if p == nil {
		var err error
		if p, err = optimizer.NewPipeline(DefaultOptimizers(cfg.Level)...); err != nil {
			return nil, err
		}
	}
	if o.maxSweeps > 0 {
		p.SetMaxSweeps(o.maxSweeps)
	}

	r := &LowRes{
		cfg:      cfg,
		pipeline: p,
		pool:     parallel.NewWorkerPool(max(o.workers, 1)),
	}
	cobra.Logger().Info("software: renderer created",
		"name", r.Name(), "workers", r.pool.Workers(), "passes", len(p.Names()))
	return r, nil
}

// DefaultOptimizers returns the software rule set for the draft level.
// The order is part of the contract: later passes rely on the shape
// earlier passes leave behind.
func DefaultOptimizers(level int) []optimizer.Optimizer {
	passes := []optimizer.Optimizer{
		optimizer.TransformationAffine(),
		optimizer.SurfaceResample(),
		optimizer.DraftLowRes(level),
		optimizer.CalcBounds(),
	}
	passes = append(passes, Lowerings()...)
	return append(passes,
		optimizer.BlendZero(),
		optimizer.BlendBlend(),
		optimizer.BlendComposite(),
		optimizer.List(),
		optimizer.BlendAssociative(),
		optimizer.BlendSplit(),
		optimizer.PixelProcessorSplit(),
		optimizer.SurfaceConvert(task.BackendSoftware),
		optimizer.SurfaceCreate(),
		optimizer.Linear(),
	)
}

// Name returns a label ending in the draft level, such as
// "Cobra LowRes (software) x4".
func (r *LowRes) Name() string {
	return fmt.Sprintf("Cobra LowRes (software) x%d", r.cfg.Level)
}

// Config returns the configuration the renderer was created with.
func (r *LowRes) Config() cobra.RenderConfig { return r.cfg }

// Optimizers returns the pass names in registration order.
func (r *LowRes) Optimizers() []string { return r.pipeline.Names() }

// Optimize rewrites g in place into a software Sequence rendering into
// rect.
func (r *LowRes) Optimize(g *task.Graph, rect image.Rectangle) (optimizer.Stats, error) {
	return r.pipeline.Run(g, rect)
}

// Run optimizes g and renders it into target. Cancellation is checked
// between steps; a cancelled render leaves target partially written.
func (r *LowRes) Run(ctx context.Context, g *task.Graph, target *surface.Linear) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stats, err := r.Optimize(g, target.Rect)
	if err != nil {
		return err
	}
	if err := execute(ctx, g, target, r.pool); err != nil {
		return err
	}

	log := cobra.Logger()
	if n := surface.CountInvalid(target); n > 0 {
		log.Warn("software: rendered surface holds invalid colors", "renderer", r.Name(), "pixels", n)
	}
	log.Info("software: frame rendered",
		"renderer", r.Name(), "size", target.Rect.Size(),
		"sweeps", stats.Sweeps, "rewrites", stats.Rewrites, "nodes", g.Len())
	return nil
}

// Close stops the worker pool. Rendering after Close runs on the
// calling goroutine.
func (r *LowRes) Close() error {
	r.pool.Close()
	return nil
}

// Encode packs target in format pf, quantizing through the colorspace
// gamma when the configuration enables it.
func (r *LowRes) Encode(target *surface.Linear, pf cobra.PixelFormat) []byte {
	return surface.Encode(target, pf, r.cfg.Gamma())
}

// Image quantizes target to a straight-alpha image through the
// colorspace gamma when the configuration enables it.
func (r *LowRes) Image(target *surface.Linear) *image.NRGBA {
	return surface.ToNRGBA(target, r.cfg.Gamma())
}
