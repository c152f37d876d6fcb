package software

import "github.com/gogpu/cobra/optimizer"

// Option configures a LowRes renderer during creation.
//
// Example:
//
//	r, err := software.NewLowRes(cfg,
//		software.WithWorkers(runtime.GOMAXPROCS(0)),
//		software.WithMaxSweeps(32),
//	)
type Option func(*options)

type options struct {
	maxSweeps int
	workers   int
	pipeline  *optimizer.Pipeline
}

// WithMaxSweeps sets the sweep limit of the optimizer pipeline.
func WithMaxSweeps(n int) Option {
	return func(o *options) {
		o.maxSweeps = n
	}
}

// WithWorkers overrides RenderConfig.Workers.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPipeline replaces the default rule set. The pipeline must leave
// the graph as a software Sequence for rendering to succeed.
func WithPipeline(p *optimizer.Pipeline) Option {
	return func(o *options) {
		o.pipeline = p
	}
}
