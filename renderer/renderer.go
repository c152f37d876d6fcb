// Package renderer defines the renderer contract and a registry of
// renderer factories keyed by name.
//
// Renderer packages register themselves from init, following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/cobra/software" // registers "lowres"
//
//	r, err := renderer.New("lowres", cobra.DefaultRenderConfig())
package renderer

import (
	"context"
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/surface"
	"github.com/gogpu/cobra/task"
)

// Renderer optimizes task graphs and executes them into surfaces.
type Renderer interface {
	// Name returns a human-readable label.
	Name() string

	// Optimizers lists the pass names in application order.
	Optimizers() []string

	// Run optimizes g in place and renders it into target.
	Run(ctx context.Context, g *task.Graph, target *surface.Linear) error

	// Close releases the renderer's resources.
	Close() error
}

// Encoder is implemented by renderers that quantize finished surfaces
// with their configured colorspace gamma.
type Encoder interface {
	// Encode packs target in format pf.
	Encode(target *surface.Linear, pf cobra.PixelFormat) []byte

	// Image converts target to a straight-alpha 8-bit image.
	Image(target *surface.Linear) *image.NRGBA
}

// Factory creates a renderer from a configuration.
type Factory func(cfg cobra.RenderConfig) (Renderer, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a renderer factory available by name.
//
// Register panics if factory is nil or name is already registered, so
// duplicate registrations surface during program initialization.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("renderer: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("renderer: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a renderer. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a renderer by name.
func New(name string, cfg cobra.RenderConfig) (Renderer, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("renderer: unknown renderer %q (forgotten import?)", name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return factory(cfg)
}

// Names returns the registered names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
