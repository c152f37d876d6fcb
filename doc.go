// Package cobra provides the color model of a task-graph 2D renderer.
//
// # Overview
//
// A scene is described as a graph of tasks (package task): fills,
// contours, meshes, blurs, per-pixel color processing, blends and
// affine transformations. A renderer (package renderer) rewrites the
// graph with a pipeline of optimizer passes (package optimizer) until it
// reaches a fixed point, lowers it to a backend and executes the
// resulting linear sequence of steps into a surface (package surface).
//
// This package holds what every layer shares:
//   - Color: linear-light float RGBA with straight alpha, plus YUV and
//     hue/saturation accessors
//   - CairoColor: the packed byte form used by ARGB32 surfaces
//   - BlendMethod and Blend: the 23 blend methods
//   - ColorMatrix and Gamma: per-pixel color transforms
//   - PixelFormat: packed pixel layouts for encoding and decoding
//   - RenderConfig: renderer construction parameters
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/cobra"
//		"github.com/gogpu/cobra/renderer"
//		_ "github.com/gogpu/cobra/software"
//		"github.com/gogpu/cobra/surface"
//		"github.com/gogpu/cobra/task"
//	)
//
//	g := task.NewGraph()
//	disc := g.Contour(task.CirclePath(128, 128, 64), cobra.Red)
//	g.SetRoot(g.Blend(g.Fill(cobra.White), disc, cobra.BlendComposite, 1))
//
//	r, err := renderer.New("lowres", cobra.DefaultRenderConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	dst := surface.NewLinear(256, 256)
//	if err := r.Run(ctx, g, dst); err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinate System
//
// Surfaces use image.Rectangle pixel coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers the unit square with its center at (x+0.5, y+0.5)
//
// # Logging
//
// The library is silent by default. Call SetLogger with a *slog.Logger
// to receive optimizer and renderer diagnostics.
package cobra

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
