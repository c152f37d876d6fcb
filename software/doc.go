// Package software lowers task graphs to the software backend and
// executes them on float surfaces.
//
// The LowRes renderer bundles the software rule set: it optimizes a
// graph with a fixed pass list, optionally at a reduced draft
// resolution, and runs the resulting sequence step by step. Leaf steps
// split their rows across a worker pool.
//
//	r, err := software.NewLowRes(cobra.DefaultRenderConfig())
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	g := task.NewGraph()
//	g.SetRoot(g.Fill(cobra.Red))
//	dst := surface.NewLinear(64, 64)
//	err = r.Run(ctx, g, dst)
//
// Importing the package registers the renderer as "lowres" with the
// renderer registry.
package software
