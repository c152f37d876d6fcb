// Package task defines the render task graph.
//
// A render request is a tree of task nodes stored in an index-addressed
// arena ([Graph]). Nodes are immutable once added: optimizer passes
// rewrite a tree by adding replacement nodes, rebuilding the parents on
// the way up and finally swapping the root. Stale nodes stay in the
// arena until [Graph.Compact] drops everything unreachable.
//
// # Geometry
//
// Every node renders in the pixel space of the surface it is executed
// into. Target is the rectangle a node must produce, Bounds is the part
// of Target where the result can be non-transparent, and Region, when
// set, restricts the rectangle a blend or pixel processor touches.
// Transformation and SurfaceResample nodes map their input's space into
// the parent's space with an [f64.Aff3] (x' = m0*x + m1*y + m2,
// y' = m3*x + m4*y + m5).
//
// # Execution semantics
//
// Executing a node into a surface replaces the node's Target rectangle
// with the node's result. Nodes flagged [FlagOnto] composite their result
// onto the existing content with their Blend parameters instead.
// Children of a List run in order on the same surface. A Blend renders
// its destination (input 0) in place and its source (input 1) into a
// scratch surface, then composites source onto destination.
//
// # Example
//
//	g := task.NewGraph()
//	bg := g.Fill(cobra.Blue)
//	dot := g.Contour(task.RectPath(8, 8, 24, 24), cobra.Red)
//	g.SetRoot(g.Blend(bg, dot, cobra.BlendComposite, 1))
package task
