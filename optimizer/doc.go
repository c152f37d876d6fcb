// Package optimizer rewrites render task graphs.
//
// An [Optimizer] is a named rewrite rule with a [Category]. A [Pipeline]
// holds an ordered list of optimizers whose categories never decrease
// and applies them in sweeps: every sweep runs each optimizer once, in
// registration order, and the pipeline stops at the first sweep that
// rewrites nothing. A pipeline that keeps rewriting past its sweep
// limit fails with [ErrNoConvergence].
//
// Node optimizers see one node at a time. The pipeline walks the tree in
// post-order, rebuilds parents whose inputs were replaced and feeds every
// replacement back to the same optimizer until it stops matching. Root
// optimizers see the whole tree and swap the root themselves.
//
// Passes never mutate stored nodes. A rewrite adds new nodes to the
// graph and returns their IDs; the pipeline compacts the arena when it
// finishes.
package optimizer
