package optimizer

import (
	"errors"
	"fmt"

	"github.com/gogpu/cobra/task"
)

// Category orders optimizers inside a pipeline.
type Category uint8

// Categories in required pipeline order.
const (
	CategoryTransform Category = iota
	CategoryDraft
	CategoryBounds
	CategoryLowering
	CategoryBlend
	CategorySurface
	CategoryLinear
)

var categoryNames = [...]string{
	CategoryTransform: "transform",
	CategoryDraft:     "draft",
	CategoryBounds:    "bounds",
	CategoryLowering:  "lowering",
	CategoryBlend:     "blend",
	CategorySurface:   "surface",
	CategoryLinear:    "linear",
}

// String returns the category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// Optimizer is a named rewrite rule.
type Optimizer interface {
	Name() string
	Category() Category
}

// NodeOptimizer rewrites single nodes. RunNode returns id unchanged when
// the rule does not match, and the replacement's ID otherwise.
type NodeOptimizer interface {
	Optimizer
	RunNode(c *Context, id task.ID) (task.ID, error)
}

// RootOptimizer rewrites the whole tree and reports whether it changed
// anything.
type RootOptimizer interface {
	Optimizer
	RunRoot(c *Context) (bool, error)
}

// Errors returned by pipelines.
var (
	ErrNoConvergence = errors.New("optimizer: no fixpoint within sweep limit")
	ErrCategoryOrder = errors.New("optimizer: pass categories out of order")
	ErrRevisitLimit  = errors.New("optimizer: too many revisits of one node")
	ErrInvalidPass   = errors.New("optimizer: pass implements neither RunNode nor RunRoot")
)

// PassError reports a rewrite rule that matched but could not produce a
// valid replacement. It always indicates a rule-set bug.
type PassError struct {
	Pass string
	Kind task.Kind
	Node task.ID
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("optimizer: pass %s failed on %s node %d: %v", e.Pass, e.Kind, e.Node, e.Err)
}

func (e *PassError) Unwrap() error { return e.Err }

type nodeFunc struct {
	name string
	cat  Category
	fn   func(c *Context, id task.ID, n *task.Node) (task.ID, error)
}

// NewNodePass builds a node optimizer from a function. fn receives a
// copy of the node stored at id.
func NewNodePass(name string, cat Category, fn func(c *Context, id task.ID, n *task.Node) (task.ID, error)) NodeOptimizer {
	return &nodeFunc{name: name, cat: cat, fn: fn}
}

func (p *nodeFunc) Name() string       { return p.name }
func (p *nodeFunc) Category() Category { return p.cat }

func (p *nodeFunc) RunNode(c *Context, id task.ID) (task.ID, error) {
	n := c.Graph().Node(id).Clone()
	return p.fn(c, id, &n)
}
