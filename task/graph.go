package task

import (
	"fmt"
	"image"
	"reflect"
	"slices"

	"github.com/gogpu/cobra/surface"
)

// Graph is an arena of task nodes plus the external surfaces they read.
//
// Graph is not safe for concurrent use.
type Graph struct {
	nodes    []Node
	root     ID
	linear   []*surface.Linear
	packed   []*surface.Packed
	external []externalEntry
}

type externalEntry struct {
	kind  surface.Kind
	index int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]Node, 0, 32),
		root:  NoID,
	}
}

// Add stores a copy of n and returns its ID.
func (g *Graph) Add(n Node) ID {
	g.nodes = append(g.nodes, n.Clone())
	// #nosec G115 -- arena size is bounded by available memory
	return ID(len(g.nodes) - 1)
}

// Node returns the node stored at id. The result must be treated as
// read-only; it stays valid until the next Add or Compact.
func (g *Graph) Node(id ID) *Node {
	return &g.nodes[id]
}

// Len returns the number of stored nodes, reachable or not.
func (g *Graph) Len() int { return len(g.nodes) }

// Root returns the root node ID, or NoID for an empty graph.
func (g *Graph) Root() ID { return g.root }

// SetRoot makes id the root.
func (g *Graph) SetRoot(id ID) { g.root = id }

// AddLinear registers an external float surface.
func (g *Graph) AddLinear(s *surface.Linear) ExternalRef {
	g.linear = append(g.linear, s)
	return g.addExternal(surface.KindLinear, len(g.linear)-1)
}

// AddPacked registers an external byte surface.
func (g *Graph) AddPacked(s *surface.Packed) ExternalRef {
	g.packed = append(g.packed, s)
	return g.addExternal(surface.KindPacked, len(g.packed)-1)
}

func (g *Graph) addExternal(k surface.Kind, index int) ExternalRef {
	g.external = append(g.external, externalEntry{kind: k, index: index})
	// #nosec G115 -- bounded by available memory
	return ExternalRef(len(g.external) - 1)
}

// ExternalKind returns the pixel representation of ref.
func (g *Graph) ExternalKind(ref ExternalRef) surface.Kind {
	return g.external[ref].kind
}

// Linear returns the float surface behind ref, or nil if ref is packed
// or unknown.
func (g *Graph) Linear(ref ExternalRef) *surface.Linear {
	if int(ref) >= len(g.external) || g.external[ref].kind != surface.KindLinear {
		return nil
	}
	return g.linear[g.external[ref].index]
}

// Packed returns the byte surface behind ref, or nil if ref is linear
// or unknown.
func (g *Graph) Packed(ref ExternalRef) *surface.Packed {
	if int(ref) >= len(g.external) || g.external[ref].kind != surface.KindPacked {
		return nil
	}
	return g.packed[g.external[ref].index]
}

// ExternalBounds returns the rectangle covered by ref.
func (g *Graph) ExternalBounds(ref ExternalRef) image.Rectangle {
	if int(ref) >= len(g.external) {
		return image.Rectangle{}
	}
	e := g.external[ref]
	if e.kind == surface.KindPacked {
		return g.packed[e.index].Rect
	}
	return g.linear[e.index].Rect
}

// Walk visits the tree below id in pre-order. Returning false from fn
// skips the children of that node.
func (g *Graph) Walk(id ID, fn func(id ID, n *Node) bool) {
	if id == NoID {
		return
	}
	if !fn(id, g.Node(id)) {
		return
	}
	for _, in := range g.Node(id).Inputs {
		g.Walk(in, fn)
	}
}

// All reports whether pred holds for every node reachable from the root.
func (g *Graph) All(pred func(n *Node) bool) bool {
	ok := true
	g.Walk(g.root, func(_ ID, n *Node) bool {
		if ok && !pred(n) {
			ok = false
		}
		return ok
	})
	return ok
}

// Compact drops unreachable nodes, renumbering the rest in post-order,
// and returns the number of nodes removed.
func (g *Graph) Compact() int {
	if g.root == NoID {
		n := len(g.nodes)
		g.nodes = g.nodes[:0]
		return n
	}
	nodes := make([]Node, 0, len(g.nodes))
	remap := make(map[ID]ID, len(g.nodes))
	var visit func(id ID) ID
	visit = func(id ID) ID {
		if id == NoID {
			return NoID
		}
		if nid, ok := remap[id]; ok {
			return nid
		}
		n := g.nodes[id].Clone()
		for i, in := range n.Inputs {
			n.Inputs[i] = visit(in)
		}
		nodes = append(nodes, n)
		// #nosec G115 -- bounded by the old arena size
		nid := ID(len(nodes) - 1)
		remap[id] = nid
		return nid
	}
	root := visit(g.root)
	removed := len(g.nodes) - len(nodes)
	g.nodes = nodes
	g.root = root
	return removed
}

// Equal reports whether the trees below the roots of g and o are
// structurally identical, ignoring node IDs.
func (g *Graph) Equal(o *Graph) bool {
	return equalTree(g, g.root, o, o.root)
}

func equalTree(g *Graph, a ID, o *Graph, b ID) bool {
	if a == NoID || b == NoID {
		return a == b
	}
	na, nb := g.Node(a), o.Node(b)
	if len(na.Inputs) != len(nb.Inputs) {
		return false
	}
	x, y := na.Clone(), nb.Clone()
	x.Inputs, y.Inputs = nil, nil
	if !reflect.DeepEqual(x, y) {
		return false
	}
	for i := range na.Inputs {
		if !equalTree(g, na.Inputs[i], o, nb.Inputs[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the arena sharing the external surfaces.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes:    make([]Node, len(g.nodes)),
		root:     g.root,
		linear:   slices.Clone(g.linear),
		packed:   slices.Clone(g.packed),
		external: slices.Clone(g.external),
	}
	for i, n := range g.nodes {
		c.nodes[i] = n.Clone()
	}
	return c
}

// Size returns the number of nodes reachable from the root.
func (g *Graph) Size() int {
	n := 0
	g.Walk(g.root, func(ID, *Node) bool { n++; return true })
	return n
}

func (g *Graph) String() string {
	return fmt.Sprintf("Graph(%d nodes, root %d)", len(g.nodes), g.root)
}
