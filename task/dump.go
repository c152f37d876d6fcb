package task

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented listing of the tree below the root.
func (g *Graph) Dump(w io.Writer) error {
	var err error
	var visit func(id ID, depth int)
	visit = func(id ID, depth int) {
		if err != nil {
			return
		}
		indent := strings.Repeat("  ", depth)
		if id == NoID {
			_, err = fmt.Fprintf(w, "%s-\n", indent)
			return
		}
		n := g.Node(id)
		_, err = fmt.Fprintf(w, "%s%s\n", indent, describe(id, n))
		for _, in := range n.Inputs {
			visit(in, depth+1)
		}
	}
	visit(g.root, 0)
	return err
}

// DumpString returns Dump output as a string.
func (g *Graph) DumpString() string {
	var sb strings.Builder
	_ = g.Dump(&sb)
	return sb.String()
}

func describe(id ID, n *Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d %s", id, n.Kind)
	if n.Backend != BackendAbstract {
		fmt.Fprintf(&sb, " [%s]", n.Backend)
	}
	if n.Flags != 0 {
		fmt.Fprintf(&sb, " {%s}", n.Flags)
	}
	if n.Flags.Has(FlagBounds) {
		fmt.Fprintf(&sb, " target=%v bounds=%v", n.Target, n.Bounds)
	}
	if !n.Region.Empty() {
		fmt.Fprintf(&sb, " region=%v", n.Region)
	}
	if n.Surface != NoSurface {
		fmt.Fprintf(&sb, " surface=%d", n.Surface)
	}
	if len(n.Reads) > 0 {
		fmt.Fprintf(&sb, " reads=%v", n.Reads)
	}
	switch p := n.Params.(type) {
	case ColorMatrix:
		if n.IsFill() {
			fmt.Fprintf(&sb, " fill=%v", n.FillColor())
		}
	case Transformation:
		fmt.Fprintf(&sb, " matrix=%v", p.Matrix)
	case Resample:
		fmt.Fprintf(&sb, " matrix=%v %s", p.Matrix, p.Interpolation)
	case Contour:
		fmt.Fprintf(&sb, " color=%v elements=%d", p.Color, len(p.Path))
	case Blur:
		fmt.Fprintf(&sb, " %s %v", p.Type, p.Size)
	case Gamma:
		fmt.Fprintf(&sb, " gamma=%v", p.Gamma)
	case SurfaceRef:
		fmt.Fprintf(&sb, " ref=%d", p.Ref)
	}
	if n.Kind == KindBlend || n.Flags.Has(FlagOnto) {
		fmt.Fprintf(&sb, " %s*%g", n.Blend.Method, n.Blend.Amount)
	}
	return sb.String()
}
