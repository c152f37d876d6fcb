package task

import (
	"image"
	"slices"

	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"

	"github.com/gogpu/cobra"
)

// ID addresses a node in a Graph.
type ID int32

// NoID marks a missing input.
const NoID ID = -1

// SurfaceID addresses an execution surface. The zero value means no
// surface is assigned yet; scratch surfaces are numbered after
// RootSurface by the surface assignment pass.
type SurfaceID int32

// Execution surface identifiers.
const (
	NoSurface   SurfaceID = 0
	RootSurface SurfaceID = 1
)

// ExternalRef references a caller-supplied surface registered with
// Graph.AddLinear or Graph.AddPacked.
type ExternalRef uint32

// BlendParams selects how a node composites.
type BlendParams struct {
	Method cobra.BlendMethod
	Amount float32
}

// DefaultBlend is composite at full amount.
var DefaultBlend = BlendParams{Method: cobra.BlendComposite, Amount: 1}

// Node is one task. Nodes are values; changing one means adding a
// modified copy to the graph.
type Node struct {
	Kind    Kind
	Backend Backend
	Inputs  []ID
	Flags   Flags

	Target image.Rectangle
	Bounds image.Rectangle
	Region image.Rectangle

	Surface SurfaceID
	Reads   []SurfaceID

	Blend  BlendParams
	Params any
}

// Clone returns a copy that shares no slices with n.
func (n Node) Clone() Node {
	n.Inputs = slices.Clone(n.Inputs)
	n.Reads = slices.Clone(n.Reads)
	return n
}

// Input returns input i or NoID.
func (n *Node) Input(i int) ID {
	if i < len(n.Inputs) {
		return n.Inputs[i]
	}
	return NoID
}

// WorkRect returns Region when set and Target otherwise.
func (n *Node) WorkRect() image.Rectangle {
	if n.Region.Empty() {
		return n.Target
	}
	return n.Region.Intersect(n.Target)
}

// Executable reports whether a backend can run n as is.
func (n *Node) Executable() bool {
	return n.Kind.Structural() || n.Backend != BackendAbstract
}

// Drawable reports whether n is a leaf that can be drawn straight onto a
// surface with a blend method.
func (n *Node) Drawable() bool {
	switch n.Kind {
	case KindContour, KindMesh, KindSurface, KindSurfaceConvert:
		return true
	case KindPixelColorMatrix:
		return n.IsFill()
	}
	return false
}

// IsFill reports whether n is a pixel color matrix producing one color
// everywhere. That holds for constant matrices and for abstract
// matrices without an input; lowering turns the latter into the former,
// so lowered steps without inputs still process pixels in place.
func (n *Node) IsFill() bool {
	if n.Kind != KindPixelColorMatrix {
		return false
	}
	p, ok := n.Params.(ColorMatrix)
	return ok && (p.Matrix.IsConstant() || (n.Backend == BackendAbstract && n.Input(0) == NoID))
}

// FillColor returns the color a fill node produces.
func (n *Node) FillColor() cobra.Color {
	p := n.Params.(ColorMatrix)
	return p.Matrix.Apply(cobra.Color{})
}

// IsClear reports whether n fills its target with the transparent color.
func (n *Node) IsClear() bool {
	return n.IsFill() && n.FillColor() == cobra.Transparent
}

// Transformation parameters.
type Transformation struct {
	Matrix f64.Aff3
}

// Interpolation selects a resampling filter.
type Interpolation uint8

// Interpolation filters.
const (
	InterpolationNearest Interpolation = iota
	InterpolationLinear
	InterpolationCubic
)

// String returns the filter name.
func (i Interpolation) String() string {
	switch i {
	case InterpolationNearest:
		return "nearest"
	case InterpolationLinear:
		return "linear"
	case InterpolationCubic:
		return "cubic"
	}
	return "unknown"
}

// Pad returns the number of source pixels a filter reads beyond the
// mapped rectangle.
func (i Interpolation) Pad() int {
	switch i {
	case InterpolationLinear:
		return 1
	case InterpolationCubic:
		return 2
	}
	return 0
}

// Resample parameters. SourceRect is the input-space rectangle rendered
// into the scratch surface; the bounds pass computes it.
type Resample struct {
	Matrix        f64.Aff3
	Interpolation Interpolation
	SourceRect    image.Rectangle
}

// Contour parameters. The path is filled with the nonzero rule.
type Contour struct {
	Path      []curve.PathElement
	Color     cobra.Color
	Antialias bool
	Invert    bool
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos   f64.Vec2
	Color cobra.Color
}

// Mesh parameters. Colors are interpolated linearly across each
// triangle; later triangles composite over earlier ones.
type Mesh struct {
	Vertices  []Vertex
	Triangles [][3]int
}

// BlurType selects the blur kernel.
type BlurType uint8

// Blur kernels.
const (
	BlurBox BlurType = iota
	BlurGaussian
)

// String returns the kernel name.
func (t BlurType) String() string {
	if t == BlurGaussian {
		return "gaussian"
	}
	return "box"
}

// Blur parameters. Size is the blur radius in pixels per axis.
type Blur struct {
	Size f64.Vec2
	Type BlurType
}

// Extent returns the number of pixels the kernel reaches on each side.
func (b Blur) Extent() image.Point {
	return image.Point{X: blurExtent(b.Size[0], b.Type), Y: blurExtent(b.Size[1], b.Type)}
}

func blurExtent(size float64, t BlurType) int {
	if size <= 0 {
		return 0
	}
	if t == BlurGaussian {
		return int(ceil(size * 1.5))
	}
	return int(size + 0.5)
}

// ColorMatrix parameters for KindPixelColorMatrix.
type ColorMatrix struct {
	Matrix cobra.ColorMatrix
}

// Gamma parameters for KindPixelGamma. Each channel v becomes
// sign(v)*|v|^Gamma[i].
type Gamma struct {
	Gamma [3]float32
}

// IsIdentity reports whether every exponent is 1.
func (g Gamma) IsIdentity() bool { return g.Gamma == [3]float32{1, 1, 1} }

// SurfaceRef parameters for KindSurface and KindSurfaceConvert.
type SurfaceRef struct {
	Ref ExternalRef
}
