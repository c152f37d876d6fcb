package task

import (
	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"

	"github.com/gogpu/cobra"
)

// New returns an abstract node of kind k.
func New(k Kind, params any, inputs ...ID) Node {
	return Node{
		Kind:   k,
		Inputs: inputs,
		Blend:  DefaultBlend,
		Params: params,
	}
}

func (g *Graph) add(k Kind, params any, inputs ...ID) ID {
	return g.Add(New(k, params, inputs...))
}

// List adds a node running children in order on one surface.
func (g *Graph) List(children ...ID) ID {
	return g.add(KindList, nil, children...)
}

// Blend adds src composited onto dst. dst may be NoID for a transparent
// destination.
func (g *Graph) Blend(dst, src ID, method cobra.BlendMethod, amount float32) ID {
	id := g.add(KindBlend, nil, dst, src)
	g.nodes[id].Blend = BlendParams{Method: method, Amount: amount}
	return id
}

// Transform adds an affine transformation of in.
func (g *Graph) Transform(m f64.Aff3, in ID) ID {
	return g.add(KindTransformation, Transformation{Matrix: m}, in)
}

// Resample adds in resampled through m with the given filter.
func (g *Graph) Resample(m f64.Aff3, interp Interpolation, in ID) ID {
	return g.add(KindSurfaceResample, Resample{Matrix: m, Interpolation: interp}, in)
}

// Contour adds an antialiased fill of path with c.
func (g *Graph) Contour(path []curve.PathElement, c cobra.Color) ID {
	return g.add(KindContour, Contour{Path: path, Color: c, Antialias: true})
}

// ContourParams adds a fill with explicit contour parameters.
func (g *Graph) ContourParams(p Contour) ID {
	return g.add(KindContour, p)
}

// Mesh adds vertex-colored triangles.
func (g *Graph) Mesh(m Mesh) ID {
	return g.add(KindMesh, m)
}

// Blur adds a blur of in.
func (g *Graph) Blur(size f64.Vec2, t BlurType, in ID) ID {
	return g.add(KindBlur, Blur{Size: size, Type: t}, in)
}

// ColorMatrix adds a per-pixel color transform of in.
func (g *Graph) ColorMatrix(m cobra.ColorMatrix, in ID) ID {
	return g.add(KindPixelColorMatrix, ColorMatrix{Matrix: m}, in)
}

// Fill adds a node filling its target with c.
func (g *Graph) Fill(c cobra.Color) ID {
	return g.add(KindPixelColorMatrix, ColorMatrix{Matrix: cobra.ConstantColorMatrix(c)})
}

// Clear adds a node filling its target with the transparent color.
func (g *Graph) Clear() ID {
	return g.Fill(cobra.Transparent)
}

// Gamma adds a per-channel gamma curve applied to in.
func (g *Graph) Gamma(r, gr, b float32, in ID) ID {
	return g.add(KindPixelGamma, Gamma{Gamma: [3]float32{r, gr, b}}, in)
}

// Surface adds a copy of an external surface. Packed surfaces are
// converted by the optimizer.
func (g *Graph) Surface(ref ExternalRef) ID {
	return g.add(KindSurface, SurfaceRef{Ref: ref})
}
