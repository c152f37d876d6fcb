package software

import (
	"image"
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/surface"
	"github.com/gogpu/cobra/task"
)

// kernel returns the normalized 1-D weights for a blur of size with the
// given radius.
func kernel(size float64, t task.BlurType, radius int) []float32 {
	k := make([]float32, 2*radius+1)
	if radius == 0 {
		k[0] = 1
		return k
	}
	if t == task.BlurBox {
		for i := range k {
			k[i] = 1 / float32(len(k))
		}
		return k
	}

	sigma := float32(size) / 2
	var sum float32
	for i := range k {
		x := float32(i - radius)
		k[i] = math32.Exp(-x * x / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// blur convolves the scratch input with a separable kernel, horizontally
// into a temporary buffer and vertically into the target. Colors are
// convolved premultiplied.
func (e *executor) blur(dst *surface.Linear, n *task.Node) error {
	src, err := e.read(n, 0)
	if err != nil {
		return err
	}
	p := n.Params.(task.Blur)
	ext := p.Extent()
	kx := kernel(p.Size[0], p.Type, ext.X)
	ky := kernel(p.Size[1], p.Type, ext.Y)

	out := paintRect(dst, n)
	if out.Empty() {
		return nil
	}
	mid := image.Rect(out.Min.X, out.Min.Y-ext.Y, out.Max.X, out.Max.Y+ext.Y)
	tmp := surface.New[cobra.Color](mid)
	e.pool.ForEachBand(mid, func(band image.Rectangle) {
		for y := band.Min.Y; y < band.Max.Y; y++ {
			row := tmp.Row(y, band.Min.X, band.Max.X)
			for i := range row {
				x := band.Min.X + i - ext.X
				var acc cobra.Color
				for j, w := range kx {
					acc = acc.Add(src.Get(x+j, y).PremultAlpha().Mul(w))
				}
				row[i] = acc
			}
		}
	})

	e.shade(dst, n, func(x, y int) (cobra.Color, float32) {
		var acc cobra.Color
		for j, w := range ky {
			acc = acc.Add(tmp.Get(x, y+j-ext.Y).Mul(w))
		}
		return acc.DemultAlpha(), 1
	})
	return nil
}

// resample maps the scratch input through the resample matrix. Every
// target pixel center is mapped back into the input and filtered there.
func (e *executor) resample(dst *surface.Linear, n *task.Node) error {
	src, err := e.read(n, 0)
	if err != nil {
		return err
	}
	p := n.Params.(task.Resample)
	inv, ok := task.Invert(p.Matrix)
	if !ok {
		e.shade(dst, n, func(int, int) (cobra.Color, float32) { return cobra.Transparent, 0 })
		return nil
	}

	switch p.Interpolation {
	case task.InterpolationNearest:
		e.shade(dst, n, func(x, y int) (cobra.Color, float32) {
			sx, sy := task.Apply(inv, float64(x)+0.5, float64(y)+0.5)
			return src.Get(int(math.Floor(sx)), int(math.Floor(sy))), 1
		})

	case task.InterpolationLinear:
		e.shade(dst, n, func(x, y int) (cobra.Color, float32) {
			sx, sy := task.Apply(inv, float64(x)+0.5, float64(y)+0.5)
			return surface.Sample(src, surface.ColorPrep{}, float32(sx), float32(sy)), 1
		})

	default:
		e.shade(dst, n, func(x, y int) (cobra.Color, float32) {
			sx, sy := task.Apply(inv, float64(x)+0.5, float64(y)+0.5)
			return surface.SampleCubic(src, surface.ColorPrep{}, float32(sx), float32(sy)), 1
		})
	}
	return nil
}
