// Command cobrademo renders a demo task graph to a PNG file and lists
// the registered renderers.
package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/tdewolff/argp"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/renderer"
	_ "github.com/gogpu/cobra/software"
	"github.com/gogpu/cobra/surface"
	"github.com/gogpu/cobra/task"
)

type Render struct {
	Output     string  `short:"o" default:"cobra.png" desc:"Output PNG file"`
	Width      int     `short:"W" default:"512" desc:"Image width"`
	Height     int     `short:"H" default:"384" desc:"Image height"`
	Renderer   string  `short:"r" default:"lowres" desc:"Renderer name"`
	Background string  `short:"b" default:"#141a29" desc:"Background as hex or CSS color(), e.g. 'color(display-p3 0.1 0.1 0.2)'"`
	Level      int     `short:"l" default:"1" desc:"Draft level, 1 renders at full resolution"`
	Workers    int     `short:"j" default:"1" desc:"Worker goroutines"`
	Gamma      float64 `default:"2.2" desc:"Colorspace gamma"`
	UseGamma   bool    `name:"use-gamma" desc:"Encode output through the colorspace gamma"`
	Dump       bool    `desc:"Print the optimized task graph"`
	Verbose    bool    `short:"v" desc:"Log renderer activity"`
}

type List struct{}

type Main struct{}

func main() {
	root := argp.NewCmd(&Main{}, "Render demo scenes with the cobra renderers")
	root.AddCmd(&Render{}, "render", "Render the demo scene to a PNG file")
	root.AddCmd(&List{}, "list", "List renderers and their optimizer passes")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func (cmd *Render) Run() error {
	if cmd.Width <= 0 || cmd.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", cmd.Width, cmd.Height)
	}
	if cmd.Verbose {
		cobra.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	bg, err := cobra.ParseColor(cmd.Background)
	if err != nil {
		return err
	}

	cfg := cobra.DefaultRenderConfig()
	cfg.Level = cmd.Level
	cfg.Workers = cmd.Workers
	cfg.ColorspaceGamma = float32(cmd.Gamma)
	cfg.UseColorspaceGamma = cmd.UseGamma

	r, err := renderer.New(cmd.Renderer, cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := task.NewGraph()
	g.SetRoot(scene(g, bg, float64(cmd.Width), float64(cmd.Height)))
	target := surface.NewLinear(cmd.Width, cmd.Height)

	start := time.Now()
	if err := r.Run(ctx, g, target); err != nil {
		return err
	}
	elapsed := time.Since(start)
	if cmd.Dump {
		if err := g.Dump(os.Stdout); err != nil {
			return err
		}
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	var img image.Image
	if enc, ok := r.(renderer.Encoder); ok {
		img = enc.Image(target)
	} else {
		img = surface.ToNRGBA(target, cfg.Gamma())
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d in %v with %s\n", cmd.Output, cmd.Width, cmd.Height, elapsed.Round(time.Microsecond), r.Name())
	return nil
}

func (cmd *List) Run() error {
	for _, name := range renderer.Names() {
		r, err := renderer.New(name, cobra.DefaultRenderConfig())
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", name, r.Name())
		for i, pass := range r.Optimizers() {
			fmt.Printf("  %2d. %s\n", i+1, pass)
		}
		if err := r.Close(); err != nil {
			return err
		}
	}
	return nil
}

// scene builds a background with overlapping translucent circles, a
// blurred vertex-colored triangle screened on top and a magnified
// checkerboard texture.
func scene(g *task.Graph, bg cobra.Color, w, h float64) task.ID {
	acc := g.Fill(bg)

	s := min(w, h)
	circles := []struct {
		x, y float64
		c    cobra.Color
	}{
		{0.35, 0.4, cobra.RGBA(1, 0.3, 0.3, 0.8)},
		{0.5, 0.4, cobra.RGBA(0.3, 1, 0.3, 0.8)},
		{0.425, 0.55, cobra.RGBA(0.3, 0.3, 1, 0.8)},
	}
	for _, c := range circles {
		disc := g.Contour(task.CirclePath(c.x*w, c.y*h, 0.15*s), c.c)
		acc = g.Blend(acc, disc, cobra.BlendComposite, 1)
	}

	mesh := g.Mesh(task.Mesh{
		Vertices: []task.Vertex{
			{Pos: f64.Vec2{0.6 * w, 0.15 * h}, Color: cobra.Red},
			{Pos: f64.Vec2{0.95 * w, 0.3 * h}, Color: cobra.Green},
			{Pos: f64.Vec2{0.7 * w, 0.7 * h}, Color: cobra.Blue},
		},
		Triangles: [][3]int{{0, 1, 2}},
	})
	glow := g.Blur(f64.Vec2{0.01 * s, 0.01 * s}, task.BlurGaussian, mesh)
	acc = g.Blend(acc, glow, cobra.BlendScreen, 0.9)

	tex := surface.NewLinear(8, 8)
	for y := range 8 {
		for x := range 8 {
			c := cobra.RGB(0.9, 0.85, 0.7)
			if (x+y)%2 == 1 {
				c = cobra.RGB(0.2, 0.25, 0.3)
			}
			tex.Set(x, y, c)
		}
	}
	k := 0.025 * s
	m := task.Mul(task.Translate(0.08*w, 0.7*h), task.Scale(k, k))
	board := g.Resample(m, task.InterpolationCubic, g.Surface(g.AddLinear(tex)))
	acc = g.Blend(acc, board, cobra.BlendComposite, 1)

	ribbon := g.ColorMatrix(cobra.ScaleColorMatrix(1, 1, 1, 0.6),
		g.Transform(task.Translate(0.55*w, 0.75*h), g.Contour(task.RectPath(0, 0, 0.35*w, 0.1*h), cobra.Yellow)))
	return g.Blend(acc, ribbon, cobra.BlendMultiply, 1)
}
