package draw

import (
	"math"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/models"
)

// Grid paints the procedural grid variant. It holds no animation state: a
// frame is a pure function of the viewport and the elapsed time.
type Grid struct {
	scene    *models.Scene
	settings *config.Settings
}

func NewGrid(scene *models.Scene, settings *config.Settings) *Grid {
	return &Grid{scene: scene, settings: settings}
}

// GridOffsets returns the coarse and fine line offsets, each in [0, spacing).
func GridOffsets(elapsed float64, g config.Grid) (coarse, fine float64) {
	return phase(elapsed*g.CoarseSpeed, g.CoarseSpacing), phase(elapsed*g.FineSpeed, g.FineSpacing)
}

func phase(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

type Node struct {
	X, Y, Radius, Alpha float64
}

// NodeAt places node i of n on a ring around the viewport centre.
func NodeAt(i, n int, elapsed, w, h float64) Node {
	angle := float64(i) / float64(n) * 2 * math.Pi
	ring := math.Min(w, h) * 0.32
	return Node{
		X:      w/2 + math.Cos(angle)*ring,
		Y:      h/2 + math.Sin(angle)*ring,
		Radius: 2.5 + 1.5*math.Sin(elapsed*0.0015+float64(i)*0.6),
		Alpha:  0.35 + 0.25*math.Sin(elapsed*0.001+float64(i)),
	}
}

func (g *Grid) Paint(c Canvas, elapsed float64) {
	vp := g.scene.Viewport
	w, h := vp.Width, vp.Height
	gs := g.settings.Grid
	line := g.settings.GridRGB()

	c.Clear()

	coarse, fine := GridOffsets(elapsed, gs)
	g.lines(c, fine, gs.FineSpacing, RGBA(line, 0.035))
	g.lines(c, coarse, gs.CoarseSpacing, RGBA(line, 0.08))

	c.FillGradient(Gradient{
		X:     w / 2,
		Y:     h / 2,
		Outer: math.Hypot(w, h) / 2,
		Stops: []Stop{
			{Offset: 0.55, Color: Transparent},
			{Offset: 1, Color: Color{A: 0.6}},
		},
	})
	c.FillGradient(Gradient{
		Outer: math.Max(w, h) * 0.6,
		Stops: []Stop{
			{Offset: 0, Color: Color{R: 0, G: 255, B: 136, A: 0.10}},
			{Offset: 1, Color: Transparent},
		},
	})
	c.FillGradient(Gradient{
		X:     w,
		Y:     h,
		Outer: math.Max(w, h) * 0.6,
		Stops: []Stop{
			{Offset: 0, Color: Color{R: 0, G: 204, B: 255, A: 0.08}},
			{Offset: 1, Color: Transparent},
		},
	})

	for i := range gs.Nodes {
		n := NodeAt(i, gs.Nodes, elapsed, w, h)
		c.FillCircle(n.X, n.Y, n.Radius, RGBA(line, n.Alpha))
	}
}

func (g *Grid) lines(c Canvas, offset, spacing float64, col Color) {
	vp := g.scene.Viewport
	for x := offset; x <= vp.Width; x += spacing {
		c.StrokeLine(x, 0, x, vp.Height, 1, col)
	}
	for y := offset; y <= vp.Height; y += spacing {
		c.StrokeLine(0, y, vp.Width, y, 1, col)
	}
}

// Blobs paints three drifting radial blobs.
type Blobs struct {
	scene *models.Scene
}

func NewBlobs(scene *models.Scene) *Blobs {
	return &Blobs{scene: scene}
}

func (b *Blobs) Paint(c Canvas, elapsed float64) {
	w, h := b.scene.Viewport.Width, b.scene.Viewport.Height
	t1, t2, t3 := elapsed*0.00025, elapsed*0.00018, elapsed*0.00021
	m := math.Max(w, h)

	c.Clear()
	blob := func(x, y, r float64, col Color) {
		c.FillGradient(Gradient{X: x, Y: y, Outer: r, Stops: []Stop{
			{Offset: 0, Color: col},
			{Offset: 1, Color: Transparent},
		}})
	}
	blob(w*(0.2+0.1*math.Sin(t1)), h*(0.4+0.1*math.Cos(t1*1.3)), m*0.45, Color{R: 0, G: 255, B: 136, A: 0.24})
	blob(w*(0.75+0.08*math.Cos(t2)), h*(0.3+0.12*math.Sin(t2*1.2)), m*0.5, Color{R: 0, G: 204, B: 255, A: 0.22})
	blob(w*(0.45+0.12*math.Cos(t3)), h*(0.85+0.08*math.Sin(t3)), m*0.4, Color{R: 127, G: 255, B: 212, A: 0.18})
}
