// Package term shows the background in a terminal. Each cell holds two
// vertically stacked pixels drawn with an upper half block.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ThatOtherAndrew/backdrop/internal/draw"
)

// CSS pixels covered by one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

const halfBlock = '▀'

type rgb struct {
	r, g, b float64
}

// Canvas is a software draw.Canvas over a small pixel grid.
type Canvas struct {
	w, h  int
	ratio float64
	px    []rgb
}

var _ draw.Canvas = (*Canvas)(nil)

func NewCanvas() *Canvas {
	return &Canvas{ratio: 1}
}

func (c *Canvas) Resize(width, height int, ratio float64) {
	c.ratio = ratio
	width, height = max(width, 0), max(height, 0)
	if width == c.w && height == c.h {
		return
	}
	c.w, c.h = width, height
	c.px = make([]rgb, width*height)
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Clear() {
	clear(c.px)
}

func (c *Canvas) blend(x, y int, col draw.Color, a float64) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || a <= 0 {
		return
	}
	a = math.Min(a, 1)
	p := &c.px[y*c.w+x]
	p.r = p.r*(1-a) + float64(col.R)/255*a
	p.g = p.g*(1-a) + float64(col.G)/255*a
	p.b = p.b*(1-a) + float64(col.B)/255*a
}

func (c *Canvas) FillGradient(g draw.Gradient) {
	for y := range c.h {
		for x := range c.w {
			col := g.At((float64(x)+0.5)/c.ratio, (float64(y)+0.5)/c.ratio)
			c.blend(x, y, col, col.A)
		}
	}
}

func (c *Canvas) FillCircle(x, y, radius float64, col draw.Color) {
	cx, cy, r := x*c.ratio, y*c.ratio, radius*c.ratio
	if r < 0.5 {
		// Sub-pixel dots keep their brightness proportional to their area.
		c.blend(int(math.Floor(cx)), int(math.Floor(cy)), col, col.A*math.Min(1, math.Pi*r*r*4))
		return
	}
	x0, x1 := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	y0, y1 := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			if math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy) <= r {
				c.blend(px, py, col, col.A)
			}
		}
	}
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col draw.Color) {
	x1, y1, x2, y2 = x1*c.ratio, y1*c.ratio, x2*c.ratio, y2*c.ratio
	// Lines thinner than a pixel fade instead of thinning.
	a := col.A * math.Min(1, width*c.ratio*4)
	steps := int(math.Ceil(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))))
	if steps == 0 {
		c.blend(int(x1), int(y1), col, a)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.blend(int(math.Floor(x1+(x2-x1)*t)), int(math.Floor(y1+(y2-y1)*t)), col, a)
	}
}

func (c *Canvas) At(x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, 0, 0
	}
	p := c.px[y*c.w+x]
	return channel(p.r), channel(p.g), channel(p.b)
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

func (c *Canvas) color(x, y int, k float64) tcell.Color {
	r, g, b := c.At(x, y)
	scale := func(v uint8) int32 { return int32(math.Round(float64(v) * k)) }
	return tcell.NewRGBColor(scale(r), scale(g), scale(b))
}

// Flush writes the pixels to the screen, two rows per cell, darkened
// towards black by dim.
func (c *Canvas) Flush(s tcell.Screen, dim float64) {
	k := 1 - math.Min(math.Max(dim, 0), 1)
	for row := 0; row*2 < c.h; row++ {
		for col := range c.w {
			style := tcell.StyleDefault.
				Foreground(c.color(col, row*2, k)).
				Background(c.color(col, row*2+1, k))
			s.SetContent(col, row, halfBlock, nil, style)
		}
	}
}
