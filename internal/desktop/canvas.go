package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ThatOtherAndrew/backdrop/internal/draw"
	"github.com/ThatOtherAndrew/backdrop/internal/shaders"
)

// Canvas implements draw.Canvas on an offscreen ebiten image. Circles and
// lines go through the vector package, gradients through the wash shader.
type Canvas struct {
	img   *ebiten.Image
	wash  *ebiten.Shader
	op    *ebiten.DrawRectShaderOptions
	ratio float64
}

var _ draw.Canvas = (*Canvas)(nil)

func NewCanvas(wash *ebiten.Shader) *Canvas {
	return &Canvas{wash: wash, op: &ebiten.DrawRectShaderOptions{}, ratio: 1}
}

func (c *Canvas) Resize(width, height int, ratio float64) {
	width, height = max(width, 1), max(height, 1)
	c.ratio = ratio
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(width, height)
}

func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *Canvas) FillGradient(g draw.Gradient) {
	if c.img == nil || c.wash == nil {
		return
	}
	b := c.img.Bounds()
	c.op.Uniforms = shaders.WashUniforms(g, c.ratio)
	c.img.DrawRectShader(b.Dx(), b.Dy(), c.wash, c.op)
}

func (c *Canvas) FillCircle(x, y, radius float64, col draw.Color) {
	if c.img == nil {
		return
	}
	r := c.ratio
	vector.DrawFilledCircle(c.img, float32(x*r), float32(y*r), float32(radius*r), nrgba(col), true)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col draw.Color) {
	if c.img == nil {
		return
	}
	r := c.ratio
	vector.StrokeLine(c.img, float32(x1*r), float32(y1*r), float32(x2*r), float32(y2*r), float32(width*r), nrgba(col), true)
}

func nrgba(c draw.Color) color.NRGBA {
	a := min(max(c.A, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}
