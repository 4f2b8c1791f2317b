// Package raster implements draw.Canvas on a gg software context, for
// headless frame rendering.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/ThatOtherAndrew/backdrop/internal/draw"
	"github.com/ThatOtherAndrew/backdrop/internal/logger"
)

// Canvas draws in CSS pixels onto a device-pixel buffer. Coordinates are
// scaled by the ratio passed to Resize.
type Canvas struct {
	ctx   *gg.Context
	ratio float64
}

var _ draw.Canvas = (*Canvas)(nil)

func New() *Canvas {
	return &Canvas{ratio: 1}
}

func (c *Canvas) Resize(width, height int, ratio float64) {
	width, height = max(width, 1), max(height, 1)
	c.ratio = ratio
	if c.ctx == nil {
		c.ctx = gg.NewContext(width, height)
		return
	}
	if err := c.ctx.Resize(width, height); err != nil {
		logger.For("raster").Warn("resize failed", "width", width, "height", height, "error", err)
	}
}

func (c *Canvas) ready() bool { return c.ctx != nil }

func (c *Canvas) Clear() {
	if !c.ready() {
		return
	}
	c.ctx.Clear()
}

func (c *Canvas) FillGradient(g draw.Gradient) {
	if !c.ready() {
		return
	}
	r := c.ratio
	brush := gg.NewRadialGradientBrush(g.X*r, g.Y*r, g.Inner*r, g.Outer*r)
	if g.Focus != nil {
		brush.SetFocus(g.Focus.X*r, g.Focus.Y*r)
	}
	for _, s := range g.Stops {
		brush.AddColorStop(s.Offset, toRGBA(s.Color))
	}
	c.ctx.SetFillBrush(brush)
	c.ctx.DrawRectangle(0, 0, float64(c.ctx.Width()), float64(c.ctx.Height()))
	c.fill()
}

func (c *Canvas) FillCircle(x, y, radius float64, col draw.Color) {
	if !c.ready() {
		return
	}
	r := c.ratio
	setColor(c.ctx, col)
	c.ctx.DrawCircle(x*r, y*r, radius*r)
	c.fill()
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col draw.Color) {
	if !c.ready() {
		return
	}
	r := c.ratio
	setColor(c.ctx, col)
	c.ctx.SetLineWidth(width * r)
	c.ctx.DrawLine(x1*r, y1*r, x2*r, y2*r)
	if err := c.ctx.Stroke(); err != nil {
		logger.For("raster").Debug("stroke failed", "error", err)
	}
}

func (c *Canvas) fill() {
	if err := c.ctx.Fill(); err != nil {
		logger.For("raster").Debug("fill failed", "error", err)
	}
}

// Image returns the current frame, or nil before the first Resize.
func (c *Canvas) Image() image.Image {
	if !c.ready() {
		return nil
	}
	return c.ctx.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	if !c.ready() {
		return fmt.Errorf("canvas has no size")
	}
	if err := c.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (c *Canvas) SavePNG(path string) error {
	if !c.ready() {
		return fmt.Errorf("canvas has no size")
	}
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) Close() error {
	if !c.ready() {
		return nil
	}
	return c.ctx.Close()
}

func setColor(ctx *gg.Context, col draw.Color) {
	ctx.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, col.A)
}

func toRGBA(col draw.Color) gg.RGBA {
	return gg.RGBA2(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, col.A)
}
