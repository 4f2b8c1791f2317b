//go:build js && wasm

package web

import (
	"fmt"
	"math"
	"syscall/js"

	"github.com/ThatOtherAndrew/backdrop/internal/draw"
)

const CanvasID = "bg-canvas"

// Canvas draws on a canvas element through its 2D context. The context
// transform maps CSS pixels onto the device-pixel buffer.
type Canvas struct {
	el, ctx js.Value
	w, h    float64
}

var _ draw.Canvas = (*Canvas)(nil)

// FindCanvas returns the background canvas, or nil when the page has none
// or it has no 2D context.
func FindCanvas() *Canvas {
	el := js.Global().Get("document").Call("getElementById", CanvasID)
	if el.IsNull() || el.IsUndefined() {
		return nil
	}
	ctx := el.Call("getContext", "2d", map[string]any{"alpha": true})
	if ctx.IsNull() {
		return nil
	}
	return &Canvas{el: el, ctx: ctx}
}

// Data reads a data-* attribute of the canvas element.
func (c *Canvas) Data(name string) string {
	v := c.el.Get("dataset").Get(name)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (c *Canvas) Resize(width, height int, ratio float64) {
	c.el.Set("width", width)
	c.el.Set("height", height)
	c.w, c.h = float64(width)/ratio, float64(height)/ratio
	style := c.el.Get("style")
	style.Set("width", fmt.Sprintf("%gpx", math.Round(c.w)))
	style.Set("height", fmt.Sprintf("%gpx", math.Round(c.h)))
	c.ctx.Call("setTransform", ratio, 0, 0, ratio, 0, 0)
}

func (c *Canvas) Clear() {
	c.ctx.Call("clearRect", 0, 0, c.w, c.h)
}

func css(col draw.Color) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", col.R, col.G, col.B, col.A)
}

func (c *Canvas) FillGradient(g draw.Gradient) {
	fx, fy := g.FocusPoint()
	grad := c.ctx.Call("createRadialGradient", fx, fy, g.Inner, g.X, g.Y, g.Outer)
	for _, s := range g.Stops {
		grad.Call("addColorStop", s.Offset, css(s.Color))
	}
	c.ctx.Set("fillStyle", grad)
	c.ctx.Call("fillRect", 0, 0, c.w, c.h)
}

func (c *Canvas) FillCircle(x, y, r float64, col draw.Color) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	c.ctx.Set("fillStyle", css(col))
	c.ctx.Call("fill")
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col draw.Color) {
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x1, y1)
	c.ctx.Call("lineTo", x2, y2)
	c.ctx.Set("strokeStyle", css(col))
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("stroke")
}
