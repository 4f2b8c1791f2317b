// Package drawtest provides a draw.Canvas that records what it is asked to
// paint.
package drawtest

import "github.com/ThatOtherAndrew/backdrop/internal/draw"

type Circle struct {
	X, Y, R float64
	Color   draw.Color
}

type Line struct {
	X1, Y1, X2, Y2, Width float64
	Color                 draw.Color
}

type Recorder struct {
	Width, Height int
	Ratio         float64

	Resizes   int
	Clears    int
	Gradients []draw.Gradient
	Circles   []Circle
	Lines     []Line
}

func (r *Recorder) Resize(width, height int, ratio float64) {
	r.Width, r.Height, r.Ratio = width, height, ratio
	r.Resizes++
}

// Clear forgets everything painted since the previous Clear.
func (r *Recorder) Clear() {
	r.Clears++
	r.Gradients = nil
	r.Circles = nil
	r.Lines = nil
}

func (r *Recorder) FillGradient(g draw.Gradient) {
	r.Gradients = append(r.Gradients, g)
}

func (r *Recorder) FillCircle(x, y, radius float64, c draw.Color) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, R: radius, Color: c})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c draw.Color) {
	r.Lines = append(r.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}
