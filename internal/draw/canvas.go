package draw

import (
	"math"

	"github.com/ThatOtherAndrew/backdrop/internal/models"
)

// Color is an sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

func RGBA(c models.Color, alpha float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

var Transparent = Color{}

type Stop struct {
	Offset float64
	Color  Color
}

// Point is a position in CSS pixels.
type Point struct {
	X, Y float64
}

// Gradient is a radial gradient from a circle of radius Inner around Focus
// to a circle of radius Outer around (X, Y), the way a 2D canvas draws
// one. A nil Focus puts both circles on (X, Y). Offset 0 sits on the inner
// circle and offset 1 on the outer one; the end colors extend past both.
type Gradient struct {
	X, Y         float64
	Focus        *Point
	Inner, Outer float64
	Stops        []Stop
}

// FocusPoint is the centre of the inner circle.
func (g Gradient) FocusPoint() (float64, float64) {
	if g.Focus == nil {
		return g.X, g.Y
	}
	return g.Focus.X, g.Focus.Y
}

// Param is the unclamped gradient position of a point: the largest w for
// which the circle interpolated between the inner and outer circles at w
// passes through it with a radius of at least zero. ok is false where no
// such circle exists and nothing is painted.
func (g Gradient) Param(x, y float64) (w float64, ok bool) {
	fx, fy := g.FocusPoint()
	cdx, cdy := g.X-fx, g.Y-fy
	dr := g.Outer - g.Inner
	if cdx == 0 && cdy == 0 {
		if dr <= 0 {
			return 0, true
		}
		return (math.Hypot(x-g.X, y-g.Y) - g.Inner) / dr, true
	}

	// |p - f - w*cd| = Inner + w*dr, squared: a*w^2 - 2*b*w + c = 0.
	pdx, pdy := x-fx, y-fy
	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.Inner*dr
	c := pdx*pdx + pdy*pdy - g.Inner*g.Inner
	valid := func(w float64) bool { return g.Inner+w*dr >= 0 }

	if math.Abs(a) <= 1e-9*(cdx*cdx+cdy*cdy+dr*dr) {
		if b == 0 {
			return 0, false
		}
		w = c / (2 * b)
		return w, valid(w)
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	hi, lo := (b+sq)/a, (b-sq)/a
	if hi < lo {
		hi, lo = lo, hi
	}
	if valid(hi) {
		return hi, true
	}
	if valid(lo) {
		return lo, true
	}
	return 0, false
}

// At evaluates the gradient at a point.
func (g Gradient) At(x, y float64) Color {
	if len(g.Stops) == 0 {
		return Transparent
	}
	t, ok := g.Param(x, y)
	if !ok {
		return Transparent
	}
	t = math.Min(math.Max(t, 0), 1)

	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerp(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

func lerp(a, b Color, t float64) Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return Color{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: a.A + (b.A-a.A)*t,
	}
}

// Canvas is the 2D surface a frame is painted on. Coordinates are CSS
// pixels; implementations apply the pixel ratio given to Resize.
type Canvas interface {
	// Resize sets the backing buffer to width x height device pixels.
	Resize(width, height int, ratio float64)
	Clear()
	// FillGradient covers the whole surface with g.
	FillGradient(g Gradient)
	FillCircle(x, y, r float64, c Color)
	StrokeLine(x1, y1, x2, y2, width float64, c Color)
}

// Painter draws one frame of a background variant.
type Painter interface {
	Paint(c Canvas, elapsed float64)
}
