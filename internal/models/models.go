package models

import (
	"fmt"
	"strconv"
	"strings"
)

// PointerAway is the sentinel coordinate used while the pointer is outside
// the viewport. It is far enough from any drawable point that the pointer
// force radius never reaches a particle.
const PointerAway = -9999

type Color struct {
	R, G, B uint8
}

// ParseHex accepts "#rgb" and "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  Color
	Life   float64
}

type Pointer struct {
	X, Y float64
	Down bool
}

func NewPointer() Pointer {
	return Pointer{X: PointerAway, Y: PointerAway}
}

func (p *Pointer) Move(x, y float64) {
	p.X, p.Y = x, y
}

func (p *Pointer) Leave() {
	p.X, p.Y = PointerAway, PointerAway
}

// Viewport is measured in CSS pixels; Ratio is the device pixel ratio as
// reported by the host, before clamping.
type Viewport struct {
	Width, Height float64
	Ratio         float64
}

func (v Viewport) Area() float64 {
	return v.Width * v.Height
}

// Scene is the state owned by one background animation loop.
type Scene struct {
	Viewport  Viewport
	Particles []Particle
	Pointer   Pointer

	// Start and Last are host timestamps in milliseconds. Last is negative
	// until the first frame has run.
	Start float64
	Last  float64
}

func NewScene(vp Viewport) *Scene {
	return &Scene{
		Viewport: vp,
		Pointer:  NewPointer(),
		Start:    -1,
		Last:     -1,
	}
}
