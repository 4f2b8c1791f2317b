package draw

import (
	"math"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/models"
)

type Particles struct {
	scene    *models.Scene
	settings *config.Settings
}

func NewParticles(scene *models.Scene, settings *config.Settings) *Particles {
	return &Particles{scene: scene, settings: settings}
}

// LinkOpacity falls linearly from 1 at distance 0 to 0 at maxDist.
func LinkOpacity(d, maxDist float64) float64 {
	if d >= maxDist || maxDist <= 0 {
		return 0
	}
	return 1 - d/maxDist
}

// Wash is the green glow behind the particle field. Its bright focus
// drifts slowly while the outer circle stays on the middle of the viewport.
func Wash(elapsed, w, h float64) Gradient {
	return Gradient{
		X: w / 2,
		Y: h / 2,
		Focus: &Point{
			X: (math.Sin(elapsed*0.0002) + 1) / 2 * w,
			Y: (math.Cos(elapsed*0.00025) + 1) / 2 * h,
		},
		Inner: 50,
		Outer: math.Max(w, h),
		Stops: []Stop{
			{Offset: 0, Color: Color{R: 0, G: 255, B: 136, A: 0.06}},
			{Offset: 1, Color: Transparent},
		},
	}
}

func (p *Particles) Paint(c Canvas, elapsed float64) {
	vp := p.scene.Viewport
	s := p.settings

	c.Clear()
	c.FillGradient(Wash(elapsed, vp.Width, vp.Height))

	link := s.LinkRGB()
	particles := p.scene.Particles
	for i := range particles {
		a := &particles[i]
		c.FillCircle(a.X, a.Y, a.Radius, RGBA(a.Color, s.ParticleAlpha))

		end := len(particles)
		if s.NeighborWindow > 0 && i+s.NeighborWindow < end {
			end = i + s.NeighborWindow
		}
		for j := i + 1; j < end; j++ {
			b := &particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			op := LinkOpacity(d, s.LinkDistance)
			if op <= 0 {
				continue
			}
			c.StrokeLine(a.X, a.Y, b.X, b.Y, 1, RGBA(link, op*s.LinkAlpha))
		}
	}
}
