package update

import (
	"math"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/host"
	"github.com/ThatOtherAndrew/backdrop/internal/models"
)

// referenceFrameMs is the frame length the damping factor is expressed in.
const referenceFrameMs = 1000.0 / 60.0

type Updater struct {
	scene    *models.Scene
	settings *config.Settings
}

func New(scene *models.Scene, settings *config.Settings) *Updater {
	return &Updater{scene: scene, settings: settings}
}

// Delta records now as the latest frame time and returns the elapsed
// milliseconds since the previous frame, clamped to [0, max_frame_ms] so
// that a suspended tab does not make the field jump on resume.
func (u *Updater) Delta(now float64) float64 {
	if u.scene.Start < 0 {
		u.scene.Start = now
	}
	if u.scene.Last < 0 {
		u.scene.Last = now
		return 0
	}
	dt := now - u.scene.Last
	u.scene.Last = now
	return math.Min(math.Max(dt, 0), u.settings.MaxFrameMs)
}

// Elapsed is the time since the first frame in milliseconds.
func (u *Updater) Elapsed() float64 {
	if u.scene.Start < 0 {
		return 0
	}
	return u.scene.Last - u.scene.Start
}

func (u *Updater) UpdatePointer(ev host.PointerEvent) {
	p := &u.scene.Pointer
	switch ev.Kind {
	case host.PointerMove:
		p.Move(ev.X, ev.Y)
	case host.PointerLeave:
		p.Leave()
		p.Down = false
	case host.PointerDown:
		p.Down = true
	case host.PointerUp:
		p.Down = false
	}
}

func (u *Updater) UpdateParticles(dt float64) {
	for i := range u.scene.Particles {
		u.Step(&u.scene.Particles[i], dt)
	}
}

// Step advances one particle by dt milliseconds: integrate, wrap across the
// viewport edges, apply the pointer force, damp and clamp the speed.
func (u *Updater) Step(p *models.Particle, dt float64) {
	s := u.settings
	vp := u.scene.Viewport

	p.X += p.VX * dt * s.StepScale
	p.Y += p.VY * dt * s.StepScale

	m := s.WrapMargin
	if p.X < -m {
		p.X = vp.Width + m
	} else if p.X > vp.Width+m {
		p.X = -m
	}
	if p.Y < -m {
		p.Y = vp.Height + m
	} else if p.Y > vp.Height+m {
		p.Y = -m
	}

	ptr := u.scene.Pointer
	dx, dy := p.X-ptr.X, p.Y-ptr.Y
	d2 := dx*dx + dy*dy
	if d2 < s.PointerRadius*s.PointerRadius {
		d := math.Sqrt(d2)
		if d == 0 {
			d = 1
		}
		force := s.PointerForce
		if ptr.Down {
			force = -force
		}
		f := force * (1 - d/s.PointerRadius)
		p.VX += dx / d * f * s.PointerGain
		p.VY += dy / d * f * s.PointerGain
	}

	if dt > 0 {
		k := math.Pow(s.Damping, dt/referenceFrameMs)
		p.VX *= k
		p.VY *= k
	}

	if speed := math.Hypot(p.VX, p.VY); speed > s.MaxSpeed {
		k := s.MaxSpeed / speed
		p.VX *= k
		p.VY *= k
	}
}
