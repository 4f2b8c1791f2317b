// Package backdrop runs the animated background surface: it sizes the
// drawing buffer to the viewport, owns the particle scene and paints one
// frame per host repaint.
package backdrop

import (
	"math"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/draw"
	"github.com/ThatOtherAndrew/backdrop/internal/host"
	"github.com/ThatOtherAndrew/backdrop/internal/logger"
	"github.com/ThatOtherAndrew/backdrop/internal/models"
	"github.com/ThatOtherAndrew/backdrop/internal/spawn"
	"github.com/ThatOtherAndrew/backdrop/internal/update"
)

type Buffer struct {
	Width, Height int
	Ratio         float64
}

// ClampRatio treats a missing or nonsensical device ratio as 1 and caps it
// at max.
func ClampRatio(ratio, max float64) float64 {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	return math.Min(ratio, max)
}

func BufferSize(width, height, ratio, max float64) Buffer {
	r := ClampRatio(ratio, max)
	return Buffer{
		Width:  int(math.Floor(math.Max(width, 0) * r)),
		Height: int(math.Floor(math.Max(height, 0) * r)),
		Ratio:  r,
	}
}

type Animator struct {
	host     host.Host
	canvas   draw.Canvas
	settings *config.Settings

	scene   *models.Scene
	updater *update.Updater
	painter draw.Painter

	buffer Buffer
	static bool
	frames int
}

// Options tweak construction, mostly for tests and headless rendering.
type Options struct {
	// Spawner overrides the random particle field.
	Spawner func(*models.Scene, *config.Settings) *spawn.Spawner
}

// Start attaches the background to a host and canvas. It returns nil,
// doing nothing, when either is missing. With reduced motion enabled a
// single static frame is painted and no frame is ever scheduled.
func Start(h host.Host, c draw.Canvas, s *config.Settings, opts ...Options) *Animator {
	if h == nil || c == nil {
		return nil
	}
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	w, ht := h.Size()
	scene := models.NewScene(models.Viewport{Width: w, Height: ht, Ratio: h.PixelRatio()})
	a := &Animator{
		host:     h,
		canvas:   c,
		settings: s,
		scene:    scene,
		updater:  update.New(scene, s),
		static:   h.ReducedMotion(),
	}

	switch s.Variant {
	case config.VariantGrid:
		a.painter = draw.NewGrid(scene, s)
	case config.VariantBlobs:
		a.painter = draw.NewBlobs(scene)
	default:
		spawner := spawn.New(scene, s, nil)
		if o.Spawner != nil {
			spawner = o.Spawner(scene, s)
		}
		spawner.SpawnField()
		a.painter = draw.NewParticles(scene, s)
	}

	a.resize()
	h.OnResize(a.resize)

	log := logger.For("backdrop")
	if a.static {
		log.Debug("reduced motion, painting a single frame", "variant", s.Variant)
		return a
	}

	log.Debug("starting", "variant", s.Variant, "particles", len(scene.Particles),
		"buffer_w", a.buffer.Width, "buffer_h", a.buffer.Height)
	if s.Variant == config.VariantParticles {
		h.OnPointer(a.updater.UpdatePointer)
	}
	h.RequestFrame(a.frame)
	return a
}

func (a *Animator) resize() {
	w, h := a.host.Size()
	a.scene.Viewport = models.Viewport{Width: w, Height: h, Ratio: a.host.PixelRatio()}
	a.buffer = BufferSize(w, h, a.scene.Viewport.Ratio, a.settings.MaxPixelRatio)
	a.canvas.Resize(a.buffer.Width, a.buffer.Height, a.buffer.Ratio)
	if a.static && a.painter != nil {
		a.painter.Paint(a.canvas, 0)
	}
}

func (a *Animator) frame(now float64) {
	dt := a.updater.Delta(now)
	if a.settings.Variant == config.VariantParticles {
		a.updater.UpdateParticles(dt)
	}
	a.painter.Paint(a.canvas, a.updater.Elapsed())
	a.frames++
	a.host.RequestFrame(a.frame)
}

func (a *Animator) Scene() *models.Scene { return a.scene }
func (a *Animator) Buffer() Buffer       { return a.buffer }
func (a *Animator) Frames() int          { return a.frames }
