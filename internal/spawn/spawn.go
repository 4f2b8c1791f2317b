package spawn

import (
	"math"
	"math/rand/v2"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/models"
)

type Spawner struct {
	scene    *models.Scene
	settings *config.Settings
	rng      *rand.Rand
}

// New returns a spawner for scene. A nil rng draws from a randomly seeded
// source.
func New(scene *models.Scene, settings *config.Settings, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Spawner{scene: scene, settings: settings, rng: rng}
}

// Count is the particle count for a viewport: one particle per density
// square pixels plus the floor, capped at max_particles.
func Count(width, height float64, s *config.Settings) int {
	area := math.Max(width, 0) * math.Max(height, 0)
	n := int(math.Floor(area/s.Density)) + s.MinParticles
	if n > s.MaxParticles {
		n = s.MaxParticles
	}
	return n
}

// SpawnField fills the scene with a fresh particle collection sized for its
// viewport. The collection is built once and lives for the page's lifetime.
func (s *Spawner) SpawnField() {
	vp := s.scene.Viewport
	colors := s.settings.Colors()
	n := Count(vp.Width, vp.Height, s.settings)

	particles := make([]models.Particle, 0, n)
	for i := range n {
		particles = append(particles, models.Particle{
			X:      s.between(0, vp.Width),
			Y:      s.between(0, vp.Height),
			VX:     s.between(-s.settings.Speed, s.settings.Speed),
			VY:     s.between(-s.settings.Speed, s.settings.Speed),
			Radius: s.between(s.settings.RadiusMin, s.settings.RadiusMax),
			Color:  colors[i%len(colors)],
			Life:   s.rng.Float64(),
		})
	}
	s.scene.Particles = particles
}

func (s *Spawner) between(a, b float64) float64 {
	return a + s.rng.Float64()*(b-a)
}
