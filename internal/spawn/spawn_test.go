package spawn

import (
	"math/rand/v2"
	"testing"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/models"
)

func TestCount(t *testing.T) {
	s := config.Default()
	tests := []struct {
		name          string
		width, height float64
		want          int
	}{
		{"full hd", 1920, 1080, 149},
		{"empty", 0, 0, 40},
		{"tiny", 10, 10, 40},
		{"phone", 390, 844, 57},
		{"capped", 7680, 4320, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.width, tt.height, s); got != tt.want {
				t.Errorf("Count(%v, %v) = %d, want %d", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestCountMonotonic(t *testing.T) {
	s := config.Default()
	prev := 0
	for w := 0.0; w <= 6000; w += 37 {
		n := Count(w, w*0.6, s)
		if n < prev {
			t.Fatalf("count decreased from %d to %d at width %v", prev, n, w)
		}
		if n < s.MinParticles {
			t.Fatalf("count %d below floor %d", n, s.MinParticles)
		}
		prev = n
	}
}

func TestSpawnField(t *testing.T) {
	settings := config.Default()
	scene := models.NewScene(models.Viewport{Width: 800, Height: 600, Ratio: 1})

	New(scene, settings, rand.New(rand.NewPCG(1, 2))).SpawnField()

	if want := Count(800, 600, settings); len(scene.Particles) != want {
		t.Fatalf("expected %d particles, got %d", want, len(scene.Particles))
	}

	palette := settings.Colors()
	for i, p := range scene.Particles {
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
			t.Errorf("particle %d outside viewport: (%v, %v)", i, p.X, p.Y)
		}
		if p.VX < -settings.Speed || p.VX > settings.Speed || p.VY < -settings.Speed || p.VY > settings.Speed {
			t.Errorf("particle %d velocity out of range: (%v, %v)", i, p.VX, p.VY)
		}
		if p.Radius < settings.RadiusMin || p.Radius > settings.RadiusMax {
			t.Errorf("particle %d radius %v out of range", i, p.Radius)
		}
		if p.Color != palette[i%len(palette)] {
			t.Errorf("particle %d color %v, want round-robin %v", i, p.Color, palette[i%len(palette)])
		}
	}
}
