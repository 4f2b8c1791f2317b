package config

import (
	"math"
	"reflect"
	"strings"

	"github.com/ThatOtherAndrew/backdrop/internal/logger"
	"github.com/ThatOtherAndrew/backdrop/internal/models"
)

type Variant string

const (
	VariantParticles Variant = "particles"
	VariantGrid      Variant = "grid"
	VariantBlobs     Variant = "blobs"
)

type Settings struct {
	Variant       Variant `yaml:"variant" koanf:"variant"`
	MaxPixelRatio float64 `yaml:"max_pixel_ratio" koanf:"max_pixel_ratio"`

	Density      float64  `yaml:"density" koanf:"density"`
	MinParticles int      `yaml:"min_particles" koanf:"min_particles"`
	MaxParticles int      `yaml:"max_particles" koanf:"max_particles"`
	Speed        float64  `yaml:"speed" koanf:"speed"`
	RadiusMin    float64  `yaml:"radius_min" koanf:"radius_min"`
	RadiusMax    float64  `yaml:"radius_max" koanf:"radius_max"`
	Palette      []string `yaml:"palette" koanf:"palette"`

	StepScale     float64 `yaml:"step_scale" koanf:"step_scale"`
	WrapMargin    float64 `yaml:"wrap_margin" koanf:"wrap_margin"`
	PointerRadius float64 `yaml:"pointer_radius" koanf:"pointer_radius"`
	PointerForce  float64 `yaml:"pointer_force" koanf:"pointer_force"`
	PointerGain   float64 `yaml:"pointer_gain" koanf:"pointer_gain"`
	Damping       float64 `yaml:"damping" koanf:"damping"`
	MaxSpeed      float64 `yaml:"max_speed" koanf:"max_speed"`
	MaxFrameMs    float64 `yaml:"max_frame_ms" koanf:"max_frame_ms"`

	ParticleAlpha  float64 `yaml:"particle_alpha" koanf:"particle_alpha"`
	LinkDistance   float64 `yaml:"link_distance" koanf:"link_distance"`
	LinkAlpha      float64 `yaml:"link_alpha" koanf:"link_alpha"`
	LinkColor      string  `yaml:"link_color" koanf:"link_color"`
	NeighborWindow int     `yaml:"neighbor_window" koanf:"neighbor_window"`

	Grid       Grid       `yaml:"grid" koanf:"grid"`
	Transition Transition `yaml:"transition" koanf:"transition"`
	Site       Site       `yaml:"site" koanf:"site"`
	Projects   []string   `yaml:"projects" koanf:"projects"`
}

type Grid struct {
	CoarseSpacing float64 `yaml:"coarse_spacing" koanf:"coarse_spacing"`
	FineSpacing   float64 `yaml:"fine_spacing" koanf:"fine_spacing"`
	CoarseSpeed   float64 `yaml:"coarse_speed" koanf:"coarse_speed"`
	FineSpeed     float64 `yaml:"fine_speed" koanf:"fine_speed"`
	Nodes         int     `yaml:"nodes" koanf:"nodes"`
	LineColor     string  `yaml:"line_color" koanf:"line_color"`
}

type Transition struct {
	ActiveClass string  `yaml:"active_class" koanf:"active_class"`
	DurationMs  float64 `yaml:"duration_ms" koanf:"duration_ms"`
}

type Site struct {
	Dir  string `yaml:"dir" koanf:"dir"`
	Port int    `yaml:"port" koanf:"port"`
}

func Default() *Settings {
	return &Settings{
		Variant:       VariantParticles,
		MaxPixelRatio: 2,

		Density:      19000,
		MinParticles: 40,
		MaxParticles: 400,
		Speed:        0.3,
		RadiusMin:    1.2,
		RadiusMax:    2.6,
		Palette:      []string{"#00ff88", "#00ccff", "#a0fff0", "#7fffd4"},

		StepScale:     0.06,
		WrapMargin:    5,
		PointerRadius: 140,
		PointerForce:  0.9,
		PointerGain:   0.08,
		Damping:       0.995,
		MaxSpeed:      1.5,
		MaxFrameMs:    33,

		ParticleAlpha:  0.75,
		LinkDistance:   95,
		LinkAlpha:      0.25,
		LinkColor:      "#9bfcd8",
		NeighborWindow: 20,

		Grid: Grid{
			CoarseSpacing: 80,
			FineSpacing:   20,
			CoarseSpeed:   0.012,
			FineSpeed:     0.006,
			Nodes:         12,
			LineColor:     "#00ff88",
		},
		Transition: Transition{
			ActiveClass: "active",
			DurationMs:  800,
		},
		Site: Site{
			Dir:  "site",
			Port: 8080,
		},
	}
}

// Colors returns the parsed palette. Entries that fail to parse are skipped.
func (s *Settings) Colors() []models.Color {
	colors := make([]models.Color, 0, len(s.Palette))
	for _, p := range s.Palette {
		if c, err := models.ParseHex(p); err == nil {
			colors = append(colors, c)
		}
	}
	return colors
}

func (s *Settings) LinkRGB() models.Color {
	if c, err := models.ParseHex(s.LinkColor); err == nil {
		return c
	}
	return models.MustHex(Default().LinkColor)
}

func (s *Settings) GridRGB() models.Color {
	if c, err := models.ParseHex(s.Grid.LineColor); err == nil {
		return c
	}
	return models.MustHex(Default().Grid.LineColor)
}

// Normalize replaces every out-of-range value with its default, logging a
// warning for each one.
func (s *Settings) Normalize() {
	d := Default()
	log := logger.For("config")

	positive := func(name string, v *float64, def float64) {
		if *v <= 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
			log.Warn("invalid setting, using default", "key", name, "value", *v, "default", def)
			*v = def
		}
	}
	unit := func(name string, v *float64, def float64) {
		if *v < 0 || *v > 1 || math.IsNaN(*v) {
			log.Warn("setting must be between 0.0 and 1.0, using default", "key", name, "value", *v, "default", def)
			*v = def
		}
	}

	switch s.Variant {
	case VariantParticles, VariantGrid, VariantBlobs:
	default:
		log.Warn("unknown variant, using default", "value", s.Variant, "default", d.Variant)
		s.Variant = d.Variant
	}

	if !(s.MaxPixelRatio >= 1) || math.IsInf(s.MaxPixelRatio, 0) {
		log.Warn("max_pixel_ratio below 1 or not finite, using default", "value", s.MaxPixelRatio, "default", d.MaxPixelRatio)
		s.MaxPixelRatio = d.MaxPixelRatio
	}
	positive("density", &s.Density, d.Density)
	if s.MinParticles < 1 {
		log.Warn("invalid setting, using default", "key", "min_particles", "value", s.MinParticles, "default", d.MinParticles)
		s.MinParticles = d.MinParticles
	}
	if s.MaxParticles < s.MinParticles {
		log.Warn("max_particles below min_particles, raising it", "value", s.MaxParticles, "min_particles", s.MinParticles)
		s.MaxParticles = s.MinParticles
	}
	positive("speed", &s.Speed, d.Speed)
	positive("radius_min", &s.RadiusMin, d.RadiusMin)
	positive("radius_max", &s.RadiusMax, d.RadiusMax)
	if s.RadiusMax < s.RadiusMin {
		s.RadiusMin, s.RadiusMax = s.RadiusMax, s.RadiusMin
	}
	if len(s.Colors()) == 0 {
		log.Warn("palette has no valid colors, using default", "value", s.Palette)
		s.Palette = d.Palette
	}

	positive("step_scale", &s.StepScale, d.StepScale)
	if s.WrapMargin < 0 {
		s.WrapMargin = d.WrapMargin
	}
	positive("pointer_radius", &s.PointerRadius, d.PointerRadius)
	positive("pointer_gain", &s.PointerGain, d.PointerGain)
	if s.Damping <= 0 || s.Damping >= 1 {
		log.Warn("damping must be in (0, 1), using default", "value", s.Damping, "default", d.Damping)
		s.Damping = d.Damping
	}
	positive("max_speed", &s.MaxSpeed, d.MaxSpeed)
	positive("max_frame_ms", &s.MaxFrameMs, d.MaxFrameMs)

	unit("particle_alpha", &s.ParticleAlpha, d.ParticleAlpha)
	unit("link_alpha", &s.LinkAlpha, d.LinkAlpha)
	positive("link_distance", &s.LinkDistance, d.LinkDistance)
	if s.NeighborWindow < 0 {
		s.NeighborWindow = d.NeighborWindow
	}

	positive("grid.coarse_spacing", &s.Grid.CoarseSpacing, d.Grid.CoarseSpacing)
	positive("grid.fine_spacing", &s.Grid.FineSpacing, d.Grid.FineSpacing)
	if s.Grid.Nodes < 0 {
		s.Grid.Nodes = d.Grid.Nodes
	}
	if s.Transition.ActiveClass == "" {
		s.Transition.ActiveClass = d.Transition.ActiveClass
	}
	positive("transition.duration_ms", &s.Transition.DurationMs, d.Transition.DurationMs)
	if s.Site.Port <= 0 || s.Site.Port > 65535 {
		s.Site.Port = d.Site.Port
	}
}

// KnownKeys lists every dotted settings key, derived from the koanf tags.
func KnownKeys() map[string]bool {
	keys := make(map[string]bool)
	collectKeys(reflect.TypeOf(Settings{}), "", keys)
	return keys
}

func collectKeys(t reflect.Type, prefix string, keys map[string]bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := strings.Split(field.Tag.Get("koanf"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}
		name := prefix + tag
		if field.Type.Kind() == reflect.Struct {
			collectKeys(field.Type, name+".", keys)
			continue
		}
		keys[name] = true
	}
}
