package shaders

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ThatOtherAndrew/backdrop/internal/draw"
)

func CompileShaderFromSource(name string, source []byte) (*ebiten.Shader, error) {
	shader, err := ebiten.NewShader(source)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s shader: %w", name, err)
	}
	return shader, nil
}

func CompileWash() (*ebiten.Shader, error) {
	return CompileShaderFromSource("wash", WashSource)
}

// WashUniforms maps a gradient in CSS pixels onto the wash shader's
// uniforms in device pixels. Only the first and last stops are used.
func WashUniforms(g draw.Gradient, ratio float64) map[string]any {
	from, to := draw.Transparent, draw.Transparent
	var o0, o1 float64 = 0, 1
	if n := len(g.Stops); n > 0 {
		from, to = g.Stops[0].Color, g.Stops[n-1].Color
		o0, o1 = g.Stops[0].Offset, g.Stops[n-1].Offset
	}
	fx, fy := g.FocusPoint()
	return map[string]any{
		"Center":  []float32{float32(g.X * ratio), float32(g.Y * ratio)},
		"Focus":   []float32{float32(fx * ratio), float32(fy * ratio)},
		"Radii":   []float32{float32(g.Inner * ratio), float32(g.Outer * ratio)},
		"Offsets": []float32{float32(o0), float32(o1)},
		"From":    vec4(from),
		"To":      vec4(to),
	}
}

func vec4(c draw.Color) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A)}
}
