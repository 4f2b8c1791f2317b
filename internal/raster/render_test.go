package raster

import (
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		variant config.Variant
		reduced bool
		want    int
	}{
		{"particles", config.VariantParticles, false, 3},
		{"grid", config.VariantGrid, false, 3},
		{"blobs", config.VariantBlobs, false, 3},
		{"reduced motion", config.VariantParticles, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.Default()
			s.Variant = tt.variant
			var progress []int

			paths, err := Render(s, RenderOptions{
				Width:    64,
				Height:   48,
				Ratio:    2,
				Frames:   3,
				Interval: 16 * time.Millisecond,
				Reduced:  tt.reduced,
				Dir:      t.TempDir(),
				Progress: func(done int) { progress = append(progress, done) },
			})
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if len(paths) != tt.want || len(progress) != tt.want {
				t.Fatalf("wrote %d frames, progress %v, want %d", len(paths), progress, tt.want)
			}

			f, err := os.Open(paths[len(paths)-1])
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
				t.Errorf("frame bounds %v, want 128x96", b)
			}
		})
	}
}

func TestRenderNeedsFrames(t *testing.T) {
	if _, err := Render(config.Default(), RenderOptions{Width: 8, Height: 8, Ratio: 1, Dir: t.TempDir()}); err == nil {
		t.Error("expected an error for zero frames")
	}
}
