package raster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ThatOtherAndrew/backdrop/internal/backdrop"
	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/host"
	"github.com/ThatOtherAndrew/backdrop/internal/logger"
)

type RenderOptions struct {
	// Viewport in CSS pixels.
	Width, Height float64
	Ratio         float64
	Frames        int
	Interval      time.Duration
	Reduced       bool
	Dir           string
	// Progress is called after each frame is written.
	Progress      func(done int)
}

// Render runs the background on a synchronous host and writes one PNG per
// frame to Dir. With reduced motion only the static frame is written.
func Render(s *config.Settings, o RenderOptions) ([]string, error) {
	if o.Frames < 1 {
		return nil, errors.New("frames must be at least 1")
	}
	if err := os.MkdirAll(o.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	start := time.Unix(0, 0)
	h := host.NewDriven(o.Width, o.Height, o.Ratio, o.Reduced, start)
	c := New()
	defer c.Close()

	a := backdrop.Start(h, c, s)
	frames := o.Frames
	if o.Reduced {
		frames = 1
	}

	paths := make([]string, 0, frames)
	for i := range frames {
		h.Tick(start.Add(time.Duration(i) * o.Interval))
		path := filepath.Join(o.Dir, fmt.Sprintf("frame-%04d.png", i))
		if err := c.SavePNG(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		if o.Progress != nil {
			o.Progress(i + 1)
		}
	}

	logger.For("raster").Info("rendered frames", "count", len(paths), "dir", o.Dir,
		"buffer_w", a.Buffer().Width, "buffer_h", a.Buffer().Height)
	return paths, nil
}
