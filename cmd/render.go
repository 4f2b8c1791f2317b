package cmd

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/raster"
)

var renderFlags struct {
	variant       string
	width, height float64
	ratio         float64
	frames        int
	interval      time.Duration
	reduced       bool
	out           string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render background frames to PNG files",
	RunE:  render,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	f := renderCmd.Flags()
	f.StringVar(&renderFlags.variant, "variant", "", "background variant: particles, grid or blobs (default from settings)")
	f.Float64Var(&renderFlags.width, "width", 1280, "viewport width in CSS pixels")
	f.Float64Var(&renderFlags.height, "height", 720, "viewport height in CSS pixels")
	f.Float64Var(&renderFlags.ratio, "ratio", 1, "device pixel ratio")
	f.IntVar(&renderFlags.frames, "frames", 60, "number of frames")
	f.DurationVar(&renderFlags.interval, "interval", time.Second/60, "time between frames")
	f.BoolVar(&renderFlags.reduced, "reduced-motion", false, "render the single static frame")
	f.StringVarP(&renderFlags.out, "out", "o", "frames", "output directory")
	renderCmd.RegisterFlagCompletionFunc("variant", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(config.VariantParticles), string(config.VariantGrid), string(config.VariantBlobs)}, cobra.ShellCompDirectiveNoFileComp
	})
}

func render(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if renderFlags.variant != "" {
		settings.Variant = config.Variant(renderFlags.variant)
		settings.Normalize()
	}

	total := renderFlags.frames
	if renderFlags.reduced {
		total = 1
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Rendering "+string(settings.Variant)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	paths, err := raster.Render(settings, raster.RenderOptions{
		Width:    renderFlags.width,
		Height:   renderFlags.height,
		Ratio:    renderFlags.ratio,
		Frames:   renderFlags.frames,
		Interval: renderFlags.interval,
		Reduced:  renderFlags.reduced,
		Dir:      renderFlags.out,
		Progress: func(done int) { _ = bar.Set(done) },
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d frame(s) to %s\n", len(paths), renderFlags.out)
	return nil
}
