package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/backdrop/internal/desktop"
	"github.com/ThatOtherAndrew/backdrop/internal/execute"
)

var previewFlags struct {
	width, height int
	reduced       bool
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the background in a desktop window",
	Long: `Show the background in a desktop window. The arrow keys walk through
the configured projects, a click opens the current one.`,
	RunE: preview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVar(&previewFlags.width, "width", 1280, "window width")
	previewCmd.Flags().IntVar(&previewFlags.height, "height", 720, "window height")
	previewCmd.Flags().BoolVar(&previewFlags.reduced, "reduced-motion", false, "show a single static frame")
}

func preview(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	return desktop.Run(settings, desktop.Options{
		Width:   previewFlags.width,
		Height:  previewFlags.height,
		Reduced: previewFlags.reduced,
		Opener:  execute.Open,
	})
}
