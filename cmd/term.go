package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/backdrop/internal/execute"
	"github.com/ThatOtherAndrew/backdrop/internal/term"
)

var termFlags struct {
	fps     int
	reduced bool
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Show the background in the terminal",
	RunE:  runTerm,
}

func init() {
	rootCmd.AddCommand(termCmd)

	termCmd.Flags().IntVar(&termFlags.fps, "fps", term.DefaultFPS, "frames per second")
	termCmd.Flags().BoolVar(&termFlags.reduced, "reduced-motion", false, "show a single static frame")
}

func runTerm(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	return term.Run(cmd.Context(), settings, term.Options{
		Reduced: termFlags.reduced,
		Opener:  execute.Open,
		FPS:     termFlags.fps,
	})
}
