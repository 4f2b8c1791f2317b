package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
	"github.com/ThatOtherAndrew/backdrop/internal/logger"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "backdrop",
	Short: "Animated portfolio background and page behaviors",
	Long: `backdrop renders the animated canvas background of the portfolio site,
previews it on the desktop or in a terminal, and serves the site with its
wasm bundle during development.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (default ~/.config/backdrop/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadSettings reads the settings file named by --config, or the default
// one.
func loadSettings() (*config.Settings, error) {
	path := configPath
	if path == "" {
		p, err := config.GetPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}
	return config.Load(path)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
