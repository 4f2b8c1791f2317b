package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ThatOtherAndrew/backdrop/internal/config"
)

var configFlags struct {
	path bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as YAML",
	RunE:  printConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configFlags.path, "path", false, "print the settings file path instead")
}

func printConfig(cmd *cobra.Command, args []string) error {
	if configFlags.path {
		path := configPath
		if path == "" {
			p, err := config.GetPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			path = p
		}
		fmt.Println(path)
		return nil
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(settings)
}
