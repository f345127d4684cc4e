package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Print the embedded default config of a game as YAML.

Save it to ~/.arcade/configs/<game>.yaml and edit it to tune the game,
or pass a copy with --config.

Examples:
  arcade config tempest > ~/.arcade/configs/tempest.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("no config for game %q", args[0])
	}
	_, err := os.Stdout.Write(data)
	return err
}
