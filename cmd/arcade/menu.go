package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Pick a game, then a difficulty. Back from a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard --sound`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	opts, cleanup, err := hostOptions()
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.RunSession(runtimeConfig(), opts)
}
