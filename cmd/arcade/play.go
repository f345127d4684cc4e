package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/sfx"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, thrust, soft drop
  Space        - Fire / hard drop
  Z            - Rotate (tetris), superzapper (tempest)
  C            - Hold (tetris)
  Enter/R      - Start, restart after game over
  P/Esc        - Pause
  Q/Ctrl+C     - Quit

Examples:
  arcade play asteroids
  arcade play snake --difficulty easy
  arcade play tempest --sound
  arcade play tetris --config ./my-tetris.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play synthesized sound cues")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play synthesized sound cues")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q (run 'arcade list' to see available games)", registry.ErrUnknownGame, gameID)
	}

	opts, cleanup, err := hostOptions()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := prepare(gameID, opts.Difficulty); err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// hostOptions builds the local host shell options from the flags.
func hostOptions() (tui.Options, func(), error) {
	preset, err := difficulty()
	if err != nil {
		return tui.Options{}, nil, err
	}
	logger, closeLog, err := openLogger()
	if err != nil {
		return tui.Options{}, nil, err
	}

	opts := tui.Options{
		Logger:     logger,
		ShowHelp:   true,
		Difficulty: preset,
		Prepare:    prepare,
	}
	if !flagSound {
		return opts, closeLog, nil
	}

	player := sfx.New()
	if err := player.Init(); err != nil {
		// no audio device is not fatal
		if logger != nil {
			logger.Warn("sound disabled", "err", err)
		}
		return opts, closeLog, nil
	}
	opts.Sound = player
	return opts, func() {
		player.Close()
		closeLog()
	}, nil
}
