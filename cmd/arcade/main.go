// arcade is a terminal arcade of four neon games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade config <game>     - Print a game's default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config (YAML or TOML)
//	--difficulty <preset> - easy, normal or hard
//	--reduced-motion      - Disable shake, glitch and interference
//	--log <file>          - Log engine events to a file
//	--profile <kind>      - Write a cpu, mem or trace profile
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/asteroids"
	"github.com/vovakirdan/neon-arcade/internal/games/snake"
	"github.com/vovakirdan/neon-arcade/internal/games/tempest"
	"github.com/vovakirdan/neon-arcade/internal/games/tetris"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagConfig        string
	flagDifficulty    string
	flagReducedMotion bool
	flagLogPath       string
	flagProfile       string
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the CLI and flushes --profile whether or not the command
// failed.
func run(args []string) error {
	rootCmd.SetArgs(args)
	defer func() {
		stopProfile()
		stopProfile = func() {}
	}()
	return rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Neon Arcade - Asteroids, Snake, Tetris and Tempest in your terminal",
	Long: `Neon Arcade is a terminal arcade of four vector-style games with
glitch effects.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  config   - Print a game's default config

Examples:
  arcade list
  arcade play tempest
  arcade play tetris --difficulty hard
  arcade menu --reduced-motion
  arcade serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		stop, err := startProfile(flagProfile)
		if err != nil {
			return err
		}
		stopProfile = stop
		return nil
	},
}

// stopProfile flushes the --profile capture.
var stopProfile = func() {}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagReducedMotion, "reduced-motion", false, "Disable shake, glitch and interference effects")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log engine events to this file")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Write a cpu, mem or trace profile to the current directory")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the game runtime config from the flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:       width,
		ScreenH:       height,
		TickRate:      flagFPS,
		Seed:          flagSeed,
		ReducedMotion: flagReducedMotion,
	}
}

// difficulty parses --difficulty.
func difficulty() (config.DifficultyPreset, error) {
	return config.ParseDifficulty(flagDifficulty)
}

// prepare loads a game's config, applies the preset and installs it for the
// next instance the registry creates.
func prepare(gameID string, preset config.DifficultyPreset) error {
	switch gameID {
	case "asteroids":
		cfg, err := config.LoadAsteroids(flagConfig)
		if err != nil {
			return err
		}
		config.ApplyAsteroidsPreset(&cfg, preset)
		asteroids.SetConfig(cfg)
	case "snake":
		cfg, err := config.LoadSnake(flagConfig)
		if err != nil {
			return err
		}
		config.ApplySnakePreset(&cfg, preset)
		snake.SetConfig(cfg)
	case "tetris":
		cfg, err := config.LoadTetris(flagConfig)
		if err != nil {
			return err
		}
		config.ApplyTetrisPreset(&cfg, preset)
		tetris.SetConfig(cfg)
	case "tempest":
		cfg, err := config.LoadTempest(flagConfig)
		if err != nil {
			return err
		}
		config.ApplyTempestPreset(&cfg, preset)
		tempest.SetConfig(cfg)
	default:
		return fmt.Errorf("%w %q", registry.ErrUnknownGame, gameID)
	}
	return nil
}

// openLogger opens the --log file. The returned close func is always safe to
// call.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "arcade",
	})
	return logger, func() { f.Close() }, nil
}
