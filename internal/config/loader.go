package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configExts lists accepted file extensions in lookup order.
var configExts = []string{".yaml", ".yml", ".toml"}

// Decode parses data into out, picking YAML or TOML from the file extension.
// Fields missing from the document keep whatever out already holds.
func Decode(path string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config: unsupported format %q for %s", filepath.Ext(path), path)
	}
	return nil
}

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<id>.{yaml,yml,toml} ->
// ./configs/<id>.{yaml,yml,toml} -> embedded default.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := Decode(customPath, data, &cfg); err != nil {
			return defaults(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths(gameID) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := Decode(path, data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths returns candidate config files for a game, user dir first.
func searchPaths(gameID string) []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".arcade", "configs"))
	}
	dirs = append(dirs, "configs")

	paths := make([]string, 0, len(dirs)*len(configExts))
	for _, dir := range dirs {
		for _, ext := range configExts {
			paths = append(paths, filepath.Join(dir, gameID+ext))
		}
	}
	return paths
}

// LoadAsteroids loads Asteroids configuration.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load("asteroids", customPath, DefaultAsteroidsConfig)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig)
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, DefaultTetrisConfig)
}

// LoadTempest loads Tempest configuration.
func LoadTempest(customPath string) (TempestConfig, error) {
	return load("tempest", customPath, DefaultTempestConfig)
}

// ApplyAsteroidsPreset adjusts starting lives for a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Levels.BaseCount = 6
	}
}

// ApplySnakePreset adjusts the base tick for a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Movement.BaseTick = 0.25
	case DifficultyHard:
		cfg.Movement.BaseTick = 0.14
	}
}

// ApplyTetrisPreset adjusts the starting level for a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.StartLevel = 1
		cfg.Timing.LockDelay = 0.75
	case DifficultyHard:
		cfg.StartLevel = 5
	}
}

// ApplyTempestPreset adjusts lives and superzapper charges for a preset.
func ApplyTempestPreset(cfg *TempestConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.SuperzapperCharge = 1
	}
}
