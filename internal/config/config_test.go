package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		id       string
		fallback any
		decoded  any
	}{
		{"asteroids", DefaultAsteroidsConfig(), &AsteroidsConfig{}},
		{"snake", DefaultSnakeConfig(), &SnakeConfig{}},
		{"tetris", DefaultTetrisConfig(), &TetrisConfig{}},
		{"tempest", DefaultTempestConfig(), &TempestConfig{}},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			data := GetDefaultYAML(tc.id)
			if len(data) == 0 {
				t.Fatalf("no embedded YAML for %s", tc.id)
			}
			if err := yaml.Unmarshal(data, tc.decoded); err != nil {
				t.Fatalf("embedded YAML does not parse: %v", err)
			}
			got := reflect.ValueOf(tc.decoded).Elem().Interface()
			if !reflect.DeepEqual(got, tc.fallback) {
				t.Errorf("embedded %s.yaml differs from Default config:\n got  %+v\n want %+v", tc.id, got, tc.fallback)
			}
		})
	}
}

func TestLoadCustomTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.toml")
	doc := `
[movement]
base_tick = 0.3

[food]
points = 25
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() error = %v", err)
	}
	if cfg.Movement.BaseTick != 0.3 {
		t.Errorf("BaseTick = %v, expected 0.3", cfg.Movement.BaseTick)
	}
	if cfg.Food.Points != 25 {
		t.Errorf("Points = %d, expected 25", cfg.Food.Points)
	}
	// Untouched fields keep their defaults
	if cfg.Movement.MinTick != DefaultSnakeConfig().Movement.MinTick {
		t.Errorf("MinTick = %v, expected default %v", cfg.Movement.MinTick, DefaultSnakeConfig().Movement.MinTick)
	}
}

func TestLoadCustomYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tempest.yml")
	doc := "gameplay:\n  lives: 7\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTempest(path)
	if err != nil {
		t.Fatalf("LoadTempest() error = %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if len(cfg.Levels.EnemyCounts) != 16 {
		t.Errorf("EnemyCounts length = %d, expected 16", len(cfg.Levels.EnemyCounts))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should return an error")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "asteroids.json")
	if err := os.WriteFile(bad, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAsteroids(bad); err == nil {
		t.Error("unsupported extension should return an error")
	}

	broken := filepath.Join(dir, "asteroids.yaml")
	if err := os.WriteFile(broken, []byte("ship: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadAsteroids(broken)
	if err == nil {
		t.Error("malformed YAML should return an error")
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("failed load should return defaults, got lives %d", cfg.Gameplay.Lives)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestPresets(t *testing.T) {
	a := DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&a, DifficultyEasy)
	if a.Gameplay.Lives != 5 {
		t.Errorf("easy asteroids lives = %d, expected 5", a.Gameplay.Lives)
	}

	tp := DefaultTempestConfig()
	ApplyTempestPreset(&tp, DifficultyHard)
	if tp.Gameplay.Lives != 2 || tp.Gameplay.SuperzapperCharge != 1 {
		t.Errorf("hard tempest = lives %d charges %d, expected 2/1", tp.Gameplay.Lives, tp.Gameplay.SuperzapperCharge)
	}

	tt := DefaultTetrisConfig()
	ApplyTetrisPreset(&tt, DifficultyNormal)
	if !reflect.DeepEqual(tt, DefaultTetrisConfig()) {
		t.Error("normal preset should leave tetris config untouched")
	}

	s := DefaultSnakeConfig()
	ApplySnakePreset(&s, DifficultyHard)
	if s.Movement.BaseTick >= DefaultSnakeConfig().Movement.BaseTick {
		t.Errorf("hard snake base tick = %v, expected faster than default", s.Movement.BaseTick)
	}
}
