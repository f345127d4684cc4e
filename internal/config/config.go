// Package config provides per-game tunables loaded from YAML or TOML files,
// embedded defaults, and difficulty presets for the arcade platform.
package config

import "fmt"

// GlitchTier describes a probabilistic cosmetic glitch: how likely it fires,
// how long it lasts (seconds) and how strong it is (0..1).
type GlitchTier struct {
	Chance    float64 `yaml:"chance" toml:"chance"`
	Duration  float64 `yaml:"duration" toml:"duration"`
	Intensity float64 `yaml:"intensity" toml:"intensity"`
}

// AsteroidsConfig contains all configuration for Asteroids.
// Distances are world units, times are seconds.
type AsteroidsConfig struct {
	Ship      AsteroidsShip      `yaml:"ship" toml:"ship"`
	Bullet    AsteroidsBullet    `yaml:"bullet" toml:"bullet"`
	Sizes     AsteroidsSizes     `yaml:"sizes" toml:"sizes"`
	Shape     AsteroidsShape     `yaml:"shape" toml:"shape"`
	Particles AsteroidsParticles `yaml:"particles" toml:"particles"`
	Levels    AsteroidsLevels    `yaml:"levels" toml:"levels"`
	Gameplay  AsteroidsGameplay  `yaml:"gameplay" toml:"gameplay"`
}

// AsteroidsShip defines ship handling.
type AsteroidsShip struct {
	RotationSpeed float64 `yaml:"rotation_speed" toml:"rotation_speed"` // rad/s
	Thrust        float64 `yaml:"thrust" toml:"thrust"`
	Friction      float64 `yaml:"friction" toml:"friction"` // velocity factor per 1/60 s
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`
	FireRate      float64 `yaml:"fire_rate" toml:"fire_rate"`
	Invincibility float64 `yaml:"invincibility" toml:"invincibility"`
	Size          float64 `yaml:"size" toml:"size"`
}

// AsteroidsBullet defines projectile parameters.
type AsteroidsBullet struct {
	Speed    float64 `yaml:"speed" toml:"speed"`
	Lifetime float64 `yaml:"lifetime" toml:"lifetime"`
	Max      int     `yaml:"max" toml:"max"`
	Size     float64 `yaml:"size" toml:"size"`
}

// AsteroidSize defines one size class.
type AsteroidSize struct {
	Radius   float64    `yaml:"radius" toml:"radius"`
	MinSpeed float64    `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed float64    `yaml:"max_speed" toml:"max_speed"`
	Points   int        `yaml:"points" toml:"points"`
	Glitch   GlitchTier `yaml:"glitch" toml:"glitch"`
}

// AsteroidsSizes lists the three size classes.
type AsteroidsSizes struct {
	Large  AsteroidSize `yaml:"large" toml:"large"`
	Medium AsteroidSize `yaml:"medium" toml:"medium"`
	Small  AsteroidSize `yaml:"small" toml:"small"`
}

// AsteroidsShape defines splitting and outline generation.
type AsteroidsShape struct {
	SplitCount     int     `yaml:"split_count" toml:"split_count"`
	JaggedVertices int     `yaml:"jagged_vertices" toml:"jagged_vertices"`
	Jaggedness     float64 `yaml:"jaggedness" toml:"jaggedness"`
}

// AsteroidsParticles defines explosion and thrust debris.
type AsteroidsParticles struct {
	ExplosionCount int     `yaml:"explosion_count" toml:"explosion_count"`
	MinSpeed       float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed" toml:"max_speed"`
	Lifetime       float64 `yaml:"lifetime" toml:"lifetime"`
	ThrustChance   float64 `yaml:"thrust_chance" toml:"thrust_chance"`
	ThrustMinSpeed float64 `yaml:"thrust_min_speed" toml:"thrust_min_speed"`
	ThrustMaxSpeed float64 `yaml:"thrust_max_speed" toml:"thrust_max_speed"`
	ThrustMinLife  float64 `yaml:"thrust_min_life" toml:"thrust_min_life"`
	ThrustMaxLife  float64 `yaml:"thrust_max_life" toml:"thrust_max_life"`
	MaxParticles   int     `yaml:"max_particles" toml:"max_particles"`
}

// AsteroidsLevels defines wave composition.
type AsteroidsLevels struct {
	BaseCount  int     `yaml:"base_count" toml:"base_count"`
	PerLevel   int     `yaml:"per_level" toml:"per_level"`
	MaxCount   int     `yaml:"max_count" toml:"max_count"`
	SpeedStep  float64 `yaml:"speed_step" toml:"speed_step"`
	SafeRadius float64 `yaml:"safe_radius" toml:"safe_radius"`
	Transition float64 `yaml:"transition" toml:"transition"`
}

// AsteroidsGameplay defines lives and cosmetic timers.
type AsteroidsGameplay struct {
	Lives          int        `yaml:"lives" toml:"lives"`
	ExtraLifeEvery int        `yaml:"extra_life_every" toml:"extra_life_every"`
	RespawnDelay   float64    `yaml:"respawn_delay" toml:"respawn_delay"`
	ShakeDuration  float64    `yaml:"shake_duration" toml:"shake_duration"`
	ShakeMagnitude float64    `yaml:"shake_magnitude" toml:"shake_magnitude"`
	DeathGlitch    GlitchTier `yaml:"death_glitch" toml:"death_glitch"`
}

// SnakeConfig contains all configuration for Snake. Times are seconds.
type SnakeConfig struct {
	Movement SnakeMovement `yaml:"movement" toml:"movement"`
	Food     SnakeFood     `yaml:"food" toml:"food"`
	Glitch   SnakeGlitch   `yaml:"glitch" toml:"glitch"`
}

// SnakeMovement defines the tick schedule.
type SnakeMovement struct {
	BaseTick      float64 `yaml:"base_tick" toml:"base_tick"`
	MinTick       float64 `yaml:"min_tick" toml:"min_tick"`
	TickReduction float64 `yaml:"tick_reduction" toml:"tick_reduction"`
	SpeedUpEvery  int     `yaml:"speed_up_every" toml:"speed_up_every"`
	InitialLength int     `yaml:"initial_length" toml:"initial_length"`
}

// SnakeFood defines food and virus behavior.
type SnakeFood struct {
	Points           int     `yaml:"points" toml:"points"`
	VirusPoints      int     `yaml:"virus_points" toml:"virus_points"`
	VirusInterval    float64 `yaml:"virus_interval" toml:"virus_interval"`
	VirusLifetime    float64 `yaml:"virus_lifetime" toml:"virus_lifetime"`
	RelocateAttempts int     `yaml:"relocate_attempts" toml:"relocate_attempts"`
}

// SnakeGlitch defines cosmetic corruption.
type SnakeGlitch struct {
	Food               GlitchTier `yaml:"food" toml:"food"`
	Virus              GlitchTier `yaml:"virus" toml:"virus"`
	Death              GlitchTier `yaml:"death" toml:"death"`
	CorruptionDuration float64    `yaml:"corruption_duration" toml:"corruption_duration"`
	CorruptionMin      int        `yaml:"corruption_min" toml:"corruption_min"`
	CorruptionMax      int        `yaml:"corruption_max" toml:"corruption_max"`
	AmbientChance      float64    `yaml:"ambient_chance" toml:"ambient_chance"`
	AmbientTier        int        `yaml:"ambient_tier" toml:"ambient_tier"`
	SpeedUpFlash       float64    `yaml:"speed_up_flash" toml:"speed_up_flash"`
}

// TetrisConfig contains all configuration for Tetris. Times are seconds.
type TetrisConfig struct {
	StartLevel int           `yaml:"start_level" toml:"start_level"`
	Timing     TetrisTiming  `yaml:"timing" toml:"timing"`
	Gravity    []float64     `yaml:"gravity" toml:"gravity"` // drop interval per level, last entry is the floor
	Scoring    TetrisScoring `yaml:"scoring" toml:"scoring"`
	Glitch     TetrisGlitch  `yaml:"glitch" toml:"glitch"`
}

// TetrisTiming defines input and lock timing.
type TetrisTiming struct {
	DAS              float64 `yaml:"das" toml:"das"`
	ARR              float64 `yaml:"arr" toml:"arr"`
	LockDelay        float64 `yaml:"lock_delay" toml:"lock_delay"`
	ClearDuration    float64 `yaml:"clear_duration" toml:"clear_duration"`
	SoftDropInterval float64 `yaml:"soft_drop_interval" toml:"soft_drop_interval"`
	FlashDuration    float64 `yaml:"flash_duration" toml:"flash_duration"`
}

// TetrisScoring defines the line-clear table and drop bonuses.
type TetrisScoring struct {
	Single        int `yaml:"single" toml:"single"`
	Double        int `yaml:"double" toml:"double"`
	Triple        int `yaml:"triple" toml:"triple"`
	Tetris        int `yaml:"tetris" toml:"tetris"`
	SoftDrop      int `yaml:"soft_drop" toml:"soft_drop"`
	HardDrop      int `yaml:"hard_drop" toml:"hard_drop"`
	LinesPerLevel int `yaml:"lines_per_level" toml:"lines_per_level"`
}

// TetrisGlitch defines line-clear and integrity effects.
type TetrisGlitch struct {
	Single        GlitchTier `yaml:"single" toml:"single"`
	Double        GlitchTier `yaml:"double" toml:"double"`
	Triple        GlitchTier `yaml:"triple" toml:"triple"`
	Tetris        GlitchTier `yaml:"tetris" toml:"tetris"`
	Death         GlitchTier `yaml:"death" toml:"death"`
	AmbientBelow  int        `yaml:"ambient_below" toml:"ambient_below"`
	AmbientChance float64    `yaml:"ambient_chance" toml:"ambient_chance"`
	FlickerBelow  int        `yaml:"flicker_below" toml:"flicker_below"`
}

// TempestConfig contains all configuration for Tempest.
// Depth is normalized: 0 is the rim, 1 the far end of the tube.
type TempestConfig struct {
	Player    TempestPlayer    `yaml:"player" toml:"player"`
	Bullet    TempestBullet    `yaml:"bullet" toml:"bullet"`
	Enemies   TempestEnemies   `yaml:"enemies" toml:"enemies"`
	Levels    TempestLevels    `yaml:"levels" toml:"levels"`
	Collision TempestCollision `yaml:"collision" toml:"collision"`
	Gameplay  TempestGameplay  `yaml:"gameplay" toml:"gameplay"`
	Glitch    TempestGlitch    `yaml:"glitch" toml:"glitch"`
}

// TempestPlayer defines the claw.
type TempestPlayer struct {
	MoveCooldown float64 `yaml:"move_cooldown" toml:"move_cooldown"`
	FireRate     float64 `yaml:"fire_rate" toml:"fire_rate"`
	DeathAnim    float64 `yaml:"death_anim" toml:"death_anim"`
}

// TempestBullet defines player shots.
type TempestBullet struct {
	Speed    float64 `yaml:"speed" toml:"speed"`
	Max      int     `yaml:"max" toml:"max"`
	MaxDepth float64 `yaml:"max_depth" toml:"max_depth"`
}

// TempestEnemy defines one enemy type.
type TempestEnemy struct {
	Speed       float64 `yaml:"speed" toml:"speed"`
	Points      int     `yaml:"points" toml:"points"`
	UnlockLevel int     `yaml:"unlock_level" toml:"unlock_level"`
}

// TempestEnemies defines enemy behavior.
type TempestEnemies struct {
	Flipper        TempestEnemy `yaml:"flipper" toml:"flipper"`
	Tanker         TempestEnemy `yaml:"tanker" toml:"tanker"`
	Spiker         TempestEnemy `yaml:"spiker" toml:"spiker"`
	Pulsar         TempestEnemy `yaml:"pulsar" toml:"pulsar"`
	FlipChance     float64      `yaml:"flip_chance" toml:"flip_chance"` // per 1/60 s
	FlipDuration   float64      `yaml:"flip_duration" toml:"flip_duration"`
	FlipMaxDepth   float64      `yaml:"flip_max_depth" toml:"flip_max_depth"`
	TankerChildren int          `yaml:"tanker_children" toml:"tanker_children"`
	ChildDepth     float64      `yaml:"child_depth" toml:"child_depth"`
	SpikeInterval  float64      `yaml:"spike_interval" toml:"spike_interval"`
	SpikeMinDepth  float64      `yaml:"spike_min_depth" toml:"spike_min_depth"`
	PulseInterval  float64      `yaml:"pulse_interval" toml:"pulse_interval"`
	PulseDuration  float64      `yaml:"pulse_duration" toml:"pulse_duration"`
}

// TempestLevels defines spawn scheduling and level transitions.
type TempestLevels struct {
	EnemyCounts      []int   `yaml:"enemy_counts" toml:"enemy_counts"`
	SpawnBase        float64 `yaml:"spawn_base" toml:"spawn_base"`
	SpawnStep        float64 `yaml:"spawn_step" toml:"spawn_step"`
	SpawnMin         float64 `yaml:"spawn_min" toml:"spawn_min"`
	FirstSpawn       float64 `yaml:"first_spawn" toml:"first_spawn"`
	CycleSpeedBonus  float64 `yaml:"cycle_speed_bonus" toml:"cycle_speed_bonus"`
	CompleteDuration float64 `yaml:"complete_duration" toml:"complete_duration"`
	WarpDuration     float64 `yaml:"warp_duration" toml:"warp_duration"`
}

// TempestCollision defines the depth-proximity thresholds.
type TempestCollision struct {
	BulletEnemy float64 `yaml:"bullet_enemy" toml:"bullet_enemy"`
	BulletSpike float64 `yaml:"bullet_spike" toml:"bullet_spike"`
	SpikeRim    float64 `yaml:"spike_rim" toml:"spike_rim"`
}

// TempestGameplay defines lives and superzapper.
type TempestGameplay struct {
	Lives             int `yaml:"lives" toml:"lives"`
	ExtraLifeEvery    int `yaml:"extra_life_every" toml:"extra_life_every"`
	SuperzapperCharge int `yaml:"superzapper_charges" toml:"superzapper_charges"`
}

// TempestGlitch defines host interference per event.
type TempestGlitch struct {
	Kill        GlitchTier `yaml:"kill" toml:"kill"`
	Death       GlitchTier `yaml:"death" toml:"death"`
	Superzapper GlitchTier `yaml:"superzapper" toml:"superzapper"`
	Warp        GlitchTier `yaml:"warp" toml:"warp"`
	LevelClear  GlitchTier `yaml:"level_clear" toml:"level_clear"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}
