package tempest

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
)

// EnemyType identifies an enemy.
type EnemyType int

const (
	Flipper EnemyType = iota
	Tanker
	Spiker
	Pulsar
)

func (t EnemyType) String() string {
	switch t {
	case Flipper:
		return "FLIPPER"
	case Tanker:
		return "TANKER"
	case Spiker:
		return "SPIKER"
	case Pulsar:
		return "PULSAR"
	default:
		return "UNKNOWN"
	}
}

func enemyConfig(cfg *config.TempestConfig, t EnemyType) config.TempestEnemy {
	switch t {
	case Tanker:
		return cfg.Enemies.Tanker
	case Spiker:
		return cfg.Enemies.Spiker
	case Pulsar:
		return cfg.Enemies.Pulsar
	default:
		return cfg.Enemies.Flipper
	}
}

// Enemy climbs a lane from depth 1 toward the rim at depth 0.
type Enemy struct {
	Type  EnemyType
	Lane  int
	Depth float64

	// Flipper
	FlipTimer    float64
	FlipTarget   int
	FlipProgress float64

	// Spiker
	TrailTimer float64

	// Pulsar
	PulseTimer float64
	Active     bool
}

func newEnemy(cfg *config.TempestConfig, t EnemyType, lane int) Enemy {
	e := Enemy{Type: t, Lane: lane, Depth: 1, FlipTarget: lane}
	switch t {
	case Spiker:
		e.TrailTimer = cfg.Enemies.SpikeInterval
	case Pulsar:
		e.PulseTimer = cfg.Enemies.PulseInterval
	}
	return e
}

// unlockedTypes lists the enemy kinds that may spawn on a level.
func unlockedTypes(cfg *config.TempestConfig, level int) []EnemyType {
	var out []EnemyType
	for _, t := range []EnemyType{Flipper, Tanker, Spiker, Pulsar} {
		if level >= enemyConfig(cfg, t).UnlockLevel {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		out = append(out, Flipper)
	}
	return out
}

// buildSpawnQueue picks the level's enemies from the unlocked kinds.
func buildSpawnQueue(rng *rand.Rand, cfg *config.TempestConfig, level int) []EnemyType {
	counts := cfg.Levels.EnemyCounts
	if len(counts) == 0 {
		return nil
	}
	total := counts[(level-1)%len(counts)]
	types := unlockedTypes(cfg, level)
	queue := make([]EnemyType, total)
	for i := range queue {
		queue[i] = types[rng.Intn(len(types))]
	}
	return queue
}

func spawnInterval(cfg *config.TempestConfig, level int) float64 {
	lv := cfg.Levels
	return math.Max(lv.SpawnMin, lv.SpawnBase-float64(level-1)*lv.SpawnStep)
}

// speedScale grows every time the shape cycle repeats.
func speedScale(cfg *config.TempestConfig, level int) float64 {
	cycle := (level - 1) / len(Shapes)
	return 1 + float64(cycle)*cfg.Levels.CycleSpeedBonus
}

// update advances one enemy. Spikers return the depth of a new spike
// segment, or -1.
func (e *Enemy) update(dt, scale float64, rng *rand.Rand, cfg *config.TempestConfig, shape Shape) float64 {
	en := cfg.Enemies
	spike := -1.0

	switch e.Type {
	case Flipper:
		if e.FlipTimer > 0 {
			e.FlipTimer -= dt
			e.FlipProgress += dt / en.FlipDuration
			if e.FlipTimer <= 0 {
				e.Lane = e.FlipTarget
				e.FlipProgress = 0
			}
		} else if e.Depth < en.FlipMaxDepth && rng.Float64() < perFrame(en.FlipChance, dt) {
			dir := 1
			if rng.Float64() < 0.5 {
				dir = -1
			}
			e.FlipTarget = shape.Step(e.Lane, dir)
			e.FlipTimer = en.FlipDuration
			e.FlipProgress = 0
		}
	case Spiker:
		e.TrailTimer -= dt
		if e.TrailTimer <= 0 && e.Depth > en.SpikeMinDepth {
			spike = e.Depth
			e.TrailTimer = en.SpikeInterval
		}
	case Pulsar:
		e.PulseTimer -= dt
		if e.PulseTimer <= 0 {
			e.Active = !e.Active
			if e.Active {
				e.PulseTimer = en.PulseDuration
			} else {
				e.PulseTimer = en.PulseInterval
			}
		}
	}

	e.Depth -= enemyConfig(cfg, e.Type).Speed * scale * dt
	return spike
}

// perFrame converts a chance per 1/60 s into a chance for a step of dt.
func perFrame(chance, dt float64) float64 {
	return 1 - math.Pow(1-chance, dt*60)
}
