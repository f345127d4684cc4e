package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/tempest.yaml
var defaultTempestYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: AsteroidsShip{
			RotationSpeed: 4.5,
			Thrust:        300,
			Friction:      0.98,
			MaxSpeed:      400,
			FireRate:      0.2,
			Invincibility: 3.0,
			Size:          15,
		},
		Bullet: AsteroidsBullet{
			Speed:    500,
			Lifetime: 1.5,
			Max:      8,
			Size:     2,
		},
		Sizes: AsteroidsSizes{
			Large: AsteroidSize{
				Radius: 40, MinSpeed: 30, MaxSpeed: 80, Points: 20,
				Glitch: GlitchTier{Chance: 1.0, Duration: 0.18, Intensity: 0.35},
			},
			Medium: AsteroidSize{
				Radius: 22, MinSpeed: 50, MaxSpeed: 120, Points: 50,
				Glitch: GlitchTier{Chance: 0.45, Duration: 0.10, Intensity: 0.18},
			},
			Small: AsteroidSize{
				Radius: 10, MinSpeed: 70, MaxSpeed: 160, Points: 100,
				Glitch: GlitchTier{Chance: 0.20, Duration: 0.06, Intensity: 0.10},
			},
		},
		Shape: AsteroidsShape{
			SplitCount:     2,
			JaggedVertices: 10,
			Jaggedness:     0.4,
		},
		Particles: AsteroidsParticles{
			ExplosionCount: 12,
			MinSpeed:       40,
			MaxSpeed:       180,
			Lifetime:       0.8,
			ThrustChance:   0.5,
			ThrustMinSpeed: 30,
			ThrustMaxSpeed: 90,
			ThrustMinLife:  0.2,
			ThrustMaxLife:  0.4,
			MaxParticles:   256,
		},
		Levels: AsteroidsLevels{
			BaseCount:  4,
			PerLevel:   1,
			MaxCount:   12,
			SpeedStep:  0.05,
			SafeRadius: 150,
			Transition: 2.0,
		},
		Gameplay: AsteroidsGameplay{
			Lives:          3,
			ExtraLifeEvery: 10000,
			RespawnDelay:   1.5,
			ShakeDuration:  0.3,
			ShakeMagnitude: 6,
			DeathGlitch:    GlitchTier{Chance: 1.0, Duration: 0.4, Intensity: 1.0},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Movement: SnakeMovement{
			BaseTick:      0.2,
			MinTick:       0.08,
			TickReduction: 0.015,
			SpeedUpEvery:  5,
			InitialLength: 3,
		},
		Food: SnakeFood{
			Points:           10,
			VirusPoints:      50,
			VirusInterval:    15.0,
			VirusLifetime:    6.0,
			RelocateAttempts: 500,
		},
		Glitch: SnakeGlitch{
			Food:               GlitchTier{Chance: 1.0, Duration: 0.08, Intensity: 0.12},
			Virus:              GlitchTier{Chance: 1.0, Duration: 0.2, Intensity: 0.4},
			Death:              GlitchTier{Chance: 1.0, Duration: 0.4, Intensity: 1.0},
			CorruptionDuration: 3.0,
			CorruptionMin:      8,
			CorruptionMax:      15,
			AmbientChance:      0.01,
			AmbientTier:        2,
			SpeedUpFlash:       1.0,
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		StartLevel: 1,
		Timing: TetrisTiming{
			DAS:              0.167,
			ARR:              0.033,
			LockDelay:        0.5,
			ClearDuration:    0.3,
			SoftDropInterval: 0.05,
			FlashDuration:    1.0,
		},
		Gravity: []float64{
			0.8, 0.72, 0.63, 0.55, 0.47, 0.38, 0.3, 0.22,
			0.17, 0.13, 0.1, 0.08, 0.07, 0.06, 0.05, 0.05,
		},
		Scoring: TetrisScoring{
			Single:        100,
			Double:        300,
			Triple:        500,
			Tetris:        800,
			SoftDrop:      1,
			HardDrop:      2,
			LinesPerLevel: 10,
		},
		Glitch: TetrisGlitch{
			Single:        GlitchTier{Chance: 1.0, Duration: 0.06, Intensity: 0.08},
			Double:        GlitchTier{Chance: 1.0, Duration: 0.12, Intensity: 0.18},
			Triple:        GlitchTier{Chance: 1.0, Duration: 0.2, Intensity: 0.3},
			Tetris:        GlitchTier{Chance: 1.0, Duration: 0.35, Intensity: 0.5},
			Death:         GlitchTier{Chance: 1.0, Duration: 0.5, Intensity: 1.0},
			AmbientBelow:  50,
			AmbientChance: 0.008,
			FlickerBelow:  25,
		},
	}
}

// DefaultTempestConfig returns the default Tempest configuration.
func DefaultTempestConfig() TempestConfig {
	return TempestConfig{
		Player: TempestPlayer{
			MoveCooldown: 0.08,
			FireRate:     0.12,
			DeathAnim:    0.6,
		},
		Bullet: TempestBullet{
			Speed:    1.8,
			Max:      8,
			MaxDepth: 1.05,
		},
		Enemies: TempestEnemies{
			Flipper:        TempestEnemy{Speed: 0.3, Points: 150, UnlockLevel: 1},
			Tanker:         TempestEnemy{Speed: 0.2, Points: 100, UnlockLevel: 3},
			Spiker:         TempestEnemy{Speed: 0.25, Points: 50, UnlockLevel: 5},
			Pulsar:         TempestEnemy{Speed: 0.15, Points: 200, UnlockLevel: 7},
			FlipChance:     0.02,
			FlipDuration:   12.5,
			FlipMaxDepth:   0.7,
			TankerChildren: 2,
			ChildDepth:     0.05,
			SpikeInterval:  0.15,
			SpikeMinDepth:  0.05,
			PulseInterval:  2.0,
			PulseDuration:  0.8,
		},
		Levels: TempestLevels{
			EnemyCounts:      []int{6, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13, 14, 14},
			SpawnBase:        2.0,
			SpawnStep:        0.08,
			SpawnMin:         0.6,
			FirstSpawn:       1.0,
			CycleSpeedBonus:  0.15,
			CompleteDuration: 1.5,
			WarpDuration:     2.0,
		},
		Collision: TempestCollision{
			BulletEnemy: 0.06,
			BulletSpike: 0.05,
			SpikeRim:    0.03,
		},
		Gameplay: TempestGameplay{
			Lives:             3,
			ExtraLifeEvery:    20000,
			SuperzapperCharge: 2,
		},
		Glitch: TempestGlitch{
			Kill:        GlitchTier{Chance: 0.4, Duration: 0.08, Intensity: 0.15},
			Death:       GlitchTier{Chance: 1.0, Duration: 0.3, Intensity: 0.6},
			Superzapper: GlitchTier{Chance: 1.0, Duration: 0.25, Intensity: 0.5},
			Warp:        GlitchTier{Chance: 1.0, Duration: 0.2, Intensity: 0.4},
			LevelClear:  GlitchTier{Chance: 1.0, Duration: 0.15, Intensity: 0.3},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids":
		return defaultAsteroidsYAML
	case "snake":
		return defaultSnakeYAML
	case "tetris":
		return defaultTetrisYAML
	case "tempest":
		return defaultTempestYAML
	default:
		return nil
	}
}
