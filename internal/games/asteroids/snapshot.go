package asteroids

import "github.com/vovakirdan/neon-arcade/internal/core"

// AsteroidSnapshot is the observable state of one asteroid.
type AsteroidSnapshot struct {
	X, Y float64
	Size SizeClass
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frame         uint64
	Phase         core.Phase
	Score         int
	Lives         int
	Level         int
	ShipAlive     bool
	ShipX, ShipY  float64
	ShipRotation  float64
	Asteroids     []AsteroidSnapshot
	Bullets       int
	Particles     int
	NextExtraLife int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	rocks := make([]AsteroidSnapshot, len(g.asteroids))
	for i, a := range g.asteroids {
		rocks[i] = AsteroidSnapshot{X: a.Pos.X, Y: a.Pos.Y, Size: a.Size}
	}
	return Snapshot{
		Frame:         g.frame,
		Phase:         g.phase,
		Score:         g.score,
		Lives:         g.lives,
		Level:         g.level,
		ShipAlive:     g.ship.Alive,
		ShipX:         g.ship.Pos.X,
		ShipY:         g.ship.Pos.Y,
		ShipRotation:  g.ship.Rotation,
		Asteroids:     rocks,
		Bullets:       len(g.bullets),
		Particles:     len(g.particles),
		NextExtraLife: g.nextExtraLife,
	}
}
