package tempest

import "github.com/vovakirdan/neon-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frame        uint64
	Phase        core.Phase
	Shape        string
	Lane         int
	Score        int
	Lives        int
	Level        int
	Charges      int
	Enemies      []Enemy
	Bullets      []Bullet
	Spikes       [][]float64
	Queue        []EnemyType
	Particles    int
	SpawnTimer   float64
	DeathTimer   float64
	WarpProgress float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	spikes := make([][]float64, len(g.spikes))
	for i, s := range g.spikes {
		spikes[i] = append([]float64(nil), s...)
	}
	return Snapshot{
		Frame:        g.frame,
		Phase:        g.phase,
		Shape:        g.shape.Name,
		Lane:         g.lane,
		Score:        g.score,
		Lives:        g.lives,
		Level:        g.level,
		Charges:      g.charges,
		Enemies:      append([]Enemy(nil), g.enemies...),
		Bullets:      append([]Bullet(nil), g.bullets...),
		Spikes:       spikes,
		Queue:        append([]EnemyType(nil), g.queue...),
		Particles:    len(g.particles),
		SpawnTimer:   g.spawnTimer,
		DeathTimer:   g.deathTimer,
		WarpProgress: g.warpProgress,
	}
}
