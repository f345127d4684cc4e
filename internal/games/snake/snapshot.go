package snake

import "github.com/vovakirdan/neon-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frame     uint64
	Phase     core.Phase
	Score     int
	FoodEaten int
	SpeedTier int
	TickEvery float64
	Body      []Point
	Dir       Direction
	Food      *Point
	Virus     *Point
	Corrupted int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.snake))
	copy(body, g.snake)
	return Snapshot{
		Frame:     g.frame,
		Phase:     g.phase,
		Score:     g.score,
		FoodEaten: g.foodEaten,
		SpeedTier: g.speedTier,
		TickEvery: g.tickEvery,
		Body:      body,
		Dir:       g.direction,
		Food:      clonePoint(g.food),
		Virus:     clonePoint(g.virus),
		Corrupted: len(g.corrupted),
	}
}

func clonePoint(p *Point) *Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
