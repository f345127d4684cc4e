package tetris

import "github.com/vovakirdan/neon-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frame     uint64
	Phase     core.Phase
	Grid      Grid
	Current   *Piece
	Next      PieceType
	Held      PieceType
	HoldUsed  bool
	Score     int
	Lines     int
	Level     int
	Clearing  []int
	BagLeft   int
	Integrity int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var cur *Piece
	if g.current != nil {
		p := *g.current
		cur = &p
	}
	return Snapshot{
		Frame:     g.frame,
		Phase:     g.phase,
		Grid:      g.grid,
		Current:   cur,
		Next:      g.next,
		Held:      g.held,
		HoldUsed:  g.holdUsed,
		Score:     g.score,
		Lines:     g.lines,
		Level:     g.level,
		Clearing:  append([]int(nil), g.clearing...),
		BagLeft:   g.bag.Remaining(),
		Integrity: g.integrity,
	}
}
