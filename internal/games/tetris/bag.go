package tetris

import "math/rand"

// Bag deals tetrominoes in shuffled groups of seven so every kind appears
// exactly once per cycle.
type Bag struct {
	rng     *rand.Rand
	pending []PieceType
}

// NewBag creates an empty bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next returns the next piece, refilling the bag when it runs out.
func (b *Bag) Next() PieceType {
	if len(b.pending) == 0 {
		b.refill()
	}
	p := b.pending[len(b.pending)-1]
	b.pending = b.pending[:len(b.pending)-1]
	return p
}

// Remaining returns how many pieces are left in the current cycle.
func (b *Bag) Remaining() int {
	return len(b.pending)
}

// refill loads a Fisher-Yates shuffle of all seven kinds.
func (b *Bag) refill() {
	b.pending = append(b.pending[:0], AllPieces[:]...)
	for i := len(b.pending) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
	}
}
