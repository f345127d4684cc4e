package asteroids

import "github.com/vovakirdan/neon-arcade/internal/core"

// bulletHits resolves bullet/asteroid contact for one frame.
//
// Asteroids are visited from last to first; each takes the first live bullet
// (also scanning from last) whose circle overlaps it. That bullet is marked
// dead so it cannot hit a second asteroid. Returned indices are in visit
// order, i.e. descending.
func bulletHits(asteroids []Asteroid, bullets []Bullet, bulletRadius float64) []int {
	var hits []int
	for ai := len(asteroids) - 1; ai >= 0; ai-- {
		a := &asteroids[ai]
		for bi := len(bullets) - 1; bi >= 0; bi-- {
			b := &bullets[bi]
			if !b.Alive {
				continue
			}
			if core.CirclesOverlap(a.Pos, a.Radius, b.Pos, bulletRadius) {
				b.Alive = false
				hits = append(hits, ai)
				break
			}
		}
	}
	return hits
}

// shipHit returns the index of the first asteroid touching the ship, or -1.
func shipHit(ship *Ship, shipRadius float64, asteroids []Asteroid) int {
	if !ship.Alive || ship.IsInvincible() {
		return -1
	}
	for i := range asteroids {
		if core.CirclesOverlap(ship.Pos, shipRadius, asteroids[i].Pos, asteroids[i].Radius) {
			return i
		}
	}
	return -1
}
