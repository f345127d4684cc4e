package tui

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Burst lengths for screen interference.
const (
	majorBurst    = 400 * time.Millisecond
	minorBurstMin = 100 * time.Millisecond
	minorBurstMax = 300 * time.Millisecond
)

// Interference is the host-side glitch overlay driven by engine events.
// It decays linearly over its burst.
type Interference struct {
	strength float64
	start    time.Time
	duration time.Duration
}

// BurstDuration returns how long an event disturbs the screen.
func BurstDuration(ev core.Event) time.Duration {
	if ev.Major() {
		return majorBurst
	}
	d := time.Duration(core.ClampF(ev.Intensity, 0, 1) * float64(minorBurstMax))
	return max(d, minorBurstMin)
}

// Trigger starts a burst for ev unless a stronger one is still running.
func (i *Interference) Trigger(ev core.Event, now time.Time) {
	strength := core.ClampF(ev.Intensity, 0, 1)
	if i.Strength(now) > strength {
		return
	}
	i.strength = strength
	i.start = now
	i.duration = BurstDuration(ev)
}

// Strength returns the current interference level in [0, 1].
func (i *Interference) Strength(now time.Time) float64 {
	if i.duration <= 0 {
		return 0
	}
	elapsed := now.Sub(i.start)
	if elapsed < 0 || elapsed >= i.duration {
		return 0
	}
	return i.strength * (1 - float64(elapsed)/float64(i.duration))
}

// Active reports whether a burst is running.
func (i *Interference) Active(now time.Time) bool {
	return i.Strength(now) > 0
}

// Apply scrambles cells in proportion to the current strength.
func (i *Interference) Apply(s *core.Screen, now time.Time, frame uint64) {
	p := i.Strength(now)
	if p <= 0 {
		return
	}
	w, h := s.Width(), s.Height()
	for y := range h {
		// whole-row tear on strong bursts
		tear := p > 0.4 && core.NoiseF(-1, y, frame) < p*0.15
		for x := range w {
			n := core.NoiseF(x, y, frame)
			switch {
			case tear || n < p*0.12:
				s.SetColor(x, y, core.GlitchRune(x, y, frame), core.ColorNeonGreen)
			case n < p*0.25:
				c := s.GetCell(x, y)
				s.SetColor(x, y, c.Rune, core.ColorNeonPink)
			}
		}
	}
}
