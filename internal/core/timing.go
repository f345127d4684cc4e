package core

// MaxFrameStep is the largest delta, in seconds, a single frame may advance.
// Longer gaps (suspended terminal, slow SSH link) are truncated.
const MaxFrameStep = 0.05

// ClampDelta limits dt to [0, MaxFrameStep].
func ClampDelta(dt float64) float64 {
	return ClampF(dt, 0, MaxFrameStep)
}

// Countdown decrements a timer by dt without going below zero.
func Countdown(timer, dt float64) float64 {
	if timer <= dt {
		return 0
	}
	return timer - dt
}
