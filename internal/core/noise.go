package core

// Noise returns a deterministic pseudo-random value for a cell and frame.
// Renderers use it for cosmetic jitter so that drawing never touches the
// simulation RNG.
func Noise(x, y int, frame uint64) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + uint32(frame)*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// NoiseF returns Noise scaled to [0, 1).
func NoiseF(x, y int, frame uint64) float64 {
	return float64(Noise(x, y, frame)&0xffffff) / float64(1<<24)
}

// GlitchRunes are the glyphs used for corruption and interference effects.
var GlitchRunes = []rune("░▒▓█▚▞#%&@$?!<>/\\|=+*")

// GlitchRune picks a glitch glyph for a cell and frame.
func GlitchRune(x, y int, frame uint64) rune {
	return GlitchRunes[Noise(x, y, frame)%uint32(len(GlitchRunes))]
}
