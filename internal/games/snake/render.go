package snake

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

var corruptionColors = []core.Color{
	core.ColorBrightCyan,
	core.ColorNeonPink,
	core.ColorNeonGreen,
	core.ColorBrightYellow,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderHUD(dst)

	if g.phase == core.PhaseStart {
		mid := dst.Height() / 2
		dst.DrawTextCenteredColor(mid-2, "S N A K E", core.ColorBrightCyan)
		dst.DrawTextCenteredColor(mid, "arrows steer  eat the virus for a bonus", core.ColorGray)
		dst.DrawTextCenteredColor(mid+2, "PRESS ENTER", core.ColorNeonGreen)
		return
	}

	ox := 0
	if g.shakeTimer > 0 && core.NoiseF(int(g.frame), 0, g.frame) > 0.5 {
		ox = 1
	}

	field := core.NewRect(ox, hudHeight, g.cols*cellWidth+2, g.rows+2)
	dst.DrawBox(field, core.ColorCyan)

	g.renderAmbient(dst, ox)
	for i, p := range g.corrupted {
		g.drawCell(dst, p, ox, core.GlitchRune(p.X, p.Y, g.frame), corruptionColors[i%len(corruptionColors)])
	}

	if g.food != nil {
		r := '●'
		if (g.frame/15)%2 == 0 {
			r = '◉'
		}
		g.drawCell(dst, *g.food, ox, r, core.ColorNeonGreen)
	}
	if g.virus != nil {
		// blink in the last two seconds
		if g.virusLifeTimer > 2 || (g.frame/8)%2 == 0 {
			g.drawCell(dst, *g.virus, ox, '☣', core.ColorNeonPink)
		}
	}

	for i := len(g.snake) - 1; i >= 0; i-- {
		if i == 0 {
			g.drawCell(dst, g.snake[i], ox, '█', core.ColorBrightCyan)
		} else {
			g.drawCell(dst, g.snake[i], ox, '▓', core.ColorCyan)
		}
	}

	if g.glitchTimer > 0 {
		g.renderGlitch(dst)
	}

	switch {
	case g.phase == core.PhaseGameOver:
		dst.DrawPanel(core.ColorNeonPink, core.ColorBrightWhite, "SYSTEM FAILURE", fmt.Sprintf("Score %d  Length %d", g.score, len(g.snake)), "ENTER to reboot")
	case g.speedUpTimer > 0:
		dst.DrawTextCenteredColor(hudHeight+2, fmt.Sprintf(">> SPEED %d <<", g.speedTier), core.ColorBrightYellow)
	}
}

// drawCell paints one grid cell (two terminal columns).
func (g *Game) drawCell(dst *core.Screen, p Point, ox int, r rune, c core.Color) {
	x := ox + 1 + p.X*cellWidth
	y := hudHeight + 1 + p.Y
	for i := range cellWidth {
		dst.SetColor(x+i, y, r, c)
	}
}

// renderAmbient sprinkles corruption once the snake is fast enough.
func (g *Game) renderAmbient(dst *core.Screen, ox int) {
	gl := g.cfg.Glitch
	if g.runtime.ReducedMotion || g.speedTier <= gl.AmbientTier {
		return
	}
	chance := gl.AmbientChance * float64(g.speedTier-gl.AmbientTier) * 0.1
	for y := range g.rows {
		for x := range g.cols {
			if core.NoiseF(x, y, g.frame) < chance {
				c := corruptionColors[core.Noise(y, x, g.frame)%uint32(len(corruptionColors))]
				g.drawCell(dst, Point{X: x, Y: y}, ox, core.GlitchRune(x, y, g.frame), c)
			}
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" SCORE %05d  LENGTH %d", g.score, len(g.snake))
	right := fmt.Sprintf("SPEED %d ", g.speedTier)
	dst.DrawTextColor(0, 0, left, core.ColorBrightCyan)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorNeonGreen)
}

func (g *Game) renderGlitch(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	for y := hudHeight; y < h; y++ {
		if core.NoiseF(0, y, g.frame) > g.glitchIntensity*0.4 {
			continue
		}
		shift := int(core.Noise(1, y, g.frame)%5) - 2
		row := make([]core.Cell, w)
		for x := range w {
			row[x] = dst.GetCell(x, y)
		}
		for x := range w {
			src := row[core.WrapInt(x-shift, w)]
			dst.SetCell(x, y, core.Cell{Rune: src.Rune, Color: core.ColorNeonPink})
		}
	}
}
