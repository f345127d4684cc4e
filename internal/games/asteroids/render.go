package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

var sizeColors = map[SizeClass]core.Color{
	SizeLarge:  core.ColorNeonPink,
	SizeMedium: core.ColorBrightMagenta,
	SizeSmall:  core.ColorPurple,
}

// noseRunes indexes by heading in eighths, starting east and turning clockwise
// (screen y grows downward).
var noseRunes = []rune("→↘↓↙←↖↑↗")

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderHUD(dst)

	if g.phase == core.PhaseStart {
		g.renderStart(dst)
		return
	}

	ox, oy := g.shakeOffset()

	for i := range g.asteroids {
		g.renderAsteroid(dst, &g.asteroids[i], ox, oy)
	}
	for _, p := range g.particles {
		r := '·'
		if p.Alpha() > 0.5 {
			r = '*'
		}
		x, y := g.toScreen(p.Pos)
		dst.SetColor(x+ox, y+oy, r, p.Color)
	}
	for _, b := range g.bullets {
		x, y := g.toScreen(b.Pos)
		dst.SetColor(x+ox, y+oy, '•', core.ColorBrightYellow)
	}
	if g.ship.Alive && g.phase == core.PhasePlaying {
		g.renderShip(dst, ox, oy)
	}

	g.renderGlitch(dst)

	switch {
	case g.phase == core.PhaseGameOver:
		dst.DrawPanel(core.ColorNeonPink, core.ColorBrightWhite, "GAME OVER", fmt.Sprintf("Score %d", g.score), "ENTER to play again")
	case g.transitionTimer > g.cfg.Levels.Transition/2:
		dst.DrawTextCenteredColor(dst.Height()/2, fmt.Sprintf("LEVEL %d", g.level), core.ColorBrightCyan)
	case g.phase == core.PhasePlaying && !g.ship.Alive && g.lives > 0:
		dst.DrawTextCenteredColor(dst.Height()/2, "GET READY", core.ColorBrightCyan)
	}
}

func (g *Game) toScreen(p core.Vec2) (int, int) {
	return int(p.X / unitsPerCol), hudHeight + int(p.Y/unitsPerRow)
}

// shakeOffset returns the cell offset while the screen shakes.
func (g *Game) shakeOffset() (int, int) {
	if g.shakeTimer <= 0 {
		return 0, 0
	}
	mag := g.cfg.Gameplay.ShakeMagnitude * g.shakeTimer / math.Max(g.cfg.Gameplay.ShakeDuration, 1e-9)
	dx := (core.NoiseF(1, 0, g.frame) - 0.5) * 2 * mag / unitsPerCol * 2
	dy := (core.NoiseF(0, 1, g.frame) - 0.5) * 2 * mag / unitsPerRow * 2
	return int(math.Round(dx)), int(math.Round(dy))
}

func (g *Game) renderHUD(dst *core.Screen) {
	lives := strings.Repeat("▲", min(g.lives, 10))
	left := fmt.Sprintf(" SCORE %06d  %s", g.score, lives)
	right := fmt.Sprintf("LEVEL %d ", g.level)
	dst.DrawTextColor(0, 0, left, core.ColorBrightCyan)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorNeonPink)
}

func (g *Game) renderStart(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColor(mid-2, "A S T E R O I D S", core.ColorNeonPink)
	dst.DrawTextCenteredColor(mid, "←/→ rotate  ↑ thrust  SPACE fire", core.ColorGray)
	dst.DrawTextCenteredColor(mid+2, "PRESS ENTER", core.ColorBrightCyan)
}

func (g *Game) renderAsteroid(dst *core.Screen, a *Asteroid, ox, oy int) {
	c := sizeColors[a.Size]
	verts := a.Vertices()
	for i := range verts {
		x0, y0 := g.toScreen(verts[i])
		x1, y1 := g.toScreen(verts[(i+1)%len(verts)])
		dst.DrawLine(x0+ox, y0+oy, x1+ox, y1+oy, '#', c)
	}
}

func (g *Game) renderShip(dst *core.Screen, ox, oy int) {
	// blink while invincible
	if g.ship.IsInvincible() && (g.frame/6)%2 == 1 {
		return
	}
	size := g.cfg.Ship.Size
	v := g.ship.Vertices(size)
	for i := range v {
		x0, y0 := g.toScreen(v[i])
		x1, y1 := g.toScreen(v[(i+1)%3])
		dst.DrawLine(x0+ox, y0+oy, x1+ox, y1+oy, '+', core.ColorBrightCyan)
	}
	nx, ny := g.toScreen(v[0])
	dst.SetColor(nx+ox, ny+oy, noseRune(g.ship.Rotation), core.ColorBrightWhite)

	if g.ship.Thrusting && g.frame%2 == 0 {
		tx, ty := g.toScreen(g.ship.Tail(size))
		dst.SetColor(tx+ox, ty+oy, '~', core.ColorOrange)
	}
}

func noseRune(rotation float64) rune {
	octant := int(math.Round(rotation/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return noseRunes[octant]
}

// renderGlitch tears a few rows while a glitch is running.
func (g *Game) renderGlitch(dst *core.Screen) {
	if g.glitchTimer <= 0 {
		return
	}
	w, h := dst.Width(), dst.Height()
	for y := hudHeight; y < h; y++ {
		if core.NoiseF(0, y, g.frame) > g.glitchIntensity*0.3 {
			continue
		}
		for x := range w {
			if core.NoiseF(x, y, g.frame) < g.glitchIntensity*0.5 {
				dst.SetColor(x, y, core.GlitchRune(x, y, g.frame), core.ColorNeonGreen)
			}
		}
	}
}
