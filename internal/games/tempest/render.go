package tempest

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

var enemyColors = map[EnemyType]core.Color{
	Flipper: core.ColorNeonPink,
	Tanker:  core.ColorPurple,
	Spiker:  core.ColorNeonGreen,
	Pulsar:  core.ColorBrightYellow,
}

var enemyRunes = map[EnemyType]rune{
	Flipper: 'X',
	Tanker:  '◆',
	Spiker:  '✶',
	Pulsar:  '≈',
}

// projection maps normalized tube space to cells. Cells are twice as tall
// as they are wide, so x is stretched.
type projection struct {
	cx, cy float64
	radius float64
	shakeX int
	shakeY int
}

func (p projection) cell(v core.Vec2) (int, int) {
	x := p.cx + v.X*p.radius*2
	y := p.cy + v.Y*p.radius
	return int(math.Round(x)) + p.shakeX, int(math.Round(y)) + p.shakeY
}

func (g *Game) projection(dst *core.Screen) projection {
	w := float64(dst.Width())
	h := float64(dst.Height() - hudHeight)
	p := projection{
		cx:     w / 2,
		cy:     hudHeight + h/2,
		radius: math.Max(1, math.Min(w/4, h/2)-1),
	}
	if g.shakeTimer > 0 {
		p.shakeX = int(math.Round((core.NoiseF(1, 0, g.frame) - 0.5) * 2))
		p.shakeY = int(math.Round((core.NoiseF(0, 1, g.frame) - 0.5) * 2))
	}
	return p
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderHUD(dst)

	if g.phase == core.PhaseStart {
		g.renderStart(dst)
		return
	}

	proj := g.projection(dst)
	if g.phase == core.PhaseWarping {
		// the tube rushes toward the viewer
		proj.radius *= 1 + g.warpProgress*1.5
	}

	g.renderTube(dst, proj)
	g.renderSpikes(dst, proj)
	for i := range g.enemies {
		g.renderEnemy(dst, proj, &g.enemies[i])
	}
	for _, b := range g.bullets {
		x, y := proj.cell(g.shape.LanePoint(b.Lane, b.Depth))
		dst.SetColor(x, y, '•', core.ColorBrightWhite)
	}
	for _, p := range g.particles {
		x, y := proj.cell(p.Pos)
		r := '·'
		if p.Life > 0.4 {
			r = '*'
		}
		dst.SetColor(x, y, r, core.ColorOrange)
	}
	if g.phase == core.PhasePlaying && g.alive() {
		g.renderClaw(dst, proj)
	}

	g.renderGlitch(dst)

	switch g.phase {
	case core.PhaseLevelComplete:
		dst.DrawTextCenteredColor(dst.Height()/2, fmt.Sprintf("LEVEL %d COMPLETE", g.level), core.ColorBrightCyan)
	case core.PhaseWarping:
		dst.DrawTextCenteredColor(dst.Height()/2, "WARP", core.ColorNeonPink)
	case core.PhaseGameOver:
		dst.DrawPanel(core.ColorNeonPink, core.ColorBrightWhite, "GAME OVER", fmt.Sprintf("Score %d  Level %d", g.score, g.level), "ENTER to play again")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	lives := strings.Repeat("Ψ", min(max(g.lives, 0), 10))
	zaps := strings.Repeat("⚡", max(g.charges, 0))
	left := fmt.Sprintf(" SCORE %06d  %s", g.score, lives)
	right := fmt.Sprintf("%s  LEVEL %d ", zaps, g.level)
	dst.DrawTextColor(0, 0, left, core.ColorBrightCyan)
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorNeonPink)
}

func (g *Game) renderStart(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColor(mid-2, "T E M P E S T", core.ColorNeonPink)
	dst.DrawTextCenteredColor(mid, "←/→ move  SPACE fire  Z superzapper", core.ColorGray)
	dst.DrawTextCenteredColor(mid+2, "PRESS ENTER", core.ColorBrightCyan)
}

// renderTube draws the rim, the far polygon and the lane spokes. The far end
// pulses slowly.
func (g *Game) renderTube(dst *core.Screen, proj projection) {
	pulse := 1 + 0.2*(0.5+0.5*math.Sin(float64(g.frame)/20))
	far := (1 - innerScale*pulse) / (1 - innerScale)

	rimColor := core.ColorBlue
	if g.zapFlash > 0 {
		rimColor = core.ColorBrightWhite
	}

	n := len(g.shape.Vertices)
	edges := g.shape.Lanes()
	for i := range edges {
		ax, ay := proj.cell(g.shape.Vertex(i, 0))
		bx, by := proj.cell(g.shape.Vertex(i+1, 0))
		dst.DrawLine(ax, ay, bx, by, '·', rimColor)
		ix, iy := proj.cell(g.shape.Vertex(i, far))
		jx, jy := proj.cell(g.shape.Vertex(i+1, far))
		dst.DrawLine(ix, iy, jx, jy, '·', core.ColorDim)
	}
	for i := range n {
		ax, ay := proj.cell(g.shape.Vertex(i, 0))
		ix, iy := proj.cell(g.shape.Vertex(i, far))
		dst.DrawLine(ax, ay, ix, iy, '.', core.ColorDim)
	}

	// player lane highlight
	if g.phase == core.PhasePlaying {
		a, b := g.shape.edge(g.lane)
		ax, ay := proj.cell(a)
		bx, by := proj.cell(b)
		dst.DrawLine(ax, ay, bx, by, '═', core.ColorBrightYellow)
	}
}

func (g *Game) renderSpikes(dst *core.Screen, proj projection) {
	for lane, spikes := range g.spikes {
		for _, d := range spikes {
			x, y := proj.cell(g.shape.LanePoint(lane, d))
			dst.SetColor(x, y, '|', core.ColorGreen)
		}
	}
}

func (g *Game) renderEnemy(dst *core.Screen, proj projection, e *Enemy) {
	pos := g.shape.LanePoint(e.Lane, e.Depth)
	if e.Type == Flipper && e.FlipTimer > 0 {
		target := g.shape.LanePoint(e.FlipTarget, e.Depth)
		t := core.ClampF(e.FlipProgress, 0, 1)
		pos = core.Vec2{X: core.Lerp(pos.X, target.X, t), Y: core.Lerp(pos.Y, target.Y, t)}
	}
	c := enemyColors[e.Type]
	r := enemyRunes[e.Type]
	if e.Type == Pulsar && e.Active {
		c = core.ColorBrightWhite
		r = '≋'
	}
	x, y := proj.cell(pos)
	dst.SetColor(x, y, r, c)
}

func (g *Game) renderClaw(dst *core.Screen, proj projection) {
	a, b := g.shape.edge(g.lane)
	ax, ay := proj.cell(a)
	bx, by := proj.cell(b)
	mx, my := proj.cell(g.shape.LanePoint(g.lane, 0))
	dst.SetColor(ax, ay, '<', core.ColorBrightYellow)
	dst.SetColor(bx, by, '>', core.ColorBrightYellow)
	dst.SetColor(mx, my, 'Ψ', core.ColorBrightYellow)
}

// renderGlitch scatters noise while a glitch is running.
func (g *Game) renderGlitch(dst *core.Screen) {
	if g.glitchTimer <= 0 {
		return
	}
	w, h := dst.Width(), dst.Height()
	for y := hudHeight; y < h; y++ {
		if core.NoiseF(0, y, g.frame) > g.glitchLevel*0.4 {
			continue
		}
		for x := range w {
			if core.NoiseF(x, y, g.frame) < g.glitchLevel*0.4 {
				dst.SetColor(x, y, core.GlitchRune(x, y, g.frame), core.ColorNeonPink)
			}
		}
	}
}
