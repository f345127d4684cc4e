package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Each board cell is two terminal columns.
const (
	cellWidth = 2
	hudHeight = 1
	boardW    = Cols*cellWidth + 2
	boardH    = Rows + 2
	panelW    = 12
)

// layout positions the board and side panels on a screen.
type layout struct {
	boardX, boardY int
	holdX, nextX   int
}

func computeLayout(w, h int) layout {
	bx := (w - boardW) / 2
	by := hudHeight + max(0, (h-hudHeight-boardH)/2)
	return layout{
		boardX: bx,
		boardY: by,
		holdX:  bx - panelW - 1,
		nextX:  bx + boardW + 1,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderHUD(dst)

	if g.phase == core.PhaseStart {
		mid := dst.Height() / 2
		dst.DrawTextCenteredColor(mid-2, "T E T R I S", core.ColorNeonPink)
		dst.DrawTextCenteredColor(mid, "←/→ move  ↑/Z rotate  ↓ soft  SPACE drop  C hold", core.ColorGray)
		dst.DrawTextCenteredColor(mid+2, "PRESS ENTER", core.ColorBrightCyan)
		return
	}

	l := computeLayout(dst.Width(), dst.Height())
	if g.shakeTimer > 0 && core.NoiseF(3, 7, g.frame) > 0.5 {
		l.boardX++
	}

	dst.DrawBox(core.NewRect(l.boardX, l.boardY, boardW, boardH), core.ColorCyan)
	g.renderGrid(dst, l)
	g.renderAmbient(dst, l)

	if g.current != nil {
		if ghost, ok := g.Ghost(); ok {
			g.drawPiece(dst, l, ghost, '░', core.ColorDim)
		}
		t := g.current.Type
		c := t.Color()
		// piece flicker at low integrity
		if !g.runtime.ReducedMotion && g.integrity < g.cfg.Glitch.FlickerBelow && core.NoiseF(0, 0, g.frame) < 0.05 {
			c = AllPieces[core.Noise(1, 1, g.frame)%7].Color()
		}
		g.drawPiece(dst, l, *g.current, '█', c)
	}

	g.renderPanel(dst, l.holdX, l.boardY, "HOLD", g.held, g.holdUsed)
	g.renderPanel(dst, l.nextX, l.boardY, "NEXT", g.next, false)
	g.renderIntegrity(dst, l.holdX, l.boardY+7)

	if g.glitchTimer > 0 {
		g.renderGlitch(dst, l)
	}

	switch {
	case g.phase == core.PhaseGameOver:
		dst.DrawPanel(core.ColorNeonPink, core.ColorBrightWhite, "STACK OVERFLOW", fmt.Sprintf("Score %d  Lines %d", g.score, g.lines), "ENTER to retry")
	case g.flashTimer > 0 && g.flashLabel != "":
		dst.DrawTextCenteredColor(l.boardY+boardH/3, g.flashLabel, core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SCORE %07d  LEVEL %d  LINES %d", g.score, g.level, g.lines)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightCyan)
}

func (g *Game) cellPos(l layout, r, c int) (int, int) {
	return l.boardX + 1 + c*cellWidth, l.boardY + 1 + r
}

func (g *Game) renderGrid(dst *core.Screen, l layout) {
	clearing := make(map[int]bool, len(g.clearing))
	for _, r := range g.clearing {
		clearing[r] = true
	}
	progress := 0.0
	if g.cfg.Timing.ClearDuration > 0 {
		progress = 1 - core.ClampF(g.clearTimer/g.cfg.Timing.ClearDuration, 0, 1)
	}

	for r := range Rows {
		for c := range Cols {
			x, y := g.cellPos(l, r, c)
			t := g.grid[r][c]
			switch {
			case clearing[r]:
				// wipe from the center outwards
				dist := abs(2*c-(Cols-1)) / 2
				if float64(dist) < progress*float64(Cols/2+1) {
					dst.DrawHLine(x, y, cellWidth, '▒', core.ColorBrightWhite)
				} else {
					dst.DrawHLine(x, y, cellWidth, '█', core.ColorBrightWhite)
				}
			case t != PieceNone:
				dst.DrawHLine(x, y, cellWidth, '▓', t.Color())
			default:
				dst.DrawHLine(x, y, cellWidth, ' ', core.ColorDefault)
				dst.SetColor(x, y, '·', core.ColorDim)
			}
		}
	}
}

// renderAmbient corrupts random cells once integrity drops.
func (g *Game) renderAmbient(dst *core.Screen, l layout) {
	gl := g.cfg.Glitch
	if g.runtime.ReducedMotion || g.integrity >= gl.AmbientBelow || gl.AmbientBelow <= 0 {
		return
	}
	factor := float64(gl.AmbientBelow-g.integrity) / float64(gl.AmbientBelow)
	chance := gl.AmbientChance * factor * 3 * 0.15
	for r := range Rows {
		for c := range Cols {
			if core.NoiseF(c, r, g.frame) < chance {
				x, y := g.cellPos(l, r, c)
				dst.DrawHLine(x, y, cellWidth, core.GlitchRune(c, r, g.frame), core.ColorNeonPink)
			}
		}
	}
}

func (g *Game) drawPiece(dst *core.Screen, l layout, p Piece, r rune, c core.Color) {
	for _, off := range p.Type.Cells(p.Rotation) {
		row, col := p.Y+off.R, p.X+off.C
		if row < 0 {
			continue
		}
		x, y := g.cellPos(l, row, col)
		dst.DrawHLine(x, y, cellWidth, r, c)
	}
}

func (g *Game) renderPanel(dst *core.Screen, x, y int, title string, t PieceType, dim bool) {
	if x < 0 || x+panelW > dst.Width() {
		return
	}
	dst.DrawBox(core.NewRect(x, y, panelW, 6), core.ColorCyan)
	dst.DrawTextColor(x+2, y, " "+title+" ", core.ColorNeonGreen)
	if t == PieceNone {
		return
	}
	c := t.Color()
	if dim {
		c = core.ColorGray
	}
	for _, off := range t.Cells(0) {
		dst.DrawHLine(x+2+off.C*cellWidth, y+2+off.R, cellWidth, '█', c)
	}
}

func (g *Game) renderIntegrity(dst *core.Screen, x, y int) {
	if x < 0 {
		return
	}
	const barW = 10
	filled := g.integrity * barW / 100
	c := core.ColorNeonGreen
	switch {
	case g.integrity < 25:
		c = core.ColorBrightRed
	case g.integrity < 50:
		c = core.ColorBrightYellow
	}
	dst.DrawTextColor(x, y, "INTEGRITY", core.ColorGray)
	dst.DrawTextColor(x, y+1, strings.Repeat("█", filled)+strings.Repeat("░", barW-filled), c)
	dst.DrawTextColor(x, y+2, fmt.Sprintf("%3d%%", g.integrity), c)
}

func (g *Game) renderGlitch(dst *core.Screen, l layout) {
	for r := range boardH {
		y := l.boardY + r
		if core.NoiseF(0, y, g.frame) > g.glitchLevel*0.5 {
			continue
		}
		for x := l.boardX; x < l.boardX+boardW; x++ {
			if core.NoiseF(x, y, g.frame) < g.glitchLevel {
				dst.SetColor(x, y, core.GlitchRune(x, y, g.frame), core.ColorNeonGreen)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
