// Package tetris implements a guideline-style Tetris engine: 7-bag
// randomizer, SRS wall kicks, DAS/ARR shifting, lock delay and hold.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const shakeDuration = 0.3

var gameConfig = config.DefaultTetrisConfig()

// SetConfig replaces the tunables used by games created afterwards.
func SetConfig(cfg config.TetrisConfig) {
	gameConfig = cfg
}

// Game implements the Tetris game.
type Game struct {
	core.Emitter

	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	bag     *Bag
	frame   uint64

	phase    core.Phase
	grid     Grid
	current  *Piece
	next     PieceType
	held     PieceType
	holdUsed bool

	score int
	lines int
	level int

	dropTimer   float64
	lockTimer   float64
	softDrop    bool
	dasDir      int // -1, 0 or 1
	dasTimer    float64
	dasActive   bool
	arrTimer    float64
	clearing    []int
	clearTimer  float64
	flashLabel  string
	flashTimer  float64
	integrity   int
	glitchTimer float64
	glitchLevel float64
	shakeTimer  float64
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset discards the world and returns to the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.bag = NewBag(g.rng)
	g.frame = 0
	g.phase = core.PhaseStart
	g.clearBoard()
}

// clearBoard zeroes the playfield and every counter.
func (g *Game) clearBoard() {
	g.grid = Grid{}
	g.current = nil
	g.next = PieceNone
	g.held = PieceNone
	g.holdUsed = false
	g.score = 0
	g.lines = 0
	g.level = max(1, g.cfg.StartLevel)
	g.dropTimer = 0
	g.lockTimer = 0
	g.softDrop = false
	g.dasDir = 0
	g.dasTimer = 0
	g.dasActive = false
	g.arrTimer = 0
	g.clearing = nil
	g.clearTimer = 0
	g.flashLabel = ""
	g.flashTimer = 0
	g.integrity = 100
	g.glitchTimer = 0
	g.glitchLevel = 0
	g.shakeTimer = 0
}

func (g *Game) begin() {
	g.clearBoard()
	g.phase = core.PhasePlaying
	g.spawn()
}

// dropInterval returns the gravity interval for the current level.
func (g *Game) dropInterval() float64 {
	table := g.cfg.Gravity
	if len(table) == 0 {
		return 1
	}
	return table[min(g.level-1, len(table)-1)]
}

// spawn brings the next piece in at the top. A blocked spawn tries one row
// lower before ending the game.
func (g *Game) spawn() bool {
	t := g.next
	if t == PieceNone {
		t = g.bag.Next()
	}
	g.next = g.bag.Next()

	p, ok := g.place(t)
	if !ok {
		g.die()
		return false
	}
	g.current = &p
	g.holdUsed = false
	g.lockTimer = 0
	g.dropTimer = 0
	return true
}

// place finds the spawn position for t, if any.
func (g *Game) place(t PieceType) (Piece, bool) {
	p := spawnPiece(t)
	if !g.grid.Collides(p) {
		return p, true
	}
	p.Y++
	if !g.grid.Collides(p) {
		return p, true
	}
	return p, false
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.runtime.ScreenW <= 0 || g.runtime.ScreenH <= 0 {
		return core.StepResult{State: g.State()}
	}
	dt = core.ClampDelta(dt)
	g.frame++

	switch g.phase {
	case core.PhaseStart, core.PhaseGameOver:
		g.tickEffects(dt)
		if in.JustPressed(core.ActionConfirm) {
			g.begin()
		}
	case core.PhaseClearing:
		g.stepClearing(dt)
	case core.PhasePlaying:
		g.handleInput(in)
		if g.phase == core.PhasePlaying {
			g.stepPlaying(dt)
		}
		g.tickEffects(dt)
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies the one-shot actions for this frame.
func (g *Game) handleInput(in core.InputFrame) {
	g.softDrop = in.IsHeld(core.ActionDown)

	if (g.dasDir < 0 && !in.IsHeld(core.ActionLeft)) || (g.dasDir > 0 && !in.IsHeld(core.ActionRight)) {
		g.dasDir = 0
	}

	if g.current == nil {
		return
	}

	switch {
	case in.JustPressed(core.ActionLeft):
		g.startShift(-1)
	case in.JustPressed(core.ActionRight):
		g.startShift(1)
	}
	if in.JustPressed(core.ActionUp) {
		g.Rotate(1)
	}
	if in.JustPressed(core.ActionRotate) {
		g.Rotate(-1)
	}
	if in.JustPressed(core.ActionHold) {
		g.Hold()
	}
	if in.JustPressed(core.ActionFire) {
		g.HardDrop()
	}
}

func (g *Game) startShift(dir int) {
	g.Move(dir)
	g.dasDir = dir
	g.dasTimer = 0
	g.dasActive = false
	g.arrTimer = 0
}

// Move shifts the piece horizontally. It reports whether the move happened.
func (g *Game) Move(dx int) bool {
	if g.current == nil {
		return false
	}
	p := *g.current
	p.X += dx
	if g.grid.Collides(p) {
		return false
	}
	g.current.X = p.X
	g.lockTimer = 0
	return true
}

// Rotate turns the piece clockwise (dir 1) or counter-clockwise (dir -1),
// trying each wall kick in order. A rotation with no legal kick is a no-op.
func (g *Game) Rotate(dir int) bool {
	if g.current == nil || g.current.Type == PieceO {
		return false
	}
	from := g.current.Rotation
	to := (from + dir + 4) % 4
	for _, k := range wallKicks(g.current.Type, from, to) {
		p := Piece{Type: g.current.Type, Rotation: to, X: g.current.X + k.X, Y: g.current.Y - k.Y}
		if !g.grid.Collides(p) {
			*g.current = p
			g.lockTimer = 0
			return true
		}
	}
	return false
}

// HardDrop drops the piece to its ghost position and locks it.
func (g *Game) HardDrop() {
	if g.current == nil {
		return
	}
	d := g.grid.DropDistance(*g.current)
	g.score += d * g.cfg.Scoring.HardDrop
	g.current.Y += d
	g.lock()
}

// Hold swaps the piece with the hold slot, once per piece.
func (g *Game) Hold() {
	if g.current == nil || g.holdUsed {
		return
	}
	cur := g.current.Type
	if g.held != PieceNone {
		p, ok := g.place(g.held)
		if !ok {
			return
		}
		g.held = cur
		g.current = &p
	} else {
		g.held = cur
		if !g.spawn() {
			return
		}
	}
	g.holdUsed = true
	g.lockTimer = 0
	g.dropTimer = 0
}

// Ghost returns the landing position of the current piece.
func (g *Game) Ghost() (Piece, bool) {
	if g.current == nil {
		return Piece{}, false
	}
	p := *g.current
	p.Y += g.grid.DropDistance(p)
	return p, true
}

func (g *Game) stepPlaying(dt float64) {
	if g.current == nil {
		return
	}
	tm := g.cfg.Timing

	if g.dasDir != 0 {
		g.dasTimer += dt
		if !g.dasActive && g.dasTimer >= tm.DAS {
			g.dasActive = true
			g.arrTimer = 0
			g.Move(g.dasDir)
		} else if g.dasActive {
			g.arrTimer += dt
			for g.arrTimer >= tm.ARR {
				g.arrTimer -= tm.ARR
				if !g.Move(g.dasDir) {
					break
				}
			}
		}
	}

	interval := g.dropInterval()
	if g.softDrop {
		interval = min(interval, tm.SoftDropInterval)
	}
	g.dropTimer += dt
	for g.dropTimer >= interval {
		g.dropTimer -= interval
		p := *g.current
		p.Y++
		if g.grid.Collides(p) {
			g.dropTimer = 0
			break
		}
		g.current.Y++
		g.lockTimer = 0
		if g.softDrop {
			g.score += g.cfg.Scoring.SoftDrop
		}
	}

	if g.resting() {
		g.lockTimer += dt
		if g.lockTimer >= tm.LockDelay {
			g.lock()
		}
	}
}

func (g *Game) resting() bool {
	p := *g.current
	p.Y++
	return g.grid.Collides(p)
}

// lock writes the piece into the grid and starts a clear or the next piece.
func (g *Game) lock() {
	g.grid.Lock(*g.current)
	g.current = nil

	full := g.grid.FullRows()
	if len(full) > 0 {
		g.clearing = full
		g.clearTimer = g.cfg.Timing.ClearDuration
		g.phase = core.PhaseClearing
		g.scoreLines(len(full))
	} else {
		g.spawn()
	}
	g.integrity = g.grid.Integrity()
}

var clearNames = [...]string{"", "SINGLE", "DOUBLE", "TRIPLE", "TETRIS"}

func (g *Game) scoreLines(n int) {
	sc := g.cfg.Scoring
	gl := g.cfg.Glitch
	n = min(n, 4)
	points := [...]int{0, sc.Single, sc.Double, sc.Triple, sc.Tetris}
	tiers := [...]config.GlitchTier{{}, gl.Single, gl.Double, gl.Triple, gl.Tetris}

	g.score += points[n] * g.level
	g.lines += n
	if sc.LinesPerLevel > 0 {
		g.level = max(1, g.cfg.StartLevel) + g.lines/sc.LinesPerLevel
	}

	name := clearNames[n]
	if n >= 2 {
		g.flashLabel = name + "!"
		g.flashTimer = g.cfg.Timing.FlashDuration
		g.shake()
	}
	g.glitch(tiers[n])
	g.emit(core.EventLineClear, name, tiers[n].Intensity, tiers[n].Duration)
}

func (g *Game) stepClearing(dt float64) {
	g.clearTimer -= dt
	g.tickEffects(dt)
	if g.clearTimer > 0 {
		return
	}
	g.grid.RemoveRows(g.clearing)
	g.clearing = nil
	g.clearTimer = 0
	g.integrity = g.grid.Integrity()
	g.phase = core.PhasePlaying
	g.spawn()
}

func (g *Game) die() {
	g.phase = core.PhaseGameOver
	g.current = nil
	g.glitch(g.cfg.Glitch.Death)
	g.shake()
	g.emit(core.EventDeath, "DEATH", g.cfg.Glitch.Death.Intensity, g.cfg.Glitch.Death.Duration)
}

func (g *Game) tickEffects(dt float64) {
	g.glitchTimer = core.Countdown(g.glitchTimer, dt)
	g.shakeTimer = core.Countdown(g.shakeTimer, dt)
	g.flashTimer = core.Countdown(g.flashTimer, dt)
}

func (g *Game) glitch(tier config.GlitchTier) {
	if g.runtime.ReducedMotion {
		return
	}
	g.glitchTimer = tier.Duration
	g.glitchLevel = tier.Intensity
}

func (g *Game) shake() {
	if g.runtime.ReducedMotion {
		return
	}
	g.shakeTimer = shakeDuration
}

func (g *Game) emit(kind, category string, intensity, duration float64) {
	if g.runtime.ReducedMotion {
		return
	}
	g.Emit(core.Event{
		Game:      g.ID(),
		Kind:      kind,
		Category:  category,
		Intensity: intensity,
		Duration:  duration,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
	}
}

// Lines returns the total number of cleared lines.
func (g *Game) Lines() int {
	return g.lines
}

// Integrity returns the cosmetic stack-health percentage.
func (g *Game) Integrity() int {
	return g.integrity
}
