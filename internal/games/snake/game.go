// Package snake implements grid Snake with a time-limited virus bonus and
// cosmetic corruption that grows with speed.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Layout: one HUD row, then the bordered field. Each grid cell is two
// terminal columns wide.
const (
	hudHeight = 1
	cellWidth = 2
)

const shakeDuration = 0.3

var gameConfig = config.DefaultSnakeConfig()

// SetConfig replaces the tunables used by games created afterwards.
func SetConfig(cfg config.SnakeConfig) {
	gameConfig = cfg
}

// Game implements the Snake game.
type Game struct {
	core.Emitter

	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	frame   uint64

	cols int
	rows int

	phase     core.Phase
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction applied on the next tick
	food      *Point
	virus     *Point

	score     int
	foodEaten int
	speedTier int
	tickEvery float64
	tickAcc   float64

	virusSpawnTimer float64
	virusLifeTimer  float64
	corrupted       []Point
	corruptionTimer float64
	speedUpTimer    float64
	glitchTimer     float64
	glitchIntensity float64
	shakeTimer      float64
}

// New creates a new Snake game.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset discards the world and returns to the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frame = 0

	// field border takes one cell on each side
	g.cols = max(0, (cfg.ScreenW-2)/cellWidth)
	g.rows = max(0, cfg.ScreenH-hudHeight-2)

	g.phase = core.PhaseStart
	g.snake = nil
	g.direction = DirRight
	g.nextDir = DirRight
	g.food = nil
	g.virus = nil
	g.score = 0
	g.foodEaten = 0
	g.speedTier = 1
	g.tickEvery = g.cfg.Movement.BaseTick
	g.tickAcc = 0
	g.virusSpawnTimer = g.cfg.Food.VirusInterval
	g.virusLifeTimer = 0
	g.corrupted = nil
	g.corruptionTimer = 0
	g.speedUpTimer = 0
	g.glitchTimer = 0
	g.glitchIntensity = 0
	g.shakeTimer = 0
}

// begin starts a new run with the snake centered, heading right.
func (g *Game) begin() {
	g.phase = core.PhasePlaying
	startX, startY := g.cols/2, g.rows/2
	// the tail trails left of the head and must stay on the grid
	length := max(1, min(g.cfg.Movement.InitialLength, startX+1))
	g.snake = make([]Point, 0, length)
	for i := range length {
		g.snake = append(g.snake, Point{X: startX - i, Y: startY})
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.foodEaten = 0
	g.speedTier = 1
	g.tickEvery = g.cfg.Movement.BaseTick
	g.tickAcc = 0
	g.virus = nil
	g.virusSpawnTimer = g.cfg.Food.VirusInterval
	g.virusLifeTimer = 0
	g.corrupted = nil
	g.corruptionTimer = 0
	g.speedUpTimer = 0
	g.food = g.freeCell(g.snake)
}

// freeCell picks a random cell not in occupied. It tries random draws
// first and falls back to scanning, returning nil when the grid is full.
func (g *Game) freeCell(occupied []Point, extra ...*Point) *Point {
	taken := make(map[Point]bool, len(occupied)+len(extra))
	for _, p := range occupied {
		taken[p] = true
	}
	for _, p := range extra {
		if p != nil {
			taken[*p] = true
		}
	}

	for range g.cfg.Food.RelocateAttempts {
		p := Point{X: g.rng.Intn(g.cols), Y: g.rng.Intn(g.rows)}
		if !taken[p] {
			return &p
		}
	}

	var free []Point
	for y := range g.rows {
		for x := range g.cols {
			if p := (Point{X: x, Y: y}); !taken[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return nil
	}
	p := free[g.rng.Intn(len(free))]
	return &p
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.cols <= 0 || g.rows <= 0 {
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
	case core.PhasePlaying:
		g.steer(in)
		g.tickAcc += dt
		if g.tickAcc >= g.tickEvery {
			g.tickAcc -= g.tickEvery
			g.advance()
		}
		if g.phase == core.PhasePlaying {
			g.tickVirus(dt)
			g.tickEffects(dt)
		}
	}

	return core.StepResult{State: g.State()}
}

// steer buffers a direction change, rejecting reversal into the neck.
func (g *Game) steer(in core.InputFrame) {
	newDir := g.nextDir
	switch {
	case in.JustPressed(core.ActionUp):
		newDir = DirUp
	case in.JustPressed(core.ActionDown):
		newDir = DirDown
	case in.JustPressed(core.ActionLeft):
		newDir = DirLeft
	case in.JustPressed(core.ActionRight):
		newDir = DirRight
	}
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

func isOpposite(d1, d2 Direction) bool {
	return (d1+2)%4 == d2
}

// delta returns the cell offset for a direction.
func (d Direction) delta() Point {
	switch d {
	case DirUp:
		return Point{Y: -1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	default:
		return Point{X: 1}
	}
}

// advance performs one movement tick.
func (g *Game) advance() {
	g.direction = g.nextDir
	d := g.direction.delta()
	newHead := Point{X: g.snake[0].X + d.X, Y: g.snake[0].Y + d.Y}

	if newHead.X < 0 || newHead.X >= g.cols || newHead.Y < 0 || newHead.Y >= g.rows {
		g.die()
		return
	}
	// the tail counts: it has not moved yet
	for _, seg := range g.snake {
		if seg == newHead {
			g.die()
			return
		}
	}

	g.snake = append(g.snake, Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead

	grew := false
	if g.food != nil && newHead == *g.food {
		grew = true
		g.eatFood()
	}
	if g.virus != nil && newHead == *g.virus {
		grew = true
		g.eatVirus()
	}
	if !grew {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

func (g *Game) eatFood() {
	mv := g.cfg.Movement
	g.score += g.cfg.Food.Points
	g.foodEaten++
	g.food = g.freeCell(g.snake, g.virus)

	if mv.SpeedUpEvery > 0 && g.foodEaten%mv.SpeedUpEvery == 0 {
		next := max(mv.MinTick, g.tickEvery-mv.TickReduction)
		if next < g.tickEvery {
			g.tickEvery = next
			g.speedTier++
			g.speedUpTimer = g.cfg.Glitch.SpeedUpFlash
			g.emit(core.EventSpeedUp, fmt.Sprintf("TIER %d", g.speedTier), 0.2, 0.1)
		}
	}

	g.glitch(g.cfg.Glitch.Food)
	g.emit(core.EventFood, "", g.cfg.Glitch.Food.Intensity, g.cfg.Glitch.Food.Duration)
}

func (g *Game) eatVirus() {
	gl := g.cfg.Glitch
	g.score += g.cfg.Food.VirusPoints
	g.virus = nil
	g.virusLifeTimer = 0
	g.virusSpawnTimer = g.cfg.Food.VirusInterval

	g.corruptionTimer = gl.CorruptionDuration
	n := gl.CorruptionMin
	if gl.CorruptionMax > gl.CorruptionMin {
		n += g.rng.Intn(gl.CorruptionMax - gl.CorruptionMin + 1)
	}
	g.corrupted = make([]Point, n)
	for i := range g.corrupted {
		g.corrupted[i] = Point{X: g.rng.Intn(g.cols), Y: g.rng.Intn(g.rows)}
	}

	g.glitch(gl.Virus)
	g.shake()
	g.emit(core.EventVirus, "", gl.Virus.Intensity, gl.Virus.Duration)
}

func (g *Game) die() {
	g.phase = core.PhaseGameOver
	g.glitch(g.cfg.Glitch.Death)
	g.shake()
	g.emit(core.EventDeath, "DEATH", g.cfg.Glitch.Death.Intensity, g.cfg.Glitch.Death.Duration)
}

// tickVirus spawns and expires the bonus virus.
func (g *Game) tickVirus(dt float64) {
	if g.virus == nil {
		g.virusSpawnTimer -= dt
		if g.virusSpawnTimer <= 0 {
			g.virus = g.freeCell(g.snake, g.food)
			g.virusLifeTimer = g.cfg.Food.VirusLifetime
		}
		return
	}
	g.virusLifeTimer -= dt
	if g.virusLifeTimer <= 0 {
		g.virus = nil
		g.virusSpawnTimer = g.cfg.Food.VirusInterval
	}
}

func (g *Game) tickEffects(dt float64) {
	if g.corruptionTimer > 0 {
		g.corruptionTimer -= dt
		if g.corruptionTimer <= 0 {
			g.corruptionTimer = 0
			g.corrupted = nil
		}
	}
	g.speedUpTimer = core.Countdown(g.speedUpTimer, dt)
	g.glitchTimer = core.Countdown(g.glitchTimer, dt)
	g.shakeTimer = core.Countdown(g.shakeTimer, dt)
}

func (g *Game) glitch(tier config.GlitchTier) {
	if g.runtime.ReducedMotion {
		return
	}
	g.glitchTimer = tier.Duration
	g.glitchIntensity = tier.Intensity
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

// State returns the current game state. Level reports the speed tier.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.speedTier,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
	}
}

// Length returns the current snake length.
func (g *Game) Length() int {
	return len(g.snake)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frame: %d, Score: %d, Tier: %d, Phase: %s\n", g.frame, g.score, g.speedTier, g.phase)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(g.snake), g.direction)
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, "Head: (%d, %d)\n", g.snake[0].X, g.snake[0].Y)
	}
	if g.food != nil {
		fmt.Fprintf(&b, "Food: (%d, %d)\n", g.food.X, g.food.Y)
	}
	if g.virus != nil {
		fmt.Fprintf(&b, "Virus: (%d, %d) %.1fs\n", g.virus.X, g.virus.Y, g.virusLifeTimer)
	}
	return b.String()
}
