// Package tempest implements a tube shooter: the player's claw rides the rim
// of a polygonal tube and fires down its lanes at enemies climbing toward it.
package tempest

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const (
	hudHeight      = 1
	shakeDuration  = 0.2
	deathParticles = 20
	killParticles  = 10
)

var gameConfig = config.DefaultTempestConfig()

// SetConfig replaces the tunables used by games created afterwards.
func SetConfig(cfg config.TempestConfig) {
	gameConfig = cfg
}

// Bullet travels outward along a lane.
type Bullet struct {
	Lane  int
	Depth float64
}

// Particle is cosmetic debris in normalized tube space.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life float64
}

// Game implements Tempest.
type Game struct {
	core.Emitter

	cfg     config.TempestConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	frame   uint64

	phase     core.Phase
	shape     Shape
	lane      int
	enemies   []Enemy
	bullets   []Bullet
	spikes    [][]float64 // per lane, depths of spike segments
	particles []Particle
	queue     []EnemyType

	score         int
	lives         int
	level         int
	nextExtraLife int
	charges       int
	zapLatched    bool

	spawnTimer   float64
	moveCooldown float64
	fireCooldown float64
	deathTimer   float64
	phaseTimer   float64
	warpProgress float64
	zapFlash     float64
	glitchTimer  float64
	glitchLevel  float64
	shakeTimer   float64
}

// New creates a new Tempest game.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("tempest", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tempest"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tempest"
}

// Reset discards the run and returns to the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frame = 0

	g.phase = core.PhaseStart
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.nextExtraLife = g.cfg.Gameplay.ExtraLifeEvery
	g.lane = 0
	g.resetLevel()
	g.particles = nil
	g.deathTimer = 0
	g.phaseTimer = 0
	g.warpProgress = 0
	g.glitchTimer = 0
	g.glitchLevel = 0
	g.shakeTimer = 0
}

// resetLevel rebuilds the tube and per-level state for g.level.
func (g *Game) resetLevel() {
	g.shape = ShapeForLevel(g.level)
	g.lane = min(g.lane, g.shape.Lanes()-1)
	g.enemies = nil
	g.bullets = nil
	g.spikes = make([][]float64, g.shape.Lanes())
	g.queue = nil
	g.charges = g.cfg.Gameplay.SuperzapperCharge
	g.zapLatched = false
	g.spawnTimer = g.cfg.Levels.FirstSpawn
	g.moveCooldown = 0
	g.fireCooldown = 0
	g.zapFlash = 0
}

// begin starts a new run from level 1.
func (g *Game) begin() {
	g.phase = core.PhasePlaying
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.nextExtraLife = g.cfg.Gameplay.ExtraLifeEvery
	g.lane = 0
	g.resetLevel()
	g.queue = buildSpawnQueue(g.rng, &g.cfg, g.level)
	g.particles = nil
	g.deathTimer = 0
	g.warpProgress = 0
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.runtime.ScreenW <= 0 || g.runtime.ScreenH <= 0 {
		return core.StepResult{State: g.State()}
	}
	dt = core.ClampDelta(dt)
	g.frame++

	switch g.phase {
	case core.PhaseStart:
		if in.JustPressed(core.ActionConfirm) {
			g.begin()
		}
	case core.PhasePlaying:
		g.stepPlaying(dt, in)
	case core.PhaseLevelComplete:
		g.phaseTimer -= dt
		if g.phaseTimer <= 0 {
			g.phase = core.PhaseWarping
			g.warpProgress = 0
		}
		g.updateParticles(dt)
		g.tickEffects(dt)
	case core.PhaseWarping:
		g.stepWarping(dt)
	case core.PhaseGameOver:
		g.updateParticles(dt)
		g.tickEffects(dt)
		if in.JustPressed(core.ActionConfirm) {
			g.begin()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepWarping(dt float64) {
	if d := g.cfg.Levels.WarpDuration; d > 0 {
		g.warpProgress += dt / d
	} else {
		g.warpProgress = 1
	}
	if g.warpProgress >= 1 {
		g.level++
		g.resetLevel()
		g.queue = buildSpawnQueue(g.rng, &g.cfg, g.level)
		g.phase = core.PhasePlaying
		g.warpProgress = 0
		tier := g.cfg.Glitch.Warp
		g.glitch(tier)
		g.emit(core.EventWarp, g.shape.Name, tier.Intensity, tier.Duration)
	}
	g.updateParticles(dt)
	g.tickEffects(dt)
}

// alive reports whether the claw is on the rim.
func (g *Game) alive() bool {
	return g.deathTimer <= 0
}

func (g *Game) stepPlaying(dt float64, in core.InputFrame) {
	g.moveCooldown = core.Countdown(g.moveCooldown, dt)
	g.fireCooldown = core.Countdown(g.fireCooldown, dt)
	if g.deathTimer > 0 {
		g.deathTimer -= dt
		if g.deathTimer <= 0 {
			g.deathTimer = 0
			if g.lives <= 0 {
				g.phase = core.PhaseGameOver
				g.updateParticles(dt)
				g.tickEffects(dt)
				return
			}
		}
	}

	if g.alive() {
		g.handleInput(in)
	}
	if !in.IsHeld(core.ActionZap) {
		g.zapLatched = false
	}

	g.updateBullets(dt)
	g.updateSpawner(dt)
	g.updateEnemies(dt)
	g.resolveRim()
	g.resolveHazards()
	g.resolveBullets()

	if len(g.queue) == 0 && len(g.enemies) == 0 {
		g.phase = core.PhaseLevelComplete
		g.phaseTimer = g.cfg.Levels.CompleteDuration
		tier := g.cfg.Glitch.LevelClear
		g.glitch(tier)
		g.emit(core.EventLevelClear, "", tier.Intensity, tier.Duration)
	}

	g.updateParticles(dt)
	g.tickEffects(dt)
}

func (g *Game) handleInput(in core.InputFrame) {
	pc := g.cfg.Player

	if g.moveCooldown <= 0 {
		dir := 0
		if in.IsHeld(core.ActionLeft) {
			dir--
		}
		if in.IsHeld(core.ActionRight) {
			dir++
		}
		if dir != 0 {
			g.lane = g.shape.Step(g.lane, dir)
			g.moveCooldown = pc.MoveCooldown
		}
	}

	if in.IsHeld(core.ActionFire) && g.fireCooldown <= 0 && len(g.bullets) < g.cfg.Bullet.Max {
		g.bullets = append(g.bullets, Bullet{Lane: g.lane})
		g.fireCooldown = pc.FireRate
	}

	if in.IsHeld(core.ActionZap) && !g.zapLatched && g.charges > 0 {
		g.zapLatched = true
		g.superzap()
	}
}

// superzap clears every enemy on the first use of a level and one random
// enemy on later uses.
func (g *Game) superzap() {
	first := g.charges == g.cfg.Gameplay.SuperzapperCharge
	g.charges--
	g.zapFlash = 0.3

	if first {
		for _, e := range g.enemies {
			g.killEnemy(e)
		}
		g.enemies = nil
	} else if len(g.enemies) > 0 {
		i := g.rng.Intn(len(g.enemies))
		g.killEnemy(g.enemies[i])
		g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
	}

	tier := g.cfg.Glitch.Superzapper
	g.glitch(tier)
	g.emit(core.EventSuperzapper, "", tier.Intensity, tier.Duration)
}

// killEnemy scores an enemy and leaves debris. The caller removes it.
func (g *Game) killEnemy(e Enemy) {
	g.addScore(enemyConfig(&g.cfg, e.Type).Points)
	g.burst(g.shape.LanePoint(e.Lane, e.Depth), killParticles)
}

func (g *Game) updateBullets(dt float64) {
	bc := g.cfg.Bullet
	out := g.bullets[:0]
	for _, b := range g.bullets {
		b.Depth += bc.Speed * dt
		if b.Depth <= bc.MaxDepth {
			out = append(out, b)
		}
	}
	g.bullets = out
}

func (g *Game) updateSpawner(dt float64) {
	if len(g.queue) == 0 {
		return
	}
	g.spawnTimer -= dt
	if g.spawnTimer > 0 {
		return
	}
	t := g.queue[0]
	g.queue = g.queue[1:]
	g.enemies = append(g.enemies, newEnemy(&g.cfg, t, g.rng.Intn(g.shape.Lanes())))
	g.spawnTimer = spawnInterval(&g.cfg, g.level)
}

func (g *Game) updateEnemies(dt float64) {
	scale := speedScale(&g.cfg, g.level)
	for i := range g.enemies {
		e := &g.enemies[i]
		if d := e.update(dt, scale, g.rng, &g.cfg, g.shape); d >= 0 {
			g.spikes[e.Lane] = append(g.spikes[e.Lane], d)
		}
	}
}

// spawnChildren adds a tanker's flippers in the lanes either side of it.
func (g *Game) spawnChildren(e Enemy, depth float64) {
	n := g.cfg.Enemies.TankerChildren
	for k := range n {
		dir := -1
		if k%2 == 1 {
			dir = 1
		}
		child := newEnemy(&g.cfg, Flipper, g.shape.Step(e.Lane, dir))
		child.Depth = depth
		g.enemies = append(g.enemies, child)
	}
}

// resolveRim handles enemies that reached the rim.
func (g *Game) resolveRim() {
	for i := len(g.enemies) - 1; i >= 0; i-- {
		e := g.enemies[i]
		if e.Depth > 0 {
			continue
		}
		g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
		if e.Type == Tanker {
			g.spawnChildren(e, g.cfg.Enemies.ChildDepth)
		}
		if g.alive() && e.Lane == g.lane {
			g.killPlayer()
		}
	}
}

// resolveHazards kills the claw on an active pulsar or a spike at the rim.
func (g *Game) resolveHazards() {
	if !g.alive() {
		return
	}
	for _, e := range g.enemies {
		if e.Type == Pulsar && e.Active && e.Lane == g.lane {
			g.killPlayer()
			return
		}
	}
	spikes := g.spikes[g.lane]
	for i := len(spikes) - 1; i >= 0; i-- {
		if spikes[i] <= g.cfg.Collision.SpikeRim {
			g.spikes[g.lane] = append(spikes[:i], spikes[i+1:]...)
			g.killPlayer()
			return
		}
	}
}

// resolveBullets lets each bullet clear one spike segment or one enemy.
// Spikes in the bullet's lane are checked first, newest segment first.
func (g *Game) resolveBullets() {
	col := g.cfg.Collision
	for bi := len(g.bullets) - 1; bi >= 0; bi-- {
		b := g.bullets[bi]
		hit := false

		spikes := g.spikes[b.Lane]
		for si := len(spikes) - 1; si >= 0; si-- {
			if abs(spikes[si]-b.Depth) < col.BulletSpike {
				g.spikes[b.Lane] = append(spikes[:si], spikes[si+1:]...)
				hit = true
				break
			}
		}

		if !hit {
			for ei := len(g.enemies) - 1; ei >= 0; ei-- {
				e := g.enemies[ei]
				if e.Lane != b.Lane || abs(e.Depth-b.Depth) >= col.BulletEnemy {
					continue
				}
				g.enemies = append(g.enemies[:ei], g.enemies[ei+1:]...)
				g.killEnemy(e)
				if e.Type == Tanker {
					g.spawnChildren(e, e.Depth)
				}
				g.shake()
				tier := g.cfg.Glitch.Kill
				if g.rng.Float64() < tier.Chance {
					g.glitch(tier)
					g.emit(core.EventKill, e.Type.String(), tier.Intensity, tier.Duration)
				}
				hit = true
				break
			}
		}

		if hit {
			g.bullets = append(g.bullets[:bi], g.bullets[bi+1:]...)
		}
	}
}

func (g *Game) killPlayer() {
	if g.deathTimer > 0 {
		return
	}
	g.burst(g.shape.LanePoint(g.lane, 0), deathParticles)
	g.lives--
	g.deathTimer = g.cfg.Player.DeathAnim
	g.shake()
	tier := g.cfg.Glitch.Death
	g.glitch(tier)
	g.emit(core.EventDeath, "DEATH", tier.Intensity, tier.Duration)
}

func (g *Game) burst(at core.Vec2, n int) {
	for range n {
		angle := g.rng.Float64() * 6.283185307179586
		speed := 0.25 + g.rng.Float64()*0.55
		g.particles = append(g.particles, Particle{
			Pos:  at,
			Vel:  core.FromAngle(angle, speed),
			Life: 0.5 + g.rng.Float64()*0.3,
		})
	}
}

func (g *Game) updateParticles(dt float64) {
	out := g.particles[:0]
	for _, p := range g.particles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Life -= dt
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	g.particles = out
}

func (g *Game) tickEffects(dt float64) {
	g.zapFlash = core.Countdown(g.zapFlash, dt)
	g.glitchTimer = core.Countdown(g.glitchTimer, dt)
	g.shakeTimer = core.Countdown(g.shakeTimer, dt)
}

func (g *Game) addScore(points int) {
	g.score += points
	every := g.cfg.Gameplay.ExtraLifeEvery
	if every > 0 && g.score >= g.nextExtraLife {
		g.lives++
		g.nextExtraLife += every
		g.emit(core.EventExtraLife, "", 0.3, 0.2)
	}
}

func (g *Game) shake() {
	if g.runtime.ReducedMotion {
		return
	}
	g.shakeTimer = shakeDuration
}

// glitch starts a cosmetic glitch unless a longer one is already running.
func (g *Game) glitch(tier config.GlitchTier) {
	if g.runtime.ReducedMotion {
		return
	}
	if tier.Duration > g.glitchTimer {
		g.glitchTimer = tier.Duration
		g.glitchLevel = tier.Intensity
	}
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
		Lives:    g.lives,
		Level:    g.level,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
	}
}

// Charges returns the superzapper charges left on this level.
func (g *Game) Charges() int {
	return g.charges
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
