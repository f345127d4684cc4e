// Package asteroids implements a vector-style Asteroids engine on a wrapping
// world: a thrusting ship, splitting rocks, bullets and cosmetic debris.
package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// World units per terminal cell.
const (
	unitsPerCol = 8
	unitsPerRow = 16
	hudHeight   = 1
)

// deathParticles is the debris burst when the ship is destroyed.
const deathParticles = 24

var gameConfig = config.DefaultAsteroidsConfig()

// SetConfig replaces the tunables used by games created afterwards.
func SetConfig(cfg config.AsteroidsConfig) {
	gameConfig = cfg
}

// Game implements the Asteroids game.
type Game struct {
	core.Emitter

	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	frame   uint64

	width  float64 // world size in units
	height float64

	phase         core.Phase
	ship          Ship
	asteroids     []Asteroid
	bullets       []Bullet
	particles     []Particle
	score         int
	lives         int
	level         int
	nextExtraLife int

	respawnTimer    float64
	transitionTimer float64
	glitchTimer     float64
	glitchIntensity float64
	shakeTimer      float64
}

// New creates a new Asteroids game.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset discards the world and returns to the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frame = 0

	g.width = float64(max(0, cfg.ScreenW) * unitsPerCol)
	g.height = float64(max(0, cfg.ScreenH-hudHeight) * unitsPerRow)

	g.phase = core.PhaseStart
	g.ship = Ship{}
	g.asteroids = nil
	g.bullets = nil
	g.particles = nil
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.nextExtraLife = g.cfg.Gameplay.ExtraLifeEvery

	g.respawnTimer = 0
	g.transitionTimer = 0
	g.glitchTimer = 0
	g.glitchIntensity = 0
	g.shakeTimer = 0
}

// begin starts a new run from level 1.
func (g *Game) begin() {
	g.phase = core.PhasePlaying
	g.ship = newShip(g.center(), g.cfg.Ship.Invincibility)
	g.asteroids = nil
	g.bullets = nil
	g.particles = nil
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.nextExtraLife = g.cfg.Gameplay.ExtraLifeEvery
	g.respawnTimer = 0
	g.transitionTimer = 0
	g.spawnWave()
}

func (g *Game) center() core.Vec2 {
	return core.Vec2{X: g.width / 2, Y: g.height / 2}
}

// waveSize returns the asteroid count for the current level.
func (g *Game) waveSize() int {
	lv := g.cfg.Levels
	return min(lv.BaseCount+(g.level-1)*lv.PerLevel, lv.MaxCount)
}

// spawnWave adds a wave of LARGE asteroids away from the ship.
func (g *Game) spawnWave() {
	lv := g.cfg.Levels
	speedMult := 1 + float64(g.level-1)*lv.SpeedStep
	safe := lv.SafeRadius * lv.SafeRadius

	for range g.waveSize() {
		var pos core.Vec2
		// Small worlds may have no point far enough from the ship.
		for range 100 {
			pos = core.Vec2{X: g.rng.Float64() * g.width, Y: g.rng.Float64() * g.height}
			if core.DistSq(pos, g.ship.Pos) >= safe {
				break
			}
		}
		a := newAsteroid(g.rng, &g.cfg, pos, SizeLarge)
		a.Vel = a.Vel.Scale(speedMult)
		g.asteroids = append(g.asteroids, a)
	}
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.width <= 0 || g.height <= 0 {
		return core.StepResult{State: g.State()}
	}
	dt = core.ClampDelta(dt)
	g.frame++

	switch g.phase {
	case core.PhaseStart:
		if in.JustPressed(core.ActionConfirm) {
			g.begin()
		}
	case core.PhaseGameOver:
		g.updateDrift(dt)
		g.tickEffects(dt)
		if in.JustPressed(core.ActionConfirm) {
			g.begin()
		}
	case core.PhasePlaying:
		g.stepPlaying(dt, in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(dt float64, in core.InputFrame) {
	ship := &g.ship
	sc := g.cfg.Ship

	if ship.Alive {
		if in.IsHeld(core.ActionLeft) {
			ship.Rotation -= sc.RotationSpeed * dt
		}
		if in.IsHeld(core.ActionRight) {
			ship.Rotation += sc.RotationSpeed * dt
		}
		ship.Thrusting = in.IsHeld(core.ActionUp)

		if in.IsHeld(core.ActionFire) && ship.FireCooldown <= 0 && len(g.bullets) < g.cfg.Bullet.Max {
			g.bullets = append(g.bullets, newBullet(ship.Nose(sc.Size), ship.Rotation, g.cfg.Bullet))
			ship.FireCooldown = sc.FireRate
		}

		if ship.Thrusting && g.rng.Float64() > g.cfg.Particles.ThrustChance {
			g.addParticles(thrustSpark(g.rng, g.cfg.Particles, ship.Tail(sc.Size)))
		}
	} else {
		g.respawnTimer -= dt
		if g.respawnTimer <= 0 && g.lives > 0 {
			g.ship = newShip(g.center(), sc.Invincibility)
		}
	}

	ship.update(dt, sc, g.width, g.height)
	for i := range g.bullets {
		g.bullets[i].update(dt, g.width, g.height)
	}
	for i := range g.asteroids {
		g.asteroids[i].update(dt, g.width, g.height)
	}
	for i := range g.particles {
		g.particles[i].update(dt)
	}
	g.bullets = liveBullets(g.bullets)
	g.particles = liveParticles(g.particles)

	g.resolveBulletHits()
	g.resolveShipHit()

	if len(g.asteroids) == 0 && g.transitionTimer <= 0 {
		g.level++
		g.transitionTimer = g.cfg.Levels.Transition
		g.spawnWave()
		g.emit(core.EventLevelClear, "", 0.2, 0.15)
	}

	g.tickEffects(dt)
}

// resolveBulletHits destroys hit asteroids, scores them and splits them.
func (g *Game) resolveBulletHits() {
	hits := bulletHits(g.asteroids, g.bullets, g.cfg.Bullet.Size)
	if len(hits) == 0 {
		return
	}

	var children []Asteroid
	for _, ai := range hits {
		a := g.asteroids[ai]
		g.addScore(a.Points)
		g.addParticles(explosion(g.rng, g.cfg.Particles, a.Pos, g.cfg.Particles.ExplosionCount)...)
		children = append(children, a.Split(g.rng, &g.cfg)...)

		g.shake()
		tier := sizeConfig(&g.cfg, a.Size).Glitch
		if g.rng.Float64() < tier.Chance {
			g.glitch(tier)
			g.emit(core.EventHit, a.Size.String(), tier.Intensity, tier.Duration)
		}

		// hits are descending, so earlier indices stay valid
		g.asteroids = append(g.asteroids[:ai], g.asteroids[ai+1:]...)
	}
	g.asteroids = append(g.asteroids, children...)
	g.bullets = liveBullets(g.bullets)
}

// resolveShipHit kills the ship on asteroid contact.
func (g *Game) resolveShipHit() {
	if shipHit(&g.ship, g.cfg.Ship.Size, g.asteroids) < 0 {
		return
	}

	gp := g.cfg.Gameplay
	g.ship.Alive = false
	g.ship.Thrusting = false
	g.lives--
	g.respawnTimer = gp.RespawnDelay
	g.addParticles(explosion(g.rng, g.cfg.Particles, g.ship.Pos, deathParticles)...)
	g.shake()
	g.glitch(gp.DeathGlitch)
	g.emit(core.EventDeath, "DEATH", gp.DeathGlitch.Intensity, gp.DeathGlitch.Duration)

	if g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseGameOver
	}
}

// updateDrift keeps asteroids and debris moving behind the game-over screen.
func (g *Game) updateDrift(dt float64) {
	for i := range g.asteroids {
		g.asteroids[i].update(dt, g.width, g.height)
	}
	for i := range g.particles {
		g.particles[i].update(dt)
	}
	g.particles = liveParticles(g.particles)
}

func (g *Game) tickEffects(dt float64) {
	g.glitchTimer = core.Countdown(g.glitchTimer, dt)
	g.shakeTimer = core.Countdown(g.shakeTimer, dt)
	g.transitionTimer = core.Countdown(g.transitionTimer, dt)
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

// addParticles appends debris, dropping the oldest beyond the cap.
func (g *Game) addParticles(ps ...Particle) {
	g.particles = append(g.particles, ps...)
	if limit := g.cfg.Particles.MaxParticles; limit > 0 && len(g.particles) > limit {
		g.particles = append(g.particles[:0], g.particles[len(g.particles)-limit:]...)
	}
}

func (g *Game) shake() {
	if g.runtime.ReducedMotion {
		return
	}
	g.shakeTimer = g.cfg.Gameplay.ShakeDuration
}

// glitch starts a cosmetic glitch unless a longer one is already running.
func (g *Game) glitch(tier config.GlitchTier) {
	if g.runtime.ReducedMotion {
		return
	}
	if tier.Duration > g.glitchTimer {
		g.glitchTimer = tier.Duration
		g.glitchIntensity = tier.Intensity
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

func liveBullets(bs []Bullet) []Bullet {
	out := bs[:0]
	for _, b := range bs {
		if b.Alive {
			out = append(out, b)
		}
	}
	return out
}

func liveParticles(ps []Particle) []Particle {
	out := ps[:0]
	for _, p := range ps {
		if p.Alive {
			out = append(out, p)
		}
	}
	return out
}
