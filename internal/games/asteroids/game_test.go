package asteroids

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

const frame = 1.0 / 60

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: seed})
	return g
}

func press(a core.Action) core.InputFrame {
	var in core.InputFrame
	in.Press(a)
	return in
}

func started(seed int64) *Game {
	g := newTestGame(seed)
	g.Step(frame, press(core.ActionConfirm))
	return g
}

func TestResetStartsInStartPhase(t *testing.T) {
	g := newTestGame(1)
	s := g.State()
	if s.Phase != core.PhaseStart {
		t.Errorf("Phase = %v, expected %v", s.Phase, core.PhaseStart)
	}
	if len(g.asteroids) != 0 || len(g.bullets) != 0 || len(g.particles) != 0 {
		t.Errorf("expected empty collections after reset")
	}
	if s.Lives != 3 || s.Score != 0 || s.Level != 1 {
		t.Errorf("State = %+v, expected lives 3, score 0, level 1", s)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 7}

	once := New()
	once.Reset(cfg)

	twice := started(7)
	for range 30 {
		twice.Step(frame, press(core.ActionFire))
	}
	twice.Reset(cfg)
	twice.Reset(cfg)

	if !reflect.DeepEqual(once.Snapshot(), twice.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", once.Snapshot(), twice.Snapshot())
	}
}

func TestConfirmSpawnsWave(t *testing.T) {
	g := started(3)
	if g.phase != core.PhasePlaying {
		t.Fatalf("Phase = %v, expected playing", g.phase)
	}
	if len(g.asteroids) != 4 {
		t.Errorf("asteroids = %d, expected 4", len(g.asteroids))
	}
	for _, a := range g.asteroids {
		if a.Size != SizeLarge {
			t.Errorf("wave asteroid size = %v, expected LARGE", a.Size)
		}
	}
	if !g.ship.Alive || !g.ship.IsInvincible() {
		t.Errorf("ship should spawn alive and invincible")
	}
}

func TestWaveSize(t *testing.T) {
	g := newTestGame(1)
	tests := []struct {
		level int
		want  int
	}{
		{1, 4},
		{2, 5},
		{9, 12},
		{20, 12},
	}
	for _, tt := range tests {
		g.level = tt.level
		if got := g.waveSize(); got != tt.want {
			t.Errorf("waveSize(level %d) = %d, expected %d", tt.level, got, tt.want)
		}
	}
}

func TestSplitProducesNextSize(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	rng := rand.New(rand.NewSource(1))
	pos := core.Vec2{X: 100, Y: 100}

	tests := []struct {
		size      SizeClass
		wantCount int
		wantSize  SizeClass
	}{
		{SizeLarge, 2, SizeMedium},
		{SizeMedium, 2, SizeSmall},
		{SizeSmall, 0, SizeSmall},
	}
	for _, tt := range tests {
		a := newAsteroid(rng, &cfg, pos, tt.size)
		children := a.Split(rng, &cfg)
		if len(children) != tt.wantCount {
			t.Errorf("Split(%v) = %d children, expected %d", tt.size, len(children), tt.wantCount)
		}
		for _, c := range children {
			if c.Size != tt.wantSize {
				t.Errorf("Split(%v) child size = %v, expected %v", tt.size, c.Size, tt.wantSize)
			}
			if c.Pos != pos {
				t.Errorf("child pos = %v, expected %v", c.Pos, pos)
			}
		}
	}
}

func TestBulletSplitsLargeAsteroid(t *testing.T) {
	g := started(5)
	pos := core.Vec2{X: 100, Y: 100}
	rock := newAsteroid(g.rng, &g.cfg, pos, SizeLarge)
	rock.Vel = core.Vec2{}
	g.asteroids = []Asteroid{rock}
	g.bullets = []Bullet{{Pos: core.Vec2{X: 110, Y: 100}, Lifetime: 1, Alive: true}}

	g.Step(frame, core.InputFrame{})

	if g.score != 20 {
		t.Errorf("score = %d, expected 20", g.score)
	}
	if len(g.asteroids) != 2 {
		t.Fatalf("asteroids = %d, expected 2", len(g.asteroids))
	}
	for _, a := range g.asteroids {
		if a.Size != SizeMedium {
			t.Errorf("child size = %v, expected MEDIUM", a.Size)
		}
		if a.Pos != pos {
			t.Errorf("child pos = %v, expected %v", a.Pos, pos)
		}
	}
	if len(g.bullets) != 0 {
		t.Errorf("bullets = %d, expected the hitting bullet removed", len(g.bullets))
	}
}

func TestBulletHitsAtMostOneAsteroid(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	rng := rand.New(rand.NewSource(1))
	pos := core.Vec2{X: 200, Y: 200}
	rocks := []Asteroid{
		newAsteroid(rng, &cfg, pos, SizeLarge),
		newAsteroid(rng, &cfg, pos, SizeLarge),
	}
	bullets := []Bullet{{Pos: pos, Alive: true}}

	hits := bulletHits(rocks, bullets, 2)
	if len(hits) != 1 {
		t.Fatalf("hits = %v, expected one", hits)
	}
	if hits[0] != 1 {
		t.Errorf("hit index = %d, expected last asteroid first", hits[0])
	}
	if bullets[0].Alive {
		t.Errorf("bullet should be consumed")
	}
}

func TestShipDeathAndGameOver(t *testing.T) {
	g := started(9)
	g.lives = 1
	g.ship.Invincible = 0
	rock := newAsteroid(g.rng, &g.cfg, g.ship.Pos, SizeSmall)
	rock.Vel = core.Vec2{}
	g.asteroids = []Asteroid{rock}

	var kinds []string
	g.Subscribe(func(e core.Event) { kinds = append(kinds, e.Kind) })

	g.Step(frame, core.InputFrame{})

	if g.ship.Alive {
		t.Errorf("ship should be dead")
	}
	if g.phase != core.PhaseGameOver {
		t.Errorf("Phase = %v, expected game over", g.phase)
	}
	if len(kinds) == 0 || kinds[len(kinds)-1] != core.EventDeath {
		t.Errorf("events = %v, expected death last", kinds)
	}

	g.Step(frame, press(core.ActionConfirm))
	if g.phase != core.PhasePlaying || g.lives != 3 || g.score != 0 {
		t.Errorf("Confirm after game over should restart, got %+v", g.State())
	}
}

func TestInvincibleShipSurvives(t *testing.T) {
	g := started(9)
	rock := newAsteroid(g.rng, &g.cfg, g.ship.Pos, SizeSmall)
	g.asteroids = []Asteroid{rock}

	g.Step(frame, core.InputFrame{})

	if !g.ship.Alive {
		t.Errorf("invincible ship should survive contact")
	}
}

func TestRespawnAfterDelay(t *testing.T) {
	g := started(11)
	g.ship.Alive = false
	g.respawnTimer = 0.1
	g.asteroids = []Asteroid{newAsteroid(g.rng, &g.cfg, core.Vec2{}, SizeSmall)}

	for range 10 {
		g.Step(frame, core.InputFrame{})
	}
	if !g.ship.Alive {
		t.Fatalf("ship should respawn")
	}
	if g.ship.Pos != g.center() {
		t.Errorf("ship should respawn at the center")
	}
}

func TestLevelAdvancesWhenCleared(t *testing.T) {
	g := started(13)
	g.asteroids = nil

	g.Step(frame, core.InputFrame{})

	if g.level != 2 {
		t.Errorf("level = %d, expected 2", g.level)
	}
	if len(g.asteroids) != 5 {
		t.Errorf("asteroids = %d, expected 5", len(g.asteroids))
	}
}

func TestExtraLife(t *testing.T) {
	g := started(1)
	lives := g.lives
	g.addScore(10000)
	if g.lives != lives+1 {
		t.Errorf("lives = %d, expected %d", g.lives, lives+1)
	}
	if g.nextExtraLife != 20000 {
		t.Errorf("nextExtraLife = %d, expected 20000", g.nextExtraLife)
	}
}

func TestFireRespectsCooldownAndCap(t *testing.T) {
	g := started(2)
	g.asteroids = []Asteroid{newAsteroid(g.rng, &g.cfg, core.Vec2{}, SizeSmall)}

	g.Step(frame, press(core.ActionFire))
	g.Step(frame, press(core.ActionFire))
	if len(g.bullets) != 1 {
		t.Errorf("bullets = %d, expected 1 within the cooldown", len(g.bullets))
	}

	for range 600 {
		g.ship.FireCooldown = 0
		g.Step(frame, press(core.ActionFire))
		if len(g.bullets) > g.cfg.Bullet.Max {
			t.Fatalf("bullets = %d, exceeds max %d", len(g.bullets), g.cfg.Bullet.Max)
		}
	}
}

func TestWrapKeepsEntitiesInWorld(t *testing.T) {
	g := started(4)
	for range 600 {
		var in core.InputFrame
		in.Press(core.ActionUp)
		in.Press(core.ActionFire)
		g.Step(frame, in)

		for _, a := range g.asteroids {
			if a.Pos.X < 0 || a.Pos.X >= g.width || a.Pos.Y < 0 || a.Pos.Y >= g.height {
				t.Fatalf("asteroid out of world at %v", a.Pos)
			}
		}
		if g.ship.Pos.X < 0 || g.ship.Pos.X >= g.width {
			t.Fatalf("ship out of world at %v", g.ship.Pos)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := started(12345)
	g2 := started(12345)

	for i := range 300 {
		var in core.InputFrame
		if i%3 == 0 {
			in.Press(core.ActionFire)
		}
		if i > 100 && i < 150 {
			in.Press(core.ActionLeft)
			in.Press(core.ActionUp)
		}
		g1.Step(frame, in)
		g2.Step(frame, in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ for the same seed and input")
	}
}

func TestStepWithoutSurfaceIsNoop(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Step(frame, press(core.ActionConfirm))
	if g.phase != core.PhaseStart {
		t.Errorf("Phase = %v, expected start without a surface", g.phase)
	}
}

func TestReducedMotionSuppressesEvents(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 1, ReducedMotion: true})
	g.Step(frame, press(core.ActionConfirm))

	count := 0
	g.Subscribe(func(core.Event) { count++ })

	g.ship.Invincible = 0
	rock := newAsteroid(g.rng, &g.cfg, g.ship.Pos, SizeSmall)
	rock.Vel = core.Vec2{}
	g.asteroids = []Asteroid{rock}
	g.Step(frame, core.InputFrame{})

	if count != 0 {
		t.Errorf("events = %d, expected none with reduced motion", count)
	}
	if g.glitchTimer != 0 || g.shakeTimer != 0 {
		t.Errorf("glitch/shake timers should stay zero")
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := started(1)
	for range 120 {
		g.Step(frame, press(core.ActionFire))
	}
	screen := core.NewScreen(80, 25)
	g.Render(screen)
	if screen.Row(0) == "" {
		t.Errorf("expected HUD row")
	}
}
