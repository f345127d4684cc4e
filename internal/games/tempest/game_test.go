package tempest

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
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

func press(actions ...core.Action) core.InputFrame {
	var in core.InputFrame
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func held(actions ...core.Action) core.InputFrame {
	var in core.InputFrame
	for _, a := range actions {
		in.Held = in.Held.With(a)
	}
	return in
}

func started(seed int64) *Game {
	g := newTestGame(seed)
	g.Step(frame, press(core.ActionConfirm))
	return g
}

func collect(g *Game) *[]core.Event {
	var events []core.Event
	g.Subscribe(func(ev core.Event) {
		events = append(events, ev)
	})
	return &events
}

func hasKind(events []core.Event, kind string) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestResetStartsInStartPhase(t *testing.T) {
	g := newTestGame(1)
	s := g.State()
	if s.Phase != core.PhaseStart {
		t.Errorf("Phase = %v, expected %v", s.Phase, core.PhaseStart)
	}
	if s.Score != 0 || s.Lives != 3 || s.Level != 1 {
		t.Errorf("State = %+v, expected score 0, lives 3, level 1", s)
	}
	if len(g.enemies) != 0 || len(g.bullets) != 0 || len(g.queue) != 0 {
		t.Errorf("expected empty collections after reset")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 9}

	once := New()
	once.Reset(cfg)

	twice := started(9)
	for range 200 {
		twice.Step(frame, press(core.ActionFire, core.ActionRight))
	}
	twice.Reset(cfg)
	twice.Reset(cfg)

	if !reflect.DeepEqual(once.Snapshot(), twice.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", once.Snapshot(), twice.Snapshot())
	}
}

func TestShapes(t *testing.T) {
	if len(Shapes) != 16 {
		t.Fatalf("len(Shapes) = %d, expected 16", len(Shapes))
	}
	tests := []struct {
		name   string
		lanes  int
		closed bool
	}{
		{"circle", 16, true},
		{"square", 4, true},
		{"plus", 12, true},
		{"V", 6, false},
		{"flat", 7, false},
		{"steps", 9, false},
		{"clover", 24, true},
		{"W", 6, false},
		{"circle-II", 20, true},
	}
	byName := map[string]Shape{}
	for _, s := range Shapes {
		byName[s.Name] = s
		for _, v := range s.Vertices {
			if math.Abs(v.X) > 1+1e-9 || math.Abs(v.Y) > 1+1e-9 {
				t.Errorf("%s vertex %+v outside unit square", s.Name, v)
			}
		}
	}
	for _, tt := range tests {
		s, ok := byName[tt.name]
		if !ok {
			t.Errorf("missing shape %q", tt.name)
			continue
		}
		if s.Lanes() != tt.lanes || s.Closed != tt.closed {
			t.Errorf("%s: lanes %d closed %v, expected %d %v", tt.name, s.Lanes(), s.Closed, tt.lanes, tt.closed)
		}
	}
}

func TestShapeCyclesEverySixteenLevels(t *testing.T) {
	if ShapeForLevel(17).Name != ShapeForLevel(1).Name {
		t.Errorf("level 17 shape = %s, expected %s", ShapeForLevel(17).Name, ShapeForLevel(1).Name)
	}
	cfg := config.DefaultTempestConfig()
	if got := speedScale(&cfg, 1); got != 1 {
		t.Errorf("speedScale(1) = %v, expected 1", got)
	}
	if got := speedScale(&cfg, 17); math.Abs(got-1.15) > 1e-9 {
		t.Errorf("speedScale(17) = %v, expected 1.15", got)
	}
}

func TestLaneStepWrapsAndClamps(t *testing.T) {
	circle := ShapeForLevel(1)
	if got := circle.Step(0, -1); got != 15 {
		t.Errorf("closed Step(0, -1) = %d, expected 15", got)
	}
	if got := circle.Step(15, 1); got != 0 {
		t.Errorf("closed Step(15, 1) = %d, expected 0", got)
	}
	v := ShapeForLevel(6)
	if v.Closed {
		t.Fatalf("level 6 shape %s should be open", v.Name)
	}
	if got := v.Step(0, -1); got != 0 {
		t.Errorf("open Step(0, -1) = %d, expected 0", got)
	}
	if got := v.Step(5, 1); got != 5 {
		t.Errorf("open Step(5, 1) = %d, expected 5", got)
	}
}

func TestMovementCooldown(t *testing.T) {
	g := started(1)
	right := press(core.ActionRight)

	g.Step(frame, right)
	if g.lane != 1 {
		t.Fatalf("lane = %d, expected 1", g.lane)
	}
	for range 4 {
		g.Step(frame, right)
	}
	if g.lane != 1 {
		t.Errorf("lane = %d during cooldown, expected 1", g.lane)
	}
	g.Step(frame, right)
	if g.lane != 2 {
		t.Errorf("lane = %d after cooldown, expected 2", g.lane)
	}
}

func TestSpawnQueueUnlocks(t *testing.T) {
	cfg := config.DefaultTempestConfig()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		level   int
		allowed map[EnemyType]bool
	}{
		{1, map[EnemyType]bool{Flipper: true}},
		{3, map[EnemyType]bool{Flipper: true, Tanker: true}},
		{5, map[EnemyType]bool{Flipper: true, Tanker: true, Spiker: true}},
		{7, map[EnemyType]bool{Flipper: true, Tanker: true, Spiker: true, Pulsar: true}},
	}
	for _, tt := range tests {
		q := buildSpawnQueue(rng, &cfg, tt.level)
		if want := cfg.Levels.EnemyCounts[tt.level-1]; len(q) != want {
			t.Errorf("level %d: queue length %d, expected %d", tt.level, len(q), want)
		}
		for _, e := range q {
			if !tt.allowed[e] {
				t.Errorf("level %d: %v not unlocked yet", tt.level, e)
			}
		}
	}

	if got := spawnInterval(&cfg, 1); got != 2.0 {
		t.Errorf("spawnInterval(1) = %v, expected 2", got)
	}
	if got := spawnInterval(&cfg, 30); got != 0.6 {
		t.Errorf("spawnInterval(30) = %v, expected floor 0.6", got)
	}
}

func TestEnemiesClimbMonotonically(t *testing.T) {
	cfg := config.DefaultTempestConfig()
	rng := rand.New(rand.NewSource(4))
	shape := ShapeForLevel(1)

	for _, typ := range []EnemyType{Flipper, Tanker, Spiker, Pulsar} {
		e := newEnemy(&cfg, typ, 3)
		for e.Depth > 0 {
			prev := e.Depth
			e.update(frame, 1, rng, &cfg, shape)
			if e.Depth >= prev {
				t.Fatalf("%v depth %v did not decrease from %v", typ, e.Depth, prev)
			}
			if e.Lane < 0 || e.Lane >= shape.Lanes() {
				t.Fatalf("%v lane %d out of range", typ, e.Lane)
			}
		}
	}
}

func TestLanesStayInRange(t *testing.T) {
	g := started(21)
	for i := range 4000 {
		in := press(core.ActionFire)
		if i%40 < 20 {
			in.Press(core.ActionLeft)
		}
		if g.phase == core.PhaseGameOver {
			in.Press(core.ActionConfirm)
		}
		g.Step(frame, in)

		n := g.shape.Lanes()
		if g.lane < 0 || g.lane >= n {
			t.Fatalf("player lane %d out of [0, %d)", g.lane, n)
		}
		for _, e := range g.enemies {
			if e.Lane < 0 || e.Lane >= n || e.FlipTarget < 0 || e.FlipTarget >= n {
				t.Fatalf("enemy lane %d (target %d) out of [0, %d)", e.Lane, e.FlipTarget, n)
			}
			if e.Depth <= 0 || e.Depth > 1 {
				t.Fatalf("enemy depth %v outside (0, 1] after resolution", e.Depth)
			}
		}
		if len(g.spikes) != n {
			t.Fatalf("spike lanes = %d, expected %d", len(g.spikes), n)
		}
	}
}

func TestSuperzapperScenario(t *testing.T) {
	g := started(2)
	for lane := range 5 {
		g.enemies = append(g.enemies, newEnemy(&g.cfg, Flipper, lane*2))
		g.enemies[lane].Depth = 0.5
	}

	g.Step(frame, press(core.ActionZap))
	if len(g.enemies) != 0 {
		t.Fatalf("enemies = %d after first zap, expected 0", len(g.enemies))
	}
	if g.score != 5*150 {
		t.Errorf("score = %d, expected %d", g.score, 5*150)
	}
	if g.charges != 1 {
		t.Errorf("charges = %d, expected 1", g.charges)
	}

	g.Step(frame, core.InputFrame{})
	for lane := range 3 {
		e := newEnemy(&g.cfg, Flipper, lane)
		e.Depth = 0.5
		g.enemies = append(g.enemies, e)
	}
	g.Step(frame, press(core.ActionZap))
	if len(g.enemies) != 2 {
		t.Errorf("enemies = %d after second zap, expected 2", len(g.enemies))
	}
	if g.score != 6*150 {
		t.Errorf("score = %d, expected %d", g.score, 6*150)
	}
	if g.charges != 0 {
		t.Errorf("charges = %d, expected 0", g.charges)
	}

	g.Step(frame, core.InputFrame{})
	g.Step(frame, press(core.ActionZap))
	if len(g.enemies) != 2 {
		t.Errorf("zap without charges removed an enemy")
	}
}

func TestSuperzapperIsEdgeTriggered(t *testing.T) {
	g := started(2)
	events := collect(g)

	g.Step(frame, press(core.ActionZap))
	for range 30 {
		g.Step(frame, held(core.ActionZap))
	}
	if g.charges != 1 {
		t.Errorf("charges = %d while holding zap, expected 1", g.charges)
	}

	g.Step(frame, core.InputFrame{})
	g.Step(frame, press(core.ActionZap))
	if g.charges != 0 {
		t.Errorf("charges = %d after second press, expected 0", g.charges)
	}

	n := 0
	for _, ev := range *events {
		if ev.Kind == core.EventSuperzapper {
			n++
		}
	}
	if n != 2 {
		t.Errorf("superzapper events = %d, expected 2", n)
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	g := started(3)
	e := newEnemy(&g.cfg, Flipper, 0)
	e.Depth = 0.1
	g.enemies = []Enemy{e}

	g.Step(frame, press(core.ActionFire))
	for i := 0; i < 10 && len(g.enemies) > 0; i++ {
		g.Step(frame, core.InputFrame{})
	}
	if len(g.enemies) != 0 {
		t.Fatalf("enemy survived: %+v", g.enemies)
	}
	if g.score != 150 {
		t.Errorf("score = %d, expected 150", g.score)
	}
	if len(g.bullets) != 0 {
		t.Errorf("bullets = %d, expected the bullet to be consumed", len(g.bullets))
	}
}

func TestBulletMissesOtherLane(t *testing.T) {
	g := started(3)
	e := newEnemy(&g.cfg, Tanker, 4)
	e.Depth = 0.5
	g.enemies = []Enemy{e}
	g.bullets = []Bullet{{Lane: 3, Depth: 0.49}}

	g.Step(frame, core.InputFrame{})
	if len(g.enemies) != 1 || g.score != 0 {
		t.Errorf("bullet in lane 3 hit an enemy in lane 4")
	}
}

func TestTankerSplitsWhenShot(t *testing.T) {
	g := started(3)
	e := newEnemy(&g.cfg, Tanker, 2)
	e.Depth = 0.5
	g.enemies = []Enemy{e}
	g.bullets = []Bullet{{Lane: 2, Depth: 0.49}}

	g.Step(frame, core.InputFrame{})
	if g.score != 100 {
		t.Errorf("score = %d, expected 100", g.score)
	}
	if len(g.enemies) != 2 {
		t.Fatalf("enemies = %d, expected 2 flippers", len(g.enemies))
	}
	lanes := map[int]bool{}
	for _, c := range g.enemies {
		if c.Type != Flipper {
			t.Errorf("child type = %v, expected FLIPPER", c.Type)
		}
		if c.Depth > 0.5 || c.Depth < 0.45 {
			t.Errorf("child depth = %v, expected near the tanker", c.Depth)
		}
		lanes[c.Lane] = true
	}
	if !lanes[1] || !lanes[3] {
		t.Errorf("child lanes = %v, expected 1 and 3", lanes)
	}
}

func TestEnemyAtRimKillsPlayerInLane(t *testing.T) {
	g := started(5)
	events := collect(g)
	e := newEnemy(&g.cfg, Flipper, 0)
	e.Depth = 0.001
	g.enemies = []Enemy{e}

	g.Step(frame, core.InputFrame{})
	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if len(g.enemies) != 0 {
		t.Errorf("enemy should be removed at the rim")
	}
	if g.alive() {
		t.Errorf("player should be in its death animation")
	}
	if !hasKind(*events, core.EventDeath) {
		t.Errorf("expected a death event, got %+v", *events)
	}
}

func TestEnemyAtRimOtherLaneIsHarmless(t *testing.T) {
	g := started(5)
	e := newEnemy(&g.cfg, Flipper, 5)
	e.Depth = 0.001
	g.enemies = []Enemy{e}

	g.Step(frame, core.InputFrame{})
	if g.lives != 3 {
		t.Errorf("lives = %d, expected 3", g.lives)
	}
	if len(g.enemies) != 0 {
		t.Errorf("enemy should be removed at the rim")
	}
}

func TestTankerAtRimSpawnsChildren(t *testing.T) {
	g := started(5)
	e := newEnemy(&g.cfg, Tanker, 4)
	e.Depth = 0.001
	g.enemies = []Enemy{e}

	g.Step(frame, core.InputFrame{})
	if len(g.enemies) != 2 {
		t.Fatalf("enemies = %d, expected 2", len(g.enemies))
	}
	for _, c := range g.enemies {
		if c.Depth != g.cfg.Enemies.ChildDepth {
			t.Errorf("child depth = %v, expected %v", c.Depth, g.cfg.Enemies.ChildDepth)
		}
		if c.Lane != 3 && c.Lane != 5 {
			t.Errorf("child lane = %d, expected 3 or 5", c.Lane)
		}
	}
}

func TestSpikeAtRimKillsPlayer(t *testing.T) {
	g := started(6)
	g.spikes[0] = []float64{0.02}

	g.Step(frame, core.InputFrame{})
	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if len(g.spikes[0]) != 0 {
		t.Errorf("spike should be consumed, got %v", g.spikes[0])
	}
}

func TestBulletClearsSpike(t *testing.T) {
	g := started(6)
	g.spikes[3] = []float64{0.5}
	g.bullets = []Bullet{{Lane: 3, Depth: 0.48}}

	g.Step(frame, core.InputFrame{})
	if len(g.spikes[3]) != 0 {
		t.Errorf("spikes = %v, expected cleared", g.spikes[3])
	}
	if len(g.bullets) != 0 {
		t.Errorf("bullet should be consumed")
	}
	if g.score != 0 {
		t.Errorf("score = %d, spikes are worth nothing", g.score)
	}
}

func TestOverlappingSpikesClearNewestFirst(t *testing.T) {
	tests := []struct {
		name   string
		spikes []float64
		depth  float64
		want   []float64
	}{
		{"both in range", []float64{0.50, 0.54}, 0.52, []float64{0.50}},
		{"only older in range", []float64{0.50, 0.60}, 0.47, []float64{0.60}},
		{"three segments", []float64{0.40, 0.44, 0.48}, 0.44, []float64{0.40, 0.44}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := started(6)
			g.spikes[3] = append([]float64(nil), tt.spikes...)
			g.bullets = []Bullet{{Lane: 3, Depth: tt.depth}}

			g.resolveBullets()
			if !reflect.DeepEqual(g.spikes[3], tt.want) {
				t.Errorf("spikes = %v, expected %v", g.spikes[3], tt.want)
			}
			if len(g.bullets) != 0 {
				t.Errorf("bullet should be consumed")
			}
		})
	}
}

func TestRimSpikeConsumesNewestFirst(t *testing.T) {
	g := started(6)
	g.spikes[0] = []float64{0.01, 0.02}

	g.resolveHazards()
	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if !reflect.DeepEqual(g.spikes[0], []float64{0.01}) {
		t.Errorf("spikes = %v, expected [0.01]", g.spikes[0])
	}
}

func TestActivePulsarKillsPlayer(t *testing.T) {
	g := started(7)
	e := newEnemy(&g.cfg, Pulsar, 0)
	e.Depth = 0.6
	g.enemies = []Enemy{e}

	g.Step(frame, core.InputFrame{})
	if g.lives != 3 {
		t.Fatalf("inactive pulsar killed the player")
	}

	g.enemies[0].Active = true
	g.enemies[0].PulseTimer = 1
	g.Step(frame, core.InputFrame{})
	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
}

func TestSpikerLeavesTrail(t *testing.T) {
	g := started(8)
	g.enemies = []Enemy{newEnemy(&g.cfg, Spiker, 6)}
	for range 60 {
		g.Step(frame, core.InputFrame{})
	}
	if len(g.spikes[6]) == 0 {
		t.Errorf("spiker left no trail")
	}
}

func TestGameOverAfterDeathAnimation(t *testing.T) {
	g := started(9)
	g.lives = 1
	e := newEnemy(&g.cfg, Flipper, 0)
	e.Depth = 0.001
	g.enemies = []Enemy{e}

	g.Step(frame, core.InputFrame{})
	if g.phase != core.PhasePlaying {
		t.Fatalf("Phase = %v during death animation, expected playing", g.phase)
	}
	for range 40 {
		g.Step(frame, core.InputFrame{})
	}
	if g.phase != core.PhaseGameOver || !g.State().GameOver {
		t.Fatalf("Phase = %v, expected game over", g.phase)
	}

	g.Step(frame, press(core.ActionConfirm))
	if g.phase != core.PhasePlaying || g.lives != 3 || g.score != 0 || g.level != 1 {
		t.Errorf("restart state = %+v", g.State())
	}
}

func TestLevelCompleteAndWarp(t *testing.T) {
	g := started(10)
	events := collect(g)
	g.Step(frame, press(core.ActionZap))
	g.queue = nil
	g.enemies = nil

	g.Step(frame, core.InputFrame{})
	if g.phase != core.PhaseLevelComplete {
		t.Fatalf("Phase = %v, expected level complete", g.phase)
	}
	for i := 0; i < 600 && g.level == 1; i++ {
		g.Step(frame, core.InputFrame{})
	}
	if g.level != 2 || g.phase != core.PhasePlaying {
		t.Fatalf("level %d phase %v, expected level 2 playing", g.level, g.phase)
	}
	if g.shape.Name != "square" || len(g.spikes) != 4 {
		t.Errorf("shape = %s with %d spike lanes, expected square with 4", g.shape.Name, len(g.spikes))
	}
	if g.charges != g.cfg.Gameplay.SuperzapperCharge {
		t.Errorf("charges = %d, expected refill to %d", g.charges, g.cfg.Gameplay.SuperzapperCharge)
	}
	if len(g.queue) != g.cfg.Levels.EnemyCounts[1] {
		t.Errorf("queue = %d, expected %d", len(g.queue), g.cfg.Levels.EnemyCounts[1])
	}
	if !hasKind(*events, core.EventLevelClear) || !hasKind(*events, core.EventWarp) {
		t.Errorf("expected level_clear and warp events, got %+v", *events)
	}
}

func TestExtraLife(t *testing.T) {
	g := started(11)
	g.score = 19950
	e := newEnemy(&g.cfg, Flipper, 2)
	e.Depth = 0.5
	g.enemies = []Enemy{e}
	g.bullets = []Bullet{{Lane: 2, Depth: 0.49}}

	g.Step(frame, core.InputFrame{})
	if g.lives != 4 {
		t.Errorf("lives = %d, expected 4", g.lives)
	}
	if g.nextExtraLife != 40000 {
		t.Errorf("nextExtraLife = %d, expected 40000", g.nextExtraLife)
	}
}

func TestFireCapAndCooldown(t *testing.T) {
	g := started(12)
	g.Step(frame, press(core.ActionFire))
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(g.bullets))
	}
	g.Step(frame, held(core.ActionFire))
	if len(g.bullets) != 1 {
		t.Errorf("bullets = %d, expected cooldown to block a second shot", len(g.bullets))
	}
	for range 120 {
		g.Step(frame, held(core.ActionFire))
		if len(g.bullets) > g.cfg.Bullet.Max {
			t.Fatalf("bullets = %d, exceeds max %d", len(g.bullets), g.cfg.Bullet.Max)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := started(42)
		for i := range 900 {
			var in core.InputFrame
			in.Press(core.ActionFire)
			switch {
			case i%90 < 30:
				in.Press(core.ActionRight)
			case i%90 < 45:
				in.Press(core.ActionLeft)
			}
			if i == 400 {
				in.Press(core.ActionZap)
			}
			g.Step(frame, in)
		}
		return g.Snapshot()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different snapshots:\n%+v\n%+v", a, b)
	}
}

func TestNoSurfaceIsNoop(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	before := g.Snapshot()
	g.Step(frame, press(core.ActionConfirm))
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Errorf("Step without a surface changed state")
	}
}

func TestReducedMotionSuppressesEffects(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 1, ReducedMotion: true})
	events := collect(g)
	g.Step(frame, press(core.ActionConfirm))

	g.Step(frame, press(core.ActionZap))
	e := newEnemy(&g.cfg, Flipper, 0)
	e.Depth = 0.001
	g.enemies = []Enemy{e}
	g.Step(frame, core.InputFrame{})

	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if len(*events) != 0 {
		t.Errorf("events = %+v, expected none", *events)
	}
	if g.glitchTimer != 0 || g.shakeTimer != 0 {
		t.Errorf("glitch %v shake %v, expected 0", g.glitchTimer, g.shakeTimer)
	}
}

func TestRender(t *testing.T) {
	g := started(13)
	e := newEnemy(&g.cfg, Flipper, 0)
	e.Depth = 0.5
	g.enemies = []Enemy{e}

	dst := core.NewScreen(80, 25)
	g.Render(dst)
	if !strings.Contains(dst.Row(0), "SCORE") {
		t.Errorf("HUD row = %q, expected SCORE", dst.Row(0))
	}
	if !strings.ContainsRune(dst.String(), '<') {
		t.Errorf("claw not drawn")
	}
	if !strings.ContainsRune(dst.String(), enemyRunes[Flipper]) {
		t.Errorf("flipper not drawn")
	}
}
