package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// SizeClass is an asteroid's size. Splitting always moves one step down.
type SizeClass int

const (
	SizeLarge SizeClass = iota
	SizeMedium
	SizeSmall
)

// String returns the size name used in event categories.
func (s SizeClass) String() string {
	switch s {
	case SizeLarge:
		return "LARGE"
	case SizeMedium:
		return "MEDIUM"
	case SizeSmall:
		return "SMALL"
	default:
		return "UNKNOWN"
	}
}

// Next returns the size class of split children and false for SMALL.
func (s SizeClass) Next() (SizeClass, bool) {
	switch s {
	case SizeLarge:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	default:
		return s, false
	}
}

// sizeConfig looks up the tunables for a size class.
func sizeConfig(cfg *config.AsteroidsConfig, s SizeClass) config.AsteroidSize {
	switch s {
	case SizeLarge:
		return cfg.Sizes.Large
	case SizeMedium:
		return cfg.Sizes.Medium
	default:
		return cfg.Sizes.Small
	}
}

// Ship is the player's craft.
type Ship struct {
	Pos          core.Vec2
	Vel          core.Vec2
	Rotation     float64 // radians, -pi/2 points up
	Thrusting    bool
	FireCooldown float64
	Invincible   float64 // remaining invincibility
	Alive        bool
}

// newShip places a fresh ship at pos pointing up.
func newShip(pos core.Vec2, invincibility float64) Ship {
	return Ship{
		Pos:        pos,
		Rotation:   -math.Pi / 2,
		Invincible: invincibility,
		Alive:      true,
	}
}

// IsInvincible reports whether the ship ignores asteroid contact.
func (s *Ship) IsInvincible() bool {
	return s.Invincible > 0
}

// Nose returns the tip of the ship where bullets spawn.
func (s *Ship) Nose(size float64) core.Vec2 {
	return s.Pos.Add(core.FromAngle(s.Rotation, size*1.4))
}

// Tail returns the exhaust point behind the ship.
func (s *Ship) Tail(size float64) core.Vec2 {
	return s.Pos.Add(core.FromAngle(s.Rotation, -size*1.1))
}

// Vertices returns the nose, left and right corners of the hull.
func (s *Ship) Vertices(size float64) [3]core.Vec2 {
	cos, sin := math.Cos(s.Rotation), math.Sin(s.Rotation)
	return [3]core.Vec2{
		s.Nose(size),
		{X: s.Pos.X - cos*size - sin*size, Y: s.Pos.Y - sin*size + cos*size},
		{X: s.Pos.X - cos*size + sin*size, Y: s.Pos.Y - sin*size - cos*size},
	}
}

// update integrates thrust, friction and the speed cap, then wraps.
// Friction is specified per 1/60 s and scaled to dt.
func (s *Ship) update(dt float64, ship config.AsteroidsShip, w, h float64) {
	if !s.Alive {
		return
	}
	if s.Thrusting {
		s.Vel = s.Vel.Add(core.FromAngle(s.Rotation, ship.Thrust*dt))
	}
	s.Vel = s.Vel.Scale(math.Pow(ship.Friction, dt*60))

	if speed := s.Vel.Len(); speed > ship.MaxSpeed {
		s.Vel = s.Vel.Scale(ship.MaxSpeed / speed)
	}

	s.Pos.X = core.Wrap(s.Pos.X+s.Vel.X*dt, w)
	s.Pos.Y = core.Wrap(s.Pos.Y+s.Vel.Y*dt, h)

	s.FireCooldown = core.Countdown(s.FireCooldown, dt)
	s.Invincible = core.Countdown(s.Invincible, dt)
}

// outlinePoint is one vertex of an asteroid's jagged outline.
type outlinePoint struct {
	Angle float64
	Dist  float64
}

// Asteroid is a drifting rock.
type Asteroid struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Size      SizeClass
	Radius    float64
	Points    int
	Spin      float64 // current outline rotation
	SpinSpeed float64
	Outline   []outlinePoint
}

// newAsteroid creates an asteroid at pos with a random heading and outline.
func newAsteroid(rng *rand.Rand, cfg *config.AsteroidsConfig, pos core.Vec2, size SizeClass) Asteroid {
	sc := sizeConfig(cfg, size)
	angle := rng.Float64() * math.Pi * 2
	speed := sc.MinSpeed + rng.Float64()*(sc.MaxSpeed-sc.MinSpeed)

	a := Asteroid{
		Pos:       pos,
		Vel:       core.FromAngle(angle, speed),
		Size:      size,
		Radius:    sc.Radius,
		Points:    sc.Points,
		SpinSpeed: (rng.Float64() - 0.5) * 2,
	}

	n := cfg.Shape.JaggedVertices
	a.Outline = make([]outlinePoint, n)
	for i := range a.Outline {
		jag := 1 - cfg.Shape.Jaggedness + rng.Float64()*cfg.Shape.Jaggedness*2
		a.Outline[i] = outlinePoint{
			Angle: float64(i) / float64(n) * math.Pi * 2,
			Dist:  sc.Radius * jag,
		}
	}
	return a
}

// Vertices returns the outline in world coordinates.
func (a *Asteroid) Vertices() []core.Vec2 {
	out := make([]core.Vec2, len(a.Outline))
	for i, p := range a.Outline {
		out[i] = a.Pos.Add(core.FromAngle(p.Angle+a.Spin, p.Dist))
	}
	return out
}

func (a *Asteroid) update(dt, w, h float64) {
	a.Pos.X = core.Wrap(a.Pos.X+a.Vel.X*dt, w)
	a.Pos.Y = core.Wrap(a.Pos.Y+a.Vel.Y*dt, h)
	a.Spin += a.SpinSpeed * dt
}

// Split returns the children of a destroyed asteroid: SplitCount rocks of
// the next smaller size at the parent's position, or none for SMALL.
func (a *Asteroid) Split(rng *rand.Rand, cfg *config.AsteroidsConfig) []Asteroid {
	next, ok := a.Size.Next()
	if !ok {
		return nil
	}
	children := make([]Asteroid, 0, cfg.Shape.SplitCount)
	for range cfg.Shape.SplitCount {
		children = append(children, newAsteroid(rng, cfg, a.Pos, next))
	}
	return children
}

// Bullet is a ship projectile.
type Bullet struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Lifetime float64
	Alive    bool
}

func newBullet(pos core.Vec2, rotation float64, b config.AsteroidsBullet) Bullet {
	return Bullet{
		Pos:      pos,
		Vel:      core.FromAngle(rotation, b.Speed),
		Lifetime: b.Lifetime,
		Alive:    true,
	}
}

func (b *Bullet) update(dt, w, h float64) {
	b.Pos.X = core.Wrap(b.Pos.X+b.Vel.X*dt, w)
	b.Pos.Y = core.Wrap(b.Pos.Y+b.Vel.Y*dt, h)
	b.Lifetime -= dt
	if b.Lifetime <= 0 {
		b.Alive = false
	}
}

// Particle is cosmetic debris. Particles do not wrap.
type Particle struct {
	Pos         core.Vec2
	Vel         core.Vec2
	Lifetime    float64
	MaxLifetime float64
	Color       core.Color
	Alive       bool
}

// Alpha returns the remaining life fraction in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return core.ClampF(p.Lifetime/p.MaxLifetime, 0, 1)
}

func (p *Particle) update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		p.Alive = false
	}
}

var particleColors = []core.Color{
	core.ColorBrightCyan,
	core.ColorNeonPink,
	core.ColorBrightYellow,
	core.ColorNeonGreen,
}

// explosion creates count debris particles at pos.
func explosion(rng *rand.Rand, p config.AsteroidsParticles, pos core.Vec2, count int) []Particle {
	out := make([]Particle, 0, count)
	for range count {
		angle := rng.Float64() * math.Pi * 2
		speed := p.MinSpeed + rng.Float64()*(p.MaxSpeed-p.MinSpeed)
		life := p.Lifetime * (0.5 + rng.Float64()*0.5)
		out = append(out, Particle{
			Pos:         pos,
			Vel:         core.FromAngle(angle, speed),
			Lifetime:    life,
			MaxLifetime: life,
			Color:       particleColors[rng.Intn(len(particleColors))],
			Alive:       true,
		})
	}
	return out
}

// thrustSpark creates one short-lived exhaust particle.
func thrustSpark(rng *rand.Rand, p config.AsteroidsParticles, pos core.Vec2) Particle {
	life := p.ThrustMinLife + rng.Float64()*(p.ThrustMaxLife-p.ThrustMinLife)
	speed := p.ThrustMinSpeed + rng.Float64()*(p.ThrustMaxSpeed-p.ThrustMinSpeed)
	angle := rng.Float64() * math.Pi * 2
	return Particle{
		Pos:         pos,
		Vel:         core.FromAngle(angle, speed),
		Lifetime:    life,
		MaxLifetime: life,
		Color:       core.ColorBrightCyan,
		Alive:       true,
	}
}
