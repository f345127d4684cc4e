package tempest

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// innerScale is the size of the far end of the tube relative to the rim.
const innerScale = 0.15

// Shape is a tube cross-section. Vertices are normalized to [-1, 1].
// Lanes run between consecutive vertices; closed shapes also join the last
// vertex to the first.
type Shape struct {
	Name     string
	Vertices []core.Vec2
	Closed   bool
}

// Lanes returns the number of playable lanes.
func (s Shape) Lanes() int {
	if s.Closed {
		return len(s.Vertices)
	}
	return len(s.Vertices) - 1
}

// Step moves lane by dir, wrapping on closed shapes and clamping on open ones.
func (s Shape) Step(lane, dir int) int {
	n := s.Lanes()
	if s.Closed {
		return core.WrapInt(lane+dir, n)
	}
	return core.Clamp(lane+dir, 0, n-1)
}

// edge returns the two rim vertices bounding a lane.
func (s Shape) edge(lane int) (core.Vec2, core.Vec2) {
	n := len(s.Vertices)
	i0 := core.WrapInt(lane, n)
	i1 := i0 + 1
	if s.Closed {
		i1 %= n
	} else {
		i1 = min(i1, n-1)
	}
	return s.Vertices[i0], s.Vertices[i1]
}

// Vertex returns vertex i pulled toward the far end by depth.
func (s Shape) Vertex(i int, depth float64) core.Vec2 {
	v := s.Vertices[core.WrapInt(i, len(s.Vertices))]
	return v.Scale(depthScale(depth))
}

// LanePoint returns the center of a lane at depth in normalized tube space.
func (s Shape) LanePoint(lane int, depth float64) core.Vec2 {
	a, b := s.edge(lane)
	mid := core.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return mid.Scale(depthScale(depth))
}

func depthScale(depth float64) float64 {
	d := core.ClampF(depth, 0, 1)
	return 1 - d*(1-innerScale)
}

func regularPolygon(n int, start float64) []core.Vec2 {
	out := make([]core.Vec2, n)
	for i := range out {
		out[i] = core.FromAngle(start+float64(i)/float64(n)*math.Pi*2, 1)
	}
	return out
}

func star(points int, innerRatio float64) []core.Vec2 {
	total := points * 2
	out := make([]core.Vec2, total)
	for i := range out {
		r := 1.0
		if i%2 == 1 {
			r = innerRatio
		}
		out[i] = core.FromAngle(-math.Pi/2+float64(i)/float64(total)*math.Pi*2, r)
	}
	return out
}

func clover() []core.Vec2 {
	const lobes, steps = 3, 24
	out := make([]core.Vec2, steps)
	for i := range out {
		a := float64(i) / steps * math.Pi * 2
		r := 0.5 + 0.5*math.Abs(math.Cos(lobes*a/2))
		out[i] = core.FromAngle(a, r)
	}
	return out
}

func infinity() []core.Vec2 {
	const steps = 24
	out := make([]core.Vec2, steps)
	for i := range out {
		t := float64(i) / steps * math.Pi * 2
		scale := 1 / (1 + math.Sin(t)*math.Sin(t)*0.5)
		out[i] = core.Vec2{X: math.Cos(t) * scale, Y: math.Sin(2*t) * 0.5 * scale}
	}
	return out
}

func pts(xy ...float64) []core.Vec2 {
	out := make([]core.Vec2, len(xy)/2)
	for i := range out {
		out[i] = core.Vec2{X: xy[2*i], Y: xy[2*i+1]}
	}
	return out
}

// Shapes is the level cycle; level n uses Shapes[(n-1) % len(Shapes)].
var Shapes = []Shape{
	{Name: "circle", Vertices: regularPolygon(16, -math.Pi/2), Closed: true},
	{Name: "square", Vertices: regularPolygon(4, -math.Pi/4), Closed: true},
	{Name: "plus", Vertices: pts(
		-0.3, -1, 0.3, -1, 0.3, -0.3, 1, -0.3,
		1, 0.3, 0.3, 0.3, 0.3, 1, -0.3, 1,
		-0.3, 0.3, -1, 0.3, -1, -0.3, -0.3, -0.3,
	), Closed: true},
	{Name: "triangle", Vertices: regularPolygon(3, -math.Pi/2), Closed: true},
	{Name: "star", Vertices: star(5, 0.45), Closed: true},
	{Name: "V", Vertices: pts(
		-1, -0.8, -0.6, -0.6, -0.3, -0.2,
		0, 0.4,
		0.3, -0.2, 0.6, -0.6, 1, -0.8,
	)},
	{Name: "flat", Vertices: pts(
		-1, 0, -0.7, 0, -0.4, 0, -0.1, 0,
		0.1, 0, 0.4, 0, 0.7, 0, 1, 0,
	)},
	{Name: "pentagon", Vertices: regularPolygon(5, -math.Pi/2), Closed: true},
	{Name: "steps", Vertices: pts(
		-1, 0.6, -0.6, 0.6, -0.6, 0.2, -0.2, 0.2,
		-0.2, -0.2, 0.2, -0.2, 0.2, -0.6, 0.6, -0.6,
		0.6, -1, 1, -1,
	)},
	{Name: "hexagon", Vertices: regularPolygon(6, -math.Pi/2), Closed: true},
	{Name: "clover", Vertices: clover(), Closed: true},
	{Name: "infinity", Vertices: infinity(), Closed: true},
	{Name: "W", Vertices: pts(
		-1, -0.8, -0.65, 0.6, -0.3, -0.2,
		0, 0.8,
		0.3, -0.2, 0.65, 0.6, 1, -0.8,
	)},
	{Name: "octagon", Vertices: regularPolygon(8, -math.Pi/2), Closed: true},
	{Name: "diamond", Vertices: pts(
		0, -1, 0.5, -0.3, 1, 0,
		0.5, 0.3, 0, 1, -0.5, 0.3,
		-1, 0, -0.5, -0.3,
	), Closed: true},
	{Name: "circle-II", Vertices: regularPolygon(20, -math.Pi/2), Closed: true},
}

// ShapeForLevel returns the tube used on a level.
func ShapeForLevel(level int) Shape {
	return Shapes[core.WrapInt(level-1, len(Shapes))]
}
