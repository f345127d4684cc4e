package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		ra, rb   float64
		expected bool
	}{
		{"same center", Vec2{10, 10}, Vec2{10, 10}, 1, 1, true},
		{"inside radius sum", Vec2{0, 0}, Vec2{30, 0}, 40, 2, true},
		{"exactly touching", Vec2{0, 0}, Vec2{42, 0}, 40, 2, false},
		{"far apart", Vec2{0, 0}, Vec2{100, 100}, 10, 10, false},
		{"diagonal overlap", Vec2{0, 0}, Vec2{3, 4}, 3, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(tc.a, tc.ra, tc.b, tc.rb); got != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", got, tc.expected)
			}
			if got := CirclesOverlap(tc.b, tc.rb, tc.a, tc.ra); got != tc.expected {
				t.Errorf("CirclesOverlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, expected float64
	}{
		{5, 10, 5},
		{12, 10, 2},
		{-1, 10, 9},
		{-10, 10, 0},
		{0, 10, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.size); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.size, got, tc.expected)
		}
	}
}

func TestWrapInt(t *testing.T) {
	tests := []struct {
		v, n, expected int
	}{
		{3, 16, 3},
		{16, 16, 0},
		{-1, 16, 15},
		{-17, 16, 15},
		{5, 0, 0},
	}

	for _, tc := range tests {
		if got := WrapInt(tc.v, tc.n); got != tc.expected {
			t.Errorf("WrapInt(%d, %d) = %d, expected %d", tc.v, tc.n, got, tc.expected)
		}
	}
}

func TestVec2(t *testing.T) {
	v := FromAngle(-math.Pi/2, 10)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y+10) > 1e-9 {
		t.Errorf("FromAngle(-pi/2, 10) = %+v, expected (0, -10)", v)
	}
	if got := (Vec2{3, 4}).Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
	sum := Vec2{1, 2}.Add(Vec2{3, 4}).Sub(Vec2{1, 1}).Scale(2)
	if sum != (Vec2{6, 10}) {
		t.Errorf("vector arithmetic = %+v, expected (6, 10)", sum)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		dt, expected float64
	}{
		{0.016, 0.016},
		{0.5, MaxFrameStep},
		{-0.1, 0},
		{MaxFrameStep, MaxFrameStep},
	}

	for _, tc := range tests {
		if got := ClampDelta(tc.dt); got != tc.expected {
			t.Errorf("ClampDelta(%v) = %v, expected %v", tc.dt, got, tc.expected)
		}
	}
}

func TestCountdown(t *testing.T) {
	if got := Countdown(1.0, 0.25); got != 0.75 {
		t.Errorf("Countdown(1, 0.25) = %v, expected 0.75", got)
	}
	if got := Countdown(0.1, 0.25); got != 0 {
		t.Errorf("Countdown(0.1, 0.25) = %v, expected 0", got)
	}
}
