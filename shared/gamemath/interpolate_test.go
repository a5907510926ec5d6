package gamemath

import (
	"testing"
	"time"

	"github.com/yohamta/donburi/features/math"
)

func TestInterpolateEndpoints(t *testing.T) {
	t0 := time.Unix(100, 0)
	cases := []struct {
		name   string
		p0, p1 math.Vec2
		window time.Duration
	}{
		{"short window", math.Vec2{X: 0, Y: 0}, math.Vec2{X: 10, Y: -4}, 50 * time.Millisecond},
		{"long window", math.Vec2{X: -3.5, Y: 8}, math.Vec2{X: 120, Y: 64}, 2 * time.Second},
		{"vertical only", math.Vec2{X: 7, Y: 7}, math.Vec2{X: 7, Y: 300}, 100 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Interpolate(tc.p0, tc.p1, t0, tc.window, t0); got != tc.p0 {
				t.Fatalf("at t0: got %v want %v", got, tc.p0)
			}
			if got := Interpolate(tc.p0, tc.p1, t0, tc.window, t0.Add(tc.window)); got != tc.p1 {
				t.Fatalf("at t0+W: got %v want %v", got, tc.p1)
			}
			if got := Interpolate(tc.p0, tc.p1, t0, tc.window, t0.Add(2*tc.window)); got != tc.p1 {
				t.Fatalf("at t0+2W: got %v want %v (overshoot)", got, tc.p1)
			}
		})
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	t0 := time.Unix(0, 0)
	got := Interpolate(math.Vec2{X: 0, Y: 0}, math.Vec2{X: 10, Y: 20}, t0, 100*time.Millisecond, t0.Add(50*time.Millisecond))
	if got.X != 5 || got.Y != 10 {
		t.Fatalf("midpoint: got %v want (5,10)", got)
	}
}

func TestFactorEdgeCases(t *testing.T) {
	t0 := time.Unix(50, 0)
	if f := Factor(t0, 0, t0); f != 1 {
		t.Fatalf("zero window should snap, got %f", f)
	}
	if f := Factor(t0, -time.Second, t0.Add(-time.Hour)); f != 1 {
		t.Fatalf("negative window should snap, got %f", f)
	}
	if f := Factor(t0, time.Second, t0.Add(-10*time.Millisecond)); f != 0 {
		t.Fatalf("clock skew should hold at previous, got %f", f)
	}
}

func TestIsTeleport(t *testing.T) {
	from := math.Vec2{X: 0, Y: 0}
	cases := []struct {
		name     string
		to       math.Vec2
		elapsed  time.Duration
		maxSpeed float64
		want     bool
	}{
		{"plausible walk", math.Vec2{X: 10, Y: 0}, 100 * time.Millisecond, 200, false},
		{"too fast", math.Vec2{X: 500, Y: 0}, 100 * time.Millisecond, 200, true},
		{"disabled", math.Vec2{X: 5000, Y: 0}, 100 * time.Millisecond, 0, false},
		{"no elapsed uses fallback", math.Vec2{X: 30, Y: 0}, 0, 200, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTeleport(from, tc.to, tc.elapsed, 100*time.Millisecond, tc.maxSpeed); got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}
