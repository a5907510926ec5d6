package gamemath

import (
	"testing"

	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/yohamta/donburi/features/math"
)

func TestClassifyUnitDeltasScreenSpace(t *testing.T) {
	cases := []struct {
		dx, dy float64
		want   netconfig.Direction
	}{
		{0, -1, netconfig.Up},
		{1, -1, netconfig.UpRight},
		{1, 0, netconfig.Right},
		{1, 1, netconfig.DownRight},
		{0, 1, netconfig.Down},
		{-1, 1, netconfig.DownLeft},
		{-1, 0, netconfig.Left},
		{-1, -1, netconfig.UpLeft},
	}
	c := NewClassifier(0.1, netconfig.OrientationScreen)
	for _, tc := range cases {
		t.Run(tc.want.String(), func(t *testing.T) {
			h := NewDirectionHistory(5)
			if got := c.Classify(math.Vec2{X: tc.dx, Y: tc.dy}, h); got != tc.want {
				t.Fatalf("delta (%v,%v): got %v want %v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestClassifyWorldSpaceMirrorsY(t *testing.T) {
	c := NewClassifier(0.1, netconfig.OrientationWorld)
	cases := []struct {
		dx, dy float64
		want   netconfig.Direction
	}{
		{0, 1, netconfig.Up},
		{0, -1, netconfig.Down},
		{1, 1, netconfig.UpRight},
		{-1, -1, netconfig.DownLeft},
		{1, 0, netconfig.Right},
	}
	for _, tc := range cases {
		if got := c.Classify(math.Vec2{X: tc.dx, Y: tc.dy}, NewDirectionHistory(5)); got != tc.want {
			t.Fatalf("delta (%v,%v): got %v want %v", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestClassifySignReductionIgnoresMagnitude(t *testing.T) {
	c := NewClassifier(0.1, netconfig.OrientationScreen)
	if got := c.Classify(math.Vec2{X: 37.5, Y: -0.2}, NewDirectionHistory(5)); got != netconfig.UpRight {
		t.Fatalf("got %v want UP_RIGHT", got)
	}
}

func TestSmoothedDirectionPrefersMajority(t *testing.T) {
	h := NewDirectionHistory(5)
	for _, d := range []netconfig.Direction{netconfig.Right, netconfig.Right, netconfig.Right, netconfig.Up, netconfig.Up} {
		h.Push(d)
	}
	got, ok := h.MostFrequent()
	if !ok || got != netconfig.Right {
		t.Fatalf("got %v want RIGHT", got)
	}
}

func TestSmoothedDirectionTieBreaksOnEarliest(t *testing.T) {
	h := NewDirectionHistory(4)
	for _, d := range []netconfig.Direction{netconfig.Left, netconfig.Up, netconfig.Up, netconfig.Left} {
		h.Push(d)
	}
	if got, _ := h.MostFrequent(); got != netconfig.Left {
		t.Fatalf("got %v want LEFT", got)
	}
}

func TestClassifyIdleConvergesToDefault(t *testing.T) {
	c := NewClassifier(0.5, netconfig.OrientationScreen)
	h := NewDirectionHistory(5)
	for i := 0; i < 5; i++ {
		c.Classify(math.Vec2{X: -3, Y: 0}, h)
	}
	var got netconfig.Direction
	for i := 0; i < h.Cap(); i++ {
		got = c.Classify(math.Vec2{X: 0.2, Y: 0.2}, h)
		if i < h.Cap()-1 && got != netconfig.Left {
			t.Fatalf("tick %d: idle should fade in, got %v", i, got)
		}
	}
	if got != netconfig.IdleFacing {
		t.Fatalf("got %v want %v after history drained", got, netconfig.IdleFacing)
	}
	if h.Len() != 0 {
		t.Fatalf("history should be empty, len=%d", h.Len())
	}
}

func TestHistoryNeverExceedsCapacity(t *testing.T) {
	h := NewDirectionHistory(3)
	for i := 0; i < 10; i++ {
		h.Push(netconfig.Direction(i%8 + 1))
		if h.Len() > h.Cap() {
			t.Fatalf("len %d exceeds cap %d", h.Len(), h.Cap())
		}
	}
	// Oldest-first eviction keeps the last three pushes: 8, 1, 2.
	want := []netconfig.Direction{8, 1, 2}
	for i, d := range want {
		if h.At(i) != d {
			t.Fatalf("At(%d) = %v want %v", i, h.At(i), d)
		}
	}
}

func TestModeFor(t *testing.T) {
	if ModeFor(0, false) != netconfig.Idle {
		t.Fatal("stationary without path should be idle")
	}
	if ModeFor(0, true) != netconfig.Walking {
		t.Fatal("pending path should walk")
	}
	if ModeFor(1.5, false) != netconfig.Walking {
		t.Fatal("moving should walk")
	}
}
