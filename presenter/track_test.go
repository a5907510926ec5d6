package presenter

import (
	"testing"
	"time"

	"github.com/yohamta/donburi/features/math"
)

func TestTrackPreviousPolicy(t *testing.T) {
	window := 100 * time.Millisecond
	cases := []struct {
		name         string
		fromRendered bool
		wantPrev     math.Vec2
	}{
		// Halfway between A and B when C arrives.
		{"rendered", true, math.Vec2{X: 50}},
		{"old target", false, math.Vec2{X: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := TrackOptions{Window: window, MaxPlausibleSpeed: 1200, PreviousFromRendered: tc.fromRendered}
			var tr Track
			tr.Apply(snap(1, 0, 0, 1000, epoch), opts)
			tr.Apply(snap(1, 100, 0, 1100, epoch.Add(50*time.Millisecond)), opts)
			tr.Apply(snap(1, 200, 0, 1200, epoch.Add(100*time.Millisecond)), opts)

			if tr.Previous != tc.wantPrev {
				t.Fatalf("previous = %v, want %v", tr.Previous, tc.wantPrev)
			}
			if got := tr.Position(epoch.Add(100*time.Millisecond), window); got != tc.wantPrev {
				t.Fatalf("position at arrival = %v", got)
			}
			if got := tr.Position(epoch.Add(200*time.Millisecond), window); got.X != 200 {
				t.Fatalf("position after window = %v", got)
			}
			if got := tr.Position(epoch.Add(time.Second), window); got.X != 200 {
				t.Fatalf("overshoot: %v", got)
			}
		})
	}
}

func TestTrackFirstSnapshotSnaps(t *testing.T) {
	var tr Track
	tr.Apply(snap(1, 7, 9, 1000, epoch), TrackOptions{Window: 100 * time.Millisecond})
	if !tr.Initialized || tr.Previous != tr.Target || tr.Rendered != (math.Vec2{X: 7, Y: 9}) {
		t.Fatalf("track = %+v", tr)
	}
}

func TestTrackEqualTimestampReplaces(t *testing.T) {
	opts := TrackOptions{Window: 100 * time.Millisecond, MaxPlausibleSpeed: 1200}
	var tr Track
	tr.Apply(snap(1, 0, 0, 1000, epoch), opts)
	if !tr.Apply(snap(1, 3, 0, 1000, epoch.Add(time.Millisecond)), opts) {
		t.Fatal("same-timestamp snapshot rejected")
	}
	if tr.Apply(snap(1, 9, 0, 999, epoch.Add(2*time.Millisecond)), opts) {
		t.Fatal("older snapshot accepted")
	}
}
