package presenter

import (
	"time"

	"github.com/automoto/cyberia-client/shared/gamemath"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/yohamta/donburi/features/math"
)

// Track stores interpolation state for smooth rendering of one remote entity
// between server snapshots.
type Track struct {
	Previous, Target math.Vec2
	T0               time.Time // When Target was received
	ServerTime       int64
	Initialized      bool

	Width, Height float64
	Layers        []string

	Direction netconfig.Direction
	Mode      netconfig.Mode
	Explicit  bool

	// Rendered is the position produced by the last Advance.
	Rendered math.Vec2
	// jumped is set by a teleport and consumed by the next Advance so the
	// jump does not register as movement.
	jumped bool
}

// TrackOptions are the interpolation policy knobs.
type TrackOptions struct {
	Window               time.Duration
	MaxPlausibleSpeed    float64
	PreviousFromRendered bool
}

// Position returns the interpolated position at now.
func (t *Track) Position(now time.Time, window time.Duration) math.Vec2 {
	return gamemath.Interpolate(t.Previous, t.Target, t.T0, window, now)
}

// Apply replaces the track's target with s. Snapshots older than the current
// target are ignored and Apply reports false.
func (t *Track) Apply(s EntitySnapshot, opts TrackOptions) bool {
	if t.Initialized && s.ServerTime < t.ServerTime {
		return false
	}

	t.Width, t.Height = s.Width, s.Height
	t.Layers = s.Layers
	t.Direction, t.Mode, t.Explicit = s.Direction, s.Mode, s.Explicit

	if !t.Initialized {
		// First snapshot: place directly, no interpolation.
		t.snap(s)
		t.Initialized = true
		return true
	}

	elapsed := time.Duration(s.ServerTime-t.ServerTime) * time.Millisecond
	if s.Teleport || gamemath.IsTeleport(t.Target, s.Position, elapsed, opts.Window, opts.MaxPlausibleSpeed) {
		t.snap(s)
		t.jumped = true
		return true
	}

	if opts.PreviousFromRendered {
		t.Previous = t.Position(s.ReceivedAt, opts.Window)
	} else {
		t.Previous = t.Target
	}
	t.Target = s.Position
	t.T0 = s.ReceivedAt
	t.ServerTime = s.ServerTime
	return true
}

func (t *Track) snap(s EntitySnapshot) {
	t.Previous = s.Position
	t.Target = s.Position
	t.Rendered = s.Position
	t.T0 = s.ReceivedAt
	t.ServerTime = s.ServerTime
}
