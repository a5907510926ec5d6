// Package gamemath holds the headless math used to turn network snapshots into
// on-screen motion. It has no dependencies on ebiten so it can be shared by
// tools and tests.
package gamemath

import (
	gomath "math"
	"time"

	"github.com/yohamta/donburi/features/math"
)

// Factor returns how far along the interpolation window now is, clamped to
// [0, 1]. A non-positive window snaps to the target and a now before t0
// (clock skew) holds at the previous position.
func Factor(t0 time.Time, window time.Duration, now time.Time) float64 {
	if window <= 0 {
		return 1
	}
	elapsed := now.Sub(t0)
	if elapsed <= 0 {
		return 0
	}
	f := float64(elapsed) / float64(window)
	if f > 1 {
		return 1
	}
	return f
}

// Lerp linearly interpolates between two positions.
func Lerp(from, to math.Vec2, t float64) math.Vec2 {
	return math.Vec2{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
	}
}

// Interpolate blends previous toward target over window starting at t0.
func Interpolate(previous, target math.Vec2, t0 time.Time, window time.Duration, now time.Time) math.Vec2 {
	f := Factor(t0, window, now)
	if f >= 1 {
		return target
	}
	return Lerp(previous, target, f)
}

// Length returns the magnitude of v.
func Length(v math.Vec2) float64 {
	return gomath.Hypot(v.X, v.Y)
}

// Sub returns a - b.
func Sub(a, b math.Vec2) math.Vec2 {
	return math.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// IsTeleport reports whether moving from -> to over elapsed implies a speed
// above maxSpeed (pixels per second). A non-positive maxSpeed disables the
// check. When elapsed is not positive the displacement is compared against
// the distance maxSpeed covers in fallback.
func IsTeleport(from, to math.Vec2, elapsed, fallback time.Duration, maxSpeed float64) bool {
	if maxSpeed <= 0 {
		return false
	}
	if elapsed <= 0 {
		elapsed = fallback
	}
	if elapsed <= 0 {
		return false
	}
	return Length(Sub(to, from)) > maxSpeed*elapsed.Seconds()
}
