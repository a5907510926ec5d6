package gamemath

import (
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/yohamta/donburi/features/math"
)

// directionTable maps the per-axis sign of a delta to a compass direction.
// Indexed as [sign(dx)+1][sign(dy)+1].
type directionTable [3][3]netconfig.Direction

// screenTable assumes +Y points down the screen.
var screenTable = directionTable{
	// dx = -1
	{netconfig.UpLeft, netconfig.Left, netconfig.DownLeft},
	// dx = 0
	{netconfig.Up, netconfig.DirectionNone, netconfig.Down},
	// dx = +1
	{netconfig.UpRight, netconfig.Right, netconfig.DownRight},
}

func (t directionTable) mirrored() directionTable {
	var m directionTable
	for x := range t {
		m[x][0], m[x][1], m[x][2] = t[x][2], t[x][1], t[x][0]
	}
	return m
}

// Classifier converts movement deltas into smoothed compass directions.
// The Y orientation is fixed at construction so every call site of one
// renderer agrees on which way is up.
type Classifier struct {
	threshold   float64
	orientation netconfig.Orientation
	table       directionTable
}

// NewClassifier creates a classifier that treats deltas with a magnitude at
// or below threshold as standing still.
func NewClassifier(threshold float64, orientation netconfig.Orientation) *Classifier {
	table := screenTable
	if orientation == netconfig.OrientationWorld {
		table = screenTable.mirrored()
	}
	return &Classifier{
		threshold:   threshold,
		orientation: orientation,
		table:       table,
	}
}

// Raw maps a delta to a direction without smoothing. It returns
// DirectionNone when the delta does not exceed the threshold.
func (c *Classifier) Raw(delta math.Vec2) netconfig.Direction {
	if Length(delta) <= c.threshold {
		return netconfig.DirectionNone
	}
	return c.table[sign(delta.X)+1][sign(delta.Y)+1]
}

// Classify records delta in history and returns the smoothed direction.
// A delta at or below the threshold drops the oldest history entry instead
// of adding one, so idle fades in; an empty history faces IdleFacing.
func (c *Classifier) Classify(delta math.Vec2, history *DirectionHistory) netconfig.Direction {
	raw := c.Raw(delta)
	if raw == netconfig.DirectionNone {
		history.PopOldest()
	} else {
		history.Push(raw)
	}
	if d, ok := history.MostFrequent(); ok {
		return d
	}
	return netconfig.IdleFacing
}

// ModeFor reports WALKING while the entity moved this tick or still has a
// path to follow.
func ModeFor(speed float64, pendingPath bool) netconfig.Mode {
	if speed != 0 || pendingPath {
		return netconfig.Walking
	}
	return netconfig.Idle
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
