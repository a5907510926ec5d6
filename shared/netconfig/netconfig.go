// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so it can be used by headless tooling and tests.
package netconfig

// EntityID identifies a networked entity. It mirrors esync.NetworkId.
type EntityID uint64

// Direction is one of the eight compass facings an entity can be drawn in.
type Direction int

const (
	DirectionNone Direction = iota
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// IdleFacing is the direction an entity faces once it has stopped moving
// long enough for its direction history to drain.
const IdleFacing = Down

// Mode is the movement mode used as the animation key suffix.
type Mode int

const (
	Idle Mode = iota
	Walking
)

// Orientation selects how the Y axis of a movement delta maps to UP/DOWN.
type Orientation int

const (
	// OrientationScreen treats +Y as pointing down the screen.
	OrientationScreen Orientation = iota
	// OrientationWorld treats +Y as pointing up.
	OrientationWorld
)

// DirectionToKeyName maps a Direction to the prefix used in animation keys.
var DirectionToKeyName = map[Direction]string{
	Up:        "UP",
	UpRight:   "UP_RIGHT",
	Right:     "RIGHT",
	DownRight: "DOWN_RIGHT",
	Down:      "DOWN",
	DownLeft:  "DOWN_LEFT",
	Left:      "LEFT",
	UpLeft:    "UP_LEFT",
}

// ModeToKeyName maps a Mode to the suffix used in animation keys.
var ModeToKeyName = map[Mode]string{
	Idle:    "IDLE",
	Walking: "WALKING",
}

func (d Direction) String() string {
	if name, ok := DirectionToKeyName[d]; ok {
		return name
	}
	return "NONE"
}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= UpLeft
}

func (m Mode) String() string {
	if name, ok := ModeToKeyName[m]; ok {
		return name
	}
	return "IDLE"
}
