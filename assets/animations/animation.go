package animations

import (
	"time"

	"github.com/automoto/cyberia-client/logger"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/sirupsen/logrus"
)

// Animation is the per (entity, layer) state machine that turns a direction
// and mode into a frame of its Definition.
type Animation struct {
	def         *Definition
	direction   netconfig.Direction
	mode        netconfig.Mode
	key         string // resolved key after the fallback chain
	frame       int
	timer       time.Duration
	paused      bool
	pausedFrame int
	lastMoving  time.Time
	grace       time.Duration
	scale       float64
	warn        *warnSet
}

// NewAnimation creates an animation facing netconfig.IdleFacing in idle mode.
// grace is how long the WALKING key suffix outlives the last walking tick.
func NewAnimation(def *Definition, scale float64, grace time.Duration) *Animation {
	a := &Animation{
		def:       def,
		direction: netconfig.IdleFacing,
		mode:      netconfig.Idle,
		grace:     grace,
		scale:     scale,
		warn:      newWarnSet(),
	}
	a.key, _ = a.resolve(time.Time{})
	return a
}

func (a *Animation) Definition() *Definition       { return a.def }
func (a *Animation) Direction() netconfig.Direction { return a.direction }
func (a *Animation) Mode() netconfig.Mode           { return a.mode }
func (a *Animation) Key() string                    { return a.key }
func (a *Animation) Frame() int                     { return a.frame }
func (a *Animation) Timer() time.Duration           { return a.timer }
func (a *Animation) Paused() bool                   { return a.paused }
func (a *Animation) Scale() float64                 { return a.scale }

// SetScale changes the display scale without touching frame state.
func (a *Animation) SetScale(scale float64) {
	a.scale = scale
}

// Walking reports whether now falls inside the walking grace window.
func (a *Animation) Walking(now time.Time) bool {
	if a.mode == netconfig.Walking {
		return true
	}
	return !a.lastMoving.IsZero() && now.Sub(a.lastMoving) < a.grace
}

// SetState updates direction and mode. A change of the resolved key cuts to
// frame 0 unless the animation is paused.
func (a *Animation) SetState(dir netconfig.Direction, mode netconfig.Mode, now time.Time) {
	if a.def.Stateless {
		dir, mode = netconfig.IdleFacing, netconfig.Idle
	}
	if !dir.Valid() {
		dir = netconfig.IdleFacing
	}
	a.direction = dir
	a.mode = mode
	if mode == netconfig.Walking {
		a.lastMoving = now
	}
	a.sync(now)
}

// Advance accumulates dt and steps to the next frame once the frame duration
// is reached. Single-frame keys stay pinned at frame 0 with a zero timer.
func (a *Animation) Advance(dt time.Duration, now time.Time) {
	if a.paused {
		return
	}
	a.sync(now)

	frames := a.def.framesFor(a.key)
	if len(frames) <= 1 || a.def.FrameDuration <= 0 {
		a.frame = 0
		a.timer = 0
		return
	}
	if a.frame >= len(frames) {
		a.frame %= len(frames)
	}

	a.timer += dt
	if a.timer >= a.def.FrameDuration {
		a.frame = (a.frame + 1) % len(frames)
		a.timer = 0
	}
}

// CurrentFrame returns the frame to draw at now. While paused it shows the
// paused frame, clamped to the resolved key.
func (a *Animation) CurrentFrame(now time.Time) FrameView {
	key, frames := a.resolve(now)

	idx := a.frame
	switch {
	case a.paused:
		idx = a.pausedFrame
	case key != a.key:
		// The key changed since the last Advance (grace window expired);
		// Advance will cut to frame 0, so show that now.
		idx = 0
	}
	idx = clamp(idx, len(frames))

	return FrameView{
		Def:     a.def,
		Key:     key,
		Index:   idx,
		Pixels:  frames[idx],
		Palette: a.def.paletteFor(key),
		Scale:   a.scale,
	}
}

// PauseAtFrame freezes playback on frame i of the resolved key.
func (a *Animation) PauseAtFrame(i int) {
	a.pausedFrame = clamp(i, len(a.def.framesFor(a.key)))
	a.paused = true
}

// Resume continues from the paused frame with a fresh timer.
func (a *Animation) Resume() {
	if !a.paused {
		return
	}
	a.paused = false
	a.frame = clamp(a.pausedFrame, len(a.def.framesFor(a.key)))
	a.timer = 0
}

// SetDefinition swaps the definition in place. Playback restarts at frame 0
// of whatever key now resolves; a paused frame is clamped to the new key.
func (a *Animation) SetDefinition(def *Definition, now time.Time) {
	a.def = def
	if def.Stateless {
		a.direction, a.mode = netconfig.IdleFacing, netconfig.Idle
	}
	a.key, _ = a.resolve(now)
	a.frame = 0
	a.timer = 0
	if a.paused {
		a.pausedFrame = clamp(a.pausedFrame, len(a.def.framesFor(a.key)))
	}
}

func (a *Animation) sync(now time.Time) {
	key, _ := a.resolve(now)
	if key == a.key {
		return
	}
	a.key = key
	if !a.paused {
		a.frame = 0
		a.timer = 0
	}
}

func (a *Animation) requestedKey(now time.Time) string {
	if a.def.Stateless {
		return DefaultIdleKey
	}
	mode := a.mode
	if a.Walking(now) {
		mode = netconfig.Walking
	}
	return Key(a.direction, mode)
}

func (a *Animation) resolve(now time.Time) (string, []Frame) {
	want := a.requestedKey(now)
	key, frames, exact := a.def.Resolve(want, a.direction)
	if !exact && a.warn.once(a.def.ID+"/"+want) {
		logger.Log.WithFields(logrus.Fields{
			"definition": a.def.ID,
			"key":        want,
			"using":      key,
		}).Warn("animation key missing, using fallback")
	}
	return key, frames
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
