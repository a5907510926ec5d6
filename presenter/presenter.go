package presenter

import (
	"slices"
	"time"

	"github.com/automoto/cyberia-client/assets/animations"
	"github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/logger"
	"github.com/automoto/cyberia-client/shared/gamemath"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/features/math"
)

// PathSource reports whether an entity is still following a non-empty path.
// It stands in for the movement collaborator when the server sends no mode.
type PathSource interface {
	HasPath(id netconfig.EntityID) bool
}

// Options configures a Presenter.
type Options struct {
	Track            TrackOptions
	WalkingGrace     time.Duration
	GraceAffectsMode bool
	HistoryCapacity  int
	Threshold        float64
	Orientation      netconfig.Orientation
	DefaultLayers    []string
	FrameWidth       float64
}

// OptionsFromConfig builds Options from the global configuration.
func OptionsFromConfig() Options {
	return Options{
		Track: TrackOptions{
			Window:               config.Interp.Window,
			MaxPlausibleSpeed:    config.Interp.MaxPlausibleSpeed,
			PreviousFromRendered: config.Interp.PreviousFromRendered,
		},
		WalkingGrace:     config.Animation.WalkingGrace,
		GraceAffectsMode: config.Animation.GraceAffectsMode,
		HistoryCapacity:  config.Direction.HistoryCapacity,
		Threshold:        config.Direction.Threshold,
		Orientation:      config.Direction.Orientation,
		DefaultLayers:    config.Animation.DefaultLayers,
		FrameWidth:       config.Animation.FrameWidth,
	}
}

// Render is everything the backend needs to draw one layer of one entity.
type Render struct {
	animations.FrameView
	Position math.Vec2
}

// Presenter is the per-tick entity presentation engine. It is owned by the
// render loop; only SnapshotBuffer may be touched from other goroutines.
type Presenter struct {
	opts       Options
	library    *animations.Library
	registry   *animations.Registry
	classifier *gamemath.Classifier
	paths      PathSource
	visibility *Visibility

	tracks  map[netconfig.EntityID]*Track
	visible map[netconfig.EntityID]struct{}
	modes   map[netconfig.EntityID]netconfig.Mode
	missing map[string]struct{}
}

// New creates a Presenter drawing layers from library.
func New(library *animations.Library, opts Options) *Presenter {
	return &Presenter{
		opts:       opts,
		library:    library,
		registry:   animations.NewRegistry(opts.WalkingGrace, opts.HistoryCapacity),
		classifier: gamemath.NewClassifier(opts.Threshold, opts.Orientation),
		tracks:     make(map[netconfig.EntityID]*Track),
		visible:    make(map[netconfig.EntityID]struct{}),
		modes:      make(map[netconfig.EntityID]netconfig.Mode),
		missing:    make(map[string]struct{}),
	}
}

func (p *Presenter) Registry() *animations.Registry { return p.registry }

func (p *Presenter) Library() *animations.Library { return p.library }

// SetPathSource installs the movement collaborator used for WALKING/IDLE.
func (p *Presenter) SetPathSource(src PathSource) { p.paths = src }

// SetVisibility installs camera culling. Without it every tracked entity is
// considered visible. Entities visible so far are released and re-enter on
// the next Cull.
func (p *Presenter) SetVisibility(v *Visibility) {
	for id := range p.visible {
		p.OnEntityLeave(id)
	}
	p.visibility = v
}

// Apply feeds one snapshot into the entity's track.
func (p *Presenter) Apply(s EntitySnapshot) bool {
	t, ok := p.tracks[s.ID]
	if !ok {
		t = &Track{}
		p.tracks[s.ID] = t
	}
	if !t.Apply(s, p.opts.Track) {
		logger.Log.WithFields(logrus.Fields{
			"entity": s.ID,
			"at":     s.ServerTime,
			"target": t.ServerTime,
		}).Debug("stale snapshot ignored")
		return false
	}
	if p.visibility != nil {
		p.visibility.Track(s.ID, t.Target.X, t.Target.Y, t.Width, t.Height)
	}
	return true
}

// Sync drains buf into the presenter, forgetting despawned entities.
func (p *Presenter) Sync(buf *SnapshotBuffer) {
	updates, gone := buf.Drain()
	for _, id := range gone {
		p.Forget(id)
	}
	for _, s := range updates {
		p.Apply(s)
	}
}

// Forget drops every trace of an entity the server no longer reports.
func (p *Presenter) Forget(id netconfig.EntityID) {
	p.OnEntityLeave(id)
	delete(p.tracks, id)
	if p.visibility != nil {
		p.visibility.Untrack(id)
	}
}

// OnEntityEnter marks id as rendered.
func (p *Presenter) OnEntityEnter(id netconfig.EntityID) {
	p.visible[id] = struct{}{}
}

// OnEntityLeave stops rendering id and releases its animations, direction
// histories and smoothed position.
func (p *Presenter) OnEntityLeave(id netconfig.EntityID) {
	delete(p.visible, id)
	delete(p.modes, id)
	p.registry.Remove(id)
}

// Cull updates the visible set from the camera view rectangle and fires
// OnEntityEnter/OnEntityLeave for changes. Entities are placed at their
// interpolated position at now, so off-screen entities keep moving in the
// visibility space.
func (p *Presenter) Cull(now time.Time, x, y, w, h float64) {
	if p.visibility == nil {
		for id := range p.tracks {
			if _, ok := p.visible[id]; !ok {
				p.OnEntityEnter(id)
			}
		}
		return
	}
	for id, t := range p.tracks {
		pos := t.Position(now, p.opts.Track.Window)
		p.visibility.Track(id, pos.X, pos.Y, t.Width, t.Height)
	}
	entered, left := p.visibility.Update(x, y, w, h)
	for _, id := range left {
		p.OnEntityLeave(id)
	}
	for _, id := range entered {
		p.OnEntityEnter(id)
	}
}

// Visible returns the rendered entity ids in ascending order.
func (p *Presenter) Visible() []netconfig.EntityID {
	ids := make([]netconfig.EntityID, 0, len(p.visible))
	for id := range p.visible {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Tracked returns the number of entities with a snapshot track.
func (p *Presenter) Tracked() int { return len(p.tracks) }

// Advance interpolates and animates every visible entity against one
// sampled now.
func (p *Presenter) Advance(dt time.Duration, now time.Time) {
	for _, id := range p.Visible() {
		t, ok := p.tracks[id]
		if !ok {
			continue
		}
		p.advanceEntity(id, t, dt, now)
	}
}

func (p *Presenter) advanceEntity(id netconfig.EntityID, t *Track, dt time.Duration, now time.Time) {
	pos := t.Position(now, p.opts.Track.Window)

	var delta math.Vec2
	if prev, ok := p.registry.SmoothedPosition(id); ok && !t.jumped {
		delta = gamemath.Sub(pos, prev)
	}
	t.jumped = false
	t.Rendered = pos
	p.registry.SetSmoothedPosition(id, pos)

	pending := p.paths != nil && p.paths.HasPath(id)
	mode := gamemath.ModeFor(gamemath.Length(delta), pending)
	if t.Explicit {
		mode = t.Mode
	}

	layers := p.layersOf(t)
	for _, layer := range p.registry.Layers(id) {
		if !slices.Contains(layers, layer) {
			p.registry.RemoveLayer(id, layer)
		}
	}

	reported := mode
	for _, layer := range layers {
		def, ok := p.library.Get(layer)
		if !ok {
			p.warnMissing(layer)
			continue
		}
		anim := p.registry.GetOrCreate(id, layer, def, p.scaleFor(t, def), now)

		dir := t.Direction
		if !t.Explicit {
			dir = p.classifier.Classify(delta, p.registry.History(id, layer))
		}
		anim.SetState(dir, mode, now)
		anim.Advance(dt, now)

		if p.opts.GraceAffectsMode && anim.Walking(now) {
			reported = netconfig.Walking
		}
	}
	p.modes[id] = reported
}

// Mode returns the movement mode last reported for a visible entity.
func (p *Presenter) Mode(id netconfig.EntityID) (netconfig.Mode, bool) {
	m, ok := p.modes[id]
	return m, ok
}

// Position returns the last rendered position of a tracked entity.
func (p *Presenter) Position(id netconfig.EntityID) (math.Vec2, bool) {
	t, ok := p.tracks[id]
	if !ok {
		return math.Vec2{}, false
	}
	return t.Rendered, true
}

// Layers returns the layers drawn for id, bottom first.
func (p *Presenter) Layers(id netconfig.EntityID) []string {
	t, ok := p.tracks[id]
	if !ok {
		return nil
	}
	return p.layersOf(t)
}

// RenderFrame returns what to draw for (id, layer) at now. It never creates
// state: entities that left visibility or layers without a definition report
// false.
func (p *Presenter) RenderFrame(id netconfig.EntityID, layer string, now time.Time) (Render, bool) {
	if _, ok := p.visible[id]; !ok {
		return Render{}, false
	}
	t, ok := p.tracks[id]
	if !ok {
		return Render{}, false
	}
	anim, ok := p.registry.Lookup(id, layer)
	if !ok {
		return Render{}, false
	}
	return Render{FrameView: anim.CurrentFrame(now), Position: t.Rendered}, true
}

// PauseAt freezes (id, layer) on frame i. It reports false when the layer
// has no animation.
func (p *Presenter) PauseAt(id netconfig.EntityID, layer string, i int) bool {
	anim, ok := p.registry.Lookup(id, layer)
	if ok {
		anim.PauseAtFrame(i)
	}
	return ok
}

// Resume continues playback of (id, layer).
func (p *Presenter) Resume(id netconfig.EntityID, layer string) bool {
	anim, ok := p.registry.Lookup(id, layer)
	if ok {
		anim.Resume()
	}
	return ok
}

// SetDefinition swaps the definition of one live animation, for authoring
// tools. The library is left untouched.
func (p *Presenter) SetDefinition(id netconfig.EntityID, layer string, def *animations.Definition, now time.Time) bool {
	anim, ok := p.registry.Lookup(id, layer)
	if ok {
		anim.SetDefinition(def, now)
	}
	return ok
}

func (p *Presenter) layersOf(t *Track) []string {
	if len(t.Layers) > 0 {
		return t.Layers
	}
	return p.opts.DefaultLayers
}

func (p *Presenter) scaleFor(t *Track, def *animations.Definition) float64 {
	w := float64(def.Width())
	if w <= 0 {
		w = p.opts.FrameWidth
	}
	if w <= 0 || t.Width <= 0 {
		return 1
	}
	return t.Width / w
}

func (p *Presenter) warnMissing(layer string) {
	if _, ok := p.missing[layer]; ok {
		return
	}
	p.missing[layer] = struct{}{}
	logger.Log.WithField("layer", layer).Warn("no animation definition for layer")
}
