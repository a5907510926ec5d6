package animations

import (
	"slices"
	"time"

	"github.com/automoto/cyberia-client/shared/gamemath"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/yohamta/donburi/features/math"
)

// entityState is everything the registry caches for one entity.
type entityState struct {
	layers    map[string]*Animation
	histories map[string]*gamemath.DirectionHistory
	smoothed  math.Vec2
	hasPos    bool
}

// Registry owns every per (entity, layer) Animation and DirectionHistory.
// It is owned by the render loop and is not safe for concurrent use.
type Registry struct {
	entities   map[netconfig.EntityID]*entityState
	grace      time.Duration
	historyCap int
	warn       *warnSet
}

// NewRegistry creates an empty registry. grace is the walking grace window
// given to new animations; historyCap bounds each direction history.
func NewRegistry(grace time.Duration, historyCap int) *Registry {
	return &Registry{
		entities:   make(map[netconfig.EntityID]*entityState),
		grace:      grace,
		historyCap: historyCap,
		warn:       newWarnSet(),
	}
}

func (r *Registry) entity(id netconfig.EntityID) *entityState {
	e, ok := r.entities[id]
	if !ok {
		e = &entityState{
			layers:    make(map[string]*Animation),
			histories: make(map[string]*gamemath.DirectionHistory),
		}
		r.entities[id] = e
	}
	return e
}

// GetOrCreate returns the animation for (id, layer), creating it on first
// use. A changed scale is applied in place; a different definition replaces
// the animation, keeping only its direction and mode, resolved at now.
func (r *Registry) GetOrCreate(id netconfig.EntityID, layer string, def *Definition, scale float64, now time.Time) *Animation {
	e := r.entity(id)
	if a, ok := e.layers[layer]; ok {
		if a.def == def {
			if a.scale != scale {
				a.SetScale(scale)
			}
			return a
		}
		fresh := r.newAnimation(def, scale)
		fresh.direction, fresh.mode, fresh.lastMoving = a.direction, a.mode, a.lastMoving
		fresh.sync(now)
		e.layers[layer] = fresh
		return fresh
	}
	a := r.newAnimation(def, scale)
	e.layers[layer] = a
	return a
}

func (r *Registry) newAnimation(def *Definition, scale float64) *Animation {
	a := NewAnimation(def, scale, r.grace)
	a.warn = r.warn
	return a
}

// Lookup returns the animation for (id, layer) without creating it.
func (r *Registry) Lookup(id netconfig.EntityID, layer string) (*Animation, bool) {
	e, ok := r.entities[id]
	if !ok {
		return nil, false
	}
	a, ok := e.layers[layer]
	return a, ok
}

// History returns the direction history for (id, layer), creating it on
// first use.
func (r *Registry) History(id netconfig.EntityID, layer string) *gamemath.DirectionHistory {
	e := r.entity(id)
	h, ok := e.histories[layer]
	if !ok {
		h = gamemath.NewDirectionHistory(r.historyCap)
		e.histories[layer] = h
	}
	return h
}

// SmoothedPosition returns the last rendered position recorded for id.
func (r *Registry) SmoothedPosition(id netconfig.EntityID) (math.Vec2, bool) {
	e, ok := r.entities[id]
	if !ok || !e.hasPos {
		return math.Vec2{}, false
	}
	return e.smoothed, true
}

// SetSmoothedPosition records the last rendered position for id.
func (r *Registry) SetSmoothedPosition(id netconfig.EntityID, pos math.Vec2) {
	e := r.entity(id)
	e.smoothed = pos
	e.hasPos = true
}

// RemoveLayer deletes the animation and direction history of one layer.
func (r *Registry) RemoveLayer(id netconfig.EntityID, layer string) {
	e, ok := r.entities[id]
	if !ok {
		return
	}
	delete(e.layers, layer)
	delete(e.histories, layer)
}

// Remove deletes every animation, history and smoothed position of id.
// It must run whenever the entity stops being rendered.
func (r *Registry) Remove(id netconfig.EntityID) {
	delete(r.entities, id)
}

// Has reports whether the registry holds any state for id.
func (r *Registry) Has(id netconfig.EntityID) bool {
	_, ok := r.entities[id]
	return ok
}

// Layers returns the layer ids with a live animation for id, sorted.
func (r *Registry) Layers(id netconfig.EntityID) []string {
	e, ok := r.entities[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(e.layers))
	for layer := range e.layers {
		out = append(out, layer)
	}
	slices.Sort(out)
	return out
}

// Entities returns the number of entities with cached state.
func (r *Registry) Entities() int {
	return len(r.entities)
}

// Animations returns the total number of live animations.
func (r *Registry) Animations() int {
	n := 0
	for _, e := range r.entities {
		n += len(e.layers)
	}
	return n
}

// InUse reports whether any live animation plays def.
func (r *Registry) InUse(def *Definition) bool {
	for _, e := range r.entities {
		for _, a := range e.layers {
			if a.def == def {
				return true
			}
		}
	}
	return false
}

// warnSet remembers which warnings were already logged.
type warnSet struct {
	seen map[string]struct{}
}

func newWarnSet() *warnSet {
	return &warnSet{seen: make(map[string]struct{})}
}

// once reports true the first time key is seen.
func (w *warnSet) once(key string) bool {
	if _, ok := w.seen[key]; ok {
		return false
	}
	w.seen[key] = struct{}{}
	return true
}
