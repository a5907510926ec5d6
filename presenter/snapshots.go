// Package presenter turns network snapshots into smooth, animated sprites.
// It owns the per-entity interpolation tracks and the animation registry and
// is driven once per tick from the render loop.
package presenter

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/automoto/cyberia-client/logger"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/features/math"
)

// EntitySnapshot is one server-reported state of one entity.
type EntitySnapshot struct {
	ID            netconfig.EntityID
	Position      math.Vec2
	Width, Height float64
	Layers        []string

	// Direction and Mode are only meaningful when Explicit is set; otherwise
	// both are derived from successive positions.
	Direction netconfig.Direction
	Mode      netconfig.Mode
	Explicit  bool

	Teleport   bool
	ServerTime int64 // Server clock, Unix ms
	ReceivedAt time.Time
}

// SnapshotBuffer holds the newest snapshot per entity. Network goroutines
// write into it; the render loop drains it once per tick.
type SnapshotBuffer struct {
	mu        sync.Mutex
	pending   map[netconfig.EntityID]EntitySnapshot
	newest    map[netconfig.EntityID]int64
	teleports map[netconfig.EntityID]struct{}
	despawned map[netconfig.EntityID]struct{}
}

func NewSnapshotBuffer() *SnapshotBuffer {
	return &SnapshotBuffer{
		pending:   make(map[netconfig.EntityID]EntitySnapshot),
		newest:    make(map[netconfig.EntityID]int64),
		teleports: make(map[netconfig.EntityID]struct{}),
		despawned: make(map[netconfig.EntityID]struct{}),
	}
}

// Put stores s unless an equal-or-newer snapshot for the same entity was
// already accepted. It reports whether s was kept.
func (b *SnapshotBuffer) Put(s EntitySnapshot) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if newest, ok := b.newest[s.ID]; ok && s.ServerTime < newest {
		logger.Log.WithFields(logrus.Fields{
			"entity": s.ID,
			"at":     s.ServerTime,
			"newest": newest,
		}).Debug("stale snapshot ignored")
		return false
	}
	if _, ok := b.teleports[s.ID]; ok {
		s.Teleport = true
		delete(b.teleports, s.ID)
	}
	if prev, ok := b.pending[s.ID]; ok && prev.Teleport {
		// A teleport not yet drained still applies to the newer snapshot.
		s.Teleport = true
	}
	b.newest[s.ID] = s.ServerTime
	b.pending[s.ID] = s
	delete(b.despawned, s.ID)
	return true
}

// MarkTeleport flags the next snapshot of id as a teleport.
func (b *SnapshotBuffer) MarkTeleport(id netconfig.EntityID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.pending[id]; ok {
		s.Teleport = true
		b.pending[id] = s
		return
	}
	b.teleports[id] = struct{}{}
}

// Despawn records that the server removed id. Older snapshots still in
// flight stay rejected.
func (b *SnapshotBuffer) Despawn(id netconfig.EntityID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, id)
	delete(b.teleports, id)
	b.despawned[id] = struct{}{}
}

// Drain returns and clears the pending snapshots and despawns, each sorted
// by entity id.
func (b *SnapshotBuffer) Drain() ([]EntitySnapshot, []netconfig.EntityID) {
	b.mu.Lock()
	pending := b.pending
	despawned := b.despawned
	b.pending = make(map[netconfig.EntityID]EntitySnapshot, len(pending))
	b.despawned = make(map[netconfig.EntityID]struct{})
	b.mu.Unlock()

	updates := make([]EntitySnapshot, 0, len(pending))
	for _, s := range pending {
		updates = append(updates, s)
	}
	slices.SortFunc(updates, func(x, y EntitySnapshot) int {
		return cmp.Compare(x.ID, y.ID)
	})

	gone := make([]netconfig.EntityID, 0, len(despawned))
	for id := range despawned {
		gone = append(gone, id)
	}
	slices.Sort(gone)
	return updates, gone
}
