package systems

import (
	"time"

	"github.com/automoto/cyberia-client/assets"
	"github.com/automoto/cyberia-client/components"
	"github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/logger"
	"github.com/automoto/cyberia-client/presenter"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// cullPadding keeps sprites from popping in and out at the view edges.
const cullPadding = 64.0

// framePruneInterval is how often frame images of definitions no animation
// plays any more are released.
const framePruneInterval = 5 * time.Second

// maxTickDelta bounds dt after a stall so animations do not race ahead.
const maxTickDelta = 250 * time.Millisecond

// Presentation is the state shared by the presentation systems of one scene.
// Every system reads the same sampled now for a tick.
type Presentation struct {
	Presenter *presenter.Presenter
	Buffer    *presenter.SnapshotBuffer
	Frames    *assets.FrameCache
	Clock     func() time.Time

	now     time.Time
	dt      time.Duration
	pruneAt time.Time
}

func NewPresentation(p *presenter.Presenter, buf *presenter.SnapshotBuffer) *Presentation {
	return &Presentation{
		Presenter: p,
		Buffer:    buf,
		Frames:    assets.NewFrameCache(),
		Clock:     time.Now,
	}
}

// Now is the time sampled at the start of the current tick.
func (ps *Presentation) Now() time.Time { return ps.now }

// DT is the time since the previous tick.
func (ps *Presentation) DT() time.Duration { return ps.dt }

// Update drains network snapshots, culls against the camera and advances
// every visible entity. It must run before the camera system.
func (ps *Presentation) Update(e *ecs.ECS) {
	now := ps.Clock()
	switch {
	case ps.now.IsZero():
		ps.dt = time.Second / time.Duration(max(ebiten.TPS(), 1))
	default:
		ps.dt = min(now.Sub(ps.now), maxTickDelta)
	}
	ps.now = now

	ps.Presenter.Sync(ps.Buffer)

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		x, y, w, h := components.Camera.Get(cameraEntry).ViewRect()
		ps.Presenter.Cull(ps.now, x-cullPadding, y-cullPadding, w+2*cullPadding, h+2*cullPadding)
	} else {
		ps.Presenter.Cull(ps.now, 0, 0, float64(config.C.Width), float64(config.C.Height))
	}

	ps.Presenter.Advance(ps.dt, ps.now)

	if ps.now.After(ps.pruneAt) {
		ps.pruneAt = ps.now.Add(framePruneInterval)
		if n := ps.Frames.Retain(ps.Presenter.Registry().InUse); n > 0 {
			logger.Log.WithField("images", n).Debug("released unused frame images")
		}
	}
}
