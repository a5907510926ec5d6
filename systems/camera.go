package systems

import (
	"github.com/automoto/cyberia-client/components"
	"github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/presenter"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewCameraSystem returns an update system that follows the focused entity's
// rendered position, clamped to the level bounds.
func NewCameraSystem(ps *Presentation, focus func() netconfig.EntityID) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)
		camera.Update(ps.DT())

		id := focus()
		pos, ok := ps.Presenter.Position(id)
		if !ok {
			return
		}
		if r, ok := ps.Presenter.RenderFrame(id, firstLayer(ps.Presenter, id), ps.Now()); ok {
			w, h := r.Size()
			pos.X += float64(w) * r.Scale / 2
			pos.Y += float64(h) * r.Scale / 2
		}

		target := pos
		if levelEntry, ok := components.Level.First(e.World); ok {
			if lvl := components.Level.Get(levelEntry).CurrentLevel; lvl != nil {
				target = camera.Clamp(pos, float64(lvl.Width), float64(lvl.Height))
			}
		}

		camera.Follow(target, followFactor(ps))
	}
}

func followFactor(ps *Presentation) float64 {
	if config.Camera.FrameRateIndependent {
		return presenter.FollowFactor(config.Camera.FollowRate, ps.DT())
	}
	return config.Camera.FollowSmoothing
}

func firstLayer(p *presenter.Presenter, id netconfig.EntityID) string {
	if layers := p.Layers(id); len(layers) > 0 {
		return layers[0]
	}
	return ""
}

// SnapCamera centers the camera on pos at once, e.g. on scene start.
func SnapCamera(e *ecs.ECS, pos math.Vec2) {
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(cameraEntry).Target = pos
	}
}
