package systems

import (
	"github.com/automoto/cyberia-client/components"
	cfg "github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDebugRenderer outlines every visible entity and prints its resolved
// animation key and reported mode.
func NewDebugRenderer(ps *Presentation) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.Overlay {
			return
		}
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)
		zoom := camera.Zoom
		if zoom == 0 {
			zoom = 1.0
		}
		now := ps.Now()

		for _, id := range ps.Presenter.Visible() {
			layer := firstLayer(ps.Presenter, id)
			r, ok := ps.Presenter.RenderFrame(id, layer, now)
			if !ok {
				continue
			}
			w, h := r.Size()
			sp := camera.WorldToScreen(r.Position)
			sw := float32(float64(w) * r.Scale * zoom)
			sh := float32(float64(h) * r.Scale * zoom)
			vector.StrokeRect(screen, float32(sp.X), float32(sp.Y), sw, sh, 1, cfg.LightRed, false)

			mode, _ := ps.Presenter.Mode(id)
			label := r.Key + " " + mode.String()
			text.Draw(screen, label, fonts.Small.Get(), int(sp.X), int(sp.Y)+int(sh)+10, cfg.Yellow)
		}
	}
}
