package systems

import (
	"strconv"

	"github.com/automoto/cyberia-client/components"
	cfg "github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// NewEntityRenderer returns a renderer drawing every visible entity layer by
// layer, bottom first.
func NewEntityRenderer(ps *Presentation) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return // No camera yet
		}
		camera := components.Camera.Get(cameraEntry)
		zoom := camera.Zoom
		if zoom == 0 {
			zoom = 1.0
		}
		now := ps.Now()

		for _, id := range ps.Presenter.Visible() {
			for _, layer := range ps.Presenter.Layers(id) {
				r, ok := ps.Presenter.RenderFrame(id, layer, now)
				if !ok {
					continue
				}
				img := ps.Frames.Image(r.FrameView)
				if img == nil {
					continue
				}

				drawOp.GeoM.Reset()
				drawOp.GeoM.Scale(r.Scale*zoom, r.Scale*zoom)
				drawOp.GeoM.Rotate(camera.Rotation)
				pos := camera.WorldToScreen(r.Position)
				drawOp.GeoM.Translate(pos.X, pos.Y)
				screen.DrawImage(img, drawOp)
			}

			if cfg.Debug.Overlay {
				pos, _ := ps.Presenter.Position(id)
				sp := camera.WorldToScreen(pos)
				label := "ID:" + strconv.FormatUint(uint64(id), 10)
				text.Draw(screen, label, fonts.Small.Get(), int(sp.X), int(sp.Y)-4, cfg.White)
			}
		}
	}
}
