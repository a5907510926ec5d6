package systems

import (
	"fmt"

	cfg "github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/fonts"
	"github.com/automoto/cyberia-client/network"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 4

// NewHUDRenderer draws connection state and presenter counters in the
// top-left corner.
func NewHUDRenderer(ps *Presentation, client *network.Client) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		reg := ps.Presenter.Registry()
		info := fmt.Sprintf("%s - Entities: %d  Visible: %d  Animations: %d",
			client.State(), ps.Presenter.Tracked(), len(ps.Presenter.Visible()), reg.Animations())
		text.Draw(screen, info, fonts.Small.Get(), hudMargin, 12, cfg.LightGreen)

		if cfg.Debug.Overlay {
			debug := fmt.Sprintf("TPS %.0f  FPS %.0f  frames cached: %d",
				ebiten.ActualTPS(), ebiten.ActualFPS(), ps.Frames.Len())
			text.Draw(screen, debug, fonts.Small.Get(), hudMargin, 24, cfg.Yellow)
		}
	}
}
