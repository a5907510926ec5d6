package main

import (
	"flag"
	"image"

	"github.com/automoto/cyberia-client/assets"
	"github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/fonts"
	"github.com/automoto/cyberia-client/logger"
	"github.com/automoto/cyberia-client/network"
	"github.com/automoto/cyberia-client/presenter"
	"github.com/automoto/cyberia-client/scenes"
	"github.com/automoto/cyberia-client/shared/protocol"
	"github.com/automoto/cyberia-client/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Network.Address, "addr", config.Network.Address, "game server address (host:port)")
	flag.StringVar(&config.Network.PlayerName, "name", config.Network.PlayerName, "player name sent on join")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "show the debug overlay")
	flag.DurationVar(&config.Interp.Window, "interp", config.Interp.Window, "snapshot interpolation window")
	flag.Parse()

	logger.Init()
	log := logger.Log

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.WithError(err).Fatal("failed to register network components")
	}

	if err := fonts.Init(); err != nil {
		log.WithError(err).Fatal("failed to load fonts")
	}

	library, err := assets.LoadLibrary()
	if err != nil {
		log.WithError(err).Fatal("failed to load animation definitions")
	}
	log.WithField("layers", library.Layers()).Info("animation definitions loaded")

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("cyberia-client"); err == nil {
		systems.ApplySavedSettings()
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("cyberia")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	client := network.NewClient(presenter.NewSnapshotBuffer())
	g := &Game{}
	g.scene = scenes.NewNetworkedScene(g, client, library)

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game exited")
	}
	client.Disconnect()
}
