package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/cyberia-client/archetypes"
	"github.com/automoto/cyberia-client/assets"
	"github.com/automoto/cyberia-client/assets/animations"
	"github.com/automoto/cyberia-client/components"
	cfg "github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/fonts"
	"github.com/automoto/cyberia-client/logger"
	"github.com/automoto/cyberia-client/network"
	"github.com/automoto/cyberia-client/presenter"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/automoto/cyberia-client/systems"
	"github.com/automoto/cyberia-client/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const reconnectDelay = 3 * time.Second

// visibilityCell is the resolv cell size used for camera culling.
const visibilityCell = 64

// NetworkedScene renders the world streamed by the server.
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	library      *animations.Library
	presentation *systems.Presentation
	once         sync.Once

	level       string
	retryAt     time.Time
	disconnects int
}

func NewNetworkedScene(sc SceneChanger, client *network.Client, library *animations.Library) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		library:      library,
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		ns.reconnect()
	}

	if level := ns.netClient.Level(); level != "" && level != ns.level {
		ns.loadLevel(level)
	}

	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecsWorld == nil {
		return
	}

	ns.ecsWorld.Draw(screen)

	if state := ns.netClient.State(); state != network.StateJoinedGame {
		text.Draw(screen, "Waiting for server ("+state.String()+")", fonts.Regular.Get(),
			cfg.C.Width/2-90, cfg.C.Height/2, cfg.White)
	}
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())

	p := presenter.New(ns.library, presenter.OptionsFromConfig())
	ns.presentation = systems.NewPresentation(p, ns.netClient.Buffer())

	factory.CreateCamera(ns.ecsWorld)
	ns.loadLevel(ns.netClient.Level())

	localID := func() netconfig.EntityID {
		return netconfig.EntityID(ns.netClient.NetworkID())
	}

	ns.ecsWorld.AddSystem(systems.UpdateInput)
	ns.ecsWorld.AddSystem(ns.presentation.Update)
	ns.ecsWorld.AddSystem(systems.NewCameraSystem(ns.presentation, localID))
	ns.ecsWorld.AddRenderer(archetypes.LayerDefault, systems.DrawLevel)
	ns.ecsWorld.AddRenderer(archetypes.LayerDefault, systems.NewEntityRenderer(ns.presentation))
	ns.ecsWorld.AddRenderer(archetypes.LayerDefault, systems.NewDebugRenderer(ns.presentation))
	ns.ecsWorld.AddRenderer(archetypes.LayerHUD, systems.NewHUDRenderer(ns.presentation, ns.netClient))
}

// loadLevel swaps the level singleton and rebuilds culling for its bounds.
func (ns *NetworkedScene) loadLevel(name string) {
	levels, names, err := assets.LoadLevels()
	if err != nil {
		logger.Log.WithError(err).Error("could not load levels")
		ns.level = name
		return
	}

	if entry, ok := components.Level.First(ns.ecsWorld.World); ok {
		entry.Remove()
	}
	entry := factory.CreateLevel(ns.ecsWorld, levels, names, name)
	ns.level = name

	lvl := components.Level.Get(entry).CurrentLevel
	if lvl == nil {
		return
	}
	ns.presentation.Frames.Clear()
	ns.presentation.Presenter.SetVisibility(presenter.NewVisibility(lvl.Width, lvl.Height, visibilityCell))
	x, y := lvl.Spawn(0)
	systems.SnapCamera(ns.ecsWorld, math.Vec2{X: x, Y: y})
	logger.Log.WithField("level", lvl.Name).Info("level loaded")
}

func (ns *NetworkedScene) reconnect() {
	now := time.Now()
	if now.Before(ns.retryAt) {
		return
	}
	if err := ns.netClient.LastError(); err != nil && ns.disconnects > 0 {
		logger.Log.WithError(err).WithField("attempt", ns.disconnects).Warn("reconnecting")
	}
	ns.disconnects++
	ns.retryAt = now.Add(reconnectDelay)

	ns.netClient.Disconnect()
	ns.netClient.Connect(cfg.Network.Address, cfg.Network.Version, cfg.Network.PlayerName)
}
