package factory

import (
	"github.com/automoto/cyberia-client/archetypes"
	"github.com/automoto/cyberia-client/components"
	"github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/presenter"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera singleton centered on the viewport.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	c := presenter.NewCamera(float64(config.C.Width), float64(config.C.Height), config.Camera.DefaultZoom)
	components.Camera.Set(camera, c)
	return camera
}
