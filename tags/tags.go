package tags

import "github.com/yohamta/donburi"

var (
	Camera = donburi.NewTag().SetName("Camera")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for visibility culling
const (
	ResolvEntity = "entity"
	ResolvView   = "view"
)
