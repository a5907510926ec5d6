package netcomponents

import "github.com/yohamta/donburi"

// NetPositionData is the entity's world position, top-left of its bounds.
type NetPositionData struct {
	X, Y float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// NetDimensionsData is the entity's on-screen footprint in world pixels.
type NetDimensionsData struct {
	W, H float64
}

var NetDimensions = donburi.NewComponentType[NetDimensionsData]()
