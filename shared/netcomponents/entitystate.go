package netcomponents

import (
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetEntityStateData struct {
	Layers    []string            // Visual layers, bottom first
	Direction netconfig.Direction // Only used when Explicit
	Mode      netconfig.Mode      // Only used when Explicit
	Explicit  bool
	Timestamp int64 // Server clock, Unix ms
}

var NetEntityState = donburi.NewComponentType[NetEntityStateData]()
