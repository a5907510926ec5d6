package components

import (
	"github.com/automoto/cyberia-client/presenter"
	"github.com/yohamta/donburi"
)

var Camera = donburi.NewComponentType[presenter.Camera]()
