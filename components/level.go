package components

import (
	"github.com/automoto/cyberia-client/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Names        []string
}

var Level = donburi.NewComponentType[LevelData]()
