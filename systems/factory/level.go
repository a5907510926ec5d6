package factory

import (
	"strings"

	"github.com/automoto/cyberia-client/archetypes"
	"github.com/automoto/cyberia-client/components"
	"github.com/automoto/cyberia-client/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton for the level called name, falling
// back to the first level when name is unknown.
func CreateLevel(ecs *ecs.ECS, levels map[string]*leveldata.Level, names []string, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levelIndex := 0
	for i, n := range names {
		if strings.EqualFold(n, name) {
			levelIndex = i
			break
		}
	}

	levelData := &components.LevelData{
		Names:      names,
		LevelIndex: levelIndex,
	}
	if len(names) > 0 {
		levelData.CurrentLevel = levels[names[levelIndex]]
	}

	components.Level.Set(level, levelData)

	return level
}
