// Package leveldata provides TMX level parsing for the client.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// Level holds the world size and spawn data parsed from a TMX level file.
type Level struct {
	Name        string
	Width       int // World width in pixels
	Height      int // World height in pixels
	TileWidth   int
	TileHeight  int
	SpawnPoints []SpawnPoint
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn point with the given index, or the world center.
func (l *Level) Spawn(index int) (float64, float64) {
	for _, sp := range l.SpawnPoints {
		if sp.Index == index {
			return sp.X, sp.Y
		}
	}
	return float64(l.Width) / 2, float64(l.Height) / 2
}
