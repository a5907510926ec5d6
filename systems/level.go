package systems

import (
	"image/color"

	"github.com/automoto/cyberia-client/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	gridColor   = color.RGBA{30, 34, 48, 255}
	borderColor = color.RGBA{90, 100, 140, 255}
)

// DrawLevel draws the tile grid and the world border of the current level.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel
	if lvl == nil || lvl.TileWidth <= 0 || lvl.TileHeight <= 0 {
		return
	}

	vx, vy, vw, vh := camera.ViewRect()
	w, h := float64(lvl.Width), float64(lvl.Height)

	// Only the grid lines inside the view.
	startX := max(0, int(vx)/lvl.TileWidth*lvl.TileWidth)
	for x := float64(startX); x <= min(w, vx+vw); x += float64(lvl.TileWidth) {
		a := camera.WorldToScreen(math.Vec2{X: x, Y: 0})
		b := camera.WorldToScreen(math.Vec2{X: x, Y: h})
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, gridColor, false)
	}
	startY := max(0, int(vy)/lvl.TileHeight*lvl.TileHeight)
	for y := float64(startY); y <= min(h, vy+vh); y += float64(lvl.TileHeight) {
		a := camera.WorldToScreen(math.Vec2{X: 0, Y: y})
		b := camera.WorldToScreen(math.Vec2{X: w, Y: y})
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, gridColor, false)
	}

	tl := camera.WorldToScreen(math.Vec2{})
	br := camera.WorldToScreen(math.Vec2{X: w, Y: h})
	vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y), 2, borderColor, false)
}
