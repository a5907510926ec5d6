package presenter

import (
	gomath "math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

// Camera maps world space onto the viewport. Target is the world point shown
// at Offset, which stays at the viewport center.
type Camera struct {
	Offset   math.Vec2
	Target   math.Vec2
	Zoom     float64
	Rotation float64

	zoomTween *gween.Tween
}

func NewCamera(viewW, viewH, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	c := &Camera{Zoom: zoom}
	c.Resize(viewW, viewH)
	return c
}

// Resize recenters Offset for a new viewport size.
func (c *Camera) Resize(viewW, viewH float64) {
	c.Offset = math.Vec2{X: viewW / 2, Y: viewH / 2}
}

// Follow moves Target a fraction of the way toward desired.
func (c *Camera) Follow(desired math.Vec2, factor float64) {
	c.Target.X += (desired.X - c.Target.X) * factor
	c.Target.Y += (desired.Y - c.Target.Y) * factor
}

// FollowFactor converts a per-second rate into a per-tick smoothing factor
// that does not depend on the tick length.
func FollowFactor(rate float64, dt time.Duration) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - gomath.Exp(-rate*dt.Seconds())
}

// Clamp limits desired so the view stays inside a levelW x levelH world.
// Levels smaller than the view are centered.
func (c *Camera) Clamp(desired math.Vec2, levelW, levelH float64) math.Vec2 {
	if levelW <= 0 || levelH <= 0 {
		return desired
	}
	zoom := c.zoom()
	halfW := c.Offset.X / zoom
	halfH := c.Offset.Y / zoom

	minX, maxX := halfW, levelW-halfW
	if minX > maxX {
		minX, maxX = levelW/2, levelW/2
	}
	minY, maxY := halfH, levelH-halfH
	if minY > maxY {
		minY, maxY = levelH/2, levelH/2
	}
	return math.Vec2{
		X: gomath.Max(minX, gomath.Min(maxX, desired.X)),
		Y: gomath.Max(minY, gomath.Min(maxY, desired.Y)),
	}
}

// ZoomTo eases Zoom toward z over d. A non-positive d applies z at once.
func (c *Camera) ZoomTo(z float64, d time.Duration) {
	if z <= 0 {
		return
	}
	if d <= 0 {
		c.Zoom = z
		c.zoomTween = nil
		return
	}
	c.zoomTween = gween.New(float32(c.zoom()), float32(z), float32(d.Seconds()), ease.OutQuad)
}

// Update advances the zoom tween.
func (c *Camera) Update(dt time.Duration) {
	if c.zoomTween == nil {
		return
	}
	z, done := c.zoomTween.Update(float32(dt.Seconds()))
	c.Zoom = float64(z)
	if done {
		c.zoomTween = nil
	}
}

// Zooming reports whether a zoom tween is running.
func (c *Camera) Zooming() bool { return c.zoomTween != nil }

// WorldToScreen projects a world position into viewport pixels.
func (c *Camera) WorldToScreen(p math.Vec2) math.Vec2 {
	zoom := c.zoom()
	x := (p.X - c.Target.X) * zoom
	y := (p.Y - c.Target.Y) * zoom
	if c.Rotation != 0 {
		sin, cos := gomath.Sincos(c.Rotation)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return math.Vec2{X: c.Offset.X + x, Y: c.Offset.Y + y}
}

// ViewRect returns the world rectangle covered by the unrotated view.
func (c *Camera) ViewRect() (x, y, w, h float64) {
	zoom := c.zoom()
	w = 2 * c.Offset.X / zoom
	h = 2 * c.Offset.Y / zoom
	return c.Target.X - w/2, c.Target.Y - h/2, w, h
}

func (c *Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}
