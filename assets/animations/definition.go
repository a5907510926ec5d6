package animations

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/logger"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/sirupsen/logrus"
)

// DefaultIdleKey is the key every definition should provide. Stateless
// definitions play only this key.
const DefaultIdleKey = "DEFAULT_IDLE"

// PlaceholderKey names the single transparent frame used when nothing else
// in the fallback chain has frames.
const PlaceholderKey = "PLACEHOLDER"

var ErrInvalidDefinition = errors.New("invalid animation definition")

// Frame is a matrix of palette indices, one row per scanline.
type Frame [][]int

var (
	placeholderFrames  = []Frame{{{0}}}
	placeholderPalette = []color.RGBA{config.Transparent}
)

// Definition is the immutable animation data shared by every entity that
// renders one visual layer type.
type Definition struct {
	ID            string
	Frames        map[string][]Frame
	Palette       []color.RGBA
	FrameDuration time.Duration
	Stateless     bool
}

// Key builds the animation key for a direction and mode, e.g. "UP_WALKING".
func Key(d netconfig.Direction, m netconfig.Mode) string {
	return d.String() + "_" + m.String()
}

// Validate rejects definitions the state machine cannot play.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidDefinition)
	}
	for key, frames := range d.Frames {
		if len(frames) > 1 && d.FrameDuration <= 0 {
			return fmt.Errorf("%w: %s key %s has %d frames but frame duration %v",
				ErrInvalidDefinition, d.ID, key, len(frames), d.FrameDuration)
		}
	}
	return nil
}

// Width returns the width in pixels of the first frame of the default idle
// key, or of any key when that is missing. It is zero for an empty definition.
func (d *Definition) Width() int {
	if frames := d.Frames[DefaultIdleKey]; len(frames) > 0 && len(frames[0]) > 0 {
		return len(frames[0][0])
	}
	for _, frames := range d.Frames {
		if len(frames) > 0 && len(frames[0]) > 0 {
			return len(frames[0][0])
		}
	}
	return 0
}

// Resolve walks the fallback chain for want: the exact key, the idle variant
// of dir, DefaultIdleKey, then the placeholder. exact is false when any
// fallback was taken.
func (d *Definition) Resolve(want string, dir netconfig.Direction) (key string, frames []Frame, exact bool) {
	if frames := d.Frames[want]; len(frames) > 0 {
		return want, frames, true
	}
	if dir.Valid() {
		idle := Key(dir, netconfig.Idle)
		if frames := d.Frames[idle]; len(frames) > 0 {
			return idle, frames, false
		}
	}
	if frames := d.Frames[DefaultIdleKey]; len(frames) > 0 {
		return DefaultIdleKey, frames, false
	}
	return PlaceholderKey, placeholderFrames, false
}

func (d *Definition) framesFor(key string) []Frame {
	if key == PlaceholderKey {
		return placeholderFrames
	}
	if frames := d.Frames[key]; len(frames) > 0 {
		return frames
	}
	return placeholderFrames
}

func (d *Definition) paletteFor(key string) []color.RGBA {
	if key == PlaceholderKey {
		return placeholderPalette
	}
	return d.Palette
}

// FrameView is what the renderer receives for one layer of one entity.
type FrameView struct {
	Def     *Definition
	Key     string
	Index   int
	Pixels  Frame
	Palette []color.RGBA
	Scale   float64
}

// Size returns the frame width and height.
func (v FrameView) Size() (w, h int) {
	if len(v.Pixels) == 0 {
		return 0, 0
	}
	return len(v.Pixels[0]), len(v.Pixels)
}

// ColorAt returns the palette color of pixel (x, y). Indices outside the
// palette render as config.Animation.FallbackColor.
func (v FrameView) ColorAt(x, y int) color.RGBA {
	return PaletteColor(v.Palette, v.Pixels[y][x])
}

// RGBA flattens the frame into alpha-premultiplied RGBA bytes, row-major,
// the layout ebiten's WritePixels expects.
func (v FrameView) RGBA() []byte {
	w, h := v.Size()
	out := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.RGBA
			if x < len(v.Pixels[y]) {
				c = v.ColorAt(x, y)
			} else {
				c = config.Animation.FallbackColor
			}
			out = append(out, c.R, c.G, c.B, c.A)
		}
	}
	return out
}

// PaletteColor looks up idx in palette, falling back to
// config.Animation.FallbackColor when it is out of range.
func PaletteColor(palette []color.RGBA, idx int) color.RGBA {
	if idx < 0 || idx >= len(palette) {
		logger.Log.WithFields(logrus.Fields{
			"index":   idx,
			"palette": len(palette),
		}).Debug("palette index out of range")
		return config.Animation.FallbackColor
	}
	return palette[idx]
}
