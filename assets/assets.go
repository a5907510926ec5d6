package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/cyberia-client/assets/animations"
	"github.com/automoto/cyberia-client/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed definitions/*.json
	definitionFS embed.FS

	//go:embed levels/*.tmx
	levelFS embed.FS
)

// LoadLibrary loads every embedded animation definition.
func LoadLibrary() (*animations.Library, error) {
	lib, err := animations.LoadLibrary(definitionFS, "definitions")
	if err != nil {
		return nil, fmt.Errorf("load embedded definitions: %w", err)
	}
	return lib, nil
}

// LoadLevels loads every embedded level, keyed by stem name.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(levelFS, "levels")
}

type frameKey struct {
	def   *animations.Definition
	key   string
	index int
}

// FrameCache turns palette-indexed frames into GPU images once per
// (definition, key, index). Definitions are immutable, so entries never go
// stale; an edited definition is a new pointer and gets its own entries.
// Entries of definitions nothing plays any more are released by Retain.
type FrameCache struct {
	images map[frameKey]*ebiten.Image
}

func NewFrameCache() *FrameCache {
	return &FrameCache{images: make(map[frameKey]*ebiten.Image)}
}

// Image returns the cached image for v, building it on first use. Empty
// frames return nil.
func (c *FrameCache) Image(v animations.FrameView) *ebiten.Image {
	k := frameKey{def: v.Def, key: v.Key, index: v.Index}
	if img, ok := c.images[k]; ok {
		return img
	}

	w, h := v.Size()
	if w == 0 || h == 0 {
		return nil
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(v.RGBA())
	c.images[k] = img
	return img
}

func (c *FrameCache) Len() int { return len(c.images) }

// Retain releases the images of every definition live rejects and returns
// how many were released.
func (c *FrameCache) Retain(live func(*animations.Definition) bool) int {
	released := 0
	for k, img := range c.images {
		if live(k.def) {
			continue
		}
		img.Deallocate()
		delete(c.images, k)
		released++
	}
	return released
}

// Clear releases every cached image.
func (c *FrameCache) Clear() {
	for k, img := range c.images {
		img.Deallocate()
		delete(c.images, k)
	}
}
