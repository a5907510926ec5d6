package animations

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"sort"
	"time"
)

var ErrNoDefinitions = errors.New("no animation definitions found")

// definitionFile is the on-disk JSON shape of one layer type. Palette
// entries are straight (non-premultiplied) [r, g, b, a].
type definitionFile struct {
	ID            string             `json:"id"`
	Layer         string             `json:"layer"`
	FrameDuration string             `json:"frameDuration"`
	Stateless     bool               `json:"stateless"`
	Palette       [][4]uint8         `json:"palette"`
	Frames        map[string][]Frame `json:"frames"`
}

// Library maps visual layer ids to their definitions.
type Library struct {
	defs map[string]*Definition
}

func NewLibrary() *Library {
	return &Library{defs: make(map[string]*Definition)}
}

// Register adds or replaces the definition for layer.
func (l *Library) Register(layer string, def *Definition) {
	l.defs[layer] = def
}

// Get returns the definition for layer.
func (l *Library) Get(layer string) (*Definition, bool) {
	def, ok := l.defs[layer]
	return def, ok
}

// Layers returns the registered layer ids, sorted.
func (l *Library) Layers() []string {
	out := make([]string, 0, len(l.defs))
	for layer := range l.defs {
		out = append(out, layer)
	}
	sort.Strings(out)
	return out
}

// ParseDefinition decodes one JSON definition. The layer id defaults to the
// definition id.
func ParseDefinition(data []byte) (string, *Definition, error) {
	var file definitionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", nil, fmt.Errorf("decode definition: %w", err)
	}

	var frameDuration time.Duration
	if file.FrameDuration != "" {
		d, err := time.ParseDuration(file.FrameDuration)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %s frame duration: %v", ErrInvalidDefinition, file.ID, err)
		}
		frameDuration = d
	}

	palette := make([]color.RGBA, len(file.Palette))
	for i, p := range file.Palette {
		palette[i] = color.RGBAModel.Convert(color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}).(color.RGBA)
	}

	def := &Definition{
		ID:            file.ID,
		Frames:        file.Frames,
		Palette:       palette,
		FrameDuration: frameDuration,
		Stateless:     file.Stateless,
	}
	if def.Frames == nil {
		def.Frames = make(map[string][]Frame)
	}
	if err := def.Validate(); err != nil {
		return "", nil, err
	}

	layer := file.Layer
	if layer == "" {
		layer = file.ID
	}
	return layer, def, nil
}

// LoadLibrary parses every *.json file in dir within fsys. It takes an
// fs.FS so callers can pass the embedded assets or os.DirFS.
func LoadLibrary(fsys fs.FS, dir string) (*Library, error) {
	pattern := dir + "/*.json"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDefinitions, dir)
	}
	sort.Strings(matches)

	lib := NewLibrary()
	for _, path := range matches {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		layer, def, err := ParseDefinition(data)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		lib.Register(layer, def)
	}
	return lib, nil
}
