package animations

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"
)

const skinJSON = `{
	"id": "skin-default",
	"layer": "skin",
	"frameDuration": "300ms",
	"palette": [[0, 0, 0, 0], [255, 0, 0, 128]],
	"frames": {
		"DEFAULT_IDLE": [[[0, 1], [1, 0]]],
		"DOWN_WALKING": [[[1, 1], [0, 0]], [[0, 0], [1, 1]]]
	}
}`

const sparkJSON = `{
	"id": "spark",
	"stateless": true,
	"frameDuration": "100ms",
	"palette": [[255, 255, 0, 255]],
	"frames": {"DEFAULT_IDLE": [[[0]], [[0]], [[0]]]}
}`

func TestLoadLibrary(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/skin.json":  {Data: []byte(skinJSON)},
		"defs/spark.json": {Data: []byte(sparkJSON)},
		"defs/readme.txt": {Data: []byte("ignored")},
	}
	lib, err := LoadLibrary(fsys, "defs")
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if got := lib.Layers(); len(got) != 2 || got[0] != "skin" || got[1] != "spark" {
		t.Fatalf("layers = %v", got)
	}

	skin, _ := lib.Get("skin")
	if skin.FrameDuration != 300*time.Millisecond || skin.Width() != 2 {
		t.Fatalf("duration %v width %d", skin.FrameDuration, skin.Width())
	}
	// Straight alpha is converted to premultiplied.
	if c := skin.Palette[1]; c.R != 128 || c.A != 128 {
		t.Fatalf("palette[1] = %v", c)
	}

	spark, _ := lib.Get("spark")
	if !spark.Stateless || len(spark.Frames[DefaultIdleKey]) != 3 {
		t.Fatalf("spark = %+v", spark)
	}
}

func TestLoadLibraryErrors(t *testing.T) {
	if _, err := LoadLibrary(fstest.MapFS{}, "defs"); !errors.Is(err, ErrNoDefinitions) {
		t.Fatalf("empty dir: %v", err)
	}

	bad := fstest.MapFS{
		"defs/bad.json": {Data: []byte(`{"id":"bad","frames":{"UP_IDLE":[[[0]],[[0]]]}}`)},
	}
	if _, err := LoadLibrary(bad, "defs"); !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("zero duration: %v", err)
	}

	badDuration := fstest.MapFS{
		"defs/bad.json": {Data: []byte(`{"id":"bad","frameDuration":"soon"}`)},
	}
	if _, err := LoadLibrary(badDuration, "defs"); !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("bad duration: %v", err)
	}
}
