package animations

import (
	"image/color"
	"testing"
	"time"

	"github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/shared/netconfig"
)

var epoch = time.Unix(1_700_000_000, 0)

func frames(n int) []Frame {
	out := make([]Frame, n)
	for i := range out {
		out[i] = Frame{{i, i}, {i, i}}
	}
	return out
}

func testDefinition() *Definition {
	return &Definition{
		ID: "skin-test",
		Frames: map[string][]Frame{
			DefaultIdleKey: frames(1),
			"DOWN_IDLE":    frames(2),
			"UP_IDLE":      frames(3),
			"UP_WALKING":   frames(4),
			"LEFT_IDLE":    frames(1),
		},
		Palette:       []color.RGBA{{}, {R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}},
		FrameDuration: 300 * time.Millisecond,
	}
}

func TestAdvanceTwoFrameScenario(t *testing.T) {
	def := &Definition{
		ID:            "two-frame",
		Frames:        map[string][]Frame{"DOWN_IDLE": frames(2)},
		Palette:       []color.RGBA{{}},
		FrameDuration: 300 * time.Millisecond,
	}
	a := NewAnimation(def, 1, 0)
	a.SetState(netconfig.Down, netconfig.Idle, epoch)

	steps := []struct {
		dt        time.Duration
		wantFrame int
		wantTimer time.Duration
	}{
		{300 * time.Millisecond, 1, 0},
		{300 * time.Millisecond, 0, 0},
		{150 * time.Millisecond, 0, 150 * time.Millisecond},
	}
	now := epoch
	for i, s := range steps {
		now = now.Add(s.dt)
		a.Advance(s.dt, now)
		if a.Frame() != s.wantFrame || a.Timer() != s.wantTimer {
			t.Fatalf("step %d: got frame %d timer %v, want frame %d timer %v",
				i, a.Frame(), a.Timer(), s.wantFrame, s.wantTimer)
		}
	}
}

func TestSingleFrameKeyNeverAdvances(t *testing.T) {
	a := NewAnimation(testDefinition(), 1, 0)
	a.SetState(netconfig.Left, netconfig.Idle, epoch)
	if a.Key() != "LEFT_IDLE" {
		t.Fatalf("key = %s", a.Key())
	}
	now := epoch
	for i := 0; i < 100; i++ {
		now = now.Add(170 * time.Millisecond)
		a.Advance(170*time.Millisecond, now)
		if a.Frame() != 0 || a.Timer() != 0 {
			t.Fatalf("tick %d: frame %d timer %v", i, a.Frame(), a.Timer())
		}
	}
}

func TestFrameIndexStaysInRangeForEveryKey(t *testing.T) {
	def := testDefinition()
	dirs := []netconfig.Direction{
		netconfig.Up, netconfig.UpRight, netconfig.Right, netconfig.DownRight,
		netconfig.Down, netconfig.DownLeft, netconfig.Left, netconfig.UpLeft,
	}
	for _, d := range dirs {
		for _, m := range []netconfig.Mode{netconfig.Idle, netconfig.Walking} {
			a := NewAnimation(def, 1, 0)
			now := epoch
			a.SetState(d, m, now)
			n := len(def.framesFor(a.Key()))
			for i := 0; i < 50; i++ {
				now = now.Add(110 * time.Millisecond)
				a.Advance(110*time.Millisecond, now)
				if a.Frame() < 0 || a.Frame() >= n {
					t.Fatalf("%s: frame %d out of [0,%d)", Key(d, m), a.Frame(), n)
				}
				if v := a.CurrentFrame(now); v.Index < 0 || v.Index >= n {
					t.Fatalf("%s: view index %d out of [0,%d)", Key(d, m), v.Index, n)
				}
			}
		}
	}
}

func TestFallbackChain(t *testing.T) {
	def := testDefinition()
	cases := []struct {
		name string
		dir  netconfig.Direction
		mode netconfig.Mode
		want string
	}{
		{"exact", netconfig.Up, netconfig.Walking, "UP_WALKING"},
		{"idle variant", netconfig.Down, netconfig.Walking, "DOWN_IDLE"},
		{"default idle", netconfig.Right, netconfig.Walking, DefaultIdleKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnimation(def, 1, 0)
			a.SetState(tc.dir, tc.mode, epoch)
			if a.Key() != tc.want {
				t.Fatalf("got %s want %s", a.Key(), tc.want)
			}
		})
	}

	t.Run("placeholder", func(t *testing.T) {
		empty := &Definition{ID: "empty", Frames: map[string][]Frame{"UP_IDLE": {}}}
		a := NewAnimation(empty, 1, 0)
		a.SetState(netconfig.Up, netconfig.Idle, epoch)
		v := a.CurrentFrame(epoch)
		if v.Key != PlaceholderKey {
			t.Fatalf("got key %s", v.Key)
		}
		if w, h := v.Size(); w != 1 || h != 1 {
			t.Fatalf("placeholder size %dx%d", w, h)
		}
		if c := v.ColorAt(0, 0); c.A != 0 {
			t.Fatalf("placeholder should be transparent, got %v", c)
		}
	})
}

func TestKeyChangeCutsToFirstFrame(t *testing.T) {
	a := NewAnimation(testDefinition(), 1, 0)
	a.SetState(netconfig.Up, netconfig.Idle, epoch)
	a.Advance(300*time.Millisecond, epoch)
	if a.Frame() != 1 {
		t.Fatalf("frame = %d", a.Frame())
	}
	a.SetState(netconfig.Up, netconfig.Idle, epoch)
	if a.Frame() != 1 {
		t.Fatal("same key must not reset")
	}
	a.SetState(netconfig.Up, netconfig.Walking, epoch)
	if a.Key() != "UP_WALKING" || a.Frame() != 0 || a.Timer() != 0 {
		t.Fatalf("key %s frame %d timer %v", a.Key(), a.Frame(), a.Timer())
	}
}

func TestWalkingGraceKeepsSuffix(t *testing.T) {
	a := NewAnimation(testDefinition(), 1, 500*time.Millisecond)
	a.SetState(netconfig.Up, netconfig.Walking, epoch)

	a.SetState(netconfig.Up, netconfig.Idle, epoch.Add(200*time.Millisecond))
	if a.Key() != "UP_WALKING" {
		t.Fatalf("inside grace: key %s", a.Key())
	}
	if a.Mode() != netconfig.Idle {
		t.Fatal("reported mode must not be affected by grace")
	}

	a.SetState(netconfig.Up, netconfig.Idle, epoch.Add(600*time.Millisecond))
	if a.Key() != "UP_IDLE" {
		t.Fatalf("after grace: key %s", a.Key())
	}
}

func TestStatelessIgnoresDirectionAndMode(t *testing.T) {
	def := testDefinition()
	def.Stateless = true
	a := NewAnimation(def, 1, time.Second)
	for _, d := range []netconfig.Direction{netconfig.Up, netconfig.Left, netconfig.DownRight} {
		a.SetState(d, netconfig.Walking, epoch)
		if a.Key() != DefaultIdleKey {
			t.Fatalf("stateless key = %s", a.Key())
		}
		if a.Direction() != netconfig.IdleFacing || a.Mode() != netconfig.Idle {
			t.Fatalf("stateless state not neutral: %v %v", a.Direction(), a.Mode())
		}
	}
}

func TestPauseAndResume(t *testing.T) {
	a := NewAnimation(testDefinition(), 1, 0)
	a.SetState(netconfig.Up, netconfig.Walking, epoch)

	a.PauseAtFrame(2)
	now := epoch
	for i := 0; i < 20; i++ {
		now = now.Add(time.Second)
		a.Advance(time.Second, now)
		if v := a.CurrentFrame(now); v.Index != 2 {
			t.Fatalf("paused frame drifted to %d", v.Index)
		}
	}

	a.Resume()
	a.Advance(300*time.Millisecond, now)
	if a.Frame() != 3 {
		t.Fatalf("resume then advance: frame %d want 3", a.Frame())
	}
}

func TestPauseAtFrameClamps(t *testing.T) {
	a := NewAnimation(testDefinition(), 1, 0)
	a.SetState(netconfig.Up, netconfig.Idle, epoch)
	a.PauseAtFrame(99)
	if v := a.CurrentFrame(epoch); v.Index != 2 {
		t.Fatalf("got %d want last frame 2", v.Index)
	}
	a.PauseAtFrame(-4)
	if v := a.CurrentFrame(epoch); v.Index != 0 {
		t.Fatalf("got %d want 0", v.Index)
	}
}

func TestPausedKeyChangeKeepsPausedFrame(t *testing.T) {
	a := NewAnimation(testDefinition(), 1, 0)
	a.SetState(netconfig.Up, netconfig.Walking, epoch)
	a.PauseAtFrame(3)
	a.SetState(netconfig.Down, netconfig.Idle, epoch)
	if v := a.CurrentFrame(epoch); v.Key != "DOWN_IDLE" || v.Index != 1 {
		t.Fatalf("got %s[%d], want DOWN_IDLE[1] (clamped)", v.Key, v.Index)
	}
}

func TestSetDefinitionResets(t *testing.T) {
	a := NewAnimation(testDefinition(), 1, 0)
	a.SetState(netconfig.Up, netconfig.Idle, epoch)
	a.Advance(300*time.Millisecond, epoch)

	next := testDefinition()
	next.ID = "skin-next"
	a.SetDefinition(next, epoch)
	if a.Definition() != next || a.Frame() != 0 || a.Timer() != 0 || a.Key() != "UP_IDLE" {
		t.Fatalf("def %s frame %d timer %v key %s", a.Definition().ID, a.Frame(), a.Timer(), a.Key())
	}
}

func TestPaletteOutOfRangeUsesFallback(t *testing.T) {
	v := FrameView{
		Pixels:  Frame{{0, 7}},
		Palette: []color.RGBA{{R: 1, A: 255}},
	}
	if c := v.ColorAt(1, 0); c != config.Animation.FallbackColor {
		t.Fatalf("got %v want fallback", c)
	}
	px := v.RGBA()
	if len(px) != 8 || px[0] != 1 || px[3] != 255 {
		t.Fatalf("unexpected pixels %v", px)
	}
}

func TestValidateRejectsZeroDurationMultiFrame(t *testing.T) {
	def := testDefinition()
	def.FrameDuration = 0
	if err := def.Validate(); err == nil {
		t.Fatal("expected error")
	}
}
