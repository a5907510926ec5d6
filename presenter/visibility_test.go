package presenter

import (
	"slices"
	"testing"

	"github.com/automoto/cyberia-client/shared/netconfig"
)

func TestVisibilityEnterLeave(t *testing.T) {
	v := NewVisibility(1024, 1024, 32)
	v.Track(1, 10, 10, 16, 16)
	v.Track(2, 500, 500, 16, 16)
	// Same cell as the view edge, but not overlapping it.
	v.Track(3, 101, 10, 8, 8)

	entered, left := v.Update(0, 0, 100, 100)
	if !slices.Equal(entered, []netconfig.EntityID{1}) || len(left) != 0 {
		t.Fatalf("entered %v left %v", entered, left)
	}

	entered, left = v.Update(0, 0, 100, 100)
	if len(entered) != 0 || len(left) != 0 {
		t.Fatalf("no change expected, got %v %v", entered, left)
	}

	v.Track(2, 50, 50, 16, 16)
	entered, left = v.Update(40, 40, 100, 100)
	if !slices.Equal(entered, []netconfig.EntityID{2}) || !slices.Equal(left, []netconfig.EntityID{1}) {
		t.Fatalf("entered %v left %v", entered, left)
	}
	if !v.InView(2) || v.InView(1) {
		t.Fatal("InView disagrees with Update")
	}

	v.Untrack(2)
	entered, left = v.Update(40, 40, 100, 100)
	if len(entered) != 0 || len(left) != 0 {
		t.Fatalf("untracked entity reported: %v %v", entered, left)
	}
}
