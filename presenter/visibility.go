package presenter

import (
	"slices"

	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/automoto/cyberia-client/tags"
	"github.com/solarlune/resolv"
)

// Visibility decides which entities overlap the camera view. Entity bounds
// live in a resolv.Space; the view is one more object queried against it.
type Visibility struct {
	space   *resolv.Space
	view    *resolv.Object
	objects map[netconfig.EntityID]*resolv.Object
	inView  map[netconfig.EntityID]struct{}
}

// NewVisibility covers a width x height world split into cell-sized buckets.
// Entities outside the world are never visible.
func NewVisibility(width, height, cell int) *Visibility {
	if cell <= 0 {
		cell = 32
	}
	space := resolv.NewSpace(width, height, cell, cell)
	view := resolv.NewObject(0, 0, 1, 1, tags.ResolvView)
	space.Add(view)
	return &Visibility{
		space:   space,
		view:    view,
		objects: make(map[netconfig.EntityID]*resolv.Object),
		inView:  make(map[netconfig.EntityID]struct{}),
	}
}

// Track places or moves the bounds of id. x, y is the top-left corner.
func (v *Visibility) Track(id netconfig.EntityID, x, y, w, h float64) {
	w, h = max(w, 1), max(h, 1)
	obj, ok := v.objects[id]
	if !ok {
		obj = resolv.NewObject(x, y, w, h, tags.ResolvEntity)
		obj.Data = id
		v.space.Add(obj)
		v.objects[id] = obj
		return
	}
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.Update()
}

// Untrack removes id without reporting it as left.
func (v *Visibility) Untrack(id netconfig.EntityID) {
	if obj, ok := v.objects[id]; ok {
		v.space.Remove(obj)
		delete(v.objects, id)
	}
	delete(v.inView, id)
}

// InView reports whether id was inside the view at the last Update.
func (v *Visibility) InView(id netconfig.EntityID) bool {
	_, ok := v.inView[id]
	return ok
}

// Update moves the view and returns the ids that entered and left it since
// the previous call, each in ascending order.
func (v *Visibility) Update(x, y, w, h float64) (entered, left []netconfig.EntityID) {
	v.view.X, v.view.Y, v.view.W, v.view.H = x, y, max(w, 1), max(h, 1)
	v.view.Update()

	now := make(map[netconfig.EntityID]struct{}, len(v.inView))
	if check := v.view.Check(0, 0, tags.ResolvEntity); check != nil {
		for _, obj := range check.Objects {
			id, ok := obj.Data.(netconfig.EntityID)
			if !ok || !overlaps(v.view, obj) {
				continue
			}
			now[id] = struct{}{}
		}
	}

	for id := range now {
		if _, ok := v.inView[id]; !ok {
			entered = append(entered, id)
		}
	}
	for id := range v.inView {
		if _, ok := now[id]; !ok {
			left = append(left, id)
		}
	}
	v.inView = now
	slices.Sort(entered)
	slices.Sort(left)
	return entered, left
}

// Cells share objects that are merely nearby, so confirm a real overlap.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
