package geometry

import (
	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// List is a container for other hittable objects. It intersects rays
// by linear scan with progressive interval narrowing, and when used as
// a light container it samples its children uniformly.
type List struct {
	Items []core.Hittable
	bBox  core.AABB
}

// NewList creates a new list containing the given hittables
func NewList(items ...core.Hittable) *List {
	l := &List{bBox: core.EmptyAABB()}
	for _, item := range items {
		l.Add(item)
	}
	return l
}

// Add appends a hittable to the list and grows the bounding box
func (l *List) Add(h core.Hittable) {
	l.bBox = l.bBox.Combine(h.BoundingBox())
	l.Items = append(l.Items, h)
}

// Hit scans all items, narrowing the accepted interval to the closest
// hit found so far
func (l *List) Hit(r core.Ray, rayLength core.Interval, rnd *rand.Rand) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	interval := rayLength

	for _, item := range l.Items {
		if rec, ok := item.Hit(r, interval, rnd); ok {
			interval = core.NewInterval(rayLength.Min, rec.RayLength)
			closest = rec
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the combined bounding box of all items
func (l *List) BoundingBox() core.AABB {
	return l.bBox
}

// PDFValue returns the mean of all items' densities for the direction
func (l *List) PDFValue(origin, direction core.Vec3, rnd *rand.Rand) float64 {
	if len(l.Items) == 0 {
		return 0
	}
	sum := 0.
	for _, item := range l.Items {
		sum += item.PDFValue(origin, direction, rnd)
	}
	return sum / float64(len(l.Items))
}

// RandomDirection delegates to a uniformly random item
func (l *List) RandomDirection(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	idx := rnd.Intn(len(l.Items))
	return l.Items[idx].RandomDirection(origin, rnd)
}

// IsLight returns false; the list itself emits nothing
func (l *List) IsLight() bool {
	return false
}

// Children returns the contained hittables
func (l *List) Children() []core.Hittable {
	return l.Items
}
