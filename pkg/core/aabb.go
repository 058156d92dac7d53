package core

import "math"

// padDelta is the amount added to near-zero bounding box axes so that
// flat geometry still produces a valid slab test
const padDelta = 0.0001

// AABB is an axis-aligned bounding box
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB returns a bounding box that contains nothing
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}
}

// NewAABBFromPoints creates a bounding box exactly encapsulating the given points
func NewAABBFromPoints(points ...Vec3) AABB {
	b := EmptyAABB()
	for _, p := range points {
		b.X = Interval{Min: math.Min(b.X.Min, p.X), Max: math.Max(b.X.Max, p.X)}
		b.Y = Interval{Min: math.Min(b.Y.Min, p.Y), Max: math.Max(b.Y.Max, p.Y)}
		b.Z = Interval{Min: math.Min(b.Z.Min, p.Z), Max: math.Max(b.Z.Max, p.Z)}
	}
	return b
}

// Combine returns a bounding box that is the union of the two given
func (b AABB) Combine(other AABB) AABB {
	return AABB{
		X: CombineIntervals(b.X, other.X),
		Y: CombineIntervals(b.Y, other.Y),
		Z: CombineIntervals(b.Z, other.Z),
	}
}

// CombineAABBs returns a bounding box encapsulating all the given boxes
func CombineAABBs(boxes ...AABB) AABB {
	combined := EmptyAABB()
	for _, b := range boxes {
		combined = combined.Combine(b)
	}
	return combined
}

// PadIfNeeded returns a bounding box of the same size, except that
// axes with near-zero extent are padded by a small fixed delta
func (b AABB) PadIfNeeded() AABB {
	padded := b
	if padded.X.Size() < padDelta {
		padded.X = padded.X.Expand(padDelta)
	}
	if padded.Y.Size() < padDelta {
		padded.Y = padded.Y.Expand(padDelta)
	}
	if padded.Z.Size() < padDelta {
		padded.Z = padded.Z.Expand(padDelta)
	}
	return padded
}

// Hit tests if the ray intersects the bounding box using the slab method
func (b AABB) Hit(r Ray) bool {
	t1 := (b.X.Min - r.Origin.X) * r.DirectionInv.X
	t2 := (b.X.Max - r.Origin.X) * r.DirectionInv.X

	tMin := math.Min(t1, t2)
	tMax := math.Max(t1, t2)

	t1 = (b.Y.Min - r.Origin.Y) * r.DirectionInv.Y
	t2 = (b.Y.Max - r.Origin.Y) * r.DirectionInv.Y

	tMin = math.Max(tMin, math.Min(t1, t2))
	tMax = math.Min(tMax, math.Max(t1, t2))

	t1 = (b.Z.Min - r.Origin.Z) * r.DirectionInv.Z
	t2 = (b.Z.Max - r.Origin.Z) * r.DirectionInv.Z

	tMin = math.Max(tMin, math.Min(t1, t2))
	tMax = math.Min(tMax, math.Max(t1, t2))

	return tMax > math.Max(tMin, 0)
}

// Center returns the center point of the bounding box
func (b AABB) Center() Vec3 {
	return Vec3{
		X: (b.X.Min + b.X.Max) * 0.5,
		Y: (b.Y.Min + b.Y.Max) * 0.5,
		Z: (b.Z.Min + b.Z.Max) * 0.5,
	}
}

// Add returns a bounding box of the same size displaced by the given offset
func (b AABB) Add(offset Vec3) AABB {
	return AABB{
		X: b.X.Add(offset.X),
		Y: b.Y.Add(offset.Y),
		Z: b.Z.Add(offset.Z),
	}
}
