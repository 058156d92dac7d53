package geometry

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// Translation moves a wrapped hittable by a fixed offset. Instead of
// moving the object, incoming rays are shifted the opposite way and the
// hit point is shifted back.
type Translation struct {
	object core.Hittable
	offset core.Vec3
	bBox   core.AABB
}

// NewTranslation creates a translated instance of the given hittable
func NewTranslation(object core.Hittable, offset core.Vec3) *Translation {
	return &Translation{
		object: object,
		offset: offset,
		bBox:   object.BoundingBox().Add(offset),
	}
}

// Hit moves the ray into object space, then offsets the hit point back
// into world space
func (t *Translation) Hit(r core.Ray, rayLength core.Interval, rnd *rand.Rand) (*core.HitRecord, bool) {
	offsetRay := core.NewRayAt(r.Origin.Subtract(t.offset), r.Direction, r.Time)

	rec, ok := t.object.Hit(offsetRay, rayLength, rnd)
	if !ok {
		return nil, false
	}
	rec.HitPoint = rec.HitPoint.Add(t.offset)
	return rec, true
}

// BoundingBox returns the translated bounding box
func (t *Translation) BoundingBox() core.AABB {
	return t.bBox
}

// PDFValue delegates to the wrapped object with the origin moved into
// object space
func (t *Translation) PDFValue(origin, direction core.Vec3, rnd *rand.Rand) float64 {
	return t.object.PDFValue(origin.Subtract(t.offset), direction, rnd)
}

// RandomDirection delegates to the wrapped object with the origin moved
// into object space
func (t *Translation) RandomDirection(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	return t.object.RandomDirection(origin.Subtract(t.offset), rnd)
}

// IsLight delegates to the wrapped object
func (t *Translation) IsLight() bool {
	return t.object.IsLight()
}

// Children returns nil so that a transformed light is sampled through
// the transform and not through its untransformed child
func (t *Translation) Children() []core.Hittable {
	return nil
}

// RotationY rotates a wrapped hittable around the world Y axis. As with
// Translation the rays are rotated instead of the object.
type RotationY struct {
	object   core.Hittable
	sinTheta float64
	cosTheta float64
	bBox     core.AABB
}

// NewRotationY creates an instance of the given hittable rotated the
// given angle in degrees around the Y axis
func NewRotationY(object core.Hittable, angleDegrees float64) *RotationY {
	radians := angleDegrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	b := object.BoundingBox()
	bBox := core.EmptyAABB()
	for _, x := range []float64{b.X.Min, b.X.Max} {
		for _, y := range []float64{b.Y.Min, b.Y.Max} {
			for _, z := range []float64{b.Z.Min, b.Z.Max} {
				rotated := core.NewVec3(
					cosTheta*x+sinTheta*z,
					y,
					-sinTheta*x+cosTheta*z,
				)
				bBox = bBox.Combine(core.NewAABBFromPoints(rotated))
			}
		}
	}

	return &RotationY{
		object:   object,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bBox:     bBox,
	}
}

func (ry *RotationY) toObjectSpace(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		ry.cosTheta*v.X-ry.sinTheta*v.Z,
		v.Y,
		ry.sinTheta*v.X+ry.cosTheta*v.Z,
	)
}

func (ry *RotationY) toWorldSpace(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		ry.cosTheta*v.X+ry.sinTheta*v.Z,
		v.Y,
		-ry.sinTheta*v.X+ry.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, then rotates the hit point and
// normal back into world space
func (ry *RotationY) Hit(r core.Ray, rayLength core.Interval, rnd *rand.Rand) (*core.HitRecord, bool) {
	rotatedRay := core.NewRayAt(ry.toObjectSpace(r.Origin), ry.toObjectSpace(r.Direction), r.Time)

	rec, ok := ry.object.Hit(rotatedRay, rayLength, rnd)
	if !ok {
		return nil, false
	}
	rec.HitPoint = ry.toWorldSpace(rec.HitPoint)
	rec.Normal = ry.toWorldSpace(rec.Normal)
	return rec, true
}

// BoundingBox returns the bounding box of the rotated object
func (ry *RotationY) BoundingBox() core.AABB {
	return ry.bBox
}

// PDFValue delegates to the wrapped object in object space
func (ry *RotationY) PDFValue(origin, direction core.Vec3, rnd *rand.Rand) float64 {
	return ry.object.PDFValue(ry.toObjectSpace(origin), ry.toObjectSpace(direction), rnd)
}

// RandomDirection delegates to the wrapped object and rotates the
// result back into world space
func (ry *RotationY) RandomDirection(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	return ry.toWorldSpace(ry.object.RandomDirection(ry.toObjectSpace(origin), rnd))
}

// IsLight delegates to the wrapped object
func (ry *RotationY) IsLight() bool {
	return ry.object.IsLight()
}

// Children returns nil so that a transformed light is sampled through
// the transform and not through its untransformed child
func (ry *RotationY) Children() []core.Hittable {
	return nil
}

// MotionBlur gives a wrapped hittable linear motion along a direction
// over the duration of a frame. Each ray carries a time in [0,1) and
// sees the object displaced by blurDirection scaled by that time.
type MotionBlur struct {
	object        core.Hittable
	blurDirection core.Vec3
	bBox          core.AABB
}

// NewMotionBlur creates a motion blurred instance of the given hittable
func NewMotionBlur(object core.Hittable, blurDirection core.Vec3) *MotionBlur {
	b := object.BoundingBox()
	return &MotionBlur{
		object:        object,
		blurDirection: blurDirection,
		bBox:          b.Combine(b.Add(blurDirection)),
	}
}

// Hit offsets the ray against the object's displacement at the ray's
// time, then shifts the hit point back
func (mb *MotionBlur) Hit(r core.Ray, rayLength core.Interval, rnd *rand.Rand) (*core.HitRecord, bool) {
	offset := mb.blurDirection.Multiply(r.Time)
	movedRay := core.NewRayAt(r.Origin.Subtract(offset), r.Direction, r.Time)

	rec, ok := mb.object.Hit(movedRay, rayLength, rnd)
	if !ok {
		return nil, false
	}
	rec.HitPoint = rec.HitPoint.Add(offset)
	return rec, true
}

// BoundingBox returns the bounding box covering the whole motion
func (mb *MotionBlur) BoundingBox() core.AABB {
	return mb.bBox
}

// PDFValue delegates to the wrapped object
func (mb *MotionBlur) PDFValue(origin, direction core.Vec3, rnd *rand.Rand) float64 {
	return mb.object.PDFValue(origin, direction, rnd)
}

// RandomDirection delegates to the wrapped object
func (mb *MotionBlur) RandomDirection(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	return mb.object.RandomDirection(origin, rnd)
}

// IsLight delegates to the wrapped object
func (mb *MotionBlur) IsLight() bool {
	return mb.object.IsLight()
}

// Children returns nil so that a transformed light is sampled through
// the transform and not through its untransformed child
func (mb *MotionBlur) Children() []core.Hittable {
	return nil
}
