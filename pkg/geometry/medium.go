package geometry

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// ConstantMedium is a fog type hittable object where rays not only
// scatter at the surface of the boundary, but at random points inside
// it. The scatter probability rises with the density and the distance
// the ray travels through the medium.
type ConstantMedium struct {
	boundary      core.Hittable
	negInvDensity float64
	phaseFunction core.Material
}

// NewConstantMedium creates a fog enclosed by the given boundary
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1 / density,
		phaseFunction: phaseFunction,
	}
}

// Hit finds where the ray enters and exits the boundary, then samples
// an exponentially distributed scattering distance. The ray passes
// through when the sampled distance exceeds the distance inside.
func (cm *ConstantMedium) Hit(r core.Ray, rayLength core.Interval, rnd *rand.Rand) (*core.HitRecord, bool) {
	rec1, ok := cm.boundary.Hit(r, core.UniverseInterval, rnd)
	if !ok {
		return nil, false
	}
	rec2, ok := cm.boundary.Hit(r, core.NewInterval(rec1.RayLength+0.0001, math.Inf(1)), rnd)
	if !ok {
		return nil, false
	}

	t1 := math.Max(rec1.RayLength, rayLength.Min)
	t2 := math.Min(rec2.RayLength, rayLength.Max)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayVelocity := r.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayVelocity
	hitDistance := cm.negInvDensity * math.Log(rnd.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayVelocity
	return &core.HitRecord{
		HitPoint:  r.At(t),
		Normal:    core.RandomUnitVector(rnd),
		Material:  cm.phaseFunction,
		RayLength: t,
		FrontFace: false,
	}, true
}

// BoundingBox returns the bounding box of the boundary
func (cm *ConstantMedium) BoundingBox() core.AABB {
	return cm.boundary.BoundingBox()
}

// PDFValue returns 0; a medium is never sampled as a light
func (cm *ConstantMedium) PDFValue(origin, direction core.Vec3, rnd *rand.Rand) float64 {
	return 0
}

// RandomDirection returns the zero vector; a medium is never sampled as a light
func (cm *ConstantMedium) RandomDirection(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	return core.Vec3{}
}

// IsLight returns false
func (cm *ConstantMedium) IsLight() bool {
	return false
}

// Children returns nil; the boundary only shapes the fog
func (cm *ConstantMedium) Children() []core.Hittable {
	return nil
}
