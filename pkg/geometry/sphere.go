package geometry

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// Sphere is a sphere shaped hittable object
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
	bBox     core.AABB
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	rVec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
		bBox:     core.NewAABBFromPoints(center.Subtract(rVec), center.Add(rVec)),
	}
}

// Hit solves the ray/sphere quadratic and returns the nearest root
// within the interval, falling back to the farther root
func (s *Sphere) Hit(r core.Ray, rayLength core.Interval, rnd *rand.Rand) (*core.HitRecord, bool) {
	oc := r.Origin.Subtract(s.Center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !rayLength.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !rayLength.Contains(root) {
			return nil, false
		}
	}

	hitPoint := r.At(root)
	normal := hitPoint.Subtract(s.Center).Divide(s.Radius)
	uv := sphereUV(normal)

	frontFace := r.Direction.Dot(normal) < 0
	if !frontFace {
		normal = normal.Negate()
	}
	return core.NewHitRecord(hitPoint, normal, s.Material, root, uv, frontFace), true
}

// BoundingBox returns the bounding box of the sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bBox
}

// PDFValue returns the solid-angle density of the cone subtended by the
// sphere as seen from the origin, or 0 when the direction misses
func (s *Sphere) PDFValue(origin, direction core.Vec3, rnd *rand.Rand) float64 {
	ray := core.NewRay(origin, direction)
	if _, ok := s.Hit(ray, core.RayInterval, rnd); !ok {
		return 0
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/s.Center.Subtract(origin).LengthSquared())
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// RandomDirection generates a random direction from the origin toward the sphere
func (s *Sphere) RandomDirection(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	direction := s.Center.Subtract(origin)
	uvw := core.NewONB(direction)
	return uvw.Local(core.RandomToSphere(rnd, s.Radius, direction.LengthSquared()))
}

// IsLight reports whether the sphere's material emits light
func (s *Sphere) IsLight() bool {
	return core.EmitsLight(s.Material)
}

// Children returns nil as a sphere is a primitive
func (s *Sphere) Children() []core.Hittable {
	return nil
}

func sphereUV(pointOnSphere core.Vec3) core.UV {
	theta := math.Acos(-pointOnSphere.Y)
	phi := math.Atan2(-pointOnSphere.Z, pointOnSphere.X) + math.Pi
	return core.NewUV(phi/(2*math.Pi), theta/math.Pi)
}
