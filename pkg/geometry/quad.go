package geometry

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// Quad is a rectangular flat hittable object defined by a corner point
// and two edge vectors
type Quad struct {
	Q        core.Vec3
	U        core.Vec3
	V        core.Vec3
	Material core.Material

	normal core.Vec3
	d      float64
	w      core.Vec3
	area   float64
	bBox   core.AABB
}

// NewQuad creates a new quad
func NewQuad(q, u, v core.Vec3, material core.Material) *Quad {
	bBox := core.CombineAABBs(
		core.NewAABBFromPoints(q, q.Add(u)),
		core.NewAABBFromPoints(q, q.Add(v)),
		core.NewAABBFromPoints(q, q.Add(u).Add(v)),
	).PadIfNeeded()

	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Q:        q,
		U:        u,
		V:        v,
		Material: material,
		normal:   normal,
		d:        normal.Dot(q),
		w:        n.Divide(n.Dot(n)),
		area:     n.Length(),
		bBox:     bBox,
	}
}

// NewBox creates the six quads composing an axis-aligned box spanning
// the two given opposite corners
func NewBox(a, b core.Vec3, material core.Material) []core.Hittable {
	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	return []core.Hittable{
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, material),
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, material),
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, material),
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, material),
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), material),
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, material),
	}
}

// Hit intersects the ray with the quad's plane and then tests the hit
// point against the quad's local parameterization
func (q *Quad) Hit(r core.Ray, rayLength core.Interval, rnd *rand.Rand) (*core.HitRecord, bool) {
	denominator := q.normal.Dot(r.Direction)

	// No hit if the ray is parallel to the plane
	if math.Abs(denominator) < core.AlmostZero {
		return nil, false
	}

	t := (q.d - q.normal.Dot(r.Origin)) / denominator
	if !rayLength.Contains(t) {
		return nil, false
	}

	hitPoint := r.At(t)
	planarHitPoint := hitPoint.Subtract(q.Q)
	alpha := q.w.Dot(planarHitPoint.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planarHitPoint))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	normal := q.normal
	frontFace := r.Direction.Dot(normal) < 0
	if !frontFace {
		normal = normal.Negate()
	}
	return core.NewHitRecord(hitPoint, normal, q.Material, t, core.NewUV(alpha, beta), frontFace), true
}

// BoundingBox returns the bounding box of the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bBox
}

// PDFValue returns the density of sampling the given direction toward
// the quad: squared distance over foreshortened projected area
func (q *Quad) PDFValue(origin, direction core.Vec3, rnd *rand.Rand) float64 {
	ray := core.NewRay(origin, direction)
	rec, ok := q.Hit(ray, core.RayInterval, rnd)
	if !ok {
		return 0
	}

	distanceSquared := rec.RayLength * rec.RayLength * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	return distanceSquared / (cosine * q.area)
}

// RandomDirection generates a direction from the origin toward a
// uniformly random point on the quad
func (q *Quad) RandomDirection(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	p := q.Q.Add(q.U.Multiply(rnd.Float64())).Add(q.V.Multiply(rnd.Float64()))
	return p.Subtract(origin)
}

// IsLight reports whether the quad's material emits light
func (q *Quad) IsLight() bool {
	return core.EmitsLight(q.Material)
}

// Children returns nil as a quad is a primitive
func (q *Quad) Children() []core.Hittable {
	return nil
}
