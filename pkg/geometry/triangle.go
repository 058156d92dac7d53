package geometry

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// Triangle is a flat hittable object defined by three vertices with
// optional texture coordinates. A counter-clockwise winding is expected.
type Triangle struct {
	v0       core.Vec3
	v0v1     core.Vec3
	v0v2     core.Vec3
	uv0      core.UV
	uv1      core.UV
	uv2      core.UV
	normal   core.Vec3
	Material core.Material
	area     float64
	bBox     core.AABB
}

// NewTriangle creates a new triangle with zeroed texture coordinates
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	return NewTriangleWithTexCoords(v0, v1, v2, core.UV{}, core.UV{}, core.UV{}, material)
}

// NewTriangleWithTexCoords creates a new triangle with texture coordinates
// interpolated across the surface
func NewTriangleWithTexCoords(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.UV, material core.Material) *Triangle {
	v0v1 := v1.Subtract(v0)
	v0v2 := v2.Subtract(v0)
	n := v0v1.Cross(v0v2)

	return &Triangle{
		v0:       v0,
		v0v1:     v0v1,
		v0v2:     v0v2,
		uv0:      uv0,
		uv1:      uv1,
		uv2:      uv2,
		normal:   n.Normalize(),
		Material: material,
		area:     n.Length() / 2,
		bBox:     core.NewAABBFromPoints(v0, v1, v2).PadIfNeeded(),
	}
}

// Hit intersects the ray with the triangle using the Möller-Trumbore
// algorithm and interpolates texture coordinates barycentrically
func (tr *Triangle) Hit(r core.Ray, rayLength core.Interval, rnd *rand.Rand) (*core.HitRecord, bool) {
	pVec := r.Direction.Cross(tr.v0v2)
	det := tr.v0v1.Dot(pVec)

	// No hit if the ray is parallel to the triangle plane
	if math.Abs(det) < core.AlmostZero {
		return nil, false
	}

	invDet := 1 / det
	tVec := r.Origin.Subtract(tr.v0)
	qVec := tVec.Cross(tr.v0v1)

	u := tVec.Dot(pVec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}
	v := r.Direction.Dot(qVec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := tr.v0v2.Dot(qVec) * invDet
	if !rayLength.Contains(t) {
		return nil, false
	}

	w := 1 - u - v
	uv := core.NewUV(
		w*tr.uv0.U+u*tr.uv1.U+v*tr.uv2.U,
		w*tr.uv0.V+u*tr.uv1.V+v*tr.uv2.V,
	)

	normal := tr.normal
	frontFace := r.Direction.Dot(normal) < 0
	if !frontFace {
		normal = normal.Negate()
	}
	return core.NewHitRecord(r.At(t), normal, tr.Material, t, uv, frontFace), true
}

// BoundingBox returns the bounding box of the triangle
func (tr *Triangle) BoundingBox() core.AABB {
	return tr.bBox
}

// PDFValue returns the density of sampling the given direction toward
// the triangle: squared distance over foreshortened projected area
func (tr *Triangle) PDFValue(origin, direction core.Vec3, rnd *rand.Rand) float64 {
	ray := core.NewRay(origin, direction)
	rec, ok := tr.Hit(ray, core.RayInterval, rnd)
	if !ok {
		return 0
	}

	distanceSquared := rec.RayLength * rec.RayLength * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	return distanceSquared / (cosine * tr.area)
}

// RandomDirection generates a direction from the origin toward a random
// point on the triangle's spanning parallelogram
func (tr *Triangle) RandomDirection(origin core.Vec3, rnd *rand.Rand) core.Vec3 {
	p := tr.v0.Add(tr.v0v1.Multiply(rnd.Float64())).Add(tr.v0v2.Multiply(rnd.Float64()))
	return p.Subtract(origin)
}

// IsLight reports whether the triangle's material emits light
func (tr *Triangle) IsLight() bool {
	return core.EmitsLight(tr.Material)
}

// Children returns nil as a triangle is a primitive
func (tr *Triangle) Children() []core.Hittable {
	return nil
}
