package core

import "pgregory.net/rand"

// UV is a texture map coordinate
type UV struct {
	U, V float64
}

// NewUV creates a new texture coordinate
func NewUV(u, v float64) UV {
	return UV{U: u, V: v}
}

// Hittable is the interface for all objects in the scene that can be
// intersected by rays, including containers of other hittables
type Hittable interface {
	// Hit checks if the ray hits the hittable within the given distance interval
	Hit(r Ray, rayLength Interval, rnd *rand.Rand) (*HitRecord, bool)

	// BoundingBox returns a box that conservatively contains all
	// geometry of the hittable
	BoundingBox() AABB

	// PDFValue returns the solid-angle probability density of sampling the
	// given direction from the given origin toward the hittable.
	// Only meaningful for hittables used as lights; others return 0.
	PDFValue(origin, direction Vec3, rnd *rand.Rand) float64

	// RandomDirection generates a random direction from the given origin
	// toward the hittable. Only meaningful for hittables used as lights.
	RandomDirection(origin Vec3, rnd *rand.Rand) Vec3

	// IsLight reports whether the hittable has a light-emitting material
	IsLight() bool

	// Children returns the contained hittables for container types,
	// or nil for primitives
	Children() []Hittable
}

// Material describes how a ray behaves when hitting an object
type Material interface {
	// Scatter calculates the scattering of the ray at a hit.
	// Returns false when the ray is absorbed.
	Scatter(rayIn Ray, rec *HitRecord, rnd *rand.Rand) (ScatterRecord, bool)

	// ScatteringPDF returns the material's own scattering density for
	// the given outgoing ray, used to weight importance-sampled bounces
	ScatteringPDF(rec *HitRecord, scattered Ray) float64
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	// Emitted returns the color emitted at the hit, given the total
	// ray path length travelled so far
	Emitted(rec *HitRecord, totalRayLength float64) AttenuatedColor
}

// NormalMapper is implemented by materials that perturb the geometric
// normal, typically through a tangent-space normal texture
type NormalMapper interface {
	PerturbNormal(normal Vec3, uv UV) Vec3
}

// EmitsLight reports whether a material emits light
func EmitsLight(m Material) bool {
	if l, ok := m.(interface{ IsLight() bool }); ok {
		return l.IsLight()
	}
	_, ok := m.(Emitter)
	return ok
}

// PDF is a probability density function over directions. It can both
// generate a random direction and evaluate the density of an arbitrary one.
type PDF interface {
	Value(direction Vec3, rnd *rand.Rand) float64
	Generate(rnd *rand.Rand) Vec3
}

// ScatterRecord describes how a ray continues after hitting a material
type ScatterRecord struct {
	// Attenuation is the color filter applied to light carried back
	// along the scattered ray
	Attenuation Vec3
	// PDF is the distribution to importance-sample the bounce direction
	// from. Nil for purely specular materials.
	PDF PDF
	// SpecularRay is the deterministic bounce ray, used when PDF is nil
	SpecularRay Ray
}

// HitRecord collects all interesting properties from a ray hitting a hittable
type HitRecord struct {
	// HitPoint for the ray on the hittable
	HitPoint Vec3
	// Normal of the hittable at the hit point, possibly perturbed
	// by the material's normal map
	Normal Vec3
	// Material of the hittable that was hit
	Material Material
	// RayLength is the parametric distance from ray origin to hit point
	RayLength float64
	// UV texture coordinate at the hit point
	UV UV
	// FrontFace reports whether the ray hit from outside the hittable
	FrontFace bool
}

// NewHitRecord creates a hit record, applying the material's normal
// mapping when present
func NewHitRecord(hitPoint, normal Vec3, material Material, rayLength float64, uv UV, frontFace bool) *HitRecord {
	if nm, ok := material.(NormalMapper); ok {
		normal = nm.PerturbNormal(normal, uv)
	}
	return &HitRecord{
		HitPoint:  hitPoint,
		Normal:    normal,
		Material:  material,
		RayLength: rayLength,
		UV:        uv,
		FrontFace: frontFace,
	}
}

// AttenuatedColor is a radiance value paired with distance-based
// attenuation information. The attenuation law is applied lazily, only
// when the color is consumed, so recursive accumulation along a path
// keeps full precision.
type AttenuatedColor struct {
	// Color value before attenuation
	Color Vec3
	// AttenuationFactor scales the distance falloff; 0 disables attenuation
	AttenuationFactor float64
	// AccumulatedRayLength is the distance the light has travelled
	AccumulatedRayLength float64
}

// Attenuated returns the color with the attenuation law applied
func (a AttenuatedColor) Attenuated() Vec3 {
	if a.AttenuationFactor == 0 {
		return a.Color
	}
	return a.Color.Multiply(1 / (1 + a.AttenuationFactor*a.AccumulatedRayLength))
}

// Logger is the interface for renderer progress logging
type Logger interface {
	Printf(format string, args ...interface{})
}
