// Package pdf provides probability density functions over directions,
// used for importance sampling of scattered rays.
package pdf

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// Cosine is a density proportional to the cosine of the angle to a
// given normal, matching diffuse reflection
type Cosine struct {
	uvw core.ONB
}

// NewCosine creates a cosine density around the given direction
func NewCosine(direction core.Vec3) Cosine {
	return Cosine{uvw: core.NewONB(direction)}
}

// Value returns the density for the given direction
func (c Cosine) Value(direction core.Vec3, rnd *rand.Rand) float64 {
	cosineTheta := direction.Normalize().Dot(c.uvw.W)
	return math.Max(0, cosineTheta/math.Pi)
}

// Generate returns a cosine distributed direction around the normal
func (c Cosine) Generate(rnd *rand.Rand) core.Vec3 {
	return c.uvw.Local(core.RandomCosineDirection(rnd))
}

// Sphere is a uniform density over the full sphere of directions
type Sphere struct{}

// Value returns the constant density 1/(4π)
func (Sphere) Value(direction core.Vec3, rnd *rand.Rand) float64 {
	return 1 / (4 * math.Pi)
}

// Generate returns a uniformly random unit direction
func (Sphere) Generate(rnd *rand.Rand) core.Vec3 {
	return core.RandomUnitVector(rnd)
}

// Hittable is the density of directions from an origin toward a
// hittable object, typically the scene's lights
type Hittable struct {
	objects core.Hittable
	origin  core.Vec3
}

// NewHittable creates a density toward the given objects as seen from
// the origin
func NewHittable(objects core.Hittable, origin core.Vec3) Hittable {
	return Hittable{objects: objects, origin: origin}
}

// Value returns the density for the given direction
func (h Hittable) Value(direction core.Vec3, rnd *rand.Rand) float64 {
	return h.objects.PDFValue(h.origin, direction, rnd)
}

// Generate returns a random direction toward the objects
func (h Hittable) Generate(rnd *rand.Rand) core.Vec3 {
	return h.objects.RandomDirection(h.origin, rnd)
}

// MixValue returns the density of an even mixture of two densities
func MixValue(p0, p1 core.PDF, direction core.Vec3, rnd *rand.Rand) float64 {
	return 0.5*p0.Value(direction, rnd) + 0.5*p1.Value(direction, rnd)
}

// MixGenerate draws a direction from one of the two densities with
// equal probability
func MixGenerate(p0, p1 core.PDF, rnd *rand.Rand) core.Vec3 {
	if rnd.Float64() < 0.5 {
		return p0.Generate(rnd)
	}
	return p1.Generate(rnd)
}
