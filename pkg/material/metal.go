package material

import (
	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// Metal is a reflective material. Fuzz randomizes the reflection
// direction, giving a brushed look; 0 is a perfect mirror.
type Metal struct {
	Tex       Texture
	NormalTex Texture
	Fuzz      float64
}

// NewMetal creates a metal material with the given texture and fuzz
func NewMetal(tex Texture, fuzz float64) Metal {
	return Metal{Tex: tex, Fuzz: fuzz}
}

// NewMetalWithNormal creates a metal material with a tangent-space
// normal texture
func NewMetalWithNormal(tex, normalTex Texture, fuzz float64) Metal {
	return Metal{Tex: tex, NormalTex: normalTex, Fuzz: fuzz}
}

// Scatter returns a specular reflection of the incoming ray, fuzzed by
// a random offset
func (m Metal) Scatter(rayIn core.Ray, rec *core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(rec.Normal)
	direction := reflected.Add(core.RandomInUnitSphere(rnd).Multiply(m.Fuzz))

	return core.ScatterRecord{
		Attenuation: m.Tex.Color(rec.UV),
		SpecularRay: core.NewRayAt(rec.HitPoint, direction, rayIn.Time),
	}, true
}

// ScatteringPDF returns 0 as the reflection is not importance sampled
func (m Metal) ScatteringPDF(rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// PerturbNormal applies the normal texture when one is set
func (m Metal) PerturbNormal(normal core.Vec3, uv core.UV) core.Vec3 {
	if m.NormalTex == nil {
		return normal
	}
	return perturbNormal(m.NormalTex, normal, uv)
}
