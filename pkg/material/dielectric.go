package material

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// Dielectric is a glass type material that both reflects and refracts
// rays depending on the angle of incidence
type Dielectric struct {
	Tex               Texture
	IndexOfRefraction float64
}

// NewDielectric creates a dielectric material with the given texture
// and refraction index
func NewDielectric(tex Texture, indexOfRefraction float64) Dielectric {
	return Dielectric{Tex: tex, IndexOfRefraction: indexOfRefraction}
}

// Scatter refracts the ray when it can, otherwise reflects it. At
// shallow angles reflection is chosen probabilistically following
// Schlick's approximation.
func (d Dielectric) Scatter(rayIn core.Ray, rec *core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	refractionRatio := d.IndexOfRefraction
	if rec.FrontFace {
		refractionRatio = 1 / d.IndexOfRefraction
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, refractionRatio) > rnd.Float64() {
		direction = unitDirection.Reflect(rec.Normal)
	} else {
		direction = unitDirection.Refract(rec.Normal, refractionRatio)
	}

	return core.ScatterRecord{
		Attenuation: d.Tex.Color(rec.UV),
		SpecularRay: core.NewRayAt(rec.HitPoint, direction, rayIn.Time),
	}, true
}

// ScatteringPDF returns 0 as the refraction is not importance sampled
func (d Dielectric) ScatteringPDF(rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// reflectance is Schlick's approximation of the Fresnel factor
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
