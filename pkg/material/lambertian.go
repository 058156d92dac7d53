package material

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
	"github.com/okvist/pathtrace/pkg/pdf"
)

// Lambertian is a typical matte material that scatters rays with a
// cosine distribution around the surface normal
type Lambertian struct {
	Tex       Texture
	NormalTex Texture
}

// NewLambertian creates a lambertian material with the given texture
func NewLambertian(tex Texture) Lambertian {
	return Lambertian{Tex: tex}
}

// NewLambertianWithNormal creates a lambertian material with a
// tangent-space normal texture
func NewLambertianWithNormal(tex, normalTex Texture) Lambertian {
	return Lambertian{Tex: tex, NormalTex: normalTex}
}

// Scatter returns a cosine distribution around the normal for
// importance sampling of the bounce
func (l Lambertian) Scatter(rayIn core.Ray, rec *core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Tex.Color(rec.UV),
		PDF:         pdf.NewCosine(rec.Normal),
	}, true
}

// ScatteringPDF returns the cosine density of the scattered ray
func (l Lambertian) ScatteringPDF(rec *core.HitRecord, scattered core.Ray) float64 {
	cosTheta := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// PerturbNormal applies the normal texture when one is set
func (l Lambertian) PerturbNormal(normal core.Vec3, uv core.UV) core.Vec3 {
	if l.NormalTex == nil {
		return normal
	}
	return perturbNormal(l.NormalTex, normal, uv)
}
