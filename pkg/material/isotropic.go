package material

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
	"github.com/okvist/pathtrace/pkg/pdf"
)

// Isotropic is a material used by fog type hittables, scattering rays
// uniformly in all directions
type Isotropic struct {
	Tex Texture
}

// NewIsotropic creates an isotropic material with the given texture
func NewIsotropic(tex Texture) Isotropic {
	return Isotropic{Tex: tex}
}

// Scatter returns a uniform sphere distribution for the bounce
func (i Isotropic) Scatter(rayIn core.Ray, rec *core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: i.Tex.Color(rec.UV),
		PDF:         pdf.Sphere{},
	}, true
}

// ScatteringPDF returns the uniform density 1/(4π)
func (i Isotropic) ScatteringPDF(rec *core.HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
