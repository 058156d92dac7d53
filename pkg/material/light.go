package material

import (
	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// DiffuseLight is a material that emits light from its front face and
// absorbs all incoming rays
type DiffuseLight struct {
	Emit              Texture
	attenuationFactor float64
}

// NewDiffuseLight creates a light with a solid color
func NewDiffuseLight(r, g, b float64) DiffuseLight {
	return DiffuseLight{Emit: NewSolidColor(r, g, b)}
}

// NewDiffuseLightWithAttenuation creates a light whose contribution
// falls off with ray path length, reaching half strength at the given
// distance
func NewDiffuseLightWithAttenuation(tex Texture, attenuationHalfLength float64) DiffuseLight {
	dl := DiffuseLight{Emit: tex}
	if attenuationHalfLength > 0 {
		dl.attenuationFactor = 1 / attenuationHalfLength
	}
	return dl
}

// Scatter absorbs the ray
func (dl DiffuseLight) Scatter(rayIn core.Ray, rec *core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF returns 0 as the light never scatters
func (dl DiffuseLight) ScatteringPDF(rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emitted light, black for the back face
func (dl DiffuseLight) Emitted(rec *core.HitRecord, totalRayLength float64) core.AttenuatedColor {
	if !rec.FrontFace {
		return core.AttenuatedColor{}
	}
	return core.AttenuatedColor{
		Color:                dl.Emit.Color(rec.UV),
		AttenuationFactor:    dl.attenuationFactor,
		AccumulatedRayLength: totalRayLength,
	}
}

// IsLight returns true
func (dl DiffuseLight) IsLight() bool {
	return true
}
