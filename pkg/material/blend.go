package material

import (
	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
)

// Blend combines two materials. Each scattered ray is delegated to the
// first material with probability Ratio and to the second otherwise,
// so repeated renders of the same scene converge to the blend while
// individual samples differ.
type Blend struct {
	First  core.Material
	Second core.Material
	Ratio  float64
}

// NewBlend creates a blended material. Ratio is the weight of the
// first material and is clamped to [0,1].
func NewBlend(first, second core.Material, ratio float64) Blend {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return Blend{First: first, Second: second, Ratio: ratio}
}

// Scatter delegates to one of the two materials at random
func (b Blend) Scatter(rayIn core.Ray, rec *core.HitRecord, rnd *rand.Rand) (core.ScatterRecord, bool) {
	if rnd.Float64() < b.Ratio {
		return b.First.Scatter(rayIn, rec, rnd)
	}
	return b.Second.Scatter(rayIn, rec, rnd)
}

// ScatteringPDF returns the weighted mix of both materials' densities
func (b Blend) ScatteringPDF(rec *core.HitRecord, scattered core.Ray) float64 {
	return b.Ratio*b.First.ScatteringPDF(rec, scattered) +
		(1-b.Ratio)*b.Second.ScatteringPDF(rec, scattered)
}

// Emitted returns the weighted mix of both materials' emission. The
// distance attenuation of each part is applied before mixing.
func (b Blend) Emitted(rec *core.HitRecord, totalRayLength float64) core.AttenuatedColor {
	color := core.Vec3{}
	if e, ok := b.First.(core.Emitter); ok {
		color = color.Add(e.Emitted(rec, totalRayLength).Attenuated().Multiply(b.Ratio))
	}
	if e, ok := b.Second.(core.Emitter); ok {
		color = color.Add(e.Emitted(rec, totalRayLength).Attenuated().Multiply(1 - b.Ratio))
	}
	return core.AttenuatedColor{Color: color}
}

// IsLight reports whether either material emits light
func (b Blend) IsLight() bool {
	return core.EmitsLight(b.First) || core.EmitsLight(b.Second)
}
