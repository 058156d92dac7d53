package renderer

import (
	"math"

	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/core"
	"github.com/okvist/pathtrace/pkg/pdf"
)

// maxColorValue is the ceiling for a single sample's color channels,
// suppressing fireflies from low-probability light paths
const maxColorValue = 3

// Shader calculates the color contribution of a ray hit
type Shader interface {
	// Shade returns the color at the hit. Depth counts the bounces
	// taken so far and accumulatedRayLength the distance travelled.
	Shade(r *Renderer, rec *core.HitRecord, rayIn core.Ray, depth int, accumulatedRayLength float64, rnd *rand.Rand) core.AttenuatedColor

	// NeedsLight reports whether the shader importance-samples toward
	// lights and thus requires the scene to contain at least one
	NeedsLight() bool
}

// PathTracing is the full Monte Carlo shader. Scattered bounces are
// importance sampled from an even mixture of the material's own
// distribution and a distribution toward the scene's lights.
type PathTracing struct {
	MaxDepth int
}

// NewPathTracing creates a path tracing shader with the given maximum
// number of bounces
func NewPathTracing(maxDepth int) PathTracing {
	return PathTracing{MaxDepth: maxDepth}
}

// Shade recursively evaluates the light transport at the hit
func (pt PathTracing) Shade(r *Renderer, rec *core.HitRecord, rayIn core.Ray, depth int, accumulatedRayLength float64, rnd *rand.Rand) core.AttenuatedColor {
	if depth >= pt.MaxDepth {
		return core.AttenuatedColor{}
	}
	totalRayLength := accumulatedRayLength + rec.RayLength

	var emitted core.AttenuatedColor
	if e, ok := rec.Material.(core.Emitter); ok {
		emitted = e.Emitted(rec, totalRayLength)
	}

	scatter, ok := rec.Material.Scatter(rayIn, rec, rnd)
	if !ok {
		return emitted
	}

	if scatter.PDF == nil {
		recursed := r.rayColor(scatter.SpecularRay, depth+1, totalRayLength, rnd)
		return core.AttenuatedColor{
			Color:                scatter.Attenuation.MultiplyVec(recursed.Color),
			AttenuationFactor:    recursed.AttenuationFactor,
			AccumulatedRayLength: recursed.AccumulatedRayLength,
		}
	}

	lightPDF := pdf.NewHittable(r.lights, rec.HitPoint)
	direction := pdf.MixGenerate(scatter.PDF, lightPDF, rnd)
	scattered := core.NewRayAt(rec.HitPoint, direction, rayIn.Time)

	pdfValue := pdf.MixValue(scatter.PDF, lightPDF, direction, rnd)
	scatteringPDF := rec.Material.ScatteringPDF(rec, scattered)

	recursed := r.rayColor(scattered, depth+1, totalRayLength, rnd)
	scatterColor := scatter.Attenuation.
		MultiplyVec(recursed.Attenuated()).
		Multiply(scatteringPDF / pdfValue)

	return core.AttenuatedColor{
		Color: emitted.Attenuated().Add(filterInvalidColorValues(scatterColor)),
	}
}

// NeedsLight returns true
func (pt PathTracing) NeedsLight() bool {
	return true
}

// filterInvalidColorValues sanitizes NaN channels to zero and clamps
// extreme values, so that a single degenerate sample cannot corrupt
// the accumulated image
func filterInvalidColorValues(c core.Vec3) core.Vec3 {
	return core.NewVec3(
		filterColorValue(c.X),
		filterColorValue(c.Y),
		filterColorValue(c.Z),
	)
}

func filterColorValue(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return math.Min(value, maxColorValue)
}

// Albedo is a shader returning the base color of the hit material,
// used as an auxiliary channel for denoising post processors
type Albedo struct{}

// Shade returns the material's attenuation color, or its emission for
// non-scattering materials
func (Albedo) Shade(r *Renderer, rec *core.HitRecord, rayIn core.Ray, depth int, accumulatedRayLength float64, rnd *rand.Rand) core.AttenuatedColor {
	scatter, ok := rec.Material.Scatter(rayIn, rec, rnd)
	if !ok {
		if e, isEmitter := rec.Material.(core.Emitter); isEmitter {
			return core.AttenuatedColor{Color: e.Emitted(rec, accumulatedRayLength+rec.RayLength).Attenuated()}
		}
		return core.AttenuatedColor{}
	}
	return core.AttenuatedColor{Color: scatter.Attenuation}
}

// NeedsLight returns false
func (Albedo) NeedsLight() bool {
	return false
}

// Normal is a shader returning the surface normal of the hit, used as
// an auxiliary channel for denoising post processors
type Normal struct{}

// Shade returns the unit normal at the hit
func (Normal) Shade(r *Renderer, rec *core.HitRecord, rayIn core.Ray, depth int, accumulatedRayLength float64, rnd *rand.Rand) core.AttenuatedColor {
	return core.AttenuatedColor{Color: rec.Normal.Normalize()}
}

// NeedsLight returns false
func (Normal) NeedsLight() bool {
	return false
}

// Simple is a cheap single-bounce shader for fast preview renders,
// lighting every surface from a fixed direction
type Simple struct{}

var simpleLightDirection = core.NewVec3(1, 1, -1).Normalize()

// Shade returns the material's base color shaded by a fixed light direction
func (Simple) Shade(r *Renderer, rec *core.HitRecord, rayIn core.Ray, depth int, accumulatedRayLength float64, rnd *rand.Rand) core.AttenuatedColor {
	scatter, ok := rec.Material.Scatter(rayIn, rec, rnd)
	if !ok {
		if e, isEmitter := rec.Material.(core.Emitter); isEmitter {
			return core.AttenuatedColor{Color: e.Emitted(rec, accumulatedRayLength+rec.RayLength).Attenuated()}
		}
		return core.AttenuatedColor{}
	}
	factor := rec.Normal.Dot(simpleLightDirection)*0.5 + 0.75
	return core.AttenuatedColor{Color: scatter.Attenuation.Multiply(factor)}
}

// NeedsLight returns false
func (Simple) NeedsLight() bool {
	return false
}
