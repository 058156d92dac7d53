package material

import (
	"math"
	"testing"

	"github.com/okvist/pathtrace/pkg/core"
)

const tolerance = 1e-9

func testHitRecord(m core.Material, frontFace bool) *core.HitRecord {
	return &core.HitRecord{
		HitPoint:  core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		Material:  m,
		RayLength: 1,
		UV:        core.NewUV(0.5, 0.5),
		FrontFace: frontFace,
	}
}

func TestLambertian_Scatter(t *testing.T) {
	matte := NewLambertian(NewSolidColor(0.8, 0.4, 0.2))
	rnd := core.NewRandom(42)
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))
	rec := testHitRecord(matte, true)

	scatter, ok := matte.Scatter(rayIn, rec, rnd)
	if !ok {
		t.Fatal("Expected lambertian to scatter")
	}
	if scatter.PDF == nil {
		t.Fatal("Expected a PDF for importance sampling")
	}
	if scatter.Attenuation != core.NewVec3(0.8, 0.4, 0.2) {
		t.Errorf("Expected albedo attenuation, got %v", scatter.Attenuation)
	}

	// Generated directions stay in the normal's hemisphere
	for i := 0; i < 100; i++ {
		direction := scatter.PDF.Generate(rnd)
		if direction.Dot(rec.Normal) < 0 {
			t.Fatalf("Expected scatter direction in the normal hemisphere, got %v", direction)
		}
	}
}

func TestLambertian_ScatteringPDF(t *testing.T) {
	matte := NewLambertian(NewSolidColor(1, 1, 1))
	rec := testHitRecord(matte, true)

	straightUp := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if density := matte.ScatteringPDF(rec, straightUp); math.Abs(density-1/math.Pi) > tolerance {
		t.Errorf("Expected density 1/π along the normal, got %v", density)
	}

	grazing := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0))
	expected := math.Cos(math.Pi/4) / math.Pi
	if density := matte.ScatteringPDF(rec, grazing); math.Abs(density-expected) > tolerance {
		t.Errorf("Expected density %v at 45 degrees, got %v", expected, density)
	}

	below := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	if density := matte.ScatteringPDF(rec, below); density != 0 {
		t.Errorf("Expected zero density below the surface, got %v", density)
	}
}

func TestMetal_Scatter(t *testing.T) {
	mirror := NewMetal(NewSolidColor(0.9, 0.9, 0.9), 0)
	rnd := core.NewRandom(42)
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	rec := testHitRecord(mirror, true)

	scatter, ok := mirror.Scatter(rayIn, rec, rnd)
	if !ok {
		t.Fatal("Expected metal to scatter")
	}
	if scatter.PDF != nil {
		t.Fatal("Expected a deterministic specular ray, not a PDF")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if scatter.SpecularRay.Direction.Normalize().Subtract(expected).Length() > tolerance {
		t.Errorf("Expected mirror reflection %v, got %v", expected, scatter.SpecularRay.Direction)
	}
}

func TestMetal_FuzzPerturbsReflection(t *testing.T) {
	fuzzy := NewMetal(NewSolidColor(1, 1, 1), 0.5)
	rnd := core.NewRandom(42)
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	rec := testHitRecord(fuzzy, true)

	mirror := core.NewVec3(1, 1, 0).Normalize()
	perturbed := false
	for i := 0; i < 10; i++ {
		scatter, _ := fuzzy.Scatter(rayIn, rec, rnd)
		offset := scatter.SpecularRay.Direction.Normalize().Subtract(mirror).Length()
		if offset > 1e-6 {
			perturbed = true
		}
		if offset > 1 {
			t.Errorf("Expected fuzz offset bounded by the fuzz radius, got %v", offset)
		}
	}
	if !perturbed {
		t.Error("Expected fuzz to perturb the reflection")
	}
}

func TestDielectric_StraightThrough(t *testing.T) {
	glass := NewDielectric(NewSolidColor(1, 1, 1), 1.5)
	rnd := core.NewRandom(42)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	rec := testHitRecord(glass, true)

	scatter, ok := glass.Scatter(rayIn, rec, rnd)
	if !ok {
		t.Fatal("Expected dielectric to scatter")
	}
	if scatter.SpecularRay.Direction.Normalize().Subtract(core.NewVec3(0, -1, 0)).Length() > tolerance {
		t.Errorf("Expected perpendicular ray to pass straight through, got %v", scatter.SpecularRay.Direction)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(NewSolidColor(1, 1, 1), 1.5)
	rnd := core.NewRandom(42)

	// Shallow exit from inside a dense medium is always reflected
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, -0.1, 0).Normalize())
	rec := testHitRecord(glass, false)

	scatter, ok := glass.Scatter(rayIn, rec, rnd)
	if !ok {
		t.Fatal("Expected dielectric to scatter")
	}
	if scatter.SpecularRay.Direction.Y <= 0 {
		t.Errorf("Expected total internal reflection upward, got %v", scatter.SpecularRay.Direction)
	}
}

func TestDiffuseLight(t *testing.T) {
	light := NewDiffuseLight(5, 4, 3)
	rnd := core.NewRandom(42)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, ok := light.Scatter(rayIn, testHitRecord(light, true), rnd); ok {
		t.Error("Expected light to absorb rays")
	}
	if !light.IsLight() {
		t.Error("Expected IsLight to be true")
	}

	front := light.Emitted(testHitRecord(light, true), 10)
	if front.Color != core.NewVec3(5, 4, 3) {
		t.Errorf("Expected front face emission, got %v", front.Color)
	}
	back := light.Emitted(testHitRecord(light, false), 10)
	if back.Color != (core.Vec3{}) {
		t.Errorf("Expected black back face, got %v", back.Color)
	}
}

func TestDiffuseLight_Attenuation(t *testing.T) {
	light := NewDiffuseLightWithAttenuation(NewSolidColor(4, 4, 4), 10)

	// At the half length the emission drops to half strength
	emitted := light.Emitted(testHitRecord(light, true), 10)
	attenuated := emitted.Attenuated()
	if attenuated.Subtract(core.NewVec3(2, 2, 2)).Length() > tolerance {
		t.Errorf("Expected half strength at the half length, got %v", attenuated)
	}

	// At zero distance there is no falloff
	if light.Emitted(testHitRecord(light, true), 0).Attenuated() != core.NewVec3(4, 4, 4) {
		t.Error("Expected full strength at zero distance")
	}
}

func TestIsotropic(t *testing.T) {
	fog := NewIsotropic(NewSolidColor(0.5, 0.5, 0.5))
	rnd := core.NewRandom(42)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	rec := testHitRecord(fog, false)

	scatter, ok := fog.Scatter(rayIn, rec, rnd)
	if !ok {
		t.Fatal("Expected isotropic to scatter")
	}
	if scatter.PDF == nil {
		t.Fatal("Expected a sphere PDF")
	}

	expected := 1 / (4 * math.Pi)
	anyRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3))
	if density := fog.ScatteringPDF(rec, anyRay); math.Abs(density-expected) > tolerance {
		t.Errorf("Expected constant phase function %v, got %v", expected, density)
	}
}

func TestBlend(t *testing.T) {
	matte := NewLambertian(NewSolidColor(1, 0, 0))
	mirror := NewMetal(NewSolidColor(0, 0, 1), 0)
	rnd := core.NewRandom(42)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// Ratio 1 always delegates to the first material
	allFirst := NewBlend(matte, mirror, 1)
	for i := 0; i < 20; i++ {
		scatter, _ := allFirst.Scatter(rayIn, testHitRecord(allFirst, true), rnd)
		if scatter.PDF == nil {
			t.Fatal("Expected lambertian delegation for ratio 1")
		}
	}

	// Ratio 0 always delegates to the second
	allSecond := NewBlend(matte, mirror, 0)
	for i := 0; i < 20; i++ {
		scatter, _ := allSecond.Scatter(rayIn, testHitRecord(allSecond, true), rnd)
		if scatter.PDF != nil {
			t.Fatal("Expected metal delegation for ratio 0")
		}
	}

	// The scattering density is the deterministic weighted mix
	half := NewBlend(matte, mirror, 0.5)
	rec := testHitRecord(half, true)
	straightUp := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	expected := 0.5 / math.Pi
	if density := half.ScatteringPDF(rec, straightUp); math.Abs(density-expected) > tolerance {
		t.Errorf("Expected weighted density %v, got %v", expected, density)
	}
}

func TestBlend_IsLight(t *testing.T) {
	matte := NewLambertian(NewSolidColor(1, 1, 1))
	light := NewDiffuseLight(5, 5, 5)

	if !NewBlend(matte, light, 0.5).IsLight() {
		t.Error("Expected blend containing a light to report IsLight")
	}
	if NewBlend(matte, matte, 0.5).IsLight() {
		t.Error("Expected blend of matte materials to not be a light")
	}
}
