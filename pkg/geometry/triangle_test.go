package geometry

import (
	"math"
	"testing"

	"github.com/okvist/pathtrace/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		testMaterial,
	)
	rnd := core.NewRandom(42)

	tests := []struct {
		name        string
		ray         core.Ray
		expectedHit bool
	}{
		{
			name:        "Inside the triangle",
			ray:         core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1)),
			expectedHit: true,
		},
		{
			name:        "In bounding box but outside the hypotenuse",
			ray:         core.NewRay(core.NewVec3(1.5, 1.5, 5), core.NewVec3(0, 0, -1)),
			expectedHit: false,
		},
		{
			name:        "Outside the first edge",
			ray:         core.NewRay(core.NewVec3(-0.5, 0.5, 5), core.NewVec3(0, 0, -1)),
			expectedHit: false,
		},
		{
			name:        "Parallel to the plane",
			ray:         core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(1, 0, 0)),
			expectedHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, hit := triangle.Hit(tt.ray, core.RayInterval, rnd)
			if hit != tt.expectedHit {
				t.Errorf("Expected hit=%v, got %v", tt.expectedHit, hit)
			}
		})
	}
}

func TestTriangle_TexCoordInterpolation(t *testing.T) {
	triangle := NewTriangleWithTexCoords(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		core.NewUV(0, 0),
		core.NewUV(1, 0),
		core.NewUV(0, 1),
		testMaterial,
	)
	rnd := core.NewRandom(42)

	tests := []struct {
		name     string
		target   core.Vec3
		expected core.UV
	}{
		{"First vertex", core.NewVec3(0.001, 0.001, 0), core.NewUV(0.0005, 0.0005)},
		{"Mid first edge", core.NewVec3(1, 0.001, 0), core.NewUV(0.5, 0.0005)},
		{"Centroid region", core.NewVec3(0.5, 0.5, 0), core.NewUV(0.25, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.target.Add(core.NewVec3(0, 0, 5)), core.NewVec3(0, 0, -1))
			rec, hit := triangle.Hit(ray, core.RayInterval, rnd)
			if !hit {
				t.Fatal("Expected hit")
			}
			if math.Abs(rec.UV.U-tt.expected.U) > 1e-6 || math.Abs(rec.UV.V-tt.expected.V) > 1e-6 {
				t.Errorf("Expected UV %+v, got %+v", tt.expected, rec.UV)
			}
		})
	}
}

func TestTriangle_PDFValue(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(-1, 2, -1),
		core.NewVec3(1, 2, -1),
		core.NewVec3(-1, 2, 1),
		testMaterial,
	)
	rnd := core.NewRandom(42)
	origin := core.NewVec3(-0.9, 0, -0.9)

	// A direction hitting the triangle has positive density
	direction := core.NewVec3(0, 1, 0)
	if density := triangle.PDFValue(origin, direction, rnd); density <= 0 {
		t.Errorf("Expected positive density toward the triangle, got %v", density)
	}
	if triangle.PDFValue(origin, core.NewVec3(0, -1, 0), rnd) != 0 {
		t.Error("Expected zero density away from the triangle")
	}
}
