package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestVec3_Operations(t *testing.T) {
	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{
			name:     "Add",
			result:   NewVec3(1, 2, 3).Add(NewVec3(4, 5, 6)),
			expected: NewVec3(5, 7, 9),
		},
		{
			name:     "Subtract",
			result:   NewVec3(4, 5, 6).Subtract(NewVec3(1, 2, 3)),
			expected: NewVec3(3, 3, 3),
		},
		{
			name:     "Multiply",
			result:   NewVec3(1, 2, 3).Multiply(2),
			expected: NewVec3(2, 4, 6),
		},
		{
			name:     "MultiplyVec",
			result:   NewVec3(1, 2, 3).MultiplyVec(NewVec3(2, 3, 4)),
			expected: NewVec3(2, 6, 12),
		},
		{
			name:     "Cross",
			result:   NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Negate",
			result:   NewVec3(1, -2, 3).Negate(),
			expected: NewVec3(-1, 2, -3),
		},
		{
			name:     "Normalize",
			result:   NewVec3(3, 0, 4).Normalize(),
			expected: NewVec3(0.6, 0, 0.8),
		},
		{
			name:     "Reflect straight down onto floor",
			result:   NewVec3(1, -1, 0).Reflect(NewVec3(0, 1, 0)),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "Clamp",
			result:   NewVec3(-1, 0.5, 2).Clamp(0, 1),
			expected: NewVec3(0, 0.5, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	result := NewVec3(1, 2, 3).Dot(NewVec3(4, 5, 6))
	if result != 32 {
		t.Errorf("Expected 32, got %v", result)
	}
}

func TestVec3_Refract(t *testing.T) {
	// Perpendicular incidence passes straight through
	incoming := NewVec3(0, -1, 0)
	refracted := incoming.Refract(NewVec3(0, 1, 0), 1.5)
	if refracted.Subtract(incoming).Length() > tolerance {
		t.Errorf("Expected straight pass-through %v, got %v", incoming, refracted)
	}

	// Oblique incidence bends toward the normal when entering a denser medium
	incoming = NewVec3(1, -1, 0).Normalize()
	refracted = incoming.Refract(NewVec3(0, 1, 0), 1/1.5)
	sinIn := incoming.X
	sinOut := refracted.Normalize().X
	if math.Abs(sinOut-sinIn/1.5) > tolerance {
		t.Errorf("Expected sin %v after refraction, got %v", sinIn/1.5, sinOut)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, 0, -1e-9).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 0.1, 0).NearZero() {
		t.Error("Expected vector with a large component to not be near zero")
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if v.Axis(axis) != expected {
			t.Errorf("Axis %d: expected %v, got %v", axis, expected, v.Axis(axis))
		}
	}
}
