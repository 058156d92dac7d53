package core

import "math"

// AlmostZero is a value small enough to be treated as zero
const AlmostZero = 1e-8

// Vec3 represents a 3D vector, used for positions, directions and colors
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Divide returns the vector scaled by the inverse of a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// NearZero reports whether the vector is close to zero in all dimensions
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < AlmostZero && math.Abs(v.Y) < AlmostZero && math.Abs(v.Z) < AlmostZero
}

// Reflect returns the reflection of the vector around a normal
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract returns the refraction of the vector given a normal and the ratio
// of refraction indices, using Snell's law
func (v Vec3) Refract(n Vec3, indexRatio float64) Vec3 {
	cosTheta := math.Min(-v.Dot(n), 1)
	perpendicular := v.Add(n.Multiply(cosTheta)).Multiply(indexRatio)
	parallel := n.Multiply(-math.Sqrt(math.Abs(1 - perpendicular.LengthSquared())))
	return perpendicular.Add(parallel)
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: math.Max(minVal, math.Min(maxVal, v.X)),
		Y: math.Max(minVal, math.Min(maxVal, v.Y)),
		Z: math.Max(minVal, math.Min(maxVal, v.Z)),
	}
}

// Axis returns the vector component for the given axis index (0=X, 1=Y, 2=Z)
func (v Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
