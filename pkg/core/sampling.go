package core

import (
	"math"

	"pgregory.net/rand"
)

// RandomCosineDirection generates a cosine-weighted random direction
// around the positive Z axis of a local basis
func RandomCosineDirection(rnd *rand.Rand) Vec3 {
	r1 := rnd.Float64()
	r2 := rnd.Float64()

	phi := 2 * math.Pi * r1
	sqrtR2 := math.Sqrt(r2)

	return Vec3{
		X: math.Cos(phi) * sqrtR2,
		Y: math.Sin(phi) * sqrtR2,
		Z: math.Sqrt(1 - r2),
	}
}

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(rnd *rand.Rand) Vec3 {
	z := 1 - 2*rnd.Float64()
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * rnd.Float64()
	return Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// RandomInUnitSphere generates a random point inside the unit sphere
func RandomInUnitSphere(rnd *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*rnd.Float64() - 1,
			Y: 2*rnd.Float64() - 1,
			Z: 2*rnd.Float64() - 1,
		}
		if p.LengthSquared() <= 1 {
			return p
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk,
// used for depth of field ray offsets
func RandomInUnitDisk(rnd *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*rnd.Float64() - 1, Y: 2*rnd.Float64() - 1}
		if p.Dot(p) <= 1 {
			return p
		}
	}
}

// RandomToSphere generates a random direction within the cone subtended
// by a sphere of the given radius at the given squared distance
func RandomToSphere(rnd *rand.Rand, radius, distanceSquared float64) Vec3 {
	r1 := rnd.Float64()
	r2 := rnd.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)

	phi := 2 * math.Pi * r1
	zz := math.Sqrt(1 - z*z)

	return Vec3{X: math.Cos(phi) * zz, Y: math.Sin(phi) * zz, Z: z}
}
