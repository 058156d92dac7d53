package core

import "pgregory.net/rand"

// NewRandom creates a new random number generator with the given seed.
// A zero seed selects a non-deterministic seed, for production renders
// that should not repeat.
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New()
	}
	return rand.New(seed)
}

// MixSeed derives a new seed from a base seed and a stream of indices,
// so that independent tasks get decorrelated but reproducible generators.
// Uses the splitmix64 finalizer on each combined value.
func MixSeed(seed uint64, indices ...uint64) uint64 {
	for _, idx := range indices {
		seed = splitmix64(seed + 0x9e3779b97f4a7c15 + idx)
	}
	if seed == 0 {
		seed = 1
	}
	return seed
}

func splitmix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// RandomFloat returns a random float64 in [min, max)
func RandomFloat(rnd *rand.Rand, min, max float64) float64 {
	return rnd.Float64()*(max-min) + min
}
