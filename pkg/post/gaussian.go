package post

import "math"

// createGaussianBlurWeights returns normalized weights for a one
// dimensional gaussian blur kernel of the given size. The kernel size
// must be odd so that the kernel has a center.
func createGaussianBlurWeights(kernelSize int, stdDev float64) []float64 {
	weights := make([]float64, kernelSize)
	center := kernelSize / 2
	sum := 0.

	for i := range weights {
		d := float64(i - center)
		weights[i] = math.Exp(-d * d / (2 * stdDev * stdDev))
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}
