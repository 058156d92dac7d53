package post

import (
	"github.com/pkg/errors"

	"github.com/okvist/pathtrace/pkg/core"
)

// Bloom is a post processor that makes bright areas of the image bleed
// into their surroundings. Pixels brighter than the threshold are
// extracted, blurred with a separable gaussian kernel and added back
// onto the image.
type Bloom struct {
	kernelSizeFraction float64
	stdDev             float64
	threshold          float64
}

// NewBloom creates a bloom post processor. The kernel size is given as
// a fraction of the image width and must be in [0, 0.5]. A threshold
// of 0 selects the default, the length of a full white color vector.
func NewBloom(kernelSizeFraction, stdDev, threshold float64) (*Bloom, error) {
	if kernelSizeFraction < 0 || kernelSizeFraction > 0.5 {
		return nil, errors.Errorf("bloom kernel size fraction %f is not in [0, 0.5]", kernelSizeFraction)
	}
	if threshold == 0 {
		threshold = core.NewVec3(1, 1, 1).Length()
	}
	return &Bloom{
		kernelSizeFraction: kernelSizeFraction,
		stdDev:             stdDev,
		threshold:          threshold,
	}, nil
}

// NeedsAlbedoAndNormals returns false
func (b *Bloom) NeedsAlbedoAndNormals() bool {
	return false
}

// Process applies the bloom effect to the pixel colors
func (b *Bloom) Process(pixelColors, albedoColors, normalColors []core.Vec3, width, height, samples int) ([]core.Vec3, error) {
	kernelSize := int(float64(width) * b.kernelSizeFraction)
	if kernelSize%2 == 0 {
		kernelSize++
	}
	weights := createGaussianBlurWeights(kernelSize, b.stdDev)

	// The colors are accumulated sums, so the threshold scales with
	// the sample count
	threshold := b.threshold * float64(samples)

	bright := make([]core.Vec3, len(pixelColors))
	for i, c := range pixelColors {
		if c.Length() > threshold {
			bright[i] = c
		}
	}

	blurred := blurHorizontal(bright, weights, width, height)
	blurred = blurVertical(blurred, weights, width, height)

	result := make([]core.Vec3, len(pixelColors))
	for i, c := range pixelColors {
		result[i] = c.Add(blurred[i])
	}
	return result, nil
}

func blurHorizontal(colors []core.Vec3, weights []float64, width, height int) []core.Vec3 {
	result := make([]core.Vec3, len(colors))
	center := len(weights) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := core.Vec3{}
			for i, w := range weights {
				sx := clampIndex(x+i-center, width)
				sum = sum.Add(colors[y*width+sx].Multiply(w))
			}
			result[y*width+x] = sum
		}
	}
	return result
}

func blurVertical(colors []core.Vec3, weights []float64, width, height int) []core.Vec3 {
	result := make([]core.Vec3, len(colors))
	center := len(weights) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := core.Vec3{}
			for i, w := range weights {
				sy := clampIndex(y+i-center, height)
				sum = sum.Add(colors[sy*width+x].Multiply(w))
			}
			result[y*width+x] = sum
		}
	}
	return result
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
