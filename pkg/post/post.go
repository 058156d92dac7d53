// Package post provides post processing of the raw accumulated pixel
// colors produced by the renderer.
package post

import (
	"image"
	"image/color"
	"math"

	"github.com/okvist/pathtrace/pkg/core"
)

// Processor transforms the accumulated pixel colors of a rendered
// image before it is converted to an output image. Processors are
// applied in a chain, each receiving the output of the previous one.
type Processor interface {
	// Process returns transformed pixel colors. The colors are raw
	// accumulated sums over all samples, not yet scaled or gamma
	// corrected. Albedo and normal colors are only populated when
	// NeedsAlbedoAndNormals reports true.
	Process(pixelColors, albedoColors, normalColors []core.Vec3, width, height, samples int) ([]core.Vec3, error)

	// NeedsAlbedoAndNormals reports whether the processor uses the
	// auxiliary albedo and normal channels
	NeedsAlbedoAndNormals() bool
}

// ToImage converts accumulated pixel colors to an image, averaging
// over the sample count and applying gamma 2 correction
func ToImage(pixelColors []core.Vec3, width, height, samples int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scale := 1 / float64(samples)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixelColors[y*width+x].Multiply(scale)
			img.Set(x, y, color.RGBA{
				R: toColorChannel(c.X),
				G: toColorChannel(c.Y),
				B: toColorChannel(c.Z),
				A: 255,
			})
		}
	}
	return img
}

func toColorChannel(value float64) uint8 {
	// Gamma correction with gamma 2
	value = math.Sqrt(value)
	if value < 0 {
		value = 0
	}
	if value > 0.999 {
		value = 0.999
	}
	return uint8(256 * value)
}
