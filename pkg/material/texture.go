// Package material provides materials that describe how rays scatter,
// reflect, refract and emit when hitting objects, and the textures that
// color them.
package material

import (
	"image"
	"math"
	"os"

	// Decoders for the supported texture image formats register
	// themselves with image.Decode
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pkg/errors"

	"github.com/okvist/pathtrace/pkg/core"
)

// Texture describes the color of a material at a given texture coordinate
type Texture interface {
	Color(uv core.UV) core.Vec3
}

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	ColorValue core.Vec3
}

// NewSolidColor creates a solid color texture from color channel values
func NewSolidColor(r, g, b float64) SolidColor {
	return SolidColor{ColorValue: core.NewVec3(r, g, b)}
}

// Color returns the color of the texture
func (sc SolidColor) Color(uv core.UV) core.Vec3 {
	return sc.ColorValue
}

// ImageTexture is a texture backed by a decoded image. Coordinates
// outside [0,1] wrap around, and V points up.
type ImageTexture struct {
	image  image.Image
	width  int
	height int
}

// NewImageTexture creates a texture from an already decoded image
func NewImageTexture(img image.Image) ImageTexture {
	bounds := img.Bounds()
	return ImageTexture{
		image:  img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// LoadImageTexture creates a texture from an image file. PNG, JPEG,
// BMP, TIFF and WebP are supported.
func LoadImageTexture(path string) (ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageTexture{}, errors.Wrapf(err, "failed to open image texture %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return ImageTexture{}, errors.Wrapf(err, "failed to decode image texture %s", path)
	}
	return NewImageTexture(img), nil
}

// Color returns the color of the texture at the coordinate
func (it ImageTexture) Color(uv core.UV) core.Vec3 {
	u := math.Mod(math.Abs(uv.U), 1)
	v := 1 - math.Mod(math.Abs(uv.V), 1)

	x := int(u * float64(it.width))
	if x >= it.width {
		x = it.width - 1
	}
	y := int(v * float64(it.height))
	if y >= it.height {
		y = it.height - 1
	}

	bounds := it.image.Bounds()
	r, g, b, _ := it.image.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	return core.NewVec3(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}

// perturbNormal maps a tangent-space normal texture color onto the
// geometric normal. Channel values are remapped from [0,1] to [-1,1]
// and expressed in the normal's local basis.
func perturbNormal(normalTexture Texture, normal core.Vec3, uv core.UV) core.Vec3 {
	c := normalTexture.Color(uv)
	tangentNormal := c.Multiply(2).Subtract(core.NewVec3(1, 1, 1)).Normalize()
	return core.NewONB(normal).Local(tangentNormal).Normalize()
}
