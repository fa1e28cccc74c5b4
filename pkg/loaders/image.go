// Package loaders reads meshes and images from disk into the builder
// callbacks that geometry/texture expect, per spec.md §6. Supported
// formats: PNG/BMP images, OBJ/PLY/STL/glTF meshes.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder, registered for image.Decode
	_ "image/png"  // PNG decoder, registered for image.Decode
	"os"

	"golang.org/x/image/bmp"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/texture"
)

// ImageData is a decoded image as a flat row-major RGBA buffer, each
// channel normalized to [0,1].
type ImageData struct {
	Width, Height int
	Pixels        []rtmath.V4
}

// LoadImage loads a PNG, JPEG or BMP image, auto-detecting format from the
// file header. All three decoders are registered with image.Decode (the
// bmp import registers itself); if image.Decode still fails, the file is
// retried with bmp.Decode before the error is returned.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		if _, seekErr := file.Seek(0, 0); seekErr == nil {
			if bmpImg, bmpErr := bmp.Decode(file); bmpErr == nil {
				img = bmpImg
				err = nil
			}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]rtmath.V4, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = rtmath.NewV4(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
				float64(a)/65535.0,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// ToBitmap wraps the decoded pixels as a texture.Bitmap with the given wrap
// mode, ready to use as a Material's surface.
func (d *ImageData) ToBitmap(wrap texture.WrapMode) *texture.Bitmap {
	return texture.NewBitmap(d.Width, d.Height, d.Pixels, wrap)
}
