package texture

import (
	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// Bitmap is a rectangular grid of RGBA texels sampled with bilinear
// filtering, matching the teacher's ImageTexture but generalized with wrap
// modes and bilinear reconstruction per spec.md §4.2.
type Bitmap struct {
	width, height int
	texels        []rtmath.V4 // row-major, texels[y*width+x]
	wrap          WrapMode
}

// NewBitmap creates a Bitmap from row-major RGBA texel data.
func NewBitmap(width, height int, texels []rtmath.V4, wrap WrapMode) *Bitmap {
	return &Bitmap{width: width, height: height, texels: texels, wrap: wrap}
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

func (b *Bitmap) texelAt(x, y int) rtmath.V4 {
	if x < 0 {
		x = 0
	}
	if x >= b.width {
		x = b.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= b.height {
		y = b.height - 1
	}
	return b.texels[y*b.width+x]
}

// GetF wraps uv, converts to continuous pixel coordinates, and bilinearly
// interpolates the four surrounding texels.
func (b *Bitmap) GetF(uv rtmath.V2) (rtmath.V4, error) {
	wrapped, err := wrapUV(uv, b.wrap)
	if err != nil {
		return rtmath.V4{}, err
	}
	px, py := continuousCoords(wrapped, b.width, b.height)
	return bilinearSample(px, py, b.texelAt), nil
}
