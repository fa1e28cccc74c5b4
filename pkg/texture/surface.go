// Package texture implements the uniform sampling interface over the
// closed set of texture/background surface variants used by materials and
// backgrounds: solid colors, bitmaps, YCbCr-encoded bitmap pairs, blended
// combinations of two surfaces, an alpha-composited fallback, and Perlin
// noise.
package texture

import (
	"fmt"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// WrapMode controls how UV coordinates outside [0,1] are mapped back in.
type WrapMode int

const (
	// WrapRepeat tiles the texture (fractional part of the reflected UV).
	WrapRepeat WrapMode = iota
	// WrapClamp saturates UV coordinates to [0,1].
	WrapClamp
	// WrapMirror is declared but not implemented; GetF returns an error for
	// any surface configured with it. See spec.md §9 (Open Questions).
	WrapMirror
)

// Surface is the uniform sampling interface implemented by every texture
// variant.
type Surface interface {
	Width() int
	Height() int
	GetF(uv rtmath.V2) (rtmath.V4, error)
}

// SolidColor is a constant-color surface, ignoring UV entirely.
type SolidColor struct {
	Color rtmath.V4
}

// NewSolidColor creates a SolidColor surface.
func NewSolidColor(color rtmath.V3) *SolidColor {
	return &SolidColor{Color: rtmath.NewV4(color.X, color.Y, color.Z, 1)}
}

func (s *SolidColor) Width() int  { return 1 }
func (s *SolidColor) Height() int { return 1 }

// GetF always returns the constant color.
func (s *SolidColor) GetF(uv rtmath.V2) (rtmath.V4, error) { return s.Color, nil }

// wrapUV maps uv into [0,1]^2 according to mode.
func wrapUV(uv rtmath.V2, mode WrapMode) (rtmath.V2, error) {
	switch mode {
	case WrapClamp:
		return rtmath.NewV2(clamp01(uv.X), clamp01(uv.Y)), nil
	case WrapRepeat:
		return rtmath.NewV2(repeat01(uv.X), repeat01(uv.Y)), nil
	case WrapMirror:
		return rtmath.V2{}, fmt.Errorf("texture: mirror wrap mode is not implemented")
	default:
		return rtmath.V2{}, fmt.Errorf("texture: unknown wrap mode %d", mode)
	}
}

func clamp01(x rtmath.F) rtmath.F {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// repeat01 maps x to [0,1) by taking the fractional part of its positive
// reflection |x|, so negative coordinates tile mirrored about zero
// (-0.25 maps to 0.25).
func repeat01(x rtmath.F) rtmath.F {
	if x < 0 {
		x = -x
	}
	f := x - floor(x)
	if f < 0 {
		f += 1
	}
	return f
}

func floor(x rtmath.F) rtmath.F {
	i := rtmath.F(int64(x))
	if x < 0 && i != x {
		i -= 1
	}
	return i
}

// bilinearSample reads four texels around a continuous pixel coordinate and
// interpolates between them. get is expected to clamp its integer
// coordinates to the valid texel range.
func bilinearSample(px, py rtmath.F, get func(x, y int) rtmath.V4) rtmath.V4 {
	x0 := int(px)
	y0 := int(py)
	x1 := x0 + 1
	y1 := y0 + 1
	fx := px - rtmath.F(x0)
	fy := py - rtmath.F(y0)

	top := rtmath.Lerp4(get(x0, y0), get(x1, y0), fx)
	bottom := rtmath.Lerp4(get(x0, y1), get(x1, y1), fx)
	return rtmath.Lerp4(top, bottom, fy)
}

// continuousCoords converts a wrapped [0,1]^2 UV into continuous pixel
// coordinates for a surface of the given size, per spec.md §4.2.
func continuousCoords(uv rtmath.V2, width, height int) (rtmath.F, rtmath.F) {
	return uv.X * rtmath.F(width-1), uv.Y * rtmath.F(height-1)
}
