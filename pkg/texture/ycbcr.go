package texture

import (
	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// YCbCr reconstructs color from a separate luma plane and a chroma plane,
// the storage scheme the source repo used for large "nebula" backgrounds to
// halve disk usage (spec.md §3, §4.2). Luma and chroma are sampled
// independently (each may have its own resolution/wrap mode) and combined
// with the BT.709 decode matrix before gamma is applied.
//
// spec.md §9 notes two coefficient sets exist upstream (BT.601 and BT.709);
// this implementation standardizes on BT.709 (Kr=0.2126, Kg=0.7152,
// Kb=0.0722) to match the luminance weights already used elsewhere
// (math.V3.Luminance).
type YCbCr struct {
	Luma   Surface // single-channel luma in the red channel
	Chroma Surface // Cb in red channel, Cr in green channel
	Gamma  rtmath.F
}

// NewYCbCr creates a YCbCr surface. gamma is typically 2.2.
func NewYCbCr(luma, chroma Surface, gamma rtmath.F) *YCbCr {
	return &YCbCr{Luma: luma, Chroma: chroma, Gamma: gamma}
}

func (y *YCbCr) Width() int  { return y.Luma.Width() }
func (y *YCbCr) Height() int { return y.Luma.Height() }

// bt709Decode converts (Y, U, V) with U=Cb-0.5, V=Cr-0.5 into RGB that is
// still gamma-encoded; GetF linearizes it afterwards.
func bt709Decode(yv, u, v rtmath.F) (r, g, b rtmath.F) {
	const kr, kg, kb = 0.2126, 0.7152, 0.0722
	r = yv + v*(2*(1-kr))
	b = yv + u*(2*(1-kb))
	g = yv - (kb/kg)*(b-yv) - (kr/kg)*(r-yv)
	return r, g, b
}

// GetF samples luma and chroma independently, decodes to RGB via the
// BT.709-like matrix, clamps to [0,1], and applies gamma.
func (y *YCbCr) GetF(uv rtmath.V2) (rtmath.V4, error) {
	lumaSample, err := y.Luma.GetF(uv)
	if err != nil {
		return rtmath.V4{}, err
	}
	chromaSample, err := y.Chroma.GetF(uv)
	if err != nil {
		return rtmath.V4{}, err
	}

	r, g, b := bt709Decode(lumaSample.X, chromaSample.X-0.5, chromaSample.Y-0.5)
	// The stored planes are gamma-encoded; decode back to linear by raising
	// to the gamma power (not GammaCorrect's 1/gamma, which encodes).
	color := rtmath.V3{X: r, Y: g, Z: b}.Clamp(0, 1).Powf(y.Gamma)
	return rtmath.NewV4(color.X, color.Y, color.Z, 1), nil
}
