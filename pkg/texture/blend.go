package texture

import (
	"fmt"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// BlendMode selects the combination rule used by Blend.
type BlendMode int

const (
	BlendLighten BlendMode = iota
	BlendDarken
	BlendAddition
	BlendSubtraction
)

// Blend combines two surfaces channel-wise under one of a fixed set of
// compositing modes.
type Blend struct {
	Mode BlendMode
	L, R Surface
}

// NewBlend creates a Blend surface.
func NewBlend(mode BlendMode, l, r Surface) *Blend {
	return &Blend{Mode: mode, L: l, R: r}
}

func (b *Blend) Width() int {
	if w := b.L.Width(); w > 0 {
		return w
	}
	return b.R.Width()
}

func (b *Blend) Height() int {
	if h := b.L.Height(); h > 0 {
		return h
	}
	return b.R.Height()
}

// GetF samples both surfaces at uv and combines them per Mode.
func (b *Blend) GetF(uv rtmath.V2) (rtmath.V4, error) {
	l, err := b.L.GetF(uv)
	if err != nil {
		return rtmath.V4{}, err
	}
	r, err := b.R.GetF(uv)
	if err != nil {
		return rtmath.V4{}, err
	}

	switch b.Mode {
	case BlendLighten:
		return rtmath.NewV4(max(l.X, r.X), max(l.Y, r.Y), max(l.Z, r.Z), max(l.W, r.W)), nil
	case BlendDarken:
		return rtmath.NewV4(min(l.X, r.X), min(l.Y, r.Y), min(l.Z, r.Z), min(l.W, r.W)), nil
	case BlendAddition:
		return l.Add(r), nil
	case BlendSubtraction:
		return rtmath.NewV4(l.X-r.X, l.Y-r.Y, l.Z-r.Z, l.W-r.W), nil
	default:
		return rtmath.V4{}, fmt.Errorf("texture: unknown blend mode %d", b.Mode)
	}
}

// Fallback alpha-composites an inner surface over a solid backing color,
// used when an optional texture is absent or only partially opaque.
type Fallback struct {
	Color rtmath.V3
	Inner Surface
}

// NewFallback creates a Fallback surface.
func NewFallback(color rtmath.V3, inner Surface) *Fallback {
	return &Fallback{Color: color, Inner: inner}
}

func (f *Fallback) Width() int  { return f.Inner.Width() }
func (f *Fallback) Height() int { return f.Inner.Height() }

// GetF samples the inner surface and alpha-composites it over Color.
func (f *Fallback) GetF(uv rtmath.V2) (rtmath.V4, error) {
	inner, err := f.Inner.GetF(uv)
	if err != nil {
		return rtmath.V4{}, err
	}
	composited := f.Color.Multiply(1 - inner.W).Add(inner.XYZ().Multiply(inner.W))
	return rtmath.NewV4(composited.X, composited.Y, composited.Z, 1), nil
}
