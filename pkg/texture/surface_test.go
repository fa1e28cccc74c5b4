package texture

import (
	"math"
	"testing"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

func TestSolidColorIgnoresUV(t *testing.T) {
	s := NewSolidColor(rtmath.NewV3(0.2, 0.4, 0.6))
	for _, uv := range []rtmath.V2{{X: 0, Y: 0}, {X: 0.5, Y: 0.9}, {X: -3, Y: 12}} {
		got, err := s.GetF(uv)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.X != 0.2 || got.Y != 0.4 || got.Z != 0.6 {
			t.Errorf("GetF(%v) = %v, want {0.2 0.4 0.6 1}", uv, got)
		}
	}
}

func TestBitmapBilinearAtTexelCenters(t *testing.T) {
	// 2x2 checkerboard: black, white, white, black
	texels := []rtmath.V4{
		{X: 0, Y: 0, Z: 0, W: 1}, {X: 1, Y: 1, Z: 1, W: 1},
		{X: 1, Y: 1, Z: 1, W: 1}, {X: 0, Y: 0, Z: 0, W: 1},
	}
	b := NewBitmap(2, 2, texels, WrapClamp)

	got, err := b.GetF(rtmath.NewV2(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.X != 0 {
		t.Errorf("GetF(0,0) = %v, want black", got)
	}

	got, err = b.GetF(rtmath.NewV2(1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.X != 1 {
		t.Errorf("GetF(1,0) = %v, want white", got)
	}
}

func TestBitmapRepeatWraps(t *testing.T) {
	texels := []rtmath.V4{{X: 0.25}, {X: 0.75}}
	b := NewBitmap(2, 1, texels, WrapRepeat)

	a, err := b.GetF(rtmath.NewV2(-1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := b.GetF(rtmath.NewV2(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(a.X-want.X) > 1e-9 {
		t.Errorf("GetF(-1,0) = %v, want %v (wrapped)", a, want)
	}
}

func TestMirrorWrapIsAnError(t *testing.T) {
	b := NewBitmap(2, 2, make([]rtmath.V4, 4), WrapMirror)
	if _, err := b.GetF(rtmath.NewV2(0.5, 0.5)); err == nil {
		t.Error("expected error for unimplemented mirror wrap mode")
	}
}

func TestBlendLighten(t *testing.T) {
	l := NewSolidColor(rtmath.NewV3(0.2, 0.8, 0.1))
	r := NewSolidColor(rtmath.NewV3(0.5, 0.3, 0.9))
	b := NewBlend(BlendLighten, l, r)
	got, err := b.GetF(rtmath.V2{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.X != 0.5 || got.Y != 0.8 || got.Z != 0.9 {
		t.Errorf("BlendLighten = %v, want {0.5 0.8 0.9}", got)
	}
}

func TestFallbackCompositesOverSolid(t *testing.T) {
	inner := &Bitmap{width: 1, height: 1, texels: []rtmath.V4{{X: 1, Y: 1, Z: 1, W: 0.5}}, wrap: WrapClamp}
	f := NewFallback(rtmath.NewV3(0, 0, 0), inner)
	got, err := f.GetF(rtmath.V2{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got.X-0.5) > 1e-9 {
		t.Errorf("composited = %v, want 0.5", got)
	}
}
