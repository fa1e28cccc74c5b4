package math

import (
	"math"
	"testing"
)

func approxV3(a, b V3, eps F) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestTransform4RoundTrip(t *testing.T) {
	translation := V3{1, 2, -3}
	rotation := V3{0.1, 0.2, 0.05} // turns
	scale := V3{2, 0.5, 1.5}

	forward, inverse := Transform4(translation, rotation, scale)

	p := V3{0.3, -0.7, 1.2}
	worldP := forward.TransformPoint(p)
	back := inverse.TransformPoint(worldP)

	if !approxV3(back, p, 1e-4) {
		t.Errorf("round trip point = %v, want %v", back, p)
	}
}

func TestTranslate4OnlyMovesPoints(t *testing.T) {
	m := Translate4(V3{5, 0, 0})
	p := m.TransformPoint(V3{1, 1, 1})
	if !approxV3(p, V3{6, 1, 1}, 1e-12) {
		t.Errorf("translated point = %v", p)
	}
	v := m.TransformVector(V3{1, 1, 1})
	if !approxV3(v, V3{1, 1, 1}, 1e-12) {
		t.Errorf("translation affected a vector: %v", v)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	m := RotateZ4(0.25) // quarter turn = 90 degrees
	got := m.TransformVector(V3{1, 0, 0})
	if !approxV3(got, V3{0, 1, 0}, 1e-9) {
		t.Errorf("RotateZ4(0.25) applied to X axis = %v, want {0,1,0}", got)
	}
}
