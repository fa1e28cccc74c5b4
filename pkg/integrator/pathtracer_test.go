package integrator

import (
	"math/rand"
	"testing"

	"github.com/ravelin-labs/pathtracer/pkg/geometry"
	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

func TestTraceZeroDepthReturnsBlack(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	w := geometry.NewWorld(nil, material.NewSolidBackground(rtmath.NewV3(1, 1, 1)))
	w.BuildBVH(rnd)

	ray := rtmath.NewRay(rtmath.NewV3(0, 0, 0), rtmath.NewV3(0, 0, -1))
	radiance, remaining := Trace(w, ray, 0, rnd)
	if radiance.Length() != 0 || remaining != 0 {
		t.Fatalf("expected black radiance and 0 remaining depth, got %v, %d", radiance, remaining)
	}
}

func TestTraceMissReturnsBackground(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	bg := rtmath.NewV3(0.2, 0.4, 0.6)
	w := geometry.NewWorld(nil, material.NewSolidBackground(bg))
	w.BuildBVH(rnd)

	ray := rtmath.NewRay(rtmath.NewV3(0, 0, 0), rtmath.NewV3(0, 0, -1))
	radiance, remaining := Trace(w, ray, 5, rnd)
	if radiance.Sub(bg).Length() > 1e-9 {
		t.Fatalf("expected background color %v, got %v", bg, radiance)
	}
	if remaining != 5 {
		t.Fatalf("expected unchanged depth on miss, got %d", remaining)
	}
}

func TestTracePureEmitterReturnsEmissionOnly(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	emit := rtmath.NewV3(5, 5, 5)
	light := material.NewDiffuseLight(emit)
	sphere := geometry.NewSphere(rtmath.NewV3(0, 0, -2), 1, light)

	w := geometry.NewWorld([]geometry.Shape{sphere}, material.NewSolidBackground(rtmath.V3{}))
	w.BuildBVH(rnd)

	ray := rtmath.NewRay(rtmath.NewV3(0, 0, 0), rtmath.NewV3(0, 0, -1))
	radiance, _ := Trace(w, ray, 5, rnd)
	if radiance.Sub(emit).Length() > 1e-9 {
		t.Fatalf("expected pure emission %v, got %v", emit, radiance)
	}
}

func TestTraceAbsorbingMaterialReturnsBlack(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	sphere := geometry.NewSphere(rtmath.NewV3(0, 0, -2), 1, material.None)
	w := geometry.NewWorld([]geometry.Shape{sphere}, material.NewSolidBackground(rtmath.NewV3(1, 1, 1)))
	w.BuildBVH(rnd)

	ray := rtmath.NewRay(rtmath.NewV3(0, 0, 0), rtmath.NewV3(0, 0, -1))
	radiance, _ := Trace(w, ray, 5, rnd)
	if radiance.Length() != 0 {
		t.Fatalf("expected black from absorbing material, got %v", radiance)
	}
}

func TestAlbedoNormalMissReturnsBackgroundAndZeroNormal(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	bg := rtmath.NewV3(0.1, 0.2, 0.3)
	w := geometry.NewWorld(nil, material.NewSolidBackground(bg))
	w.BuildBVH(rnd)

	ray := rtmath.NewRay(rtmath.NewV3(0, 0, 0), rtmath.NewV3(0, 0, -1))
	albedo, normal := AlbedoNormal(w, ray, rnd)
	if albedo.Sub(bg).Length() > 1e-9 {
		t.Fatalf("expected background %v, got %v", bg, albedo)
	}
	if normal.Length() != 0 {
		t.Fatalf("expected zero-vector normal on miss, got %v", normal)
	}
}

func TestRunConvertsRemainingDepthToUsedDepth(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	w := geometry.NewWorld(nil, material.NewSolidBackground(rtmath.V3{}))
	w.BuildBVH(rnd)

	trace := Run(w, 50)
	ray := rtmath.NewRay(rtmath.NewV3(0, 0, 0), rtmath.NewV3(0, 0, -1))
	_, used := trace(ray, rnd)
	if used != 0 {
		t.Fatalf("expected a miss on the first bounce to report 0 used depth, got %d", used)
	}
}
