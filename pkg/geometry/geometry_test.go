package geometry

import (
	"math/rand"
	"testing"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

func TestInstanceTransformRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	mat := material.NewLambertian(nil)
	sphere := NewSphere(rtmath.NewV3(0, 0, 0), 1, mat)

	inst := NewInstance(sphere, rtmath.NewV3(5, 0, 0), rtmath.V3{}, rtmath.NewV3(1, 1, 1), nil)

	ray := rtmath.NewRay(rtmath.NewV3(5, 0, -10), rtmath.NewV3(0, 0, 1))
	hit, ok := inst.Hit(ray, 0.001, 1e9, rnd)
	if !ok {
		t.Fatal("expected instance to be hit")
	}
	if diff := hit.Point.Sub(rtmath.NewV3(5, 0, -1)); diff.Length() > 1e-6 {
		t.Fatalf("expected hit point near (5,0,-1), got %v", hit.Point)
	}
}

func TestInstanceScaledNormalStaysUnit(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	mat := material.NewLambertian(nil)
	sphere := NewSphere(rtmath.NewV3(0, 0, 0), 1, mat)

	inst := NewInstance(sphere, rtmath.V3{}, rtmath.V3{}, rtmath.NewV3(2, 1, 1), nil)
	ray := rtmath.NewRay(rtmath.NewV3(0, 0, -10), rtmath.NewV3(0, 0, 1))
	hit, ok := inst.Hit(ray, 0.001, 1e9, rnd)
	if !ok {
		t.Fatal("expected instance to be hit")
	}
	if l := hit.Normal.Length(); l < 0.999 || l > 1.001 {
		t.Fatalf("expected unit normal, got length %v", l)
	}
}

func TestVolumeMissPassesThrough(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	boundary := NewSphere(rtmath.NewV3(0, 0, 0), 1, nil)
	vol := NewVolume(boundary, 0.0001, material.NewIsotropic(nil))

	ray := rtmath.NewRay(rtmath.NewV3(10, 10, 10), rtmath.NewV3(1, 0, 0))
	if _, ok := vol.Hit(ray, 0.001, 1e9, rnd); ok {
		t.Fatal("expected a ray missing the boundary to also miss the volume")
	}
}

func TestVolumeDenseScattersInsideBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	boundary := NewSphere(rtmath.NewV3(0, 0, 0), 1, nil)
	vol := NewVolume(boundary, 1e6, material.NewIsotropic(nil))

	ray := rtmath.NewRay(rtmath.NewV3(0, 0, -10), rtmath.NewV3(0, 0, 1))
	hit, ok := vol.Hit(ray, 0.001, 1e9, rnd)
	if !ok {
		t.Fatal("expected a dense volume to scatter a ray passing through it")
	}
	if hit.Point.Length() > 1.0001 {
		t.Fatalf("expected scatter point inside unit sphere, got %v", hit.Point)
	}
	if !hit.FrontFace {
		t.Fatal("expected volume scatter to report front_face=true")
	}
}

func TestWorldIntersectFindsClosest(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	near := NewSphere(rtmath.NewV3(0, 0, -2), 0.5, material.NewLambertian(nil))
	far := NewSphere(rtmath.NewV3(0, 0, -5), 0.5, material.NewLambertian(nil))

	w := NewWorld([]Shape{far, near}, material.NewSolidBackground(rtmath.NewV3(0, 0, 0)))
	w.BuildBVH(rnd)

	ray := rtmath.NewRay(rtmath.NewV3(0, 0, 0), rtmath.NewV3(0, 0, -1))
	hit, ok := w.Intersect(ray, 0.001, 1e9, rnd)
	if !ok {
		t.Fatal("expected a hit")
	}
	if diff := hit.Point.Sub(rtmath.NewV3(0, 0, -1.5)); diff.Length() > 1e-6 {
		t.Fatalf("expected closest hit at z=-1.5, got %v", hit.Point)
	}
}

func TestWorldMissSamplesBackground(t *testing.T) {
	rnd := rand.New(rand.NewSource(8))
	w := NewWorld(nil, material.NewSolidBackground(rtmath.NewV3(1, 2, 3)))
	w.BuildBVH(rnd)

	ray := rtmath.NewRay(rtmath.NewV3(0, 0, 0), rtmath.NewV3(0, 0, -1))
	if _, ok := w.Intersect(ray, 0.001, 1e9, rnd); ok {
		t.Fatal("expected empty world to miss")
	}
	bg := w.SampleBackground(ray)
	if bg.Sub(rtmath.NewV3(1, 2, 3)).Length() > 1e-9 {
		t.Fatalf("expected solid background color, got %v", bg)
	}
}
