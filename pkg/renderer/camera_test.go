package renderer

import (
	"math/rand"
	"testing"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

func TestZeroApertureOriginIsLookFrom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	cfg := CameraConfig{
		Center:      rtmath.NewV3(0, 0, 0),
		LookAt:      rtmath.NewV3(0, 0, -1),
		Up:          rtmath.NewV3(0, 1, 0),
		Width:       400,
		AspectRatio: 1,
		VFov:        45,
	}
	cam := NewCamera(cfg)

	for _, st := range [][2]rtmath.F{{0, 0}, {0.5, 0.5}, {1, 1}} {
		ray := cam.Ray(st[0], st[1], rnd)
		if ray.Origin.Sub(cfg.Center).Length() > 1e-9 {
			t.Fatalf("expected ray origin to be exactly look_from for zero aperture, got %v", ray.Origin)
		}
	}
}

func TestCenterRayPointsTowardFocusPlane(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	cfg := CameraConfig{
		Center:        rtmath.NewV3(0, 0, 0),
		LookAt:        rtmath.NewV3(0, 0, -1),
		Up:            rtmath.NewV3(0, 1, 0),
		Width:         400,
		AspectRatio:   1,
		VFov:          45,
		FocusDistance: 5,
	}
	cam := NewCamera(cfg)
	ray := cam.Ray(0.5, 0.5, rnd)

	expected := rtmath.NewV3(0, 0, -5)
	direction := ray.Direction.Unit()
	point := ray.Origin.Add(direction.Multiply(5))
	if point.Sub(expected).Length() > 1e-6 {
		t.Fatalf("expected center ray to reach %v at focus distance, got %v", expected, point)
	}
}

func TestNonZeroApertureJitters(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	cfg := CameraConfig{
		Center:      rtmath.NewV3(0, 0, 0),
		LookAt:      rtmath.NewV3(0, 0, -1),
		Up:          rtmath.NewV3(0, 1, 0),
		Width:       400,
		AspectRatio: 1,
		VFov:        45,
		Aperture:    0.5,
	}
	cam := NewCamera(cfg)

	first := cam.Ray(0.5, 0.5, rnd)
	second := cam.Ray(0.5, 0.5, rnd)
	if first.Origin.Sub(second.Origin).Length() == 0 {
		t.Fatal("expected successive samples through a wide aperture to jitter the ray origin")
	}
}

func TestImageHeightDerivedFromAspectRatio(t *testing.T) {
	cam := NewCamera(CameraConfig{Width: 400, AspectRatio: 2.0, VFov: 40, Up: rtmath.NewV3(0, 1, 0), LookAt: rtmath.NewV3(0, 0, -1)})
	if cam.ImageHeight() != 200 {
		t.Fatalf("expected image height 200, got %d", cam.ImageHeight())
	}
}
