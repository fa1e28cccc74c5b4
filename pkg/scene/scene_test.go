package scene

import (
	"math/rand"
	"testing"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

func TestRegistryGeneratorsProduceRenderableScenes(t *testing.T) {
	for name, generate := range Registry {
		t.Run(name, func(t *testing.T) {
			rnd := rand.New(rand.NewSource(1))
			world, cam, sampling := generate(0, 0, Input{}, rnd)

			if world == nil {
				t.Fatal("generator returned a nil World")
			}
			if len(world.Shapes) == 0 {
				t.Fatal("generator returned a World with no shapes")
			}
			if cam == nil {
				t.Fatal("generator returned a nil Camera")
			}
			if cam.ImageWidth() <= 0 || cam.ImageHeight() <= 0 {
				t.Fatalf("camera has non-positive dimensions: %dx%d", cam.ImageWidth(), cam.ImageHeight())
			}
			if sampling.SamplesPerPixel <= 0 {
				t.Fatalf("expected a positive default SamplesPerPixel, got %d", sampling.SamplesPerPixel)
			}
			if sampling.MaxDepth <= 0 {
				t.Fatalf("expected a positive default MaxDepth, got %d", sampling.MaxDepth)
			}

			ray := cam.Ray(0.5, 0.5, rnd)
			if ray.Direction == (rtmath.V3{}) {
				t.Fatal("camera produced a zero-direction primary ray")
			}

			// BuildBVH must have run without panicking, and Intersect must be
			// safe to call even when the central ray misses every shape.
			world.Intersect(ray, 0.001, 1e18, rnd)
		})
	}
}
