package scene

import (
	"math/rand"

	"github.com/ravelin-labs/pathtracer/pkg/geometry"
	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
	"github.com/ravelin-labs/pathtracer/pkg/renderer"
	"github.com/ravelin-labs/pathtracer/pkg/texture"
)

// GenerateDefault builds a small showcase scene: a ground sphere, three
// spheres (coated-red Lambertian/Dielectric mix, silver Metal, gold Metal),
// a solid and a hollow glass sphere, a tinted sphere nested inside the
// hollow one, an area light, and a sky background. Adapted from the
// teacher's default scene builder, generalized to the animation_t/frame
// generator contract (spec.md §6).
func GenerateDefault(animationT float64, frame uint32, input Input, rnd *rand.Rand) (*geometry.World, *renderer.Camera, SamplingConfig) {
	width := input.Width
	if width <= 0 {
		width = 400
	}
	aspect := input.AspectRatio
	if aspect <= 0 {
		aspect = 16.0 / 9.0
	}

	cfg := renderer.CameraConfig{
		Center:        rtmath.NewV3(0, 0.75, 2),
		LookAt:        rtmath.NewV3(0, 0.5, -1),
		Up:            rtmath.NewV3(0, 1, 0),
		Width:         width,
		AspectRatio:   aspect,
		VFov:          40,
		Aperture:      0.05,
		FocusDistance: 0,
	}
	if input.CameraOverride != nil {
		cfg = *input.CameraOverride
	}
	cam := renderer.NewCamera(cfg)

	groundAlbedo := texture.NewSolidColor(rtmath.NewV3(0.5, 0.5, 0.5))
	lambertianBlue := material.NewLambertian(texture.NewSolidColor(rtmath.NewV3(0.1, 0.2, 0.5)))
	metalSilver := material.NewMetal(texture.NewSolidColor(rtmath.NewV3(0.8, 0.8, 0.8)), 0.0)
	metalGold := material.NewMetal(texture.NewSolidColor(rtmath.NewV3(0.8, 0.6, 0.2)), 0.3)
	glass := material.NewDielectric(1.5)
	coatedRed := material.NewMix(0.5,
		material.NewLambertian(texture.NewSolidColor(rtmath.NewV3(0.65, 0.25, 0.2))),
		glass,
	)

	shapes := []geometry.Shape{
		geometry.NewSphere(rtmath.NewV3(0, -1000, -1), 1000, material.NewLambertian(groundAlbedo)),
		geometry.NewSphere(rtmath.NewV3(0, 0.5, -1), 0.5, coatedRed),
		geometry.NewSphere(rtmath.NewV3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(rtmath.NewV3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(rtmath.NewV3(-0.5, 0.25, -0.5), 0.25, glass),
		geometry.NewSphere(rtmath.NewV3(-0.5, 0.25, -0.5), -0.24, glass),
		geometry.NewSphere(rtmath.NewV3(-0.5, 0.25, -0.5), 0.20, lambertianBlue),
		geometry.NewSphere(rtmath.NewV3(30, 30.5, 15), 10, material.NewDiffuseLight(rtmath.NewV3(15, 14, 13))),
	}

	nebula := texture.NewNoise(1, 2.5, rtmath.NewV3(0.05, 0.05, 0.12), rtmath.NewV3(0.6, 0.72, 0.95))
	background := material.NewSkySphereBackground(nebula)
	world := geometry.NewWorld(shapes, background)
	world.BuildBVH(rnd)

	return world, cam, SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50}
}
