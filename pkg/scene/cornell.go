package scene

import (
	"math/rand"

	"github.com/ravelin-labs/pathtracer/pkg/geometry"
	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
	"github.com/ravelin-labs/pathtracer/pkg/renderer"
	"github.com/ravelin-labs/pathtracer/pkg/texture"
)

// quad builds a planar quad from four coplanar, counter-clockwise-wound
// corners as two flat-shaded triangles sharing mat.
func quad(a, b, c, d rtmath.V3, mat *material.Material) []geometry.Shape {
	n := b.Sub(a).Cross(c.Sub(a)).Unit()
	t1 := geometry.NewTriangle(a, b, c, n, n, n, false, rtmath.V2{}, rtmath.V2{}, rtmath.V2{}, mat)
	t2 := geometry.NewTriangle(a, c, d, n, n, n, false, rtmath.V2{}, rtmath.V2{}, rtmath.V2{}, mat)
	return []geometry.Shape{t1, t2}
}

// GenerateCornell builds the canonical Cornell box: a 555-unit cube open on
// the camera-facing side, red/green side walls, a white floor/ceiling/back
// wall, a square ceiling light, one instanced tall Lambertian box rotated
// in place, and a glass sphere, adapted from the teacher's
// Cornell-box builder to this module's Instance/Model primitives
// (spec.md §6).
func GenerateCornell(animationT float64, frame uint32, input Input, rnd *rand.Rand) (*geometry.World, *renderer.Camera, SamplingConfig) {
	const size = 555.0

	width := input.Width
	if width <= 0 {
		width = 400
	}

	cfg := renderer.CameraConfig{
		Center:        rtmath.NewV3(278, 278, -800),
		LookAt:        rtmath.NewV3(278, 278, 0),
		Up:            rtmath.NewV3(0, 1, 0),
		Width:         width,
		AspectRatio:   1.0,
		VFov:          40,
		Aperture:      0,
		FocusDistance: 800,
	}
	if input.CameraOverride != nil {
		cfg = *input.CameraOverride
	}
	cam := renderer.NewCamera(cfg)

	red := material.NewLambertian(texture.NewSolidColor(rtmath.NewV3(0.65, 0.05, 0.05)))
	white := material.NewLambertian(texture.NewSolidColor(rtmath.NewV3(0.73, 0.73, 0.73)))
	green := material.NewLambertian(texture.NewSolidColor(rtmath.NewV3(0.12, 0.45, 0.15)))
	light := material.NewDiffuseLight(rtmath.NewV3(15, 15, 15))

	var shapes []geometry.Shape
	// left wall (green, facing -X)
	shapes = append(shapes, quad(
		rtmath.NewV3(size, 0, 0), rtmath.NewV3(size, 0, size),
		rtmath.NewV3(size, size, size), rtmath.NewV3(size, size, 0), green)...)
	// right wall (red, facing +X)
	shapes = append(shapes, quad(
		rtmath.NewV3(0, 0, size), rtmath.NewV3(0, 0, 0),
		rtmath.NewV3(0, size, 0), rtmath.NewV3(0, size, size), red)...)
	// ceiling light
	shapes = append(shapes, quad(
		rtmath.NewV3(343, size-0.01, 332), rtmath.NewV3(213, size-0.01, 332),
		rtmath.NewV3(213, size-0.01, 227), rtmath.NewV3(343, size-0.01, 227), light)...)
	// ceiling
	shapes = append(shapes, quad(
		rtmath.NewV3(size, size, size), rtmath.NewV3(0, size, size),
		rtmath.NewV3(0, size, 0), rtmath.NewV3(size, size, 0), white)...)
	// floor
	shapes = append(shapes, quad(
		rtmath.NewV3(size, 0, size), rtmath.NewV3(size, 0, 0),
		rtmath.NewV3(0, 0, 0), rtmath.NewV3(0, 0, size), white)...)
	// back wall
	shapes = append(shapes, quad(
		rtmath.NewV3(size, 0, size), rtmath.NewV3(0, 0, size),
		rtmath.NewV3(0, size, size), rtmath.NewV3(size, size, size), white)...)

	tallBoxShapes := boxShapes(rtmath.NewV3(-82.5, -165, -82.5), rtmath.NewV3(82.5, 165, 82.5), white)
	tallBox := geometry.NewModel(tallBoxShapes, nil, rnd)
	shapes = append(shapes, tallBox.Instance(
		rtmath.NewV3(368, 165, 351), rtmath.NewV3(0, 0.0417, 0), rtmath.NewV3(1, 1, 1), nil))

	glass := material.NewDielectric(1.5)
	shapes = append(shapes, geometry.NewSphere(rtmath.NewV3(190, 90, 190), 90, glass))

	background := material.NewSolidBackground(rtmath.V3{})
	world := geometry.NewWorld(shapes, background)
	world.BuildBVH(rnd)

	return world, cam, SamplingConfig{SamplesPerPixel: 400, MaxDepth: 50}
}

// boxShapes builds the six quads of an axis-aligned box spanning [min,max],
// all sharing mat, for use as a Model's shape list.
func boxShapes(min, max rtmath.V3, mat *material.Material) []geometry.Shape {
	var shapes []geometry.Shape
	shapes = append(shapes, quad(
		rtmath.NewV3(min.X, min.Y, max.Z), rtmath.NewV3(max.X, min.Y, max.Z),
		rtmath.NewV3(max.X, max.Y, max.Z), rtmath.NewV3(min.X, max.Y, max.Z), mat)...) // front
	shapes = append(shapes, quad(
		rtmath.NewV3(max.X, min.Y, min.Z), rtmath.NewV3(min.X, min.Y, min.Z),
		rtmath.NewV3(min.X, max.Y, min.Z), rtmath.NewV3(max.X, max.Y, min.Z), mat)...) // back
	shapes = append(shapes, quad(
		rtmath.NewV3(max.X, min.Y, max.Z), rtmath.NewV3(max.X, min.Y, min.Z),
		rtmath.NewV3(max.X, max.Y, min.Z), rtmath.NewV3(max.X, max.Y, max.Z), mat)...) // right
	shapes = append(shapes, quad(
		rtmath.NewV3(min.X, min.Y, min.Z), rtmath.NewV3(min.X, min.Y, max.Z),
		rtmath.NewV3(min.X, max.Y, max.Z), rtmath.NewV3(min.X, max.Y, min.Z), mat)...) // left
	shapes = append(shapes, quad(
		rtmath.NewV3(min.X, max.Y, max.Z), rtmath.NewV3(max.X, max.Y, max.Z),
		rtmath.NewV3(max.X, max.Y, min.Z), rtmath.NewV3(min.X, max.Y, min.Z), mat)...) // top
	shapes = append(shapes, quad(
		rtmath.NewV3(min.X, min.Y, min.Z), rtmath.NewV3(max.X, min.Y, min.Z),
		rtmath.NewV3(max.X, min.Y, max.Z), rtmath.NewV3(min.X, min.Y, max.Z), mat)...) // bottom
	return shapes
}
