// Package scene implements the scene generator contract from spec.md §6:
// generate(animationT, frame, input, rnd) -> (World, Camera,
// SamplingConfig). Each generator calls World.BuildBVH before returning;
// the core never inspects scene contents and only uses what is returned.
package scene

import (
	"math/rand"

	"github.com/ravelin-labs/pathtracer/pkg/geometry"
	"github.com/ravelin-labs/pathtracer/pkg/renderer"
)

// Input carries generator-specific overrides (resolution, camera tweaks)
// that a caller may supply; generators are free to ignore fields they
// don't use.
type Input struct {
	Width           int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	CameraOverride  *renderer.CameraConfig
}

// Generator builds a World and Camera for a given animation time in [0,1]
// and frame number. Implementations own every material, texture, and
// primitive they place.
type Generator func(animationT float64, frame uint32, input Input, rnd *rand.Rand) (*geometry.World, *renderer.Camera, SamplingConfig)

// SamplingConfig carries the per-scene defaults for sample count and path
// depth; a generator returns one alongside its World/Camera so callers
// don't need scene-specific knowledge to drive the render loop.
type SamplingConfig struct {
	SamplesPerPixel int
	MaxDepth        int
}

// Registry maps a scene name (as selected from the CLI) to its generator,
// following the teacher's createScene-by-name convention.
var Registry = map[string]Generator{
	"default": GenerateDefault,
	"cornell": GenerateCornell,
}
