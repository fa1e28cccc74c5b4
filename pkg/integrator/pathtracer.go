// Package integrator implements the recursive unidirectional path tracer
// from spec.md §4.5: trace() for the main pass and albedo_normal() for the
// denoiser's single-bounce auxiliary inputs.
package integrator

import (
	"math/rand"

	"github.com/ravelin-labs/pathtracer/pkg/geometry"
	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

// hitContext adapts a geometry.Hit to the minimal context a material needs.
func hitContext(h *geometry.Hit) material.Hit {
	return material.Hit{
		Point:     h.Point,
		Normal:    h.Normal,
		UV:        h.UV,
		HasUV:     h.HasUV,
		FrontFace: h.FrontFace,
	}
}

// MinT avoids self-intersection at the origin of every traced ray.
const MinT = 0.001

// Trace recursively evaluates the rendering equation along ray, returning
// the accumulated radiance and the remaining depth budget at termination
// (spec.md §4.5). MaxDepth bounds recursion with a hard cutoff, matching
// the expanded spec's carried Non-goal of skipping Russian-roulette
// termination.
func Trace(world *geometry.World, ray rtmath.Ray, depth int, rnd *rand.Rand) (radiance rtmath.V3, remaining int) {
	if depth == 0 {
		return rtmath.V3{}, 0
	}

	hit, ok := world.Intersect(ray, MinT, inf, rnd)
	if !ok {
		return world.SampleBackground(ray), depth
	}

	mat := hit.Material
	if mat == nil {
		mat = material.None
	}

	mhit := hitContext(hit)
	emitted := mat.Emit(mhit, rnd)
	result, scattered := mat.Scatter(ray, mhit, rnd)
	if !scattered {
		return emitted, depth
	}

	childRadiance, childDepth := Trace(world, result.Scattered, depth-1, rnd)
	radiance = childRadiance.MulV(result.Attenuation).Add(emitted)
	return radiance, childDepth
}

// AlbedoNormal performs a single-bounce evaluation for the denoiser's
// auxiliary buffers: the hit material's albedo (or emission, for emitters)
// and its shading normal, or the background color and the zero vector on a
// miss (spec.md §4.5).
func AlbedoNormal(world *geometry.World, ray rtmath.Ray, rnd *rand.Rand) (albedo, normal rtmath.V3) {
	hit, ok := world.Intersect(ray, MinT, inf, rnd)
	if !ok {
		return world.SampleBackground(ray), rtmath.V3{}
	}

	mat := hit.Material
	if mat == nil {
		mat = material.None
	}

	mhit := hitContext(hit)
	if emitted := mat.Emit(mhit, rnd); emitted.Length() > 0 {
		return emitted, hit.Normal
	}
	if result, ok := mat.Scatter(ray, mhit, rnd); ok {
		return result.Attenuation, hit.Normal
	}
	return rtmath.V3{}, hit.Normal
}

// Run wraps Trace into a renderer.TraceFunc-compatible closure with the
// MAX_DEPTH → depth-channel conversion from spec.md §4.5: the recorded
// depth is MAX_DEPTH - remaining_depth.
func Run(world *geometry.World, maxDepth int) func(ray rtmath.Ray, rnd *rand.Rand) (rtmath.V3, uint32) {
	return func(ray rtmath.Ray, rnd *rand.Rand) (rtmath.V3, uint32) {
		radiance, remaining := Trace(world, ray, maxDepth, rnd)
		used := maxDepth - remaining
		if used < 0 {
			used = 0
		}
		return radiance, uint32(used)
	}
}

// AlbedoNormalFuncFor wraps AlbedoNormal into a renderer.AlbedoNormalFunc
// -compatible closure for the pre-render pass.
func AlbedoNormalFuncFor(world *geometry.World) func(ray rtmath.Ray, rnd *rand.Rand) (rtmath.V3, rtmath.V3) {
	return func(ray rtmath.Ray, rnd *rand.Rand) (rtmath.V3, rtmath.V3) {
		return AlbedoNormal(world, ray, rnd)
	}
}

const inf = 1e18
