package geometry

import (
	"math"
	"math/rand"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

// Volume is a homogeneous participating medium bounded by Boundary. A ray
// passing through samples a stochastic free-flight distance and scatters
// isotropically if that distance falls inside the boundary; otherwise it
// passes through untouched (spec.md §3/§4.4).
type Volume struct {
	Boundary Shape
	Density  rtmath.F
	Phase    *material.Material
}

// NewVolume creates a Volume. Phase is typically material.NewIsotropic.
func NewVolume(boundary Shape, density rtmath.F, phase *material.Material) *Volume {
	return &Volume{Boundary: boundary, Density: density, Phase: phase}
}

// BoundingBox returns the boundary shape's bounds.
func (v *Volume) BoundingBox() AABB { return v.Boundary.BoundingBox() }

// Hit finds the ray's entry and exit through the boundary, then samples a
// free-flight distance d = ln(u) * (-1/density) for u uniform in (0,1]. If
// the sampled distance lands inside [entry, exit] the ray scatters there
// with an arbitrary normal and front_face forced true; otherwise the volume
// reports a miss (spec.md §4.4).
func (v *Volume) Hit(ray rtmath.Ray, tMin, tMax rtmath.F, rnd *rand.Rand) (*Hit, bool) {
	entryHit, ok := v.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), rnd)
	if !ok {
		return nil, false
	}

	exitHit, ok := v.Boundary.Hit(ray, entryHit.T+0.0001, math.Inf(1), rnd)
	if !ok {
		return nil, false
	}

	entryT := entryHit.T
	if entryT < tMin {
		entryT = tMin
	}
	exitT := exitHit.T
	if exitT > tMax {
		exitT = tMax
	}
	if entryT >= exitT {
		return nil, false
	}

	rayLength := ray.Direction.Length()
	distanceInside := (exitT - entryT) * rayLength

	u := rnd.Float64()
	for u <= 0 {
		u = rnd.Float64()
	}
	hitDistance := math.Log(1/u) * (1 / v.Density)
	if hitDistance > distanceInside {
		return nil, false
	}

	t := entryT + hitDistance/rayLength
	hit := &Hit{
		Point:     ray.At(t),
		T:         t,
		Normal:    rtmath.NewV3(1, 0, 0),
		FrontFace: true,
		Material:  v.Phase,
	}
	return hit, true
}
