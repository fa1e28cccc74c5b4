package geometry

import (
	"math/rand"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

// Instance wraps an inner Shape (typically a Model's BVH) with a forward and
// inverse transform, letting the same geometry be placed multiple times in a
// World without duplicating its BVH (spec.md §4.4).
type Instance struct {
	Inner           Shape
	Forward, Inverse rtmath.M4
	bounds          AABB
	MaterialOverride *material.Material
}

// NewInstance builds an Instance from a translation, rotation (in turns),
// and scale, deriving the world-space bounding box from the 8 transformed
// corners of the inner shape's local bounds.
func NewInstance(inner Shape, translation, rotationTurns, scale rtmath.V3, materialOverride *material.Material) *Instance {
	forward, inverse := rtmath.Transform4(translation, rotationTurns, scale)
	return newInstance(inner, forward, inverse, materialOverride)
}

func newInstance(inner Shape, forward, inverse rtmath.M4, materialOverride *material.Material) *Instance {
	local := inner.BoundingBox()
	corners := local.Corners()

	worldMin := forward.TransformPoint(corners[0])
	worldMax := worldMin
	for _, c := range corners[1:] {
		p := forward.TransformPoint(c)
		worldMin = worldMin.Min(p)
		worldMax = worldMax.Max(p)
	}

	return &Instance{
		Inner:            inner,
		Forward:          forward,
		Inverse:          inverse,
		bounds:           NewAABB(worldMin, worldMax),
		MaterialOverride: materialOverride,
	}
}

// BoundingBox returns the instance's world-space bounds.
func (i *Instance) BoundingBox() AABB { return i.bounds }

// Hit transforms the ray into the instance's local space by the inverse
// transform, intersects the inner shape, then transforms the resulting hit
// back into world space (spec.md §4.4).
func (i *Instance) Hit(ray rtmath.Ray, tMin, tMax rtmath.F, rnd *rand.Rand) (*Hit, bool) {
	localOrigin := i.Inverse.TransformPoint(ray.Origin)
	localDir := i.Inverse.TransformVector(ray.Direction)
	localRay := rtmath.NewRay(localOrigin, localDir)

	hit, ok := i.Inner.Hit(localRay, tMin, tMax, rnd)
	if !ok {
		return nil, false
	}

	hit.Point = i.Forward.TransformPoint(hit.Point)
	worldNormal := i.Inverse.TransformNormal(hit.Normal).Unit()
	hit.SetFaceNormal(ray, worldNormal)

	if i.MaterialOverride != nil {
		hit.Material = i.MaterialOverride
	}
	return hit, true
}
