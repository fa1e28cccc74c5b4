// Package geometry implements the primitive intersection routines, the
// bounding-volume hierarchy, and the heterogeneous World container from
// spec.md §3/§4.4.
package geometry

import (
	"math"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// AABB is an axis-aligned bounding box. Invariant: Min <= Max componentwise.
type AABB struct {
	Min, Max rtmath.V3
}

// NewAABB creates an AABB from two corners.
func NewAABB(min, max rtmath.V3) AABB { return AABB{Min: min, Max: max} }

// Hit tests a ray against the box using the slab method, returning true iff
// the ray's [tMin,tMax] interval overlaps the box.
func (b AABB) Hit(ray rtmath.Ray, tMin, tMax rtmath.F) bool {
	for axis := 0; axis < 3; axis++ {
		minV, maxV, origin, dir := axisComponents(b, ray, axis)

		if math.Abs(dir) < 1e-8 {
			if origin < minV || origin > maxV {
				return false
			}
			continue
		}

		invDir := 1.0 / dir
		t0 := (minV - origin) * invDir
		t1 := (maxV - origin) * invDir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMin > tMax {
			return false
		}
	}
	return true
}

func axisComponents(b AABB, ray rtmath.Ray, axis int) (minV, maxV, origin, dir rtmath.F) {
	switch axis {
	case 0:
		return b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X
	case 1:
		return b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y
	default:
		return b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z
	}
}

// Join returns an AABB that bounds both this AABB and another.
func (b AABB) Join(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Center returns the box's midpoint.
func (b AABB) Center() rtmath.V3 { return b.Min.Add(b.Max).Multiply(0.5) }

// Corners returns all 8 corners of the box, used when transforming an
// instance's bounding box into world space (spec.md §4.4).
func (b AABB) Corners() [8]rtmath.V3 {
	return [8]rtmath.V3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}
