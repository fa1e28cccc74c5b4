package geometry

import (
	"math/rand"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

// Hit is an intersection record: point, shading normal (unit-length,
// oriented toward the incoming side), optional UV, parameter t, front-face
// flag, and the material hit (spec.md §3).
type Hit struct {
	Point     rtmath.V3
	Normal    rtmath.V3
	UV        rtmath.V2
	HasUV     bool
	T         rtmath.F
	FrontFace bool
	Material  *material.Material
}

// SetFaceNormal orients the normal against the incoming ray and records
// FrontFace, per spec.md §3's Hit invariant.
func (h *Hit) SetFaceNormal(ray rtmath.Ray, outwardNormal rtmath.V3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is implemented by every intersectable: primitives, instances, and
// volumes.
type Shape interface {
	Hit(ray rtmath.Ray, tMin, tMax rtmath.F, rnd *rand.Rand) (*Hit, bool)
	BoundingBox() AABB
}
