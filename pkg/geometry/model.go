package geometry

import (
	"math/rand"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

// Model owns a built BVH over a loaded mesh's triangles (or any shape list)
// and an optional material applied to every triangle that doesn't carry its
// own. A single Model's BVH is shared by reference across every Instance
// placed in a World, so loading a mesh once and placing it many times costs
// one BVH build (spec.md §4.4).
type Model struct {
	bvh      Shape
	Material *material.Material
}

// NewModel builds a Model's BVH over shapes using rnd for axis selection.
func NewModel(shapes []Shape, mat *material.Material, rnd *rand.Rand) *Model {
	return &Model{bvh: NewBVH(shapes, rnd), Material: mat}
}

// BoundingBox returns the model's local-space bounds.
func (m *Model) BoundingBox() AABB {
	if m.bvh == nil {
		return AABB{}
	}
	return m.bvh.BoundingBox()
}

// Hit intersects the model's BVH directly, applying the model-wide material
// override to any hit that didn't specify its own.
func (m *Model) Hit(ray rtmath.Ray, tMin, tMax rtmath.F, rnd *rand.Rand) (*Hit, bool) {
	if m.bvh == nil {
		return nil, false
	}
	hit, ok := m.bvh.Hit(ray, tMin, tMax, rnd)
	if !ok {
		return nil, false
	}
	if hit.Material == nil && m.Material != nil {
		hit.Material = m.Material
	}
	return hit, true
}

// Instance places this model in world space with the given translation,
// rotation (in turns) and scale, sharing the model's BVH by reference.
func (m *Model) Instance(translation, rotationTurns, scale rtmath.V3, materialOverride *material.Material) *Instance {
	return NewInstance(m, translation, rotationTurns, scale, materialOverride)
}
