package geometry

import (
	"math/rand"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

// World is the heterogeneous scene container: a flat list of top-level
// shapes (typically Instances and Volumes, plus loose primitives) bounded
// into a single BVH, and the background sampled on a miss (spec.md §3).
type World struct {
	Shapes     []Shape
	Background *material.Background
	bvh        Shape
}

// NewWorld creates a World from a shape list and a background. Call
// BuildBVH once the shape list is final.
func NewWorld(shapes []Shape, background *material.Background) *World {
	return &World{Shapes: shapes, Background: background}
}

// BuildBVH constructs the top-level BVH over w.Shapes. Must be called
// before Intersect; rnd drives the random axis-selection heuristic.
func (w *World) BuildBVH(rnd *rand.Rand) {
	w.bvh = NewBVH(w.Shapes, rnd)
}

// Intersect finds the closest hit along ray in [tMin, tMax], or reports a
// miss. Before BuildBVH has been called (or for an empty shape list) every
// ray misses.
func (w *World) Intersect(ray rtmath.Ray, tMin, tMax rtmath.F, rnd *rand.Rand) (*Hit, bool) {
	if w.bvh == nil {
		return nil, false
	}
	return w.bvh.Hit(ray, tMin, tMax, rnd)
}

// SampleBackground returns the radiance contributed by a ray that escaped
// the scene entirely.
func (w *World) SampleBackground(ray rtmath.Ray) rtmath.V3 {
	if w.Background == nil {
		return rtmath.V3{}
	}
	return w.Background.Sample(ray)
}
