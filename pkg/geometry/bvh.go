package geometry

import (
	"math/rand"
	"sort"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// BVHNode is a node in the bounding-volume hierarchy: a bounding box plus
// two children, each either another BVHNode or a leaf Shape (spec.md §3).
type BVHNode struct {
	bounds      AABB
	Left, Right Shape
}

// NewBVH recursively builds a BVH over shapes using a randomly chosen
// split axis per node, sorting by that axis's minimum bound and splitting
// at the median (spec.md §4.4). rnd controls axis selection; pass a
// dedicated RNG when building BVHs concurrently from multiple goroutines.
func NewBVH(shapes []Shape, rnd *rand.Rand) Shape {
	switch len(shapes) {
	case 0:
		return nil
	case 1:
		return shapes[0]
	case 2:
		return &BVHNode{
			bounds: shapes[0].BoundingBox().Join(shapes[1].BoundingBox()),
			Left:   shapes[0],
			Right:  shapes[1],
		}
	}

	axis := rnd.Intn(3)
	sorted := make([]Shape, len(shapes))
	copy(sorted, shapes)
	sort.Slice(sorted, func(i, j int) bool {
		return axisMin(sorted[i].BoundingBox(), axis) < axisMin(sorted[j].BoundingBox(), axis)
	})

	mid := len(sorted) / 2
	left := NewBVH(sorted[:mid], rnd)
	right := NewBVH(sorted[mid:], rnd)

	return &BVHNode{
		bounds: left.BoundingBox().Join(right.BoundingBox()),
		Left:   left,
		Right:  right,
	}
}

func axisMin(b AABB, axis int) rtmath.F {
	switch axis {
	case 0:
		return b.Min.X
	case 1:
		return b.Min.Y
	default:
		return b.Min.Z
	}
}

// BoundingBox returns the node's precomputed bounding box (the union of its
// children's boxes).
func (n *BVHNode) BoundingBox() AABB { return n.bounds }

// Hit tests the parent box, then recurses into the left child with the
// caller's [tMin,tMax], then the right child with tMax tightened to any
// left hit's t, returning the closer of the two (spec.md §4.4).
func (n *BVHNode) Hit(ray rtmath.Ray, tMin, tMax rtmath.F, rnd *rand.Rand) (*Hit, bool) {
	if !n.bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var closest *Hit
	closestSoFar := tMax

	if leftHit, ok := n.Left.Hit(ray, tMin, closestSoFar, rnd); ok {
		closest = leftHit
		closestSoFar = leftHit.T
	}
	if rightHit, ok := n.Right.Hit(ray, tMin, closestSoFar, rnd); ok {
		closest = rightHit
	}

	return closest, closest != nil
}
