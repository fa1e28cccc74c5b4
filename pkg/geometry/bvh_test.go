package geometry

import (
	"math/rand"
	"testing"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

func linearScan(shapes []Shape, ray rtmath.Ray, tMin, tMax rtmath.F, rnd *rand.Rand) (*Hit, bool) {
	var closest *Hit
	closestSoFar := tMax
	for _, s := range shapes {
		if hit, ok := s.Hit(ray, tMin, closestSoFar, rnd); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}
	return closest, closest != nil
}

func TestBVHMatchesLinearScan(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	var shapes []Shape
	for i := 0; i < 30; i++ {
		center := rtmath.NewV3(rnd.Float64()*20-10, rnd.Float64()*20-10, rnd.Float64()*20-10)
		shapes = append(shapes, NewSphere(center, 0.5+rnd.Float64(), nil))
	}
	bvh := NewBVH(shapes, rnd)

	for i := 0; i < 200; i++ {
		origin := rtmath.NewV3(rnd.Float64()*30-15, rnd.Float64()*30-15, rnd.Float64()*30-15)
		dir := rtmath.NewV3(rnd.Float64()*2-1, rnd.Float64()*2-1, rnd.Float64()*2-1).Unit()
		ray := rtmath.NewRay(origin, dir)

		wantHit, wantOK := linearScan(shapes, ray, 0.001, 1e9, rnd)
		gotHit, gotOK := bvh.Hit(ray, 0.001, 1e9, rnd)

		if wantOK != gotOK {
			t.Fatalf("ray %d: linear scan hit=%v, bvh hit=%v", i, wantOK, gotOK)
		}
		if wantOK && (wantHit.T-gotHit.T) > 1e-9 || gotOK && wantOK && (gotHit.T-wantHit.T) > 1e-9 {
			t.Fatalf("ray %d: linear scan t=%v, bvh t=%v", i, wantHit.T, gotHit.T)
		}
	}
}

func TestBVHBoundsContainAllLeaves(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	var shapes []Shape
	for i := 0; i < 12; i++ {
		center := rtmath.NewV3(rnd.Float64()*10, rnd.Float64()*10, rnd.Float64()*10)
		shapes = append(shapes, NewSphere(center, 1, nil))
	}
	bvh := NewBVH(shapes, rnd)
	root := bvh.BoundingBox()

	for _, s := range shapes {
		b := s.BoundingBox()
		if b.Min.X < root.Min.X-1e-9 || b.Min.Y < root.Min.Y-1e-9 || b.Min.Z < root.Min.Z-1e-9 {
			t.Fatalf("leaf box exceeds root min: %+v vs root %+v", b, root)
		}
		if b.Max.X > root.Max.X+1e-9 || b.Max.Y > root.Max.Y+1e-9 || b.Max.Z > root.Max.Z+1e-9 {
			t.Fatalf("leaf box exceeds root max: %+v vs root %+v", b, root)
		}
	}
}
