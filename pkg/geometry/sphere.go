package geometry

import (
	"math"
	"math/rand"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

// Sphere is a primitive centered at Center with the given Radius. A
// negative radius is used by hollow-sphere shells to flip the normal
// inward (spec.md §3).
type Sphere struct {
	Center   rtmath.V3
	Radius   rtmath.F
	Material *material.Material
}

// NewSphere creates a sphere primitive.
func NewSphere(center rtmath.V3, radius rtmath.F, mat *material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit solves the ray-sphere quadratic and picks the smaller root in
// [tMin, tMax], falling back to the larger root, else reporting a miss
// (spec.md §4.4).
func (s *Sphere) Hit(ray rtmath.Ray, tMin, tMax rtmath.F, rnd *rand.Rand) (*Hit, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Sub(s.Center).Multiply(1 / s.Radius)
	hit := &Hit{Point: point, T: root, Material: s.Material}
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = sphereUV(outwardNormal)
	hit.HasUV = true
	return hit, true
}

// sphereUV maps a unit outward normal to equirectangular UV coordinates.
func sphereUV(p rtmath.V3) rtmath.V2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return rtmath.NewV2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the sphere's axis-aligned bounds.
func (s *Sphere) BoundingBox() AABB {
	r := math.Abs(s.Radius)
	rad := rtmath.NewV3(r, r, r)
	return NewAABB(s.Center.Sub(rad), s.Center.Add(rad))
}
