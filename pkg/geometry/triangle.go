package geometry

import (
	"math/rand"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

// Triangle is a three-vertex primitive with per-vertex normals, optional
// per-vertex UVs, and a precomputed tangent frame derived from UV
// gradients (spec.md §3/§4.4).
type Triangle struct {
	A, B, C          rtmath.V3
	NA, NB, NC       rtmath.V3
	UVA, UVB, UVC    rtmath.V2
	HasUV            bool
	Tangent          rtmath.V3
	Bitangent        rtmath.V3
	Material         *material.Material
}

// NewTriangle creates a triangle, precomputing its tangent/bitangent from
// the UV gradients when UVs are supplied.
func NewTriangle(a, b, c, na, nb, nc rtmath.V3, hasUV bool, uvA, uvB, uvC rtmath.V2, mat *material.Material) *Triangle {
	t := &Triangle{
		A: a, B: b, C: c,
		NA: na, NB: nb, NC: nc,
		HasUV: hasUV, UVA: uvA, UVB: uvB, UVC: uvC,
		Material: mat,
	}
	if hasUV {
		t.Tangent, t.Bitangent = computeTangentFrame(a, b, c, uvA, uvB, uvC)
	}
	return t
}

// computeTangentFrame derives (T, B) from UV gradients per spec.md §4.4:
// abΔ=uvB-uvA, acΔ=uvC-uvA, r=clamp(1/(abΔ.x·acΔ.y - abΔ.y·acΔ.x), -1, 1).
func computeTangentFrame(a, b, c rtmath.V3, uvA, uvB, uvC rtmath.V2) (tangent, bitangent rtmath.V3) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	abD := uvB.Sub(uvA)
	acD := uvC.Sub(uvA)

	denom := abD.X*acD.Y - abD.Y*acD.X
	r := rtmath.F(0)
	if denom != 0 {
		r = 1 / denom
	}
	if r < -1 {
		r = -1
	}
	if r > 1 {
		r = 1
	}

	tangent = ab.Multiply(acD.Y).Sub(ac.Multiply(abD.Y)).Multiply(r)
	bitangent = ac.Multiply(abD.X).Sub(ab.Multiply(acD.X)).Multiply(r)
	return tangent, bitangent
}

const triangleEpsilon = 1e-8

// Hit implements the Möller–Trumbore intersection test (spec.md §4.4).
func (t *Triangle) Hit(ray rtmath.Ray, tMin, tMax rtmath.F, rnd *rand.Rand) (*Hit, bool) {
	edge1 := t.B.Sub(t.A)
	edge2 := t.C.Sub(t.A)
	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return nil, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Sub(t.A)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	tt := edge2.Dot(qvec) * invDet
	if tt < tMin || tt > tMax {
		return nil, false
	}

	a0 := 1 - u - v // weight on vertex A
	a1 := u         // weight on vertex B
	a2 := v         // weight on vertex C

	shadingNormal := t.NA.Multiply(a0).Add(t.NB.Multiply(a1)).Add(t.NC.Multiply(a2))

	hit := &Hit{Point: ray.At(tt), T: tt, Material: t.Material}

	var uv rtmath.V2
	if t.HasUV {
		uv = rtmath.V2{
			X: t.UVA.X*a0 + t.UVB.X*a1 + t.UVC.X*a2,
			Y: t.UVA.Y*a0 + t.UVB.Y*a1 + t.UVC.Y*a2,
		}
		hit.UV = uv
		hit.HasUV = true

		if t.Material != nil {
			if !t.Material.AlphaTest(material.Hit{UV: uv, HasUV: true}, rnd) {
				return nil, false
			}
			if perturb, ok := t.Material.Normal(material.Hit{UV: uv, HasUV: true}, rnd); ok {
				shadingNormal = t.Tangent.Multiply(perturb.X).
					Add(t.Bitangent.Multiply(perturb.Y)).
					Add(shadingNormal.Multiply(perturb.Z)).Unit()
			}
		}
	}

	hit.SetFaceNormal(ray, shadingNormal.Unit())
	return hit, true
}

// BoundingBox returns the triangle's axis-aligned bounds.
func (t *Triangle) BoundingBox() AABB {
	min := t.A.Min(t.B).Min(t.C)
	max := t.A.Max(t.B).Max(t.C)
	// Degenerate (axis-aligned) triangles would otherwise produce a
	// zero-thickness box along one axis; every leaf must have a valid
	// bounding box for BVH construction (spec.md §7).
	const epsilon = 1e-6
	pad := rtmath.NewV3(epsilon, epsilon, epsilon)
	return NewAABB(min.Sub(pad), max.Add(pad))
}
