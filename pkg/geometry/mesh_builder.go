package geometry

import (
	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
	"github.com/ravelin-labs/pathtracer/pkg/material"
)

// TriangleMeshBuilder implements loaders.MeshBuilder, accumulating the
// vertex/normal/UV streams a mesh loader emits and materializing a
// Triangle per BuildFace call. The resulting Triangles slice is handed to
// NewModel once loading finishes (spec.md §6).
type TriangleMeshBuilder struct {
	Material *material.Material

	vertices []rtmath.V3
	normals  []rtmath.V3
	uvs      []rtmath.V2
	included bool

	Triangles []*Triangle
}

// NewTriangleMeshBuilder creates a builder that assigns mat to every
// triangle it constructs.
func NewTriangleMeshBuilder(mat *material.Material) *TriangleMeshBuilder {
	return &TriangleMeshBuilder{Material: mat, included: true}
}

func (b *TriangleMeshBuilder) BuildVertex(p rtmath.V3) { b.vertices = append(b.vertices, p) }
func (b *TriangleMeshBuilder) BuildNormal(n rtmath.V3) { b.normals = append(b.normals, n) }
func (b *TriangleMeshBuilder) BuildUV(uv rtmath.V2)    { b.uvs = append(b.uvs, uv) }

// IncludeGroup keeps every group; callers that want per-group filtering
// should wrap a TriangleMeshBuilder rather than subclass it.
func (b *TriangleMeshBuilder) IncludeGroup(name string) bool { return b.included }

// BuildFace materializes one triangle from 1-based vertex/normal/UV
// indices. A zero index means "absent"; a missing normal is derived from
// the face's winding, a missing UV disables tangent-frame computation.
func (b *TriangleMeshBuilder) BuildFace(v, n, uv [3]int) {
	a, bb, c := b.vertices[v[0]-1], b.vertices[v[1]-1], b.vertices[v[2]-1]

	geomNormal := bb.Sub(a).Cross(c.Sub(a)).Unit()
	na, nb, nc := geomNormal, geomNormal, geomNormal
	if n[0] > 0 && n[1] > 0 && n[2] > 0 {
		na, nb, nc = b.normals[n[0]-1], b.normals[n[1]-1], b.normals[n[2]-1]
	}

	hasUV := uv[0] > 0 && uv[1] > 0 && uv[2] > 0
	var uva, uvb, uvc rtmath.V2
	if hasUV {
		uva, uvb, uvc = b.uvs[uv[0]-1], b.uvs[uv[1]-1], b.uvs[uv[2]-1]
	}

	tri := NewTriangle(a, bb, c, na, nb, nc, hasUV, uva, uvb, uvc, b.Material)
	b.Triangles = append(b.Triangles, tri)
}

// Shapes converts the accumulated triangles into a Shape slice, ready for
// NewBVH or NewModel.
func (b *TriangleMeshBuilder) Shapes() []Shape {
	shapes := make([]Shape, len(b.Triangles))
	for i, t := range b.Triangles {
		shapes[i] = t
	}
	return shapes
}
