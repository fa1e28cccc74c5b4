package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// LoadGLTF opens a .glb or .gltf file and streams every mesh primitive's
// positions, normals, UVs and indices into builder, following the same
// MeshBuilder contract as the OBJ/PLY/STL loaders (spec.md §6). Materials,
// cameras and the node hierarchy are not loaded: scene assembly owns
// placement and material assignment.
func LoadGLTF(path string, builder MeshBuilder) error {
	doc, err := gltf.Open(path)
	if err != nil {
		return fmt.Errorf("gltf open %q: %w", path, err)
	}

	// running counts of vertices, normals and UVs emitted so far, so every
	// primitive's face indices point past the streams of earlier primitives
	var base [3]int
	for meshIdx, mesh := range doc.Meshes {
		for primIdx, prim := range mesh.Primitives {
			if err := loadGLTFPrimitive(doc, builder, prim, &base); err != nil {
				return fmt.Errorf("gltf mesh %d primitive %d: %w", meshIdx, primIdx, err)
			}
		}
	}
	return nil
}

func loadGLTFPrimitive(doc *gltf.Document, builder MeshBuilder, prim *gltf.Primitive, base *[3]int) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	vBase, nBase, uvBase := base[0], base[1], base[2]
	for i, p := range positions {
		builder.BuildVertex(rtmath.NewV3(rtmath.F(p[0]), rtmath.F(p[1]), rtmath.F(p[2])))
		if i < len(normals) {
			n := normals[i]
			builder.BuildNormal(rtmath.NewV3(rtmath.F(n[0]), rtmath.F(n[1]), rtmath.F(n[2])))
		}
		if i < len(uvs) {
			uv := uvs[i]
			builder.BuildUV(rtmath.NewV2(rtmath.F(uv[0]), rtmath.F(uv[1])))
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		for i := range positions {
			indices = append(indices, uint32(i))
		}
	}

	hasNormals := len(normals) > 0
	hasUV := len(uvs) > 0
	for i := 0; i+2 < len(indices); i += 3 {
		idx := [3]int{int(indices[i]) + 1, int(indices[i+1]) + 1, int(indices[i+2]) + 1}
		v := [3]int{vBase + idx[0], vBase + idx[1], vBase + idx[2]}
		var n, uv [3]int
		if hasNormals {
			n = [3]int{nBase + idx[0], nBase + idx[1], nBase + idx[2]}
		}
		if hasUV {
			uv = [3]int{uvBase + idx[0], uvBase + idx[1], uvBase + idx[2]}
		}
		builder.BuildFace(v, n, uv)
	}
	base[0] += len(positions)
	base[1] += min(len(normals), len(positions))
	base[2] += min(len(uvs), len(positions))
	return nil
}
