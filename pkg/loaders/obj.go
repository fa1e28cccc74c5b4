package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// MeshBuilder receives callbacks while an OBJ/PLY/STL/glTF file is parsed,
// letting the caller construct whatever geometry representation it wants
// (Triangle list, Model, etc.) without the loader knowing about it.
type MeshBuilder interface {
	BuildVertex(p rtmath.V3)
	BuildNormal(n rtmath.V3)
	BuildUV(uv rtmath.V2)
	// BuildFace is called once per triangle with 1-based indices into the
	// vertex/normal/uv streams seen so far; an index of 0 means "absent".
	BuildFace(v, n, uv [3]int)
	// IncludeGroup reports whether faces in the named `g`/`o` group should
	// be kept. Loaders that don't support groups never call it.
	IncludeGroup(name string) bool
}

// LoadOBJ streams a Wavefront OBJ file's vertices, normals, texture
// coordinates and triangulated faces into builder. Faces with more than 3
// vertices are fan-triangulated around the first vertex.
func LoadOBJ(filename string, builder MeshBuilder) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	include := true
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return err
			}
			builder.BuildVertex(p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return err
			}
			builder.BuildNormal(n)
		case "vt":
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return err
			}
			builder.BuildUV(uv)
		case "g", "o":
			name := ""
			if len(fields) > 1 {
				name = fields[1]
			}
			include = builder.IncludeGroup(name)
		case "f":
			if !include {
				continue
			}
			if err := emitFace(fields[1:], builder); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func parseVec3(fields []string) (rtmath.V3, error) {
	if len(fields) < 3 {
		return rtmath.V3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return rtmath.V3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return rtmath.V3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return rtmath.V3{}, err
	}
	return rtmath.NewV3(x, y, z), nil
}

func parseVec2(fields []string) (rtmath.V2, error) {
	if len(fields) < 2 {
		return rtmath.V2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return rtmath.V2{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return rtmath.V2{}, err
	}
	return rtmath.NewV2(x, y), nil
}

// objIndex parses a single "v/vt/n" face token, where vt and n are optional.
func objIndex(token string) (v, vt, vn int, err error) {
	parts := strings.Split(token, "/")
	v, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	if len(parts) > 1 && parts[1] != "" {
		vt, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, 0, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		vn, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return v, vt, vn, nil
}

func emitFace(tokens []string, builder MeshBuilder) error {
	if len(tokens) < 3 {
		return fmt.Errorf("face has fewer than 3 vertices")
	}
	vIdx := make([]int, len(tokens))
	uvIdx := make([]int, len(tokens))
	nIdx := make([]int, len(tokens))
	for i, tok := range tokens {
		v, vt, vn, err := objIndex(tok)
		if err != nil {
			return fmt.Errorf("bad face token %q: %w", tok, err)
		}
		vIdx[i], uvIdx[i], nIdx[i] = v, vt, vn
	}

	// Fan-triangulate polygons with more than 3 vertices around vertex 0.
	for i := 1; i < len(tokens)-1; i++ {
		builder.BuildFace(
			[3]int{vIdx[0], vIdx[i], vIdx[i+1]},
			[3]int{nIdx[0], nIdx[i], nIdx[i+1]},
			[3]int{uvIdx[0], uvIdx[i], uvIdx[i+1]},
		)
	}
	return nil
}
