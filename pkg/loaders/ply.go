package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// plyProperty is one "property <type> <name>" or
// "property list <count-type> <type> <name>" header line.
type plyProperty struct {
	name     string
	isList   bool
	listType string
	dataType string
}

type plyHeader struct {
	binary           bool
	bigEndian        bool
	vertexCount      int
	faceCount        int
	vertexProps      []plyProperty
	xIdx, yIdx, zIdx int
	nxIdx, nyIdx     int
	nzIdx            int
	hasNormals       bool
	uIdx, vIdx       int
	hasUV            bool
}

// LoadPLY streams a Stanford PLY file's vertex positions, normals (if
// present), texture coordinates (if present) and triangulated faces into
// builder. Both ASCII and binary_little_endian/binary_big_endian formats
// are supported.
func LoadPLY(filename string, builder MeshBuilder) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	header, err := parsePLYHeader(reader)
	if err != nil {
		return fmt.Errorf("failed to parse PLY header: %w", err)
	}

	if header.binary {
		return loadPLYBinary(reader, header, builder)
	}
	return loadPLYASCII(reader, header, builder)
}

func parsePLYHeader(r *bufio.Reader) (*plyHeader, error) {
	h := &plyHeader{xIdx: -1, yIdx: -1, zIdx: -1, nxIdx: -1, nyIdx: -1, nzIdx: -1, uIdx: -1, vIdx: -1}

	line, err := r.ReadString('\n')
	if err != nil || strings.TrimSpace(line) != "ply" {
		return nil, fmt.Errorf("not a PLY file")
	}

	var currentElement string
	var propIdx int

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "format":
			h.binary = strings.Contains(fields[1], "binary")
			h.bigEndian = fields[1] == "binary_big_endian"
		case "comment":
			continue
		case "element":
			currentElement = fields[1]
			count, _ := strconv.Atoi(fields[2])
			if currentElement == "vertex" {
				h.vertexCount = count
				propIdx = 0
			} else if currentElement == "face" {
				h.faceCount = count
			}
		case "property":
			if currentElement != "vertex" {
				continue
			}
			if fields[1] == "list" {
				continue // face index lists handled positionally
			}
			name := fields[len(fields)-1]
			h.vertexProps = append(h.vertexProps, plyProperty{name: name, dataType: fields[1]})
			switch name {
			case "x":
				h.xIdx = propIdx
			case "y":
				h.yIdx = propIdx
			case "z":
				h.zIdx = propIdx
			case "nx":
				h.nxIdx, h.hasNormals = propIdx, true
			case "ny":
				h.nyIdx = propIdx
			case "nz":
				h.nzIdx = propIdx
			case "u", "s":
				h.uIdx, h.hasUV = propIdx, true
			case "v", "t":
				h.vIdx = propIdx
			}
			propIdx++
		case "end_header":
			return h, nil
		}
	}
}

func loadPLYASCII(r *bufio.Reader, h *plyHeader, builder MeshBuilder) error {
	for i := 0; i < h.vertexCount; i++ {
		line, err := r.ReadString('\n')
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		vals := make([]float64, len(fields))
		for j, f := range fields {
			vals[j], _ = strconv.ParseFloat(f, 64)
		}
		emitVertex(h, vals, builder)
	}

	for i := 0; i < h.faceCount; i++ {
		line, err := r.ReadString('\n')
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		n, _ := strconv.Atoi(fields[0])
		idx := make([]int, n)
		for j := 0; j < n; j++ {
			v, _ := strconv.Atoi(fields[j+1])
			idx[j] = v + 1 // PLY indices are 0-based; MeshBuilder expects 1-based
		}
		emitFacePLY(idx, builder)
	}
	return nil
}

func loadPLYBinary(r *bufio.Reader, h *plyHeader, builder MeshBuilder) error {
	var order binary.ByteOrder = binary.LittleEndian
	if h.bigEndian {
		order = binary.BigEndian
	}

	for i := 0; i < h.vertexCount; i++ {
		vals := make([]float64, len(h.vertexProps))
		for j, p := range h.vertexProps {
			v, err := readPLYScalar(r, order, p.dataType)
			if err != nil {
				return err
			}
			vals[j] = v
		}
		emitVertex(h, vals, builder)
	}

	for i := 0; i < h.faceCount; i++ {
		var count uint8
		if err := binary.Read(r, order, &count); err != nil {
			return err
		}
		idx := make([]int, count)
		for j := 0; j < int(count); j++ {
			var v int32
			if err := binary.Read(r, order, &v); err != nil {
				return err
			}
			idx[j] = int(v) + 1
		}
		emitFacePLY(idx, builder)
	}
	return nil
}

func readPLYScalar(r io.Reader, order binary.ByteOrder, dataType string) (float64, error) {
	switch dataType {
	case "float", "float32":
		var v float32
		if err := binary.Read(r, order, &v); err != nil {
			return 0, err
		}
		return float64(v), nil
	case "double", "float64":
		var v float64
		if err := binary.Read(r, order, &v); err != nil {
			return 0, err
		}
		return v, nil
	case "uchar", "uint8":
		var v uint8
		if err := binary.Read(r, order, &v); err != nil {
			return 0, err
		}
		return float64(v), nil
	case "int", "int32":
		var v int32
		if err := binary.Read(r, order, &v); err != nil {
			return 0, err
		}
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unsupported PLY scalar type %q", dataType)
	}
}

func emitVertex(h *plyHeader, vals []float64, builder MeshBuilder) {
	get := func(idx int) rtmath.F {
		if idx < 0 || idx >= len(vals) {
			return 0
		}
		return vals[idx]
	}
	builder.BuildVertex(rtmath.NewV3(get(h.xIdx), get(h.yIdx), get(h.zIdx)))
	if h.hasNormals {
		builder.BuildNormal(rtmath.NewV3(get(h.nxIdx), get(h.nyIdx), get(h.nzIdx)))
	}
	if h.hasUV {
		builder.BuildUV(rtmath.NewV2(get(h.uIdx), get(h.vIdx)))
	}
}

func emitFacePLY(idx []int, builder MeshBuilder) {
	for i := 1; i < len(idx)-1; i++ {
		vtx := [3]int{idx[0], idx[i], idx[i+1]}
		var norms, uvs [3]int
		builder.BuildFace(vtx, norms, uvs)
	}
}
