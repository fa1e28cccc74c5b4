package loaders

import (
	"encoding/binary"
	"fmt"
	"os"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

// LoadSTL streams a binary STL file's triangles into builder. Only the
// binary format is supported; ASCII STL is out of scope for this loader,
// matching original_source's binary-only stl_loader.
func LoadSTL(filename string, builder MeshBuilder) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open STL file: %w", err)
	}
	defer file.Close()

	var header [80]byte
	if _, err := file.Read(header[:]); err != nil {
		return fmt.Errorf("failed to read STL header: %w", err)
	}

	var triangleCount uint32
	if err := binary.Read(file, binary.LittleEndian, &triangleCount); err != nil {
		return fmt.Errorf("failed to read STL triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var raw [12]float32 // normal(3) + 3 vertices(3 each)
		if err := binary.Read(file, binary.LittleEndian, &raw); err != nil {
			return fmt.Errorf("failed to read STL triangle %d: %w", i, err)
		}
		var attrByteCount uint16
		if err := binary.Read(file, binary.LittleEndian, &attrByteCount); err != nil {
			return fmt.Errorf("failed to read STL attribute byte count: %w", err)
		}

		normal := rtmath.NewV3(rtmath.F(raw[0]), rtmath.F(raw[1]), rtmath.F(raw[2]))
		builder.BuildNormal(normal)
		normIdx := i + 1 // 1-based, matches the one normal just emitted for all 3 vertices

		v0 := rtmath.NewV3(rtmath.F(raw[3]), rtmath.F(raw[4]), rtmath.F(raw[5]))
		v1 := rtmath.NewV3(rtmath.F(raw[6]), rtmath.F(raw[7]), rtmath.F(raw[8]))
		v2 := rtmath.NewV3(rtmath.F(raw[9]), rtmath.F(raw[10]), rtmath.F(raw[11]))
		builder.BuildVertex(v0)
		builder.BuildVertex(v1)
		builder.BuildVertex(v2)

		base := int(i)*3 + 1
		builder.BuildFace(
			[3]int{base, base + 1, base + 2},
			[3]int{int(normIdx), int(normIdx), int(normIdx)},
			[3]int{0, 0, 0},
		)
	}
	return nil
}
