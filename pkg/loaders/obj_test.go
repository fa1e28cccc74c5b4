package loaders

import (
	"os"
	"testing"

	rtmath "github.com/ravelin-labs/pathtracer/pkg/math"
)

type recordingBuilder struct {
	vertices []rtmath.V3
	normals  []rtmath.V3
	uvs      []rtmath.V2
	faces    [][3]int
}

func (b *recordingBuilder) BuildVertex(p rtmath.V3)          { b.vertices = append(b.vertices, p) }
func (b *recordingBuilder) BuildNormal(n rtmath.V3)          { b.normals = append(b.normals, n) }
func (b *recordingBuilder) BuildUV(uv rtmath.V2)             { b.uvs = append(b.uvs, uv) }
func (b *recordingBuilder) IncludeGroup(name string) bool    { return true }
func (b *recordingBuilder) BuildFace(v, n, uv [3]int) {
	b.faces = append(b.faces, v)
}

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "loader-*.obj")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(contents); err != nil {
		t.Fatal(err)
	}
	f.Close()
	return f.Name()
}

func TestLoadOBJTriangle(t *testing.T) {
	path := writeTempFile(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	b := &recordingBuilder{}
	if err := LoadOBJ(path, b); err != nil {
		t.Fatal(err)
	}
	if len(b.vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(b.vertices))
	}
	if len(b.faces) != 1 || b.faces[0] != [3]int{1, 2, 3} {
		t.Fatalf("expected one triangular face [1 2 3], got %v", b.faces)
	}
}

func TestLoadOBJFanTriangulatesQuad(t *testing.T) {
	path := writeTempFile(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")
	b := &recordingBuilder{}
	if err := LoadOBJ(path, b); err != nil {
		t.Fatal(err)
	}
	if len(b.faces) != 2 {
		t.Fatalf("expected a quad to fan-triangulate into 2 faces, got %d", len(b.faces))
	}
}

func TestLoadOBJSkipsExcludedGroups(t *testing.T) {
	path := writeTempFile(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\ng hidden\nf 1 2 3\n")
	b := &excludingBuilder{}
	if err := LoadOBJ(path, b); err != nil {
		t.Fatal(err)
	}
	if len(b.faces) != 0 {
		t.Fatalf("expected excluded group's faces to be skipped, got %d", len(b.faces))
	}
}

type excludingBuilder struct {
	recordingBuilder
}

func (b *excludingBuilder) IncludeGroup(name string) bool { return name != "hidden" }
