package wiremesh

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTriangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func quietOBJOptions() *OBJLoadOptions {
	options := DefaultOBJLoadOptions()
	options.Logger = log.New(&bytes.Buffer{}, "", 0)
	return options
}

func meshesEqual(a, b *Mesh) bool {
	if len(a.Triangles) != len(b.Triangles) {
		return false
	}
	for i := range a.Triangles {
		if a.Triangles[i] != b.Triangles[i] {
			return false
		}
	}
	return true
}

func TestLoadOBJSingleTriangle(t *testing.T) {

	mesh, err := LoadOBJData([]byte(testTriangleOBJ), nil)
	if err != nil {
		t.Fatal(err)
	}

	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}

	want := Triangle{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	if mesh.Triangles[0] != want {
		t.Errorf("triangle = %v, want %v", mesh.Triangles[0], want)
	}

}

func TestLoadOBJDecimalComma(t *testing.T) {

	mesh, err := LoadOBJData([]byte("v 1,5 2,5 3,5\nv 0 0 0\nv 1 1 1\nf 1 2 3\n"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}

	if got := mesh.Triangles[0][0]; got != (Vector3{1.5, 2.5, 3.5}) {
		t.Errorf("vertex = %v, want {1.5, 2.5, 3.5}", got)
	}

}

func TestLoadOBJMixedDecimalSeparators(t *testing.T) {

	mesh, err := LoadOBJData([]byte("v 0.25 0,5 -1,75\nv 0 0 0\nv 1 1 1\nf 1 2 3\n"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := mesh.Triangles[0][0]; got != (Vector3{0.25, 0.5, -1.75}) {
		t.Errorf("vertex = %v, want {0.25, 0.5, -1.75}", got)
	}

}

func TestLoadOBJMalformedLines(t *testing.T) {

	clean, err := LoadOBJData([]byte(testTriangleOBJ), nil)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.SplitAfter(testTriangleOBJ, "\n")

	junk := []string{
		"garbage text\n",
		"v 1 2\n",
		"v a b c\n",
		"f 1 2\n",
		"f x y z\n",
		"vt 0.5 0.5 0.5\n",
		"vn 0 0 1\n",
		"# comment line here\n",
		"\n",
	}

	for _, j := range junk {
		for pos := 0; pos <= len(lines); pos++ {

			withJunk := strings.Join(lines[:pos], "") + j + strings.Join(lines[pos:], "")

			mesh, err := LoadOBJData([]byte(withJunk), nil)
			if err != nil {
				t.Fatalf("%q at line %d: %v", j, pos, err)
			}

			if !meshesEqual(mesh, clean) {
				t.Errorf("%q at line %d changed the mesh: %v", j, pos, mesh.Triangles)
			}

		}
	}

}

func TestLoadOBJFaceTokens(t *testing.T) {

	tests := []struct {
		name string
		face string
	}{
		{"plain", "f 1 2 3"},
		{"uv", "f 1/1 2/2 3/3"},
		{"normal", "f 1//1 2//2 3//3"},
		{"uv and normal", "f 1/4/1 2/5/2 3/6/3"},
		{"quad uses first three", "f 1 2 3 1"},
		{"tabs", "f\t1\t2\t3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mesh, err := LoadOBJData([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\n"+tc.face+"\n"), nil)
			if err != nil {
				t.Fatal(err)
			}
			if mesh.TriangleCount() != 1 {
				t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
			}
			if mesh.Triangles[0] != (Triangle{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}) {
				t.Errorf("triangle = %v", mesh.Triangles[0])
			}
		})
	}

}

func TestLoadOBJCRLF(t *testing.T) {

	mesh, err := LoadOBJData([]byte(strings.ReplaceAll(testTriangleOBJ, "\n", "\r\n")), nil)
	if err != nil {
		t.Fatal(err)
	}

	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}

}

func TestLoadOBJLongLine(t *testing.T) {

	data := "v 0 0 0\nv 1 0 0\nv 0 1 0\n# " + strings.Repeat("x", 70000) + "\nf 1 2 3\n"

	mesh, err := LoadOBJData([]byte(data), nil)
	if err != nil {
		t.Fatal(err)
	}

	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}

}

func TestLoadOBJFaceOrder(t *testing.T) {

	data := "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 0 0 1\nf 1 2 3\nf 4 3 2\nf 2 4 1\n"

	mesh, err := LoadOBJData([]byte(data), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []Triangle{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}},
		{{1, 0, 0}, {0, 0, 1}, {0, 0, 0}},
	}

	if !meshesEqual(mesh, &Mesh{Triangles: want}) {
		t.Errorf("triangles = %v, want %v", mesh.Triangles, want)
	}

}

func TestLoadOBJOutOfRangeFaceSkipped(t *testing.T) {

	logOutput := &bytes.Buffer{}
	options := DefaultOBJLoadOptions()
	options.Logger = log.New(logOutput, "", 0)

	// A face can only refer to vertices declared before it.
	data := "v 0 0 0\nv 1 0 0\nf 1 2 3\nv 0 1 0\nf 1 2 3\nf 0 1 2\nf 1 2 9\n"

	mesh, err := LoadOBJData([]byte(data), options)
	if err != nil {
		t.Fatal(err)
	}

	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}

	if !strings.Contains(logOutput.String(), "line 3") || !strings.Contains(logOutput.String(), "line 7") {
		t.Errorf("expected warnings for lines 3 and 7, got %q", logOutput.String())
	}

}

func TestLoadOBJOutOfRangeFaceStrict(t *testing.T) {

	options := quietOBJOptions()
	options.StrictFaceIndices = true

	mesh, err := LoadOBJData([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"), options)

	if !errors.Is(err, ErrFaceIndexOutOfRange) {
		t.Fatalf("expected ErrFaceIndexOutOfRange, got %v", err)
	}

	if mesh != nil {
		t.Error("expected no mesh from a failed load")
	}

}

func TestLoadOBJFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "tri.obj")

	if err := os.WriteFile(path, []byte(testTriangleOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadOBJFile(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	if mesh.Name != "tri" {
		t.Errorf("mesh name = %q, want %q", mesh.Name, "tri")
	}

	if mesh.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", mesh.TriangleCount())
	}

}

func TestLoadOBJFileMissing(t *testing.T) {

	mesh, err := LoadOBJFile(filepath.Join(t.TempDir(), "nope.obj"), nil)

	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}

	if mesh != nil {
		t.Error("expected no mesh for a missing file")
	}

}

func TestMeshBounds(t *testing.T) {

	lo, hi := NewCube(2).Bounds()

	if lo != (Vector3{-2, -2, -2}) || hi != (Vector3{2, 2, 2}) {
		t.Errorf("bounds = %v, %v", lo, hi)
	}

	lo, hi = NewMesh("empty").Bounds()
	if lo != (Vector3{}) || hi != (Vector3{}) {
		t.Errorf("empty bounds = %v, %v", lo, hi)
	}

}

func BenchmarkLoadOBJData(b *testing.B) {

	data := &bytes.Buffer{}
	for i := 0; i < 1000; i++ {
		data.WriteString("v 1.5 -2.25 3.125\n")
	}
	for i := 1; i < 998; i++ {
		data.WriteString("f 1 2 3\n")
	}

	b.ReportAllocs()
	b.SetBytes(int64(data.Len()))

	for i := 0; i < b.N; i++ {
		if _, err := LoadOBJData(data.Bytes(), nil); err != nil {
			b.Fatal(err)
		}
	}

}
