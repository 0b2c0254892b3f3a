package wiremesh

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrFaceIndexOutOfRange is returned by the OBJ loaders in strict mode when a face refers to a vertex that hasn't been declared (yet).
var ErrFaceIndexOutOfRange = errors.New("face index out of range")

// OBJLoadOptions alters how an OBJ file is loaded.
type OBJLoadOptions struct {
	// StrictFaceIndices makes a face that points past the vertex list fail the whole load. When false (the default),
	// the face is dropped, a warning is logged, and loading continues.
	StrictFaceIndices bool
	// Logger receives warnings for dropped faces. If nil, the standard logger is used.
	Logger *log.Logger
}

// DefaultOBJLoadOptions creates an instance of OBJLoadOptions with some sensible defaults.
func DefaultOBJLoadOptions() *OBJLoadOptions {
	return &OBJLoadOptions{
		StrictFaceIndices: false,
	}
}

func (options *OBJLoadOptions) logger() *log.Logger {
	if options.Logger != nil {
		return options.Logger
	}
	return log.Default()
}

// LoadOBJFile loads a triangle Mesh from the OBJ file at the path given. Only "v" and "f" lines are read; other lines,
// and lines that can't be parsed, are skipped. Passing nil for options loads the file using the default options.
// If the file can't be opened, a nil Mesh and the error are returned.
func LoadOBJFile(path string, options *OBJLoadOptions) (*Mesh, error) {

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading mesh %q: %w", path, err)
	}
	defer file.Close()

	mesh, err := LoadOBJ(file, options)
	if err != nil {
		return nil, fmt.Errorf("loading mesh %q: %w", path, err)
	}

	mesh.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return mesh, nil

}

// LoadOBJData loads a triangle Mesh from OBJ data held in memory.
func LoadOBJData(data []byte, options *OBJLoadOptions) (*Mesh, error) {
	return LoadOBJ(bytes.NewReader(data), options)
}

// LoadOBJ loads a triangle Mesh by reading OBJ data from the provided io.Reader.
//
// A "v x y z" line declares a vertex; numbers may use either a decimal point or a decimal comma.
// An "f i j k" line declares a triangle from three 1-based vertex indices (an index may carry "/uv/normal" parts, which are ignored;
// indices past the third are ignored as well). The vertex list only lives for the duration of the load.
func LoadOBJ(r io.Reader, options *OBJLoadOptions) (*Mesh, error) {

	if options == nil {
		options = DefaultOBJLoadOptions()
	}

	mesh := NewMesh("")

	verts := make([]Vector3, 0, 256)

	// Lines have no length limit; the buffer grows from 64KB as needed.
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	lineNumber := 0

	for scanner.Scan() {

		lineNumber++

		fields := strings.Fields(scanner.Text())

		if len(fields) < 4 {
			continue
		}

		switch fields[0] {

		case "v":

			x, okX := parseOBJFloat(fields[1])
			y, okY := parseOBJFloat(fields[2])
			z, okZ := parseOBJFloat(fields[3])

			if okX && okY && okZ {
				verts = append(verts, Vector3{X: x, Y: y, Z: z})
			}

		case "f":

			var indices [3]int
			valid := true

			for i := range indices {
				index, ok := parseOBJIndex(fields[i+1])
				if !ok {
					valid = false
					break
				}
				indices[i] = index
			}

			if !valid {
				continue
			}

			outOfRange := false
			for _, index := range indices {
				if index < 1 || index > len(verts) {
					outOfRange = true
				}
			}

			if outOfRange {
				if options.StrictFaceIndices {
					return nil, fmt.Errorf("line %d: face %v with %d vertices declared: %w", lineNumber, indices, len(verts), ErrFaceIndexOutOfRange)
				}
				options.logger().Printf("wiremesh: skipping face on line %d: indices %v out of range (%d vertices declared)", lineNumber, indices, len(verts))
				continue
			}

			mesh.Triangles = append(mesh.Triangles, NewTriangle(verts[indices[0]-1], verts[indices[1]-1], verts[indices[2]-1]))

		}

	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mesh, nil

}

// parseOBJFloat parses a decimal number, falling back to reading a decimal comma (as written by some locales) if the
// usual decimal point form doesn't parse.
func parseOBJFloat(token string) (float32, bool) {

	if f, err := strconv.ParseFloat(token, 32); err == nil {
		return float32(f), true
	}

	if strings.Count(token, ",") == 1 && !strings.Contains(token, ".") {
		if f, err := strconv.ParseFloat(strings.Replace(token, ",", ".", 1), 32); err == nil {
			return float32(f), true
		}
	}

	return 0, false

}

// parseOBJIndex parses the vertex part of a face element, which can be "i", "i/t", "i//n", or "i/t/n".
func parseOBJIndex(token string) (int, bool) {
	vertexPart, _, _ := strings.Cut(token, "/")
	index, err := strconv.Atoi(vertexPart)
	if err != nil {
		return 0, false
	}
	return index, true
}
