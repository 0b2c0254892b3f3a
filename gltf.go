package wiremesh

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoTriangles is returned by the glTF loaders when the document holds no mesh primitive made of triangles.
var ErrNoTriangles = errors.New("no triangle primitive found")

// LoadGLTFFile loads a triangle Mesh from a .gltf or .glb file. Only the first triangle-list primitive of the first mesh that
// has one is read, and only vertex positions are used; materials, normals, animations, and the node hierarchy are ignored.
func LoadGLTFFile(path string) (*Mesh, error) {

	doc, err := gltf.Open(path)

	if err != nil {
		return nil, fmt.Errorf("loading mesh %q: %w", path, err)
	}

	mesh, err := meshFromGLTF(doc)
	if err != nil {
		return nil, fmt.Errorf("loading mesh %q: %w", path, err)
	}

	return mesh, nil

}

// LoadGLTFData loads a triangle Mesh from .gltf or .glb data held in memory. See LoadGLTFFile.
func LoadGLTFData(data []byte) (*Mesh, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, err
	}

	return meshFromGLTF(doc)

}

func meshFromGLTF(doc *gltf.Document) (*Mesh, error) {

	for _, gltfMesh := range doc.Meshes {

		for _, prim := range gltfMesh.Primitives {

			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posAccessor, exists := prim.Attributes[gltf.POSITION]
			if !exists {
				continue
			}

			posBuffer := [][3]float32{}
			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)

			if err != nil {
				return nil, err
			}

			var indices []uint32

			if prim.Indices != nil {

				indexBuffer := []uint32{}

				indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], indexBuffer)

				if err != nil {
					return nil, err
				}

			} else {
				indices = make([]uint32, len(vertPos))
				for i := range indices {
					indices[i] = uint32(i)
				}
			}

			mesh := NewMesh(gltfMesh.Name)

			for i := 0; i+2 < len(indices); i += 3 {

				if int(indices[i]) >= len(vertPos) || int(indices[i+1]) >= len(vertPos) || int(indices[i+2]) >= len(vertPos) {
					return nil, fmt.Errorf("triangle %d: %w", i/3, ErrFaceIndexOutOfRange)
				}

				p0 := vertPos[indices[i]]
				p1 := vertPos[indices[i+1]]
				p2 := vertPos[indices[i+2]]

				mesh.Triangles = append(mesh.Triangles, NewTriangle(
					Vector3{X: p0[0], Y: p0[1], Z: p0[2]},
					Vector3{X: p1[0], Y: p1[1], Z: p1[2]},
					Vector3{X: p2[0], Y: p2[1], Z: p2[2]},
				))

			}

			return mesh, nil

		}

	}

	return nil, ErrNoTriangles

}
