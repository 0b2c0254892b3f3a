package wiremesh

// Triangle is an ordered set of exactly three vertices; the order is the triangle's winding.
type Triangle [3]Vector3

// NewTriangle returns a Triangle composed of the three vertices given, in order.
func NewTriangle(v0, v1, v2 Vector3) Triangle {
	return Triangle{v0, v1, v2}
}

// Flatten returns the Triangle's vertices as a flat [x1, y1, z1, x2, y2, z2, x3, y3, z3] slice.
func (tri Triangle) Flatten() []float32 {
	return []float32{
		tri[0].X, tri[0].Y, tri[0].Z,
		tri[1].X, tri[1].Y, tri[1].Z,
		tri[2].X, tri[2].Y, tri[2].Z,
	}
}

// Mesh is an ordered list of Triangles. A Mesh is built once by a loader and treated as read-only afterwards;
// the renderer draws triangles in the order they appear here.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// NewMesh creates a new, empty Mesh with the given name.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: []Triangle{},
	}
}

// TriangleCount returns the number of triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	if mesh == nil {
		return 0
	}
	return len(mesh.Triangles)
}

// Bounds returns the minimum and maximum corners of the Mesh's axis-aligned bounding box.
// An empty Mesh returns two zero Vectors.
func (mesh *Mesh) Bounds() (Vector3, Vector3) {

	if mesh.TriangleCount() == 0 {
		return Vector3{}, Vector3{}
	}

	lo := mesh.Triangles[0][0]
	hi := lo

	for _, tri := range mesh.Triangles {
		for _, v := range tri {
			lo = lo.Min(v)
			hi = hi.Max(v)
		}
	}

	return lo, hi

}

// NewCube creates a new cube Mesh centered on the origin, with every face wound counter-clockwise when seen from outside.
func NewCube(halfSize float32) *Mesh {

	mesh := NewMesh("Cube")

	h := halfSize

	verts := []Vector3{
		{-h, -h, -h},
		{h, -h, -h},
		{h, h, -h},
		{-h, h, -h},
		{-h, -h, h},
		{h, -h, h},
		{h, h, h},
		{-h, h, h},
	}

	indices := []int{
		4, 5, 6, 4, 6, 7, // +Z
		1, 0, 3, 1, 3, 2, // -Z
		5, 1, 2, 5, 2, 6, // +X
		0, 4, 7, 0, 7, 3, // -X
		7, 6, 2, 7, 2, 3, // +Y
		0, 1, 5, 0, 5, 4, // -Y
	}

	for i := 0; i < len(indices); i += 3 {
		mesh.Triangles = append(mesh.Triangles, NewTriangle(verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]]))
	}

	return mesh

}
