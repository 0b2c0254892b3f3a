package wiremesh

import "fmt"

// degenerateSine is the sine of the angle between a triangle's two edges below which the edges are treated as collinear,
// i.e. the triangle has no area. It's relative to the edge lengths, so tiny but well-formed triangles still count.
const degenerateSine = 1e-6

func screenVertex(tri []float32, index int) Vector3 {
	return Vector3{X: tri[index*3], Y: tri[index*3+1], Z: tri[index*3+2]}
}

// FaceNormal computes the unit normal of a flattened screen-space triangle. Both edges are taken from the second vertex:
// line1 = v1 - v2 and line2 = v3 - v2, and the normal is line2 x line1, which points towards +Z for a triangle wound
// counter-clockwise on screen. The second return value is false if the triangle is degenerate (zero area), in which case
// the normal is zero. FaceNormal panics if tri holds fewer than 9 floats.
func FaceNormal(tri []float32) (Vector3, bool) {

	if len(tri) < 9 {
		panic(fmt.Sprintf("wiremesh: FaceNormal needs 9 floats, got %d", len(tri)))
	}

	v1 := screenVertex(tri, 0)
	v2 := screenVertex(tri, 1)
	v3 := screenVertex(tri, 2)

	line1 := v1.Sub(v2)
	line2 := v3.Sub(v2)

	normal := line2.Cross(line1)

	l := normal.Magnitude()

	if l == 0 || l <= degenerateSine*line1.Magnitude()*line2.Magnitude() {
		return Vector3{}, false
	}

	return normal.Scale(1 / l), true

}

// IsFrontFacing returns true if the flattened screen-space triangle faces the viewer, which is when the Z component of its
// normal is strictly positive. Degenerate triangles are never front-facing.
func IsFrontFacing(tri []float32) bool {
	normal, ok := FaceNormal(tri)
	return ok && normal.Z > 0
}

// Culler decides which transformed triangles get drawn.
type Culler struct {
	// BackfaceCulling discards triangles facing away from the viewer. When false, every triangle with an area is kept.
	BackfaceCulling bool
	culled          int
}

// NewCuller creates a new Culler with backface culling turned on.
func NewCuller() *Culler {
	return &Culler{BackfaceCulling: true}
}

// Visible returns true if the flattened screen-space triangle should be drawn.
func (culler *Culler) Visible(tri []float32) bool {

	visible := false

	if culler.BackfaceCulling {
		visible = IsFrontFacing(tri)
	} else {
		_, visible = FaceNormal(tri)
	}

	if !visible {
		culler.culled++
	}

	return visible

}

// Culled returns how many triangles have been discarded since the last call to ResetCount.
func (culler *Culler) Culled() int {
	return culler.culled
}

// ResetCount resets the culled triangle counter.
func (culler *Culler) ResetCount() {
	culler.culled = 0
}
