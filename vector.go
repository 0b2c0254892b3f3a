package wiremesh

import (
	"fmt"

	"github.com/solarlune/wiremesh/math32"
)

// Vector3 represents a 3D position or direction. A Vertex in a mesh is just a Vector3.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector3
	Y float32 // The Y (2nd) component of the Vector3
	Z float32 // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (vec Vector3) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", vec.X, vec.Y, vec.Z)
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector3 with each component multiplied by the scalar provided.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A zero-length Vector3 is returned unchanged.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l == 0 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Min returns a Vector3 holding the smaller of each component of the two Vectors.
func (vec Vector3) Min(other Vector3) Vector3 {
	vec.X = min(vec.X, other.X)
	vec.Y = min(vec.Y, other.Y)
	vec.Z = min(vec.Z, other.Z)
	return vec
}

// Max returns a Vector3 holding the larger of each component of the two Vectors.
func (vec Vector3) Max(other Vector3) Vector3 {
	vec.X = max(vec.X, other.X)
	vec.Y = max(vec.Y, other.Y)
	vec.Z = max(vec.Z, other.Z)
	return vec
}

// Equals returns true if each component of the two Vectors is within the given tolerance of the other.
func (vec Vector3) Equals(other Vector3, tolerance float32) bool {
	return math32.Abs(vec.X-other.X) <= tolerance &&
		math32.Abs(vec.Y-other.Y) <= tolerance &&
		math32.Abs(vec.Z-other.Z) <= tolerance
}
