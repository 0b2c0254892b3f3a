package wiremesh

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// Matrix4 represents a 4x4 matrix for rotation, scale, and projection. A Matrix4 in wiremesh is row-major (i.e. the X axis is matrix[0]),
// and vectors are multiplied as rows (v * M), so translation lives in matrix[3].
type Matrix4 [4][4]float32

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4RotateX returns a Matrix4 rotating about the X axis, given the sine and cosine of the rotation angle.
// Every entry is written out; nothing is left to a zero value by accident.
func NewMatrix4RotateX(sin, cos float32) Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateY returns a Matrix4 rotating about the Y axis, given the sine and cosine of the rotation angle.
func NewMatrix4RotateY(sin, cos float32) Matrix4 {
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateZ returns a Matrix4 rotating about the Z axis, given the sine and cosine of the rotation angle.
func NewMatrix4RotateZ(sin, cos float32) Matrix4 {
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4FlatProjection returns the placeholder projection: the diagonal (1, 1, 0, 1).
// X and Y pass through untouched and Z is flattened to 0, so the result looks orthographic.
func NewMatrix4FlatProjection() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Perspective returns a perspective projection looking down -Z from a camera placed cameraDistance units
// back along +Z. fovy is in radians. Vectors transformed by it need MultVecW and a divide by W.
func NewMatrix4Perspective(fovy, aspect, near, far, cameraDistance float32) Matrix4 {
	view := mgl32.Translate3D(0, 0, -cameraDistance)
	return matrix4FromMGL(mgl32.Perspective(fovy, aspect, near, far).Mul4(view))
}

// mgl32 matrices multiply column vectors, so the transpose is what v * M needs.
func matrix4FromMGL(m mgl32.Mat4) Matrix4 {
	mat := Matrix4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			mat[row][col] = m.At(row, col)
		}
	}
	return mat.Transposed()
}

// Transposed transposes a Matrix4. For rotation matrices this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	new := NewMatrix4()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			new[i][j] = matrix[j][i]
		}
	}

	return new

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
// The W component is taken to be 1 and the resulting W is discarded.
func (matrix Matrix4) MultVec(vect Vector3) Vector3 {

	return Vector3{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// MultVecW multiplies the vector provided by the Matrix4, returning the transformed vector and its W component.
func (matrix Matrix4) MultVecW(vect Vector3) (Vector3, float32) {

	return matrix.MultVec(vect),
		matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3]

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them.
// Transforming by matrix.Mult(other) is the same as transforming by matrix and then by other.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			newMat[i][j] = matrix[i][0]*other[0][j] + matrix[i][1]*other[1][j] + matrix[i][2]*other[2][j] + matrix[i][3]*other[3][j]
		}
	}

	return newMat

}

// Equals returns true if the two matrices are equal within the given tolerance.
func (matrix Matrix4) Equals(other Matrix4, tolerance float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := matrix[i][j] - other[i][j]
			if d > tolerance || d < -tolerance {
				return false
			}
		}
	}
	return true
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(float64(x), 'f', -1, 32) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
