// math32 is a stand-in for the built-in math package, but the functions take float32s instead of float64s.
// Mesh geometry in wiremesh is stored as float32 throughout, since that's what ends up in the vertex buffer anyway.
package math32

import (
	"math"
)

const Pi = float32(math.Pi)

// ToRadians is a helper function to easily convert degrees to radians.
func ToRadians(degrees float32) float32 {
	return Pi * degrees / 180
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sincos returns the sine and cosine of the radian argument x, computed in float64 and narrowed afterwards.
func Sincos(x float64) (sin, cos float32) {
	s, c := math.Sincos(x)
	return float32(s), float32(c)
}
