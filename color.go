package wiremesh

import (
	"image/color"

	"github.com/solarlune/wiremesh/math32"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// Lerp returns a Color partway between the calling Color and the other one; a percent of 0 gives the calling Color
// and 1 gives the other.
func (c Color) Lerp(other Color, percent float32) Color {
	percent = math32.Clamp(percent, 0, 1)
	c.R += (other.R - c.R) * percent
	c.G += (other.G - c.G) * percent
	c.B += (other.B - c.B) * percent
	c.A += (other.A - c.A) * percent
	return c
}

// Floats returns the Color as a [R, G, B, A] slice, which is the form shader uniforms take.
func (c Color) Floats() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}

// ToRGBA64 converts the Color to a color.RGBA64.
func (c Color) ToRGBA64() color.RGBA64 {
	return color.RGBA64{
		R: uint16(math32.Clamp(c.R, 0, 1) * 65535),
		G: uint16(math32.Clamp(c.G, 0, 1) * 65535),
		B: uint16(math32.Clamp(c.B, 0, 1) * 65535),
		A: uint16(math32.Clamp(c.A, 0, 1) * 65535),
	}
}
