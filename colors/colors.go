package colors

// package colors contains functions to quickly generate wiremesh.Color instances by name (i.e. "White()", "Black()", etc).

import "github.com/solarlune/wiremesh"

// White generates a wiremesh.Color instance of the provided name.
func White() wiremesh.Color {
	return wiremesh.NewColor(1, 1, 1, 1)
}

// Black generates a wiremesh.Color instance of the provided name.
func Black() wiremesh.Color {
	return wiremesh.NewColor(0, 0, 0, 1)
}

// LightGray generates a wiremesh.Color instance of the provided name.
func LightGray() wiremesh.Color {
	return wiremesh.NewColor(0.8, 0.8, 0.8, 1)
}

// Teal generates a wiremesh.Color instance of the provided name.
func Teal() wiremesh.Color {
	return wiremesh.NewColor(0.2, 0.3, 0.3, 1)
}

// Orange generates a wiremesh.Color instance of the provided name.
func Orange() wiremesh.Color {
	return wiremesh.NewColor(1, 0.5, 0.2, 1)
}
