package core

import "math"

// Color represents an RGB color. Components are unbounded floats; the
// engine never clamps, quantization to display bytes belongs to drivers.
type Color struct {
	R, G, B float64
}

// Black and White are the zero and unit colors.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// NewColor creates a color from red, green and blue components.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise (Hadamard) product of two
// colors, used for blending a surface color with a light's intensity.
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors are equal within floating tolerance.
func (c Color) Equals(other Color) bool {
	return math.Abs(c.R-other.R) < epsilon &&
		math.Abs(c.G-other.G) < epsilon &&
		math.Abs(c.B-other.B) < epsilon
}
