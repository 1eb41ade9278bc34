package core

import (
	"errors"
	"math"
)

// ErrZeroLengthVector is returned when normalizing a vector with no
// direction.
var ErrZeroLengthVector = errors.New("cannot normalize a zero-length vector")

// epsilon is the tolerance used for approximate equality of tuples,
// colors and matrices.
const epsilon = 1e-5

// Tuple represents a point or a vector in 3D space. W is 1 for points and
// 0 for vectors, which makes translation apply to points but not vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a tuple representing a location in space.
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a tuple representing a direction or displacement.
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point.
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector.
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the sum of two tuples.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the opposite of the tuple.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction. Normalizing a
// zero-length tuple returns ErrZeroLengthVector rather than NaNs.
func (t Tuple) Normalize() (Tuple, error) {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		return Tuple{}, ErrZeroLengthVector
	}
	return t.Divide(magnitude), nil
}

// Dot returns the dot product of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected about the given normal.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals reports whether two tuples are equal within floating tolerance.
func (t Tuple) Equals(other Tuple) bool {
	return math.Abs(t.X-other.X) < epsilon &&
		math.Abs(t.Y-other.Y) < epsilon &&
		math.Abs(t.Z-other.Z) < epsilon &&
		math.Abs(t.W-other.W) < epsilon
}
