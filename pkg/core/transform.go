package core

import (
	"fmt"
	"math"
)

// Translation returns a transform that moves points by (x, y, z).
// Vectors (w=0) are unaffected.
func Translation(x, y, z float64) Matrix4 {
	return Matrix4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling returns a transform that scales each axis independently.
func Scaling(x, y, z float64) Matrix4 {
	return Matrix4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a rotation around the x axis by radians.
func RotationX(radians float64) Matrix4 {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return Matrix4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation around the y axis by radians.
func RotationY(radians float64) Matrix4 {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return Matrix4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation around the z axis by radians.
func RotationZ(radians float64) Matrix4 {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return Matrix4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns a transform that slants each coordinate in proportion
// to the other two: xy is the amount x moves per unit y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Matrix4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// The fluent builders below left-multiply the new transform onto the
// receiver, so Identity().Scale(...).Translate(...) scales first and
// translates second.

// Translate chains a translation onto the transform.
func (m Matrix4) Translate(x, y, z float64) Matrix4 {
	return Translation(x, y, z).Multiply(m)
}

// Scale chains a scaling onto the transform.
func (m Matrix4) Scale(x, y, z float64) Matrix4 {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX chains a rotation around the x axis onto the transform.
func (m Matrix4) RotateX(radians float64) Matrix4 {
	return RotationX(radians).Multiply(m)
}

// RotateY chains a rotation around the y axis onto the transform.
func (m Matrix4) RotateY(radians float64) Matrix4 {
	return RotationY(radians).Multiply(m)
}

// RotateZ chains a rotation around the z axis onto the transform.
func (m Matrix4) RotateZ(radians float64) Matrix4 {
	return RotationZ(radians).Multiply(m)
}

// Shear chains a shearing onto the transform.
func (m Matrix4) Shear(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}

// ViewTransform returns the world-to-camera transform for an eye at from,
// looking at to, with the given approximate up direction. Degenerate
// inputs (from equal to to, or a zero up vector) return an error.
func ViewTransform(from, to, up Tuple) (Matrix4, error) {
	forward, err := to.Subtract(from).Normalize()
	if err != nil {
		return Matrix4{}, fmt.Errorf("view transform: from and to coincide: %w", err)
	}
	upn, err := up.Normalize()
	if err != nil {
		return Matrix4{}, fmt.Errorf("view transform: %w", err)
	}
	left := forward.Cross(upn)
	trueUp := left.Cross(forward)
	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}
