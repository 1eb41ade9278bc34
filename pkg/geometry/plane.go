package geometry

import (
	"math"

	"lumen/pkg/core"
)

// Plane is the infinite plane y = 0 with normal +y.
type Plane struct{}

// NewPlane creates an infinite plane shape.
func NewPlane() *Shape {
	return NewShape(Plane{})
}

// LocalIntersect returns the single crossing of the xz plane. Rays whose
// direction is parallel to the plane, including coplanar rays, miss.
func (Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < parallelEpsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt returns the constant plane normal.
func (Plane) LocalNormalAt(core.Tuple) core.Tuple {
	return core.NewVector(0, 1, 0)
}
