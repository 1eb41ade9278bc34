package geometry

import (
	"math"

	"lumen/pkg/core"
)

// Sphere is the unit sphere centered at the local-space origin.
type Sphere struct{}

// NewSphere creates a unit sphere shape.
func NewSphere() *Shape {
	return NewShape(Sphere{})
}

// LocalIntersect solves the quadratic formed by substituting the ray into
// the implicit sphere equation. A tangent ray reports its double root
// twice; a negative discriminant reports nothing.
func (Sphere) LocalIntersect(ray core.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}

// LocalNormalAt returns the radius vector at the point, which is already
// unit length on the unit sphere.
func (Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
