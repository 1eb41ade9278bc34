package geometry

import (
	"fmt"

	"lumen/pkg/core"
	"lumen/pkg/material"
)

const (
	// parallelEpsilon guards intersection divisions against near-zero
	// direction components.
	parallelEpsilon = 1e-4
	// surfaceOffset lifts derived points off the surface they sit on, so
	// secondary rays do not re-intersect their own origin.
	surfaceOffset = 1e-5
)

// Geometry is the capability a shape variant provides: intersection and
// normal computation in the shape's own local space. LocalIntersect may
// return duplicate or negative t values; callers filter for visibility.
type Geometry interface {
	LocalIntersect(ray core.Ray) []float64
	LocalNormalAt(point core.Tuple) core.Tuple
}

// Shape places a geometry variant in the world: a transform, a material
// and a stable identity. Two shapes with identical geometry are still
// distinct objects; intersection bookkeeping compares shapes by pointer.
type Shape struct {
	Geometry Geometry
	Material material.Material

	transform        core.Matrix4
	inverse          core.Matrix4
	inverseTranspose core.Matrix4
}

// NewShape wraps a geometry variant with an identity transform and the
// default material.
func NewShape(geometry Geometry) *Shape {
	return &Shape{
		Geometry:         geometry,
		Material:         material.Default(),
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
	}
}

// Transform returns the shape's object-to-world transform.
func (s *Shape) Transform() core.Matrix4 {
	return s.transform
}

// SetTransform replaces the shape's transform. The inverse and inverse
// transpose are cached here because intersection and normal computation
// run once per ray; a singular transform is rejected and leaves the shape
// unchanged.
func (s *Shape) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape transform: %w", err)
	}
	s.transform = m
	s.inverse = inv
	s.inverseTranspose = inv.Transpose()
	return nil
}

// Intersect tests a world-space ray against the shape by carrying the ray
// into object space through the cached inverse transform.
func (s *Shape) Intersect(ray core.Ray) Intersections {
	localRay := ray.Transform(s.inverse)
	ts := s.Geometry.LocalIntersect(localRay)
	if len(ts) == 0 {
		return nil
	}
	xs := make(Intersections, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Object: s})
	}
	return xs
}

// NormalAt returns the world-space surface normal at a world-space point
// on the shape. Normals transform by the inverse transpose so non-uniform
// scaling keeps them perpendicular to the surface.
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := s.inverse.MulTuple(worldPoint)
	localNormal := s.Geometry.LocalNormalAt(localPoint)
	worldNormal := s.inverseTranspose.MulTuple(localNormal)
	worldNormal.W = 0
	normal, _ := worldNormal.Normalize() // local normals are unit vectors, never zero
	return normal
}

// WorldToObject maps a world-space point into the shape's local space.
func (s *Shape) WorldToObject(point core.Tuple) core.Tuple {
	return s.inverse.MulTuple(point)
}
