package world

import (
	"lumen/pkg/core"
	"lumen/pkg/geometry"
	"lumen/pkg/lights"
	"lumen/pkg/material"
)

// World holds the scene: every shape plus the light sources. A world is
// built once per render session and never mutated while rendering, which
// is what makes ColorAt safe to call concurrently.
type World struct {
	Objects []*geometry.Shape
	Lights  []lights.PointLight
}

// New creates an empty world.
func New() *World {
	return &World{}
}

// Default returns the standard two-sphere scene used as a reference
// throughout the tests: an outer green-ish sphere, an inner half-size
// sphere, and a single white light up and to the left of the eye.
func Default() *World {
	outer := geometry.NewSphere()
	m := material.Default()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.Material = m

	inner := geometry.NewSphere()
	_ = inner.SetTransform(core.Scaling(0.5, 0.5, 0.5)) // uniform scaling is always invertible

	return &World{
		Objects: []*geometry.Shape{outer, inner},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewPoint(-10, 10, -10), core.NewColor(1, 1, 1)),
		},
	}
}

// Intersect gathers the intersections of the ray with every object in the
// world, ordered by ascending t.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// ShadeHit resolves the color at a prepared intersection by summing the
// Phong contribution of every light. Each light tests its own shadow ray.
// Summation is commutative, so light order never affects the result.
func (w *World) ShadeHit(comps geometry.Computations) core.Color {
	var color core.Color
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(light, comps.OverPoint)
		color = color.Add(comps.Object.Material.Lighting(
			comps.Object, light, comps.Point, comps.Eye, comps.Normal, inShadow))
	}
	return color
}

// ColorAt resolves the color seen along a ray: black when the ray hits
// nothing, the shaded nearest hit otherwise.
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(hit.Prepare(ray))
}

// IsShadowed reports whether something blocks the segment between the
// point and the light.
func (w *World) IsShadowed(light lights.PointLight, point core.Tuple) bool {
	v := light.Position.Subtract(point)
	distance := v.Magnitude()
	direction, err := v.Normalize()
	if err != nil {
		// The point is on the light itself; nothing can shadow it.
		return false
	}

	hit, ok := w.Intersect(core.NewRay(point, direction)).Hit()
	return ok && hit.T < distance
}
