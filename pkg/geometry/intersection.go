package geometry

import (
	"sort"

	"lumen/pkg/core"
)

// Intersection records a ray meeting a shape at parametric distance T. The
// shape reference is a non-owning pointer into the scene.
type Intersection struct {
	T      float64
	Object *Shape
}

// Intersections is a collection of intersections along one ray.
type Intersections []Intersection

// Sort orders the intersections by ascending T. The sort is stable so
// equal T values keep their insertion order, which keeps repeat runs
// deterministic without promising any canonical tie order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the intersection with the lowest strictly positive T.
// Intersections at or behind the ray origin are never visible.
func (xs Intersections) Hit() (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// Computations bundles the shading inputs derived from one intersection.
// Inside reports that the ray originated within the object; the normal is
// already flipped to face the eye when that happens. OverPoint sits just
// above the surface along the normal and is where shadow rays start.
type Computations struct {
	T         float64
	Object    *Shape
	Point     core.Tuple
	OverPoint core.Tuple
	Eye       core.Tuple
	Normal    core.Tuple
	Inside    bool
}

// Prepare derives the shading inputs for this intersection on the ray
// that produced it.
func (i Intersection) Prepare(ray core.Ray) Computations {
	point := ray.Position(i.T)
	eye, _ := ray.Direction.Negate().Normalize() // a hit implies a non-degenerate direction

	normal := i.Object.NormalAt(point)
	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	return Computations{
		T:         i.T,
		Object:    i.Object,
		Point:     point,
		OverPoint: point.Add(normal.Multiply(surfaceOffset)),
		Eye:       eye,
		Normal:    normal,
		Inside:    inside,
	}
}
