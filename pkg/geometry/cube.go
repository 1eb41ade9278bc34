package geometry

import (
	"math"

	"lumen/pkg/core"
)

// Cube is the axis-aligned cube spanning -1..1 on every axis.
type Cube struct{}

// NewCube creates a unit cube shape.
func NewCube() *Shape {
	return NewShape(Cube{})
}

// LocalIntersect runs the slab test: the ray enters the cube at the
// largest per-axis entry t and leaves at the smallest per-axis exit t.
// The ray misses when those cross.
func (Cube) LocalIntersect(ray core.Ray) []float64 {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))
	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

// checkAxis intersects the ray with one slab's pair of parallel planes.
// Rays parallel to the slab hit it at infinity in both directions.
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= parallelEpsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		return tMax, tMin
	}
	return tMin, tMax
}

// LocalNormalAt picks the face whose axis has the largest absolute
// component at the point.
func (Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	absX := math.Abs(point.X)
	absY := math.Abs(point.Y)
	absZ := math.Abs(point.Z)

	if absX >= absY && absX >= absZ {
		return core.NewVector(point.X, 0, 0)
	}
	if absY >= absZ {
		return core.NewVector(0, point.Y, 0)
	}
	return core.NewVector(0, 0, point.Z)
}
