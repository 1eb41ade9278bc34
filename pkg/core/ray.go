package core

// Ray represents a ray with an origin and direction. The direction is not
// required to be unit length; intersection t values scale with it.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray carried through the given transform. The
// direction is deliberately not renormalized so that t values measured in
// the transformed space map back to the original ray unchanged.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
