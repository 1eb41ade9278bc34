package material

import (
	"fmt"
	"math"

	"lumen/pkg/core"
)

// Texture computes a color at a point in pattern space.
type Texture interface {
	At(point core.Tuple) core.Color
}

// Pattern positions a texture on a surface through its own transform,
// independent of the surface's transform.
type Pattern struct {
	Texture   Texture
	transform core.Matrix4
	inverse   core.Matrix4
}

// NewPattern creates a pattern with an identity transform.
func NewPattern(texture Texture) *Pattern {
	return &Pattern{
		Texture:   texture,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
}

// Transform returns the pattern's transform.
func (p *Pattern) Transform() core.Matrix4 {
	return p.transform
}

// SetTransform replaces the pattern's transform, caching its inverse.
// Singular transforms are rejected.
func (p *Pattern) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// AtSurface samples the pattern at a world-space point on the given
// surface: the point passes through the surface's inverse transform and
// then the pattern's own before the texture is evaluated.
func (p *Pattern) AtSurface(surface Surface, worldPoint core.Tuple) core.Color {
	objectPoint := surface.WorldToObject(worldPoint)
	patternPoint := p.inverse.MulTuple(objectPoint)
	return p.Texture.At(patternPoint)
}

// Stripe alternates two colors in unit bands along the x axis.
type Stripe struct {
	A, B core.Color
}

// At returns A in even unit bands of x and B in odd ones.
func (s Stripe) At(point core.Tuple) core.Color {
	if math.Mod(math.Floor(point.X), 2) == 0 {
		return s.A
	}
	return s.B
}

// Gradient blends linearly from A to B across each unit of x.
type Gradient struct {
	A, B core.Color
}

// At returns A plus the fractional part of x of the distance toward B.
func (g Gradient) At(point core.Tuple) core.Color {
	distance := g.B.Subtract(g.A)
	fraction := point.X - math.Floor(point.X)
	return g.A.Add(distance.Multiply(fraction))
}

// Ring alternates two colors in concentric bands around the y axis.
type Ring struct {
	A, B core.Color
}

// At returns A in even rings and B in odd ones, by radial distance in xz.
func (r Ring) At(point core.Tuple) core.Color {
	radius := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if math.Mod(math.Floor(radius), 2) == 0 {
		return r.A
	}
	return r.B
}

// Checker tiles space with alternating unit cubes of two colors.
type Checker struct {
	A, B core.Color
}

// At returns A when the summed integer coordinates are even, B otherwise.
func (c Checker) At(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if math.Mod(sum, 2) == 0 {
		return c.A
	}
	return c.B
}
