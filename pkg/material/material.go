package material

import (
	"math"

	"lumen/pkg/core"
	"lumen/pkg/lights"
)

// Surface is the view of a scene object the shading layer needs: mapping
// world-space points into the object's own space for pattern sampling.
type Surface interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// Material holds the Phong shading parameters of a surface. A nil Pattern
// means the surface uses its flat Color everywhere.
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	Pattern   *Pattern
}

// Default returns the standard matte white material.
func Default() Material {
	return Material{
		Color:     core.NewColor(1, 1, 1),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Lighting evaluates the Phong model at a point on a surface: the ambient,
// diffuse and specular contributions of one light. Shadowed points receive
// the ambient term only. The result is unclamped.
func (m Material) Lighting(surface Surface, light lights.PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	base := m.Color
	if m.Pattern != nil {
		base = m.Pattern.AtSurface(surface, point)
	}

	effective := base.MultiplyColor(light.Intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv, err := light.Position.Subtract(point).Normalize()
	if err != nil {
		// A light sitting exactly on the point illuminates nothing beyond
		// the ambient term.
		return ambient
	}

	var diffuse, specular core.Color
	if lightDotNormal := lightv.Dot(normal); lightDotNormal > 0 {
		diffuse = effective.Multiply(m.Diffuse * lightDotNormal)

		reflectv := lightv.Negate().Reflect(normal)
		if reflectDotEye := reflectv.Dot(eye); reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
