package material

import (
	"math"
	"testing"

	"lumen/pkg/core"
	"lumen/pkg/lights"
)

// flatSurface stands in for a scene shape with an identity transform.
type flatSurface struct{}

func (flatSurface) WorldToObject(p core.Tuple) core.Tuple { return p }

func TestDefault(t *testing.T) {
	m := Default()

	if !m.Color.Equals(core.NewColor(1, 1, 1)) {
		t.Errorf("Expected white, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected default coefficients: %+v", m)
	}
	if m.Pattern != nil {
		t.Errorf("Expected no pattern by default")
	}
}

func TestMaterial_Lighting(t *testing.T) {
	sqrt2over2 := math.Sqrt2 / 2
	m := Default()
	position := core.NewPoint(0, 0, 0)

	tests := []struct {
		name     string
		eye      core.Tuple
		normal   core.Tuple
		light    lights.PointLight
		inShadow bool
		expected core.Color
	}{
		{
			name:     "eye between light and surface",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, -10), core.NewColor(1, 1, 1)),
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees loses the specular highlight",
			eye:      core.NewVector(0, sqrt2over2, -sqrt2over2),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, -10), core.NewColor(1, 1, 1)),
			expected: core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 10, -10), core.NewColor(1, 1, 1)),
			expected: core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			name:     "eye in the reflection path",
			eye:      core.NewVector(0, -sqrt2over2, -sqrt2over2),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 10, -10), core.NewColor(1, 1, 1)),
			expected: core.NewColor(1.6364, 1.6364, 1.6364),
		},
		{
			name:     "light behind the surface leaves ambient only",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, 10), core.NewColor(1, 1, 1)),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow leaves ambient only",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    lights.NewPointLight(core.NewPoint(0, 0, -10), core.NewColor(1, 1, 1)),
			inShadow: true,
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Lighting(flatSurface{}, tt.light, position, tt.eye, tt.normal, tt.inShadow)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMaterial_LightingScalesWithIntensity(t *testing.T) {
	m := Default()
	position := core.NewPoint(0, 0, 0)
	eye := core.NewVector(0, 0, -1)
	normal := core.NewVector(0, 0, -1)
	light := lights.NewPointLight(core.NewPoint(0, 0, -10), core.NewColor(0.5, 0.5, 0.5))

	got := m.Lighting(flatSurface{}, light, position, eye, normal, false)
	if !got.Equals(core.NewColor(0.95, 0.95, 0.95)) {
		t.Errorf("Expected half-intensity shading (0.95, 0.95, 0.95), got %v", got)
	}
}

func TestMaterial_LightingWithPattern(t *testing.T) {
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)

	m := Default()
	m.Pattern = NewPattern(Stripe{A: white, B: black})
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	eye := core.NewVector(0, 0, -1)
	normal := core.NewVector(0, 0, -1)
	light := lights.NewPointLight(core.NewPoint(0, 0, -10), white)

	c1 := m.Lighting(flatSurface{}, light, core.NewPoint(0.9, 0, 0), eye, normal, false)
	c2 := m.Lighting(flatSurface{}, light, core.NewPoint(1.1, 0, 0), eye, normal, false)

	if !c1.Equals(white) {
		t.Errorf("Expected white inside the first stripe, got %v", c1)
	}
	if !c2.Equals(black) {
		t.Errorf("Expected black inside the second stripe, got %v", c2)
	}
}

func TestMaterial_LightingAtTheLightPosition(t *testing.T) {
	m := Default()
	point := core.NewPoint(0, 0, 0)
	eye := core.NewVector(0, 0, -1)
	normal := core.NewVector(0, 0, -1)
	light := lights.NewPointLight(point, core.NewColor(1, 1, 1))

	got := m.Lighting(flatSurface{}, light, point, eye, normal, false)
	if !got.Equals(core.NewColor(0.1, 0.1, 0.1)) {
		t.Errorf("Expected ambient only for a light on the surface, got %v", got)
	}
}
