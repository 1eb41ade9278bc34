// Package scene provides the canned worlds and cameras the render
// drivers choose between by name.
package scene

import (
	"fmt"
	"math"
	"strings"

	"lumen/pkg/core"
	"lumen/pkg/geometry"
	"lumen/pkg/lights"
	"lumen/pkg/material"
	"lumen/pkg/renderer"
	"lumen/pkg/world"
)

// Names returns the scene names Build accepts.
func Names() []string {
	return []string{"default", "showcase"}
}

// Build constructs the named scene with a camera sized for a
// width x height raster.
func Build(name string, width, height int) (*world.World, *renderer.Camera, error) {
	switch name {
	case "default":
		camera, err := DefaultCamera(width, height)
		if err != nil {
			return nil, nil, err
		}
		return NewDefaultWorld(), camera, nil
	case "showcase":
		camera, err := ShowcaseCamera(width, height)
		if err != nil {
			return nil, nil, err
		}
		return NewShowcaseWorld(), camera, nil
	default:
		return nil, nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}

// NewDefaultWorld returns the standard two-sphere world.
func NewDefaultWorld() *world.World {
	return world.Default()
}

// DefaultCamera frames the two-sphere world head-on from (0, 0, -5).
func DefaultCamera(width, height int) (*renderer.Camera, error) {
	return lookingFrom(width, height, math.Pi/2,
		core.NewPoint(0, 0, -5), core.NewPoint(0, 0, 0))
}

// NewShowcaseWorld creates the demo scene: a striped floor plane, three
// glossy spheres of decreasing size, and a checkered cube, lit by a
// single white light up and to the left of the eye.
func NewShowcaseWorld() *world.World {
	// All transforms below are compositions of translations, rotations,
	// and nonzero scalings, so none of them can be singular.
	floor := geometry.NewPlane()
	floor.Material.Color = core.NewColor(1, 0.9, 0.9)
	floor.Material.Specular = 0
	floor.Material.Pattern = material.NewPattern(material.Stripe{
		A: core.NewColor(1, 0.9, 0.9),
		B: core.NewColor(0.55, 0.55, 0.55),
	})

	middle := geometry.NewSphere()
	_ = middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material.Color = core.NewColor(0.1, 1, 0.5)
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3

	right := geometry.NewSphere()
	_ = right.SetTransform(core.Identity().Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5))
	right.Material.Color = core.NewColor(0.5, 1, 0.1)
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3

	left := geometry.NewSphere()
	_ = left.SetTransform(core.Identity().Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75))
	left.Material.Color = core.NewColor(1, 0.8, 0.1)
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3

	box := geometry.NewCube()
	_ = box.SetTransform(core.Identity().Scale(0.4, 0.4, 0.4).RotateY(math.Pi / 6).Translate(2.2, 0.4, 1.5))
	checks := material.NewPattern(material.Checker{
		A: core.NewColor(1, 1, 1),
		B: core.NewColor(0.2, 0.3, 0.6),
	})
	_ = checks.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	box.Material.Pattern = checks
	box.Material.Diffuse = 0.7
	box.Material.Specular = 0.3

	w := world.New()
	w.Objects = []*geometry.Shape{floor, middle, right, left, box}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(core.NewPoint(-10, 10, -10), core.NewColor(1, 1, 1)),
	}
	return w
}

// ShowcaseCamera frames the showcase world from slightly above the floor.
func ShowcaseCamera(width, height int) (*renderer.Camera, error) {
	return lookingFrom(width, height, math.Pi/3,
		core.NewPoint(0, 1.5, -5), core.NewPoint(0, 1, 0))
}

func lookingFrom(width, height int, fieldOfView float64, from, to core.Tuple) (*renderer.Camera, error) {
	camera := renderer.NewCamera(width, height, fieldOfView)
	vt, err := core.ViewTransform(from, to, core.NewVector(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("scene camera: %w", err)
	}
	if err := camera.SetTransform(vt); err != nil {
		return nil, fmt.Errorf("scene camera: %w", err)
	}
	return camera, nil
}
