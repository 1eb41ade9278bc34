package renderer

import (
	"fmt"
	"math"

	"lumen/pkg/core"
)

// Camera maps a rectangular raster onto a canvas one world unit in front
// of the eye. The canvas spans the horizontal field of view; pixel size
// follows from the raster dimensions so pixels are always square.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64
	transform   core.Matrix4
	inverse     core.Matrix4
	halfWidth   float64
	halfHeight  float64
	pixelSize   float64
}

// NewCamera creates a camera for an hsize x vsize raster with the given
// horizontal field of view in radians. The camera starts at the origin
// looking down -z with the identity transform.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// HSize returns the raster width in pixels.
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the raster height in pixels.
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the horizontal field of view in radians.
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// Transform returns the camera's view transform.
func (c *Camera) Transform() core.Matrix4 { return c.transform }

// PixelSize returns the world-space size of one pixel on the canvas.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// SetTransform replaces the camera's view transform. Singular matrices
// are rejected and the camera is left unchanged; the inverse is cached
// here so RayForPixel never inverts per pixel.
func (c *Camera) SetTransform(transform core.Matrix4) error {
	inverse, err := transform.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = transform
	c.inverse = inverse
	return nil
}

// RayForPixel returns the world-space ray through the center of the
// pixel at (px, py). Pixel (0, 0) is the top-left corner of the raster.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// Offsets from the canvas edge to the pixel center.
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Untransformed canvas coordinates; +x is left of the canvas
	// because the camera looks down -z.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	// The canvas sits at z = -1 in camera space.
	pixel := c.inverse.MulTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MulTuple(core.NewPoint(0, 0, 0))
	direction, _ := pixel.Subtract(origin).Normalize() // pixel center is never the eye

	return core.NewRay(origin, direction)
}
