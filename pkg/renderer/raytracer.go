package renderer

import (
	"fmt"
	"image/color"
	"math"

	"lumen/pkg/core"
	"lumen/pkg/world"
)

// ColorAt resolves the color of a single raster pixel by casting the
// pixel's ray into the world. Rays that hit nothing resolve to black;
// coordinates outside the raster are an error.
func ColorAt(w *world.World, c *Camera, px, py int) (core.Color, error) {
	if px < 0 || px >= c.HSize() || py < 0 || py >= c.VSize() {
		return core.Color{}, fmt.Errorf("pixel (%d, %d) is outside the %dx%d raster", px, py, c.HSize(), c.VSize())
	}
	return w.ColorAt(c.RayForPixel(px, py)), nil
}

// ColorToRGBA converts a working-space color to a display pixel. Each
// channel is clamped to [0, 1] and scaled to 8 bits; shading happens in
// unclamped linear space, so clamping is deferred to this boundary.
func ColorToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: 255,
	}
}

func quantize(channel float64) uint8 {
	return uint8(math.Round(255 * math.Min(1, math.Max(0, channel))))
}
