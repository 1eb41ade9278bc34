package renderer

import (
	"fmt"
	"image"
	"time"

	"lumen/pkg/core"
	"lumen/pkg/world"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Render resolves an image one column at a time so a caller can show
// partial results while the rest of the raster is still being traced.
// Columns are rendered left to right; pixels the renderer has not
// reached yet stay transparent black in the image.
type Render struct {
	world   *world.World
	camera  *Camera
	img     *image.RGBA
	nextCol int
	pixels  int
	started time.Time
	elapsed time.Duration
	logger  core.Logger
}

// NewRender creates a progressive render of the world through the
// camera. A nil logger falls back to the default stdout logger.
func NewRender(w *world.World, c *Camera, logger core.Logger) *Render {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Render{
		world:  w,
		camera: c,
		img:    image.NewRGBA(image.Rect(0, 0, c.HSize(), c.VSize())),
		logger: logger,
	}
}

// Step renders the next column of the image and reports whether the
// render is complete. Once complete, further calls do nothing. Column
// order is fixed, so repeating a render reproduces the same image.
func (r *Render) Step() (bool, error) {
	if r.nextCol >= r.camera.HSize() {
		return true, nil
	}

	if r.nextCol == 0 {
		r.started = time.Now()
		r.logger.Printf("Rendering %dx%d (%d columns)...\n",
			r.camera.HSize(), r.camera.VSize(), r.camera.HSize())
	}

	px := r.nextCol
	for py := 0; py < r.camera.VSize(); py++ {
		c, err := ColorAt(r.world, r.camera, px, py)
		if err != nil {
			return false, err
		}
		r.img.SetRGBA(px, py, ColorToRGBA(c))
		r.pixels++
	}
	r.nextCol++

	if r.nextCol == r.camera.HSize() {
		r.elapsed = time.Since(r.started)
		r.logger.Printf("Render completed in %v (%d pixels)\n", r.elapsed, r.pixels)
		return true, nil
	}
	return false, nil
}

// Finish renders all remaining columns.
func (r *Render) Finish() error {
	for {
		done, err := r.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Image returns the render target. The same image is updated in place
// by Step, so callers may hold on to it between steps.
func (r *Render) Image() *image.RGBA {
	return r.img
}

// Stats returns a snapshot of rendering progress.
func (r *Render) Stats() RenderStats {
	elapsed := r.elapsed
	if elapsed == 0 && !r.started.IsZero() {
		elapsed = time.Since(r.started)
	}
	return RenderStats{
		TotalPixels:     r.camera.HSize() * r.camera.VSize(),
		PixelsRendered:  r.pixels,
		TotalColumns:    r.camera.HSize(),
		ColumnsRendered: r.nextCol,
		Elapsed:         elapsed,
	}
}
