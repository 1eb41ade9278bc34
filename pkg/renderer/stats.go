package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels in the raster
	PixelsRendered  int           // Number of pixels resolved so far
	TotalColumns    int           // Total number of columns in the raster
	ColumnsRendered int           // Number of columns resolved so far
	Elapsed         time.Duration // Wall time spent rendering
}

// Complete reports whether every column has been rendered.
func (rs RenderStats) Complete() bool {
	return rs.ColumnsRendered >= rs.TotalColumns
}

// Progress returns the fraction of columns rendered, in [0, 1].
func (rs RenderStats) Progress() float64 {
	if rs.TotalColumns == 0 {
		return 1
	}
	return float64(rs.ColumnsRendered) / float64(rs.TotalColumns)
}
