package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"lumen/pkg/renderer"
	"lumen/pkg/scene"
	"lumen/pkg/world"
)

func main() {
	sceneName := flag.String("scene", "showcase", "Scene to render: 'default' or 'showcase'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 225, "Image height in pixels")
	out := flag.String("out", "", "Output PNG path (default: output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Lumen Raytracer")
		fmt.Println("Usage: lumen [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default  - Two nested spheres with a single light")
		fmt.Println("  showcase - Striped floor, three spheres and a checkered cube")
		return
	}

	w, camera, err := createScene(*sceneName, *width, *height)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	render := renderer.NewRender(w, camera, nil)
	if err := render.Finish(); err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	filename := *out
	if filename == "" {
		outputDir := filepath.Join("output", *sceneName)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := savePNG(render.Image(), filename); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the named scene with a camera sized for the
// requested raster.
func createScene(name string, width, height int) (*world.World, *renderer.Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("raster size must be positive, got %dx%d", width, height)
	}
	return scene.Build(name, width, height)
}

// savePNG writes the rendered raster out through a gg context.
func savePNG(img *image.RGBA, path string) error {
	bounds := img.Bounds()
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			dc.SetColor(img.RGBAAt(x, y))
			dc.SetPixel(x, y)
		}
	}
	return dc.SavePNG(path)
}
