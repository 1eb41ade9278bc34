// Command viewer opens a window and displays the render as it
// progresses, a few columns per frame, so the first image appears
// immediately. Press Escape to close.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lumen/pkg/renderer"
	"lumen/pkg/scene"
)

// columnsPerFrame balances render throughput against input latency at
// 60 ticks per second.
const columnsPerFrame = 8

type game struct {
	render *renderer.Render
	frame  *ebiten.Image
	width  int
	height int
	title  string
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for i := 0; i < columnsPerFrame; i++ {
		done, err := g.render.Step()
		if err != nil {
			return err
		}
		if done {
			break
		}
	}

	stats := g.render.Stats()
	if stats.Complete() {
		ebiten.SetWindowTitle(g.title)
	} else {
		ebiten.SetWindowTitle(fmt.Sprintf("%s (%d%%)", g.title, int(stats.Progress()*100)))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.frame.WritePixels(g.render.Image().Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	sceneName := flag.String("scene", "showcase", "Scene to render: 'default' or 'showcase'")
	width := flag.Int("width", 480, "Raster width in pixels")
	height := flag.Int("height", 270, "Raster height in pixels")
	flag.Parse()

	w, camera, err := scene.Build(*sceneName, *width, *height)
	if err != nil {
		log.Fatal(err)
	}

	g := &game{
		render: renderer.NewRender(w, camera, renderer.NewDefaultLogger()),
		frame:  ebiten.NewImage(*width, *height),
		width:  *width,
		height: *height,
		title:  fmt.Sprintf("Lumen - %s", *sceneName),
	}

	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowSize(*width*2, *height*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
