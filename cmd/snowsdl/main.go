// Command snowsdl renders the snowfall through SDL2, for machines
// where an OpenGL-backed ebiten window is not an option.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iburimskiy/snowfall"
	"github.com/iburimskiy/snowfall/sdlhost"
)

var (
	width   = flag.Int("width", 1280, "window width in pixels")
	height  = flag.Int("height", 720, "window height in pixels")
	density = flag.Float64("density", snowfall.DefaultDensity, "flakes per 1920x1080 of window")
	fade    = flag.Bool("fade", false, "grow flakes in from nothing")
	wind    = flag.Float64("wind", 0.3, "wind in pixels per tick")
)

func main() {
	flag.Parse()

	display, err := sdlhost.New("Snowfall", *width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer display.Close()

	engine := snowfall.New(display)
	engine.Start(
		snowfall.WithDensity(*density),
		snowfall.WithFadeIn(*fade),
		snowfall.WithWind(snowfall.DefaultWindAngle, *wind),
	)

	display.Run()
}
