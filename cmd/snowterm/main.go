// Command snowterm renders the snowfall into the terminal, one cell
// per flake. Esc, q or Ctrl-C quits.
//
// Terminal cells cover far more area than pixels, so the density that
// fills a 1080p window barely seeds a handful of flakes here; the
// defaults compensate.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iburimskiy/snowfall"
	"github.com/iburimskiy/snowfall/termhost"
)

var (
	density   = flag.Float64("density", 40000, "flakes per 1920x1080 of cells")
	fade      = flag.Bool("fade", true, "grow flakes in from nothing")
	gravity   = flag.Float64("gravity", 0.15, "fall speed in cells per tick")
	wind      = flag.Float64("wind", 0, "wind in cells per tick")
	windAngle = flag.Float64("wind-angle", 0, "wind direction in degrees")
	amplitude = flag.Float64("amplitude", 0.4, "sway amplitude in cells")
	interval  = flag.Duration("interval", 50*time.Millisecond, "time between frames")
	bg        = flag.String("background", "", "backdrop hex color; empty keeps the terminal's own")
)

func main() {
	flag.Parse()

	display, err := termhost.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer display.Close()
	display.SetFrameInterval(*interval)

	engine := snowfall.New(display)
	engine.Start(
		snowfall.WithBackground(*bg),
		snowfall.WithDensity(*density),
		snowfall.WithFadeIn(*fade),
		snowfall.WithGravity(snowfall.DefaultGravityAngle, *gravity),
		snowfall.WithWind(*windAngle, *wind),
		snowfall.WithWaveAmplitude(*amplitude),
	)

	display.Run()
}
