// Command snowsvg runs the simulation headless for a number of ticks
// and writes the final frame to stdout as SVG.
//
//	snowsvg -ticks 900 -seed 7 > snow.svg
package main

import (
	"flag"
	"math"
	"math/rand/v2"
	"os"

	"github.com/ajstarks/svgo"

	"github.com/iburimskiy/snowfall"
)

var (
	width     = flag.Int("width", 1920, "canvas width in pixels")
	height    = flag.Int("height", 1080, "canvas height in pixels")
	ticks     = flag.Int("ticks", 600, "simulation ticks before the snapshot")
	density   = flag.Float64("density", snowfall.DefaultDensity, "flakes per 1920x1080 of canvas")
	fade      = flag.Bool("fade", false, "grow flakes in from nothing")
	wind      = flag.Float64("wind", 0, "wind in pixels per tick")
	bg        = flag.String("background", snowfall.DefaultBackground, "backdrop hex color; empty for transparent")
	primary   = flag.String("primary", snowfall.DefaultPrimary, "small-flake hex color")
	secondary = flag.String("secondary", snowfall.DefaultSecondary, "large-flake hex color")
	seed      = flag.Uint64("seed", 1, "random seed; the same seed draws the same frame")
)

// svgDrawing adapts an svgo canvas to the renderer. Every run starts a
// fresh document, so Clear has nothing to erase.
type svgDrawing struct {
	canvas        *svg.SVG
	width, height int
	fill          string
}

func (d *svgDrawing) Clear() {}

func (d *svgDrawing) FillAll(color string) {
	d.canvas.Rect(0, 0, d.width, d.height, "fill:"+color)
}

func (d *svgDrawing) SetFillColor(color string) {
	d.fill = color
}

func (d *svgDrawing) FillCircle(x, y, radius float64) {
	r := int(math.Round(radius))
	if r < 1 {
		return
	}
	d.canvas.Circle(int(math.Round(x)), int(math.Round(y)), r, "fill:"+d.fill)
}

func main() {
	flag.Parse()

	cfg := snowfall.NewConfig()
	cfg.Background = *bg
	cfg.Primary = *primary
	cfg.Secondary = *secondary
	cfg.Density = *density
	cfg.FadeIn = *fade
	if *wind != 0 {
		cfg.Wind = snowfall.VectorFromDegrees(snowfall.DefaultWindAngle)
		cfg.Wind.MulScalar(*wind)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	w, h := float64(*width), float64(*height)

	particles := snowfall.NewParticles(rng, snowfall.RequiredCount(*width, *height, cfg.Density), w, h, cfg.FadeIn)
	for tick := int64(0); tick < int64(*ticks); tick++ {
		snowfall.Advance(particles, &cfg, tick, w, h, rng)
	}

	canvas := svg.New(os.Stdout)
	canvas.Start(*width, *height)
	snowfall.Render(&svgDrawing{canvas: canvas, width: *width, height: *height}, particles, &cfg)
	canvas.End()
}
