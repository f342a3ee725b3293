// Package sdlhost renders the snowfall effect in an SDL window through
// the tfriedel6 canvas, which mirrors the HTML5 canvas drawing API. The
// config's hex colors pass straight through as fill styles.
package sdlhost

import (
	"fmt"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/sdlcanvas"
)

// Display is a snowfall.Host in an SDL window. Run owns the calling
// goroutine; frame callbacks run inside the window's main loop.
type Display struct {
	win *sdlcanvas.Window
	cv  *canvas.Canvas

	width, height int
	resizeFns     []func()
	frame         func()
}

// New opens a width x height SDL window with the given title.
func New(title string, width, height int) (*Display, error) {
	win, cv, err := sdlcanvas.CreateWindow(width, height, title)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return &Display{win: win, cv: cv, width: cv.Width(), height: cv.Height()}, nil
}

// Run drives the window's main loop until it is closed.
func (d *Display) Run() {
	d.win.MainLoop(d.loop)
}

// Close destroys the window. Call after Run returns.
func (d *Display) Close() {
	d.win.Destroy()
}

// loop is one pass of the main loop: adopt any size change, then run
// the pending frame callback.
func (d *Display) loop() {
	if w, h := d.cv.Width(), d.cv.Height(); w != d.width || h != d.height {
		d.width, d.height = w, h
		for _, fn := range d.resizeFns {
			fn()
		}
	}
	if fn := d.frame; fn != nil {
		d.frame = nil
		fn()
	}
}

// Width returns the drawable width in pixels.
func (d *Display) Width() int { return d.width }

// Height returns the drawable height in pixels.
func (d *Display) Height() int { return d.height }

// OnResize registers fn to run after the window is resized.
func (d *Display) OnResize(fn func()) {
	d.resizeFns = append(d.resizeFns, fn)
}

// RequestFrame schedules fn for the next pass of the main loop.
func (d *Display) RequestFrame(fn func()) {
	d.frame = fn
}

// Clear erases the whole drawable area.
func (d *Display) Clear() {
	d.cv.ClearRect(0, 0, float64(d.width), float64(d.height))
}

// FillAll floods the drawable area with the given color.
func (d *Display) FillAll(hex string) {
	d.cv.SetFillStyle(hex)
	d.cv.FillRect(0, 0, float64(d.width), float64(d.height))
}

// SetFillColor selects the color for subsequent FillCircle calls.
func (d *Display) SetFillColor(hex string) {
	d.cv.SetFillStyle(hex)
}

// FillCircle draws a filled circle centered at (x, y).
func (d *Display) FillCircle(x, y, radius float64) {
	d.cv.BeginPath()
	d.cv.Arc(x, y, radius, 0, math.Pi*2, false)
	d.cv.ClosePath()
	d.cv.Fill()
}
