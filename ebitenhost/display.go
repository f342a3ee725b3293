// Package ebitenhost adapts an ebiten game window into a snowfall.Host.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Display is a snowfall.Host drawn with ebiten. It satisfies the
// ebiten.Game contract, so it can be passed to ebiten.RunGame directly
// or embedded in a larger game that forwards Draw and Layout.
//
// Frame callbacks run inside Draw with that frame's target image bound,
// so the engine steps exactly once per rendered frame.
type Display struct {
	width, height int
	screen        *ebiten.Image
	fill          color.Color
	resizeFns     []func()
	frame         func()
	colors        map[string]color.Color
}

// New returns a display with the given initial logical size in pixels.
// The size tracks the window once the game is running.
func New(width, height int) *Display {
	return &Display{
		width:  width,
		height: height,
		fill:   color.White,
		colors: map[string]color.Color{},
	}
}

// Width returns the logical surface width.
func (d *Display) Width() int { return d.width }

// Height returns the logical surface height.
func (d *Display) Height() int { return d.height }

// OnResize registers fn to run after the logical size changes.
func (d *Display) OnResize(fn func()) {
	d.resizeFns = append(d.resizeFns, fn)
}

// RequestFrame schedules fn to run during the next Draw.
func (d *Display) RequestFrame(fn func()) {
	d.frame = fn
}

// Update implements ebiten.Game. The display has no input handling of
// its own; embedding games layer theirs on top.
func (d *Display) Update() error { return nil }

// Draw implements ebiten.Game: it binds screen and runs the pending
// frame callback, which advances and renders the effect. A callback
// that wants another frame re-registers from inside.
func (d *Display) Draw(screen *ebiten.Image) {
	d.screen = screen
	if fn := d.frame; fn != nil {
		d.frame = nil
		fn()
	}
	d.screen = nil
}

// Layout implements ebiten.Game. It adopts the outside size as the
// logical size and notifies resize subscribers when it changes.
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != d.width || outsideHeight != d.height {
		d.width, d.height = outsideWidth, outsideHeight
		for _, fn := range d.resizeFns {
			fn()
		}
	}
	return d.width, d.height
}

// Clear erases the frame. ebiten hands Draw an already cleared image,
// so there is nothing to do.
func (d *Display) Clear() {}

// FillAll floods the frame with the given hex color.
func (d *Display) FillAll(hex string) {
	if d.screen == nil {
		return
	}
	d.screen.Fill(d.color(hex))
}

// SetFillColor selects the color for subsequent FillCircle calls.
func (d *Display) SetFillColor(hex string) {
	d.fill = d.color(hex)
}

// FillCircle draws a filled circle centered at (x, y).
func (d *Display) FillCircle(x, y, radius float64) {
	if d.screen == nil {
		return
	}
	vector.DrawFilledCircle(d.screen, float32(x), float32(y), float32(radius), d.fill, false)
}

// color parses a hex string, caching the result. Strings that do not
// parse draw as opaque white.
func (d *Display) color(hex string) color.Color {
	if c, ok := d.colors[hex]; ok {
		return c
	}
	var c color.Color = color.White
	if parsed, err := colorful.Hex(hex); err == nil {
		r, g, b := parsed.RGB255()
		c = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	d.colors[hex] = c
	return c
}
