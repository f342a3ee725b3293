package ebitenhost

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutNotifiesResize(t *testing.T) {
	d := New(640, 480)
	var calls int
	d.OnResize(func() { calls++ })

	w, h := d.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Zero(t, calls, "same size must not notify")

	w, h = d.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 800, d.Width())
	assert.Equal(t, 600, d.Height())
}

func TestLayoutClampsToOnePixel(t *testing.T) {
	d := New(10, 10)
	w, h := d.Layout(0, 0)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestDrawRunsPendingFrameOnce(t *testing.T) {
	d := New(1, 1)
	var runs int
	d.RequestFrame(func() { runs++ })

	d.Draw(nil)
	assert.Equal(t, 1, runs)
	d.Draw(nil)
	assert.Equal(t, 1, runs, "callback must not rerun without a new request")
}

func TestFrameCallbackMayRequestNext(t *testing.T) {
	d := New(1, 1)
	var runs int
	var loop func()
	loop = func() {
		runs++
		d.RequestFrame(loop)
	}
	d.RequestFrame(loop)

	d.Draw(nil)
	d.Draw(nil)
	assert.Equal(t, 2, runs)
}

func TestColorParseAndFallback(t *testing.T) {
	d := New(1, 1)
	d.SetFillColor("#8d90b7")
	assert.Equal(t, color.RGBA{R: 0x8d, G: 0x90, B: 0xb7, A: 255}, d.fill)

	d.SetFillColor("not-a-color")
	assert.Equal(t, color.Color(color.White), d.fill)

	// Cached entries come back identical.
	d.SetFillColor("#8d90b7")
	assert.Equal(t, color.RGBA{R: 0x8d, G: 0x90, B: 0xb7, A: 255}, d.fill)
}
