// Package termhost renders the snowfall effect into a terminal through
// tcell. One cell is one pixel: flakes become glyphs picked by radius,
// and cell colors come from the same hex strings the other hosts use.
package termhost

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// defaultFrameInterval approximates a 60 FPS terminal refresh.
const defaultFrameInterval = 16 * time.Millisecond

// Display is a snowfall.Host on a tcell screen. Run owns the calling
// goroutine and executes frame callbacks on it.
type Display struct {
	screen tcell.Screen

	interval  time.Duration
	bg        tcell.Color
	style     tcell.Style
	resizeFns []func()
	frame     func()
	colors    map[string]tcell.Color

	quit     chan struct{}
	stopOnce sync.Once
}

// New creates a display on the default terminal screen.
func New() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an already initialized screen. Tests hand in a
// tcell.SimulationScreen.
func NewWithScreen(screen tcell.Screen) *Display {
	return &Display{
		screen:   screen,
		interval: defaultFrameInterval,
		bg:       tcell.ColorDefault,
		style:    tcell.StyleDefault,
		colors:   map[string]tcell.Color{},
		quit:     make(chan struct{}),
	}
}

// SetFrameInterval changes the tick rate. Call before Run.
func (d *Display) SetFrameInterval(dt time.Duration) {
	d.interval = dt
}

// Run drives the frame loop until Stop, Escape, Ctrl-C or 'q'.
func (d *Display) Run() {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case <-d.quit:
			return
		case ev := <-events:
			if !d.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if fn := d.frame; fn != nil {
				d.frame = nil
				fn()
				d.screen.Show()
			}
		}
	}
}

func (d *Display) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		d.screen.Sync()
		for _, fn := range d.resizeFns {
			fn()
		}
	}
	return true
}

// Stop ends Run from any goroutine.
func (d *Display) Stop() {
	d.stopOnce.Do(func() { close(d.quit) })
}

// Close releases the terminal. Call after Run returns.
func (d *Display) Close() {
	d.screen.Fini()
}

// Width returns the screen width in cells.
func (d *Display) Width() int {
	w, _ := d.screen.Size()
	return w
}

// Height returns the screen height in cells.
func (d *Display) Height() int {
	_, h := d.screen.Size()
	return h
}

// OnResize registers fn to run after the terminal is resized.
func (d *Display) OnResize(fn func()) {
	d.resizeFns = append(d.resizeFns, fn)
}

// RequestFrame schedules fn for the next tick of Run.
func (d *Display) RequestFrame(fn func()) {
	d.frame = fn
}

// Clear erases every cell.
func (d *Display) Clear() {
	d.screen.Clear()
}

// FillAll paints every cell's background with the given hex color.
func (d *Display) FillAll(hex string) {
	d.bg = d.color(hex)
	d.screen.Fill(' ', tcell.StyleDefault.Background(d.bg))
}

// SetFillColor selects the glyph color for subsequent flakes.
func (d *Display) SetFillColor(hex string) {
	d.style = tcell.StyleDefault.Foreground(d.color(hex)).Background(d.bg)
}

// FillCircle places one flake glyph at the cell containing (x, y).
// Radii under half a cell stay invisible, matching a zero-area circle.
func (d *Display) FillCircle(x, y, radius float64) {
	if radius < 0.5 {
		return
	}
	d.screen.SetContent(int(x), int(y), flakeRune(radius), nil, d.style)
}

// flakeRune maps a circle radius onto a glyph of roughly matching
// visual weight.
func flakeRune(radius float64) rune {
	switch {
	case radius < 2:
		return '·'
	case radius < 4:
		return '•'
	case radius < 6:
		return '*'
	default:
		return '❄'
	}
}

// color parses a hex string, caching the result. Strings that do not
// parse render white.
func (d *Display) color(hex string) tcell.Color {
	if c, ok := d.colors[hex]; ok {
		return c
	}
	c := tcell.ColorWhite
	if parsed, err := colorful.Hex(hex); err == nil {
		r, g, b := parsed.RGB255()
		c = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	d.colors[hex] = c
	return c
}
