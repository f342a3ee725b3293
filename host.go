package snowfall

// Surface is the drawable area the host owns. The engine reads its pixel
// dimensions and subscribes to size changes; it never resizes the
// surface itself.
type Surface interface {
	Width() int
	Height() int
	// OnResize registers fn to run after the surface dimensions change.
	OnResize(fn func())
}

// DrawContext is the immediate-mode 2D API the renderer draws through.
// Colors are hex strings ("#rrggbb"); each host decides how to decode
// them and what to do with ones it cannot parse.
type DrawContext interface {
	// Clear erases the whole surface.
	Clear()
	// FillAll floods the whole surface with color.
	FillAll(color string)
	// SetFillColor selects the color for subsequent FillCircle calls.
	SetFillColor(color string)
	// FillCircle draws a filled circle of the given radius centered at
	// (x, y) in surface pixels.
	FillCircle(x, y, radius float64)
}

// FrameScheduler drives the animation: the engine hands it the callback
// for the next display refresh and re-registers from inside that
// callback for as long as the effect runs.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// ScrollSource reports the host's scroll position. Hosts implement it
// optionally; the engine detects it by type assertion. The offset is
// reserved for scroll-linked motion and does not affect the physics.
type ScrollSource interface {
	ScrollOffset() float64
}

// Host is everything the engine needs from its embedding environment.
type Host interface {
	Surface
	DrawContext
	FrameScheduler
}
