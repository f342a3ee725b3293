// Package snowfall renders an animated snowfall effect onto any 2D
// surface the host provides.
//
// The package splits into small parts: Vector2 (mutable 2D math),
// Particle and its population helpers, Config with functional options,
// Advance (the per-tick physics) and Render (the two-layer draw pass).
// Engine ties them to a Host: it seeds a population sized to the
// surface, advances and renders once per scheduled frame, and rebuilds
// the population when the surface resizes or the density or fade mode
// change.
//
// Ready-made hosts for ebiten windows, terminals (tcell) and SDL
// canvases live in the ebitenhost, termhost and sdlhost packages; any
// type satisfying Host works.
package snowfall
