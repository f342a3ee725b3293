package snowfall

import (
	"math"
	"math/rand/v2"
)

// fadeRatio is the fraction of the remaining gap a fading flake closes
// toward its target size each tick.
const fadeRatio = 0.025

// Advance moves every particle one tick. For each flake it applies wind,
// then gravity (both scaled by the flake's size and random factor), then
// the horizontal sway, wraps it back onto the surface, and grows it
// toward its target size when fading in. tick is the engine's global
// frame counter; the caller increments it after Advance returns.
func Advance(particles []Particle, cfg *Config, tick int64, width, height float64, rng *rand.Rand) {
	for i := range particles {
		p := &particles[i]
		scale := p.TargetSize + p.RandomFactor

		wind := cfg.Wind
		wind.MulScalar(scale)
		p.Position.Add(wind)

		gravity := cfg.Gravity
		gravity.MulScalar(scale)
		p.Position.Add(gravity)

		p.Position.X += cfg.WaveAmplitude * math.Sin(cfg.WaveFrequency*float64(tick)+p.PhaseNoise)

		// Wrap. Each bound is checked once against the freshly moved
		// position and the corrected value is kept as-is, even when a
		// large step leaves it short of the far edge.
		switch {
		case p.Position.X > width:
			p.Position.X = 0
		case p.Position.X < 0:
			p.Position.X = width
		}
		switch {
		case p.Position.Y > height:
			p.Position.Y -= height
			p.Position.X = rng.Float64() * width
		case p.Position.Y < 0:
			p.Position.Y = height - p.Position.Y
			p.Position.X = rng.Float64() * width
		}

		if p.RenderedSize < p.TargetSize {
			p.RenderedSize += (p.TargetSize - p.RenderedSize) * fadeRatio
		}
	}
}
