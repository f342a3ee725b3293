package snowfall

import (
	"math"
	"math/rand/v2"
)

// Density is defined against a full-HD surface: a Config.Density of 200
// means 200 flakes at 1920x1080, scaled by area everywhere else.
const (
	referenceWidth  = 1920.0
	referenceHeight = 1080.0
)

// Sampling ranges for freshly seeded particles.
const (
	targetSizeMin      = 3.0
	targetSizeMax      = 8.0
	phaseNoiseMax      = 10.0
	amplitudeJitterMax = 2.0
	frequencyJitterMax = 0.01
)

// Particle is a single snowflake. Particles are created in bulk, mutated
// in place every tick, and replaced wholesale when the surface resizes or
// the density or fade mode change.
type Particle struct {
	Position Vector2

	// TargetSize is the flake's full radius; RenderedSize is the radius
	// drawn this frame. The two differ only while fading in.
	TargetSize   float64
	RenderedSize float64

	// PhaseNoise offsets the sway term so flakes don't move in lockstep.
	PhaseNoise float64

	// AmplitudeJitter and FrequencyJitter are sampled for per-flake wave
	// variation; the simulation does not read them yet.
	AmplitudeJitter float64
	FrequencyJitter float64

	// RandomFactor scales wind and gravity per flake.
	RandomFactor float64
}

// RequiredCount returns the population size for a width x height surface
// at the given density, scaling by area from the reference resolution.
// The count never goes below zero.
func RequiredCount(width, height int, density float64) int {
	n := int(math.Round(density * float64(width) * float64(height) / (referenceWidth * referenceHeight)))
	if n < 0 {
		return 0
	}
	return n
}

// NewParticles seeds n particles uniformly over a width x height surface.
// With fadeIn every flake starts at size zero and grows toward its target;
// otherwise it spawns full-size.
func NewParticles(rng *rand.Rand, n int, width, height float64, fadeIn bool) []Particle {
	particles := make([]Particle, n)
	for i := range particles {
		p := &particles[i]
		p.Position = Vector2{X: rng.Float64() * width, Y: rng.Float64() * height}
		p.TargetSize = targetSizeMin + rng.Float64()*(targetSizeMax-targetSizeMin)
		if !fadeIn {
			p.RenderedSize = p.TargetSize
		}
		p.PhaseNoise = rng.Float64() * phaseNoiseMax
		p.AmplitudeJitter = rng.Float64() * amplitudeJitterMax
		p.FrequencyJitter = rng.Float64() * frequencyJitterMax
		p.RandomFactor = rng.Float64()
	}
	return particles
}
