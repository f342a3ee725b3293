package snowfall

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestRequiredCount(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		density       float64
		want          int
	}{
		{"Reference surface", 1920, 1080, 200, 200},
		{"Quarter area", 960, 540, 200, 50},
		{"Seasonal density", 1920, 1080, 100, 100},
		{"Rounds to nearest", 100, 100, 200, 1},
		{"Zero surface", 0, 0, 200, 0},
		{"Negative density clamps", 1920, 1080, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredCount(tt.width, tt.height, tt.density))
		})
	}
}

func TestNewParticlesRanges(t *testing.T) {
	particles := NewParticles(newTestRand(1), 500, 800, 600, false)
	require.Len(t, particles, 500)

	for _, p := range particles {
		assert.GreaterOrEqual(t, p.Position.X, 0.0)
		assert.Less(t, p.Position.X, 800.0)
		assert.GreaterOrEqual(t, p.Position.Y, 0.0)
		assert.Less(t, p.Position.Y, 600.0)
		assert.GreaterOrEqual(t, p.TargetSize, 3.0)
		assert.Less(t, p.TargetSize, 8.0)
		assert.Equal(t, p.TargetSize, p.RenderedSize)
		assert.GreaterOrEqual(t, p.PhaseNoise, 0.0)
		assert.Less(t, p.PhaseNoise, 10.0)
		assert.GreaterOrEqual(t, p.AmplitudeJitter, 0.0)
		assert.Less(t, p.AmplitudeJitter, 2.0)
		assert.GreaterOrEqual(t, p.FrequencyJitter, 0.0)
		assert.Less(t, p.FrequencyJitter, 0.01)
		assert.GreaterOrEqual(t, p.RandomFactor, 0.0)
		assert.Less(t, p.RandomFactor, 1.0)
	}
}

func TestNewParticlesFadeIn(t *testing.T) {
	particles := NewParticles(newTestRand(2), 100, 400, 300, true)
	require.Len(t, particles, 100)
	for _, p := range particles {
		assert.Zero(t, p.RenderedSize)
		assert.GreaterOrEqual(t, p.TargetSize, 3.0)
	}
}

func TestNewParticlesEmpty(t *testing.T) {
	assert.Empty(t, NewParticles(newTestRand(3), 0, 100, 100, false))
}
