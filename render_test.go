package snowfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawOp records one call against recordingContext.
type drawOp struct {
	kind   string
	color  string
	x, y   float64
	radius float64
}

// recordingContext is a DrawContext that remembers every call, for
// asserting on pass order and colors.
type recordingContext struct {
	fill string
	ops  []drawOp
}

func (r *recordingContext) Clear() {
	r.ops = append(r.ops, drawOp{kind: "clear"})
}

func (r *recordingContext) FillAll(color string) {
	r.ops = append(r.ops, drawOp{kind: "fillAll", color: color})
}

func (r *recordingContext) SetFillColor(color string) {
	r.fill = color
	r.ops = append(r.ops, drawOp{kind: "setColor", color: color})
}

func (r *recordingContext) FillCircle(x, y, radius float64) {
	r.ops = append(r.ops, drawOp{kind: "circle", color: r.fill, x: x, y: y, radius: radius})
}

func (r *recordingContext) circles() []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == "circle" {
			out = append(out, op)
		}
	}
	return out
}

func TestRenderPassOrder(t *testing.T) {
	cfg := NewConfig()
	particles := []Particle{
		{Position: Vector2{X: 1, Y: 2}, TargetSize: 7.5, RenderedSize: 7.5},
		{Position: Vector2{X: 3, Y: 4}, TargetSize: 4, RenderedSize: 4},
	}

	dc := &recordingContext{}
	Render(dc, particles, &cfg)

	// Clear, background fill, primary pass, then secondary pass; the
	// large flake draws last even though it comes first in the slice.
	require.Len(t, dc.ops, 6)
	assert.Equal(t, "clear", dc.ops[0].kind)
	assert.Equal(t, "fillAll", dc.ops[1].kind)
	assert.Equal(t, DefaultBackground, dc.ops[1].color)
	assert.Equal(t, "setColor", dc.ops[2].kind)
	assert.Equal(t, DefaultPrimary, dc.ops[2].color)
	assert.Equal(t, "circle", dc.ops[3].kind)
	assert.Equal(t, 4.0, dc.ops[3].radius)
	assert.Equal(t, "setColor", dc.ops[4].kind)
	assert.Equal(t, DefaultSecondary, dc.ops[4].color)
	assert.Equal(t, "circle", dc.ops[5].kind)
	assert.Equal(t, 7.5, dc.ops[5].radius)
}

func TestRenderLayerFollowsTargetSize(t *testing.T) {
	// A large flake still fading in draws tiny, but in the foreground
	// pass: the layer depends on the target, not the rendered size.
	cfg := NewConfig()
	particles := []Particle{
		{Position: Vector2{X: 9, Y: 9}, TargetSize: 7.5, RenderedSize: 0.3},
	}

	dc := &recordingContext{}
	Render(dc, particles, &cfg)

	circles := dc.circles()
	require.Len(t, circles, 1)
	assert.Equal(t, DefaultSecondary, circles[0].color)
	assert.Equal(t, 0.3, circles[0].radius)
}

func TestRenderBoundarySizeIsForeground(t *testing.T) {
	cfg := NewConfig()
	particles := []Particle{
		{TargetSize: 6.999, RenderedSize: 6.999},
		{TargetSize: 7.0, RenderedSize: 7.0},
	}

	dc := &recordingContext{}
	Render(dc, particles, &cfg)

	circles := dc.circles()
	require.Len(t, circles, 2)
	assert.Equal(t, DefaultPrimary, circles[0].color)
	assert.Equal(t, DefaultSecondary, circles[1].color)
}

func TestRenderEmptyBackgroundSkipsFill(t *testing.T) {
	cfg := NewConfig()
	cfg.Background = ""

	dc := &recordingContext{}
	Render(dc, nil, &cfg)

	require.NotEmpty(t, dc.ops)
	assert.Equal(t, "clear", dc.ops[0].kind)
	for _, op := range dc.ops {
		assert.NotEqual(t, "fillAll", op.kind)
	}
}

func TestRenderDrawsAtParticlePositions(t *testing.T) {
	cfg := NewConfig()
	particles := []Particle{
		{Position: Vector2{X: 12.5, Y: 34.25}, TargetSize: 5, RenderedSize: 4.5},
	}

	dc := &recordingContext{}
	Render(dc, particles, &cfg)

	circles := dc.circles()
	require.Len(t, circles, 1)
	assert.Equal(t, 12.5, circles[0].x)
	assert.Equal(t, 34.25, circles[0].y)
	assert.Equal(t, 4.5, circles[0].radius)
}
