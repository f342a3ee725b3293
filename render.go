package snowfall

// foregroundSize splits the population into layers: flakes at least this
// big draw last, in the secondary color, over the smaller primary ones.
const foregroundSize = 7.0

// Render draws one frame: clear, optional background fill, then the
// small flakes in the primary color followed by the large flakes in the
// secondary color. Layering goes by TargetSize, not RenderedSize, so a
// flake never changes layer while fading in.
func Render(dc DrawContext, particles []Particle, cfg *Config) {
	dc.Clear()
	if cfg.Background != "" {
		dc.FillAll(cfg.Background)
	}

	dc.SetFillColor(cfg.Primary)
	for i := range particles {
		p := &particles[i]
		if p.TargetSize < foregroundSize {
			dc.FillCircle(p.Position.X, p.Position.Y, p.RenderedSize)
		}
	}

	dc.SetFillColor(cfg.Secondary)
	for i := range particles {
		p := &particles[i]
		if p.TargetSize >= foregroundSize {
			dc.FillCircle(p.Position.X, p.Position.Y, p.RenderedSize)
		}
	}
}
