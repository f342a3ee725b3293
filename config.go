package snowfall

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Defaults applied by NewConfig. Colors are hex strings in whatever form
// the host's draw context understands; the stock palette is a near-black
// night sky with muted small flakes and white large ones.
const (
	DefaultBackground    = "#0d0014"
	DefaultPrimary       = "#8d90b7"
	DefaultSecondary     = "#ffffff"
	DefaultDensity       = 200.0
	DefaultWaveAmplitude = 1.0
	DefaultWaveFrequency = 0.02

	DefaultGravityAngle    = 90.0
	DefaultGravityStrength = 0.7
	DefaultWindAngle       = 0.0
	DefaultWindStrength    = 0.0
)

// ScheduleDensity replaces any configured density when the effect is
// started through Schedule.
const ScheduleDensity = 100.0

// Config holds the live parameters of one snowfall effect. The engine
// reads it every tick; mutate it only through options and setters.
type Config struct {
	// Background fills the surface behind the flakes; "" disables the
	// fill and leaves whatever the host put there.
	Background string
	// Primary colors the small (background layer) flakes, Secondary the
	// large (foreground layer) ones.
	Primary   string
	Secondary string

	// Density is the flake count on a 1920x1080 surface; actual counts
	// scale with surface area.
	Density float64

	// Gravity and Wind displace each flake every tick, scaled by the
	// flake's size and random factor.
	Gravity Vector2
	Wind    Vector2

	// WaveAmplitude and WaveFrequency shape the horizontal sway.
	WaveAmplitude float64
	WaveFrequency float64

	// FadeIn makes freshly seeded flakes grow in from nothing.
	FadeIn bool

	// Scroll is reserved for scroll-linked motion; stored, not consumed.
	Scroll bool

	// FlakeSize is accepted from seasonal presets for compatibility;
	// nothing reads it.
	FlakeSize float64
}

// NewConfig returns a Config with the stock palette, density 200, gentle
// downward gravity and no wind.
func NewConfig() Config {
	return Config{
		Background:    DefaultBackground,
		Primary:       DefaultPrimary,
		Secondary:     DefaultSecondary,
		Density:       DefaultDensity,
		Gravity:       vectorFromPolar(DefaultGravityAngle, DefaultGravityStrength),
		Wind:          vectorFromPolar(DefaultWindAngle, DefaultWindStrength),
		WaveAmplitude: DefaultWaveAmplitude,
		WaveFrequency: DefaultWaveFrequency,
	}
}

func vectorFromPolar(angleDeg, strength float64) Vector2 {
	v := VectorFromDegrees(angleDeg)
	v.MulScalar(strength)
	return v
}

// ScheduleConfig gates Start by calendar month, the way site presets run
// snow only through the winter.
type ScheduleConfig struct {
	// Months lists when the effect may start. Empty never matches.
	Months []time.Month
	// FlakeSize is carried into the Config for preset compatibility.
	FlakeSize float64
}

// Option adjusts one configuration value. Options merge over the current
// configuration: anything not mentioned keeps its previous value.
type Option func(*settings)

// settings accumulates options before they touch a Config, so paired
// angle/strength values resolve together.
type settings struct {
	background *string
	primary    *string
	secondary  *string

	density       *float64
	waveAmplitude *float64
	waveFrequency *float64
	fadeIn        *bool
	scroll        *bool
	flakeSize     *float64

	gravityAngle    *float64
	gravityStrength *float64
	windAngle       *float64
	windStrength    *float64

	logger *zap.Logger
	rng    *rand.Rand
	now    func() time.Time
}

func gatherOptions(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// apply merges the gathered values onto cfg. A gravity or wind angle
// given without its strength (or the reverse) is completed with that
// pair's default before the vector is rebuilt; pairs never mentioned
// stay untouched.
func (s *settings) apply(cfg *Config) {
	if s.background != nil {
		cfg.Background = *s.background
	}
	if s.primary != nil {
		cfg.Primary = *s.primary
	}
	if s.secondary != nil {
		cfg.Secondary = *s.secondary
	}
	if s.density != nil {
		cfg.Density = *s.density
	}
	if s.waveAmplitude != nil {
		cfg.WaveAmplitude = *s.waveAmplitude
	}
	if s.waveFrequency != nil {
		cfg.WaveFrequency = *s.waveFrequency
	}
	if s.fadeIn != nil {
		cfg.FadeIn = *s.fadeIn
	}
	if s.scroll != nil {
		cfg.Scroll = *s.scroll
	}
	if s.flakeSize != nil {
		cfg.FlakeSize = *s.flakeSize
	}

	if s.gravityAngle != nil || s.gravityStrength != nil {
		angle, strength := DefaultGravityAngle, DefaultGravityStrength
		if s.gravityAngle != nil {
			angle = *s.gravityAngle
		}
		if s.gravityStrength != nil {
			strength = *s.gravityStrength
		}
		cfg.Gravity = vectorFromPolar(angle, strength)
	}
	if s.windAngle != nil || s.windStrength != nil {
		angle, strength := DefaultWindAngle, DefaultWindStrength
		if s.windAngle != nil {
			angle = *s.windAngle
		}
		if s.windStrength != nil {
			strength = *s.windStrength
		}
		cfg.Wind = vectorFromPolar(angle, strength)
	}
}

// WithBackground sets the backdrop fill; pass "" to draw the flakes over
// whatever the host already painted.
func WithBackground(hex string) Option {
	return func(s *settings) { s.background = &hex }
}

// WithPrimary sets the small-flake color.
func WithPrimary(hex string) Option {
	return func(s *settings) { s.primary = &hex }
}

// WithSecondary sets the large-flake color.
func WithSecondary(hex string) Option {
	return func(s *settings) { s.secondary = &hex }
}

// WithDensity sets the flake count per 1920x1080 of surface.
func WithDensity(d float64) Option {
	return func(s *settings) { s.density = &d }
}

// WithWaveAmplitude sets the horizontal sway amplitude in pixels.
func WithWaveAmplitude(a float64) Option {
	return func(s *settings) { s.waveAmplitude = &a }
}

// WithWaveFrequency sets the sway frequency in radians per tick.
func WithWaveFrequency(f float64) Option {
	return func(s *settings) { s.waveFrequency = &f }
}

// WithFadeIn makes seeded flakes grow in from size zero.
func WithFadeIn(on bool) Option {
	return func(s *settings) { s.fadeIn = &on }
}

// WithScroll stores the reserved scroll flag.
func WithScroll(on bool) Option {
	return func(s *settings) { s.scroll = &on }
}

// WithFlakeSize stores the preset flake size pass-through.
func WithFlakeSize(size float64) Option {
	return func(s *settings) { s.flakeSize = &size }
}

// WithGravity sets the gravity vector from an angle in degrees and a
// per-tick strength.
func WithGravity(angleDeg, strength float64) Option {
	return func(s *settings) {
		s.gravityAngle = &angleDeg
		s.gravityStrength = &strength
	}
}

// WithGravityAngle sets the gravity direction, keeping the default
// strength unless one is also given.
func WithGravityAngle(deg float64) Option {
	return func(s *settings) { s.gravityAngle = &deg }
}

// WithGravityStrength sets the gravity strength, keeping the default
// angle unless one is also given.
func WithGravityStrength(strength float64) Option {
	return func(s *settings) { s.gravityStrength = &strength }
}

// WithWind sets the wind vector from an angle in degrees and a per-tick
// strength.
func WithWind(angleDeg, strength float64) Option {
	return func(s *settings) {
		s.windAngle = &angleDeg
		s.windStrength = &strength
	}
}

// WithWindAngle sets the wind direction, keeping the default strength
// unless one is also given.
func WithWindAngle(deg float64) Option {
	return func(s *settings) { s.windAngle = &deg }
}

// WithWindStrength sets the wind strength, keeping the default angle
// unless one is also given.
func WithWindStrength(strength float64) Option {
	return func(s *settings) { s.windStrength = &strength }
}

// WithLogger directs the engine's diagnostics. The default logger
// discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithRand fixes the random source used for seeding and wrap resampling.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) { s.rng = r }
}

// WithNow overrides the clock Schedule consults.
func WithNow(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}
