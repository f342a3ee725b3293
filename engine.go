package snowfall

import (
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Engine runs one snowfall effect on one host. It starts in the stopped
// state; Start (or a matching Schedule) moves it to running, where it
// stays until the host stops scheduling frames. All methods are safe to
// call from other goroutines: a single mutex covers each tick and every
// setter.
type Engine struct {
	host   Host
	scroll ScrollSource

	mu        sync.Mutex
	cfg       Config
	particles []Particle
	tick      int64
	width     int
	height    int
	running   bool

	// scrollOffset mirrors the host's scroll position while the scroll
	// flag is on; the physics does not read it yet.
	scrollOffset float64

	log *zap.Logger
	rng *rand.Rand
	now func() time.Time
}

// New prepares an engine on host. Options given here and options given
// to Start merge onto the same configuration; the engine stays idle
// until Start or Schedule.
func New(host Host, opts ...Option) *Engine {
	e := &Engine{
		host: host,
		cfg:  NewConfig(),
		log:  zap.NewNop(),
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:  time.Now,
	}
	e.scroll, _ = host.(ScrollSource)
	e.applyOptions(opts)
	return e
}

// applyOptions merges opts onto the engine. Callers hold e.mu, except
// New, where the engine is not yet shared.
func (e *Engine) applyOptions(opts []Option) {
	s := gatherOptions(opts)
	if s.logger != nil {
		e.log = s.logger
	}
	if s.rng != nil {
		e.rng = s.rng
	}
	if s.now != nil {
		e.now = s.now
	}
	s.apply(&e.cfg)
}

// Start merges opts over the current configuration, sizes the effect to
// the surface, seeds the population and requests the first frame. On a
// running engine it does nothing.
func (e *Engine) Start(opts ...Option) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.applyOptions(opts)
	e.width, e.height = e.host.Width(), e.host.Height()
	e.reseed()
	e.running = true
	count, w, h := len(e.particles), e.width, e.height
	e.mu.Unlock()

	e.log.Info("snowfall started",
		zap.Int("particles", count),
		zap.Int("width", w),
		zap.Int("height", h))
	e.host.OnResize(e.handleResize)
	e.host.RequestFrame(e.frame)
}

// Schedule starts the effect only when the current month is listed in
// sched, the way seasonal presets run snow through the winter. A
// scheduled start pins the density to ScheduleDensity regardless of opts
// and carries sched.FlakeSize into the configuration. Outside the listed
// months nothing happens.
func (e *Engine) Schedule(sched ScheduleConfig, opts ...Option) {
	e.mu.Lock()
	s := gatherOptions(opts)
	if s.logger != nil {
		e.log = s.logger
	}
	if s.now != nil {
		e.now = s.now
	}
	month := e.now().Month()
	log := e.log
	e.mu.Unlock()

	if !monthListed(sched.Months, month) {
		log.Debug("outside scheduled months", zap.Stringer("month", month))
		return
	}
	log.Info("seasonal snowfall active", zap.Stringer("month", month))
	e.Start(append(opts, WithDensity(ScheduleDensity), WithFlakeSize(sched.FlakeSize))...)
}

func monthListed(months []time.Month, m time.Month) bool {
	for _, want := range months {
		if want == m {
			return true
		}
	}
	return false
}

// frame is one scheduled tick: advance, render, request the next frame.
// It runs on the host's frame goroutine; the lock keeps setters on other
// goroutines out of the middle of a tick.
func (e *Engine) frame() {
	e.mu.Lock()
	if e.cfg.Scroll && e.scroll != nil {
		e.scrollOffset = e.scroll.ScrollOffset()
	}
	Advance(e.particles, &e.cfg, e.tick, float64(e.width), float64(e.height), e.rng)
	e.tick++
	Render(e.host, e.particles, &e.cfg)
	e.mu.Unlock()

	e.host.RequestFrame(e.frame)
}

// handleResize adopts the new surface dimensions and replaces the whole
// population, so the next frame renders a freshly seeded sky.
func (e *Engine) handleResize() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.width, e.height = e.host.Width(), e.host.Height()
	e.reseed()
}

// reseed replaces the population for the current size and configuration.
// Callers hold e.mu.
func (e *Engine) reseed() {
	n := RequiredCount(e.width, e.height, e.cfg.Density)
	e.particles = NewParticles(e.rng, n, float64(e.width), float64(e.height), e.cfg.FadeIn)
	e.log.Debug("population reseeded",
		zap.Int("count", n),
		zap.Int("width", e.width),
		zap.Int("height", e.height),
		zap.Float64("density", e.cfg.Density))
}

// SetBackground changes the backdrop fill for the next frame; "" removes
// the fill.
func (e *Engine) SetBackground(hex string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Background = hex
}

// SetPrimary changes the small-flake color for the next frame.
func (e *Engine) SetPrimary(hex string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Primary = hex
}

// SetSecondary changes the large-flake color for the next frame.
func (e *Engine) SetSecondary(hex string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Secondary = hex
}

// SetAmplitude changes the sway amplitude for the next frame.
func (e *Engine) SetAmplitude(a float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.WaveAmplitude = a
}

// SetFrequency changes the sway frequency for the next frame.
func (e *Engine) SetFrequency(f float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.WaveFrequency = f
}

// SetGravity rebuilds the gravity vector from an angle in degrees and a
// per-tick strength, effective next frame.
func (e *Engine) SetGravity(angleDeg, strength float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Gravity = vectorFromPolar(angleDeg, strength)
}

// SetWind rebuilds the wind vector from an angle in degrees and a
// per-tick strength, effective next frame.
func (e *Engine) SetWind(angleDeg, strength float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Wind = vectorFromPolar(angleDeg, strength)
}

// SetScroll stores the reserved scroll flag.
func (e *Engine) SetScroll(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Scroll = on
}

// SetDensity changes the population target and rebuilds all particles
// immediately, discarding their current positions.
func (e *Engine) SetDensity(d float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Density = d
	if e.running {
		e.reseed()
	}
}

// SetFade toggles fade-in and rebuilds the population immediately; with
// fade enabled the rebuilt flakes grow in from nothing.
func (e *Engine) SetFade(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.FadeIn = on
	if e.running {
		e.reseed()
	}
}

// Config returns a snapshot of the current configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// ParticleCount returns the size of the live population.
func (e *Engine) ParticleCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.particles)
}

// Running reports whether Start has begun the effect.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}
