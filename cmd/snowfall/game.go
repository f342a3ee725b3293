package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/snowfall"
	"github.com/iburimskiy/snowfall/ebitenhost"
	"github.com/iburimskiy/snowfall/internal/ambience"
)

const (
	windStep    = 0.1
	gravityStep = 0.1
	densityStep = 25.0

	// windGain scales the ambience level (roughly 0..0.5 for music)
	// into a visible wind boost.
	windGain = 3.0
)

type game struct {
	display *ebitenhost.Display
	engine  *snowfall.Engine
	player  *ambience.Player
	log     *zap.Logger

	prevKey map[ebiten.Key]bool

	windAngle       float64
	windStrength    float64
	gravityAngle    float64
	gravityStrength float64
	windFromAudio   bool
	fade            bool
	debug           bool

	lastErr string
}

func newGame(display *ebitenhost.Display, engine *snowfall.Engine, log *zap.Logger) *game {
	return &game{
		display: display,
		engine:  engine,
		player:  &ambience.Player{},
		log:     log,
		prevKey: make(map[ebiten.Key]bool),
	}
}

func (g *game) Update() error {
	justPressed := func(key ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(key)
		was := g.prevKey[key]
		g.prevKey[key] = pressed
		return pressed && !was
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if justPressed(ebiten.KeyO) {
		g.openTrack()
	}
	if justPressed(ebiten.KeyF) {
		g.fade = !g.fade
		g.engine.SetFade(g.fade)
	}
	if justPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	if justPressed(ebiten.KeyArrowLeft) {
		g.windStrength -= windStep
		g.engine.SetWind(g.windAngle, g.windStrength)
	}
	if justPressed(ebiten.KeyArrowRight) {
		g.windStrength += windStep
		g.engine.SetWind(g.windAngle, g.windStrength)
	}
	if justPressed(ebiten.KeyArrowUp) {
		g.gravityStrength += gravityStep
		g.engine.SetGravity(g.gravityAngle, g.gravityStrength)
	}
	if justPressed(ebiten.KeyArrowDown) {
		g.gravityStrength -= gravityStep
		g.engine.SetGravity(g.gravityAngle, g.gravityStrength)
	}
	if justPressed(ebiten.KeyEqual) {
		g.engine.SetDensity(g.engine.Config().Density + densityStep)
	}
	if justPressed(ebiten.KeyMinus) {
		d := g.engine.Config().Density - densityStep
		if d < 0 {
			d = 0
		}
		g.engine.SetDensity(d)
	}

	if g.windFromAudio && g.player.Playing() {
		g.engine.SetWind(g.windAngle, g.windStrength+g.player.Level()*windGain)
	}
	return nil
}

func (g *game) openTrack() {
	path, err := zenity.SelectFile(
		zenity.Title("Open Ambience Track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err.Error()
			g.log.Warn("file dialog failed", zap.Error(err))
		}
		return
	}
	if err := g.player.Open(path); err != nil {
		g.lastErr = err.Error()
		g.log.Warn("ambience failed to open", zap.String("path", path), zap.Error(err))
		return
	}
	g.lastErr = ""
	g.log.Info("ambience playing", zap.String("path", path))
}

func (g *game) Draw(screen *ebiten.Image) {
	g.display.Draw(screen)

	if g.debug {
		msg := fmt.Sprintf("TPS %.0f | flakes %d | wind %.2f | gravity %.2f",
			ebiten.ActualTPS(), g.engine.ParticleCount(), g.windStrength, g.gravityStrength)
		if g.player.Playing() {
			msg += fmt.Sprintf(" | level %.3f", g.player.Level())
		}
		ebitenutil.DebugPrintAt(screen, msg, 12, 12)
	}
	if g.lastErr != "" {
		ebitenutil.DebugPrintAt(screen, g.lastErr, 12, 28)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.Layout(outsideWidth, outsideHeight)
}
