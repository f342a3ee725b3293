// Command snowfall opens a window of falling snow. Presets come from
// flags, a snowfall.yaml file or SNOWFALL_* environment variables; keys
// adjust the weather live, and an optional ambience track can drive the
// wind.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/snowfall"
	"github.com/iburimskiy/snowfall/ebitenhost"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "snowfall",
		Short: "Animated snowfall in a resizable window",
		RunE:  run,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./snowfall.yaml)")

	flags := rootCmd.Flags()
	flags.Int("width", 1280, "window width in pixels")
	flags.Int("height", 720, "window height in pixels")
	flags.String("background", snowfall.DefaultBackground, "backdrop hex color; empty disables the fill")
	flags.String("primary", snowfall.DefaultPrimary, "small-flake hex color")
	flags.String("secondary", snowfall.DefaultSecondary, "large-flake hex color")
	flags.Float64("density", snowfall.DefaultDensity, "flakes per 1920x1080 of window")
	flags.Bool("fade", false, "grow flakes in from nothing")
	flags.Float64("amplitude", snowfall.DefaultWaveAmplitude, "sway amplitude in pixels")
	flags.Float64("frequency", snowfall.DefaultWaveFrequency, "sway frequency in radians per tick")
	flags.Float64("gravity-angle", snowfall.DefaultGravityAngle, "gravity direction in degrees")
	flags.Float64("gravity-strength", snowfall.DefaultGravityStrength, "gravity in pixels per tick")
	flags.Float64("wind-angle", snowfall.DefaultWindAngle, "wind direction in degrees")
	flags.Float64("wind-strength", snowfall.DefaultWindStrength, "wind in pixels per tick")
	flags.IntSlice("months", nil, "run only during these months (1-12)")
	flags.Float64("flake-size", 0, "seasonal preset flake size pass-through")
	flags.String("ambience", "", "audio file to loop (wav, mp3 or flac)")
	flags.Bool("wind-from-audio", false, "derive wind strength from the ambience level")
	flags.String("log-level", "info", "zap level: debug, info, warn or error")
	flags.Bool("debug", false, "show the TPS and flake-count overlay")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initializeConfig reads the optional preset file and environment, then
// binds the flags so viper resolves precedence: flag > env > file.
func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("snowfall")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SNOWFALL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return viper.BindPFlags(cmd.Flags())
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func run(cmd *cobra.Command, args []string) error {
	if err := initializeConfig(cmd); err != nil {
		return err
	}

	logger, err := newLogger(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	width, height := viper.GetInt("width"), viper.GetInt("height")
	display := ebitenhost.New(width, height)
	engine := snowfall.New(display, engineOptions(logger)...)

	g := newGame(display, engine, logger)
	g.fade = viper.GetBool("fade")
	g.debug = viper.GetBool("debug")
	g.windAngle = viper.GetFloat64("wind-angle")
	g.windStrength = viper.GetFloat64("wind-strength")
	g.gravityAngle = viper.GetFloat64("gravity-angle")
	g.gravityStrength = viper.GetFloat64("gravity-strength")
	g.windFromAudio = viper.GetBool("wind-from-audio")

	if path := viper.GetString("ambience"); path != "" {
		if err := g.player.Open(path); err != nil {
			logger.Warn("ambience failed to open", zap.String("path", path), zap.Error(err))
		}
	}

	if months := viper.GetIntSlice("months"); len(months) > 0 {
		engine.Schedule(scheduleFor(months, viper.GetFloat64("flake-size")))
		if !engine.Running() {
			logger.Info("outside the scheduled months, nothing to show")
			return nil
		}
	} else {
		engine.Start()
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Snowfall - O: open ambience, Space: pause, Arrows: wind/gravity, +/-: density, F: fade, D: debug, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func engineOptions(logger *zap.Logger) []snowfall.Option {
	return []snowfall.Option{
		snowfall.WithLogger(logger),
		snowfall.WithBackground(viper.GetString("background")),
		snowfall.WithPrimary(viper.GetString("primary")),
		snowfall.WithSecondary(viper.GetString("secondary")),
		snowfall.WithDensity(viper.GetFloat64("density")),
		snowfall.WithFadeIn(viper.GetBool("fade")),
		snowfall.WithWaveAmplitude(viper.GetFloat64("amplitude")),
		snowfall.WithWaveFrequency(viper.GetFloat64("frequency")),
		snowfall.WithGravity(viper.GetFloat64("gravity-angle"), viper.GetFloat64("gravity-strength")),
		snowfall.WithWind(viper.GetFloat64("wind-angle"), viper.GetFloat64("wind-strength")),
	}
}

func scheduleFor(months []int, flakeSize float64) snowfall.ScheduleConfig {
	sched := snowfall.ScheduleConfig{FlakeSize: flakeSize}
	for _, m := range months {
		sched.Months = append(sched.Months, time.Month(m))
	}
	return sched
}
