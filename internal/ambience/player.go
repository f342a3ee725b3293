// Package ambience loops a background audio track through the speaker
// and exposes a smoothed loudness level, so a demo can drive the
// weather from its soundtrack.
package ambience

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const (
	// bufferDuration trades speaker latency against underruns.
	bufferDuration = time.Second / 20
	smoothing      = 0.6
)

// levelTap wraps a beep.Streamer and keeps a smoothed RMS of everything
// that flows through it. Stream runs on the speaker goroutine, Level on
// the caller's.
type levelTap struct {
	source beep.Streamer

	mu    sync.Mutex
	level float64
}

func newLevelTap(src beep.Streamer) *levelTap {
	return &levelTap{source: src}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.source.Stream(samples)
	if n > 0 {
		var sumSquares float64
		for i := 0; i < n; i++ {
			mono := (samples[i][0] + samples[i][1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(n))

		t.mu.Lock()
		t.level = smoothing*t.level + (1-smoothing)*rms
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.source.Err() }

// Level returns the smoothed RMS, roughly in [0, 1].
func (t *levelTap) Level() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.level
}

// Player loops one audio track forever. Open, TogglePause and Close
// belong on a single goroutine; Level may be read from anywhere.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap

	initDone bool
	paused   bool
}

// Open decodes path by extension (wav, mp3 or flac), readies the
// speaker for its sample rate and starts looping it. Any track already
// playing is replaced.
func (p *Player) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := filepath.Ext(path); ext {
	case ".wav", ".WAV":
		streamer, format, err = wav.Decode(f)
	case ".mp3", ".MP3":
		streamer, format, err = mp3.Decode(f)
	case ".flac", ".FLAC":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}

	tap := newLevelTap(beep.Loop(-1, streamer))
	ctrl := &beep.Ctrl{Streamer: tap}

	bufferSize := format.SampleRate.N(bufferDuration)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		// Init tears down any previous device and mixer.
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	} else {
		speaker.Clear()
	}

	p.closeCurrent()
	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = tap
	p.paused = false

	speaker.Play(ctrl)
	return nil
}

// TogglePause flips playback without unloading the track and reports
// the new paused state.
func (p *Player) TogglePause() bool {
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
	return p.paused
}

// Playing reports whether a track is loaded and audible.
func (p *Player) Playing() bool {
	return p.ctrl != nil && !p.paused
}

// Level returns the current smoothed loudness; zero with no track.
func (p *Player) Level() float64 {
	if p.tap == nil {
		return 0
	}
	return p.tap.Level()
}

// Close stops playback and releases the open file.
func (p *Player) Close() {
	if p.ctrl == nil {
		return
	}
	speaker.Clear()
	p.closeCurrent()
	p.ctrl = nil
	p.tap = nil
	p.paused = false
}

func (p *Player) closeCurrent() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
}
