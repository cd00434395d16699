// Package player is the audio engine: it decodes a track and streams it to
// the sound device through beep's speaker.
package player

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"
)

// DeviceSampleRate is the rate the speaker is opened at. Tracks with another
// rate are resampled.
const DeviceSampleRate beep.SampleRate = 44100

// Beep plays tracks through the beep speaker. It is driven from a single
// goroutine; only the end-of-stream flag is written by the speaker.
type Beep struct {
	state    State
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    int
	finished *atomic.Bool
	log      *zap.Logger
}

// NewBeep opens the audio device.
func NewBeep(log *zap.Logger) (*Beep, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := speaker.Init(DeviceSampleRate, DeviceSampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Beep{
		state: Stopped,
		level: MaxVolume,
		log:   log,
	}, nil
}

// Open stops the current track and starts path from the beginning.
func (p *Beep) Open(path string) error {
	p.Stop()

	streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != DeviceSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, DeviceSampleRate, streamer)
	}

	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: false}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.applyVolume()

	// Each track gets its own flag so a late callback can't mark the next one.
	finished := new(atomic.Bool)
	p.finished = finished
	p.state = Playing

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		finished.Store(true)
	})))

	p.log.Debug("track opened",
		zap.String("file", filepath.Base(path)),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Duration("duration", p.Duration()),
	)
	return nil
}

// Stop halts playback and releases the current track.
func (p *Beep) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		if err := p.streamer.Close(); err != nil {
			p.log.Debug("close stream", zap.Error(err))
		}
		p.streamer = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.finished = nil
	p.state = Stopped
}

func (p *Beep) Pause() {
	if !p.state.CanPause() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

func (p *Beep) Resume() {
	if !p.state.CanResume() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

func (p *Beep) State() State { return p.state }

func (p *Beep) IsPlaying() bool {
	return p.state.IsActive() && p.finished != nil && !p.finished.Load()
}

// SetPosition seeks to seconds, clamped to the stream.
func (p *Beep) SetPosition(seconds float64) error {
	if p.streamer == nil {
		return errors.New("no track loaded")
	}

	speaker.Lock()
	defer speaker.Unlock()

	target := p.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	return p.streamer.Seek(clampSample(target, p.streamer.Len()))
}

// Position returns the decoder's current position.
func (p *Beep) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the decoded length of the current track.
func (p *Beep) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Close stops playback and closes the audio device.
func (p *Beep) Close() error {
	p.Stop()
	speaker.Close()
	return nil
}

// clampSample keeps a seek target inside [0, length-1].
func clampSample(n, length int) int {
	if length <= 0 || n < 0 {
		return 0
	}
	if n >= length {
		return length - 1
	}
	return n
}
