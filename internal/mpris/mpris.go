//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/player"
)

const (
	busName     = "tplay"
	trackPrefix = "/org/mpris/MediaPlayer2/Track/"
	usPerSecond = 1_000_000
)

// New serves an adapter as org.mpris.MediaPlayer2.tplay on the session
// bus. The server runs until Close.
func New(log *zap.Logger) (*Adapter, error) {
	a := newAdapter(log)
	srv := server.NewServer(busName, &rootAdapter{a: a}, &playerAdapter{a: a})
	a.stop = srv.Stop

	go func() {
		if err := srv.Listen(); err != nil {
			a.log.Warn("mpris server stopped", zap.Error(err))
		}
	}()
	return a, nil
}

// rootAdapter serves org.mpris.MediaPlayer2. Only Quit does anything.
type rootAdapter struct{ a *Adapter }

func (r *rootAdapter) Quit() error {
	r.a.send(keymap.ActionQuit)
	return nil
}

func (*rootAdapter) Raise() error                { return nil }
func (*rootAdapter) CanQuit() (bool, error)      { return true, nil }
func (*rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (*rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (*rootAdapter) Identity() (string, error)   { return busName, nil }
func (*rootAdapter) SupportedUriSchemes() ([]string, error) { //nolint:revive // interface name
	return []string{"file"}, nil
}

func (*rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/wav", "audio/ogg"}, nil
}

// playerAdapter serves org.mpris.MediaPlayer2.Player. Commands become
// keymap actions; properties are read from the last rendered frame.
type playerAdapter struct{ a *Adapter }

func (p *playerAdapter) do(action keymap.Action) error {
	p.a.send(action)
	return nil
}

func (p *playerAdapter) Next() error      { return p.do(keymap.ActionNextTrack) }
func (p *playerAdapter) Previous() error  { return p.do(keymap.ActionPrevTrack) }
func (p *playerAdapter) PlayPause() error { return p.do(keymap.ActionTogglePause) }

func (p *playerAdapter) Play() error {
	p.a.setPaused(false)
	return nil
}

// Pause and Stop both pause; a session always has a track loaded.
func (p *playerAdapter) Pause() error {
	p.a.setPaused(true)
	return nil
}

func (p *playerAdapter) Stop() error { return p.Pause() }

// Seek moves one seek step in the direction of offset; the distance is
// set by the configured step.
func (p *playerAdapter) Seek(offset types.Microseconds) error {
	if offset > 0 {
		return p.do(keymap.ActionSeekForward)
	}
	if offset < 0 {
		return p.do(keymap.ActionSeekBack)
	}
	return nil
}

func (*playerAdapter) SetPosition(string, types.Microseconds) error { return nil }
func (*playerAdapter) OpenUri(string) error                         { return nil } //nolint:revive // interface name
func (*playerAdapter) SetRate(float64) error                        { return nil }
func (*playerAdapter) SetVolume(float64) error                      { return nil }

func (*playerAdapter) Rate() (float64, error)        { return 1, nil }
func (*playerAdapter) MinimumRate() (float64, error) { return 1, nil }
func (*playerAdapter) MaximumRate() (float64, error) { return 1, nil }
func (*playerAdapter) CanPause() (bool, error)       { return true, nil }
func (*playerAdapter) CanSeek() (bool, error)        { return true, nil }
func (*playerAdapter) CanControl() (bool, error)     { return true, nil }

// loaded backs CanGoNext, CanGoPrevious and CanPlay. The playlist wraps,
// so any loaded track has neighbours.
func (p *playerAdapter) loaded() (bool, error) {
	_, ok := p.a.snapshot()
	return ok, nil
}

func (p *playerAdapter) CanGoNext() (bool, error)     { return p.loaded() }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.loaded() }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.loaded() }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	f, ok := p.a.snapshot()
	if !ok {
		return types.PlaybackStatusStopped, nil
	}
	if f.Paused {
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusPlaying, nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	f, ok := p.a.snapshot()
	if !ok {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(f.Path)),
		Length:  types.Microseconds(int64(f.Total) * usPerSecond),
		Title:   f.Title,
		Artist:  []string{f.Artist},
		Album:   f.Album,
	}
	if art := FindAlbumArt(f.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	f, _ := p.a.snapshot()
	return float64(f.Volume) / player.MaxVolume, nil
}

func (p *playerAdapter) Position() (int64, error) {
	f, _ := p.a.snapshot()
	return int64(f.Elapsed) * usPerSecond, nil
}

// Loop status maps one to one onto the modes: Track is loop-current,
// Playlist is sequential (which wraps) and None is random.
var loopModes = map[types.LoopStatus]playback.Mode{
	types.LoopStatusTrack:    playback.LoopCurrent,
	types.LoopStatusPlaylist: playback.Sequential,
	types.LoopStatusNone:     playback.Random,
}

func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	f, _ := p.a.snapshot()
	for status, mode := range loopModes {
		if mode == f.Mode {
			return status, nil
		}
	}
	return types.LoopStatusNone, nil
}

func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	if mode, ok := loopModes[status]; ok {
		p.a.cycleTo(mode)
	}
	return nil
}

func (p *playerAdapter) Shuffle() (bool, error) {
	f, _ := p.a.snapshot()
	return f.Mode == playback.Random, nil
}

// SetShuffle(false) leaves random for sequential; other modes are kept.
func (p *playerAdapter) SetShuffle(on bool) error {
	f, ok := p.a.snapshot()
	switch {
	case !ok:
	case on:
		p.a.cycleTo(playback.Random)
	case f.Mode == playback.Random:
		p.a.cycleTo(playback.Sequential)
	}
	return nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(path))
	return fmt.Sprintf("%s%x", trackPrefix, h.Sum64())
}
