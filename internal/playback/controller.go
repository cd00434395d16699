package playback

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/errmsg"
	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/player"
	"github.com/llehouerou/tplay/internal/playlist"
	"github.com/llehouerou/tplay/internal/tags"
)

const (
	defaultFrameInterval = 50 * time.Millisecond
	noticeDuration       = 5 * time.Second
)

// KeySource yields at most one pending key per call without blocking.
type KeySource interface {
	PollKey() (byte, bool)
}

// ActionSource yields actions that do not come from the keyboard, such as
// media keys. PollAction must not block.
type ActionSource interface {
	PollAction() (keymap.Action, bool)
}

// Renderer draws a full frame. It must not block beyond a synchronous write.
type Renderer interface {
	Render(Frame)
}

// Renderers fans a frame out to several renderers in order.
type Renderers []Renderer

func (rs Renderers) Render(f Frame) {
	for _, r := range rs {
		r.Render(f)
	}
}

// MetadataProvider supplies display metadata and track lengths.
type MetadataProvider interface {
	Metadata(path string) tags.Metadata
	Duration(path string) int
}

// SettingsSink is told about volume and mode changes.
type SettingsSink func(volume int, mode Mode)

// Controller runs the frame loop: poll a key, apply it, talk to the engine,
// render, sleep.
type Controller struct {
	engine   player.Interface
	keys     KeySource
	remote   ActionSource
	renderer Renderer
	meta     MetadataProvider
	playlist playlist.Playlist

	clock    Clock
	log      *zap.Logger
	interval time.Duration
	steps    Steps
	rng      *rand.Rand
	resolver *keymap.Resolver
	settings SettingsSink

	state       State
	failures    int
	notice      string
	noticeUntil time.Time
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithFrameInterval sets the frame budget. Non-positive values are ignored.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

func WithSteps(steps Steps) Option {
	return func(c *Controller) { c.steps = steps }
}

func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

func WithResolver(r *keymap.Resolver) Option {
	return func(c *Controller) { c.resolver = r }
}

// WithRemote adds a second action source, polled when no key is pending.
func WithRemote(src ActionSource) Option {
	return func(c *Controller) { c.remote = src }
}

func WithSettingsSink(fn SettingsSink) Option {
	return func(c *Controller) { c.settings = fn }
}

// WithStart sets the first track, mode and volume of the session.
func WithStart(index int, mode Mode, volume int) Option {
	return func(c *Controller) { c.state = NewState(index, mode, volume) }
}

// NewController creates a controller over a non-empty playlist.
func NewController(
	engine player.Interface,
	keys KeySource,
	renderer Renderer,
	meta MetadataProvider,
	pl playlist.Playlist,
	opts ...Option,
) *Controller {
	c := &Controller{
		engine:   engine,
		keys:     keys,
		renderer: renderer,
		meta:     meta,
		playlist: pl,
		clock:    SystemClock{},
		log:      zap.NewNop(),
		interval: defaultFrameInterval,
		steps:    DefaultSteps,
		resolver: keymap.Default(),
		state:    NewState(0, Sequential, player.MaxVolume),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		now := uint64(c.clock.Now().UnixNano()) //nolint:gosec // seed only
		c.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	if n := pl.Len(); n > 0 && (c.state.Index < 0 || c.state.Index >= n) {
		c.state.Index = 0
	}
	return c
}

// State returns a copy of the current session state.
func (c *Controller) State() State { return c.state }

// Run plays until the user quits or ctx is canceled. It returns
// ErrNoPlayableTracks when every track in the playlist failed to open in a row.
func (c *Controller) Run(ctx context.Context) error {
	if c.playlist.IsEmpty() {
		return ErrEmptyPlaylist
	}

	c.engine.SetVolume(c.state.Volume)
	c.log.Info("session started",
		zap.Int("tracks", c.playlist.Len()),
		zap.Int("index", c.state.Index),
		zap.Stringer("mode", c.state.Mode),
	)

	for {
		if ctx.Err() != nil && c.state.Phase != PhaseExiting {
			c.log.Info("context canceled, quitting")
			c.state, _ = c.apply(keymap.ActionQuit)
			c.engine.Stop()
		}

		switch c.state.Phase {
		case PhaseExiting:
			return nil
		case PhaseLoading:
			if err := c.load(); err != nil {
				return err
			}
		case PhaseFinished:
			c.log.Debug("track finished", zap.Stringer("mode", c.state.Mode))
			c.state = c.state.Advance(c.playlist.Len(), c.rng)
		case PhasePlaying, PhasePaused:
			c.frame()
		}
	}
}

// load opens the current track. A track that cannot be opened is skipped
// as if it had ended in Sequential mode.
func (c *Controller) load() error {
	track := c.playlist.Track(c.state.Index)
	if track == nil {
		c.state.Index = 0
		return nil
	}

	if err := c.engine.Open(track.Path); err != nil {
		c.failures++
		c.log.Warn("open track failed",
			zap.String("path", track.Path),
			zap.Int("consecutive", c.failures),
			zap.Error(err),
		)
		c.setNotice(errmsg.FormatWith(errmsg.OpOpenTrack, track.Name(), err))
		if c.failures >= c.playlist.Len() {
			return fmt.Errorf("%w: last error: %w", ErrNoPlayableTracks, err)
		}
		c.state = c.state.Skip(1, c.playlist.Len())
		return nil
	}

	c.failures = 0
	c.state = c.state.Begin(c.clock.Now())
	c.log.Info("playing", zap.Int("index", c.state.Index), zap.String("path", track.Path))
	return nil
}

// frame runs one iteration of the loop for a loaded track.
func (c *Controller) frame() {
	start := c.clock.Now()

	if action := c.poll(); action != "" {
		c.handle(action)
	}

	if c.state.Phase.HasTrack() && !c.engine.IsPlaying() {
		c.state.Phase = PhaseFinished
	}
	if !c.state.Phase.HasTrack() {
		return
	}

	now := c.clock.Now()
	c.state = c.state.Tick(now)
	c.renderer.Render(c.buildFrame(now))

	if spent := c.clock.Now().Sub(start); spent < c.interval {
		c.clock.Sleep(c.interval - spent)
	}
}

// poll returns at most one action per frame, keyboard first.
func (c *Controller) poll() keymap.Action {
	if key, ok := c.keys.PollKey(); ok {
		if action := c.resolver.ResolveByte(key); action != "" {
			return action
		}
	}
	if c.remote != nil {
		if action, ok := c.remote.PollAction(); ok {
			return action
		}
	}
	return ""
}

func (c *Controller) handle(action keymap.Action) {
	before := c.state
	next, cmds := c.apply(action)
	c.state = next
	c.log.Debug("action", zap.String("action", string(action)), zap.Stringer("phase", next.Phase))

	for _, cmd := range cmds {
		c.execute(cmd)
	}

	if c.settings != nil && (before.Volume != next.Volume || before.Mode != next.Mode) {
		c.settings(next.Volume, next.Mode)
	}
}

func (c *Controller) apply(action keymap.Action) (State, []Command) {
	total := 0
	if t := c.playlist.Track(c.state.Index); t != nil {
		total = c.meta.Duration(t.Path)
	}
	return c.steps.Apply(c.state, action, c.clock.Now(), total, c.playlist.Len())
}

func (c *Controller) execute(cmd Command) {
	switch cmd.Kind {
	case CmdHalt:
		c.engine.Stop()
	case CmdPause:
		c.engine.Pause()
	case CmdResume:
		c.engine.Resume()
	case CmdSeek:
		if err := c.engine.SetPosition(cmd.Position); err != nil {
			c.log.Warn("seek failed", zap.Float64("position", cmd.Position), zap.Error(err))
			c.setNotice(errmsg.Format(errmsg.OpSeek, err))
		}
	case CmdSetVolume:
		c.engine.SetVolume(cmd.Volume)
	}
}

func (c *Controller) setNotice(msg string) {
	c.notice = msg
	c.noticeUntil = c.clock.Now().Add(noticeDuration)
}

func (c *Controller) buildFrame(now time.Time) Frame {
	track := c.playlist.Track(c.state.Index)
	meta := c.meta.Metadata(track.Path)

	notice := ""
	if now.Before(c.noticeUntil) {
		notice = c.notice
	}

	return Frame{
		Path:          track.Path,
		FileName:      track.Name(),
		Title:         meta.Title,
		Artist:        meta.Artist,
		Album:         meta.Album,
		Elapsed:       c.state.Elapsed(),
		Total:         c.meta.Duration(track.Path),
		Paused:        c.state.Paused,
		Mode:          c.state.Mode,
		Volume:        c.state.Volume,
		VolumePercent: VolumePercent(c.state.Volume),
		Window:        c.playlist.Window(c.state.Index, WindowRadius),
		Notice:        notice,
		Help:          c.resolver.HelpLine(),
	}
}
