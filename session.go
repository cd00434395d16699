package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/tplay/internal/config"
	"github.com/llehouerou/tplay/internal/errmsg"
	"github.com/llehouerou/tplay/internal/icons"
	"github.com/llehouerou/tplay/internal/input"
	"github.com/llehouerou/tplay/internal/keymap"
	"github.com/llehouerou/tplay/internal/logger"
	"github.com/llehouerou/tplay/internal/mpris"
	"github.com/llehouerou/tplay/internal/notify"
	"github.com/llehouerou/tplay/internal/playback"
	"github.com/llehouerou/tplay/internal/player"
	"github.com/llehouerou/tplay/internal/playlist"
	"github.com/llehouerou/tplay/internal/state"
	"github.com/llehouerou/tplay/internal/stderr"
	"github.com/llehouerou/tplay/internal/tags"
	"github.com/llehouerou/tplay/internal/ui/nowplaying"
)

const metadataCacheSize = 256

// options holds the command line flags.
type options struct {
	configFile string
	icons      string
	logLevel   string
	logFile    string
	mode       string
	volume     int

	changed func(name string) bool
}

func (o options) set(name string) bool {
	return o.changed != nil && o.changed(name)
}

// loadConfig reads the config files and applies flag overrides on top.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpLoadConfig, err))
	}

	if opts.icons != "" {
		if !icons.Valid(opts.icons) {
			return nil, fmt.Errorf("invalid --icons %q: want nerd, unicode or none", opts.icons)
		}
		cfg.Icons = opts.icons
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.set("mode") {
		if _, err := playback.ParseMode(opts.mode); err != nil {
			return nil, err
		}
		cfg.Mode = opts.mode
	}
	if opts.set("volume") {
		if opts.volume < 0 || opts.volume > config.MaxVolume {
			return nil, fmt.Errorf("invalid --volume %d: want 0-%d", opts.volume, config.MaxVolume)
		}
		v := opts.volume
		cfg.InitialVolume = &v
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lc := cfg.GetLogConfig()
	log, err := logger.New(logger.Config{
		Level:      lc.Level,
		Path:       lc.File,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
	})
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpOpenLog, err))
	}
	return log, nil
}

// buildPlaylist resolves the path argument and scans the target directory.
func buildPlaylist(cfg *config.Config, arg string) (playlist.Playlist, playlist.Target, error) {
	if arg == "" {
		arg = cfg.DefaultFolder
	}
	target, err := playlist.ResolveTarget(arg)
	if err != nil {
		return playlist.Playlist{}, target, errors.New(errmsg.Format(errmsg.OpResolvePath, err))
	}
	pl, err := playlist.Build(target.Dir)
	if err != nil {
		return playlist.Playlist{}, target, errors.New(errmsg.Format(errmsg.OpScanDirectory, err))
	}
	if pl.IsEmpty() {
		return pl, target, fmt.Errorf("no playable files (%s) in %s",
			strings.Join(playlist.Extensions, ", "), target.Dir)
	}
	return pl, target, nil
}

// startSettings picks the session's mode and volume. Saved settings win
// over the config file, flags win over both.
func startSettings(cfg *config.Config, opts options, saved *state.Settings) (playback.Mode, int) {
	mode, err := playback.ParseMode(cfg.PlayMode())
	if err != nil {
		mode = playback.Sequential
	}
	volume := cfg.StartVolume()

	if saved != nil {
		if !opts.set("mode") {
			if m, err := playback.ParseMode(saved.Mode); err == nil {
				mode = m
			}
		}
		if !opts.set("volume") && saved.Volume >= 0 && saved.Volume <= config.MaxVolume {
			volume = saved.Volume
		}
	}
	return mode, volume
}

// rememberSink persists volume and mode changes to store.
func rememberSink(store state.Interface) playback.SettingsSink {
	return func(volume int, mode playback.Mode) {
		store.SaveSettings(state.Settings{Volume: volume, Mode: mode.String()})
	}
}

func newResolver(cfg *config.Config) *keymap.Resolver {
	return keymap.NewResolver(keymap.Override(keymap.Bindings, cfg.Keys))
}

// runPlayer runs one interactive session. Every resource acquired is
// released on every return path, terminal state included.
func runPlayer(ctx context.Context, opts options, arg string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fail(err.Error())
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fail(err.Error())
	}
	defer func() { _ = log.Sync() }()

	if err := stderr.Start(log); err != nil {
		log.Warn("stderr capture unavailable", zap.Error(err))
	}
	defer stderr.Stop()

	pl, target, err := buildPlaylist(cfg, arg)
	if err != nil {
		log.Error("build playlist", zap.String("dir", target.Dir), zap.Error(err))
		return fail(err.Error())
	}
	log.Info("playlist built", zap.String("dir", target.Dir), zap.Int("tracks", pl.Len()))

	icons.Init(cfg.IconStyle())

	var (
		store state.Interface
		saved *state.Settings
	)
	if cfg.RememberSettings() {
		if m, err := state.OpenDefault(log); err != nil {
			log.Warn(errmsg.Format(errmsg.OpOpenState, err))
		} else {
			store = m
			defer store.Close()
			if saved, err = store.LoadSettings(); err != nil {
				log.Warn("load settings", zap.Error(err))
			}
		}
	}
	mode, volume := startSettings(cfg, opts, saved)

	engine, err := player.NewBeep(log)
	if err != nil {
		return fail(errmsg.Format(errmsg.OpInitAudio, err))
	}
	defer engine.Close()

	keys, err := input.Open(os.Stdin)
	if err != nil {
		return fail(errmsg.Format(errmsg.OpOpenTerminal, err))
	}
	defer keys.Close()

	screen := nowplaying.NewScreen(os.Stdout)
	if err := screen.Open(); err != nil {
		return fail(errmsg.Format(errmsg.OpOpenTerminal, err))
	}
	defer screen.Close()

	renderers := playback.Renderers{screen}
	var ctrlOpts []playback.Option

	if cfg.MPRISEnabled() {
		remote, err := mpris.New(log)
		if err != nil {
			log.Warn("mpris unavailable", zap.Error(err))
		} else {
			defer remote.Close()
			renderers = append(renderers, remote)
			ctrlOpts = append(ctrlOpts, playback.WithRemote(remote))
		}
	}
	if cfg.Notify {
		notifier, err := notify.New()
		if err != nil {
			log.Warn("notifications unavailable", zap.Error(err))
		} else {
			announcer := notify.NewAnnouncer(notifier, log)
			defer announcer.Close()
			renderers = append(renderers, announcer)
		}
	}

	ctrlOpts = append(ctrlOpts,
		playback.WithLogger(log),
		playback.WithFrameInterval(cfg.FrameInterval()),
		playback.WithSteps(playback.Steps{Seek: cfg.SeekStep(), Volume: cfg.VolumeStep()}),
		playback.WithResolver(newResolver(cfg)),
		playback.WithStart(pl.StartIndex(target), mode, volume),
	)
	if store != nil {
		ctrlOpts = append(ctrlOpts, playback.WithSettingsSink(rememberSink(store)))
	}

	ctrl := playback.NewController(engine, keys, renderers, tags.NewCache(metadataCacheSize, log), pl, ctrlOpts...)
	if err := ctrl.Run(ctx); err != nil {
		log.Error("playback stopped", zap.Error(err))
		if errors.Is(err, playback.ErrNoPlayableTracks) {
			return fail(fmt.Sprintf("no track in %s could be played: %v", target.Dir, err))
		}
		return fail(errmsg.Format(errmsg.OpPlayback, err))
	}
	log.Info("session ended")
	return nil
}
