package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
)

const (
	defaultFrameRate  = 20
	maxFrameRate      = 120
	defaultSeekStep   = 5
	defaultVolumeStep = 2
	// MaxVolume is the top of the device volume scale.
	MaxVolume = 128
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"` // scan root when no path argument is given
	Icons         string `koanf:"icons"`          // "nerd", "unicode", or "none"
	FrameRate     int    `koanf:"frame_rate"`     // frames per second (1-120, default: 20)
	SeekStepSecs  int    `koanf:"seek_step"`      // seconds per seek (default: 5)
	VolStep       int    `koanf:"volume_step"`    // device units per volume key (default: 2)
	InitialVolume *int   `koanf:"initial_volume"` // 0-128 (default: 128)
	Mode          string `koanf:"mode"`           // "sequential", "loop", or "random"
	Remember      *bool  `koanf:"remember"`       // persist volume and mode (default: true)
	MPRIS         *bool  `koanf:"mpris"`          // media key control over D-Bus (default: true)
	Notify        bool   `koanf:"notify"`         // desktop notification on track change

	Log LogConfig `koanf:"log"`

	// Keys maps action names to a key, e.g. next_track = "l".
	Keys map[string]string `koanf:"keys"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level      string `koanf:"level"`        // debug, info, warn, error (default: info)
	File       string `koanf:"file"`         // empty means the XDG state directory
	MaxSizeMB  int    `koanf:"max_size_mb"`  // default: 5
	MaxBackups int    `koanf:"max_backups"`  // default: 2
	MaxAgeDays int    `koanf:"max_age_days"` // default: 14
}

// Load reads the config files in priority order, last wins. When extra is
// not empty it is loaded last and must exist.
func Load(extra string) (*Config, error) {
	paths := getConfigPaths()
	if extra != "" {
		if _, err := os.Stat(extra); err != nil {
			return nil, fmt.Errorf("config file %s: %w", extra, err)
		}
		paths = append(paths, extra)
	}
	return loadFiles(paths)
}

func loadFiles(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tplay/config.toml
		filepath.Join(xdg.ConfigHome, "tplay", "config.toml"),
		// 2. ./config.toml (pwd)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// IconStyle returns the icon style, defaulting to nerd.
func (c *Config) IconStyle() string {
	if c.Icons == "" {
		return "nerd"
	}
	return c.Icons
}

// FrameInterval returns the time budget of one frame.
func (c *Config) FrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 || rate > maxFrameRate {
		rate = defaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

// SeekStep returns the seek step in seconds.
func (c *Config) SeekStep() float64 {
	if c.SeekStepSecs <= 0 {
		return defaultSeekStep
	}
	return float64(c.SeekStepSecs)
}

// VolumeStep returns the volume step in device units.
func (c *Config) VolumeStep() int {
	if c.VolStep <= 0 || c.VolStep > MaxVolume {
		return defaultVolumeStep
	}
	return c.VolStep
}

// StartVolume returns the initial volume clamped to the device range.
func (c *Config) StartVolume() int {
	if c.InitialVolume == nil {
		return MaxVolume
	}
	return lo.Clamp(*c.InitialVolume, 0, MaxVolume)
}

// PlayMode returns the configured mode name, defaulting to sequential.
func (c *Config) PlayMode() string {
	if c.Mode == "" {
		return "sequential"
	}
	return c.Mode
}

// RememberSettings reports whether volume and mode persist between sessions.
func (c *Config) RememberSettings() bool {
	return c.Remember == nil || *c.Remember
}

// MPRISEnabled reports whether the player registers on the session bus.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = DefaultLogFile()
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 5
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 2
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 14
	}

	return cfg
}

// DefaultLogFile returns $XDG_STATE_HOME/tplay/tplay.log.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, "tplay", "tplay.log")
}
