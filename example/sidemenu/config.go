// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"git.sr.ht/~gioui/sidemenu/anim"
	"git.sr.ht/~gioui/sidemenu/drawer"
)

const (
	configDirName     = "sidemenu"
	defaultConfigName = "config.yaml"
	envPrefix         = "SIDEMENU"
)

var (
	errConfigRead = errors.New("failed to read config")
	errSettings   = errors.New("invalid settings")
)

// Settings is the user configuration of the demo.
type Settings struct {
	Side                 string  `mapstructure:"side"`
	EdgeHitWidth         float32 `mapstructure:"edge_hit_width"`
	ToleranceX           float32 `mapstructure:"tolerance_x"`
	ToleranceY           float32 `mapstructure:"tolerance_y"`
	OpenOffset           float32 `mapstructure:"open_offset"`
	HiddenOffset         float32 `mapstructure:"hidden_offset"`
	BounceBackOnOverdraw bool    `mapstructure:"bounce_back_on_overdraw"`
	AutoClosing          bool    `mapstructure:"auto_closing"`
	InitiallyOpen        bool    `mapstructure:"initially_open"`
	DisableGestures      bool    `mapstructure:"disable_gestures"`

	// Animation is one of spring, tween or none.
	Animation       string        `mapstructure:"animation"`
	SpringFrequency float64       `mapstructure:"spring_frequency"`
	SpringDamping   float64       `mapstructure:"spring_damping"`
	TweenDuration   time.Duration `mapstructure:"tween_duration"`

	Debug bool `mapstructure:"debug"`
}

// Options converts the settings to drawer options for a screen of the
// given width. An OpenOffset of zero selects the default of three
// quarters of the width.
func (s Settings) Options(screenWidth float32) ([]drawer.Option, error) {
	side, err := drawer.ParseSide(s.Side)
	if err != nil {
		return nil, errors.Join(err, errSettings)
	}
	a, err := s.animator()
	if err != nil {
		return nil, err
	}
	opts := []drawer.Option{
		drawer.MenuSide(side),
		drawer.EdgeHitWidth(s.EdgeHitWidth),
		drawer.Tolerance(s.ToleranceX, s.ToleranceY),
		drawer.HiddenOffset(s.HiddenOffset),
		drawer.BounceBackOnOverdraw(s.BounceBackOnOverdraw),
		drawer.AutoClosing(s.AutoClosing),
		drawer.InitiallyOpen(s.InitiallyOpen),
		drawer.DisableGestures(s.DisableGestures),
		drawer.WithAnimator(a),
	}
	open := s.OpenOffset
	if open == 0 {
		open = drawer.DefaultConfig(screenWidth).OpenOffset
	}
	opts = append(opts, drawer.OpenOffset(open))
	return opts, nil
}

func (s Settings) animator() (anim.Animator, error) {
	switch strings.ToLower(s.Animation) {
	case "spring":
		return anim.Spring{Frequency: s.SpringFrequency, Damping: s.SpringDamping}, nil
	case "tween":
		return anim.Tween{Duration: s.TweenDuration, Easing: anim.EaseInOutCubic}, nil
	case "none":
		return anim.Immediate{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown animation %q", errSettings, s.Animation)
	}
}

// configPath returns the default configuration file path, creating its
// directory if needed.
func configPath() (string, error) {
	return xdg.ConfigFile(path.Join(configDirName, defaultConfigName))
}

// Loader reads the settings with viper and broadcasts changes made to
// the configuration file.
type Loader struct {
	*viper.Viper
	changes chan<- Settings
}

// NewLoader returns a loader for the file at configFile. Settings read
// after a change of the file are sent to changes.
func NewLoader(configFile string, changes chan<- Settings) *Loader {
	spring := anim.DefaultSpring()
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("side", "left")
	loader.SetDefault("edge_hit_width", 60)
	loader.SetDefault("tolerance_x", 10)
	loader.SetDefault("tolerance_y", 10)
	loader.SetDefault("open_offset", 0)
	loader.SetDefault("hidden_offset", 0)
	loader.SetDefault("bounce_back_on_overdraw", true)
	loader.SetDefault("auto_closing", true)
	loader.SetDefault("initially_open", false)
	loader.SetDefault("disable_gestures", false)
	loader.SetDefault("animation", "spring")
	loader.SetDefault("spring_frequency", spring.Frequency)
	loader.SetDefault("spring_damping", spring.Damping)
	loader.SetDefault("tween_duration", "300ms")
	loader.SetDefault("debug", false)
	loader.SetConfigFile(configFile)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(envPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the configuration file for changes.
func (l *Loader) Watch() {
	l.OnConfigChange(l.onConfigChange)
	l.WatchConfig()
}

func (l *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) && !in.Has(fsnotify.Rename) {
		return
	}
	slog.Debug("Config reload triggered", slog.String("file", in.Name))
	settings, err := l.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))
		return
	}
	l.changes <- settings
}

// Read the configuration file. A missing file yields the defaults.
func (l *Loader) Read() (Settings, error) {
	if err := l.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, errors.Join(err, errConfigRead)
		}
	}
	var settings Settings
	if err := l.Unmarshal(&settings); err != nil {
		return Settings{}, errors.Join(err, errConfigRead)
	}
	return settings, nil
}
