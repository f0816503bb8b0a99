// Package config resolves editor settings from defaults, an optional TOML
// file, VICANVAS_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-canvas/logging"
)

// EnvPrefix prefixes every environment override, e.g. VICANVAS_SAVE_DIR
const EnvPrefix = "VICANVAS"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds editor settings
type Config struct {
	SaveDir  string `toml:"save_dir" envconfig:"SAVE_DIR"`
	LogFile  string `toml:"log_file" envconfig:"LOG_FILE"`
	LogLevel string `toml:"log_level" envconfig:"LOG_LEVEL"`

	// Glyph is the single-column character figures and outlines are drawn with
	Glyph string `toml:"glyph" envconfig:"GLYPH"`

	// BandWidth is the half-width of the ring a hollow circle keeps around its radius
	BandWidth float64 `toml:"band_width" envconfig:"BAND_WIDTH"`

	// EllipseAccuracy is the accepted deviation of x²/a² + y²/b² from 1 for ellipse cells
	EllipseAccuracy float64 `toml:"ellipse_accuracy" envconfig:"ELLIPSE_ACCURACY"`

	ScaleStep     int `toml:"scale_step" envconfig:"SCALE_STEP"`
	MoveStep      int `toml:"move_step" envconfig:"MOVE_STEP"`
	RotateStep    int `toml:"rotate_step" envconfig:"ROTATE_STEP"`
	DefaultWidth  int `toml:"default_width" envconfig:"DEFAULT_WIDTH"`
	DefaultHeight int `toml:"default_height" envconfig:"DEFAULT_HEIGHT"`

	Bell       bool    `toml:"bell" envconfig:"BELL"`
	BellVolume float64 `toml:"bell_volume" envconfig:"BELL_VOLUME"`

	SaveWorkers int `toml:"save_workers" envconfig:"SAVE_WORKERS"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		SaveDir:         "saves",
		LogLevel:        "info",
		Glyph:           "*",
		BandWidth:       0.4,
		EllipseAccuracy: 0.2,
		ScaleStep:       5,
		MoveStep:        2,
		RotateStep:      30,
		DefaultWidth:    30,
		DefaultHeight:   15,
		Bell:            true,
		BellVolume:      0.5,
		SaveWorkers:     2,
	}
}

// Load layers an optional TOML file and the environment over Default
// An empty path skips the file; keys the file sets that Config does not know are rejected
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.MergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.MergeEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeFile overlays the keys present in the TOML file at path
func (c *Config) MergeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config file %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}
	logging.Logger().Debug("config file merged", "path", path, "keys", len(md.Keys()))
	return nil
}

// MergeEnv overlays the VICANVAS_* variables that are set
func (c *Config) MergeEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("config environment: %w", err)
	}
	return nil
}

// Validate rejects settings the editor cannot run with
func (c *Config) Validate() error {
	var errs []error
	if utf8.RuneCountInString(c.Glyph) != 1 || runewidth.StringWidth(c.Glyph) != 1 {
		errs = append(errs, fmt.Errorf("glyph %q must be one single-column character", c.Glyph))
	}
	if c.BandWidth <= 0 || c.BandWidth >= 1 {
		errs = append(errs, fmt.Errorf("band_width %v must be in (0, 1)", c.BandWidth))
	}
	if c.EllipseAccuracy <= 0 || c.EllipseAccuracy >= 1 {
		errs = append(errs, fmt.Errorf("ellipse_accuracy %v must be in (0, 1)", c.EllipseAccuracy))
	}
	positive := []struct {
		name string
		v    int
	}{
		{"scale_step", c.ScaleStep},
		{"move_step", c.MoveStep},
		{"rotate_step", c.RotateStep},
		{"default_width", c.DefaultWidth},
		{"default_height", c.DefaultHeight},
		{"save_workers", c.SaveWorkers},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s %d must be positive", p.name, p.v))
		}
	}
	if c.BellVolume < 0 || c.BellVolume > 1 {
		errs = append(errs, fmt.Errorf("bell_volume %v must be in [0, 1]", c.BellVolume))
	}
	if c.SaveDir == "" {
		errs = append(errs, errors.New("save_dir must not be empty"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// GlyphRune returns the drawing glyph; call after Validate
func (c *Config) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyph)
	return r
}

// Level returns the parsed log level, info when unparseable
func (c *Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}
