// Package config loads the decint command's TOML settings.
package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultFile is the settings file looked up in the working directory when
// no path is given.
const DefaultFile = "decint.toml"

// Color modes accepted by the color key and the --color flag.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config holds the command settings.
type Config struct {
	// Color is one of auto, on, or off.
	Color string `toml:"color"`
	// TrailingNewline terminates every printed result with a newline.
	TrailingNewline bool `toml:"trailing_newline"`
	// Workers bounds how many expressions are evaluated at once.
	Workers int `toml:"workers"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Color:           ColorAuto,
		TrailingNewline: true,
		Workers:         runtime.GOMAXPROCS(0),
	}
}

// Load reads path on top of Default. A missing file is not an error. Keys
// that are absent keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrapf(err, "failed to stat %q", path)
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Validate checks the field values.
func (c Config) Validate() error {
	if err := ValidateColor(c.Color); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// ValidateColor reports an error unless mode is a known color mode.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorOn, ColorOff:
		return nil
	}
	return errors.Errorf("unsupported color mode %q (must be auto, on, or off)", mode)
}
