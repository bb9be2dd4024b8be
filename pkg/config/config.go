// Package config handles presentation preferences for jlman. Settings
// come from embedded defaults, an optional TOML file in the XDG config
// directory, and JLMAN_-prefixed environment variables, in that order.
// Configuration only affects rendering; the lookup tables themselves are
// compile-time constants.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/jlman/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the presentation settings
type Config struct {
	// Style selects the markdown renderer style: auto, dark, light or plain
	Style string `koanf:"style" toml:"style"`
	// Width is the word-wrap width for rendered documents; 0 lets the
	// renderer decide
	Width int `koanf:"width" toml:"width"`
	// Extended includes standard-library listings by default
	Extended bool `koanf:"extended" toml:"extended"`
}

// rawBytesProvider implements a koanf provider for embedded raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrNotImplemented, "rawBytesProvider only reads bytes")
}

// Path returns the user config file location under the XDG config home
func Path() string {
	return filepath.Join(xdg.ConfigHome, "jlman", "config.toml")
}

// Load builds the effective configuration
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading default config")
	}

	// 2. User config file, when present
	path := Path()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "loading config from %s", path)
		}
	}

	// 3. Environment overrides: JLMAN_STYLE, JLMAN_WIDTH, JLMAN_EXTENDED
	if err := k.Load(env.Provider("JLMAN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "JLMAN_"))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshaling config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Style {
	case "auto", "dark", "light", "plain":
	default:
		return errors.Newf(errors.ErrConfigValid, "invalid style %q: want auto, dark, light or plain", c.Style)
	}
	if c.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "invalid width %d: must not be negative", c.Width)
	}
	return nil
}

// TOML renders the effective configuration as a TOML document
func (c *Config) TOML() (string, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "marshaling config")
	}
	return string(out), nil
}
