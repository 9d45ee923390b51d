// Package config loads run settings for sprawl.
//
// Defaults ship embedded in the binary as TOML. An optional user file, in the
// same format, overrides any subset of them:
//
//	steps = 256
//
//	[glyphs]
//	top = "[--]"
//	bottom = "[__]"
//	blank = "    "
//
// There is no seed setting; every run draws a fresh one.
package config

import (
	_ "embed"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sprawl/pkg/errors"
	"github.com/matzehuels/sprawl/pkg/render"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Config holds the settings of one growth run.
type Config struct {
	Steps  int    `toml:"steps"`
	Glyphs Glyphs `toml:"glyphs"`
}

// Glyphs mirrors render.Style in the config file.
type Glyphs struct {
	Top    string `toml:"top"`
	Bottom string `toml:"bottom"`
	Blank  string `toml:"blank"`
}

// Style converts the glyph settings to a render.Style.
func (g Glyphs) Style() render.Style {
	return render.Style{Top: g.Top, Bottom: g.Bottom, Blank: g.Blank}
}

// Default returns the embedded defaults.
func Default() Config {
	var c Config
	if _, err := toml.Decode(string(defaultsTOML), &c); err != nil {
		panic("config: invalid embedded defaults: " + err.Error())
	}
	return c
}

// Parse decodes data on top of the defaults and validates the result.
// Keys absent from data keep their default values; unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the config file at path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Validate checks that the settings describe a runnable growth whose image
// uses render.GlyphWidth-wide glyph groups.
func (c Config) Validate() error {
	if c.Steps < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "steps must be >= 0, got %d", c.Steps)
	}
	style := c.Glyphs.Style()
	if err := style.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "glyphs")
	}
	if style.Width() != render.GlyphWidth {
		return errors.New(errors.ErrCodeInvalidConfig, "glyph groups must be %d wide, got %d", render.GlyphWidth, style.Width())
	}
	return nil
}
