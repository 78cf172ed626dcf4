// Package config defines the configuration types and defaults for diffmark.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/donaldgifford/diffmark/pkg/diff"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the top-level configuration.
type Config struct {
	Diff   DiffConfig   `yaml:"diff" toml:"diff"`
	Render RenderConfig `yaml:"render" toml:"render"`
}

// DiffConfig holds the matching settings.
type DiffConfig struct {
	Unit string `yaml:"unit" toml:"unit"` // rune, byte, utf16 or grapheme.
}

// RenderConfig holds all output settings.
type RenderConfig struct {
	Format    string          `yaml:"format" toml:"format"`
	Color     string          `yaml:"color" toml:"color"`
	LineBreak string          `yaml:"line_break" toml:"line_break"`
	Highlight HighlightConfig `yaml:"highlight" toml:"highlight"`
	Plain     PlainConfig     `yaml:"plain" toml:"plain"`
	Divider   DividerConfig   `yaml:"divider" toml:"divider"`
	Caret     CaretConfig     `yaml:"caret" toml:"caret"`
}

// HighlightConfig styles unmatched text when color is on. Color is an ANSI
// index ("0"-"255") or a "#rrggbb" hex value.
type HighlightConfig struct {
	Color   string `yaml:"color" toml:"color"`
	Reverse bool   `yaml:"reverse" toml:"reverse"`
	Bold    bool   `yaml:"bold" toml:"bold"`
}

// PlainConfig delimits unmatched text when color is off.
type PlainConfig struct {
	Open  string `yaml:"open" toml:"open"`
	Close string `yaml:"close" toml:"close"`
}

// DividerConfig is the separator printed between the two sides.
type DividerConfig struct {
	Char  string `yaml:"char" toml:"char"`
	Width int    `yaml:"width" toml:"width"`
	Rows  int    `yaml:"rows" toml:"rows"`
}

// CaretConfig controls the caret renderer.
type CaretConfig struct {
	Marker         string `yaml:"marker" toml:"marker"`
	EastAsianWidth bool   `yaml:"east_asian_width" toml:"east_asian_width"`
}

// DefaultConfig returns a Config that reproduces the classic rendering:
// unmatched text in reversed bright green, sides split by two rows of 65 '='.
func DefaultConfig() *Config {
	return &Config{
		Diff: DiffConfig{
			Unit: "rune",
		},
		Render: RenderConfig{
			Format:    "highlight",
			Color:     ColorAuto,
			LineBreak: "\r\n",
			Highlight: HighlightConfig{
				Color:   "10",
				Reverse: true,
			},
			Plain: PlainConfig{
				Open:  "[",
				Close: "]",
			},
			Divider: DividerConfig{
				Char:  "=",
				Width: 65,
				Rows:  2,
			},
			Caret: CaretConfig{
				Marker: "^",
			},
		},
	}
}

var colorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Validate checks values that cannot be caught by decoding. Renderer names
// are checked by the render registry.
func (c *Config) Validate() error {
	var errs []error
	if _, err := diff.ParseUnit(c.Diff.Unit); err != nil {
		errs = append(errs, fmt.Errorf("diff.unit: %w", err))
	}
	if !slices.Contains(colorModes, c.Render.Color) {
		errs = append(errs, fmt.Errorf("render.color: unknown mode %q (want auto, always or never)", c.Render.Color))
	}
	if c.Render.Divider.Width < 0 || c.Render.Divider.Rows < 0 {
		errs = append(errs, errors.New("render.divider: width and rows must not be negative"))
	}
	if c.Render.Divider.Rows > 0 && c.Render.Divider.Char == "" {
		errs = append(errs, errors.New("render.divider.char: must be set when rows > 0"))
	}
	if c.Render.Caret.Marker == "" {
		errs = append(errs, errors.New("render.caret.marker: must not be empty"))
	}
	return errors.Join(errs...)
}
