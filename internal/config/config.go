// Package config handles loading, validating, and managing configuration
// for the Lumicon icon generator.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// Config is the top-level configuration for an icon generation run.
type Config struct {
	Output     string       `yaml:"output"     toml:"output"     mapstructure:"output"`
	Font       string       `yaml:"font"       toml:"font"       mapstructure:"font"`
	Glyph      string       `yaml:"glyph"      toml:"glyph"      mapstructure:"glyph"`
	Background string       `yaml:"background" toml:"background" mapstructure:"background"`
	Foreground string       `yaml:"foreground" toml:"foreground" mapstructure:"foreground"`
	Scale      float64      `yaml:"scale"      toml:"scale"      mapstructure:"scale"`
	Icons      []IconConfig `yaml:"icons"      toml:"icons"      mapstructure:"icons"`
}

// IconConfig describes a single icon to generate: its square edge
// length in pixels and the filename it is written under.
type IconConfig struct {
	Size     int    `yaml:"size"     toml:"size"     mapstructure:"size"`
	Filename string `yaml:"filename" toml:"filename" mapstructure:"filename"`
}

// Default returns a Config populated with the standard extension icon
// set and the original colour scheme.
func Default() *Config {
	return &Config{
		Output:     "icons",
		Font:       "/System/Library/Fonts/Arial.ttf",
		Glyph:      "L",
		Background: "#667eea",
		Foreground: "#ffffff",
		Scale:      0.6,
		Icons: []IconConfig{
			{Size: 16, Filename: "icon16.png"},
			{Size: 48, Filename: "icon48.png"},
			{Size: 128, Filename: "icon128.png"},
		},
	}
}

// Load reads a configuration file from configPath (YAML or TOML) and
// returns a Config with defaults applied first, file values overlaid,
// and LUMICON_* environment variables overlaid on top of those.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	v := viper.New()

	// Determine format from extension.
	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "yaml", "yml":
		v.SetConfigType("yaml")
	case "toml":
		v.SetConfigType("toml")
	default:
		// Default to yaml if unrecognised.
		v.SetConfigType("yaml")
	}

	v.SetConfigFile(configPath)
	v.SetEnvPrefix("lumicon")
	v.AutomaticEnv()

	// Register scalar keys so AutomaticEnv can see them.
	v.SetDefault("output", cfg.Output)
	v.SetDefault("font", cfg.Font)
	v.SetDefault("glyph", cfg.Glyph)
	v.SetDefault("background", cfg.Background)
	v.SetDefault("foreground", cfg.Foreground)
	v.SetDefault("scale", cfg.Scale)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the Config for common errors.
// It returns a descriptive error if:
//   - Output is empty
//   - Glyph is not exactly one character
//   - Scale is outside (0, 1]
//   - a colour is not a #rgb or #rrggbb literal
//   - the icon list is empty or contains a non-positive size or an
//     empty filename
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("config: output directory is required")
	}

	if utf8.RuneCountInString(c.Glyph) != 1 {
		return fmt.Errorf("config: glyph must be exactly one character (got %q)", c.Glyph)
	}

	if c.Scale <= 0 || c.Scale > 1 {
		return fmt.Errorf("config: scale must be in (0, 1] (got %v)", c.Scale)
	}

	for _, col := range []string{c.Background, c.Foreground} {
		if !strings.HasPrefix(col, "#") || (len(col) != 4 && len(col) != 7) {
			return fmt.Errorf("config: colour must be #rgb or #rrggbb (got %q)", col)
		}
	}

	if len(c.Icons) == 0 {
		return fmt.Errorf("config: at least one icon is required")
	}
	for _, ic := range c.Icons {
		if ic.Size <= 0 {
			return fmt.Errorf("config: icon size must be positive (got %d)", ic.Size)
		}
		if strings.TrimSpace(ic.Filename) == "" {
			return fmt.Errorf("config: icon filename is required (size %d)", ic.Size)
		}
	}

	return nil
}

// WithOverrides applies CLI flag overrides to the config. Known keys are
// mapped to their corresponding struct fields. The modified config is
// returned for convenient chaining.
func (c *Config) WithOverrides(overrides map[string]any) *Config {
	for key, val := range overrides {
		switch key {
		case "output":
			if s, ok := val.(string); ok {
				c.Output = s
			}
		case "font":
			if s, ok := val.(string); ok {
				c.Font = s
			}
		case "glyph":
			if s, ok := val.(string); ok {
				c.Glyph = s
			}
		case "background":
			if s, ok := val.(string); ok {
				c.Background = s
			}
		case "foreground":
			if s, ok := val.(string); ok {
				c.Foreground = s
			}
		case "scale":
			if f, ok := val.(float64); ok {
				c.Scale = f
			}
		}
	}
	return c
}
