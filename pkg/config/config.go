// Package config defines the gomdless configuration model: the settings
// a user can put in a config file, environment variables, or flags.
package config

import "fmt"

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Defaults.
const (
	defaultPageLines  = 10
	defaultSplitWidth = 50
)

// Config holds all gomdless settings.
type Config struct {
	// PageLines is how many lines PageUp/PageDown move.
	PageLines int `yaml:"page_lines"`

	// SplitWidth is the rendered pane width in side-by-side view.
	// Text wider than this is truncated, never wrapped.
	SplitWidth int `yaml:"split_width"`

	// Color controls styled output: auto, always, never.
	Color string `yaml:"color"`

	// Mode is the initial view for markdown documents:
	// rendered, source, or split. Empty means rendered.
	Mode string `yaml:"mode"`

	// LogLevel sets logging verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a configuration populated with defaults.
func NewConfig() *Config {
	return &Config{
		PageLines:  defaultPageLines,
		SplitWidth: defaultSplitWidth,
		Color:      ColorAuto,
		Mode:       "",
		LogLevel:   "info",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.PageLines < 1 {
		return fmt.Errorf("page_lines must be positive, got %d", c.PageLines)
	}
	if c.SplitWidth < 1 {
		return fmt.Errorf("split_width must be positive, got %d", c.SplitWidth)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always, or never, got %q", c.Color)
	}

	switch c.Mode {
	case "", "rendered", "source", "split", "side-by-side":
	default:
		return fmt.Errorf("mode must be rendered, source, or split, got %q", c.Mode)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	return nil
}
