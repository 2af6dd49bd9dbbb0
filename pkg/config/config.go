// Package config loads the ambient "Config objects" spec.md §9 calls
// out as plain structs with explicit, enumerated fields: window
// options, animation-controller defaults, and the ticker refresh rate.
// Grounded on the teacher's own retained gopkg.in/yaml.v3 dependency.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// WindowOptions configures the host window the application-level
// collaborator creates — out of this module's scope to open, but named
// in spec.md §9 as one of the plain-struct config objects the core
// expects to be handed.
type WindowOptions struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Resizable  bool   `yaml:"resizable"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// AnimationDefaults configures the fallback values new
// AnimationControllers are built with when the caller does not
// override them — lower/upper bounds and duration, matching
// AnimationControllerBuilder's own fields one-to-one.
type AnimationDefaults struct {
	DurationMS int64   `yaml:"duration_ms"`
	LowerBound float64 `yaml:"lower_bound"`
	UpperBound float64 `yaml:"upper_bound"`
}

// Duration returns DurationMS as a time.Duration.
func (a AnimationDefaults) Duration() time.Duration {
	return time.Duration(a.DurationMS) * time.Millisecond
}

// Config is the top-level ambient configuration document.
type Config struct {
	Window            WindowOptions     `yaml:"window"`
	AnimationDefaults AnimationDefaults `yaml:"animation_defaults"`
	TickerRefreshHz   float64           `yaml:"ticker_refresh_hz"`
}

// Defaults returns the configuration used when no file is loaded: a
// resizable 800x600 window, a 300ms [0,1] animation default, and a
// 60Hz ticker refresh rate.
func Defaults() Config {
	return Config{
		Window: WindowOptions{
			Title:     "FLUI",
			Width:     800,
			Height:    600,
			Resizable: true,
		},
		AnimationDefaults: AnimationDefaults{
			DurationMS: 300,
			LowerBound: 0,
			UpperBound: 1,
		},
		TickerRefreshHz: 60,
	}
}

// Load parses YAML-encoded config from data, starting from Defaults so
// a partial document only overrides the fields it sets.
func Load(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}
