// Package config loads editor preferences from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the tweakable editor defaults. Every field has a sane
// fallback, so an empty environment yields a usable editor.
type Config struct {
	WindowWidth  int    `envconfig:"WINDOW_WIDTH" default:"1280"`
	WindowHeight int    `envconfig:"WINDOW_HEIGHT" default:"720"`
	StrokeWidth  int    `envconfig:"STROKE_WIDTH" default:"2"`
	OutlineColor string `envconfig:"OUTLINE_COLOR" default:"#000000"`
	FillColor    string `envconfig:"FILL_COLOR" default:"#ffffff"`
	RedrawHz     int    `envconfig:"REDRAW_HZ" default:"60"`
	DocumentDir  string `envconfig:"DOCUMENT_DIR" default:""`
}

// Load reads SHAPEPAD_* variables from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("SHAPEPAD", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
