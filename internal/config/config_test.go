package config

import (
	"os"
	"testing"
)

// clearEnv unsets the named variables for the test. t.Setenv snapshots
// the original value for restoration; envconfig treats an empty-but-set
// variable as a value, so the unset has to be real.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t,
		"SHAPEPAD_WINDOW_WIDTH",
		"SHAPEPAD_WINDOW_HEIGHT",
		"SHAPEPAD_STROKE_WIDTH",
		"SHAPEPAD_OUTLINE_COLOR",
		"SHAPEPAD_FILL_COLOR",
		"SHAPEPAD_REDRAW_HZ",
		"SHAPEPAD_DOCUMENT_DIR",
	)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 720 {
		t.Errorf("window = %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.StrokeWidth != 2 {
		t.Errorf("stroke width = %d", cfg.StrokeWidth)
	}
	if cfg.OutlineColor != "#000000" || cfg.FillColor != "#ffffff" {
		t.Errorf("colors = %q / %q", cfg.OutlineColor, cfg.FillColor)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t,
		"SHAPEPAD_WINDOW_HEIGHT",
		"SHAPEPAD_OUTLINE_COLOR",
		"SHAPEPAD_FILL_COLOR",
		"SHAPEPAD_REDRAW_HZ",
		"SHAPEPAD_DOCUMENT_DIR",
	)
	t.Setenv("SHAPEPAD_WINDOW_WIDTH", "800")
	t.Setenv("SHAPEPAD_STROKE_WIDTH", "6")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WindowWidth != 800 {
		t.Errorf("window width = %d, want 800", cfg.WindowWidth)
	}
	if cfg.StrokeWidth != 6 {
		t.Errorf("stroke width = %d, want 6", cfg.StrokeWidth)
	}
}
