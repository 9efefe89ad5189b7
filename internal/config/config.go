// Package config handles configuration loading and management: physics
// tuning, character preset selection, and logging settings.
package config

import (
	"github.com/Faultbox/marionette/internal/engine/rig"
)

// Config holds all settings.
type Config struct {
	Physics   rig.TuningConfig `yaml:"physics"`
	Character CharacterConfig  `yaml:"character"`
	Logging   LoggingConfig    `yaml:"logging"`
}

// CharacterConfig selects the body preset and interaction settings.
type CharacterConfig struct {
	// Preset names a built-in body preset (default, tall, short, muscular).
	Preset string `yaml:"preset"`
	// PresetFile points at a YAML body preset file; it takes priority over
	// Preset when set.
	PresetFile string `yaml:"preset_file"`
	// DragScale converts screen-space drag pixels to world units.
	DragScale float32 `yaml:"drag_scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Physics: rig.DefaultTuning(),
		Character: CharacterConfig{
			Preset:    "default",
			DragScale: 0.01,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
