package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPreset     = flag.String("preset", "", "Built-in body preset name")
	flagPresetFile = flag.String("preset-file", "", "Path to a YAML body preset")
	flagGravity    = flag.Float64("gravity", 0, "Override gravity (negative is down)")
	flagDragScale  = flag.Float64("drag-scale", 0, "Screen-to-world drag scale")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config. Value overrides only
// apply when the flag was actually passed, so zero stays a valid override
// (e.g. -gravity 0).
func applyFlags(cfg *Config) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPreset != "" {
		cfg.Character.Preset = *flagPreset
	}
	if *flagPresetFile != "" {
		cfg.Character.PresetFile = *flagPresetFile
	}
	if set["gravity"] {
		cfg.Physics.Gravity = float32(*flagGravity)
	}
	if set["drag-scale"] {
		cfg.Character.DragScale = float32(*flagDragScale)
	}
}
