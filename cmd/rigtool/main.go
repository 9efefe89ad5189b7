// rigtool builds a ragdoll rig from a character preset and reports on it:
// node masses and colliders after stability normalization, the constraint
// graph, and the effective physics tuning.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/marionette/internal/config"
	"github.com/Faultbox/marionette/internal/engine/rig"
	"github.com/Faultbox/marionette/internal/logger"
)

var (
	flagDumpTuning  = flag.Bool("dump-tuning", false, "Print the effective physics tuning as YAML and exit")
	flagListPresets = flag.Bool("presets", false, "List built-in body presets and exit")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to a YAML file and exit")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagListPresets {
		fmt.Println(strings.Join(config.PresetNames(), "\n"))
		return
	}

	if *flagWriteConfig != "" {
		if err := cfg.SaveTo(*flagWriteConfig); err != nil {
			logger.Fatal("write config", zap.Error(err))
		}
		logger.Info("config written", zap.String("path", *flagWriteConfig))
		return
	}

	if *flagDumpTuning {
		data, err := yaml.Marshal(cfg.Physics)
		if err != nil {
			logger.Fatal("marshal tuning", zap.Error(err))
		}
		os.Stdout.Write(data)
		return
	}

	specs, err := loadPreset(cfg)
	if err != nil {
		logger.Fatal("load preset", zap.Error(err))
	}

	r, err := rig.NewBuilder(logger.Log).Build(specs, &cfg.Physics)
	if err != nil {
		logger.Fatal("rig construction failed", zap.Error(err))
	}

	printRig(r)
}

func loadPreset(cfg *config.Config) ([]rig.BodyPartSpec, error) {
	if cfg.Character.PresetFile != "" {
		return config.LoadPresetFile(cfg.Character.PresetFile)
	}
	specs, ok := config.BuiltinPreset(cfg.Character.Preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (use -presets to list)", cfg.Character.Preset)
	}
	return specs, nil
}

func printRig(r *rig.ArticulatedRig) {
	fmt.Printf("Nodes: %d\n", len(r.Nodes))
	fmt.Printf("%-14s %-10s %8s %8s %8s %8s\n", "name", "mode", "mass", "radius", "angDamp", "linDamp")
	for _, n := range r.Nodes {
		fmt.Printf("%-14s %-10s %8.3f %8.3f %8.3f %8.3f\n",
			n.Name, n.Mode, n.Mass, n.ColliderRadius, n.AngularDamping, n.LinearDamping)
	}

	fmt.Printf("\nConstraints: %d\n", len(r.Constraints))
	for _, c := range r.Constraints {
		switch c.Kind {
		case rig.BallSocket:
			fmt.Printf("  %-6s %-12s -> %-12s cone %.2f rad, twist %.2f rad\n",
				c.Kind, c.Parent, c.Child, c.ConeLimit, c.TwistLimit)
		case rig.Hinge:
			fmt.Printf("  %-6s %-12s -> %-12s axis (%.0f,%.0f,%.0f), range [%.2f, %.2f] rad\n",
				c.Kind, c.Parent, c.Child, c.Axis.X(), c.Axis.Y(), c.Axis.Z(), c.MinAngle, c.MaxAngle)
		}
	}
}
