package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/marionette/internal/engine/rig"
)

func TestBuiltinPresetNames(t *testing.T) {
	for _, name := range PresetNames() {
		specs, ok := BuiltinPreset(name)
		if !ok {
			t.Errorf("preset %q missing", name)
			continue
		}
		if len(specs) != 17 {
			t.Errorf("preset %q has %d parts, want 17", name, len(specs))
		}
	}

	if _, ok := BuiltinPreset("giant"); ok {
		t.Error("unknown preset should not resolve")
	}

	// Empty name falls back to the default preset.
	if _, ok := BuiltinPreset(""); !ok {
		t.Error("empty preset name should resolve to default")
	}
}

// Every built-in variant must survive rig construction with default tuning:
// same algorithm, different values.
func TestBuiltinPresetsBuild(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			specs, _ := BuiltinPreset(name)
			tuning := rig.DefaultTuning()

			r, err := rig.NewBuilder(nil).Build(specs, &tuning)
			if err != nil {
				t.Fatalf("Build(%s): %v", name, err)
			}
			if r.Root().Mode != rig.ModeKinematic {
				t.Error("root must be kinematic")
			}
		})
	}
}

func TestPresetVariantsDiffer(t *testing.T) {
	def, _ := BuiltinPreset("default")
	tall, _ := BuiltinPreset("tall")
	muscular, _ := BuiltinPreset("muscular")

	if tall[0].Length <= def[0].Length {
		t.Error("tall preset should have longer parts")
	}
	if muscular[0].Mass <= def[0].Mass {
		t.Error("muscular preset should have heavier parts")
	}
}

func TestLoadPresetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")

	data := []byte(`
parts:
  - name: pelvis
    length: 0.3
    radius: 0.1
    mass: 4
    role: torso
  - name: spine
    parent: pelvis
    length: 0.25
    radius: 0.08
    mass: 3
    role: torso
  - name: head
    parent: spine
    length: 0.2
    radius: 0.09
    mass: 2
    role: head
    extremity: true
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	specs, err := LoadPresetFile(path)
	if err != nil {
		t.Fatalf("LoadPresetFile: %v", err)
	}
	if len(specs) != 3 {
		t.Fatalf("got %d parts, want 3", len(specs))
	}
	if specs[0].Role != rig.RoleTorso || specs[2].Role != rig.RoleHead {
		t.Errorf("roles decoded wrong: %v, %v", specs[0].Role, specs[2].Role)
	}
	if !specs[2].Extremity {
		t.Error("extremity flag lost")
	}
}

func TestLoadPresetFileErrors(t *testing.T) {
	if _, err := LoadPresetFile("/nonexistent/preset.yaml"); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	os.WriteFile(empty, []byte("parts: []\n"), 0644)
	if _, err := LoadPresetFile(empty); err == nil {
		t.Error("expected error for preset without parts")
	}

	badRole := filepath.Join(dir, "bad.yaml")
	os.WriteFile(badRole, []byte("parts:\n  - name: x\n    role: wing\n"), 0644)
	if _, err := LoadPresetFile(badRole); err == nil {
		t.Error("expected error for unknown role")
	}
}
