package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/marionette/internal/engine/rig"
)

// presetFile is the on-disk YAML shape of a body preset.
type presetFile struct {
	Parts []rig.BodyPartSpec `yaml:"parts"`
}

// LoadPresetFile reads a body preset from a YAML file.
func LoadPresetFile(path string) ([]rig.BodyPartSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	if len(pf.Parts) == 0 {
		return nil, fmt.Errorf("preset %s has no parts", path)
	}
	return pf.Parts, nil
}

// BuiltinPreset returns a named built-in body preset. Variants differ only
// in their part values; the build algorithm is identical for all of them.
func BuiltinPreset(name string) ([]rig.BodyPartSpec, bool) {
	switch name {
	case "", "default":
		return defaultPreset(), true
	case "tall":
		return scalePreset(defaultPreset(), 1.15, 1.0, 1.1), true
	case "short":
		return scalePreset(defaultPreset(), 0.8, 0.95, 0.85), true
	case "muscular":
		return scalePreset(defaultPreset(), 1.0, 1.2, 1.5), true
	}
	return nil, false
}

// PresetNames lists the built-in presets.
func PresetNames() []string {
	return []string{"default", "tall", "short", "muscular"}
}

// defaultPreset is an averagely proportioned humanoid in meters and
// kilograms. Raw masses may exceed the stability clamp; the builder
// normalizes them.
func defaultPreset() []rig.BodyPartSpec {
	return []rig.BodyPartSpec{
		{Name: rig.PartPelvis, Length: 0.25, Radius: 0.16, Mass: 10, Role: rig.RoleTorso},
		{Name: rig.PartSpine, Parent: rig.PartPelvis, Length: 0.22, Radius: 0.14, Mass: 8, Role: rig.RoleTorso},
		{Name: rig.PartChest, Parent: rig.PartSpine, Length: 0.26, Radius: 0.15, Mass: 12, Role: rig.RoleTorso},
		{Name: rig.PartNeck, Parent: rig.PartChest, Length: 0.12, Radius: 0.06, Mass: 2, Role: rig.RoleLimb},
		{Name: rig.PartHead, Parent: rig.PartNeck, Length: 0.22, Radius: 0.11, Mass: 5, Role: rig.RoleHead, Extremity: true},

		{Name: rig.PartUpperArmL, Parent: rig.PartChest, Length: 0.30, Radius: 0.05, Mass: 2.5, Role: rig.RoleLimb},
		{Name: rig.PartForearmL, Parent: rig.PartUpperArmL, Length: 0.26, Radius: 0.04, Mass: 1.8, Role: rig.RoleLimb},
		{Name: rig.PartHandL, Parent: rig.PartForearmL, Length: 0.16, Radius: 0.04, Mass: 0.6, Role: rig.RoleLimb, Extremity: true},
		{Name: rig.PartUpperArmR, Parent: rig.PartChest, Length: 0.30, Radius: 0.05, Mass: 2.5, Role: rig.RoleLimb},
		{Name: rig.PartForearmR, Parent: rig.PartUpperArmR, Length: 0.26, Radius: 0.04, Mass: 1.8, Role: rig.RoleLimb},
		{Name: rig.PartHandR, Parent: rig.PartForearmR, Length: 0.16, Radius: 0.04, Mass: 0.6, Role: rig.RoleLimb, Extremity: true},

		{Name: rig.PartThighL, Parent: rig.PartPelvis, Length: 0.42, Radius: 0.08, Mass: 7, Role: rig.RoleLimb},
		{Name: rig.PartShinL, Parent: rig.PartThighL, Length: 0.40, Radius: 0.06, Mass: 3.5, Role: rig.RoleLimb},
		{Name: rig.PartFootL, Parent: rig.PartShinL, Length: 0.22, Radius: 0.05, Mass: 1.2, Role: rig.RoleLimb, Extremity: true},
		{Name: rig.PartThighR, Parent: rig.PartPelvis, Length: 0.42, Radius: 0.08, Mass: 7, Role: rig.RoleLimb},
		{Name: rig.PartShinR, Parent: rig.PartThighR, Length: 0.40, Radius: 0.06, Mass: 3.5, Role: rig.RoleLimb},
		{Name: rig.PartFootR, Parent: rig.PartShinR, Length: 0.22, Radius: 0.05, Mass: 1.2, Role: rig.RoleLimb, Extremity: true},
	}
}

// scalePreset derives a character variant by scaling lengths, radii and
// masses of every part.
func scalePreset(parts []rig.BodyPartSpec, length, radius, mass float32) []rig.BodyPartSpec {
	out := make([]rig.BodyPartSpec, len(parts))
	for i, p := range parts {
		p.Length *= length
		p.Radius *= radius
		p.Mass *= mass
		out[i] = p
	}
	return out
}
