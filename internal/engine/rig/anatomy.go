package rig

import "github.com/go-gl/mathgl/mgl32"

// Canonical part names recognized by the builder's anatomy table. Presets may
// omit any of them; the affected joints are then skipped.
const (
	PartPelvis = "pelvis"
	PartSpine  = "spine"
	PartChest  = "chest"
	PartNeck   = "neck"
	PartHead   = "head"

	PartUpperArmL = "upper_arm_l"
	PartForearmL  = "forearm_l"
	PartHandL     = "hand_l"
	PartUpperArmR = "upper_arm_r"
	PartForearmR  = "forearm_r"
	PartHandR     = "hand_r"

	PartThighL = "thigh_l"
	PartShinL  = "shin_l"
	PartFootL  = "foot_l"
	PartThighR = "thigh_r"
	PartShinR  = "shin_r"
	PartFootR  = "foot_r"
)

// jointKind names the anatomical joint so the builder can pick the matching
// limit from the tuning config.
type jointKind uint8

const (
	jointSpine jointKind = iota
	jointNeck
	jointShoulder
	jointHip
	jointWrist
	jointAnkle
	jointElbow
	jointKnee
)

// jointSlot is one row of the anatomy table: a parent/child pair, the joint
// kind between them, and whether the limb is the mirrored (right) side.
type jointSlot struct {
	parent   string
	child    string
	kind     jointKind
	mirrored bool
}

// anatomy lists every joint of the canonical humanoid. Rows whose endpoints
// are missing from the preset are skipped at build time.
var anatomy = []jointSlot{
	{PartPelvis, PartSpine, jointSpine, false},
	{PartSpine, PartChest, jointSpine, false},
	{PartChest, PartNeck, jointNeck, false},
	{PartNeck, PartHead, jointNeck, false},

	{PartChest, PartUpperArmL, jointShoulder, false},
	{PartUpperArmL, PartForearmL, jointElbow, false},
	{PartForearmL, PartHandL, jointWrist, false},
	{PartChest, PartUpperArmR, jointShoulder, true},
	{PartUpperArmR, PartForearmR, jointElbow, true},
	{PartForearmR, PartHandR, jointWrist, true},

	{PartPelvis, PartThighL, jointHip, false},
	{PartThighL, PartShinL, jointKnee, false},
	{PartShinL, PartFootL, jointAnkle, false},
	{PartPelvis, PartThighR, jointHip, true},
	{PartThighR, PartShinR, jointKnee, true},
	{PartShinR, PartFootR, jointAnkle, true},
}

// Hinge axes. Elbows rotate about the vertical axis (arms extend laterally
// in the rest pose); knees rotate about the lateral axis. Both conventions
// bend the limb toward -Z, the front of the body.
var (
	elbowAxis = mgl32.Vec3{0, 1, 0}
	kneeAxis  = mgl32.Vec3{1, 0, 0}
)

// partDirections gives the rest-pose placement direction of each part
// relative to its parent: up the spine for the torso chain and head, lateral
// for the arms, downward (with a small lateral spread at the hips) for the
// legs. Parts not listed default to up.
var partDirections = map[string]mgl32.Vec3{
	PartSpine: {0, 1, 0},
	PartChest: {0, 1, 0},
	PartNeck:  {0, 1, 0},
	PartHead:  {0, 1, 0},

	PartUpperArmL: {1, 0, 0},
	PartForearmL:  {1, 0, 0},
	PartHandL:     {1, 0, 0},
	PartUpperArmR: {-1, 0, 0},
	PartForearmR:  {-1, 0, 0},
	PartHandR:     {-1, 0, 0},

	PartThighL: {0.35, -1, 0},
	PartShinL:  {0, -1, 0},
	PartFootL:  {0, -1, 0.3},
	PartThighR: {-0.35, -1, 0},
	PartShinR:  {0, -1, 0},
	PartFootR:  {0, -1, 0.3},
}

// partDirection returns the normalized placement direction for a part.
func partDirection(name string) mgl32.Vec3 {
	if d, ok := partDirections[name]; ok {
		return d.Normalize()
	}
	return mgl32.Vec3{0, 1, 0}
}
