package rig

// TuningConfig holds the physics and stability parameters for rig
// construction. It is owned by the caller (normally loaded from the YAML
// config) and read-only to this package.
//
// The stability heuristics (mass ratio, collider scales, joint spacing,
// damping split) were arrived at empirically; they are exposed here as
// tunables so they can be re-validated against whichever physics engine
// consumes the rig instead of being baked in.
type TuningConfig struct {
	Gravity            float32 `yaml:"gravity"`
	PositionIterations int     `yaml:"position_iterations"`
	VelocityIterations int     `yaml:"velocity_iterations"`

	AngularDamping          float32 `yaml:"angular_damping"`
	LinearDamping           float32 `yaml:"linear_damping"`
	ExtremityAngularDamping float32 `yaml:"extremity_angular_damping"`
	ExtremityLinearDamping  float32 `yaml:"extremity_linear_damping"`

	StaticFriction  float32 `yaml:"static_friction"`
	DynamicFriction float32 `yaml:"dynamic_friction"`
	// Restitution should stay 0 for ragdolls; bounce compounds instability.
	// That is a tuning recommendation, not an enforced invariant.
	Restitution float32 `yaml:"restitution"`

	// Joint limits in degrees. Cone angles are swing half-angles for
	// ball-socket joints; bend angles are the hinge range magnitude.
	SpineConeDeg    float32 `yaml:"spine_cone_deg"`
	NeckConeDeg     float32 `yaml:"neck_cone_deg"`
	ShoulderConeDeg float32 `yaml:"shoulder_cone_deg"`
	HipConeDeg      float32 `yaml:"hip_cone_deg"`
	WristConeDeg    float32 `yaml:"wrist_cone_deg"`
	AnkleConeDeg    float32 `yaml:"ankle_cone_deg"`
	ElbowMaxBendDeg float32 `yaml:"elbow_max_bend_deg"`
	KneeMaxBendDeg  float32 `yaml:"knee_max_bend_deg"`

	// Stability heuristics.
	BaseMass           float32 `yaml:"base_mass"`
	MassRatioMax       float32 `yaml:"mass_ratio_max"`
	TorsoColliderScale float32 `yaml:"torso_collider_scale"`
	LimbColliderScale  float32 `yaml:"limb_collider_scale"`
	JointSpacing       float32 `yaml:"joint_spacing"`
}

// DefaultTuning returns tuning values that keep the default presets stable
// at 8/2 solver iterations.
func DefaultTuning() TuningConfig {
	return TuningConfig{
		Gravity:            -9.81,
		PositionIterations: 8,
		VelocityIterations: 2,

		AngularDamping:          0.05,
		LinearDamping:           0.01,
		ExtremityAngularDamping: 0.6,
		ExtremityLinearDamping:  0.2,

		StaticFriction:  0.8,
		DynamicFriction: 0.6,
		Restitution:     0,

		SpineConeDeg:    25,
		NeckConeDeg:     40,
		ShoulderConeDeg: 80,
		HipConeDeg:      70,
		WristConeDeg:    30,
		AnkleConeDeg:    35,
		ElbowMaxBendDeg: 140,
		KneeMaxBendDeg:  140,

		BaseMass:           2.0,
		MassRatioMax:       3.0,
		TorsoColliderScale: 0.45,
		LimbColliderScale:  0.6,
		JointSpacing:       1.25,
	}
}
