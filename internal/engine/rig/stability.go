package rig

import "github.com/go-gl/mathgl/mgl32"

// Stability normalization: pure functions applied to every node before it is
// instantiated. An iterative constraint solver with a fixed iteration budget
// diverges when adjacent body masses differ by more than roughly 3-4x, and
// colliders that touch at rest start their constraints in a penetrating
// state. Clamping masses and shrinking colliders keeps the same solver
// budget converging across arbitrarily proportioned characters.

// NormalizeMass clamps a raw preset mass into [baseMass, baseMass*ratioMax].
func NormalizeMass(rawMass, baseMass, ratioMax float32) float32 {
	return mgl32.Clamp(rawMass, baseMass, baseMass*ratioMax)
}

// NormalizeColliderRadius shrinks a visual radius by the per-role scale.
func NormalizeColliderRadius(visualRadius, scale float32) float32 {
	return visualRadius * scale
}

// ColliderScale returns the collider shrink factor for a role.
func (t *TuningConfig) ColliderScale(role PartRole) float32 {
	if role == RoleTorso {
		return t.TorsoColliderScale
	}
	return t.LimbColliderScale
}

// DampingProfile returns (angular, linear) damping for a segment.
// Extremities (head, hands, feet) get the higher pair: they have the least
// inertia and the most leverage from parent-chain rotation, so they are the
// first to oscillate.
func (t *TuningConfig) DampingProfile(extremity bool) (angular, linear float32) {
	if extremity {
		return t.ExtremityAngularDamping, t.ExtremityLinearDamping
	}
	return t.AngularDamping, t.LinearDamping
}
