package rig

import "github.com/go-gl/mathgl/mgl32"

// ConstraintKind selects between the two supported joint types.
type ConstraintKind uint8

const (
	// BallSocket permits rotation within a symmetric swing cone around the
	// joint's local up axis plus a twist limit of half the cone angle.
	// Used for spine, neck, shoulders, hips, wrists and ankles.
	BallSocket ConstraintKind = iota
	// Hinge permits rotation about a single axis within [MinAngle, MaxAngle].
	// Used for elbows and knees.
	Hinge
)

func (k ConstraintKind) String() string {
	switch k {
	case BallSocket:
		return "ball"
	case Hinge:
		return "hinge"
	}
	return "unknown"
}

// JointConstraint connects an adjacent parent/child node pair. Constraints
// are created once at rig-build time and immutable afterward.
type JointConstraint struct {
	Kind   ConstraintKind
	Parent string
	Child  string

	// Anchor offsets from each body's center, placed at the touching
	// surfaces of the two colliders. Center-only anchors let the bodies
	// interpenetrate before the constraint engages.
	ParentAnchor mgl32.Vec3
	ChildAnchor  mgl32.Vec3

	// BallSocket limits, radians.
	ConeLimit  float32
	TwistLimit float32

	// Hinge axis and limits, radians.
	Axis     mgl32.Vec3
	MinAngle float32
	MaxAngle float32
}

// NewBallSocket builds a cone-twist constraint between two adjacent nodes.
// The twist limit is fixed at half the swing cone.
func NewBallSocket(parent, child *RigidBodyNode, coneLimit float32) JointConstraint {
	pa, ca := anchorOffsets(parent, child)
	return JointConstraint{
		Kind:         BallSocket,
		Parent:       parent.Name,
		Child:        child.Name,
		ParentAnchor: pa,
		ChildAnchor:  ca,
		ConeLimit:    coneLimit,
		TwistLimit:   coneLimit / 2,
	}
}

// NewHinge builds a single-axis constraint between two adjacent nodes.
// Mirrored limbs pass mirrored [min,max] ranges so that both bend toward the
// same side in world space despite opposite local axes.
func NewHinge(parent, child *RigidBodyNode, axis mgl32.Vec3, minAngle, maxAngle float32) JointConstraint {
	pa, ca := anchorOffsets(parent, child)
	return JointConstraint{
		Kind:         Hinge,
		Parent:       parent.Name,
		Child:        child.Name,
		ParentAnchor: pa,
		ChildAnchor:  ca,
		Axis:         axis,
		MinAngle:     minAngle,
		MaxAngle:     maxAngle,
	}
}

// anchorOffsets places both anchors on the segment between the two body
// centers, each at its own collider surface. The child's local translation
// is its rest offset from the parent, so its direction is the parent-to-
// child axis.
func anchorOffsets(parent, child *RigidBodyNode) (parentAnchor, childAnchor mgl32.Vec3) {
	dir := child.Translation
	if dir.Len() < 1e-6 {
		dir = mgl32.Vec3{0, 1, 0}
	}
	dir = dir.Normalize()

	parentAnchor = dir.Mul(parent.ColliderRadius)
	childAnchor = dir.Mul(-child.ColliderRadius)
	return parentAnchor, childAnchor
}
