package pose

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"

	"github.com/Faultbox/marionette/internal/engine/ik"
)

// Limb is one row of the fixed index table mapping an arm's wrist joint to
// its shoulder and elbow joints and segment lengths, so a wrist drag can be
// routed to the right two-bone chain.
type Limb struct {
	Shoulder int
	Elbow    int
	Wrist    int
	UpperLen float32
	LowerLen float32
}

// Controller drives a skeletal pose buffer directly: incremental and
// absolute joint rotation, whole-character translation through the root
// joint, neutral-pose reset, and IK-driven wrist dragging.
//
// All writes go straight into the shared buffer and are visible to
// subsequent reads in the same call sequence; the control loop is
// single-threaded and frame-driven, so no staging or locking is needed.
type Controller struct {
	pose       SkeletalPose
	neutral    SkeletalPose
	controlled map[int]bool
	limbs      []Limb
	solver     ik.Solver
	log        *zap.Logger
}

// NewController returns a controller with the given limb index table. A nil
// logger disables diagnostics. Call Setup before any other operation.
func NewController(limbs []Limb, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		limbs:  limbs,
		solver: ik.NewSolver(),
		log:    log,
	}
}

// Setup attaches the controller to an externally owned pose buffer and
// captures the neutral snapshot. The snapshot covers every joint, not only
// the controlled ones, because reset must restore the whole body.
//
// Returns false without mutating anything when the buffer is empty.
func (c *Controller) Setup(buf SkeletalPose, controlledJoints []int) bool {
	if len(buf) == 0 {
		c.log.Warn("pose controller setup rejected, empty pose buffer")
		return false
	}

	var neutral SkeletalPose
	if err := deepcopy.Copy(&neutral, buf); err != nil {
		c.log.Error("neutral pose snapshot failed", zap.Error(err))
		return false
	}

	c.pose = buf
	c.neutral = neutral
	c.controlled = make(map[int]bool, len(controlledJoints))
	for _, idx := range controlledJoints {
		if idx >= 0 && idx < len(buf) {
			c.controlled[idx] = true
		}
	}

	c.log.Info("pose controller ready",
		zap.Int("joints", len(buf)),
		zap.Int("controlled", len(c.controlled)))
	return true
}

// JointCount returns the length of the attached pose buffer.
func (c *Controller) JointCount() int {
	return len(c.pose)
}

// Controllable reports whether a joint index was configured as controllable.
func (c *Controller) Controllable(index int) bool {
	return c.controlled[index]
}

// RotateJointIncremental left-multiplies the joint's current rotation by
// delta. Out-of-range indices are a no-op; they occur during normal
// interactive dragging and must not interrupt the control loop.
func (c *Controller) RotateJointIncremental(index int, delta mgl32.Quat) {
	if index < 0 || index >= len(c.pose) {
		return
	}
	c.pose[index].Rotation = delta.Mul(c.pose[index].Rotation).Normalize()
}

// RotateJointAbsolute overwrites the joint's rotation, preserving its
// translation and scale. Out-of-range indices are a no-op.
func (c *Controller) RotateJointAbsolute(index int, rotation mgl32.Quat) {
	if index < 0 || index >= len(c.pose) {
		return
	}
	c.pose[index].Rotation = rotation
}

// TranslateRoot overwrites the root joint's translation only, moving the
// whole character.
func (c *Controller) TranslateRoot(position mgl32.Vec3) {
	if len(c.pose) == 0 {
		return
	}
	c.pose[RootJoint].Translation = position
}

// ResetToNeutral restores every joint from the neutral snapshot, then forces
// the root rotation to identity. The root-upright correction guarantees the
// character resets standing upright even when the captured snapshot carried
// residual root tilt.
func (c *Controller) ResetToNeutral() {
	if len(c.pose) == 0 {
		return
	}
	copy(c.pose, c.neutral)
	c.pose[RootJoint].Rotation = mgl32.QuatIdent()
}

// DragWristIK resolves which limb owns wristIndex, solves the two-bone chain
// toward target, and writes the resulting shoulder and elbow orientations.
// Returns false when no limb in the table owns the joint.
func (c *Controller) DragWristIK(wristIndex int, target mgl32.Vec3) bool {
	for _, limb := range c.limbs {
		if limb.Wrist != wristIndex {
			continue
		}
		if limb.Shoulder < 0 || limb.Shoulder >= len(c.pose) {
			c.log.Warn("wrist drag dropped, shoulder joint out of range",
				zap.Int("shoulder", limb.Shoulder))
			return false
		}

		shoulderPos := c.pose[limb.Shoulder].Translation
		res := c.solver.Solve(shoulderPos, target, limb.UpperLen, limb.LowerLen)
		c.RotateJointAbsolute(limb.Shoulder, res.ShoulderRot)
		c.RotateJointAbsolute(limb.Elbow, res.ElbowRot)
		return true
	}

	c.log.Debug("wrist drag ignored, joint not in limb table",
		zap.Int("joint", wristIndex))
	return false
}
