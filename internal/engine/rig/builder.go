package rig

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Builder assembles an ArticulatedRig from a body preset and a tuning
// config. A nil logger disables diagnostics.
type Builder struct {
	log *zap.Logger
}

// NewBuilder returns a Builder that reports skipped parts and constraints
// through log.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log}
}

// Build instantiates one rigid-body node per spec, positions children with
// non-overlap spacing, applies stability normalization, and connects every
// anatomically adjacent pair with the appropriate constraint.
//
// Missing optional parts are omitted along with their constraints; a partial
// rig is still usable. Malformed presets (duplicate names, several roots,
// cyclic parent links, spacing that leaves colliders overlapping) are
// construction-time errors.
func (b *Builder) Build(specs []BodyPartSpec, tuning *TuningConfig) (*ArticulatedRig, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("empty body preset")
	}

	byName := make(map[string]BodyPartSpec, len(specs))
	for _, s := range specs {
		if _, dup := byName[s.Name]; dup {
			return nil, fmt.Errorf("duplicate body part %q", s.Name)
		}
		byName[s.Name] = s
	}

	var rootName string
	children := make(map[string][]string)
	for _, s := range specs {
		if s.Parent == "" {
			if rootName != "" {
				return nil, fmt.Errorf("multiple root parts: %q and %q", rootName, s.Name)
			}
			rootName = s.Name
			continue
		}
		children[s.Parent] = append(children[s.Parent], s.Name)
	}
	if rootName == "" {
		return nil, fmt.Errorf("body preset has no root part")
	}

	// Walk the tree root-first. Specs left unreached either point at a part
	// the preset does not contain (omitted, non-fatal) or sit on a parent
	// cycle (fatal).
	order := []string{rootName}
	for i := 0; i < len(order); i++ {
		order = append(order, children[order[i]]...)
	}
	reached := make(map[string]bool, len(order))
	for _, name := range order {
		reached[name] = true
	}
	for _, s := range specs {
		if reached[s.Name] {
			continue
		}
		if err := b.checkUnreached(s, byName); err != nil {
			return nil, err
		}
	}

	rig := &ArticulatedRig{byName: make(map[string]*RigidBodyNode, len(order))}
	for _, name := range order {
		node := b.buildNode(byName[name], byName, tuning)
		rig.Nodes = append(rig.Nodes, node)
		rig.byName[name] = node
	}

	for _, slot := range anatomy {
		parent := rig.Node(slot.parent)
		child := rig.Node(slot.child)
		if parent == nil || child == nil {
			b.log.Warn("constraint skipped, endpoint missing",
				zap.String("parent", slot.parent),
				zap.String("child", slot.child))
			continue
		}
		rig.Constraints = append(rig.Constraints, makeConstraint(slot, parent, child, tuning))
	}

	if err := b.checkSpacing(rig); err != nil {
		return nil, err
	}
	if err := rig.Validate(); err != nil {
		return nil, err
	}

	b.log.Info("ragdoll rig built",
		zap.Int("nodes", len(rig.Nodes)),
		zap.Int("constraints", len(rig.Constraints)))
	return rig, nil
}

// checkUnreached classifies a spec the root walk never visited: a missing
// parent omits the part, a cycle among present parts is a preset bug.
func (b *Builder) checkUnreached(s BodyPartSpec, byName map[string]BodyPartSpec) error {
	seen := map[string]bool{}
	cur := s
	for {
		if seen[cur.Name] {
			return fmt.Errorf("cyclic parent links at body part %q", cur.Name)
		}
		seen[cur.Name] = true
		next, ok := byName[cur.Parent]
		if !ok {
			b.log.Warn("body part omitted, parent missing",
				zap.String("part", s.Name),
				zap.String("missing", cur.Parent))
			return nil
		}
		cur = next
	}
}

// buildNode creates a normalized rigid-body node for one spec. The root is
// kinematic so input code can position it directly; everything else is
// simulated.
func (b *Builder) buildNode(s BodyPartSpec, byName map[string]BodyPartSpec, tuning *TuningConfig) *RigidBodyNode {
	mode := ModeDynamic
	translation := mgl32.Vec3{}
	if s.Parent == "" {
		mode = ModeKinematic
	} else {
		dir := partDirection(s.Name)
		parent := byName[s.Parent]
		gap := (halfExtentAlong(parent, dir) + halfExtentAlong(s, dir)) * tuning.JointSpacing
		translation = dir.Mul(gap)
	}

	scale := tuning.ColliderScale(s.Role)
	radius := NormalizeColliderRadius(s.Radius, scale)
	angular, linear := tuning.DampingProfile(s.Extremity)

	return &RigidBodyNode{
		Name:               s.Name,
		Parent:             s.Parent,
		Translation:        translation,
		Rotation:           mgl32.QuatIdent(),
		Scale:              1,
		ColliderRadius:     radius,
		ColliderHalfHeight: NormalizeColliderRadius(s.Length/2, scale),
		Mass:               NormalizeMass(s.Mass, tuning.BaseMass, tuning.MassRatioMax),
		Mode:               mode,
		AngularDamping:     angular,
		LinearDamping:      linear,
		StaticFriction:     tuning.StaticFriction,
		DynamicFriction:    tuning.DynamicFriction,
		Restitution:        tuning.Restitution,
	}
}

// halfExtentAlong estimates a capsule's half-extent along an arbitrary
// direction by blending its half-length and radius with the projection of
// its own long axis onto that direction.
func halfExtentAlong(s BodyPartSpec, dir mgl32.Vec3) float32 {
	axis := partDirection(s.Name)
	proj := axis.Dot(dir)
	if proj < 0 {
		proj = -proj
	}
	return proj*s.Length/2 + (1-proj)*s.Radius
}

// makeConstraint instantiates the constraint for one anatomy slot using the
// angle limits from the tuning config.
func makeConstraint(slot jointSlot, parent, child *RigidBodyNode, tuning *TuningConfig) JointConstraint {
	switch slot.kind {
	case jointElbow:
		maxBend := mgl32.DegToRad(tuning.ElbowMaxBendDeg)
		if slot.mirrored {
			return NewHinge(parent, child, elbowAxis, -maxBend, 0)
		}
		return NewHinge(parent, child, elbowAxis, 0, maxBend)
	case jointKnee:
		// Both knees share the lateral hinge axis, so no mirrored range is
		// needed for them to bend the same world direction.
		maxBend := mgl32.DegToRad(tuning.KneeMaxBendDeg)
		return NewHinge(parent, child, kneeAxis, 0, maxBend)
	default:
		return NewBallSocket(parent, child, mgl32.DegToRad(coneLimitDeg(slot.kind, tuning)))
	}
}

func coneLimitDeg(kind jointKind, tuning *TuningConfig) float32 {
	switch kind {
	case jointSpine:
		return tuning.SpineConeDeg
	case jointNeck:
		return tuning.NeckConeDeg
	case jointShoulder:
		return tuning.ShoulderConeDeg
	case jointHip:
		return tuning.HipConeDeg
	case jointWrist:
		return tuning.WristConeDeg
	case jointAnkle:
		return tuning.AnkleConeDeg
	}
	return 0
}

// checkSpacing verifies the rest-pose non-overlap invariant: for every
// connected pair the center distance must exceed the sum of the normalized
// collider radii, otherwise the constraint anchors start out penetrating.
func (b *Builder) checkSpacing(rig *ArticulatedRig) error {
	for _, c := range rig.Constraints {
		parent := rig.Node(c.Parent)
		child := rig.Node(c.Child)
		dist := child.Translation.Len()
		if dist <= parent.ColliderRadius+child.ColliderRadius {
			return fmt.Errorf("colliders of %q and %q overlap at rest (distance %.3f, radii sum %.3f); increase joint_spacing or shrink collider scales",
				c.Parent, c.Child, dist, parent.ColliderRadius+child.ColliderRadius)
		}
	}
	return nil
}
