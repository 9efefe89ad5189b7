package rig

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// testPreset returns a full humanoid body preset.
func testPreset() []BodyPartSpec {
	return []BodyPartSpec{
		{Name: PartPelvis, Length: 0.25, Radius: 0.16, Mass: 10, Role: RoleTorso},
		{Name: PartSpine, Parent: PartPelvis, Length: 0.22, Radius: 0.14, Mass: 8, Role: RoleTorso},
		{Name: PartChest, Parent: PartSpine, Length: 0.26, Radius: 0.15, Mass: 12, Role: RoleTorso},
		{Name: PartNeck, Parent: PartChest, Length: 0.12, Radius: 0.06, Mass: 2, Role: RoleLimb},
		{Name: PartHead, Parent: PartNeck, Length: 0.22, Radius: 0.11, Mass: 5, Role: RoleHead, Extremity: true},

		{Name: PartUpperArmL, Parent: PartChest, Length: 0.30, Radius: 0.05, Mass: 2.5, Role: RoleLimb},
		{Name: PartForearmL, Parent: PartUpperArmL, Length: 0.26, Radius: 0.04, Mass: 1.8, Role: RoleLimb},
		{Name: PartHandL, Parent: PartForearmL, Length: 0.16, Radius: 0.04, Mass: 0.6, Role: RoleLimb, Extremity: true},
		{Name: PartUpperArmR, Parent: PartChest, Length: 0.30, Radius: 0.05, Mass: 2.5, Role: RoleLimb},
		{Name: PartForearmR, Parent: PartUpperArmR, Length: 0.26, Radius: 0.04, Mass: 1.8, Role: RoleLimb},
		{Name: PartHandR, Parent: PartForearmR, Length: 0.16, Radius: 0.04, Mass: 0.6, Role: RoleLimb, Extremity: true},

		{Name: PartThighL, Parent: PartPelvis, Length: 0.42, Radius: 0.08, Mass: 7, Role: RoleLimb},
		{Name: PartShinL, Parent: PartThighL, Length: 0.40, Radius: 0.06, Mass: 3.5, Role: RoleLimb},
		{Name: PartFootL, Parent: PartShinL, Length: 0.22, Radius: 0.05, Mass: 1.2, Role: RoleLimb, Extremity: true},
		{Name: PartThighR, Parent: PartPelvis, Length: 0.42, Radius: 0.08, Mass: 7, Role: RoleLimb},
		{Name: PartShinR, Parent: PartThighR, Length: 0.40, Radius: 0.06, Mass: 3.5, Role: RoleLimb},
		{Name: PartFootR, Parent: PartShinR, Length: 0.22, Radius: 0.05, Mass: 1.2, Role: RoleLimb, Extremity: true},
	}
}

func buildTestRig(t *testing.T, specs []BodyPartSpec) *ArticulatedRig {
	t.Helper()
	tuning := DefaultTuning()
	r, err := NewBuilder(nil).Build(specs, &tuning)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return r
}

func TestBuildFullRig(t *testing.T) {
	r := buildTestRig(t, testPreset())

	if len(r.Nodes) != 17 {
		t.Errorf("expected 17 nodes, got %d", len(r.Nodes))
	}
	if len(r.Constraints) != 16 {
		t.Errorf("expected 16 constraints, got %d", len(r.Constraints))
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestBuildRootIsKinematic(t *testing.T) {
	r := buildTestRig(t, testPreset())

	root := r.Root()
	if root == nil {
		t.Fatal("rig has no root")
	}
	if root.Name != PartPelvis {
		t.Errorf("root should be pelvis, got %q", root.Name)
	}
	if root.Mode != ModeKinematic {
		t.Errorf("root mode = %v, want kinematic", root.Mode)
	}

	for _, n := range r.Nodes[1:] {
		if n.Mode != ModeDynamic {
			t.Errorf("node %q mode = %v, want dynamic", n.Name, n.Mode)
		}
	}
}

func TestBuildMassesNormalized(t *testing.T) {
	tuning := DefaultTuning()
	r := buildTestRig(t, testPreset())

	for _, n := range r.Nodes {
		if n.Mass < tuning.BaseMass || n.Mass > tuning.BaseMass*tuning.MassRatioMax {
			t.Errorf("node %q mass %v outside [%v, %v]",
				n.Name, n.Mass, tuning.BaseMass, tuning.BaseMass*tuning.MassRatioMax)
		}
	}
}

func TestBuildCollidersDoNotOverlapAtRest(t *testing.T) {
	r := buildTestRig(t, testPreset())

	for _, c := range r.Constraints {
		parent := r.Node(c.Parent)
		child := r.Node(c.Child)
		dist := child.Translation.Len()
		if dist <= parent.ColliderRadius+child.ColliderRadius {
			t.Errorf("%s-%s: center distance %v does not exceed radii sum %v",
				c.Parent, c.Child, dist, parent.ColliderRadius+child.ColliderRadius)
		}
	}
}

func TestBuildConstraintKinds(t *testing.T) {
	r := buildTestRig(t, testPreset())

	kinds := map[[2]string]ConstraintKind{}
	for _, c := range r.Constraints {
		kinds[[2]string{c.Parent, c.Child}] = c.Kind
	}

	hinges := [][2]string{
		{PartUpperArmL, PartForearmL},
		{PartUpperArmR, PartForearmR},
		{PartThighL, PartShinL},
		{PartThighR, PartShinR},
	}
	for _, pair := range hinges {
		if k, ok := kinds[pair]; !ok || k != Hinge {
			t.Errorf("%v should be a hinge, got %v (present %v)", pair, k, ok)
		}
	}

	balls := [][2]string{
		{PartPelvis, PartSpine},
		{PartChest, PartUpperArmL},
		{PartPelvis, PartThighR},
		{PartNeck, PartHead},
	}
	for _, pair := range balls {
		if k, ok := kinds[pair]; !ok || k != BallSocket {
			t.Errorf("%v should be a ball socket, got %v (present %v)", pair, k, ok)
		}
	}
}

// Both elbows must bend toward the front of the body when driven to their
// respective extreme, despite mirrored local sign ranges.
func TestHingeSignConvention(t *testing.T) {
	r := buildTestRig(t, testPreset())

	var left, right *JointConstraint
	for i := range r.Constraints {
		c := &r.Constraints[i]
		if c.Kind != Hinge {
			continue
		}
		switch c.Child {
		case PartForearmL:
			left = c
		case PartForearmR:
			right = c
		}
	}
	if left == nil || right == nil {
		t.Fatal("elbow hinges missing")
	}

	if left.MinAngle != 0 || left.MaxAngle <= 0 {
		t.Errorf("left elbow range [%v, %v], want [0, +max]", left.MinAngle, left.MaxAngle)
	}
	if right.MaxAngle != 0 || right.MinAngle >= 0 {
		t.Errorf("right elbow range [%v, %v], want [-max, 0]", right.MinAngle, right.MaxAngle)
	}

	// Drive each elbow to its extreme and compare the world-space bend
	// direction of the forearm rest axes.
	leftBend := mgl32.QuatRotate(left.MaxAngle, left.Axis).Rotate(partDirection(PartForearmL))
	rightBend := mgl32.QuatRotate(right.MinAngle, right.Axis).Rotate(partDirection(PartForearmR))

	if leftBend.Z() >= 0 || rightBend.Z() >= 0 {
		t.Errorf("both forearms should bend forward (-Z): left %v, right %v", leftBend, rightBend)
	}
}

func TestBuildAnchorsAtColliderSurfaces(t *testing.T) {
	r := buildTestRig(t, testPreset())

	for _, c := range r.Constraints {
		parent := r.Node(c.Parent)
		child := r.Node(c.Child)

		if !mgl32.FloatEqualThreshold(c.ParentAnchor.Len(), parent.ColliderRadius, 1e-5) {
			t.Errorf("%s-%s: parent anchor length %v, want collider radius %v",
				c.Parent, c.Child, c.ParentAnchor.Len(), parent.ColliderRadius)
		}
		if !mgl32.FloatEqualThreshold(c.ChildAnchor.Len(), child.ColliderRadius, 1e-5) {
			t.Errorf("%s-%s: child anchor length %v, want collider radius %v",
				c.Parent, c.Child, c.ChildAnchor.Len(), child.ColliderRadius)
		}

		// Anchors face each other along the parent-to-child axis.
		if c.ParentAnchor.Dot(c.ChildAnchor) >= 0 {
			t.Errorf("%s-%s: anchors should point in opposite directions", c.Parent, c.Child)
		}
	}
}

func TestBuildMissingPartOmitsConstraints(t *testing.T) {
	var specs []BodyPartSpec
	for _, s := range testPreset() {
		if s.Name == PartHandL {
			continue
		}
		specs = append(specs, s)
	}

	r := buildTestRig(t, specs)

	if len(r.Nodes) != 16 {
		t.Errorf("expected 16 nodes, got %d", len(r.Nodes))
	}
	if r.Node(PartHandL) != nil {
		t.Error("hand_l should be absent")
	}
	for _, c := range r.Constraints {
		if c.Child == PartHandL || c.Parent == PartHandL {
			t.Errorf("constraint referencing missing part: %v-%v", c.Parent, c.Child)
		}
	}
	if len(r.Constraints) != 15 {
		t.Errorf("expected 15 constraints, got %d", len(r.Constraints))
	}
}

func TestBuildMissingParentOmitsSubtree(t *testing.T) {
	// Dropping the forearm strands the hand; both must be omitted, and the
	// rig stays usable.
	var specs []BodyPartSpec
	for _, s := range testPreset() {
		if s.Name == PartForearmR {
			continue
		}
		specs = append(specs, s)
	}

	r := buildTestRig(t, specs)

	if r.Node(PartForearmR) != nil || r.Node(PartHandR) != nil {
		t.Error("forearm_r subtree should be omitted")
	}
	if err := r.Validate(); err != nil {
		t.Errorf("partial rig should validate: %v", err)
	}
}

func TestBuildDuplicatePartFails(t *testing.T) {
	specs := testPreset()
	specs = append(specs, specs[1])

	tuning := DefaultTuning()
	if _, err := NewBuilder(nil).Build(specs, &tuning); err == nil {
		t.Error("expected error for duplicate part name")
	}
}

func TestBuildCyclicParentsFail(t *testing.T) {
	specs := testPreset()
	specs = append(specs,
		BodyPartSpec{Name: "tail_a", Parent: "tail_b", Length: 0.1, Radius: 0.03, Mass: 1, Role: RoleLimb},
		BodyPartSpec{Name: "tail_b", Parent: "tail_a", Length: 0.1, Radius: 0.03, Mass: 1, Role: RoleLimb},
	)

	tuning := DefaultTuning()
	if _, err := NewBuilder(nil).Build(specs, &tuning); err == nil {
		t.Error("expected error for cyclic parent links")
	}
}

func TestBuildMultipleRootsFail(t *testing.T) {
	specs := testPreset()
	specs = append(specs, BodyPartSpec{Name: "ghost", Length: 0.1, Radius: 0.03, Mass: 1, Role: RoleLimb})

	tuning := DefaultTuning()
	if _, err := NewBuilder(nil).Build(specs, &tuning); err == nil {
		t.Error("expected error for multiple roots")
	}
}

func TestBuildOverlappingSpacingFails(t *testing.T) {
	tuning := DefaultTuning()
	// Spacing this tight leaves shrunk colliders touching at rest.
	tuning.JointSpacing = 0.1

	if _, err := NewBuilder(nil).Build(testPreset(), &tuning); err == nil {
		t.Error("expected error for overlapping colliders")
	}
}

func TestBuildEmptyPresetFails(t *testing.T) {
	tuning := DefaultTuning()
	if _, err := NewBuilder(nil).Build(nil, &tuning); err == nil {
		t.Error("expected error for empty preset")
	}
}
